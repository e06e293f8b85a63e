package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_Counters(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.Distribution("LEGACY")
	m.Distribution("LEGACY")
	m.Push("payload", PushDelivered)
	m.Push("payload", PushFailed)
	m.Received("group")
	m.Request("client", "200")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.distributions.WithLabelValues("LEGACY")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.pushes.WithLabelValues("payload", PushDelivered)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.pushes.WithLabelValues("payload", PushFailed)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.received.WithLabelValues("group")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.requests.WithLabelValues("client", "200")))
}

func TestMetrics_Handler(t *testing.T) {
	m := New(prometheus.NewRegistry())
	m.Push("payload", PushDelivered)
	m.PushDuration(0.2)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `privacy_node_pushes_total{kind="payload",result="delivered"} 1`)
	assert.Contains(t, string(body), "privacy_node_push_duration_seconds_count 1")
}

func TestNew_SeparateRegistries(t *testing.T) {
	assert.NotPanics(t, func() {
		New(prometheus.NewRegistry())
		New(prometheus.NewRegistry())
	})
}
