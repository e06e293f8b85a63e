package http

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-privacy-node/internal/logger"
	"github.com/MKhiriev/go-privacy-node/internal/metrics"
	"github.com/MKhiriev/go-privacy-node/internal/mock"
	"github.com/MKhiriev/go-privacy-node/internal/service"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/mock/gomock"
)

// testHandler bundles a handler with the service mocks behind it.
type testHandler struct {
	*Handler
	distribution *mock.MockDistributionService
	groups       *mock.MockPrivacyGroupService
	nodes        *mock.MockNodeService
	registry     *prometheus.Registry
}

func newTestHandler(t *testing.T, iface string) *testHandler {
	t.Helper()
	ctrl := gomock.NewController(t)

	th := &testHandler{
		distribution: mock.NewMockDistributionService(ctrl),
		groups:       mock.NewMockPrivacyGroupService(ctrl),
		nodes:        mock.NewMockNodeService(ctrl),
		registry:     prometheus.NewRegistry(),
	}
	services := &service.Services{
		DistributionService: th.distribution,
		PrivacyGroupService: th.groups,
		NodeService:         th.nodes,
	}
	th.Handler = NewHandler(services, metrics.New(th.registry), iface, logger.Nop())
	return th
}

func (th *testHandler) do(method, path, body string) *httptest.ResponseRecorder {
	var r io.Reader
	if body != "" {
		r = bytes.NewBufferString(body)
	}
	req := httptest.NewRequest(method, path, r)
	rr := httptest.NewRecorder()
	th.Init().ServeHTTP(rr, req)
	return rr
}

func okHandler(status int) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
	})
}
