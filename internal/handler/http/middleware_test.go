package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/go-privacy-node/internal/logger"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// withTraceID
// ─────────────────────────────────────────────

func TestWithTraceID(t *testing.T) {
	tests := []struct {
		name           string
		requestTraceID string
		wantSame       bool
	}{
		{name: "trace id from request header is reused", requestTraceID: "my-custom-trace-id", wantSame: true},
		{name: "missing trace id is generated", requestTraceID: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestHandler(t, IfaceNode)
			var ctxLogger *logger.Logger
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				ctxLogger = logger.FromRequest(r)
				w.WriteHeader(http.StatusTeapot)
			})

			req := httptest.NewRequest(http.MethodGet, "/upcheck", nil)
			if tt.requestTraceID != "" {
				req.Header.Set(traceIDHeader, tt.requestTraceID)
			}
			rr := httptest.NewRecorder()
			h.withTraceID(next).ServeHTTP(rr, req)

			got := rr.Header().Get(traceIDHeader)
			require.NotEmpty(t, got)
			if tt.wantSame {
				assert.Equal(t, tt.requestTraceID, got)
			} else {
				id, err := uuid.Parse(got)
				require.NoError(t, err)
				assert.Equal(t, uuid.Version(7), id.Version())
			}
			assert.Equal(t, http.StatusTeapot, rr.Code)
			require.NotNil(t, ctxLogger)
		})
	}
}

func TestWithTraceID_UniquePerRequest(t *testing.T) {
	h := newTestHandler(t, IfaceClient)
	mw := h.withTraceID(okHandler(http.StatusOK))

	seen := make(map[string]struct{})
	for range 50 {
		rr := httptest.NewRecorder()
		mw.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/upcheck", nil))
		seen[rr.Header().Get(traceIDHeader)] = struct{}{}
	}
	assert.Len(t, seen, 50)
}

// ─────────────────────────────────────────────
// withLogging
// ─────────────────────────────────────────────

func TestWithLogging_WritesAccessLogAndCountsRequest(t *testing.T) {
	h := newTestHandler(t, IfaceClient)

	var buf bytes.Buffer
	l := zerolog.New(&buf)
	req := httptest.NewRequest(http.MethodPost, "/send", nil)
	req = req.WithContext(l.WithContext(req.Context()))

	rr := httptest.NewRecorder()
	h.withLogging(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte("nope"))
	})).ServeHTTP(rr, req)

	out := buf.String()
	for _, want := range []string{`"method":"POST"`, `"uri":"/send"`, `"status":400`, `"size":4`, `"duration":`} {
		assert.Contains(t, out, want)
	}

	count, err := testutil.GatherAndCount(h.registry, "privacy_node_http_requests_total")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestWithLogging_ImplicitStatus(t *testing.T) {
	h := newTestHandler(t, IfaceNode)

	var buf bytes.Buffer
	l := zerolog.New(&buf)
	req := httptest.NewRequest(http.MethodGet, "/upcheck", nil)
	req = req.WithContext(l.WithContext(req.Context()))

	h.withLogging(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {})).ServeHTTP(httptest.NewRecorder(), req)

	assert.Contains(t, buf.String(), `"status":200`)
}

// ─────────────────────────────────────────────
// responseWriter
// ─────────────────────────────────────────────

func TestResponseWriter(t *testing.T) {
	rr := httptest.NewRecorder()
	w := &responseWriter{ResponseWriter: rr}

	_, err := w.Write([]byte("abc"))
	require.NoError(t, err)
	w.WriteHeader(http.StatusInternalServerError)
	_, err = w.Write([]byte("de"))
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, w.status)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, 5, w.size)
	assert.Equal(t, "abcde", rr.Body.String())
	assert.Same(t, rr, w.Unwrap())
}

// ─────────────────────────────────────────────
// CheckHTTPMethod
// ─────────────────────────────────────────────

func TestCheckHTTPMethod(t *testing.T) {
	router := chi.NewRouter()
	router.Get("/peers", okHandler(http.StatusOK).ServeHTTP)
	router.Post("/send", okHandler(http.StatusCreated).ServeHTTP)
	router.MethodNotAllowed(CheckHTTPMethod(router))

	tests := []struct {
		method string
		path   string
		want   int
	}{
		{http.MethodGet, "/peers", http.StatusOK},
		{http.MethodPost, "/send", http.StatusCreated},
		{http.MethodPost, "/peers", http.StatusNotFound},
		{http.MethodGet, "/send", http.StatusNotFound},
		{http.MethodDelete, "/send", http.StatusNotFound},
		{http.MethodGet, "/missing", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+strings.TrimPrefix(tt.path, "/"), func(t *testing.T) {
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, httptest.NewRequest(tt.method, tt.path, nil))
			assert.Equal(t, tt.want, rr.Code)
		})
	}
}
