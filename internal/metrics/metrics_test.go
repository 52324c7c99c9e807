package metrics

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fxdashboard/internal/provider"
)

func TestObserveFetch(t *testing.T) {
	m := New()

	m.ObserveFetch(provider.Response{StatusCode: http.StatusOK}, 20*time.Millisecond)
	m.ObserveFetch(provider.Response{StatusCode: http.StatusNotFound}, 10*time.Millisecond)
	m.ObserveFetch(provider.Response{StatusCode: http.StatusInternalServerError, Err: errors.New("timeout")}, time.Second)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.providerCalls.WithLabelValues("ok", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.providerCalls.WithLabelValues("provider_error", "404")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.providerCalls.WithLabelValues("transport_error", "500")))
	assert.Equal(t, 1, testutil.CollectAndCount(m.providerDuration))
}

func TestMiddleware_LabelsByRoutePattern(t *testing.T) {
	m := New()
	r := chi.NewRouter()
	r.Use(m.Middleware)
	r.Get("/api/rates/{kind}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	for _, path := range []string{"/api/rates/latest", "/api/rates/trend"} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	assert.Equal(t, 2.0, testutil.ToFloat64(m.httpRequests.WithLabelValues("GET", "/api/rates/{kind}", "502")))
}

func TestHandler_ExposesMetrics(t *testing.T) {
	m := New()
	m.ObserveFetch(provider.Response{StatusCode: http.StatusOK}, time.Millisecond)

	w := httptest.NewRecorder()
	m.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.True(t, strings.Contains(body, `fxdash_provider_requests_total{outcome="ok",status="200"} 1`))
	assert.Contains(t, body, "go_goroutines")
}
