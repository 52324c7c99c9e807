package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestRequestIDMiddleware(t *testing.T) {
	t.Run("assigns a UUID", func(t *testing.T) {
		var seen string
		handler := RequestIDMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			seen = RequestIDFromContext(r.Context())
		}))

		w := httptest.NewRecorder()
		handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

		_, err := uuid.Parse(seen)
		require.NoError(t, err)
		assert.Equal(t, seen, w.Header().Get(HeaderRequestID))
	})

	t.Run("keeps caller's ID", func(t *testing.T) {
		var seen string
		handler := RequestIDMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			seen = RequestIDFromContext(r.Context())
		}))

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(HeaderRequestID, "trace-42")
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)

		assert.Equal(t, "trace-42", seen)
		assert.Equal(t, "trace-42", w.Header().Get(HeaderRequestID))
	})
}

func TestRequestIDFromContext_Missing(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.Empty(t, RequestIDFromContext(req.Context()))
}

func TestRequestLoggingMiddleware(t *testing.T) {
	newLogged := func(h http.HandlerFunc) (http.Handler, *observer.ObservedLogs) {
		core, logs := observer.New(zapcore.DebugLevel)
		return RequestIDMiddleware(RequestLoggingMiddleware(zap.New(core).Sugar())(h)), logs
	}

	t.Run("logs success at info", func(t *testing.T) {
		handler, logs := newLogged(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("hello"))
		})

		req := httptest.NewRequest(http.MethodGet, "/api/rates/latest?from=USD&to=EUR", nil)
		req.Header.Set(HeaderRequestID, "abc")
		handler.ServeHTTP(httptest.NewRecorder(), req)

		require.Equal(t, 1, logs.Len())
		entry := logs.All()[0]
		assert.Equal(t, zapcore.InfoLevel, entry.Level)
		fields := entry.ContextMap()
		assert.Equal(t, "abc", fields["request_id"])
		assert.Equal(t, "/api/rates/latest", fields["path"])
		assert.Equal(t, "from=USD&to=EUR", fields["query"])
		assert.EqualValues(t, http.StatusOK, fields["status"])
		assert.EqualValues(t, 5, fields["bytes"])
	})

	t.Run("logs server errors at warn", func(t *testing.T) {
		handler, logs := newLogged(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		})

		handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/currencies", nil))

		require.Equal(t, 1, logs.Len())
		assert.Equal(t, zapcore.WarnLevel, logs.All()[0].Level)
		assert.EqualValues(t, http.StatusBadGateway, logs.All()[0].ContextMap()["status"])
	})

	t.Run("no write defaults to 200", func(t *testing.T) {
		handler, logs := newLogged(func(w http.ResponseWriter, r *http.Request) {})

		handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/healthz", nil))

		assert.EqualValues(t, http.StatusOK, logs.All()[0].ContextMap()["status"])
	})
}

func TestStatusRecorder(t *testing.T) {
	w := httptest.NewRecorder()
	rec := &statusRecorder{ResponseWriter: w}

	rec.WriteHeader(http.StatusNotFound)
	rec.WriteHeader(http.StatusOK)
	n, err := rec.Write([]byte("missing"))

	require.NoError(t, err)
	assert.Equal(t, 7, n)
	assert.Equal(t, http.StatusNotFound, rec.status)
	assert.Equal(t, 7, rec.size)
}
