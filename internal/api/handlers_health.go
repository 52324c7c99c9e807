package api

import (
	"context"
	"net/http"
)

// ReadyResponse represents the readiness response
type ReadyResponse struct {
	Status string `json:"status" example:"ready"`
}

// Pinger reports whether a dependency is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HandleHealthz godoc
// @Summary Health check (liveness)
// @Description Always returns 200 OK if the process is serving. Used for liveness probes.
// @Tags health
// @Produce plain
// @Success 200 {string} string "OK"
// @Router /healthz [get]
func HandleHealthz() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		_, _ = w.Write([]byte("OK"))
	}
}

// HandleReadyz godoc
// @Summary Readiness check
// @Description Asks the rate provider for its currency list. Returns 200 only when the provider answers.
// @Tags health
// @Produce json
// @Success 200 {object} ReadyResponse "Rate provider reachable"
// @Failure 503 {object} ErrorResponse "Rate provider unavailable"
// @Router /readyz [get]
func HandleReadyz(provider Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := provider.Ping(r.Context()); err != nil {
			writeJSON(w, http.StatusServiceUnavailable, ErrorResponse{Error: "Rate provider not ready"})
			return
		}
		writeJSON(w, http.StatusOK, ReadyResponse{Status: "ready"})
	}
}
