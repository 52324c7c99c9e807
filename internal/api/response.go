// Package api implements the HTTP handlers of the FX dashboard.
package api

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"fxdashboard/internal/service"
)

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error" example:"from: currency code is required"`
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

// writeServiceError maps a service error onto a status code. Caller mistakes
// are echoed back; provider failures are reported without upstream detail.
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case service.IsInputError(err):
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	case service.IsUpstreamError(err):
		writeJSON(w, http.StatusBadGateway, ErrorResponse{Error: "Rate provider request failed"})
	default:
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "Internal error"})
	}
}

// parseAmount reads an optional amount; an empty value means one unit.
func parseAmount(raw string) (float64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 1, nil
	}
	amount, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, service.ErrInvalidAmount
	}
	return amount, nil
}

// parseYears reads an optional trend horizon, falling back to def.
func parseYears(raw string, def int) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return def, nil
	}
	years, err := strconv.Atoi(raw)
	if err != nil {
		return 0, service.ErrInvalidYears
	}
	return years, nil
}

func displayCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
