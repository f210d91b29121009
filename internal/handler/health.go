package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/osse101/Apiary_Go/internal/logger"
)

// HealthResponse represents the response for health endpoints
type HealthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// HealthCheckFunc reports whether a dependency is reachable
type HealthCheckFunc func(ctx context.Context) error

// HandleHealthz provides a basic liveness check
func HandleHealthz() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, HealthResponse{Status: "ok"})
	}
}

// HandleReadyz reports ready once check succeeds. A nil check is always ready.
func HandleReadyz(check HealthCheckFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if check == nil {
			respondJSON(w, http.StatusOK, HealthResponse{Status: "ok"})
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if err := check(ctx); err != nil {
			logger.FromContext(ctx).Error(LogMsgReadinessFailed, "error", err)
			respondJSON(w, http.StatusServiceUnavailable, HealthResponse{
				Status:  "unavailable",
				Message: "store unreachable",
			})
			return
		}
		respondJSON(w, http.StatusOK, HealthResponse{Status: "ok"})
	}
}
