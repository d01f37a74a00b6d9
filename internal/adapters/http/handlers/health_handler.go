package handlers

import (
	"net/http"
	"time"

	"github.com/jsamuelsen11/workitem-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/workitem-service/internal/ports"
)

// HealthHandler serves the liveness and readiness probes.
type HealthHandler struct {
	registry ports.HealthRegistry
	started  time.Time
}

// NewHealthHandler returns a HealthHandler reporting on registry.
func NewHealthHandler(registry ports.HealthRegistry) *HealthHandler {
	return &HealthHandler{registry: registry, started: time.Now()}
}

// Liveness handles GET /health/live. It answers 200 while the process can
// serve HTTP at all.
func (h *HealthHandler) Liveness(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, dto.LivenessResponse{
		Status: dto.StatusOK,
		Uptime: time.Since(h.started).Round(time.Second).String(),
	})
}

// Readiness handles GET /health/ready: 200 when every dependency is ok or
// degraded, 503 when any is failing.
func (h *HealthHandler) Readiness(w http.ResponseWriter, r *http.Request) {
	resp := dto.ToReadinessResponse(h.registry.CheckAll(r.Context()))

	code := http.StatusOK
	if !resp.Ready() {
		code = http.StatusServiceUnavailable
	}
	writeJSON(w, r, code, resp)
}
