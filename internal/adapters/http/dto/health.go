package dto

import (
	"errors"

	"github.com/jsamuelsen11/workitem-service/internal/ports"
)

// Probe and check statuses.
const (
	StatusOK       = "ok"
	StatusReady    = "ready"
	StatusDegraded = "degraded"
	StatusNotReady = "not_ready"
	StatusFailing  = "failing"
)

// LivenessResponse is the body of GET /health/live.
type LivenessResponse struct {
	Status string `json:"status"`
	Uptime string `json:"uptime"`
}

// CheckResult is one dependency's entry in a readiness response.
type CheckResult struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

// ReadinessResponse is the body of GET /health/ready.
type ReadinessResponse struct {
	Status string                 `json:"status"`
	Checks map[string]CheckResult `json:"checks"`
}

// Ready reports whether the service should receive traffic. Degraded
// dependencies do not make it unready.
func (r ReadinessResponse) Ready() bool {
	return r.Status != StatusNotReady
}

// ToReadinessResponse folds health check results into a response. Any
// failing check makes the whole response not_ready; otherwise any degraded
// check makes it degraded.
func ToReadinessResponse(results map[string]error) ReadinessResponse {
	resp := ReadinessResponse{
		Status: StatusReady,
		Checks: make(map[string]CheckResult, len(results)),
	}

	for name, err := range results {
		switch {
		case err == nil:
			resp.Checks[name] = CheckResult{Status: StatusOK}
		case errors.Is(err, ports.ErrDegraded):
			resp.Checks[name] = CheckResult{Status: StatusDegraded, Error: err.Error()}
			if resp.Status == StatusReady {
				resp.Status = StatusDegraded
			}
		default:
			resp.Checks[name] = CheckResult{Status: StatusFailing, Error: err.Error()}
			resp.Status = StatusNotReady
		}
	}
	return resp
}
