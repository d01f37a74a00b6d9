package acl

import (
	"context"
	"fmt"

	"github.com/jsamuelsen11/workitem-service/internal/ports"
)

// BoardServiceName identifies the board API in health results, traces and
// client metrics.
const BoardServiceName = "board-api"

// Name returns the identifier used when this component is registered with a
// [ports.HealthRegistry].
func (c *BoardClient) Name() string {
	return BoardServiceName
}

// HealthCheck reports the board API's availability from the circuit breaker
// state. No network call is made.
//
// A half-open breaker is reported as degraded and an open one as failing.
// This reports downstream status, not service readiness: tying readiness to
// the board would keep traffic away and the breaker would never close again.
func (c *BoardClient) HealthCheck(_ context.Context) error {
	state := c.req.CircuitBreakerState()
	switch state {
	case "closed":
		return nil
	case "half-open":
		return fmt.Errorf("%s: %w (circuit breaker half-open)", BoardServiceName, ports.ErrDegraded)
	case "open":
		return fmt.Errorf("%s: failing (circuit breaker open)", BoardServiceName)
	default:
		return fmt.Errorf("%s: unknown circuit breaker state %q", BoardServiceName, state)
	}
}
