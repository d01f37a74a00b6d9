package httpclient

import (
	"context"
	"net/http"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen11/workitem-service/internal/platform/telemetry"
)

const tracerName = "github.com/jsamuelsen11/workitem-service/internal/platform/httpclient"

// Call outcomes used as the metric result label.
const (
	resultSuccess     = "success"
	resultError       = "error"
	resultCircuitOpen = "circuit_open"
)

// startSpan opens one client span covering every retry of a call.
func (c *Client) startSpan(ctx context.Context, req *http.Request) (context.Context, trace.Span) {
	return otel.Tracer(tracerName).Start(ctx, "HTTP "+req.Method+" "+c.serviceName,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			telemetry.AttrHTTPMethod.String(req.Method),
			attribute.String("http.url", req.URL.Redacted()),
			telemetry.AttrPeerService.String(c.serviceName),
		),
	)
}

func endSpan(span trace.Span, resp *http.Response, err error) {
	if resp != nil {
		span.SetAttributes(telemetry.AttrHTTPStatus.Int(resp.StatusCode))
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
}

// outcome classifies a finished call for metrics. status is 0 when no
// response arrived.
func outcome(resp *http.Response, err error) (status int, result string) {
	switch {
	case isBreakerRejection(err):
		return 0, resultCircuitOpen
	case resp == nil:
		return 0, resultError
	case resp.StatusCode >= http.StatusBadRequest:
		return resp.StatusCode, resultError
	default:
		return resp.StatusCode, resultSuccess
	}
}

// recordMetrics runs outside the breaker so rejected calls are counted too.
func (c *Client) recordMetrics(ctx context.Context, method string, elapsed time.Duration, resp *http.Response, err error) {
	if c.metrics == nil {
		return
	}

	status, result := outcome(resp, err)
	attrs := metric.WithAttributes(
		telemetry.AttrHTTPMethod.String(method),
		telemetry.AttrHTTPStatus.Int(status),
		telemetry.AttrPeerService.String(c.serviceName),
		telemetry.AttrResult.String(result),
	)
	c.metrics.ClientRequestDuration.Record(ctx, elapsed.Seconds(), attrs)
	c.metrics.ClientRequestTotal.Add(ctx, 1, attrs)
}
