// Package httpclient is the resilient outbound HTTP client shared by the
// board API adapters and webhook delivery.
//
// Each call passes through, in order:
//
//	Circuit Breaker → Rate Limiter → Header Propagation → OTEL Span → Retry → HTTP
//
// Construction:
//
//	client := httpclient.New(&cfg.Client, "board-api", metrics, logger)
//
// Executing requests:
//
//	req, _ := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
//	resp, err := client.Do(ctx, req)
//
// Request and correlation IDs set by the inbound middleware travel with ctx:
//
//	ctx = httpclient.WithRequestID(ctx, "req-123")
//	ctx = httpclient.WithCorrelationID(ctx, "corr-456")
package httpclient

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/sony/gobreaker/v2"
	"golang.org/x/time/rate"

	"github.com/jsamuelsen11/workitem-service/internal/platform/config"
	"github.com/jsamuelsen11/workitem-service/internal/platform/telemetry"
)

// ErrRateLimited is returned when ctx ends before the rate limiter admits the
// call. The downstream was never contacted.
var ErrRateLimited = errors.New("httpclient: rate limit wait aborted")

// Client wraps http.Client with a circuit breaker, an optional rate limiter,
// retries, header propagation and tracing. It is safe for concurrent use.
type Client struct {
	httpClient  *http.Client
	baseURL     string
	serviceName string
	breaker     *gobreaker.CircuitBreaker[struct{}]
	limiter     *rate.Limiter
	retry       retryPolicy
	metrics     *telemetry.Metrics
	logger      *slog.Logger
}

// New builds a Client from cfg. serviceName labels the breaker, spans and
// metrics (e.g. "board-api"). A nil metrics disables metric recording and a
// nil logger discards output.
func New(cfg *config.ClientConfig, serviceName string, metrics *telemetry.Metrics, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	c := &Client{
		httpClient:  &http.Client{Timeout: cfg.Timeout},
		baseURL:     cfg.BaseURL,
		serviceName: serviceName,
		retry: retryPolicy{
			maxAttempts:     cfg.Retry.MaxAttempts,
			initialInterval: cfg.Retry.InitialInterval,
			maxInterval:     cfg.Retry.MaxInterval,
			multiplier:      cfg.Retry.Multiplier,
		},
		metrics: metrics,
		logger:  logger,
	}

	c.breaker = newBreaker(serviceName, cfg.CircuitBreaker, logger)

	if rl := cfg.RateLimit; rl.RequestsPerSecond > 0 {
		c.limiter = rate.NewLimiter(rate.Limit(rl.RequestsPerSecond), max(rl.BurstSize, 1))
	}

	return c
}

// Do sends req through the breaker, limiter, propagation, tracing and retry
// steps.
//
// On success resp is non-nil and the caller closes its body. When retries run
// out on a retryable status, both resp and err are non-nil and the caller
// still closes resp.Body. Breaker rejections, limiter waits cut short by ctx
// and transport errors return a nil resp.
func (c *Client) Do(ctx context.Context, req *http.Request) (*http.Response, error) {
	start := time.Now()

	var resp *http.Response
	_, err := c.breaker.Execute(func() (struct{}, error) {
		if c.limiter != nil {
			if err := c.limiter.Wait(ctx); err != nil {
				return struct{}{}, fmt.Errorf("%w: %w", ErrRateLimited, err)
			}
		}

		ctx, span := c.startSpan(ctx, req)
		defer span.End()

		propagate(ctx, req)
		err := c.doWithRetry(ctx, req.WithContext(ctx), &resp)
		endSpan(span, resp, err)
		return struct{}{}, err
	})

	c.recordMetrics(ctx, req.Method, time.Since(start), resp, err)
	return resp, err
}

// BaseURL returns the base URL configured for this client.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Name returns the downstream service identifier. With HealthCheck it lets a
// Client be registered as a ports.HealthChecker.
func (c *Client) Name() string {
	return c.serviceName
}
