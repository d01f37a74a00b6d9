package httpclient

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/sethvargo/go-retry"

	"github.com/jsamuelsen11/workitem-service/internal/platform/logging"
)

// jitterPercent spreads each delay by up to ±25%.
const jitterPercent = 25

// errRetryableStatus marks an attempt that got a 5xx or 429 response.
var errRetryableStatus = errors.New("retryable status")

// retryPolicy holds the retry values extracted from config.RetryConfig.
type retryPolicy struct {
	maxAttempts     int
	initialInterval time.Duration
	maxInterval     time.Duration
	multiplier      float64
}

// attempts carries per-call retry state between the attempt function and
// the backoff.
type attempts struct {
	n          int
	retryAfter time.Duration
	last       *http.Response
}

// doWithRetry sends req until it gets a non-retryable outcome or the policy
// is exhausted. The body is replayed on every attempt.
//
// When the final attempt still has a retryable status, its response is
// stored in resp with the body open and an error is returned as well. The
// caller closes the body in every case where resp is set.
func (c *Client) doWithRetry(ctx context.Context, req *http.Request, resp **http.Response) error {
	if c.retry.maxAttempts <= 0 {
		return fmt.Errorf("httpclient: maxAttempts must be >= 1, got %d", c.retry.maxAttempts)
	}

	replay, err := replayableBody(req)
	if err != nil {
		return err
	}

	st := &attempts{}
	err = retry.Do(ctx, c.backoff(st), func(ctx context.Context) error {
		if st.last != nil {
			drainResponseBody(st.last)
			st.last = nil
		}
		st.n++
		if st.n > 1 {
			c.logRetry(ctx, req, st.n)
		}

		if err := replay(req); err != nil {
			return err
		}

		r, err := c.httpClient.Do(req)
		if err != nil {
			if isRetryable(err) {
				return retry.RetryableError(err)
			}
			return err
		}

		if !isRetryableStatus(r.StatusCode) {
			*resp = r
			return nil
		}

		st.last = r
		st.retryAfter = parseRetryAfter(r.Header.Get("Retry-After"))
		return retry.RetryableError(fmt.Errorf("HTTP %d from %s: %w", r.StatusCode, c.serviceName, errRetryableStatus))
	})

	if st.last != nil {
		if errors.Is(err, errRetryableStatus) {
			*resp = st.last
		} else {
			drainResponseBody(st.last)
		}
	}
	return err
}

// backoff builds the delay sequence: exponential from initialInterval by
// multiplier, capped at maxInterval, jittered, stretched to any Retry-After
// hint and limited to maxAttempts-1 retries.
func (c *Client) backoff(st *attempts) retry.Backoff {
	p := c.retry

	next := float64(p.initialInterval)
	var b retry.Backoff = retry.BackoffFunc(func() (time.Duration, bool) {
		d := time.Duration(next)
		if next < float64(p.maxInterval) {
			next *= p.multiplier
		}
		return d, false
	})
	b = retry.WithCappedDuration(p.maxInterval, b)
	b = retry.WithJitterPercent(jitterPercent, b)

	hinted := retry.BackoffFunc(func() (time.Duration, bool) {
		d, stop := b.Next()
		if st.retryAfter > d {
			d = min(st.retryAfter, p.maxInterval)
		}
		st.retryAfter = 0
		return d, stop
	})

	return retry.WithMaxRetries(uint64(max(p.maxAttempts-1, 0)), hinted)
}

func (c *Client) logRetry(ctx context.Context, req *http.Request, attempt int) {
	logging.FromContext(ctx).WarnContext(ctx, "retrying HTTP request",
		logging.Op("httpclient.Do"),
		slog.String("method", req.Method),
		slog.String("url", req.URL.Redacted()),
		slog.String("peer_service", c.serviceName),
		slog.Int("attempt", attempt),
		slog.Int("max_attempts", c.retry.maxAttempts),
	)
}

// replayableBody returns a function that rewinds req's body before each
// attempt. Requests built by http.NewRequest over an in-memory reader already
// carry GetBody; any other body is buffered once.
func replayableBody(req *http.Request) (func(*http.Request) error, error) {
	if req.Body == nil || req.Body == http.NoBody {
		return func(*http.Request) error { return nil }, nil
	}

	if req.GetBody == nil {
		data, err := io.ReadAll(req.Body)
		if err != nil {
			return nil, fmt.Errorf("reading request body: %w", err)
		}
		_ = req.Body.Close()
		req.GetBody = func() (io.ReadCloser, error) {
			return io.NopCloser(bytes.NewReader(data)), nil
		}
		req.ContentLength = int64(len(data))
	}

	return func(r *http.Request) error {
		body, err := r.GetBody()
		if err != nil {
			return fmt.Errorf("rewinding request body: %w", err)
		}
		r.Body = body
		return nil
	}, nil
}

// drainResponseBody reads and discards the response body to enable HTTP
// connection reuse before a retry attempt.
func drainResponseBody(resp *http.Response) {
	_, _ = io.Copy(io.Discard, resp.Body)
	_ = resp.Body.Close()
}

// parseRetryAfter reads a Retry-After header given in seconds or as an HTTP
// date. Unparseable or past values yield zero.
func parseRetryAfter(v string) time.Duration {
	if v == "" {
		return 0
	}
	if secs, err := strconv.Atoi(v); err == nil {
		if secs <= 0 {
			return 0
		}
		return time.Duration(secs) * time.Second
	}
	if at, err := http.ParseTime(v); err == nil {
		if d := time.Until(at); d > 0 {
			return d
		}
	}
	return 0
}

// isRetryable reports whether a transport error is worth another attempt.
// Cancellation and deadlines are final; everything else is retried.
func isRetryable(err error) bool {
	if err == nil {
		return false
	}
	return !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded)
}

// isRetryableStatus reports whether a status means the board is briefly
// unable to serve: any 5xx or 429.
func isRetryableStatus(statusCode int) bool {
	return statusCode == http.StatusTooManyRequests || statusCode >= http.StatusInternalServerError
}
