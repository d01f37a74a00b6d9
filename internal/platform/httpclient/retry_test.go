package httpclient

import (
	"context"
	"errors"
	"io"
	"net"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func policyClient(p retryPolicy) *Client {
	return &Client{retry: p}
}

func within(t *testing.T, got, want time.Duration) {
	t.Helper()
	spread := want * jitterPercent / 100
	assert.GreaterOrEqual(t, got, want-spread, "delay below jitter window of %v", want)
	assert.LessOrEqual(t, got, want+spread, "delay above jitter window of %v", want)
}

func TestBackoff_ExponentialWithCap(t *testing.T) {
	t.Parallel()

	c := policyClient(retryPolicy{
		maxAttempts:     6,
		initialInterval: 100 * time.Millisecond,
		maxInterval:     500 * time.Millisecond,
		multiplier:      2,
	})
	b := c.backoff(&attempts{})

	for i, want := range []time.Duration{
		100 * time.Millisecond,
		200 * time.Millisecond,
		400 * time.Millisecond,
		500 * time.Millisecond,
		500 * time.Millisecond,
	} {
		d, stop := b.Next()
		require.False(t, stop, "retry %d stopped early", i+1)
		within(t, d, want)
	}

	_, stop := b.Next()
	assert.True(t, stop, "backoff must stop after maxAttempts-1 retries")
}

func TestBackoff_SingleAttemptNeverRetries(t *testing.T) {
	t.Parallel()

	b := policyClient(retryPolicy{
		maxAttempts:     1,
		initialInterval: time.Millisecond,
		maxInterval:     time.Second,
		multiplier:      2,
	}).backoff(&attempts{})

	_, stop := b.Next()
	assert.True(t, stop)
}

func TestBackoff_RetryAfterHint(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		hint time.Duration
		want time.Duration
	}{
		{"hint below schedule is ignored", time.Millisecond, 100 * time.Millisecond},
		{"hint stretches delay", 2 * time.Second, 2 * time.Second},
		{"hint is capped at max interval", time.Minute, 5 * time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			st := &attempts{retryAfter: tt.hint}
			b := policyClient(retryPolicy{
				maxAttempts:     3,
				initialInterval: 100 * time.Millisecond,
				maxInterval:     5 * time.Second,
				multiplier:      2,
			}).backoff(st)

			d, stop := b.Next()
			require.False(t, stop)
			if tt.hint > 125*time.Millisecond {
				assert.Equal(t, tt.want, d)
			} else {
				within(t, d, tt.want)
			}
			assert.Zero(t, st.retryAfter, "hint is consumed by a single delay")
		})
	}
}

func TestParseRetryAfter(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		value string
		want  time.Duration
	}{
		{"empty", "", 0},
		{"seconds", "3", 3 * time.Second},
		{"zero", "0", 0},
		{"negative", "-4", 0},
		{"garbage", "soon", 0},
		{"past date", "Mon, 02 Jan 2006 15:04:05 GMT", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, parseRetryAfter(tt.value))
		})
	}

	t.Run("future date", func(t *testing.T) {
		t.Parallel()

		at := time.Now().Add(time.Hour).UTC().Format(http.TimeFormat)
		got := parseRetryAfter(at)
		assert.Greater(t, got, 58*time.Minute)
		assert.LessOrEqual(t, got, time.Hour)
	})
}

func TestIsRetryable(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"canceled", context.Canceled, false},
		{"deadline", context.DeadlineExceeded, false},
		{"wrapped canceled", errors.Join(errors.New("dial"), context.Canceled), false},
		{"connection refused", &net.OpError{Op: "dial", Err: errors.New("connection refused")}, true},
		{"unexpected eof", io.ErrUnexpectedEOF, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, isRetryable(tt.err))
		})
	}
}

func TestIsRetryableStatus(t *testing.T) {
	t.Parallel()

	for status, want := range map[int]bool{
		http.StatusOK:                  false,
		http.StatusNoContent:           false,
		http.StatusBadRequest:          false,
		http.StatusNotFound:            false,
		http.StatusConflict:            false,
		http.StatusTooManyRequests:     true,
		http.StatusInternalServerError: true,
		http.StatusBadGateway:          true,
		http.StatusServiceUnavailable:  true,
	} {
		assert.Equal(t, want, isRetryableStatus(status), "status %d", status)
	}
}

func TestReplayableBody(t *testing.T) {
	t.Parallel()

	readAll := func(t *testing.T, req *http.Request) string {
		t.Helper()
		b, err := io.ReadAll(req.Body)
		require.NoError(t, err)
		return string(b)
	}

	t.Run("no body", func(t *testing.T) {
		t.Parallel()

		req, err := http.NewRequestWithContext(context.Background(), http.MethodGet, "http://board", http.NoBody)
		require.NoError(t, err)

		replay, err := replayableBody(req)
		require.NoError(t, err)
		require.NoError(t, replay(req))
		assert.Equal(t, http.NoBody, req.Body)
	})

	t.Run("body with GetBody", func(t *testing.T) {
		t.Parallel()

		req, err := http.NewRequestWithContext(context.Background(), http.MethodPut, "http://board", strings.NewReader(`{"status":"ready"}`))
		require.NoError(t, err)

		replay, err := replayableBody(req)
		require.NoError(t, err)
		for range 2 {
			require.NoError(t, replay(req))
			assert.Equal(t, `{"status":"ready"}`, readAll(t, req))
		}
	})

	t.Run("opaque body is buffered", func(t *testing.T) {
		t.Parallel()

		req, err := http.NewRequestWithContext(context.Background(), http.MethodPut, "http://board", io.MultiReader(strings.NewReader("abc")))
		require.NoError(t, err)
		require.Nil(t, req.GetBody)

		replay, err := replayableBody(req)
		require.NoError(t, err)
		assert.Equal(t, int64(3), req.ContentLength)
		for range 2 {
			require.NoError(t, replay(req))
			assert.Equal(t, "abc", readAll(t, req))
		}
	})
}
