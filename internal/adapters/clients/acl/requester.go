package acl

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/jsamuelsen11/workitem-service/internal/domain"
	"github.com/jsamuelsen11/workitem-service/internal/platform/httpclient"
	"github.com/jsamuelsen11/workitem-service/internal/platform/logging"
)

// Requester runs one JSON call against the board API: it encodes the body,
// sends it through the resilient client, checks the status, translates
// failures to domain errors and decodes the response.
type Requester struct {
	client *httpclient.Client
	logger *slog.Logger
}

// NewRequester creates a Requester backed by the given HTTP client and logger.
func NewRequester(client *httpclient.Client, logger *slog.Logger) *Requester {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Requester{client: client, logger: logger}
}

// Do sends method to path and expects wantStatus. in is encoded as the JSON
// body when non-nil and out receives the decoded response when non-nil.
//
// Any other status goes through TranslateHTTPError. Transport failures and
// breaker rejections are reported as domain.ErrUnavailable.
func (r *Requester) Do(ctx context.Context, method, path string, wantStatus int, in, out any) error {
	req, err := r.newRequest(ctx, method, path, in)
	if err != nil {
		return err
	}

	resp, err := r.client.Do(ctx, req)
	if resp != nil {
		defer r.drain(ctx, resp)
	}

	switch {
	case resp != nil && resp.StatusCode != wantStatus:
		// Also covers retries exhausted on a 5xx, where err is non-nil too.
		terr := TranslateHTTPError(resp)
		r.log(ctx).WarnContext(ctx, "board api rejected request",
			logging.Op(method+" "+path),
			slog.Int("status", resp.StatusCode),
			slog.Int("want_status", wantStatus),
			logging.Err(terr),
		)
		return terr
	case err != nil:
		r.log(ctx).ErrorContext(ctx, "board api unreachable",
			logging.Op(method+" "+path),
			logging.Err(err),
		)
		return fmt.Errorf("%s %s: %w: %w", method, path, domain.ErrUnavailable, err)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding %s %s: %w", method, path, err)
	}
	return nil
}

// BaseURL returns the base URL from the underlying HTTP client.
func (r *Requester) BaseURL() string {
	return r.client.BaseURL()
}

// CircuitBreakerState returns the circuit breaker state from the underlying
// HTTP client.
func (r *Requester) CircuitBreakerState() string {
	return r.client.CircuitBreakerState()
}

func (r *Requester) newRequest(ctx context.Context, method, path string, in any) (*http.Request, error) {
	var body io.Reader = http.NoBody
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return nil, fmt.Errorf("encoding %s %s: %w", method, path, err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, r.client.BaseURL()+path, body)
	if err != nil {
		return nil, fmt.Errorf("building %s %s: %w", method, path, err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return req, nil
}

// drain discards what is left of the body so the connection can be reused.
func (r *Requester) drain(ctx context.Context, resp *http.Response) {
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxErrorBodySize))
	if err := resp.Body.Close(); err != nil {
		r.log(ctx).WarnContext(ctx, "closing board api response", logging.Err(err))
	}
}

// log prefers the request-scoped logger so entries carry request ids.
func (r *Requester) log(ctx context.Context) *slog.Logger {
	if l := logging.FromContext(ctx); l != slog.Default() {
		return l
	}
	return r.logger
}
