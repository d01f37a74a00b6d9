// Package acl implements the Anti-Corruption Layer that translates between
// the downstream board API's representations and work item domain types.
// DTOs and translators live in the acl/board subpackage; the clients, the
// shared request lifecycle and error mapping live here.
package acl

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/jsamuelsen11/workitem-service/internal/domain"
)

const (
	maxErrorBodySize   = 1 << 20
	problemContentType = "application/problem+json"
)

// statusSentinels maps board API status codes to domain sentinels. Statuses
// not listed here, and not 5xx, produce a BoardError without a sentinel.
var statusSentinels = map[int]error{
	http.StatusBadRequest:          domain.ErrValidation,
	http.StatusUnprocessableEntity: domain.ErrValidation,
	http.StatusUnauthorized:        domain.ErrForbidden,
	http.StatusForbidden:           domain.ErrForbidden,
	http.StatusNotFound:            domain.ErrNotFound,
	http.StatusGone:                domain.ErrNotFound,
	http.StatusConflict:            domain.ErrConflict,
	http.StatusLocked:              domain.ErrConflict,
	http.StatusTooManyRequests:     domain.ErrUnavailable,
}

// BoardError is a non-success response from the board API. It unwraps to the
// matching domain sentinel so callers classify it with errors.Is.
type BoardError struct {
	Status int
	Type   string
	Detail string
	kind   error
}

func (e *BoardError) Error() string {
	if e.kind == nil {
		return fmt.Sprintf("board api: unexpected status %d: %s", e.Status, e.Detail)
	}
	return fmt.Sprintf("board api %d: %s: %s", e.Status, e.Detail, e.kind)
}

func (e *BoardError) Unwrap() error {
	return e.kind
}

// problemDetail is the RFC 9457 body the board API sends with errors.
type problemDetail struct {
	Type   string `json:"type"`
	Detail string `json:"detail"`
	Errors []struct {
		Location string `json:"location"`
		Message  string `json:"message"`
	} `json:"errors"`
}

// TranslateHTTPError maps a board API error response to a domain error.
// Validation responses that carry field errors become *domain.ValidationError;
// everything else becomes a *BoardError.
func TranslateHTTPError(resp *http.Response) error {
	pd := readProblem(resp)

	kind := statusSentinels[resp.StatusCode]
	if kind == nil && resp.StatusCode >= http.StatusInternalServerError {
		kind = domain.ErrUnavailable
	}

	if kind == domain.ErrValidation && len(pd.Errors) > 0 {
		fields := make(map[string]string, len(pd.Errors))
		for _, fe := range pd.Errors {
			fields[strings.TrimPrefix(fe.Location, "body.")] = fe.Message
		}
		return domain.NewValidationError(fields)
	}

	detail := pd.Detail
	if detail == "" {
		detail = http.StatusText(resp.StatusCode)
	}
	return &BoardError{Status: resp.StatusCode, Type: pd.Type, Detail: detail, kind: kind}
}

// readProblem decodes a problem+json body. Any other body, or a body that
// does not parse, yields the zero value.
func readProblem(resp *http.Response) problemDetail {
	var pd problemDetail
	if resp.Body == nil || !strings.HasPrefix(resp.Header.Get("Content-Type"), problemContentType) {
		return pd
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodySize))
	if err != nil {
		return problemDetail{}
	}
	if err := json.Unmarshal(body, &pd); err != nil {
		return problemDetail{}
	}
	return pd
}
