package dto

import (
	"cmp"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"slices"
	"strings"

	"github.com/jsamuelsen11/workitem-service/internal/domain"
	"github.com/jsamuelsen11/workitem-service/internal/platform/logging"
)

// ProblemContentType is the media type of every error body.
const ProblemContentType = "application/problem+json"

// PathFieldPrefix marks a validation field that names a URL path parameter.
// BodyField names the request body as a whole. Every other field is reported
// under "body.".
const (
	PathFieldPrefix = "path."
	BodyField       = "body"
)

// ErrorResponse is an RFC 9457 problem document.
type ErrorResponse struct {
	Type     string        `json:"type"`
	Title    string        `json:"title"`
	Status   int           `json:"status"`
	Detail   string        `json:"detail,omitempty"`
	Instance string        `json:"instance,omitempty"`
	Errors   []ErrorDetail `json:"errors,omitempty"`
}

// ErrorDetail is one invalid field of a request.
type ErrorDetail struct {
	Location string `json:"location"`
	Message  string `json:"message"`
	Value    any    `json:"value,omitempty"`
}

// statusRules is checked in order; the first sentinel err wraps decides the
// status.
var statusRules = []struct {
	sentinel error
	status   int
}{
	{domain.ErrValidation, http.StatusBadRequest},
	{domain.ErrNotFound, http.StatusNotFound},
	{domain.ErrForbidden, http.StatusForbidden},
	{domain.ErrConflict, http.StatusConflict},
	{domain.ErrUnavailable, http.StatusBadGateway},
	{context.DeadlineExceeded, http.StatusGatewayTimeout},
}

// StatusFor returns the HTTP status for err, 500 when no rule matches.
func StatusFor(err error) int {
	for _, rule := range statusRules {
		if errors.Is(err, rule.sentinel) {
			return rule.status
		}
	}
	return http.StatusInternalServerError
}

// NewErrorResponse builds the problem document for err. Validation errors
// contribute one ErrorDetail per field, sorted by location.
func NewErrorResponse(r *http.Request, err error) ErrorResponse {
	resp := newProblem(r, StatusFor(err), err.Error())

	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		resp.Errors = fieldDetails(verr.Fields)
	}
	return resp
}

// WriteErrorResponse writes the problem document for err.
func WriteErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	writeProblem(w, r, NewErrorResponse(r, err))
}

// WriteStatusProblem writes a problem document for a status that has no
// domain error behind it, such as 405 from the router.
func WriteStatusProblem(w http.ResponseWriter, r *http.Request, status int, detail string) {
	writeProblem(w, r, newProblem(r, status, detail))
}

func newProblem(r *http.Request, status int, detail string) ErrorResponse {
	return ErrorResponse{
		Type:     "about:blank",
		Title:    http.StatusText(status),
		Status:   status,
		Detail:   detail,
		Instance: r.RequestURI,
	}
}

func writeProblem(w http.ResponseWriter, r *http.Request, p ErrorResponse) {
	w.Header().Set("Content-Type", ProblemContentType)
	w.WriteHeader(p.Status)

	if err := json.NewEncoder(w).Encode(p); err != nil {
		logging.FromContext(r.Context()).ErrorContext(r.Context(), "failed to encode problem response",
			slog.Int("status", p.Status),
			logging.Err(err),
		)
	}
}

func fieldDetails(fields map[string]string) []ErrorDetail {
	details := make([]ErrorDetail, 0, len(fields))
	for field, msg := range fields {
		loc := field
		if field != BodyField && !strings.HasPrefix(field, PathFieldPrefix) {
			loc = BodyField + "." + field
		}
		details = append(details, ErrorDetail{Location: loc, Message: msg})
	}
	slices.SortFunc(details, func(a, b ErrorDetail) int {
		return cmp.Compare(a.Location, b.Location)
	})
	return details
}
