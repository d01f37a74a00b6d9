package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/jsamuelsen11/workitem-service/internal/domain"
)

// FailureKind classifies why processing a work item failed. It is reported
// on logs, spans and metrics; callers of the service only see a ResultCode.
type FailureKind string

const (
	FailureUnsupported FailureKind = "unsupported_work_item"
	FailureValidation  FailureKind = "validation"
	FailureNotFound    FailureKind = "not_found"
	FailureDangling    FailureKind = "dangling_reference"
	FailureUnavailable FailureKind = "unavailable"
	FailureConflict    FailureKind = "conflict"
	FailureForbidden   FailureKind = "forbidden"
	FailurePanic       FailureKind = "panic"
	FailureCanceled    FailureKind = "canceled"
	FailureUnknown     FailureKind = "unknown"
)

// ErrPanic marks a failure recovered from a panic during processing.
var ErrPanic = errors.New("panic during processing")

// ClassifyFailure maps err to a FailureKind. Checks are ordered so that a
// panic or cancellation wins over whatever it may wrap.
func ClassifyFailure(err error) FailureKind {
	switch {
	case errors.Is(err, ErrPanic):
		return FailurePanic
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return FailureCanceled
	case errors.Is(err, domain.ErrUnsupportedWorkItem):
		return FailureUnsupported
	case errors.Is(err, domain.ErrValidation):
		return FailureValidation
	case errors.Is(err, domain.ErrDanglingReference):
		return FailureDangling
	case errors.Is(err, domain.ErrNotFound):
		return FailureNotFound
	case errors.Is(err, domain.ErrUnavailable):
		return FailureUnavailable
	case errors.Is(err, domain.ErrConflict):
		return FailureConflict
	case errors.Is(err, domain.ErrForbidden):
		return FailureForbidden
	default:
		return FailureUnknown
	}
}

func panicError(v any) error {
	if err, ok := v.(error); ok {
		return fmt.Errorf("%w: %w", ErrPanic, err)
	}
	return fmt.Errorf("%w: %v", ErrPanic, v)
}
