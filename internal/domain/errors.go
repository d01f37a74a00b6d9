package domain

import (
	"errors"
	"maps"
	"slices"
	"strings"
)

// Sentinels classify failures across layers. Adapters map them to transport
// status codes with errors.Is.
var (
	ErrNotFound    = errors.New("not found")
	ErrValidation  = errors.New("validation error")
	ErrConflict    = errors.New("conflict")
	ErrForbidden   = errors.New("forbidden")
	ErrUnavailable = errors.New("unavailable")

	// ErrUnsupportedWorkItem is returned when processing meets a work item
	// variant that has no behavior defined for its status.
	ErrUnsupportedWorkItem = errors.New("unsupported work item type")

	// ErrDanglingReference is returned when an item exists but a parent it
	// names (story, epic, project, sprint) does not. It never matches
	// ErrNotFound.
	ErrDanglingReference = errors.New("dangling reference")
)

// MsgRequired is the validation message for mandatory fields.
const MsgRequired = "is required"

// ValidationError reports invalid input field by field. It matches
// ErrValidation under errors.Is.
type ValidationError struct {
	Fields map[string]string
}

// NewValidationError returns nil when fields is empty, so callers can collect
// problems and return the result unconditionally.
func NewValidationError(fields map[string]string) error {
	if len(fields) == 0 {
		return nil
	}
	return &ValidationError{Fields: fields}
}

// Invalid reports a single bad field.
func Invalid(field, msg string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: msg}}
}

func (e *ValidationError) Error() string {
	var b strings.Builder
	b.WriteString(ErrValidation.Error())
	for i, field := range slices.Sorted(maps.Keys(e.Fields)) {
		if i == 0 {
			b.WriteString(": ")
		} else {
			b.WriteString("; ")
		}
		b.WriteString(field + ": " + e.Fields[field])
	}
	return b.String()
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}
