package dto

import (
	"strconv"

	"github.com/jsamuelsen11/workitem-service/internal/domain"
	"github.com/jsamuelsen11/workitem-service/internal/domain/workitem"
	"github.com/jsamuelsen11/workitem-service/internal/ports"
)

const (
	msgRequired     = "is required"
	msgMustNotEmpty = "must not be empty"
	msgPositive     = "must be a positive integer"
	msgUnknownKind  = "must be one of epic, story, task"
)

var msgTooMany = "must not contain more than " + strconv.Itoa(MaxBatchItems) + " items"

// MaxBatchItems caps the number of items accepted by a single batch request.
const MaxBatchItems = 500

// ProcessItemRequest identifies one work item inside a batch request.
type ProcessItemRequest struct {
	Kind string `json:"kind"`
	ID   int64  `json:"id"`
}

// ProcessBatchRequest represents the JSON body for POST /api/v1/work-items/process.
type ProcessBatchRequest struct {
	Items []ProcessItemRequest `json:"items"`
}

// Validate checks that the batch is non-empty and every item names a known
// kind and a positive id. Field keys are indexed, e.g. "items[2].kind".
// Returns a *domain.ValidationError if any checks fail.
func (r *ProcessBatchRequest) Validate() error {
	fields := make(map[string]string)

	switch {
	case r.Items == nil:
		fields["items"] = msgRequired
	case len(r.Items) == 0:
		fields["items"] = msgMustNotEmpty
	case len(r.Items) > MaxBatchItems:
		fields["items"] = msgTooMany
	}

	for i, item := range r.Items {
		prefix := "items[" + strconv.Itoa(i) + "]"
		if item.Kind == "" {
			fields[prefix+".kind"] = msgRequired
		} else if _, err := workitem.ParseKind(item.Kind); err != nil {
			fields[prefix+".kind"] = msgUnknownKind
		}
		if item.ID <= 0 {
			fields[prefix+".id"] = msgPositive
		}
	}

	return domain.NewValidationError(fields)
}

// Requests converts the validated batch into service requests.
// Call only after Validate has returned nil.
func (r *ProcessBatchRequest) Requests() []ports.ProcessRequest {
	reqs := make([]ports.ProcessRequest, 0, len(r.Items))
	for _, item := range r.Items {
		kind, _ := workitem.ParseKind(item.Kind)
		reqs = append(reqs, ports.ProcessRequest{Kind: kind, ID: item.ID})
	}
	return reqs
}
