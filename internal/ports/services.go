package ports

import (
	"context"

	"github.com/jsamuelsen11/workitem-service/internal/domain/workitem"
)

// ResultCode is the outcome of processing a single work item.
type ResultCode int

const (
	ResultNotFound         ResultCode = -1
	ResultProcessed        ResultCode = 1
	ResultProcessingFailed ResultCode = -2
)

// String implements fmt.Stringer.
func (r ResultCode) String() string {
	switch r {
	case ResultNotFound:
		return "not_found"
	case ResultProcessed:
		return "processed"
	case ResultProcessingFailed:
		return "processing_failed"
	default:
		return "unknown"
	}
}

// WorkItemProcessor enacts the side effects of a work item's current status.
// Implementations return collaborator errors unchanged in kind (wrapped).
type WorkItemProcessor interface {
	ProcessFor(ctx context.Context, item workitem.WorkItem) error
}

// WorkItemService defines the service port for processing work items.
// Implemented by the application layer; called by inbound adapters (handlers).
// No method returns an error: failures are reported as ResultCode values.
type WorkItemService interface {
	ProcessEpic(ctx context.Context, id int64) ResultCode
	ProcessStory(ctx context.Context, id int64) ResultCode
	ProcessTask(ctx context.Context, id int64) ResultCode

	// Process dispatches to the kind-specific entry point.
	// An unknown kind yields ResultProcessingFailed.
	Process(ctx context.Context, kind workitem.Kind, id int64) ResultCode

	// ProcessBatch processes requests concurrently. Outcomes are returned in
	// request order; each item is contained independently.
	ProcessBatch(ctx context.Context, reqs []ProcessRequest) []ProcessOutcome
}

// ProcessRequest identifies a work item to process.
type ProcessRequest struct {
	Kind workitem.Kind
	ID   int64
}

// ProcessOutcome pairs a request with its result.
type ProcessOutcome struct {
	ProcessRequest
	Result ResultCode
}
