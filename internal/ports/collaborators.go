package ports

import (
	"context"

	"github.com/jsamuelsen11/workitem-service/internal/domain/event"
	"github.com/jsamuelsen11/workitem-service/internal/domain/workitem"
)

// ProjectBacklogService places stories and epics on a project backlog.
type ProjectBacklogService interface {
	// MoveToReadyForDevelopment marks a story as ready for development on the
	// given project's backlog.
	MoveToReadyForDevelopment(ctx context.Context, story *workitem.Story, project *workitem.Project) error

	// PutOnTop moves an epic to the top of its project's backlog.
	PutOnTop(ctx context.Context, epic *workitem.Epic) error
}

// SprintBacklogService places tasks on a sprint backlog.
type SprintBacklogService interface {
	// MoveToReadyForDevelopment marks a task as ready for development in the
	// given sprint. Returns domain.ErrValidation if sprint is nil.
	MoveToReadyForDevelopment(ctx context.Context, task *workitem.Task, sprint *workitem.Sprint) error
}

// StoryProgressService keeps a story's progress in step with its tasks.
type StoryProgressService interface {
	// UpdateProgressOf recomputes the story's progress and status after task
	// changed. The story is updated in place. A nil story is a no-op.
	UpdateProgressOf(ctx context.Context, story *workitem.Story, task *workitem.Task) error

	// AttachPartialApprovalFor records that a task was approved outside a
	// story. storyID is workitem.NoStory when there is no story context.
	AttachPartialApprovalFor(ctx context.Context, storyID, taskID int64) error
}

// StoryProgressStore persists story progress computed by StoryProgressService.
type StoryProgressStore interface {
	SaveStoryProgress(ctx context.Context, story *workitem.Story) error
	RecordPartialApproval(ctx context.Context, storyID, taskID int64) error
}

// CommunicationService notifies people about work items.
type CommunicationService interface {
	// NotifyTeamsAbout notifies every team on the project about item.
	NotifyTeamsAbout(ctx context.Context, item workitem.WorkItem, project *workitem.Project) error

	// Notify sends a notification about item to a single recipient.
	Notify(ctx context.Context, item workitem.WorkItem, recipient workitem.Collaborator) error
}

// EventSink accepts domain events from the processor.
type EventSink interface {
	Publish(ctx context.Context, e event.Event) error
}

// EventPublisher delivers envelopes to subscribers.
type EventPublisher interface {
	Publish(ctx context.Context, env event.Envelope) error
}
