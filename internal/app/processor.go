package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jsamuelsen11/workitem-service/internal/domain"
	"github.com/jsamuelsen11/workitem-service/internal/domain/event"
	"github.com/jsamuelsen11/workitem-service/internal/domain/workitem"
	"github.com/jsamuelsen11/workitem-service/internal/platform/logging"
	"github.com/jsamuelsen11/workitem-service/internal/ports"
)

// Compile-time check that Processor implements ports.WorkItemProcessor.
var _ ports.WorkItemProcessor = (*Processor)(nil)

// ProcessorDeps groups the collaborators the Processor calls to enact side
// effects. All fields are required.
type ProcessorDeps struct {
	ProjectBacklog ports.ProjectBacklogService
	SprintBacklog  ports.SprintBacklogService
	Progress       ports.StoryProgressService
	Communication  ports.CommunicationService
	Events         ports.EventSink
}

// ProcessorOption configures a Processor.
type ProcessorOption func(*Processor)

// WithClock sets the function used to timestamp published events.
func WithClock(now func() time.Time) ProcessorOption {
	return func(p *Processor) {
		p.now = now
	}
}

// Processor dispatches on a work item's status and concrete kind and calls
// the collaborators that enact the transition. It holds no mutable state and
// is safe for concurrent use. Collaborator errors are wrapped and returned;
// containment is the caller's concern.
type Processor struct {
	projectBacklog ports.ProjectBacklogService
	sprintBacklog  ports.SprintBacklogService
	progress       ports.StoryProgressService
	communication  ports.CommunicationService
	events         ports.EventSink
	logger         *slog.Logger
	now            func() time.Time
}

// NewProcessor creates a Processor. A nil logger discards output.
func NewProcessor(deps ProcessorDeps, logger *slog.Logger, opts ...ProcessorOption) *Processor {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	p := &Processor{
		projectBacklog: deps.ProjectBacklog,
		sprintBacklog:  deps.SprintBacklog,
		progress:       deps.Progress,
		communication:  deps.Communication,
		events:         deps.Events,
		logger:         logger,
		now:            time.Now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// ProcessFor enacts the side effects of item's current status. Statuses
// without a defined behavior are no-ops.
func (p *Processor) ProcessFor(ctx context.Context, item workitem.WorkItem) error {
	if item == nil || isNilVariant(item) {
		return fmt.Errorf("processing work item: %w", domain.ErrValidation)
	}

	common := item.Common()
	p.logger.DebugContext(ctx, "dispatching work item",
		logging.WorkItem(item.Kind(), common.ID),
		slog.String("status", common.Status.String()),
	)

	switch common.Status {
	case workitem.StatusDefined:
		return p.onDefined(ctx, item)
	case workitem.StatusInProgress:
		return p.onInProgress(ctx, item)
	case workitem.StatusDone:
		return p.onDone(ctx, item)
	case workitem.StatusApproved:
		return p.onApproved(ctx, item)
	case workitem.StatusReleased:
		return p.publish(ctx, event.ItemReleased{ItemID: common.ID, Kind: item.Kind(), At: p.now()})
	default:
		return nil
	}
}

// isNilVariant reports a typed nil such as (*workitem.Epic)(nil), which
// passes an interface nil check.
func isNilVariant(item workitem.WorkItem) bool {
	switch it := item.(type) {
	case *workitem.Epic:
		return it == nil
	case *workitem.Story:
		return it == nil
	case *workitem.Task:
		return it == nil
	default:
		return false
	}
}

func (p *Processor) onDefined(ctx context.Context, item workitem.WorkItem) error {
	switch it := item.(type) {
	case *workitem.Story:
		return p.storyDefined(ctx, it)
	case *workitem.Task:
		if err := p.sprintBacklog.MoveToReadyForDevelopment(ctx, it, it.Sprint); err != nil {
			return fmt.Errorf("moving task %d to sprint backlog: %w", it.ID, err)
		}
		return nil
	case *workitem.Epic:
		return p.epicDefined(ctx, it)
	default:
		return fmt.Errorf("%w: %T", domain.ErrUnsupportedWorkItem, item)
	}
}

func (p *Processor) storyDefined(ctx context.Context, story *workitem.Story) error {
	if story.HasTasks() && story.IsAssigned() {
		return nil
	}

	project := story.OwningProject()
	if project == nil {
		return fmt.Errorf("story %d has no project: %w", story.ID, domain.ErrValidation)
	}

	if !story.HasTasks() {
		if err := p.projectBacklog.MoveToReadyForDevelopment(ctx, story, project); err != nil {
			return fmt.Errorf("moving story %d to project backlog: %w", story.ID, err)
		}
		return nil
	}

	if err := p.communication.NotifyTeamsAbout(ctx, story, project); err != nil {
		return fmt.Errorf("notifying teams about story %d: %w", story.ID, err)
	}
	return nil
}

func (p *Processor) epicDefined(ctx context.Context, epic *workitem.Epic) error {
	project := epic.OwningProject()
	if project == nil {
		return fmt.Errorf("epic %d has no project: %w", epic.ID, domain.ErrValidation)
	}

	if err := p.projectBacklog.PutOnTop(ctx, epic); err != nil {
		return fmt.Errorf("putting epic %d on top of backlog: %w", epic.ID, err)
	}
	if err := p.publish(ctx, event.EpicReadyToPrioritize{EpicID: epic.ID, At: p.now()}); err != nil {
		return err
	}
	if err := p.communication.Notify(ctx, epic, project.ProductOwner); err != nil {
		return fmt.Errorf("notifying product owner about epic %d: %w", epic.ID, err)
	}
	return nil
}

func (p *Processor) onInProgress(ctx context.Context, item workitem.WorkItem) error {
	task, ok := item.(*workitem.Task)
	if !ok {
		return nil
	}
	return p.updateProgress(ctx, task)
}

func (p *Processor) onDone(ctx context.Context, item workitem.WorkItem) error {
	switch it := item.(type) {
	case *workitem.Story:
		return p.publish(ctx, event.StoryDone{StoryID: it.ID, At: p.now()})
	case *workitem.Task:
		if err := p.updateProgress(ctx, it); err != nil {
			return err
		}
		if it.Story != nil && it.Story.Status == workitem.StatusDone {
			return p.publish(ctx, event.StoryDone{StoryID: it.Story.ID, At: p.now()})
		}
	}
	return nil
}

func (p *Processor) onApproved(ctx context.Context, item workitem.WorkItem) error {
	switch it := item.(type) {
	case *workitem.Story:
		return p.publish(ctx, event.StoryApproved{StoryID: it.ID, At: p.now()})
	case *workitem.Task:
		if it.IsSubtask() {
			return p.publish(ctx, event.TaskApproved{TaskID: it.ID, At: p.now()})
		}
		if err := p.progress.AttachPartialApprovalFor(ctx, it.StoryID(), it.ID); err != nil {
			return fmt.Errorf("attaching partial approval for task %d: %w", it.ID, err)
		}
	}
	return nil
}

func (p *Processor) updateProgress(ctx context.Context, task *workitem.Task) error {
	if err := p.progress.UpdateProgressOf(ctx, task.Story, task); err != nil {
		return fmt.Errorf("updating story progress for task %d: %w", task.ID, err)
	}
	return nil
}

func (p *Processor) publish(ctx context.Context, e event.Event) error {
	if err := p.events.Publish(ctx, e); err != nil {
		return fmt.Errorf("publishing %s for %d: %w", e.Name(), e.SubjectID(), err)
	}
	return nil
}
