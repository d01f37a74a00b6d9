package app

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/workitem-service/internal/domain"
	"github.com/jsamuelsen11/workitem-service/internal/domain/event"
	"github.com/jsamuelsen11/workitem-service/internal/domain/workitem"
	"github.com/jsamuelsen11/workitem-service/mocks"
)

var fixedNow = time.Date(2026, 5, 4, 9, 30, 0, 0, time.UTC)

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

type processorHarness struct {
	projectBacklog *mocks.MockProjectBacklogService
	sprintBacklog  *mocks.MockSprintBacklogService
	progress       *mocks.MockStoryProgressService
	communication  *mocks.MockCommunicationService
	events         *mocks.MockEventSink
	processor      *Processor
}

// newProcessorHarness wires a Processor to strict mocks: any call without an
// expectation fails the test.
func newProcessorHarness(t *testing.T) *processorHarness {
	t.Helper()
	h := &processorHarness{
		projectBacklog: mocks.NewMockProjectBacklogService(t),
		sprintBacklog:  mocks.NewMockSprintBacklogService(t),
		progress:       mocks.NewMockStoryProgressService(t),
		communication:  mocks.NewMockCommunicationService(t),
		events:         mocks.NewMockEventSink(t),
	}
	h.processor = NewProcessor(ProcessorDeps{
		ProjectBacklog: h.projectBacklog,
		SprintBacklog:  h.sprintBacklog,
		Progress:       h.progress,
		Communication:  h.communication,
		Events:         h.events,
	}, discardLogger(), WithClock(func() time.Time { return fixedNow }))
	return h
}

type graph struct {
	owner   workitem.Collaborator
	project *workitem.Project
	epic    *workitem.Epic
	story   *workitem.Story
	task    *workitem.Task
	sprint  *workitem.Sprint
}

func newGraph(status workitem.Status) *graph {
	g := &graph{owner: workitem.Collaborator{Name: "Olivia", Email: "po@example.com"}}
	g.project = &workitem.Project{
		ID:           1,
		Name:         "Apollo",
		ProductOwner: g.owner,
		Teams:        []workitem.Team{{ID: 7, Name: "Core", Email: "core@example.com"}},
	}
	g.sprint = &workitem.Sprint{ID: 3, Name: "Sprint 3", ProjectID: g.project.ID}
	g.epic = &workitem.Epic{Item: workitem.Item{ID: 10, Title: "Checkout", Status: status}, Project: g.project}
	g.story = &workitem.Story{Item: workitem.Item{ID: 20, Title: "Pay by card", Status: status}, Epic: g.epic}
	g.task = &workitem.Task{Item: workitem.Item{ID: 30, Title: "Wire gateway", Status: status}, Story: g.story, Sprint: g.sprint}
	return g
}

// foreignItem satisfies workitem.WorkItem without being one of the known
// variants.
type foreignItem struct {
	*workitem.Epic
}

func TestProcessor_Released_PublishesItemReleasedForEveryKind(t *testing.T) {
	t.Parallel()

	g := newGraph(workitem.StatusReleased)
	standalone := &workitem.Task{Item: workitem.Item{ID: 40, Title: "Spike", Status: workitem.StatusReleased}}

	tests := []struct {
		name string
		item workitem.WorkItem
	}{
		{name: "epic", item: g.epic},
		{name: "story", item: g.story},
		{name: "subtask", item: g.task},
		{name: "standalone task", item: standalone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			h := newProcessorHarness(t)

			want := event.ItemReleased{ItemID: tt.item.Common().ID, Kind: tt.item.Kind(), At: fixedNow}
			h.events.EXPECT().Publish(mock.Anything, want).Return(nil).Once()

			require.NoError(t, h.processor.ProcessFor(context.Background(), tt.item))
		})
	}
}

func TestProcessor_DefinedStory(t *testing.T) {
	t.Parallel()

	t.Run("without tasks moves to project backlog", func(t *testing.T) {
		t.Parallel()
		h := newProcessorHarness(t)
		g := newGraph(workitem.StatusDefined)
		g.story.Tasks = nil

		h.projectBacklog.EXPECT().MoveToReadyForDevelopment(mock.Anything, g.story, g.project).Return(nil).Once()

		require.NoError(t, h.processor.ProcessFor(context.Background(), g.story))
	})

	t.Run("with tasks and unassigned notifies teams", func(t *testing.T) {
		t.Parallel()
		h := newProcessorHarness(t)
		g := newGraph(workitem.StatusDefined)
		g.story.Tasks = []*workitem.Task{g.task}

		h.communication.EXPECT().NotifyTeamsAbout(mock.Anything, g.story, g.project).Return(nil).Once()

		require.NoError(t, h.processor.ProcessFor(context.Background(), g.story))
	})

	t.Run("with tasks and assigned does nothing", func(t *testing.T) {
		t.Parallel()
		h := newProcessorHarness(t)
		g := newGraph(workitem.StatusDefined)
		g.story.Tasks = []*workitem.Task{g.task}
		g.story.Assignee = &workitem.Assignee{Name: "Ana", TeamID: 7}

		require.NoError(t, h.processor.ProcessFor(context.Background(), g.story))
	})

	t.Run("without project fails before side effects", func(t *testing.T) {
		t.Parallel()
		h := newProcessorHarness(t)
		g := newGraph(workitem.StatusDefined)
		g.story.Epic = nil

		err := h.processor.ProcessFor(context.Background(), g.story)
		assert.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("backlog failure propagates", func(t *testing.T) {
		t.Parallel()
		h := newProcessorHarness(t)
		g := newGraph(workitem.StatusDefined)

		h.projectBacklog.EXPECT().MoveToReadyForDevelopment(mock.Anything, g.story, g.project).Return(domain.ErrUnavailable)

		err := h.processor.ProcessFor(context.Background(), g.story)
		assert.ErrorIs(t, err, domain.ErrUnavailable)
	})
}

func TestProcessor_DefinedEpic(t *testing.T) {
	t.Parallel()

	t.Run("puts on top, publishes and notifies product owner", func(t *testing.T) {
		t.Parallel()
		h := newProcessorHarness(t)
		g := newGraph(workitem.StatusDefined)

		h.projectBacklog.EXPECT().PutOnTop(mock.Anything, g.epic).Return(nil).Once()
		h.events.EXPECT().Publish(mock.Anything, event.EpicReadyToPrioritize{EpicID: g.epic.ID, At: fixedNow}).Return(nil).Once()
		h.communication.EXPECT().Notify(mock.Anything, g.epic, g.owner).Return(nil).Once()

		require.NoError(t, h.processor.ProcessFor(context.Background(), g.epic))
	})

	t.Run("without project fails before side effects", func(t *testing.T) {
		t.Parallel()
		h := newProcessorHarness(t)
		g := newGraph(workitem.StatusDefined)
		g.epic.Project = nil

		err := h.processor.ProcessFor(context.Background(), g.epic)
		assert.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("publish failure stops before notification", func(t *testing.T) {
		t.Parallel()
		h := newProcessorHarness(t)
		g := newGraph(workitem.StatusDefined)
		busErr := errors.New("bus closed")

		h.projectBacklog.EXPECT().PutOnTop(mock.Anything, g.epic).Return(nil)
		h.events.EXPECT().Publish(mock.Anything, mock.Anything).Return(busErr)

		err := h.processor.ProcessFor(context.Background(), g.epic)
		assert.ErrorIs(t, err, busErr)
	})

	t.Run("two identical snapshots publish twice", func(t *testing.T) {
		t.Parallel()
		h := newProcessorHarness(t)
		first := newGraph(workitem.StatusDefined)
		second := newGraph(workitem.StatusDefined)

		h.projectBacklog.EXPECT().PutOnTop(mock.Anything, mock.Anything).Return(nil).Times(2)
		h.events.EXPECT().Publish(mock.Anything, event.EpicReadyToPrioritize{EpicID: 10, At: fixedNow}).Return(nil).Times(2)
		h.communication.EXPECT().Notify(mock.Anything, mock.Anything, first.owner).Return(nil).Times(2)

		require.NoError(t, h.processor.ProcessFor(context.Background(), first.epic))
		require.NoError(t, h.processor.ProcessFor(context.Background(), second.epic))
	})
}

func TestProcessor_DefinedTask_MovesToSprintBacklog(t *testing.T) {
	t.Parallel()
	h := newProcessorHarness(t)
	g := newGraph(workitem.StatusDefined)

	h.sprintBacklog.EXPECT().MoveToReadyForDevelopment(mock.Anything, g.task, g.sprint).Return(nil).Once()

	require.NoError(t, h.processor.ProcessFor(context.Background(), g.task))
}

func TestProcessor_DefinedUnknownVariant(t *testing.T) {
	t.Parallel()
	h := newProcessorHarness(t)
	g := newGraph(workitem.StatusDefined)

	err := h.processor.ProcessFor(context.Background(), foreignItem{Epic: g.epic})
	assert.ErrorIs(t, err, domain.ErrUnsupportedWorkItem)
}

func TestProcessor_InProgress(t *testing.T) {
	t.Parallel()

	t.Run("task updates story progress", func(t *testing.T) {
		t.Parallel()
		h := newProcessorHarness(t)
		g := newGraph(workitem.StatusInProgress)

		h.progress.EXPECT().UpdateProgressOf(mock.Anything, g.story, g.task).Return(nil).Once()

		require.NoError(t, h.processor.ProcessFor(context.Background(), g.task))
	})

	t.Run("standalone task passes no story", func(t *testing.T) {
		t.Parallel()
		h := newProcessorHarness(t)
		task := &workitem.Task{Item: workitem.Item{ID: 41, Title: "Spike", Status: workitem.StatusInProgress}}

		h.progress.EXPECT().UpdateProgressOf(mock.Anything, (*workitem.Story)(nil), task).Return(nil).Once()

		require.NoError(t, h.processor.ProcessFor(context.Background(), task))
	})

	t.Run("story and epic do nothing", func(t *testing.T) {
		t.Parallel()
		h := newProcessorHarness(t)
		g := newGraph(workitem.StatusInProgress)

		require.NoError(t, h.processor.ProcessFor(context.Background(), g.story))
		require.NoError(t, h.processor.ProcessFor(context.Background(), g.epic))
	})
}

func TestProcessor_DoneTask(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		storyAfter  workitem.Status
		wantPublish bool
	}{
		{name: "story done after update publishes StoryDone", storyAfter: workitem.StatusDone, wantPublish: true},
		{name: "story still in progress publishes nothing", storyAfter: workitem.StatusInProgress},
		{name: "story approved publishes nothing", storyAfter: workitem.StatusApproved},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			h := newProcessorHarness(t)
			g := newGraph(workitem.StatusDone)
			g.story.Status = workitem.StatusInProgress

			h.progress.EXPECT().UpdateProgressOf(mock.Anything, g.story, g.task).
				RunAndReturn(func(_ context.Context, s *workitem.Story, _ *workitem.Task) error {
					s.Status = tt.storyAfter
					return nil
				}).Once()
			if tt.wantPublish {
				h.events.EXPECT().Publish(mock.Anything, event.StoryDone{StoryID: g.story.ID, At: fixedNow}).Return(nil).Once()
			}

			require.NoError(t, h.processor.ProcessFor(context.Background(), g.task))
		})
	}
}

func TestProcessor_DoneStory_PublishesStoryDone(t *testing.T) {
	t.Parallel()
	h := newProcessorHarness(t)
	g := newGraph(workitem.StatusDone)

	h.events.EXPECT().Publish(mock.Anything, event.StoryDone{StoryID: g.story.ID, At: fixedNow}).Return(nil).Once()

	require.NoError(t, h.processor.ProcessFor(context.Background(), g.story))
	require.NoError(t, h.processor.ProcessFor(context.Background(), g.epic))
}

func TestProcessor_ProgressFailureSkipsStoryDone(t *testing.T) {
	t.Parallel()
	h := newProcessorHarness(t)
	g := newGraph(workitem.StatusDone)

	h.progress.EXPECT().UpdateProgressOf(mock.Anything, g.story, g.task).Return(domain.ErrConflict)

	err := h.processor.ProcessFor(context.Background(), g.task)
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestProcessor_Approved(t *testing.T) {
	t.Parallel()

	t.Run("story publishes StoryApproved", func(t *testing.T) {
		t.Parallel()
		h := newProcessorHarness(t)
		g := newGraph(workitem.StatusApproved)

		h.events.EXPECT().Publish(mock.Anything, event.StoryApproved{StoryID: g.story.ID, At: fixedNow}).Return(nil).Once()

		require.NoError(t, h.processor.ProcessFor(context.Background(), g.story))
	})

	t.Run("subtask publishes TaskApproved only", func(t *testing.T) {
		t.Parallel()
		h := newProcessorHarness(t)
		g := newGraph(workitem.StatusApproved)

		h.events.EXPECT().Publish(mock.Anything, event.TaskApproved{TaskID: g.task.ID, At: fixedNow}).Return(nil).Once()

		require.NoError(t, h.processor.ProcessFor(context.Background(), g.task))
	})

	t.Run("standalone task attaches partial approval only", func(t *testing.T) {
		t.Parallel()
		h := newProcessorHarness(t)
		task := &workitem.Task{Item: workitem.Item{ID: 42, Title: "Hotfix", Status: workitem.StatusApproved}}

		h.progress.EXPECT().AttachPartialApprovalFor(mock.Anything, workitem.NoStory, int64(42)).Return(nil).Once()

		require.NoError(t, h.processor.ProcessFor(context.Background(), task))
	})

	t.Run("epic does nothing", func(t *testing.T) {
		t.Parallel()
		h := newProcessorHarness(t)
		g := newGraph(workitem.StatusApproved)

		require.NoError(t, h.processor.ProcessFor(context.Background(), g.epic))
	})
}

func TestProcessor_StatusesWithoutBehaviorAreNoOps(t *testing.T) {
	t.Parallel()

	for _, status := range []workitem.Status{workitem.StatusToBeDefined, "archived", ""} {
		t.Run(string(status), func(t *testing.T) {
			t.Parallel()
			h := newProcessorHarness(t)
			g := newGraph(status)

			for _, item := range []workitem.WorkItem{g.epic, g.story, g.task} {
				require.NoError(t, h.processor.ProcessFor(context.Background(), item))
			}
		})
	}
}

func TestProcessor_NilItem(t *testing.T) {
	t.Parallel()
	h := newProcessorHarness(t)

	tests := []struct {
		name string
		item workitem.WorkItem
	}{
		{name: "untyped", item: nil},
		{name: "epic", item: (*workitem.Epic)(nil)},
		{name: "story", item: (*workitem.Story)(nil)},
		{name: "task", item: (*workitem.Task)(nil)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var err error
			require.NotPanics(t, func() {
				err = h.processor.ProcessFor(context.Background(), tt.item)
			})
			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}
