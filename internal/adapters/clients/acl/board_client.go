package acl

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/jsamuelsen11/workitem-service/internal/adapters/clients/acl/board"
	appctx "github.com/jsamuelsen11/workitem-service/internal/app/context"
	"github.com/jsamuelsen11/workitem-service/internal/domain"
	"github.com/jsamuelsen11/workitem-service/internal/domain/workitem"
	"github.com/jsamuelsen11/workitem-service/internal/platform/httpclient"
	"github.com/jsamuelsen11/workitem-service/internal/ports"
)

// Compile-time interface checks.
var (
	_ ports.EpicRepository     = (*BoardClient)(nil)
	_ ports.StoryRepository    = (*BoardClient)(nil)
	_ ports.TaskRepository     = (*BoardClient)(nil)
	_ ports.StoryProgressStore = (*BoardClient)(nil)
)

// BoardClient is the outbound adapter for reading work items from the
// downstream board API and writing story progress back to it. It implements
// the three repositories and [ports.StoryProgressStore].
//
// Every Find call builds a fresh object graph: a story comes with its epic,
// the epic's project and the story's tasks; a subtask comes with that whole
// story graph and its sprint. Raw resources are memoized per request through
// [appctx.GetOrFetch], so items in one batch that share a parent fetch it
// once.
type BoardClient struct {
	req    *Requester
	logger *slog.Logger
}

// NewBoardClient creates a BoardClient that sends requests through the given
// [httpclient.Client]. The client's BaseURL should point to the board API
// root (e.g. "https://board.example.com").
func NewBoardClient(client *httpclient.Client, logger *slog.Logger) *BoardClient {
	return &BoardClient{
		req:    NewRequester(client, logger),
		logger: logger,
	}
}

// FindEpic loads the epic and its project.
func (c *BoardClient) FindEpic(ctx context.Context, id int64) (*workitem.Epic, error) {
	return c.loadEpic(ctx, id)
}

// FindStory loads the story with its epic, project and tasks.
func (c *BoardClient) FindStory(ctx context.Context, id int64) (*workitem.Story, error) {
	return c.loadStory(ctx, id)
}

// FindTask loads the task, its story graph when it has one, and its sprint
// when it is planned. For a subtask the returned task is the same pointer the
// story holds in its Tasks.
func (c *BoardClient) FindTask(ctx context.Context, id int64) (*workitem.Task, error) {
	dto, err := fetch[board.TaskDTO](ctx, c.req, taskKey(id), fmt.Sprintf("/api/v1/tasks/%d", id))
	if err != nil {
		return nil, err
	}

	var story *workitem.Story
	if dto.StoryID != nil {
		story, err = c.loadStory(ctx, *dto.StoryID)
		if err != nil {
			return nil, parentErr(err, "loading story %d of task %d", *dto.StoryID, id)
		}
	}

	var sprint *workitem.Sprint
	if dto.SprintID != nil {
		sdto, err := fetch[board.SprintDTO](ctx, c.req, sprintKey(*dto.SprintID),
			fmt.Sprintf("/api/v1/sprints/%d", *dto.SprintID))
		if err != nil {
			return nil, parentErr(err, "loading sprint %d of task %d", *dto.SprintID, id)
		}
		sprint = board.ToDomainSprint(sdto)
	}

	task, err := board.ToDomainTask(dto, story, sprint)
	if err != nil {
		return nil, err
	}
	if story != nil {
		story.Tasks = replaceTask(story.Tasks, task)
	}
	return task, nil
}

// SaveStoryProgress writes the story's progress and status to
// PUT /api/v1/stories/{id}/progress and drops the story from the request
// cache.
func (c *BoardClient) SaveStoryProgress(ctx context.Context, story *workitem.Story) error {
	path := fmt.Sprintf("/api/v1/stories/%d/progress", story.ID)
	if err := c.req.Do(ctx, http.MethodPut, path, http.StatusNoContent, board.ToStoryProgressRequest(story), nil); err != nil {
		return err
	}
	appctx.Invalidate(ctx, storyKey(story.ID))
	return nil
}

// RecordPartialApproval records a task approval with POST
// /api/v1/partial-approvals.
func (c *BoardClient) RecordPartialApproval(ctx context.Context, storyID, taskID int64) error {
	body := board.ToPartialApprovalRequest(storyID, taskID)
	return c.req.Do(ctx, http.MethodPost, "/api/v1/partial-approvals", http.StatusCreated, body, nil)
}

func (c *BoardClient) loadEpic(ctx context.Context, id int64) (*workitem.Epic, error) {
	dto, err := fetch[board.EpicDTO](ctx, c.req, epicKey(id), fmt.Sprintf("/api/v1/epics/%d", id))
	if err != nil {
		return nil, err
	}

	pdto, err := fetch[board.ProjectDTO](ctx, c.req, projectKey(dto.ProjectID),
		fmt.Sprintf("/api/v1/projects/%d", dto.ProjectID))
	if err != nil {
		return nil, parentErr(err, "loading project %d of epic %d", dto.ProjectID, id)
	}

	return board.ToDomainEpic(dto, board.ToDomainProject(pdto))
}

func (c *BoardClient) loadStory(ctx context.Context, id int64) (*workitem.Story, error) {
	dto, err := fetch[board.StoryDTO](ctx, c.req, storyKey(id), fmt.Sprintf("/api/v1/stories/%d", id))
	if err != nil {
		return nil, err
	}

	epic, err := c.loadEpic(ctx, dto.EpicID)
	if err != nil {
		return nil, parentErr(err, "loading epic %d of story %d", dto.EpicID, id)
	}

	story, err := board.ToDomainStory(dto, epic)
	if err != nil {
		return nil, err
	}

	list, err := fetch[board.TaskListResponseDTO](ctx, c.req, storyTasksKey(id),
		fmt.Sprintf("/api/v1/stories/%d/tasks", id))
	if err != nil {
		return nil, parentErr(err, "loading tasks of story %d", id)
	}

	story.Tasks = make([]*workitem.Task, 0, len(list.Tasks))
	for i := range list.Tasks {
		task, err := board.ToDomainTask(&list.Tasks[i], story, nil)
		if err != nil {
			return nil, err
		}
		story.Tasks = append(story.Tasks, task)
	}
	return story, nil
}

// parentErr wraps a failure to load something the requested item refers to.
// Only the item's own GET may report ErrNotFound; a missing parent becomes
// ErrDanglingReference.
func parentErr(err error, format string, args ...any) error {
	msg := fmt.Sprintf(format, args...)
	if errors.Is(err, domain.ErrNotFound) {
		return fmt.Errorf("%s: %w: %v", msg, domain.ErrDanglingReference, err)
	}
	return fmt.Errorf("%s: %w", msg, err)
}

// fetch GETs path into a fresh T, memoized under key for the request.
// Returned DTOs may be shared between callers and must not be modified.
func fetch[T any](ctx context.Context, req *Requester, key, path string) (*T, error) {
	return appctx.GetOrFetch(ctx, key, func(ctx context.Context) (*T, error) {
		var dto T
		if err := req.Do(ctx, http.MethodGet, path, http.StatusOK, nil, &dto); err != nil {
			return nil, err
		}
		return &dto, nil
	})
}

func replaceTask(tasks []*workitem.Task, task *workitem.Task) []*workitem.Task {
	for i, t := range tasks {
		if t.ID == task.ID {
			tasks[i] = task
			return tasks
		}
	}
	return append(tasks, task)
}

func epicKey(id int64) string       { return fmt.Sprintf("board:epic:%d", id) }
func storyKey(id int64) string      { return fmt.Sprintf("board:story:%d", id) }
func storyTasksKey(id int64) string { return fmt.Sprintf("board:story-tasks:%d", id) }
func taskKey(id int64) string       { return fmt.Sprintf("board:task:%d", id) }
func projectKey(id int64) string    { return fmt.Sprintf("board:project:%d", id) }
func sprintKey(id int64) string     { return fmt.Sprintf("board:sprint:%d", id) }
