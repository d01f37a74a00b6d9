package acl

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/jsamuelsen11/workitem-service/internal/adapters/clients/acl/board"
	"github.com/jsamuelsen11/workitem-service/internal/domain"
	"github.com/jsamuelsen11/workitem-service/internal/domain/workitem"
	"github.com/jsamuelsen11/workitem-service/internal/platform/httpclient"
	"github.com/jsamuelsen11/workitem-service/internal/ports"
)

// Compile-time interface checks.
var (
	_ ports.ProjectBacklogService = (*ProjectBacklogClient)(nil)
	_ ports.SprintBacklogService  = (*SprintBacklogClient)(nil)
)

// ProjectBacklogClient moves stories and epics within a project backlog on
// the board API.
type ProjectBacklogClient struct {
	req *Requester
}

// NewProjectBacklogClient creates a ProjectBacklogClient backed by client.
func NewProjectBacklogClient(client *httpclient.Client, logger *slog.Logger) *ProjectBacklogClient {
	return &ProjectBacklogClient{req: NewRequester(client, logger)}
}

// MoveToReadyForDevelopment marks story ready in project's backlog.
func (c *ProjectBacklogClient) MoveToReadyForDevelopment(
	ctx context.Context, story *workitem.Story, project *workitem.Project,
) error {
	if project == nil {
		return fmt.Errorf("%w: story %d has no project backlog", domain.ErrValidation, story.ID)
	}
	path := fmt.Sprintf("/api/v1/projects/%d/backlog/ready", project.ID)
	return c.req.Do(ctx, http.MethodPost, path, http.StatusNoContent, board.BacklogReadyRequestDTO{StoryID: story.ID}, nil)
}

// PutOnTop moves epic to the top of its project's backlog.
func (c *ProjectBacklogClient) PutOnTop(ctx context.Context, epic *workitem.Epic) error {
	if epic.Project == nil {
		return fmt.Errorf("%w: epic %d has no project backlog", domain.ErrValidation, epic.ID)
	}
	path := fmt.Sprintf("/api/v1/projects/%d/backlog/top", epic.Project.ID)
	return c.req.Do(ctx, http.MethodPost, path, http.StatusNoContent, board.BacklogTopRequestDTO{EpicID: epic.ID}, nil)
}

// SprintBacklogClient moves tasks within a sprint backlog on the board API.
type SprintBacklogClient struct {
	req *Requester
}

// NewSprintBacklogClient creates a SprintBacklogClient backed by client.
func NewSprintBacklogClient(client *httpclient.Client, logger *slog.Logger) *SprintBacklogClient {
	return &SprintBacklogClient{req: NewRequester(client, logger)}
}

// MoveToReadyForDevelopment marks task ready in sprint's backlog. A task that
// has not been planned into a sprint cannot be moved.
func (c *SprintBacklogClient) MoveToReadyForDevelopment(
	ctx context.Context, task *workitem.Task, sprint *workitem.Sprint,
) error {
	if sprint == nil {
		return fmt.Errorf("%w: task %d is not planned into a sprint", domain.ErrValidation, task.ID)
	}
	path := fmt.Sprintf("/api/v1/sprints/%d/backlog/ready", sprint.ID)
	return c.req.Do(ctx, http.MethodPost, path, http.StatusNoContent, board.SprintBacklogReadyRequestDTO{TaskID: task.ID}, nil)
}
