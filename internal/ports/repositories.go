package ports

import (
	"context"

	"github.com/jsamuelsen11/workitem-service/internal/domain/workitem"
)

// EpicRepository loads epics with their owning project resolved.
type EpicRepository interface {
	// FindEpic returns the epic with the given ID.
	// Returns domain.ErrNotFound if the epic does not exist.
	FindEpic(ctx context.Context, id int64) (*workitem.Epic, error)
}

// StoryRepository loads stories with their epic, project and tasks resolved.
type StoryRepository interface {
	// FindStory returns the story with the given ID.
	// Returns domain.ErrNotFound if the story does not exist.
	FindStory(ctx context.Context, id int64) (*workitem.Story, error)
}

// TaskRepository loads tasks with their parent story graph and sprint resolved.
type TaskRepository interface {
	// FindTask returns the task with the given ID.
	// Returns domain.ErrNotFound if the task does not exist.
	FindTask(ctx context.Context, id int64) (*workitem.Task, error)
}
