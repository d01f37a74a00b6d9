package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jsamuelsen11/workitem-service/internal/domain/workitem"
	"github.com/jsamuelsen11/workitem-service/internal/platform/logging"
	"github.com/jsamuelsen11/workitem-service/internal/ports"
)

// Compile-time check that ProgressService implements ports.StoryProgressService.
var _ ports.StoryProgressService = (*ProgressService)(nil)

// ProgressService implements ports.StoryProgressService. It recomputes a
// story's progress and status from its tasks and persists the result.
type ProgressService struct {
	store  ports.StoryProgressStore
	logger *slog.Logger
}

// NewProgressService creates a ProgressService. A nil logger discards output.
func NewProgressService(store ports.StoryProgressStore, logger *slog.Logger) *ProgressService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &ProgressService{store: store, logger: logger}
}

// UpdateProgressOf replaces task's snapshot in story.Tasks, recomputes the
// story's progress and status in place, and saves them. A nil story is a no-op.
func (s *ProgressService) UpdateProgressOf(ctx context.Context, story *workitem.Story, task *workitem.Task) error {
	if story == nil {
		return nil
	}

	if task != nil {
		replaceTask(story, task)
	}

	previous := story.Status
	story.ProgressPercent = workitem.CalculateStoryProgress(story.Tasks)
	story.Status = workitem.DeriveStoryStatus(story.Status, story.Tasks)

	if err := s.store.SaveStoryProgress(ctx, story); err != nil {
		s.logger.ErrorContext(ctx, "failed to save story progress",
			logging.Op("UpdateProgressOf"),
			slog.Int64("story_id", story.ID),
			logging.Err(err),
		)
		return fmt.Errorf("saving progress of story %d: %w", story.ID, err)
	}

	if story.Status != previous {
		s.logger.InfoContext(ctx, "story status derived from tasks",
			slog.Int64("story_id", story.ID),
			slog.String("from", previous.String()),
			slog.String("to", story.Status.String()),
			slog.Int("progress_percent", story.ProgressPercent),
		)
	}
	return nil
}

// AttachPartialApprovalFor records the approval of taskID against storyID,
// which is workitem.NoStory for a standalone task.
func (s *ProgressService) AttachPartialApprovalFor(ctx context.Context, storyID, taskID int64) error {
	if err := s.store.RecordPartialApproval(ctx, storyID, taskID); err != nil {
		s.logger.ErrorContext(ctx, "failed to record partial approval",
			logging.Op("AttachPartialApprovalFor"),
			slog.Int64("story_id", storyID),
			slog.Int64("task_id", taskID),
			logging.Err(err),
		)
		return fmt.Errorf("recording partial approval of task %d: %w", taskID, err)
	}
	return nil
}

func replaceTask(story *workitem.Story, task *workitem.Task) {
	for i, t := range story.Tasks {
		if t != nil && t.ID == task.ID {
			story.Tasks[i] = task
			return
		}
	}
	story.Tasks = append(story.Tasks, task)
}
