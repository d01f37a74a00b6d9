package workitem

import (
	"fmt"
	"strings"

	"github.com/jsamuelsen11/workitem-service/internal/domain"
)

// NoStory is the story id reported by a task that has no parent story.
const NoStory int64 = 0

// WorkItem is implemented by *Epic, *Story and *Task.
type WorkItem interface {
	// Kind returns the variant discriminant.
	Kind() Kind

	// Common returns the attributes shared by every variant. The returned
	// pointer aliases the item; mutations are visible to the caller.
	Common() *Item

	// OwningProject resolves the project the item belongs to. Epics resolve
	// directly, stories through their epic, and tasks through story and
	// epic. A standalone task resolves to nil.
	OwningProject() *Project

	sealed()
}

// Item holds the attributes shared by every work item variant.
type Item struct {
	ID           int64
	Title        string
	Status       Status
	Owner        *Collaborator
	Watchers     CollaboratorList
	Stakeholders CollaboratorList
	Assignee     *Assignee
}

// IsAssigned reports whether the item has an assignee.
func (i *Item) IsAssigned() bool {
	return i.Assignee != nil
}

// validate collects field errors common to all variants.
func (i *Item) validate(fields map[string]string) {
	if i.ID <= 0 {
		fields["id"] = fmt.Sprintf("must be positive, got %d", i.ID)
	}
	if strings.TrimSpace(i.Title) == "" {
		fields["title"] = domain.MsgRequired
	}
	if !i.Status.IsValid() {
		fields["status"] = fmt.Sprintf("invalid: %q", i.Status)
	}
}

// Epic is a top-level work item placed directly on a project backlog.
type Epic struct {
	Item
	Project *Project
}

// Kind implements WorkItem.
func (*Epic) Kind() Kind { return KindEpic }

// Common implements WorkItem.
func (e *Epic) Common() *Item { return &e.Item }

// OwningProject implements WorkItem.
func (e *Epic) OwningProject() *Project { return e.Project }

func (*Epic) sealed() {}

// Validate checks business rules for the Epic entity.
func (e *Epic) Validate() error {
	fields := make(map[string]string)
	e.validate(fields)
	if e.Project == nil {
		fields["project"] = domain.MsgRequired
	}
	return domain.NewValidationError(fields)
}

// Story belongs to an epic and may be broken down into tasks.
type Story struct {
	Item
	Epic            *Epic
	Tasks           []*Task
	ProgressPercent int
}

// Kind implements WorkItem.
func (*Story) Kind() Kind { return KindStory }

// Common implements WorkItem.
func (s *Story) Common() *Item { return &s.Item }

// OwningProject implements WorkItem.
func (s *Story) OwningProject() *Project {
	if s.Epic == nil {
		return nil
	}
	return s.Epic.OwningProject()
}

func (*Story) sealed() {}

// HasTasks reports whether the story has been broken down into tasks.
func (s *Story) HasTasks() bool {
	return len(s.Tasks) > 0
}

// Validate checks business rules for the Story entity.
func (s *Story) Validate() error {
	fields := make(map[string]string)
	s.validate(fields)
	if s.Epic == nil {
		fields["epic"] = domain.MsgRequired
	}
	if s.ProgressPercent < 0 || s.ProgressPercent > 100 {
		fields["progress_percent"] = fmt.Sprintf("must be 0-100, got %d", s.ProgressPercent)
	}
	return domain.NewValidationError(fields)
}

// Task is the smallest unit of work. A task with a parent story is a
// subtask; a task without one stands alone.
type Task struct {
	Item
	Story  *Story
	Sprint *Sprint
}

// Kind implements WorkItem.
func (*Task) Kind() Kind { return KindTask }

// Common implements WorkItem.
func (t *Task) Common() *Item { return &t.Item }

// OwningProject implements WorkItem.
func (t *Task) OwningProject() *Project {
	if t.Story == nil {
		return nil
	}
	return t.Story.OwningProject()
}

func (*Task) sealed() {}

// IsSubtask reports whether the task has a parent story.
func (t *Task) IsSubtask() bool {
	return t.Story != nil
}

// StoryID returns the parent story id, or NoStory for a standalone task.
func (t *Task) StoryID() int64 {
	if t.Story == nil {
		return NoStory
	}
	return t.Story.ID
}

// Validate checks business rules for the Task entity.
func (t *Task) Validate() error {
	fields := make(map[string]string)
	t.validate(fields)
	return domain.NewValidationError(fields)
}
