// Package event defines the domain events emitted when work items reach
// significant lifecycle statuses. Events are immutable values created once per
// occurrence.
package event

import (
	"time"

	"github.com/jsamuelsen11/workitem-service/internal/domain/workitem"
)

// Event names, used for routing and filtering by subscribers.
const (
	NameEpicReadyToPrioritize = "epic.ready_to_prioritize"
	NameStoryApproved         = "story.approved"
	NameStoryDone             = "story.done"
	NameTaskApproved          = "task.approved"
	NameItemReleased          = "item.released"
)

// Event is implemented by every domain event.
type Event interface {
	Name() string
	SubjectID() int64
	OccurredAt() time.Time
}

// Names returns every known event name.
func Names() []string {
	return []string{
		NameEpicReadyToPrioritize,
		NameStoryApproved,
		NameStoryDone,
		NameTaskApproved,
		NameItemReleased,
	}
}

// EpicReadyToPrioritize signals that an epic has been defined and placed on
// top of its project backlog.
type EpicReadyToPrioritize struct {
	EpicID int64     `json:"epic_id"`
	At     time.Time `json:"at"`
}

func (e EpicReadyToPrioritize) Name() string          { return NameEpicReadyToPrioritize }
func (e EpicReadyToPrioritize) SubjectID() int64      { return e.EpicID }
func (e EpicReadyToPrioritize) OccurredAt() time.Time { return e.At }

// StoryApproved signals that a story was approved.
type StoryApproved struct {
	StoryID int64     `json:"story_id"`
	At      time.Time `json:"at"`
}

func (e StoryApproved) Name() string          { return NameStoryApproved }
func (e StoryApproved) SubjectID() int64      { return e.StoryID }
func (e StoryApproved) OccurredAt() time.Time { return e.At }

// StoryDone signals that a story reached done, either directly or because its
// last task finished.
type StoryDone struct {
	StoryID int64     `json:"story_id"`
	At      time.Time `json:"at"`
}

func (e StoryDone) Name() string          { return NameStoryDone }
func (e StoryDone) SubjectID() int64      { return e.StoryID }
func (e StoryDone) OccurredAt() time.Time { return e.At }

// TaskApproved signals that a subtask was approved.
type TaskApproved struct {
	TaskID int64     `json:"task_id"`
	At     time.Time `json:"at"`
}

func (e TaskApproved) Name() string          { return NameTaskApproved }
func (e TaskApproved) SubjectID() int64      { return e.TaskID }
func (e TaskApproved) OccurredAt() time.Time { return e.At }

// ItemReleased signals that a work item of any kind was released.
type ItemReleased struct {
	ItemID int64         `json:"item_id"`
	Kind   workitem.Kind `json:"kind"`
	At     time.Time     `json:"at"`
}

func (e ItemReleased) Name() string          { return NameItemReleased }
func (e ItemReleased) SubjectID() int64      { return e.ItemID }
func (e ItemReleased) OccurredAt() time.Time { return e.At }

// Envelope wraps a published event with delivery metadata. It is built once
// per publication and shared read-only between subscribers.
type Envelope struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	SubjectID  int64     `json:"subject_id"`
	OccurredAt time.Time `json:"occurred_at"`
	Event      Event     `json:"payload"`
}

// NewEnvelope wraps e under the given delivery id.
func NewEnvelope(id string, e Event) Envelope {
	return Envelope{
		ID:         id,
		Name:       e.Name(),
		SubjectID:  e.SubjectID(),
		OccurredAt: e.OccurredAt(),
		Event:      e,
	}
}
