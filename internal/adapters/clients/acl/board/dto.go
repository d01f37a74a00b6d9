// Package board implements the Anti-Corruption Layer translators for the
// downstream board API's epics, stories, tasks, projects and sprints.
package board

// CollaboratorDTO matches the downstream Person schema.
type CollaboratorDTO struct {
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
}

// AssigneeDTO matches the downstream Assignment schema.
type AssigneeDTO struct {
	Name   string `json:"name"`
	TeamID int64  `json:"team_id"`
}

// ItemDTO holds the fields every board resource shares. Status uses the
// board's upper-case form ("IN_PROGRESS").
type ItemDTO struct {
	ID           int64             `json:"id"`
	Title        string            `json:"title"`
	Status       string            `json:"status"`
	Owner        *CollaboratorDTO  `json:"owner,omitempty"`
	Watchers     []CollaboratorDTO `json:"watchers"`
	Stakeholders []CollaboratorDTO `json:"stakeholders"`
	Assignee     *AssigneeDTO      `json:"assignee,omitempty"`
}

// EpicDTO matches the downstream Epic schema.
type EpicDTO struct {
	ItemDTO
	ProjectID int64 `json:"project_id"`
}

// StoryDTO matches the downstream Story schema.
type StoryDTO struct {
	ItemDTO
	EpicID          int64 `json:"epic_id"`
	ProgressPercent int64 `json:"progress_percent"`
}

// TaskDTO matches the downstream Task schema. StoryID is absent for a
// standalone task; SprintID is absent until the task is planned.
type TaskDTO struct {
	ItemDTO
	StoryID  *int64 `json:"story_id,omitempty"`
	SprintID *int64 `json:"sprint_id,omitempty"`
}

// TaskListResponseDTO matches the downstream TaskListResponse schema.
type TaskListResponseDTO struct {
	Tasks []TaskDTO `json:"tasks"`
	Count int64     `json:"count"`
}

// TeamDTO matches the downstream Team schema.
type TeamDTO struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// ProjectDTO matches the downstream Project schema.
type ProjectDTO struct {
	ID           int64           `json:"id"`
	Name         string          `json:"name"`
	ProductOwner CollaboratorDTO `json:"product_owner"`
	Teams        []TeamDTO       `json:"teams"`
}

// SprintDTO matches the downstream Sprint schema.
type SprintDTO struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	ProjectID int64  `json:"project_id"`
}

// BacklogReadyRequestDTO moves a story into a project's ready column.
type BacklogReadyRequestDTO struct {
	StoryID int64 `json:"story_id"`
}

// BacklogTopRequestDTO puts an epic on top of a project's backlog.
type BacklogTopRequestDTO struct {
	EpicID int64 `json:"epic_id"`
}

// SprintBacklogReadyRequestDTO moves a task into a sprint's ready column.
type SprintBacklogReadyRequestDTO struct {
	TaskID int64 `json:"task_id"`
}

// StoryProgressRequestDTO matches the downstream StoryProgressUpdate schema.
type StoryProgressRequestDTO struct {
	ProgressPercent int64  `json:"progress_percent"`
	Status          string `json:"status"`
}

// PartialApprovalRequestDTO matches the downstream PartialApproval schema.
// StoryID is omitted for a standalone task.
type PartialApprovalRequestDTO struct {
	StoryID *int64 `json:"story_id,omitempty"`
	TaskID  int64  `json:"task_id"`
}

// NotificationRequestDTO matches the downstream Notification schema.
type NotificationRequestDTO struct {
	SubjectKind   string            `json:"subject_kind"`
	SubjectID     int64             `json:"subject_id"`
	SubjectTitle  string            `json:"subject_title"`
	SubjectStatus string            `json:"subject_status"`
	Reason        string            `json:"reason"`
	Recipients    []CollaboratorDTO `json:"recipients"`
}
