package board

import (
	"fmt"
	"strings"

	"github.com/jsamuelsen11/workitem-service/internal/domain"
	"github.com/jsamuelsen11/workitem-service/internal/domain/workitem"
)

// Notification reasons sent to the board API.
const (
	ReasonTeamAttention  = "team_attention"
	ReasonOwnerAttention = "owner_attention"
)

// ToDomainStatus converts the board's upper-case status to a domain Status.
// Statuses the board knows and the domain does not are kept lower-cased so
// that processing treats them as a no-op instead of failing the load.
func ToDomainStatus(raw string) workitem.Status {
	if st, err := workitem.ParseStatus(raw); err == nil {
		return st
	}
	return workitem.Status(strings.ToLower(strings.TrimSpace(raw)))
}

// ToWireStatus converts a domain Status to the board's upper-case form.
func ToWireStatus(s workitem.Status) string {
	return strings.ToUpper(s.String())
}

// ToDomainProject converts a downstream ProjectDTO to a domain Project.
func ToDomainProject(dto *ProjectDTO) *workitem.Project {
	teams := make([]workitem.Team, len(dto.Teams))
	for i, t := range dto.Teams {
		teams[i] = workitem.Team{ID: t.ID, Name: t.Name, Email: t.Email}
	}

	return &workitem.Project{
		ID:           dto.ID,
		Name:         dto.Name,
		ProductOwner: toCollaborator(dto.ProductOwner),
		Teams:        teams,
	}
}

// ToDomainSprint converts a downstream SprintDTO to a domain Sprint.
func ToDomainSprint(dto *SprintDTO) *workitem.Sprint {
	return &workitem.Sprint{
		ID:        dto.ID,
		Name:      dto.Name,
		ProjectID: dto.ProjectID,
	}
}

// ToDomainEpic converts a downstream EpicDTO to a domain Epic owned by
// project.
func ToDomainEpic(dto *EpicDTO, project *workitem.Project) (*workitem.Epic, error) {
	item, err := toDomainItem(&dto.ItemDTO)
	if err != nil {
		return nil, fmt.Errorf("epic %d: %w", dto.ID, err)
	}
	return &workitem.Epic{Item: item, Project: project}, nil
}

// ToDomainStory converts a downstream StoryDTO to a domain Story under epic.
// Tasks are attached by the caller.
func ToDomainStory(dto *StoryDTO, epic *workitem.Epic) (*workitem.Story, error) {
	item, err := toDomainItem(&dto.ItemDTO)
	if err != nil {
		return nil, fmt.Errorf("story %d: %w", dto.ID, err)
	}
	return &workitem.Story{
		Item:            item,
		Epic:            epic,
		ProgressPercent: int(dto.ProgressPercent),
	}, nil
}

// ToDomainTask converts a downstream TaskDTO to a domain Task. story and
// sprint may be nil.
func ToDomainTask(dto *TaskDTO, story *workitem.Story, sprint *workitem.Sprint) (*workitem.Task, error) {
	item, err := toDomainItem(&dto.ItemDTO)
	if err != nil {
		return nil, fmt.Errorf("task %d: %w", dto.ID, err)
	}
	return &workitem.Task{Item: item, Story: story, Sprint: sprint}, nil
}

// ToStoryProgressRequest builds the progress update for story.
func ToStoryProgressRequest(story *workitem.Story) StoryProgressRequestDTO {
	return StoryProgressRequestDTO{
		ProgressPercent: int64(story.ProgressPercent),
		Status:          ToWireStatus(story.Status),
	}
}

// ToPartialApprovalRequest builds a partial approval record. A storyID of
// workitem.NoStory leaves story_id out of the payload.
func ToPartialApprovalRequest(storyID, taskID int64) PartialApprovalRequestDTO {
	req := PartialApprovalRequestDTO{TaskID: taskID}
	if storyID != workitem.NoStory {
		req.StoryID = &storyID
	}
	return req
}

// ToNotificationRequest builds a notification about item for recipients.
func ToNotificationRequest(item workitem.WorkItem, reason string, recipients []workitem.Collaborator) NotificationRequestDTO {
	common := item.Common()
	to := make([]CollaboratorDTO, len(recipients))
	for i, r := range recipients {
		to[i] = CollaboratorDTO{Name: r.Name, Email: r.Email}
	}

	return NotificationRequestDTO{
		SubjectKind:   item.Kind().String(),
		SubjectID:     common.ID,
		SubjectTitle:  common.Title,
		SubjectStatus: ToWireStatus(common.Status),
		Reason:        reason,
		Recipients:    to,
	}
}

func toDomainItem(dto *ItemDTO) (workitem.Item, error) {
	watchers, err := toCollaboratorList(dto.Watchers)
	if err != nil {
		return workitem.Item{}, fmt.Errorf("%w: watchers: %w", domain.ErrValidation, err)
	}
	stakeholders, err := toCollaboratorList(dto.Stakeholders)
	if err != nil {
		return workitem.Item{}, fmt.Errorf("%w: stakeholders: %w", domain.ErrValidation, err)
	}

	item := workitem.Item{
		ID:           dto.ID,
		Title:        dto.Title,
		Status:       ToDomainStatus(dto.Status),
		Watchers:     watchers,
		Stakeholders: stakeholders,
	}
	if dto.Owner != nil {
		owner := toCollaborator(*dto.Owner)
		item.Owner = &owner
	}
	if dto.Assignee != nil {
		item.Assignee = &workitem.Assignee{Name: dto.Assignee.Name, TeamID: dto.Assignee.TeamID}
	}
	return item, nil
}

func toCollaborator(dto CollaboratorDTO) workitem.Collaborator {
	return workitem.Collaborator{Name: dto.Name, Email: dto.Email}
}

func toCollaboratorList(dtos []CollaboratorDTO) (workitem.CollaboratorList, error) {
	members := make([]workitem.Collaborator, len(dtos))
	for i, d := range dtos {
		members[i] = toCollaborator(d)
	}
	return workitem.NewCollaboratorList(members...)
}
