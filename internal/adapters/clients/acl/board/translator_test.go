package board

import (
	"errors"
	"testing"

	"github.com/jsamuelsen11/workitem-service/internal/domain"
	"github.com/jsamuelsen11/workitem-service/internal/domain/workitem"
)

func TestToDomainStatus(t *testing.T) {
	t.Parallel()

	tests := []struct {
		raw  string
		want workitem.Status
	}{
		{raw: "TO_BE_DEFINED", want: workitem.StatusToBeDefined},
		{raw: "IN_PROGRESS", want: workitem.StatusInProgress},
		{raw: "approved", want: workitem.StatusApproved},
		{raw: " RELEASED ", want: workitem.StatusReleased},
		{raw: "BLOCKED", want: workitem.Status("blocked")},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			t.Parallel()

			if got := ToDomainStatus(tt.raw); got != tt.want {
				t.Errorf("ToDomainStatus(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

func TestToWireStatus(t *testing.T) {
	t.Parallel()

	if got := ToWireStatus(workitem.StatusInProgress); got != "IN_PROGRESS" {
		t.Errorf("ToWireStatus() = %q, want %q", got, "IN_PROGRESS")
	}
}

func TestToDomainProject_FieldMapping(t *testing.T) {
	t.Parallel()

	dto := &ProjectDTO{
		ID:           7,
		Name:         "Apollo",
		ProductOwner: CollaboratorDTO{Name: "Paula", Email: "paula@example.com"},
		Teams: []TeamDTO{
			{ID: 1, Name: "Core", Email: "core@example.com"},
			{ID: 2, Name: "Web", Email: "web@example.com"},
		},
	}

	got := ToDomainProject(dto)

	if got.ID != 7 || got.Name != "Apollo" {
		t.Errorf("project = %d/%q, want 7/%q", got.ID, got.Name, "Apollo")
	}
	if got.ProductOwner.Email != "paula@example.com" {
		t.Errorf("ProductOwner.Email = %q, want %q", got.ProductOwner.Email, "paula@example.com")
	}
	if len(got.Teams) != 2 || got.Teams[1].Contact().Email != "web@example.com" {
		t.Errorf("Teams = %+v, want Core and Web", got.Teams)
	}
}

func TestToDomainStory_ItemFields(t *testing.T) {
	t.Parallel()

	epic := &workitem.Epic{Item: workitem.Item{ID: 3}}
	dto := &StoryDTO{
		ItemDTO: ItemDTO{
			ID:           11,
			Title:        "Checkout",
			Status:       "DEFINED",
			Owner:        &CollaboratorDTO{Name: "Olive", Email: "olive@example.com"},
			Watchers:     []CollaboratorDTO{{Name: "Wes"}},
			Stakeholders: []CollaboratorDTO{{Name: "Sam"}, {Name: "Sue"}},
			Assignee:     &AssigneeDTO{Name: "Ada", TeamID: 2},
		},
		EpicID:          3,
		ProgressPercent: 40,
	}

	got, err := ToDomainStory(dto, epic)
	if err != nil {
		t.Fatalf("ToDomainStory() error = %v", err)
	}

	if got.ID != 11 || got.Title != "Checkout" {
		t.Errorf("story = %d/%q, want 11/%q", got.ID, got.Title, "Checkout")
	}
	if got.Status != workitem.StatusDefined {
		t.Errorf("Status = %q, want %q", got.Status, workitem.StatusDefined)
	}
	if got.Epic != epic {
		t.Error("Epic is not the given epic")
	}
	if got.ProgressPercent != 40 {
		t.Errorf("ProgressPercent = %d, want 40", got.ProgressPercent)
	}
	if got.Owner == nil || got.Owner.Name != "Olive" {
		t.Errorf("Owner = %v, want Olive", got.Owner)
	}
	if got.Watchers.Len() != 1 || got.Stakeholders.Len() != 2 {
		t.Errorf("watchers/stakeholders = %d/%d, want 1/2", got.Watchers.Len(), got.Stakeholders.Len())
	}
	if !got.IsAssigned() || got.Assignee.TeamID != 2 {
		t.Errorf("Assignee = %v, want Ada on team 2", got.Assignee)
	}
}

func TestToDomainTask_DuplicateWatchersRejected(t *testing.T) {
	t.Parallel()

	dto := &TaskDTO{
		ItemDTO: ItemDTO{
			ID:       5,
			Status:   "DONE",
			Watchers: []CollaboratorDTO{{Name: "Wes"}, {Name: "Wes"}},
		},
	}

	_, err := ToDomainTask(dto, nil, nil)
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("error = %v, want ErrValidation", err)
	}
	if !errors.Is(err, workitem.ErrDuplicateCollaborator) {
		t.Errorf("error = %v, want ErrDuplicateCollaborator in chain", err)
	}
}

func TestToDomainTask_OptionalParents(t *testing.T) {
	t.Parallel()

	dto := &TaskDTO{ItemDTO: ItemDTO{ID: 9, Status: "DEFINED"}}
	sprint := &workitem.Sprint{ID: 4}

	got, err := ToDomainTask(dto, nil, sprint)
	if err != nil {
		t.Fatalf("ToDomainTask() error = %v", err)
	}
	if got.IsSubtask() {
		t.Error("IsSubtask() = true, want false")
	}
	if got.Sprint != sprint {
		t.Error("Sprint is not the given sprint")
	}
}

func TestToPartialApprovalRequest(t *testing.T) {
	t.Parallel()

	standalone := ToPartialApprovalRequest(workitem.NoStory, 5)
	if standalone.StoryID != nil {
		t.Errorf("StoryID = %d, want nil for a standalone task", *standalone.StoryID)
	}

	subtask := ToPartialApprovalRequest(12, 5)
	if subtask.StoryID == nil || *subtask.StoryID != 12 {
		t.Errorf("StoryID = %v, want 12", subtask.StoryID)
	}
	if subtask.TaskID != 5 {
		t.Errorf("TaskID = %d, want 5", subtask.TaskID)
	}
}

func TestToStoryProgressRequest(t *testing.T) {
	t.Parallel()

	story := &workitem.Story{Item: workitem.Item{ID: 1, Status: workitem.StatusInProgress}, ProgressPercent: 66}

	got := ToStoryProgressRequest(story)
	if got.ProgressPercent != 66 || got.Status != "IN_PROGRESS" {
		t.Errorf("request = %+v, want 66/IN_PROGRESS", got)
	}
}

func TestToNotificationRequest(t *testing.T) {
	t.Parallel()

	epic := &workitem.Epic{Item: workitem.Item{ID: 3, Title: "Payments", Status: workitem.StatusDefined}}
	to := []workitem.Collaborator{{Name: "Paula", Email: "paula@example.com"}}

	got := ToNotificationRequest(epic, ReasonOwnerAttention, to)

	if got.SubjectKind != "epic" || got.SubjectID != 3 || got.SubjectTitle != "Payments" {
		t.Errorf("subject = %s/%d/%q, want epic/3/Payments", got.SubjectKind, got.SubjectID, got.SubjectTitle)
	}
	if got.SubjectStatus != "DEFINED" {
		t.Errorf("SubjectStatus = %q, want DEFINED", got.SubjectStatus)
	}
	if got.Reason != ReasonOwnerAttention {
		t.Errorf("Reason = %q, want %q", got.Reason, ReasonOwnerAttention)
	}
	if len(got.Recipients) != 1 || got.Recipients[0].Email != "paula@example.com" {
		t.Errorf("Recipients = %+v, want Paula", got.Recipients)
	}
}
