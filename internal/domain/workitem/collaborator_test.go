package workitem

import (
	"errors"
	"testing"
)

var (
	alice = Collaborator{Name: "Alice", Email: "alice@example.com"}
	bob   = Collaborator{Name: "Bob", Email: "bob@example.com"}
)

func TestCollaboratorList_AddRejectsDuplicates(t *testing.T) {
	t.Parallel()

	var l CollaboratorList
	if err := l.Add(alice); err != nil {
		t.Fatalf("Add(alice) error = %v, want nil", err)
	}
	err := l.Add(Collaborator{Name: "Alice", Email: "alice@example.com"})
	if !errors.Is(err, ErrDuplicateCollaborator) {
		t.Errorf("Add(duplicate) error = %v, want ErrDuplicateCollaborator", err)
	}
	if l.Len() != 1 {
		t.Errorf("Len() = %d, want 1", l.Len())
	}
}

func TestCollaboratorList_RemoveNonMemberFails(t *testing.T) {
	t.Parallel()

	l, err := NewCollaboratorList(alice)
	if err != nil {
		t.Fatalf("NewCollaboratorList() error = %v", err)
	}

	if err := l.Remove(bob); !errors.Is(err, ErrNotACollaborator) {
		t.Errorf("Remove(bob) error = %v, want ErrNotACollaborator", err)
	}
	if err := l.Remove(alice); err != nil {
		t.Fatalf("Remove(alice) error = %v, want nil", err)
	}
	if err := l.Remove(alice); !errors.Is(err, ErrNotACollaborator) {
		t.Errorf("second Remove(alice) error = %v, want ErrNotACollaborator", err)
	}
	if l.Len() != 0 {
		t.Errorf("Len() = %d, want 0", l.Len())
	}
}

func TestNewCollaboratorList_Duplicates(t *testing.T) {
	t.Parallel()

	if _, err := NewCollaboratorList(alice, bob, alice); !errors.Is(err, ErrDuplicateCollaborator) {
		t.Errorf("NewCollaboratorList(dup) error = %v, want ErrDuplicateCollaborator", err)
	}
}

func TestCollaboratorList_MembersIsCopy(t *testing.T) {
	t.Parallel()

	l, err := NewCollaboratorList(alice, bob)
	if err != nil {
		t.Fatalf("NewCollaboratorList() error = %v", err)
	}

	members := l.Members()
	members[0] = Collaborator{Name: "Mallory"}

	if !l.Contains(alice) {
		t.Error("mutating Members() result changed the list")
	}
	if got := l.Members(); got[0] != alice || got[1] != bob {
		t.Errorf("Members() = %v, want [alice bob] in insertion order", got)
	}
}

func TestCollaborator_String(t *testing.T) {
	t.Parallel()

	if got := alice.String(); got != "Alice <alice@example.com>" {
		t.Errorf("String() = %q", got)
	}
	if got := (Collaborator{Name: "Ops"}).String(); got != "Ops" {
		t.Errorf("String() = %q, want %q", got, "Ops")
	}
}
