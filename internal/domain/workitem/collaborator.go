package workitem

import (
	"errors"
	"fmt"
	"slices"
)

var (
	// ErrDuplicateCollaborator is returned when adding a collaborator that is
	// already a member of the list.
	ErrDuplicateCollaborator = errors.New("collaborator already in list")

	// ErrNotACollaborator is returned when removing a collaborator that is not
	// a member of the list.
	ErrNotACollaborator = errors.New("collaborator not in list")
)

// Collaborator is a person attached to a work item, identified by value.
type Collaborator struct {
	Name  string
	Email string
}

// String implements fmt.Stringer.
func (c Collaborator) String() string {
	if c.Email == "" {
		return c.Name
	}
	return fmt.Sprintf("%s <%s>", c.Name, c.Email)
}

// Assignee is the person and team a work item is assigned to.
type Assignee struct {
	Name   string
	TeamID int64
}

// CollaboratorList is a strict set of collaborators. Adding a member twice or
// removing a non-member is a programming error and is reported as such.
// The zero value is an empty list ready to use.
type CollaboratorList struct {
	members []Collaborator
}

// NewCollaboratorList builds a list from the given members. It fails with
// ErrDuplicateCollaborator if any member appears more than once.
func NewCollaboratorList(members ...Collaborator) (CollaboratorList, error) {
	var l CollaboratorList
	for _, m := range members {
		if err := l.Add(m); err != nil {
			return CollaboratorList{}, err
		}
	}
	return l, nil
}

// Add appends c to the list.
func (l *CollaboratorList) Add(c Collaborator) error {
	if l.Contains(c) {
		return fmt.Errorf("adding %s: %w", c, ErrDuplicateCollaborator)
	}
	l.members = append(l.members, c)
	return nil
}

// Remove deletes c from the list.
func (l *CollaboratorList) Remove(c Collaborator) error {
	i := slices.Index(l.members, c)
	if i < 0 {
		return fmt.Errorf("removing %s: %w", c, ErrNotACollaborator)
	}
	l.members = slices.Delete(l.members, i, i+1)
	return nil
}

// Contains reports whether c is a member.
func (l *CollaboratorList) Contains(c Collaborator) bool {
	return slices.Contains(l.members, c)
}

// Len returns the number of members.
func (l *CollaboratorList) Len() int {
	return len(l.members)
}

// Members returns a copy of the members in insertion order.
func (l *CollaboratorList) Members() []Collaborator {
	return slices.Clone(l.members)
}
