package workitem

import (
	"fmt"
	"strings"
)

// Status represents the lifecycle state of a work item. Statuses are ordered;
// see Rank.
type Status string

const (
	StatusToBeDefined Status = "to_be_defined"
	StatusDefined     Status = "defined"
	StatusInProgress  Status = "in_progress"
	StatusDone        Status = "done"
	StatusApproved    Status = "approved"
	StatusReleased    Status = "released"
)

// lifecycle lists the statuses in lifecycle order, initial first.
var lifecycle = []Status{
	StatusToBeDefined,
	StatusDefined,
	StatusInProgress,
	StatusDone,
	StatusApproved,
	StatusReleased,
}

// ParseStatus converts a string to a Status. Matching is case-insensitive
// and accepts the upper-case form used by the board API ("IN_PROGRESS").
func ParseStatus(s string) (Status, error) {
	st := Status(strings.ToLower(strings.TrimSpace(s)))
	if !st.IsValid() {
		return "", fmt.Errorf("unknown status %q", s)
	}
	return st, nil
}

// IsValid returns true if the status is one of the defined constants.
func (s Status) IsValid() bool {
	return s.Rank() >= 0
}

// Rank returns the zero-based position of s in the lifecycle, or -1 for a
// status without a position.
func (s Status) Rank() int {
	for i, st := range lifecycle {
		if st == s {
			return i
		}
	}
	return -1
}

// AtLeast reports whether s is at or past other in the lifecycle. Unknown
// statuses are never at least anything.
func (s Status) AtLeast(other Status) bool {
	r := s.Rank()
	return r >= 0 && r >= other.Rank()
}

// String implements fmt.Stringer.
func (s Status) String() string {
	return string(s)
}
