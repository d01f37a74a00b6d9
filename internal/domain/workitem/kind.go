package workitem

import (
	"fmt"
	"strings"
)

// Kind discriminates the work item variants.
type Kind string

const (
	KindEpic  Kind = "epic"
	KindStory Kind = "story"
	KindTask  Kind = "task"
)

// ParseKind converts a string to a Kind, case-insensitively.
func ParseKind(s string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(s)))
	if !k.IsValid() {
		return "", fmt.Errorf("unknown work item kind %q", s)
	}
	return k, nil
}

// IsValid returns true if the kind is one of the defined constants.
func (k Kind) IsValid() bool {
	switch k {
	case KindEpic, KindStory, KindTask:
		return true
	default:
		return false
	}
}

// String implements fmt.Stringer.
func (k Kind) String() string {
	return string(k)
}
