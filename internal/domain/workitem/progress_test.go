package workitem

import "testing"

func tasksWith(statuses ...Status) []*Task {
	tasks := make([]*Task, len(statuses))
	for i, s := range statuses {
		tasks[i] = &Task{Item: Item{ID: int64(i + 1), Title: "t", Status: s}}
	}
	return tasks
}

func TestCalculateStoryProgress(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		tasks []*Task
		want  int
	}{
		{name: "no tasks", tasks: nil, want: 0},
		{name: "none finished", tasks: tasksWith(StatusDefined, StatusInProgress), want: 0},
		{name: "half finished", tasks: tasksWith(StatusDone, StatusInProgress), want: 50},
		{name: "approved counts as finished", tasks: tasksWith(StatusApproved, StatusReleased), want: 100},
		{name: "truncates toward zero", tasks: tasksWith(StatusDone, StatusDefined, StatusDefined), want: 33},
		{name: "two of three", tasks: tasksWith(StatusDone, StatusDone, StatusDefined), want: 66},
		{name: "nil entry is unfinished", tasks: []*Task{nil, {Item: Item{Status: StatusDone}}}, want: 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := CalculateStoryProgress(tt.tasks); got != tt.want {
				t.Errorf("CalculateStoryProgress() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestDeriveStoryStatus(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		current Status
		tasks   []*Task
		want    Status
	}{
		{
			name:    "no tasks keeps status",
			current: StatusDefined,
			want:    StatusDefined,
		},
		{
			name:    "all tasks done completes story",
			current: StatusInProgress,
			tasks:   tasksWith(StatusDone, StatusApproved),
			want:    StatusDone,
		},
		{
			name:    "started task moves defined story forward",
			current: StatusDefined,
			tasks:   tasksWith(StatusInProgress, StatusDefined),
			want:    StatusInProgress,
		},
		{
			name:    "to_be_defined story does not jump to in_progress",
			current: StatusToBeDefined,
			tasks:   tasksWith(StatusInProgress),
			want:    StatusToBeDefined,
		},
		{
			name:    "approved story never regresses to done",
			current: StatusApproved,
			tasks:   tasksWith(StatusDone),
			want:    StatusApproved,
		},
		{
			name:    "in progress story stays while tasks remain",
			current: StatusInProgress,
			tasks:   tasksWith(StatusDone, StatusDefined),
			want:    StatusInProgress,
		},
		{
			name:    "nothing started leaves defined",
			current: StatusDefined,
			tasks:   tasksWith(StatusDefined, StatusToBeDefined),
			want:    StatusDefined,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := DeriveStoryStatus(tt.current, tt.tasks); got != tt.want {
				t.Errorf("DeriveStoryStatus(%q) = %q, want %q", tt.current, got, tt.want)
			}
		})
	}
}
