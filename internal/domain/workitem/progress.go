package workitem

// CalculateStoryProgress returns the percentage of tasks that have reached
// done or a later status, truncated toward zero. Returns 0 if the slice is
// empty. Nil entries count as unfinished.
func CalculateStoryProgress(tasks []*Task) int {
	if len(tasks) == 0 {
		return 0
	}
	var finished int
	for _, t := range tasks {
		if t != nil && t.Status.AtLeast(StatusDone) {
			finished++
		}
	}
	return finished * 100 / len(tasks)
}

// DeriveStoryStatus returns the status a story should hold given its tasks.
// A story with at least one task becomes done once every task is done or
// later, and moves from defined to in progress as soon as any task starts.
// The result is never earlier in the lifecycle than current.
func DeriveStoryStatus(current Status, tasks []*Task) Status {
	if len(tasks) == 0 {
		return current
	}

	allFinished, anyStarted := true, false
	for _, t := range tasks {
		if t == nil || !t.Status.AtLeast(StatusDone) {
			allFinished = false
		}
		if t != nil && t.Status.AtLeast(StatusInProgress) {
			anyStarted = true
		}
	}

	switch {
	case allFinished && !current.AtLeast(StatusDone):
		return StatusDone
	case anyStarted && current == StatusDefined:
		return StatusInProgress
	default:
		return current
	}
}
