package task

import "strings"

// Status is the lifecycle state of a task within a batch. The engine only
// cares whether a dependency is already done when selecting today's
// actionable subset.
type Status string

const (
	StatusPending    Status = "pending"
	StatusInProgress Status = "in_progress"
	StatusDone       Status = "done"
)

var statusValues = map[string]Status{
	"pending":     StatusPending,
	"in_progress": StatusInProgress,
	"done":        StatusDone,
}

// ParseStatus creates a Status from a string. Unknown or empty input
// defaults to pending.
func ParseStatus(s string) Status {
	if status, ok := statusValues[strings.ToLower(strings.TrimSpace(s))]; ok {
		return status
	}
	return StatusPending
}

// String returns the string representation of the status.
func (s Status) String() string {
	return string(s)
}

// IsDone returns true when the task no longer blocks its dependents.
func (s Status) IsDone() bool {
	return s == StatusDone
}
