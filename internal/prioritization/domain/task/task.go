// Package task defines the normalized task model consumed by the
// prioritization engine, along with batch normalization and validation.
package task

import (
	"sort"
	"time"
)

// DueDateLayout is the whole-day date format used on the wire.
const DueDateLayout = "2006-01-02"

// Task is the normalized in-memory representation of one unit of work.
// Every Task handed to the scorer has passed validation.
type Task struct {
	ID             int64
	Title          string
	DueDate        *time.Time // nil means no due date
	EstimatedHours float64
	Importance     int
	Status         Status
	Dependencies   []int64 // deduplicated, sorted, self-reference excluded

	// Position is the task's index in the original batch; the sorter uses
	// it as the final stable tie-break.
	Position int
}

// DaysUntilDue returns the whole-day distance from today to the due date.
// The second return is false when the task has no due date.
func (t *Task) DaysUntilDue(today time.Time) (int, bool) {
	if t.DueDate == nil {
		return 0, false
	}
	days := int(truncateDay(*t.DueDate).Sub(truncateDay(today)).Hours() / 24)
	return days, true
}

// ParseDueDate parses a whole-day due date. Empty or malformed input yields
// nil: a stale or garbled date degrades to "no due date" rather than failing
// the task.
func ParseDueDate(value string) *time.Time {
	if value == "" {
		return nil
	}
	parsed, err := time.Parse(DueDateLayout, value)
	if err != nil {
		return nil
	}
	return &parsed
}

// FormatDueDate renders a due date back to its wire form, empty when nil.
func FormatDueDate(due *time.Time) string {
	if due == nil {
		return ""
	}
	return due.Format(DueDateLayout)
}

func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// NormalizeBatch turns raw inputs into validated tasks. Invalid tasks are
// dropped and reported individually; the batch itself never fails here.
// IDs are caller-assigned when positive, otherwise engine-assigned from a
// monotonically increasing counter that skips ids already taken.
func NormalizeBatch(inputs []Input) ([]Task, []ValidationError) {
	taken := make(map[int64]bool, len(inputs))
	for _, in := range inputs {
		if in.ID != nil && *in.ID > 0 && !taken[*in.ID] {
			taken[*in.ID] = true
		}
	}

	tasks := make([]Task, 0, len(inputs))
	var errs []ValidationError
	seen := make(map[int64]bool, len(inputs))
	nextID := int64(1)

	for idx, in := range inputs {
		var id int64
		switch {
		case in.ID != nil && *in.ID > 0:
			id = *in.ID
			if seen[id] {
				errs = append(errs, ValidationError{
					Index: idx, TaskID: id, Field: "id",
					Reason: "duplicate task id",
				})
				continue
			}
		default:
			for taken[nextID] {
				nextID++
			}
			id = nextID
			nextID++
		}

		t, taskErrs := normalizeOne(idx, id, in)
		if len(taskErrs) > 0 {
			errs = append(errs, taskErrs...)
			continue
		}
		seen[id] = true
		t.Position = len(tasks)
		tasks = append(tasks, t)
	}

	return tasks, errs
}

func normalizeOne(idx int, id int64, in Input) (Task, []ValidationError) {
	var errs []ValidationError

	title := in.TrimmedTitle()
	if title == "" {
		errs = append(errs, ValidationError{
			Index: idx, TaskID: id, Field: "title",
			Reason: "title must not be empty",
		})
	}

	hours := float64(in.EstimatedHours)
	if hours < 0 {
		errs = append(errs, ValidationError{
			Index: idx, TaskID: id, Field: "estimated_hours",
			Reason: "estimated hours must not be negative",
		})
	}

	importance := int(in.Importance)
	if importance < 1 || importance > 10 {
		errs = append(errs, ValidationError{
			Index: idx, TaskID: id, Field: "importance",
			Reason: "importance must be between 1 and 10",
		})
	}

	deps := make([]int64, 0, len(in.Dependencies))
	depSeen := make(map[int64]bool, len(in.Dependencies))
	for _, dep := range in.Dependencies {
		if dep == id {
			errs = append(errs, ValidationError{
				Index: idx, TaskID: id, Field: "dependencies",
				Reason: "task cannot depend on itself",
			})
			continue
		}
		if dep <= 0 || depSeen[dep] {
			continue
		}
		depSeen[dep] = true
		deps = append(deps, dep)
	}
	sort.Slice(deps, func(i, j int) bool { return deps[i] < deps[j] })

	if len(errs) > 0 {
		return Task{}, errs
	}

	return Task{
		ID:             id,
		Title:          title,
		DueDate:        ParseDueDate(in.DueDate),
		EstimatedHours: hours,
		Importance:     importance,
		Status:         ParseStatus(in.Status),
		Dependencies:   deps,
	}, nil
}
