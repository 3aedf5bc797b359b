package services

import (
	"sort"
	"time"

	"github.com/thulya6/task-analyzer/internal/prioritization/domain/task"
)

// Due-date buckets for the third ranking level; earlier buckets rank first.
const (
	bucketOverdue = iota
	bucketToday
	bucketFuture
	bucketNoDueDate
)

// RankedTask pairs a task with its score for ordering and output.
type RankedTask struct {
	Task  task.Task
	Score ScoreResult
}

// Rank orders scored tasks by the fixed tie-break hierarchy:
//
//	1. overdue AND blocking tasks first
//	2. more dependents first
//	3. due-date bucket: overdue, today, future, none
//	4. feasibility-boosted first
//	5. higher adjusted score first
//	6. original batch position
//
// Each level only breaks ties left by the previous one.
func Rank(tasks []task.Task, scores map[int64]ScoreResult, today time.Time) []RankedTask {
	ranked := make([]RankedTask, 0, len(tasks))
	for _, t := range tasks {
		ranked = append(ranked, RankedTask{Task: t, Score: scores[t.ID]})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return rankLess(ranked[i], ranked[j], today)
	})
	return ranked
}

func rankLess(a, b RankedTask, today time.Time) bool {
	aCrit, bCrit := overdueAndBlocking(a, today), overdueAndBlocking(b, today)
	if aCrit != bCrit {
		return aCrit
	}

	if a.Score.DependentsCount != b.Score.DependentsCount {
		return a.Score.DependentsCount > b.Score.DependentsCount
	}

	aBucket, bBucket := dueBucket(a.Task, today), dueBucket(b.Task, today)
	if aBucket != bBucket {
		return aBucket < bBucket
	}

	if a.Score.FeasibilityBoosted != b.Score.FeasibilityBoosted {
		return a.Score.FeasibilityBoosted
	}

	if a.Score.AdjustedScore != b.Score.AdjustedScore {
		return a.Score.AdjustedScore > b.Score.AdjustedScore
	}

	return a.Task.Position < b.Task.Position
}

func overdueAndBlocking(r RankedTask, today time.Time) bool {
	days, hasDue := r.Task.DaysUntilDue(today)
	return hasDue && days < 0 && r.Score.DependentsCount > 0
}

func dueBucket(t task.Task, today time.Time) int {
	days, hasDue := t.DaysUntilDue(today)
	switch {
	case !hasDue:
		return bucketNoDueDate
	case days < 0:
		return bucketOverdue
	case days == 0:
		return bucketToday
	default:
		return bucketFuture
	}
}
