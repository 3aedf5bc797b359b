package services

import (
	"fmt"
	"math"
	"time"

	"github.com/thulya6/task-analyzer/internal/prioritization/domain/task"
	"github.com/thulya6/task-analyzer/internal/prioritization/domain/value_objects"
)

// Urgency formula constants. Overdue tasks earn a surcharge per overdue day
// up to a week; tasks without a due date sit at the formula's floor.
const (
	urgencyNoDueDate      = 0.2
	urgencyFarFuture      = 0.1
	urgencyFloor          = 0.2
	urgencyOverduePerDay  = 0.08
	urgencyOverdueCapDays = 7
	urgencyHorizonDays    = 30.0
)

// Dependency adjustment constants.
const (
	blockerBonusPerDependent = 0.3
	blockerBonusCapCount     = 4
	feasibilityBoost         = 0.4
	effortHoursCap           = 12.0
)

// Factor is one applied scoring component: which signal fired and how much
// it contributed. Explanations stay structured inside the engine; rendering
// to text happens at the transport boundary.
type Factor struct {
	Name   string  `json:"factor"`
	Delta  float64 `json:"delta"`
	Reason string  `json:"reason"`
}

// ScoreResult holds the computed scores for one task.
type ScoreResult struct {
	TaskID          int64
	BaseScore       float64
	AdjustedScore   float64
	Level           value_objects.PriorityLevel
	Factors         []Factor
	InCycle         bool
	DependentsCount int
	// FeasibilityBoosted records whether the feasibility boost fired; the
	// sorter uses it as a tie-break level.
	FeasibilityBoosted bool
}

// Scorer computes strategy-weighted scores with dependency adjustments.
type Scorer struct {
	now func() time.Time
}

// NewScorer creates a scorer. A nil clock defaults to time.Now.
func NewScorer(now func() time.Time) *Scorer {
	if now == nil {
		now = time.Now
	}
	return &Scorer{now: now}
}

// Score computes the base and adjusted score for one task using the graph's
// annotations. The weighted terms sum left to right, then the blocker bonus
// and feasibility boost apply in that fixed order, so identical input always
// produces identical output.
func (s *Scorer) Score(t task.Task, g *DependencyGraph, strategy value_objects.Strategy) ScoreResult {
	today := s.now()
	weights := strategy.Weights()

	days, hasDue := t.DaysUntilDue(today)
	urgency := urgencyScore(days, hasDue)
	importance := float64(t.Importance) / 10.0
	effort := effortScore(t.EstimatedHours)

	result := ScoreResult{
		TaskID:          t.ID,
		InCycle:         g.InCycle(t.ID),
		DependentsCount: g.DependentsCount(t.ID),
	}

	result.Factors = append(result.Factors,
		Factor{
			Name:   "urgency",
			Delta:  weights.Urgency * urgency,
			Reason: urgencyReason(days, hasDue),
		},
		Factor{
			Name:   "importance",
			Delta:  weights.Importance * importance,
			Reason: fmt.Sprintf("importance %d of 10", t.Importance),
		},
		Factor{
			Name:   "effort",
			Delta:  weights.Effort * effort,
			Reason: fmt.Sprintf("estimated %.1f hours", t.EstimatedHours),
		},
	)

	result.BaseScore = weights.Urgency*urgency +
		weights.Importance*importance +
		weights.Effort*effort

	result.AdjustedScore = result.BaseScore

	if result.InCycle {
		// Blocking semantics are ill-defined on a cycle: the score stays at
		// its base no matter how many dependents the task has.
		result.Factors = append(result.Factors, Factor{
			Name:   "cycle",
			Delta:  0,
			Reason: "dependency cycle detected; blocker and feasibility bonuses suppressed",
		})
		result.Level = value_objects.PriorityLevelForScore(result.AdjustedScore)
		return result
	}

	if result.DependentsCount > 0 {
		counted := result.DependentsCount
		if counted > blockerBonusCapCount {
			counted = blockerBonusCapCount
		}
		bonus := blockerBonusPerDependent * float64(counted)
		result.AdjustedScore += bonus
		result.Factors = append(result.Factors, Factor{
			Name:   "blocker",
			Delta:  bonus,
			Reason: fmt.Sprintf("blocks %d task(s) (+%.1f each, capped at %d)", result.DependentsCount, blockerBonusPerDependent, blockerBonusCapCount),
		})
	}

	if feasibleForDependents(t, g) {
		result.AdjustedScore += feasibilityBoost
		result.FeasibilityBoosted = true
		result.Factors = append(result.Factors, Factor{
			Name:   "feasibility",
			Delta:  feasibilityBoost,
			Reason: "due no later than every dependent; finishing it on time unblocks them all",
		})
	}

	if result.AdjustedScore < 0 {
		result.AdjustedScore = 0
	}
	result.Level = value_objects.PriorityLevelForScore(result.AdjustedScore)
	return result
}

// feasibleForDependents reports whether the task's own due date is no later
// than every dependent's due date. Requires a due date of its own and at
// least one dependent that carries one.
func feasibleForDependents(t task.Task, g *DependencyGraph) bool {
	if t.DueDate == nil {
		return false
	}
	dues := g.DependentDueDates(t.ID)
	if len(dues) == 0 {
		return false
	}
	for _, due := range dues {
		if t.DueDate.After(due) {
			return false
		}
	}
	return true
}

func urgencyScore(days int, hasDue bool) float64 {
	if !hasDue {
		return urgencyNoDueDate
	}
	if days <= 0 {
		overdue := -days
		if overdue > urgencyOverdueCapDays {
			overdue = urgencyOverdueCapDays
		}
		return 1.0 + float64(overdue)*urgencyOverduePerDay
	}
	if days >= int(urgencyHorizonDays) {
		return urgencyFarFuture
	}
	return math.Max(urgencyFloor, 1.0-float64(days)/urgencyHorizonDays)
}

func effortScore(hours float64) float64 {
	if hours <= 0 {
		return 1.0
	}
	return 1.0 / (1.0 + math.Min(hours, effortHoursCap))
}

func urgencyReason(days int, hasDue bool) string {
	switch {
	case !hasDue:
		return "no due date"
	case days < 0:
		return fmt.Sprintf("overdue by %d day(s)", -days)
	case days == 0:
		return "due today"
	default:
		return fmt.Sprintf("due in %d day(s)", days)
	}
}
