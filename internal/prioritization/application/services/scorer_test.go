package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thulya6/task-analyzer/internal/prioritization/domain/task"
	"github.com/thulya6/task-analyzer/internal/prioritization/domain/value_objects"
)

var testToday = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

func fixedNow() time.Time { return testToday }

func TestUrgencyScore(t *testing.T) {
	t.Run("no due date sits at the floor", func(t *testing.T) {
		assert.InDelta(t, 0.2, urgencyScore(0, false), 1e-9)
	})

	t.Run("due today is 1.0", func(t *testing.T) {
		assert.InDelta(t, 1.0, urgencyScore(0, true), 1e-9)
	})

	t.Run("overdue earns a per-day surcharge", func(t *testing.T) {
		assert.InDelta(t, 1.08, urgencyScore(-1, true), 1e-9)
		assert.InDelta(t, 1.4, urgencyScore(-5, true), 1e-9)
	})

	t.Run("overdue surcharge caps at seven days", func(t *testing.T) {
		assert.InDelta(t, 1.56, urgencyScore(-7, true), 1e-9)
		assert.InDelta(t, 1.56, urgencyScore(-400, true), 1e-9)
	})

	t.Run("thirty or more days out drops below the floor", func(t *testing.T) {
		assert.InDelta(t, 0.1, urgencyScore(30, true), 1e-9)
		assert.InDelta(t, 0.1, urgencyScore(365, true), 1e-9)
	})

	t.Run("near-future decays linearly with a floor", func(t *testing.T) {
		assert.InDelta(t, 0.9, urgencyScore(3, true), 1e-9)
		assert.InDelta(t, 0.5, urgencyScore(15, true), 1e-9)
		assert.InDelta(t, 0.2, urgencyScore(29, true), 1e-9)
	})
}

func TestEffortScore(t *testing.T) {
	t.Run("zero hours yields the maximum contribution", func(t *testing.T) {
		assert.InDelta(t, 1.0, effortScore(0), 1e-9)
	})

	t.Run("hours clamp at twelve", func(t *testing.T) {
		assert.InDelta(t, 1.0/13.0, effortScore(100), 1e-9)
		assert.InDelta(t, 1.0/13.0, effortScore(12), 1e-9)
	})

	t.Run("short tasks score near one", func(t *testing.T) {
		assert.InDelta(t, 0.5, effortScore(1), 1e-9)
	})
}

func TestScorer(t *testing.T) {
	scorer := NewScorer(fixedNow)

	t.Run("base score is the weighted sum of the three signals", func(t *testing.T) {
		// No due date, importance 5, zero hours under smart_balance:
		// 0.35*0.2 + 0.40*0.5 + 0.25*1.0 = 0.52
		tasks := []task.Task{mkTask(1, "plain")}
		g := BuildGraph(tasks)

		result := scorer.Score(tasks[0], g, value_objects.StrategySmartBalance)

		assert.InDelta(t, 0.52, result.BaseScore, 1e-9)
		assert.InDelta(t, 0.52, result.AdjustedScore, 1e-9)
		assert.Equal(t, value_objects.PriorityLevelLow, result.Level)
	})

	t.Run("blocker bonus adds per dependent", func(t *testing.T) {
		tasks := []task.Task{
			mkTask(1, "blocker"),
			mkTask(2, "b", 1),
			mkTask(3, "c", 1),
		}
		g := BuildGraph(tasks)

		result := scorer.Score(tasks[0], g, value_objects.StrategySmartBalance)

		assert.InDelta(t, result.BaseScore+0.6, result.AdjustedScore, 1e-9)
		require.Len(t, result.Factors, 4)
		assert.Equal(t, "blocker", result.Factors[3].Name)
		assert.InDelta(t, 0.6, result.Factors[3].Delta, 1e-9)
	})

	t.Run("blocker bonus caps at four dependents", func(t *testing.T) {
		tasks := []task.Task{mkTask(1, "bottleneck")}
		for id := int64(2); id <= 7; id++ {
			tasks = append(tasks, mkTask(id, "waiter", 1))
		}
		g := BuildGraph(tasks)

		result := scorer.Score(tasks[0], g, value_objects.StrategySmartBalance)

		assert.Equal(t, 6, result.DependentsCount)
		assert.InDelta(t, result.BaseScore+1.2, result.AdjustedScore, 1e-9)
	})

	t.Run("cycle neutralizes all bonuses", func(t *testing.T) {
		// P and Q form a direct cycle; five more tasks depend on P.
		tasks := []task.Task{
			mkTask(1, "p", 2),
			mkTask(2, "q", 1),
		}
		for id := int64(3); id <= 7; id++ {
			tasks = append(tasks, mkTask(id, "dependent", 1))
		}
		g := BuildGraph(tasks)

		result := scorer.Score(tasks[0], g, value_objects.StrategySmartBalance)

		assert.True(t, result.InCycle)
		assert.Equal(t, 6, result.DependentsCount)
		assert.Equal(t, result.BaseScore, result.AdjustedScore,
			"a cyclic task's score is its base score, dependents notwithstanding")

		var names []string
		for _, f := range result.Factors {
			names = append(names, f.Name)
		}
		assert.Contains(t, names, "cycle")
		assert.NotContains(t, names, "blocker")
		assert.NotContains(t, names, "feasibility")
	})

	t.Run("feasibility boost when due before all dependents", func(t *testing.T) {
		tasks := []task.Task{
			withDue(mkTask(1, "early blocker"), "2026-03-12"),
			withDue(mkTask(2, "later a", 1), "2026-03-15"),
			withDue(mkTask(3, "later b", 1), "2026-03-12"),
		}
		g := BuildGraph(tasks)

		result := scorer.Score(tasks[0], g, value_objects.StrategySmartBalance)

		assert.True(t, result.FeasibilityBoosted)
		// blocker bonus 0.6 plus feasibility 0.4
		assert.InDelta(t, result.BaseScore+1.0, result.AdjustedScore, 1e-9)
	})

	t.Run("no feasibility boost when a dependent is due earlier", func(t *testing.T) {
		tasks := []task.Task{
			withDue(mkTask(1, "late blocker"), "2026-03-20"),
			withDue(mkTask(2, "tight dependent", 1), "2026-03-15"),
		}
		g := BuildGraph(tasks)

		result := scorer.Score(tasks[0], g, value_objects.StrategySmartBalance)
		assert.False(t, result.FeasibilityBoosted)
	})

	t.Run("no feasibility boost without own due date or dated dependents", func(t *testing.T) {
		tasks := []task.Task{
			mkTask(1, "undated blocker"),
			withDue(mkTask(2, "dated blocker"), "2026-03-12"),
			mkTask(3, "a", 1, 2),
		}
		g := BuildGraph(tasks)

		undated := scorer.Score(tasks[0], g, value_objects.StrategySmartBalance)
		assert.False(t, undated.FeasibilityBoosted, "no own due date")

		dated := scorer.Score(tasks[1], g, value_objects.StrategySmartBalance)
		assert.False(t, dated.FeasibilityBoosted, "dependent carries no due date")
	})

	t.Run("no bonuses for a task with no dependents and no due date", func(t *testing.T) {
		tasks := []task.Task{mkTask(1, "loner")}
		g := BuildGraph(tasks)

		result := scorer.Score(tasks[0], g, value_objects.StrategyFastestWins)

		assert.Equal(t, result.BaseScore, result.AdjustedScore)
		assert.Len(t, result.Factors, 3, "only the three base factors")
	})

	t.Run("deadline_driven weights urgency dominantly", func(t *testing.T) {
		near := withDue(mkTask(1, "near"), "2026-03-12")
		far := withDue(mkTask(2, "far"), "2026-03-25")
		g := BuildGraph([]task.Task{near, far})

		nearScore := scorer.Score(near, g, value_objects.StrategyDeadlineDriven)
		farScore := scorer.Score(far, g, value_objects.StrategyDeadlineDriven)

		assert.Greater(t, nearScore.AdjustedScore, farScore.AdjustedScore)
	})

	t.Run("identical input yields identical scores", func(t *testing.T) {
		tasks := []task.Task{
			withDue(mkTask(1, "a"), "2026-03-12"),
			mkTask(2, "b", 1),
		}
		g := BuildGraph(tasks)

		first := scorer.Score(tasks[0], g, value_objects.StrategySmartBalance)
		second := scorer.Score(tasks[0], g, value_objects.StrategySmartBalance)

		assert.Equal(t, first, second)
	})

	t.Run("adjusted score is always finite and non-negative", func(t *testing.T) {
		tasks := []task.Task{
			withDue(task.Task{ID: 1, Title: "worst", Importance: 1, EstimatedHours: 1000}, "2027-01-01"),
		}
		g := BuildGraph(tasks)

		result := scorer.Score(tasks[0], g, value_objects.StrategyFastestWins)
		assert.GreaterOrEqual(t, result.AdjustedScore, 0.0)
	})
}
