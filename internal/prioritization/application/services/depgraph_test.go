package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thulya6/task-analyzer/internal/prioritization/domain/task"
)

func mkTask(id int64, title string, deps ...int64) task.Task {
	return task.Task{
		ID:           id,
		Title:        title,
		Importance:   5,
		Status:       task.StatusPending,
		Dependencies: deps,
	}
}

func withDue(t task.Task, due string) task.Task {
	t.DueDate = task.ParseDueDate(due)
	return t
}

func TestBuildGraph(t *testing.T) {
	t.Run("dependents count is direct in-batch dependents", func(t *testing.T) {
		g := BuildGraph([]task.Task{
			mkTask(1, "base"),
			mkTask(2, "mid", 1),
			mkTask(3, "leaf", 1, 2),
		})

		assert.Equal(t, 2, g.DependentsCount(1))
		assert.Equal(t, 1, g.DependentsCount(2))
		assert.Equal(t, 0, g.DependentsCount(3))
	})

	t.Run("dangling references are dropped, not errors", func(t *testing.T) {
		g := BuildGraph([]task.Task{
			mkTask(1, "only", 99, 100),
		})

		assert.Empty(t, g.Dependencies(1))
		assert.Equal(t, 0, g.DependentsCount(1))
		assert.False(t, g.InCycle(1))
	})

	t.Run("detects a direct two-task cycle", func(t *testing.T) {
		g := BuildGraph([]task.Task{
			mkTask(1, "p", 2),
			mkTask(2, "q", 1),
			mkTask(3, "bystander", 1),
		})

		assert.True(t, g.InCycle(1))
		assert.True(t, g.InCycle(2))
		assert.False(t, g.InCycle(3), "tasks outside the cycle stay unaffected")
		assert.Equal(t, []int64{1, 2}, g.CycleMembers())
	})

	t.Run("detects a longer cycle", func(t *testing.T) {
		g := BuildGraph([]task.Task{
			mkTask(1, "a", 3),
			mkTask(2, "b", 1),
			mkTask(3, "c", 2),
			mkTask(4, "d", 3),
		})

		assert.True(t, g.InCycle(1))
		assert.True(t, g.InCycle(2))
		assert.True(t, g.InCycle(3))
		assert.False(t, g.InCycle(4))
	})

	t.Run("acyclic chain has no cycles", func(t *testing.T) {
		g := BuildGraph([]task.Task{
			mkTask(1, "a"),
			mkTask(2, "b", 1),
			mkTask(3, "c", 2),
		})

		assert.Empty(t, g.CycleMembers())
	})

	t.Run("same cycle membership", func(t *testing.T) {
		g := BuildGraph([]task.Task{
			mkTask(1, "p", 2),
			mkTask(2, "q", 1),
			mkTask(3, "r", 4),
			mkTask(4, "s", 3),
		})

		assert.True(t, g.SameCycle(1, 2))
		assert.True(t, g.SameCycle(3, 4))
		assert.False(t, g.SameCycle(1, 3), "separate cycles are separate components")
	})

	t.Run("dependent due dates skip dependents without one", func(t *testing.T) {
		g := BuildGraph([]task.Task{
			mkTask(1, "blocker"),
			withDue(mkTask(2, "dated", 1), "2026-04-01"),
			mkTask(3, "undated", 1),
		})

		dues := g.DependentDueDates(1)
		require.Len(t, dues, 1)
		assert.Equal(t, "2026-04-01", task.FormatDueDate(&dues[0]))
	})
}

func TestGraphSnapshot(t *testing.T) {
	g := BuildGraph([]task.Task{
		withDue(mkTask(1, "a task title that runs well past thirty runes", 2), "2026-04-01"),
		mkTask(2, "short", 1),
		mkTask(3, "free"),
	})

	snap := g.Snapshot()

	assert.Equal(t, 3, snap.TaskCount)
	require.Len(t, snap.Nodes, 3)

	assert.Equal(t, "a task title that runs well pa...", snap.Nodes[0].Label)
	assert.Equal(t, "short", snap.Nodes[1].Label)
	assert.Equal(t, "2026-04-01", snap.Nodes[0].Due)
	assert.Equal(t, "No due date", snap.Nodes[2].Due)
	assert.True(t, snap.Nodes[0].InCycle)
	assert.True(t, snap.Nodes[1].InCycle)
	assert.False(t, snap.Nodes[2].InCycle)
	assert.True(t, snap.Nodes[0].HasDeps)
	assert.Equal(t, 1, snap.Nodes[0].BlockedBy)

	require.Len(t, snap.Edges, 2)
	assert.Contains(t, snap.Edges, GraphEdge{From: 2, To: 1})
	assert.Contains(t, snap.Edges, GraphEdge{From: 1, To: 2})

	assert.Equal(t, []int64{1, 2}, snap.Cycles)
}
