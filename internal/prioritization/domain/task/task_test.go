package task

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func int64Ptr(v int64) *int64 { return &v }

func TestNormalizeBatch(t *testing.T) {
	t.Run("assigns incrementing ids when absent", func(t *testing.T) {
		tasks, errs := NormalizeBatch([]Input{
			{Title: "first", Importance: 5},
			{Title: "second", Importance: 5},
		})

		require.Empty(t, errs)
		require.Len(t, tasks, 2)
		assert.Equal(t, int64(1), tasks[0].ID)
		assert.Equal(t, int64(2), tasks[1].ID)
	})

	t.Run("engine-assigned ids skip caller-assigned ones", func(t *testing.T) {
		tasks, errs := NormalizeBatch([]Input{
			{Title: "auto", Importance: 5},
			{ID: int64Ptr(1), Title: "explicit", Importance: 5},
		})

		require.Empty(t, errs)
		require.Len(t, tasks, 2)
		assert.Equal(t, int64(2), tasks[0].ID, "auto id must not collide with explicit id 1")
		assert.Equal(t, int64(1), tasks[1].ID)
	})

	t.Run("duplicate id rejects the later task only", func(t *testing.T) {
		tasks, errs := NormalizeBatch([]Input{
			{ID: int64Ptr(7), Title: "keeper", Importance: 5},
			{ID: int64Ptr(7), Title: "duplicate", Importance: 5},
		})

		require.Len(t, tasks, 1)
		assert.Equal(t, "keeper", tasks[0].Title)
		require.Len(t, errs, 1)
		assert.Equal(t, "id", errs[0].Field)
		assert.Equal(t, 1, errs[0].Index)
	})

	t.Run("empty title is a validation error", func(t *testing.T) {
		tasks, errs := NormalizeBatch([]Input{
			{Title: "   ", Importance: 5},
			{Title: "valid", Importance: 5},
		})

		require.Len(t, tasks, 1)
		require.Len(t, errs, 1)
		assert.Equal(t, "title", errs[0].Field)
	})

	t.Run("importance outside range is a validation error", func(t *testing.T) {
		_, errs := NormalizeBatch([]Input{
			{Title: "too low", Importance: 0},
			{Title: "too high", Importance: 11},
		})

		require.Len(t, errs, 2)
		assert.Equal(t, "importance", errs[0].Field)
		assert.Equal(t, "importance", errs[1].Field)
	})

	t.Run("negative hours is a validation error", func(t *testing.T) {
		_, errs := NormalizeBatch([]Input{
			{Title: "negative", Importance: 5, EstimatedHours: -1},
		})

		require.Len(t, errs, 1)
		assert.Equal(t, "estimated_hours", errs[0].Field)
	})

	t.Run("self-referential dependency is a validation error", func(t *testing.T) {
		_, errs := NormalizeBatch([]Input{
			{ID: int64Ptr(3), Title: "loop", Importance: 5, Dependencies: DepList{3}},
		})

		require.Len(t, errs, 1)
		assert.Equal(t, "dependencies", errs[0].Field)
	})

	t.Run("dependencies are deduplicated and sorted", func(t *testing.T) {
		tasks, errs := NormalizeBatch([]Input{
			{Title: "a", Importance: 5, Dependencies: DepList{9, 2, 9, 2, 5}},
		})

		require.Empty(t, errs)
		assert.Equal(t, []int64{2, 5, 9}, tasks[0].Dependencies)
	})

	t.Run("one invalid task does not abort the batch", func(t *testing.T) {
		tasks, errs := NormalizeBatch([]Input{
			{Title: "good one", Importance: 5},
			{Title: "", Importance: 5},
			{Title: "good two", Importance: 5},
		})

		assert.Len(t, tasks, 2)
		assert.Len(t, errs, 1)
	})
}

func TestInputDecoding(t *testing.T) {
	t.Run("numeric strings coerce to numbers", func(t *testing.T) {
		var in Input
		err := json.Unmarshal([]byte(`{"title":"x","estimated_hours":"2.5","importance":"7"}`), &in)

		require.NoError(t, err)
		assert.Equal(t, Hours(2.5), in.EstimatedHours)
		assert.Equal(t, Importance(7), in.Importance)
	})

	t.Run("non-numeric fields fall back instead of failing", func(t *testing.T) {
		var in Input
		err := json.Unmarshal([]byte(`{"title":"x","estimated_hours":"soon","importance":"much"}`), &in)

		require.NoError(t, err)
		assert.Equal(t, Hours(0), in.EstimatedHours)
		assert.Equal(t, Importance(1), in.Importance)
	})

	t.Run("dependencies accept a comma-joined string", func(t *testing.T) {
		var in Input
		err := json.Unmarshal([]byte(`{"title":"x","importance":5,"dependencies":"1, 2,junk,3"}`), &in)

		require.NoError(t, err)
		assert.Equal(t, DepList{1, 2, 3}, in.Dependencies)
	})

	t.Run("dependency arrays drop non-numeric entries", func(t *testing.T) {
		var in Input
		err := json.Unmarshal([]byte(`{"title":"x","importance":5,"dependencies":[1,"2",true,"x",3]}`), &in)

		require.NoError(t, err)
		assert.Equal(t, DepList{1, 2, 3}, in.Dependencies)
	})
}

func TestParseDueDate(t *testing.T) {
	t.Run("parses whole-day dates", func(t *testing.T) {
		due := ParseDueDate("2026-09-05")
		require.NotNil(t, due)
		assert.Equal(t, 2026, due.Year())
		assert.Equal(t, time.September, due.Month())
		assert.Equal(t, 5, due.Day())
	})

	t.Run("garbled dates degrade to no due date", func(t *testing.T) {
		assert.Nil(t, ParseDueDate(""))
		assert.Nil(t, ParseDueDate("tomorrow"))
		assert.Nil(t, ParseDueDate("2026-13-40"))
	})
}

func TestDaysUntilDue(t *testing.T) {
	today := time.Date(2026, 3, 10, 15, 30, 0, 0, time.UTC)

	t.Run("counts whole days regardless of time of day", func(t *testing.T) {
		due := ParseDueDate("2026-03-13")
		task := Task{DueDate: due}

		days, ok := task.DaysUntilDue(today)
		require.True(t, ok)
		assert.Equal(t, 3, days)
	})

	t.Run("overdue dates are negative", func(t *testing.T) {
		due := ParseDueDate("2026-03-08")
		task := Task{DueDate: due}

		days, ok := task.DaysUntilDue(today)
		require.True(t, ok)
		assert.Equal(t, -2, days)
	})

	t.Run("no due date reports not ok", func(t *testing.T) {
		task := Task{}
		_, ok := task.DaysUntilDue(today)
		assert.False(t, ok)
	})
}
