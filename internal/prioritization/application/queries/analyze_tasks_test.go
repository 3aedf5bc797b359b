package queries

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thulya6/task-analyzer/internal/prioritization/application/services"
	"github.com/thulya6/task-analyzer/internal/prioritization/domain/task"
	"github.com/thulya6/task-analyzer/internal/prioritization/domain/value_objects"
)

func newEngine() *services.Prioritizer {
	return services.NewPrioritizer(services.DefaultPrioritizerConfig(), slog.Default())
}

func TestAnalyzeTasksHandler(t *testing.T) {
	handler := NewAnalyzeTasksHandler(newEngine())

	t.Run("maps ranked tasks to DTOs with rounded scores", func(t *testing.T) {
		result, err := handler.Handle(context.Background(), AnalyzeTasksQuery{
			Strategy: "high_impact",
			Tasks: []task.Input{
				{Title: "one", Importance: 7, EstimatedHours: 3},
			},
		})

		require.NoError(t, err)
		assert.Equal(t, "high_impact", result.Strategy)
		require.Len(t, result.Tasks, 1)

		dto := result.Tasks[0]
		assert.Equal(t, int64(1), dto.ID)
		assert.Equal(t, "one", dto.Title)
		assert.Equal(t, "pending", dto.Status)
		assert.NotEmpty(t, dto.PriorityLevel)
		assert.NotEmpty(t, dto.Factors)
		// scores round to two decimals on the wire
		assert.Equal(t, dto.Score, float64(int(dto.Score*100+0.5))/100)
		assert.NotNil(t, dto.Dependencies, "dependencies serialize as [], not null")
	})

	t.Run("unknown strategy resolves before reaching the engine", func(t *testing.T) {
		result, err := handler.Handle(context.Background(), AnalyzeTasksQuery{
			Strategy: "wishful_thinking",
			Tasks:    []task.Input{{Title: "x", Importance: 5}},
		})

		require.NoError(t, err)
		assert.Equal(t, "smart_balance", result.Strategy)
	})

	t.Run("absent strategy falls back to the configured default", func(t *testing.T) {
		engine := services.NewPrioritizer(services.PrioritizerConfig{
			DefaultStrategy: value_objects.StrategyDeadlineDriven,
		}, slog.Default())

		result, err := NewAnalyzeTasksHandler(engine).Handle(context.Background(), AnalyzeTasksQuery{
			Tasks: []task.Input{{Title: "x", Importance: 5}},
		})
		require.NoError(t, err)
		assert.Equal(t, "deadline_driven", result.Strategy)

		suggested, err := NewSuggestTasksHandler(engine).Handle(context.Background(), SuggestTasksQuery{
			Tasks: []task.Input{{Title: "x", Importance: 5}},
		})
		require.NoError(t, err)
		assert.Equal(t, "deadline_driven", suggested.Strategy)
	})

	t.Run("explicit strategy wins over the configured default", func(t *testing.T) {
		engine := services.NewPrioritizer(services.PrioritizerConfig{
			DefaultStrategy: value_objects.StrategyDeadlineDriven,
		}, slog.Default())

		result, err := NewAnalyzeTasksHandler(engine).Handle(context.Background(), AnalyzeTasksQuery{
			Strategy: "fastest_wins",
			Tasks:    []task.Input{{Title: "x", Importance: 5}},
		})
		require.NoError(t, err)
		assert.Equal(t, "fastest_wins", result.Strategy)
	})

	t.Run("propagates context cancellation", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := handler.Handle(ctx, AnalyzeTasksQuery{
			Tasks: []task.Input{{Title: "x", Importance: 5}},
		})
		assert.Error(t, err)
	})
}

func TestSuggestTasksHandler(t *testing.T) {
	handler := NewSuggestTasksHandler(newEngine())

	result, err := handler.Handle(context.Background(), SuggestTasksQuery{
		Tasks: []task.Input{
			{Title: "ready", Importance: 5},
			{Title: "blocked", Importance: 5, Dependencies: task.DepList{1}},
		},
	})

	require.NoError(t, err)
	require.Len(t, result.Tasks, 1)
	assert.Equal(t, "ready", result.Tasks[0].Title)
}

func TestDependencyGraphHandler(t *testing.T) {
	handler := NewDependencyGraphHandler(newEngine())

	result, err := handler.Handle(context.Background(), DependencyGraphQuery{
		Tasks: []task.Input{
			{Title: "a", Importance: 5},
			{Title: "b", Importance: 5, Dependencies: task.DepList{1}},
		},
	})

	require.NoError(t, err)
	assert.Equal(t, 2, result.TaskCount)
	assert.Len(t, result.Edges, 1)
	assert.Empty(t, result.Cycles)
}
