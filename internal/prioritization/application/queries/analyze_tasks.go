// Package queries exposes the engine's read operations as query handlers.
// Transports call these; they never reach into the services directly.
package queries

import (
	"context"
	"math"

	"github.com/thulya6/task-analyzer/internal/prioritization/application/services"
	"github.com/thulya6/task-analyzer/internal/prioritization/domain/task"
	"github.com/thulya6/task-analyzer/internal/prioritization/domain/value_objects"
)

// RankedTaskDTO is a data transfer object for one ranked task.
type RankedTaskDTO struct {
	ID              int64             `json:"id"`
	Title           string            `json:"title"`
	DueDate         string            `json:"due_date,omitempty"`
	EstimatedHours  float64           `json:"estimated_hours"`
	Importance      int               `json:"importance"`
	Status          string            `json:"status"`
	Dependencies    []int64           `json:"dependencies"`
	Score           float64           `json:"score"`
	BaseScore       float64           `json:"base_score"`
	PriorityLevel   string            `json:"priority_level"`
	InCycle         bool              `json:"in_cycle"`
	DependentsCount int               `json:"dependents_count"`
	Factors         []services.Factor `json:"factors"`
}

// ValidationIssueDTO reports one rejected task.
type ValidationIssueDTO struct {
	Index   int    `json:"index"`
	TaskID  int64  `json:"task_id,omitempty"`
	Field   string `json:"field"`
	Message string `json:"message"`
}

// AnalyzeTasksQuery contains the parameters for ranking a batch.
type AnalyzeTasksQuery struct {
	Tasks    []task.Input
	Strategy string
}

// AnalyzeTasksResult is the full ranked batch plus rejected tasks.
type AnalyzeTasksResult struct {
	Strategy string               `json:"strategy"`
	Tasks    []RankedTaskDTO      `json:"tasks"`
	Errors   []ValidationIssueDTO `json:"errors,omitempty"`
}

// AnalyzeTasksHandler handles the AnalyzeTasksQuery.
type AnalyzeTasksHandler struct {
	engine *services.Prioritizer
}

// NewAnalyzeTasksHandler creates a new AnalyzeTasksHandler.
func NewAnalyzeTasksHandler(engine *services.Prioritizer) *AnalyzeTasksHandler {
	return &AnalyzeTasksHandler{engine: engine}
}

// Handle executes the AnalyzeTasksQuery.
func (h *AnalyzeTasksHandler) Handle(ctx context.Context, query AnalyzeTasksQuery) (AnalyzeTasksResult, error) {
	if err := ctx.Err(); err != nil {
		return AnalyzeTasksResult{}, err
	}

	strategy := value_objects.ParseStrategyOr(query.Strategy, h.engine.DefaultStrategy())
	analysis := h.engine.Analyze(query.Tasks, strategy)

	return AnalyzeTasksResult{
		Strategy: strategy.String(),
		Tasks:    toRankedDTOs(analysis.Ranked),
		Errors:   toIssueDTOs(analysis.Errors),
	}, nil
}

func toRankedDTOs(ranked []services.RankedTask) []RankedTaskDTO {
	dtos := make([]RankedTaskDTO, 0, len(ranked))
	for _, r := range ranked {
		deps := r.Task.Dependencies
		if deps == nil {
			deps = []int64{}
		}
		dtos = append(dtos, RankedTaskDTO{
			ID:              r.Task.ID,
			Title:           r.Task.Title,
			DueDate:         task.FormatDueDate(r.Task.DueDate),
			EstimatedHours:  r.Task.EstimatedHours,
			Importance:      r.Task.Importance,
			Status:          r.Task.Status.String(),
			Dependencies:    deps,
			Score:           round2(r.Score.AdjustedScore),
			BaseScore:       round2(r.Score.BaseScore),
			PriorityLevel:   r.Score.Level.String(),
			InCycle:         r.Score.InCycle,
			DependentsCount: r.Score.DependentsCount,
			Factors:         r.Score.Factors,
		})
	}
	return dtos
}

func toIssueDTOs(errs []task.ValidationError) []ValidationIssueDTO {
	if len(errs) == 0 {
		return nil
	}
	issues := make([]ValidationIssueDTO, 0, len(errs))
	for _, e := range errs {
		issues = append(issues, ValidationIssueDTO{
			Index:   e.Index,
			TaskID:  e.TaskID,
			Field:   e.Field,
			Message: e.Reason,
		})
	}
	return issues
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
