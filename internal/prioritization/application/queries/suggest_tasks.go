package queries

import (
	"context"

	"github.com/thulya6/task-analyzer/internal/prioritization/application/services"
	"github.com/thulya6/task-analyzer/internal/prioritization/domain/task"
	"github.com/thulya6/task-analyzer/internal/prioritization/domain/value_objects"
)

// SuggestTasksQuery contains the parameters for the actionable-today view.
type SuggestTasksQuery struct {
	Tasks    []task.Input
	Strategy string
	// Limit caps the subset; non-positive uses the engine default.
	Limit int
}

// SuggestTasksHandler handles the SuggestTasksQuery.
type SuggestTasksHandler struct {
	engine *services.Prioritizer
}

// NewSuggestTasksHandler creates a new SuggestTasksHandler.
func NewSuggestTasksHandler(engine *services.Prioritizer) *SuggestTasksHandler {
	return &SuggestTasksHandler{engine: engine}
}

// Handle executes the SuggestTasksQuery.
func (h *SuggestTasksHandler) Handle(ctx context.Context, query SuggestTasksQuery) (AnalyzeTasksResult, error) {
	if err := ctx.Err(); err != nil {
		return AnalyzeTasksResult{}, err
	}

	strategy := value_objects.ParseStrategyOr(query.Strategy, h.engine.DefaultStrategy())
	analysis := h.engine.Suggest(query.Tasks, strategy, query.Limit)

	return AnalyzeTasksResult{
		Strategy: strategy.String(),
		Tasks:    toRankedDTOs(analysis.Ranked),
		Errors:   toIssueDTOs(analysis.Errors),
	}, nil
}
