package queries

import (
	"context"

	"github.com/thulya6/task-analyzer/internal/prioritization/application/services"
	"github.com/thulya6/task-analyzer/internal/prioritization/domain/task"
)

// DependencyGraphQuery contains the parameters for the graph view.
type DependencyGraphQuery struct {
	Tasks []task.Input
}

// DependencyGraphResult is the annotated graph plus rejected tasks.
type DependencyGraphResult struct {
	services.GraphSnapshot
	Errors []ValidationIssueDTO `json:"errors,omitempty"`
}

// DependencyGraphHandler handles the DependencyGraphQuery.
type DependencyGraphHandler struct {
	engine *services.Prioritizer
}

// NewDependencyGraphHandler creates a new DependencyGraphHandler.
func NewDependencyGraphHandler(engine *services.Prioritizer) *DependencyGraphHandler {
	return &DependencyGraphHandler{engine: engine}
}

// Handle executes the DependencyGraphQuery.
func (h *DependencyGraphHandler) Handle(ctx context.Context, query DependencyGraphQuery) (DependencyGraphResult, error) {
	if err := ctx.Err(); err != nil {
		return DependencyGraphResult{}, err
	}

	snapshot, errs := h.engine.GraphOnly(query.Tasks)
	return DependencyGraphResult{
		GraphSnapshot: snapshot,
		Errors:        toIssueDTOs(errs),
	}, nil
}
