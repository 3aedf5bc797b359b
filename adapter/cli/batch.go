package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/thulya6/task-analyzer/internal/prioritization/domain/task"
)

// loadBatch reads the task batch for analyze/suggest/graph: from a JSON file
// when path is given, otherwise from the persisted working list.
func loadBatch(ctx context.Context, path string) ([]task.Input, error) {
	if path != "" {
		return loadBatchFile(path)
	}

	app := GetApp()
	if app == nil || app.TaskRepo == nil {
		return nil, fmt.Errorf("no task store configured; pass --file or set DATABASE_URL")
	}

	tasks, err := app.TaskRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("load stored tasks: %w", err)
	}
	return inputsFromTasks(tasks), nil
}

// loadBatchFile accepts either a bare JSON array of tasks or an object with
// a "tasks" field, matching the HTTP request body.
func loadBatchFile(path string) ([]task.Input, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	var direct []task.Input
	if err := json.Unmarshal(data, &direct); err == nil {
		return direct, nil
	}

	var wrapped struct {
		Tasks []task.Input `json:"tasks"`
	}
	if err := json.Unmarshal(data, &wrapped); err != nil || wrapped.Tasks == nil {
		return nil, fmt.Errorf("%s: %w", path, task.ErrMalformedBatch)
	}
	return wrapped.Tasks, nil
}

func inputsFromTasks(tasks []task.Task) []task.Input {
	inputs := make([]task.Input, 0, len(tasks))
	for _, t := range tasks {
		id := t.ID
		inputs = append(inputs, task.Input{
			ID:             &id,
			Title:          t.Title,
			DueDate:        task.FormatDueDate(t.DueDate),
			EstimatedHours: task.Hours(t.EstimatedHours),
			Importance:     task.Importance(t.Importance),
			Status:         t.Status.String(),
			Dependencies:   task.DepList(t.Dependencies),
		})
	}
	return inputs
}
