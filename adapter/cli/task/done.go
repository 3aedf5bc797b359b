package task

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/thulya6/task-analyzer/adapter/cli"
	taskDomain "github.com/thulya6/task-analyzer/internal/prioritization/domain/task"
)

var doneCmd = &cobra.Command{
	Use:   "done <id>",
	Short: "Mark a task done",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app := cli.GetApp()
		if app == nil || app.TaskRepo == nil {
			return fmt.Errorf("no task store configured; set DATABASE_URL")
		}

		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid task id %q", args[0])
		}

		ctx := cmd.Context()
		tasks, err := app.TaskRepo.List(ctx)
		if err != nil {
			return err
		}

		for _, t := range tasks {
			if t.ID != id {
				continue
			}
			t.Status = taskDomain.StatusDone
			if err := app.TaskRepo.Save(ctx, t); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Done: #%d %s\n", t.ID, t.Title)
			return nil
		}

		return fmt.Errorf("task %d: %w", id, taskDomain.ErrNotFound)
	},
}
