package task

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/thulya6/task-analyzer/adapter/cli"
	taskDomain "github.com/thulya6/task-analyzer/internal/prioritization/domain/task"
)

var removeCmd = &cobra.Command{
	Use:     "remove <id>",
	Short:   "Remove a task from the working list",
	Aliases: []string{"rm"},
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app := cli.GetApp()
		if app == nil || app.TaskRepo == nil {
			return fmt.Errorf("no task store configured; set DATABASE_URL")
		}

		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid task id %q", args[0])
		}

		if err := app.TaskRepo.Delete(cmd.Context(), id); err != nil {
			if errors.Is(err, taskDomain.ErrNotFound) {
				return fmt.Errorf("task %d: %w", id, taskDomain.ErrNotFound)
			}
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Removed task #%d\n", id)
		return nil
	},
}
