package task

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/thulya6/task-analyzer/adapter/cli"
	taskDomain "github.com/thulya6/task-analyzer/internal/prioritization/domain/task"
)

var (
	addDue        string
	addHours      float64
	addImportance int
	addDeps       string
)

var addCmd = &cobra.Command{
	Use:   "add <title>",
	Short: "Add a task to the working list",
	Long: `Add a task to the persisted working list.

Examples:
  task-analyzer task add "Write report" --due 2026-09-05 --hours 4 --importance 7
  task-analyzer task add "Review report" --deps 1`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app := cli.GetApp()
		if app == nil || app.TaskRepo == nil {
			return fmt.Errorf("no task store configured; set DATABASE_URL")
		}

		title := strings.TrimSpace(strings.Join(args, " "))
		if title == "" {
			return fmt.Errorf("title must not be empty")
		}
		if addImportance < 1 || addImportance > 10 {
			return fmt.Errorf("importance must be between 1 and 10")
		}
		if addHours < 0 {
			return fmt.Errorf("hours must not be negative")
		}

		deps := make([]int64, 0)
		for _, part := range strings.Split(addDeps, ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			id, err := strconv.ParseInt(part, 10, 64)
			if err != nil {
				return fmt.Errorf("invalid dependency id %q", part)
			}
			deps = append(deps, id)
		}

		ctx := cmd.Context()
		id, err := app.TaskRepo.NextID(ctx)
		if err != nil {
			return err
		}

		t := taskDomain.Task{
			ID:             id,
			Title:          title,
			DueDate:        taskDomain.ParseDueDate(addDue),
			EstimatedHours: addHours,
			Importance:     addImportance,
			Status:         taskDomain.StatusPending,
			Dependencies:   deps,
		}
		if addDue != "" && t.DueDate == nil {
			return fmt.Errorf("invalid due date %q, expected YYYY-MM-DD", addDue)
		}

		if err := app.TaskRepo.Save(ctx, t); err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Added task #%d: %s\n", id, title)
		return nil
	},
}

func init() {
	addCmd.Flags().StringVar(&addDue, "due", "", "due date (YYYY-MM-DD)")
	addCmd.Flags().Float64Var(&addHours, "hours", 0, "estimated hours")
	addCmd.Flags().IntVar(&addImportance, "importance", 5, "importance 1-10")
	addCmd.Flags().StringVar(&addDeps, "deps", "", "comma-separated dependency ids")
}
