package task

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/thulya6/task-analyzer/adapter/cli"
	taskDomain "github.com/thulya6/task-analyzer/internal/prioritization/domain/task"
)

var listAll bool

var listCmd = &cobra.Command{
	Use:     "list",
	Short:   "List the working task list",
	Aliases: []string{"ls"},
	RunE: func(cmd *cobra.Command, args []string) error {
		app := cli.GetApp()
		if app == nil || app.TaskRepo == nil {
			return fmt.Errorf("no task store configured; set DATABASE_URL")
		}

		tasks, err := app.TaskRepo.List(cmd.Context())
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		shown := 0
		for _, t := range tasks {
			if !listAll && t.Status.IsDone() {
				continue
			}
			due := taskDomain.FormatDueDate(t.DueDate)
			if due == "" {
				due = "-"
			}
			deps := "-"
			if len(t.Dependencies) > 0 {
				parts := make([]string, 0, len(t.Dependencies))
				for _, dep := range t.Dependencies {
					parts = append(parts, strconv.FormatInt(dep, 10))
				}
				deps = strings.Join(parts, ",")
			}
			fmt.Fprintf(out, "#%-4d %-40s due %-12s %4.1fh  imp %2d  deps %-10s %s\n",
				t.ID, t.Title, due, t.EstimatedHours, t.Importance, deps, t.Status)
			shown++
		}

		if shown == 0 {
			fmt.Fprintln(out, "No tasks. Add one with: task-analyzer task add <title>")
		}
		return nil
	},
}

func init() {
	listCmd.Flags().BoolVarP(&listAll, "all", "a", false, "include done tasks")
}
