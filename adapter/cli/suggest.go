package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thulya6/task-analyzer/internal/prioritization/application/queries"
)

var (
	suggestFile     string
	suggestStrategy string
	suggestLimit    int
	suggestVerbose  bool
)

var suggestCmd = &cobra.Command{
	Use:   "suggest",
	Short: "Pick the actionable tasks for today",
	Long: `Rank the batch, then narrow it to tasks with no open dependency in
the batch: the subset worth starting today. Tasks on a dependency cycle stay
eligible; a cycle only suppresses their score bonuses.

Examples:
  task-analyzer suggest
  task-analyzer suggest --file tasks.json --limit 5`,
	RunE: func(cmd *cobra.Command, args []string) error {
		app := GetApp()
		if app == nil {
			return fmt.Errorf("application not initialized")
		}

		inputs, err := loadBatch(cmd.Context(), suggestFile)
		if err != nil {
			return err
		}
		if len(inputs) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No tasks to suggest from.")
			return nil
		}

		result, err := app.SuggestHandler.Handle(cmd.Context(), queries.SuggestTasksQuery{
			Tasks:    inputs,
			Strategy: suggestStrategy,
			Limit:    suggestLimit,
		})
		if err != nil {
			return err
		}

		printRanked(cmd.OutOrStdout(), result, suggestVerbose)
		return nil
	},
}

func init() {
	suggestCmd.Flags().StringVarP(&suggestFile, "file", "f", "", "JSON file with the task batch")
	suggestCmd.Flags().StringVarP(&suggestStrategy, "strategy", "s", "", "weighting strategy")
	suggestCmd.Flags().IntVarP(&suggestLimit, "limit", "n", 0, "cap on suggested tasks (default from config)")
	suggestCmd.Flags().BoolVarP(&suggestVerbose, "verbose", "v", false, "show score factors")
}
