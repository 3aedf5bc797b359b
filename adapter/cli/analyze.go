package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/thulya6/task-analyzer/internal/prioritization/application/queries"
)

var (
	analyzeFile     string
	analyzeStrategy string
	analyzeVerbose  bool
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Rank a task batch by priority",
	Long: `Rank a batch of tasks under a weighting strategy.

Strategies:
  smart_balance    balanced urgency, importance, and effort (default)
  deadline_driven  due dates dominate
  high_impact      importance dominates
  fastest_wins     quick wins first

Examples:
  task-analyzer analyze --file tasks.json
  task-analyzer analyze --strategy deadline_driven
  task-analyzer analyze --file tasks.json --verbose`,
	RunE: func(cmd *cobra.Command, args []string) error {
		app := GetApp()
		if app == nil {
			return fmt.Errorf("application not initialized")
		}

		inputs, err := loadBatch(cmd.Context(), analyzeFile)
		if err != nil {
			return err
		}
		if len(inputs) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No tasks to analyze.")
			return nil
		}

		result, err := app.AnalyzeHandler.Handle(cmd.Context(), queries.AnalyzeTasksQuery{
			Tasks:    inputs,
			Strategy: analyzeStrategy,
		})
		if err != nil {
			return err
		}

		printRanked(cmd.OutOrStdout(), result, analyzeVerbose)
		return nil
	},
}

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeFile, "file", "f", "", "JSON file with the task batch")
	analyzeCmd.Flags().StringVarP(&analyzeStrategy, "strategy", "s", "", "weighting strategy")
	analyzeCmd.Flags().BoolVarP(&analyzeVerbose, "verbose", "v", false, "show score factors")
}

func printRanked(out io.Writer, result queries.AnalyzeTasksResult, verbose bool) {
	fmt.Fprintf(out, "Strategy: %s\n\n", result.Strategy)

	if len(result.Tasks) == 0 {
		fmt.Fprintln(out, "No tasks ranked.")
	}

	for i, t := range result.Tasks {
		due := t.DueDate
		if due == "" {
			due = "no due date"
		}
		marker := ""
		if t.InCycle {
			marker = "  [cycle]"
		}
		fmt.Fprintf(out, "%2d. [%-6s] #%-3d %-40s due %-12s score %.2f%s\n",
			i+1, t.PriorityLevel, t.ID, clip(t.Title, 40), due, t.Score, marker)

		if verbose {
			for _, f := range t.Factors {
				fmt.Fprintf(out, "      %-12s %+.2f  %s\n", f.Name, f.Delta, f.Reason)
			}
		}
	}

	if len(result.Errors) > 0 {
		fmt.Fprintln(out, "\nRejected tasks:")
		for _, e := range result.Errors {
			fmt.Fprintf(out, "  batch index %d (%s): %s\n", e.Index, e.Field, e.Message)
		}
	}
}

func clip(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-3]) + "..."
}
