package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thulya6/task-analyzer/internal/prioritization/application/queries"
)

var graphFile string

var graphCmd = &cobra.Command{
	Use:   "graph",
	Short: "Dump the annotated dependency graph as JSON",
	Long: `Build the dependency graph for a batch and print its nodes, edges,
and cycle annotations as JSON, the same payload the HTTP graph endpoint
serves to visualization frontends.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		app := GetApp()
		if app == nil {
			return fmt.Errorf("application not initialized")
		}

		inputs, err := loadBatch(cmd.Context(), graphFile)
		if err != nil {
			return err
		}

		result, err := app.GraphHandler.Handle(cmd.Context(), queries.DependencyGraphQuery{
			Tasks: inputs,
		})
		if err != nil {
			return err
		}

		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		return encoder.Encode(result)
	},
}

func init() {
	graphCmd.Flags().StringVarP(&graphFile, "file", "f", "", "JSON file with the task batch")
}
