// Package task provides the commands for managing the persisted working
// task list that feeds the prioritization engine.
package task

import "github.com/spf13/cobra"

// Cmd is the task command group.
var Cmd = &cobra.Command{
	Use:   "task",
	Short: "Manage the persisted task list",
}

func init() {
	Cmd.AddCommand(addCmd)
	Cmd.AddCommand(listCmd)
	Cmd.AddCommand(doneCmd)
	Cmd.AddCommand(removeCmd)
}
