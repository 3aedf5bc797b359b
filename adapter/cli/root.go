package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/thulya6/task-analyzer/pkg/observability"
)

type commandContext struct {
	correlationID uuid.UUID
	startedAt     time.Time
}

type commandContextKey struct{}

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "task-analyzer",
	Short: "Task Analyzer - dependency-aware task prioritization",
	Long: `Task Analyzer ranks a batch of tasks by priority, combining due-date
urgency, user-assigned importance, estimated effort, and the dependency
structure among tasks. Cyclic dependency declarations are detected and
neutralized rather than rejected.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if logger == nil {
			logger = slog.Default()
		}
		ctx := cmd.Context()
		info := commandContext{
			correlationID: uuid.New(),
			startedAt:     time.Now(),
		}
		cmd.SetContext(context.WithValue(ctx, commandContextKey{}, info))
		observability.LogOperation(logger, cmd.CommandPath(),
			observability.CorrelationIDKey, info.correlationID.String(),
		).Debug("command start")
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger == nil {
			logger = slog.Default()
		}
		info, ok := cmd.Context().Value(commandContextKey{}).(commandContext)
		if !ok {
			return
		}
		observability.LogOperation(logger, cmd.CommandPath(),
			observability.CorrelationIDKey, info.correlationID.String(),
		).Debug("command end",
			observability.DurationKey, time.Since(info.startedAt).Milliseconds(),
		)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute(ctx context.Context) {
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// AddCommand registers a command group on the root command.
func AddCommand(cmd *cobra.Command) {
	rootCmd.AddCommand(cmd)
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(suggestCmd)
	rootCmd.AddCommand(graphCmd)
	rootCmd.AddCommand(serveCmd)
}
