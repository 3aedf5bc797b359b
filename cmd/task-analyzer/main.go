package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/thulya6/task-analyzer/adapter/cli"
	cliTask "github.com/thulya6/task-analyzer/adapter/cli/task"
	"github.com/thulya6/task-analyzer/internal/app"
	"github.com/thulya6/task-analyzer/pkg/config"
	"github.com/thulya6/task-analyzer/pkg/observability"
)

func main() {
	logger := observability.LoggerFromEnv()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		cancel()
	}()

	cfg, err := config.Load()
	if err != nil {
		logger.Warn("failed to load config, using defaults", "error", err)
		cfg = &config.Config{AppEnv: "development"}
	}

	container, err := app.NewContainer(ctx, cfg, logger)
	if err != nil {
		logger.Error("failed to initialize container", "error", err)
		os.Exit(1)
	}
	defer container.Close()

	cli.SetLogger(logger)
	cli.SetApp(container)
	cli.AddCommand(cliTask.Cmd)

	cli.Execute(ctx)
}
