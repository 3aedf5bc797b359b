package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/thulya6/task-analyzer/adapter/api"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API server",
	Long: `Serve the prioritization engine over HTTP:

  POST /api/v1/tasks/analyze   full ranked list
  POST /api/v1/tasks/suggest   actionable-today subset
  POST /api/v1/tasks/graph     annotated dependency graph
  GET  /health                 liveness check`,
	RunE: func(cmd *cobra.Command, args []string) error {
		app := GetApp()
		if app == nil {
			return fmt.Errorf("application not initialized")
		}

		cfg := api.DefaultServerConfig()
		if serveAddr != "" {
			cfg.Addr = serveAddr
		} else if app.Config.HTTPAddr != "" {
			cfg.Addr = app.Config.HTTPAddr
		}

		cache := api.NewResponseCache(app.Redis, app.Config.CacheTTL, app.Logger)
		handler := api.NewTasksHandler(
			app.AnalyzeHandler,
			app.SuggestHandler,
			app.GraphHandler,
			cache,
			app.Logger,
		)
		server := api.NewServer(cfg, handler, app.Logger)

		errCh := make(chan error, 1)
		go func() {
			if err := server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				errCh <- err
			}
		}()

		select {
		case err := <-errCh:
			return err
		case <-cmd.Context().Done():
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return server.Shutdown(shutdownCtx)
		}
	},
}

func init() {
	serveCmd.Flags().StringVarP(&serveAddr, "addr", "a", "", "listen address (default from config)")
}
