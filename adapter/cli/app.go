// Package cli implements the command-line interface for the task analyzer.
package cli

import (
	"log/slog"

	"github.com/thulya6/task-analyzer/internal/app"
)

var (
	application *app.Container
	logger      *slog.Logger
)

// SetApp stores the application container for command handlers.
func SetApp(a *app.Container) {
	application = a
}

// GetApp returns the application container.
func GetApp() *app.Container {
	return application
}

// SetLogger stores the logger for command handlers.
func SetLogger(l *slog.Logger) {
	logger = l
}
