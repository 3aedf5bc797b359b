package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/thulya6/task-analyzer/internal/prioritization/domain/task"
	"github.com/thulya6/task-analyzer/internal/prioritization/infrastructure/persistence"
)

// Driver identifies the storage backend.
type Driver string

const (
	DriverPostgres Driver = "postgres"
	DriverSQLite   Driver = "sqlite"
)

// DriverForURL infers the storage driver from a database URL. Postgres
// schemes select Postgres; everything else, including bare file paths,
// selects SQLite.
func DriverForURL(databaseURL string) Driver {
	switch {
	case strings.HasPrefix(databaseURL, "postgres://"),
		strings.HasPrefix(databaseURL, "postgresql://"):
		return DriverPostgres
	default:
		return DriverSQLite
	}
}

// NewTaskRepository creates a task repository for the given database URL.
func NewTaskRepository(ctx context.Context, databaseURL string) (task.Repository, error) {
	switch DriverForURL(databaseURL) {
	case DriverPostgres:
		repo, err := persistence.NewPostgresTaskRepository(ctx, databaseURL)
		if err != nil {
			return nil, fmt.Errorf("postgres repository: %w", err)
		}
		return repo, nil

	default:
		path := strings.TrimPrefix(databaseURL, "sqlite://")
		repo, err := persistence.NewSQLiteTaskRepository(path)
		if err != nil {
			return nil, fmt.Errorf("sqlite repository: %w", err)
		}
		return repo, nil
	}
}
