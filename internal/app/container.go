// Package app wires configuration, storage, and the prioritization engine
// into the handlers the transports consume.
package app

import (
	"context"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"github.com/thulya6/task-analyzer/internal/prioritization/application/queries"
	"github.com/thulya6/task-analyzer/internal/prioritization/application/services"
	"github.com/thulya6/task-analyzer/internal/prioritization/domain/task"
	"github.com/thulya6/task-analyzer/internal/prioritization/domain/value_objects"
	"github.com/thulya6/task-analyzer/pkg/config"
)

// Container holds all application dependencies.
type Container struct {
	Config *config.Config
	Logger *slog.Logger

	// TaskRepo is the persisted working list; nil when persistence is
	// disabled (the engine itself never needs it).
	TaskRepo task.Repository

	// Redis backs the transport-layer response cache; nil when disabled.
	Redis *redis.Client

	Engine         *services.Prioritizer
	AnalyzeHandler *queries.AnalyzeTasksHandler
	SuggestHandler *queries.SuggestTasksHandler
	GraphHandler   *queries.DependencyGraphHandler
}

// NewContainer creates and wires all application dependencies.
func NewContainer(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Container, error) {
	engine := services.NewPrioritizer(services.PrioritizerConfig{
		SuggestLimit:    cfg.SuggestLimit,
		DefaultStrategy: value_objects.ParseStrategy(cfg.DefaultStrategy),
	}, logger)

	c := &Container{
		Config:         cfg,
		Logger:         logger,
		Engine:         engine,
		AnalyzeHandler: queries.NewAnalyzeTasksHandler(engine),
		SuggestHandler: queries.NewSuggestTasksHandler(engine),
		GraphHandler:   queries.NewDependencyGraphHandler(engine),
	}

	if cfg.DatabaseURL != "" {
		repo, err := NewTaskRepository(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, err
		}
		c.TaskRepo = repo
	}

	if cfg.RedisURL != "" {
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			logger.Warn("invalid redis URL, response cache disabled", "error", err)
		} else {
			c.Redis = redis.NewClient(opts)
		}
	}

	return c, nil
}

// Close releases all held resources.
func (c *Container) Close() {
	if c.TaskRepo != nil {
		if err := c.TaskRepo.Close(); err != nil {
			c.Logger.Warn("failed to close task repository", "error", err)
		}
	}
	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			c.Logger.Warn("failed to close redis client", "error", err)
		}
	}
}
