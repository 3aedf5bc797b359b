package services

import (
	"log/slog"
	"time"

	"github.com/thulya6/task-analyzer/internal/prioritization/domain/task"
	"github.com/thulya6/task-analyzer/internal/prioritization/domain/value_objects"
	"github.com/thulya6/task-analyzer/pkg/observability"
)

// PrioritizerConfig tunes the engine facade.
type PrioritizerConfig struct {
	// SuggestLimit caps the "today" subset. Non-positive falls back to
	// DefaultSuggestLimit.
	SuggestLimit int
	// DefaultStrategy applies when a caller supplies none. Empty falls back
	// to smart_balance.
	DefaultStrategy value_objects.Strategy
	// Now supplies the current time; overridable for tests.
	Now func() time.Time
}

// DefaultPrioritizerConfig returns a production-friendly configuration.
func DefaultPrioritizerConfig() PrioritizerConfig {
	return PrioritizerConfig{
		SuggestLimit:    DefaultSuggestLimit,
		DefaultStrategy: value_objects.StrategySmartBalance,
		Now:             time.Now,
	}
}

// Prioritizer runs the full pipeline: normalization, graph construction,
// scoring, ranking, and subset selection. It is stateless across calls;
// every invocation allocates its own graph and score structures, so
// concurrent independent invocations are safe.
type Prioritizer struct {
	config PrioritizerConfig
	logger *slog.Logger
}

// NewPrioritizer creates a new engine facade with the given configuration.
func NewPrioritizer(cfg PrioritizerConfig, logger *slog.Logger) *Prioritizer {
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	if cfg.SuggestLimit <= 0 {
		cfg.SuggestLimit = DefaultSuggestLimit
	}
	if cfg.DefaultStrategy == "" {
		cfg.DefaultStrategy = value_objects.StrategySmartBalance
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Prioritizer{config: cfg, logger: logger}
}

// DefaultStrategy returns the strategy applied when callers supply none.
func (p *Prioritizer) DefaultStrategy() value_objects.Strategy {
	return p.config.DefaultStrategy
}

// Analysis is the outcome of one engine invocation: the ranked tasks, the
// annotated dependency graph, and any per-task validation failures.
// Invalid tasks are excluded from the ranking; the batch still succeeds.
type Analysis struct {
	Strategy value_objects.Strategy
	Ranked   []RankedTask
	Graph    GraphSnapshot
	Errors   []task.ValidationError
}

// Analyze scores and ranks a full batch under the given strategy.
func (p *Prioritizer) Analyze(inputs []task.Input, strategy value_objects.Strategy) Analysis {
	defer observability.LogDuration(p.logger, "analyze", time.Now())

	tasks, errs := task.NormalizeBatch(inputs)
	graph := BuildGraph(tasks)
	scorer := NewScorer(p.config.Now)

	scores := make(map[int64]ScoreResult, len(tasks))
	for _, t := range tasks {
		scores[t.ID] = scorer.Score(t, graph, strategy)
	}

	ranked := Rank(tasks, scores, p.config.Now())

	p.logger.Debug("batch analyzed",
		"strategy", strategy.String(),
		"tasks", len(tasks),
		"rejected", len(errs),
		"cycles", len(graph.CycleMembers()),
	)

	return Analysis{
		Strategy: strategy,
		Ranked:   ranked,
		Graph:    graph.Snapshot(),
		Errors:   errs,
	}
}

// Suggest runs Analyze and narrows the result to the actionable-today
// subset. A non-positive limit uses the configured default.
func (p *Prioritizer) Suggest(inputs []task.Input, strategy value_objects.Strategy, limit int) Analysis {
	defer observability.LogDuration(p.logger, "suggest", time.Now())

	if limit <= 0 {
		limit = p.config.SuggestLimit
	}

	tasks, errs := task.NormalizeBatch(inputs)
	graph := BuildGraph(tasks)
	scorer := NewScorer(p.config.Now)

	scores := make(map[int64]ScoreResult, len(tasks))
	for _, t := range tasks {
		scores[t.ID] = scorer.Score(t, graph, strategy)
	}

	ranked := Rank(tasks, scores, p.config.Now())
	suggested := SuggestToday(ranked, graph, limit)

	p.logger.Debug("today subset selected",
		"strategy", strategy.String(),
		"eligible", len(suggested),
		"of", len(ranked),
	)

	return Analysis{
		Strategy: strategy,
		Ranked:   suggested,
		Graph:    graph.Snapshot(),
		Errors:   errs,
	}
}

// GraphOnly normalizes a batch and returns its annotated dependency graph
// without scoring.
func (p *Prioritizer) GraphOnly(inputs []task.Input) (GraphSnapshot, []task.ValidationError) {
	tasks, errs := task.NormalizeBatch(inputs)
	graph := BuildGraph(tasks)
	return graph.Snapshot(), errs
}
