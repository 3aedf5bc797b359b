// Package value_objects contains the immutable values of the prioritization
// domain: weighting strategies and priority levels.
package value_objects

import "strings"

// Strategy names a weighting scheme for combining urgency, importance, and
// effort into a base score.
type Strategy string

const (
	StrategySmartBalance   Strategy = "smart_balance"
	StrategyDeadlineDriven Strategy = "deadline_driven"
	StrategyHighImpact     Strategy = "high_impact"
	StrategyFastestWins    Strategy = "fastest_wins"
)

// StrategyWeights is the weight triple applied to the three base-score
// signals. Weights of each recognized strategy sum to 1.0.
type StrategyWeights struct {
	Urgency    float64
	Importance float64
	Effort     float64
}

var strategyWeights = map[Strategy]StrategyWeights{
	StrategySmartBalance:   {Urgency: 0.35, Importance: 0.40, Effort: 0.25},
	StrategyDeadlineDriven: {Urgency: 0.85, Importance: 0.10, Effort: 0.05},
	StrategyHighImpact:     {Urgency: 0.10, Importance: 0.80, Effort: 0.10},
	StrategyFastestWins:    {Urgency: 0.20, Importance: 0.20, Effort: 0.60},
}

var strategyLabels = map[Strategy]string{
	StrategySmartBalance:   "Smart Balance",
	StrategyDeadlineDriven: "Deadline Driven",
	StrategyHighImpact:     "High Impact",
	StrategyFastestWins:    "Fastest Wins",
}

// ParseStrategy creates a Strategy from a string. Unknown or empty input
// falls back to smart_balance; an unrecognized strategy is not an error.
func ParseStrategy(s string) Strategy {
	candidate := Strategy(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := strategyWeights[candidate]; ok {
		return candidate
	}
	return StrategySmartBalance
}

// ParseStrategyOr resolves s, using fallback when s is absent. Unrecognized
// non-empty input still resolves to smart_balance, not to fallback: a typo
// should not silently pick up a configured default.
func ParseStrategyOr(s string, fallback Strategy) Strategy {
	if strings.TrimSpace(s) == "" {
		return ParseStrategy(string(fallback))
	}
	return ParseStrategy(s)
}

// String returns the wire name of the strategy.
func (s Strategy) String() string {
	return string(s)
}

// Label returns the human-readable name of the strategy.
func (s Strategy) Label() string {
	if label, ok := strategyLabels[s]; ok {
		return label
	}
	return strategyLabels[StrategySmartBalance]
}

// Weights returns the weight triple for the strategy.
func (s Strategy) Weights() StrategyWeights {
	if w, ok := strategyWeights[s]; ok {
		return w
	}
	return strategyWeights[StrategySmartBalance]
}

// Strategies returns the recognized strategy names in stable order.
func Strategies() []Strategy {
	return []Strategy{
		StrategySmartBalance,
		StrategyDeadlineDriven,
		StrategyHighImpact,
		StrategyFastestWins,
	}
}
