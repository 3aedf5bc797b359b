package value_objects

// PriorityLevel is the coarse bucket derived from an adjusted score.
type PriorityLevel string

const (
	PriorityLevelHigh   PriorityLevel = "high"
	PriorityLevelMedium PriorityLevel = "medium"
	PriorityLevelLow    PriorityLevel = "low"
)

// Score thresholds for the priority levels.
const (
	highScoreThreshold   = 1.2
	mediumScoreThreshold = 0.7
)

// PriorityLevelForScore buckets an adjusted score into high/medium/low.
func PriorityLevelForScore(score float64) PriorityLevel {
	switch {
	case score >= highScoreThreshold:
		return PriorityLevelHigh
	case score >= mediumScoreThreshold:
		return PriorityLevelMedium
	default:
		return PriorityLevelLow
	}
}

// String returns the string representation of the level.
func (l PriorityLevel) String() string {
	return string(l)
}
