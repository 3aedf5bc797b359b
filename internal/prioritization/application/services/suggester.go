package services

// DefaultSuggestLimit bounds the "today" view when no limit is configured.
const DefaultSuggestLimit = 3

// SuggestToday narrows an already-ranked list to the actionable subset: tasks
// with no open in-batch dependency. A dependency is open when it is present
// in the batch and not done. Dependencies inside the task's own cycle do not
// block it; cycles neither block nor unblock suggestion, they only neutralize
// score bonuses. The result keeps the ranked order, capped to limit
// (non-positive limit falls back to DefaultSuggestLimit).
func SuggestToday(ranked []RankedTask, g *DependencyGraph, limit int) []RankedTask {
	if limit <= 0 {
		limit = DefaultSuggestLimit
	}

	actionable := make([]RankedTask, 0, limit)
	for _, r := range ranked {
		if r.Task.Status.IsDone() {
			continue
		}
		if !isActionable(r, g) {
			continue
		}
		actionable = append(actionable, r)
		if len(actionable) == limit {
			break
		}
	}
	return actionable
}

func isActionable(r RankedTask, g *DependencyGraph) bool {
	for _, dep := range g.Dependencies(r.Task.ID) {
		if g.SameCycle(r.Task.ID, dep) {
			continue
		}
		if !g.taskStatus(dep).IsDone() {
			return false
		}
	}
	return true
}
