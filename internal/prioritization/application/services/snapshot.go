package services

import (
	"math"

	"github.com/thulya6/task-analyzer/internal/prioritization/domain/task"
)

const labelRuneLimit = 30

// GraphNode is one annotated node of the dependency graph output.
type GraphNode struct {
	ID         int64   `json:"id"`
	Label      string  `json:"label"`
	Title      string  `json:"title"`
	Importance int     `json:"importance"`
	Hours      float64 `json:"hours"`
	Due        string  `json:"due"`
	InCycle    bool    `json:"inCycle"`
	HasDeps    bool    `json:"hasDeps"`
	BlockedBy  int     `json:"blockedBy"`
}

// GraphEdge is one dependency edge: From must finish before To.
type GraphEdge struct {
	From int64 `json:"from"`
	To   int64 `json:"to"`
}

// GraphSnapshot is the annotated graph handed to visualization consumers.
// It is derived directly from the builder's structures, never recomputed.
type GraphSnapshot struct {
	Nodes     []GraphNode `json:"nodes"`
	Edges     []GraphEdge `json:"edges"`
	Cycles    []int64     `json:"cycles"`
	TaskCount int         `json:"taskCount"`
}

// Snapshot renders the graph with its cycle annotations for external
// consumers, in batch order.
func (g *DependencyGraph) Snapshot() GraphSnapshot {
	snap := GraphSnapshot{
		Nodes:     make([]GraphNode, 0, len(g.order)),
		Edges:     make([]GraphEdge, 0),
		Cycles:    g.CycleMembers(),
		TaskCount: len(g.order),
	}

	for _, id := range g.order {
		t := g.tasks[id]

		due := "No due date"
		if t.DueDate != nil {
			due = task.FormatDueDate(t.DueDate)
		}

		snap.Nodes = append(snap.Nodes, GraphNode{
			ID:         id,
			Label:      truncateLabel(t.Title),
			Title:      t.Title,
			Importance: t.Importance,
			Hours:      math.Round(t.EstimatedHours*10) / 10,
			Due:        due,
			InCycle:    g.inCycle[id],
			HasDeps:    len(t.Dependencies) > 0,
			BlockedBy:  len(g.dependencies[id]),
		})

		for _, dep := range g.dependencies[id] {
			snap.Edges = append(snap.Edges, GraphEdge{From: dep, To: id})
		}
	}

	return snap
}

func truncateLabel(title string) string {
	runes := []rune(title)
	if len(runes) <= labelRuneLimit {
		return title
	}
	return string(runes[:labelRuneLimit]) + "..."
}
