// Package services implements the prioritization engine: dependency graph
// construction with cycle detection, strategy-weighted scoring, multi-level
// ranking, and the "suggest today" subset selection. Every invocation builds
// its own structures; nothing is shared across calls.
package services

import (
	"sort"
	"time"

	"github.com/thulya6/task-analyzer/internal/prioritization/domain/task"
)

// DependencyGraph is the directed graph of one task batch. Nodes are task
// ids; an edge D→T means "D must finish before T". Edges referencing ids
// not present in the batch are dropped during construction.
type DependencyGraph struct {
	tasks map[int64]task.Task
	order []int64 // batch order, for deterministic iteration

	// dependents maps id → ids of tasks that list it as a dependency.
	dependents map[int64][]int64
	// dependencies maps id → its in-batch dependency ids.
	dependencies map[int64][]int64

	inCycle map[int64]bool
	sccID   map[int64]int
}

// BuildGraph constructs the dependency graph for a normalized batch and runs
// strongly-connected-component analysis. Always linear in nodes plus edges,
// regardless of cycle structure.
func BuildGraph(tasks []task.Task) *DependencyGraph {
	g := &DependencyGraph{
		tasks:        make(map[int64]task.Task, len(tasks)),
		order:        make([]int64, 0, len(tasks)),
		dependents:   make(map[int64][]int64, len(tasks)),
		dependencies: make(map[int64][]int64, len(tasks)),
		inCycle:      make(map[int64]bool, len(tasks)),
		sccID:        make(map[int64]int, len(tasks)),
	}

	for _, t := range tasks {
		g.tasks[t.ID] = t
		g.order = append(g.order, t.ID)
	}

	for _, t := range tasks {
		for _, dep := range t.Dependencies {
			if _, present := g.tasks[dep]; !present {
				continue // stale reference, not an edge
			}
			g.dependencies[t.ID] = append(g.dependencies[t.ID], dep)
			g.dependents[dep] = append(g.dependents[dep], t.ID)
		}
	}

	g.findCycles()
	return g
}

// Contains reports whether the batch holds a task with the given id.
func (g *DependencyGraph) Contains(id int64) bool {
	_, ok := g.tasks[id]
	return ok
}

// DependentsCount returns the number of tasks directly blocked by id.
func (g *DependencyGraph) DependentsCount(id int64) int {
	return len(g.dependents[id])
}

// Dependencies returns the in-batch dependency ids of id.
func (g *DependencyGraph) Dependencies(id int64) []int64 {
	return g.dependencies[id]
}

// InCycle reports whether id lies on a directed dependency cycle.
func (g *DependencyGraph) InCycle(id int64) bool {
	return g.inCycle[id]
}

// SameCycle reports whether two tasks belong to the same dependency cycle.
func (g *DependencyGraph) SameCycle(a, b int64) bool {
	return g.inCycle[a] && g.inCycle[b] && g.sccID[a] == g.sccID[b]
}

// DependentDueDates returns the due dates of all tasks directly depending
// on id, in batch order. Dependents without a due date contribute nothing.
func (g *DependencyGraph) DependentDueDates(id int64) []time.Time {
	dues := make([]time.Time, 0, len(g.dependents[id]))
	for _, dep := range g.dependents[id] {
		if due := g.tasks[dep].DueDate; due != nil {
			dues = append(dues, *due)
		}
	}
	return dues
}

func (g *DependencyGraph) taskStatus(id int64) task.Status {
	return g.tasks[id].Status
}

// CycleMembers returns the ids of all tasks on a cycle, ascending.
func (g *DependencyGraph) CycleMembers() []int64 {
	members := make([]int64, 0)
	for id, in := range g.inCycle {
		if in {
			members = append(members, id)
		}
	}
	sort.Slice(members, func(i, j int) bool { return members[i] < members[j] })
	return members
}

// findCycles runs Tarjan's strongly-connected-components algorithm over the
// dependency edges, iteratively to keep stack depth bounded on adversarial
// input. A task is on a cycle when its component has size two or more;
// length-1 cycles cannot occur because self-references fail validation.
func (g *DependencyGraph) findCycles() {
	const unvisited = -1

	index := 0
	nextSCC := 0
	indices := make(map[int64]int, len(g.tasks))
	lowlink := make(map[int64]int, len(g.tasks))
	onStack := make(map[int64]bool, len(g.tasks))
	stack := make([]int64, 0, len(g.tasks))

	for _, id := range g.order {
		indices[id] = unvisited
	}

	type frame struct {
		id    int64
		child int
	}

	for _, root := range g.order {
		if indices[root] != unvisited {
			continue
		}

		frames := []frame{{id: root}}
		for len(frames) > 0 {
			f := &frames[len(frames)-1]

			if f.child == 0 {
				indices[f.id] = index
				lowlink[f.id] = index
				index++
				stack = append(stack, f.id)
				onStack[f.id] = true
			}

			deps := g.dependencies[f.id]
			if f.child < len(deps) {
				next := deps[f.child]
				f.child++
				if indices[next] == unvisited {
					frames = append(frames, frame{id: next})
				} else if onStack[next] {
					if indices[next] < lowlink[f.id] {
						lowlink[f.id] = indices[next]
					}
				}
				continue
			}

			// All children explored: maybe pop a component, then retire
			// the frame into its parent's lowlink.
			if lowlink[f.id] == indices[f.id] {
				size := 0
				for {
					top := stack[len(stack)-1]
					stack = stack[:len(stack)-1]
					onStack[top] = false
					g.sccID[top] = nextSCC
					size++
					if top == f.id {
						break
					}
				}
				if size >= 2 {
					for id, scc := range g.sccID {
						if scc == nextSCC {
							g.inCycle[id] = true
						}
					}
				}
				nextSCC++
			}

			frames = frames[:len(frames)-1]
			if len(frames) > 0 {
				parent := &frames[len(frames)-1]
				if lowlink[f.id] < lowlink[parent.id] {
					lowlink[parent.id] = lowlink[f.id]
				}
			}
		}
	}
}
