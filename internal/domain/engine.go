package domain

import (
	"context"

	m "gridpath.dev/pkg/gridpath/internal/model"
)

// stepCost is the cost of every edge in the grid graph.
const stepCost = 1

// searcher advances a search by one expansion per call to next.
type searcher interface {
	// next expands one cell. It reports false once the search has nothing
	// left to expand.
	next(ctx context.Context) (m.Cell, bool, error)
	finished() bool
	result() m.Result
	pending() []m.Cell
	limit() int
}

// engine is the shared traversal loop for BFS, DFS, UCS and A*.
type engine struct {
	grid      *m.Grid
	start     m.Cell
	goal      m.Cell
	strategy  m.Strategy
	moves     []m.Move
	heuristic Heuristic
	relax     bool

	frontier Frontier
	costs    map[m.Cell]int
	seen     map[m.Cell]bool
	closed   map[m.Cell]bool
	cameFrom map[m.Cell]m.Cell
	visited  []m.Cell

	done  bool
	found bool
	path  m.Path
}

func newEngine(scenario m.Scenario, profile Profile) (*engine, error) {
	frontier, err := NewFrontier(profile.Discipline)
	if err != nil {
		return nil, err
	}

	e := &engine{
		grid:      scenario.Grid,
		start:     scenario.Start,
		goal:      scenario.Goal,
		strategy:  profile.Strategy,
		moves:     profile.pushOrder(),
		heuristic: profile.heuristic(),
		relax:     profile.Discipline.costAware(),
		frontier:  frontier,
		cameFrom:  make(map[m.Cell]m.Cell),
	}

	if e.relax {
		e.costs = map[m.Cell]int{e.start: 0}
		e.closed = make(map[m.Cell]bool)
		e.frontier.Push(e.start, e.heuristic(e.start, e.goal))
	} else {
		e.seen = map[m.Cell]bool{e.start: true}
		e.frontier.Push(e.start, 0)
	}

	return e, nil
}

func (e *engine) next(ctx context.Context) (m.Cell, bool, error) {
	for !e.done && !e.frontier.Empty() {
		if err := ctx.Err(); err != nil {
			return m.Cell{}, false, err
		}

		current := e.frontier.Pop()

		if e.relax {
			// The first pop of a cell is authoritative; later entries are stale.
			if e.closed[current] {
				continue
			}

			e.closed[current] = true
		}

		e.visited = append(e.visited, current)

		if current == e.goal {
			path, err := ReconstructPath(e.cameFrom, e.start, current)
			if err != nil {
				return current, false, err
			}

			e.done, e.found, e.path = true, true, path

			return current, true, nil
		}

		e.expand(current)

		return current, true, nil
	}

	e.done = true

	return m.Cell{}, false, nil
}

func (e *engine) expand(current m.Cell) {
	for _, neighbor := range e.grid.Neighbors(current, e.moves) {
		if !e.relax {
			if e.seen[neighbor] {
				continue
			}

			e.seen[neighbor] = true
			e.cameFrom[neighbor] = current
			e.frontier.Push(neighbor, 0)

			continue
		}

		candidate := e.costs[current] + stepCost
		if known, ok := e.costs[neighbor]; ok && candidate >= known {
			continue
		}

		e.costs[neighbor] = candidate
		e.cameFrom[neighbor] = current
		e.frontier.Push(neighbor, candidate+e.heuristic(neighbor, e.goal))
	}
}

func (e *engine) finished() bool { return e.done }

func (e *engine) result() m.Result {
	return buildResult(e.strategy, e.found, e.path, e.visited, 1)
}

func (e *engine) pending() []m.Cell { return e.frontier.Cells() }

func (e *engine) limit() int { return -1 }

func buildResult(strategy m.Strategy, found bool, path m.Path, visited []m.Cell, iterations int) m.Result {
	result := m.Result{
		Strategy:   strategy,
		Found:      found,
		Length:     -1,
		Visited:    append([]m.Cell(nil), visited...),
		Iterations: iterations,
	}

	if found {
		result.Path = append(m.Path(nil), path...)
		result.Length = path.Length()
	}

	return result
}
