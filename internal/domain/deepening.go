package domain

import (
	"context"

	m "gridpath.dev/pkg/gridpath/internal/model"
)

// dlsFrame is one level of the explicit depth-bounded stack.
type dlsFrame struct {
	cell      m.Cell
	remaining int
	next      int
}

// deepening runs depth-limited searches with limits 0, 1, 2, ... until the
// goal is reached, the cap is exhausted, or the search space stops growing.
//
// Cycle avoidance is local to the current branch: a cell on the stack is not
// re-entered, but sibling branches may visit it again. Every visit is logged,
// including repeats across iterations.
type deepening struct {
	grid     *m.Grid
	start    m.Cell
	goal     m.Cell
	strategy m.Strategy
	moves    []m.Move
	maxDepth int
	plateau  bool

	depth    int
	active   bool
	stack    []dlsFrame
	onPath   map[m.Cell]bool
	cameFrom map[m.Cell]m.Cell
	visited  []m.Cell

	iterations     int
	iterationVisit int
	previousVisit  int

	done  bool
	found bool
	path  m.Path
}

func newDeepening(scenario m.Scenario, profile Profile, plateau bool) *deepening {
	return &deepening{
		grid:          scenario.Grid,
		start:         scenario.Start,
		goal:          scenario.Goal,
		strategy:      profile.Strategy,
		moves:         profile.pushOrder(),
		maxDepth:      scenario.Grid.Size(),
		plateau:       plateau,
		previousVisit: -1,
	}
}

func (d *deepening) next(ctx context.Context) (m.Cell, bool, error) {
	for !d.done {
		if err := ctx.Err(); err != nil {
			return m.Cell{}, false, err
		}

		if !d.active {
			if !d.beginIteration() {
				d.done = true
				break
			}

			d.stack = append(d.stack, dlsFrame{cell: d.start, remaining: d.depth})

			return d.visit(d.start)
		}

		if cell, ok := d.descend(); ok {
			return d.visit(cell)
		}

		d.endIteration()
	}

	return m.Cell{}, false, nil
}

func (d *deepening) beginIteration() bool {
	if d.depth >= d.maxDepth {
		return false
	}

	d.active = true
	d.iterations++
	d.iterationVisit = 0
	d.stack = d.stack[:0]
	d.onPath = map[m.Cell]bool{d.start: true}
	d.cameFrom = make(map[m.Cell]m.Cell)

	return true
}

func (d *deepening) endIteration() {
	d.active = false

	if d.plateau && d.depth > 0 && d.iterationVisit == d.previousVisit {
		d.done = true
		return
	}

	d.previousVisit = d.iterationVisit
	d.depth++
}

// descend advances the stack to the next cell to visit, backtracking over
// exhausted frames. It reports false when the current iteration is over.
func (d *deepening) descend() (m.Cell, bool) {
	for len(d.stack) > 0 {
		top := &d.stack[len(d.stack)-1]

		if top.remaining == 0 || top.next >= len(d.moves) {
			d.backtrack()
			continue
		}

		neighbor := top.cell.Add(d.moves[top.next])
		top.next++

		if !d.grid.IsPassable(neighbor) || d.onPath[neighbor] {
			continue
		}

		d.onPath[neighbor] = true
		d.cameFrom[neighbor] = top.cell
		d.stack = append(d.stack, dlsFrame{cell: neighbor, remaining: top.remaining - 1})

		return neighbor, true
	}

	return m.Cell{}, false
}

func (d *deepening) backtrack() {
	last := len(d.stack) - 1
	frame := d.stack[last]
	d.stack = d.stack[:last]

	if frame.cell != d.start {
		delete(d.onPath, frame.cell)
		delete(d.cameFrom, frame.cell)
	}
}

func (d *deepening) visit(cell m.Cell) (m.Cell, bool, error) {
	d.visited = append(d.visited, cell)
	d.iterationVisit++

	if cell != d.goal {
		return cell, true, nil
	}

	path, err := ReconstructPath(d.cameFrom, d.start, cell)
	if err != nil {
		return cell, false, err
	}

	d.done, d.found, d.path = true, true, path

	return cell, true, nil
}

func (d *deepening) finished() bool { return d.done }

func (d *deepening) result() m.Result {
	return buildResult(d.strategy, d.found, d.path, d.visited, d.iterations)
}

func (d *deepening) pending() []m.Cell {
	cells := make([]m.Cell, len(d.stack))
	for i, frame := range d.stack {
		cells[i] = frame.cell
	}

	return cells
}

func (d *deepening) limit() int { return d.depth }
