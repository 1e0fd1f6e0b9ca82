package domain

import (
	"container/heap"
	"fmt"
	"sort"

	m "gridpath.dev/pkg/gridpath/internal/model"
)

// Discipline is the ordering policy of a frontier.
type Discipline int

// Frontier disciplines, one per strategy family.
const (
	FIFO Discipline = iota
	LIFO
	CostPriority
	HeuristicPriority
	DepthBounded
)

func (d Discipline) String() string {
	switch d {
	case FIFO:
		return "fifo queue"
	case LIFO:
		return "lifo stack"
	case CostPriority:
		return "min-priority g"
	case HeuristicPriority:
		return "min-priority g+h"
	case DepthBounded:
		return "depth-bounded stack"
	}

	return fmt.Sprintf("discipline(%d)", int(d))
}

// costAware reports whether the discipline relaxes cumulative costs instead
// of tracking a seen set.
func (d Discipline) costAware() bool {
	return d == CostPriority || d == HeuristicPriority
}

// Frontier holds cells pending expansion.
//
// Pop panics when the frontier is empty; callers check Empty first.
type Frontier interface {
	Push(cell m.Cell, key int)
	Pop() m.Cell
	Empty() bool
	Len() int
	// Cells lists pending cells in pop order.
	Cells() []m.Cell
}

// NewFrontier returns an empty frontier for a queue-based discipline.
// DepthBounded searches keep their own explicit stack and have no Frontier.
func NewFrontier(discipline Discipline) (Frontier, error) {
	switch discipline {
	case FIFO:
		return &fifoFrontier{}, nil
	case LIFO:
		return &lifoFrontier{}, nil
	case CostPriority, HeuristicPriority:
		return newPriorityFrontier(), nil
	case DepthBounded:
	}

	return nil, fmt.Errorf("no queue frontier for %s", discipline)
}

type fifoFrontier struct {
	cells []m.Cell
	head  int
}

func (f *fifoFrontier) Push(cell m.Cell, _ int) {
	f.cells = append(f.cells, cell)
}

func (f *fifoFrontier) Pop() m.Cell {
	cell := f.cells[f.head]
	f.head++

	// Reclaim the consumed prefix once it dominates the backing array.
	if f.head > 64 && f.head*2 > len(f.cells) {
		f.cells = append(f.cells[:0], f.cells[f.head:]...)
		f.head = 0
	}

	return cell
}

func (f *fifoFrontier) Empty() bool { return f.Len() == 0 }

func (f *fifoFrontier) Len() int { return len(f.cells) - f.head }

func (f *fifoFrontier) Cells() []m.Cell {
	return append([]m.Cell(nil), f.cells[f.head:]...)
}

type lifoFrontier struct {
	cells []m.Cell
}

func (f *lifoFrontier) Push(cell m.Cell, _ int) {
	f.cells = append(f.cells, cell)
}

func (f *lifoFrontier) Pop() m.Cell {
	last := len(f.cells) - 1
	cell := f.cells[last]
	f.cells = f.cells[:last]

	return cell
}

func (f *lifoFrontier) Empty() bool { return len(f.cells) == 0 }

func (f *lifoFrontier) Len() int { return len(f.cells) }

func (f *lifoFrontier) Cells() []m.Cell {
	cells := make([]m.Cell, len(f.cells))
	for i, cell := range f.cells {
		cells[len(f.cells)-1-i] = cell
	}

	return cells
}

// priorityFrontier orders cells by key, breaking ties by insertion order.
type priorityFrontier struct {
	queue    PriorityQueue
	sequence uint64
}

func newPriorityFrontier() *priorityFrontier {
	f := &priorityFrontier{queue: make(PriorityQueue, 0)}
	heap.Init(&f.queue)

	return f
}

func (f *priorityFrontier) Push(cell m.Cell, key int) {
	heap.Push(&f.queue, &PriorityQueueItem{Cell: cell, Key: key, Sequence: f.sequence})
	f.sequence++
}

func (f *priorityFrontier) Pop() m.Cell {
	return heap.Pop(&f.queue).(*PriorityQueueItem).Cell
}

func (f *priorityFrontier) Empty() bool { return f.queue.Len() == 0 }

func (f *priorityFrontier) Len() int { return f.queue.Len() }

func (f *priorityFrontier) Cells() []m.Cell {
	items := make(PriorityQueue, len(f.queue))
	copy(items, f.queue)
	sort.Slice(items, func(i, j int) bool { return items.Less(i, j) })

	cells := make([]m.Cell, len(items))
	for i, item := range items {
		cells[i] = item.Cell
	}

	return cells
}
