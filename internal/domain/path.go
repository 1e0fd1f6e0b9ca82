package domain

import (
	"fmt"

	m "gridpath.dev/pkg/gridpath/internal/model"
)

// ReconstructPath walks cameFrom backwards from goal until it reaches a cell
// with no predecessor, which must be start. The returned path runs from start
// to goal and never aliases cameFrom.
func ReconstructPath(cameFrom map[m.Cell]m.Cell, start m.Cell, goal m.Cell) (m.Path, error) {
	path := m.Path{goal}
	current := goal

	for {
		previous, exists := cameFrom[current]
		if !exists {
			break
		}

		if len(path) > len(cameFrom) {
			return nil, fmt.Errorf("%w: cycle through %v", m.ErrBrokenChain, current)
		}

		path = append(path, previous)
		current = previous
	}

	if current != start {
		return nil, fmt.Errorf("%w: %v does not lead back to start %v", m.ErrBrokenChain, goal, start)
	}

	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
