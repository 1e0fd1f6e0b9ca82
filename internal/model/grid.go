package model

import (
	"fmt"
	"strings"
)

// Cell values accepted by NewGrid.
const (
	Free     = 0
	Obstacle = 1
)

// Grid is an immutable rectangular occupancy map stored in row-major order.
// A Grid is safe for concurrent readers.
type Grid struct {
	rows    int
	cols    int
	blocked []bool
}

// NewGrid validates a 0/1 matrix and copies it into a Grid.
func NewGrid(matrix [][]int) (*Grid, error) {
	if len(matrix) == 0 || len(matrix[0]) == 0 {
		return nil, fmt.Errorf("%w: grid has no cells", ErrInvalidGrid)
	}

	rows, cols := len(matrix), len(matrix[0])
	grid := &Grid{rows: rows, cols: cols, blocked: make([]bool, rows*cols)}
	free := 0

	for r, row := range matrix {
		if len(row) != cols {
			return nil, fmt.Errorf("%w: row %d has %d columns, expected %d", ErrInvalidGrid, r, len(row), cols)
		}

		for c, value := range row {
			switch value {
			case Free:
				free++
			case Obstacle:
				grid.blocked[r*cols+c] = true
			default:
				return nil, fmt.Errorf("%w: cell (%d,%d) has value %d, expected 0 or 1", ErrInvalidGrid, r, c, value)
			}
		}
	}

	if free == 0 {
		return nil, fmt.Errorf("%w: grid has no free cell", ErrInvalidGrid)
	}

	return grid, nil
}

// ParseGrid builds a Grid from text rows. '0' and '.' are free, '1' and '#'
// are obstacles; spaces are ignored.
func ParseGrid(lines []string) (*Grid, error) {
	matrix := make([][]int, 0, len(lines))

	for r, line := range lines {
		row := make([]int, 0, len(line))

		for _, ch := range line {
			switch ch {
			case '0', '.':
				row = append(row, Free)
			case '1', '#':
				row = append(row, Obstacle)
			case ' ', '\t':
			default:
				return nil, fmt.Errorf("%w: row %d contains unexpected character %q", ErrInvalidGrid, r, ch)
			}
		}

		matrix = append(matrix, row)
	}

	return NewGrid(matrix)
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// Size returns rows*cols.
func (g *Grid) Size() int { return g.rows * g.cols }

// InBounds reports whether cell lies inside the grid.
func (g *Grid) InBounds(cell Cell) bool {
	return cell.Row >= 0 && cell.Row < g.rows && cell.Col >= 0 && cell.Col < g.cols
}

// IsPassable reports whether cell is inside the grid and free.
func (g *Grid) IsPassable(cell Cell) bool {
	return g.InBounds(cell) && !g.blocked[cell.Row*g.cols+cell.Col]
}

// Neighbors returns the passable neighbors of cell in the given move order.
func (g *Grid) Neighbors(cell Cell, order []Move) []Cell {
	neighbors := make([]Cell, 0, len(order))

	for _, move := range order {
		if next := cell.Add(move); g.IsPassable(next) {
			neighbors = append(neighbors, next)
		}
	}

	return neighbors
}

// String renders the grid with '.' for free cells and '#' for obstacles.
func (g *Grid) String() string {
	var b strings.Builder

	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			if g.blocked[r*g.cols+c] {
				b.WriteByte('#')
			} else {
				b.WriteByte('.')
			}
		}

		b.WriteByte('\n')
	}

	return b.String()
}
