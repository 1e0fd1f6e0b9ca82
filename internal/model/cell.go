// Package model defines the data structures shared by the search engine,
// the adapters and the user interfaces.
package model

import (
	"errors"
	"fmt"
	"strings"
)

// Cell is a (row, column) coordinate in a grid.
type Cell struct {
	Row int `yaml:"row"`
	Col int `yaml:"col"`
}

// Add returns the cell reached by applying move to c.
func (c Cell) Add(move Move) Cell {
	return Cell{Row: c.Row + move.DRow, Col: c.Col + move.DCol}
}

// String renders the cell as "(row,col)".
func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Move is a unit offset between two adjacent cells.
type Move struct {
	DRow int
	DCol int
}

// Available moves. Diagonals are not supported.
var (
	Right = Move{DRow: 0, DCol: 1}
	Left  = Move{DRow: 0, DCol: -1}
	Down  = Move{DRow: 1, DCol: 0}
	Up    = Move{DRow: -1, DCol: 0}
)

// CanonicalMoves is the default neighbor order: right, left, down, up.
func CanonicalMoves() []Move {
	return []Move{Right, Left, Down, Up}
}

// ReversedMoves returns a reversed copy of moves.
func ReversedMoves(moves []Move) []Move {
	reversed := make([]Move, len(moves))
	for i, move := range moves {
		reversed[len(moves)-1-i] = move
	}

	return reversed
}

// String returns the compass name of the move.
func (mv Move) String() string {
	switch mv {
	case Right:
		return "right"
	case Left:
		return "left"
	case Down:
		return "down"
	case Up:
		return "up"
	}

	return fmt.Sprintf("(%+d,%+d)", mv.DRow, mv.DCol)
}

var moveNames = map[string]Move{
	"right": Right, "r": Right,
	"left": Left, "l": Left,
	"down": Down, "d": Down,
	"up": Up, "u": Up,
}

// ParseMoves converts move names such as "right" or "u" into a move order.
// Each move may appear at most once.
func ParseMoves(names []string) ([]Move, error) {
	moves := make([]Move, 0, len(names))
	seen := make(map[Move]bool, len(names))

	for _, name := range names {
		move, ok := moveNames[strings.ToLower(strings.TrimSpace(name))]
		if !ok {
			return nil, fmt.Errorf("unknown move %q (want right, left, down or up)", name)
		}

		if seen[move] {
			return nil, fmt.Errorf("move %q listed twice", name)
		}

		seen[move] = true
		moves = append(moves, move)
	}

	if len(moves) == 0 {
		return nil, errors.New("empty move order")
	}

	return moves, nil
}

// Path is an ordered sequence of cells from start to goal inclusive.
type Path []Cell

// Length is the number of edges in the path, or -1 for an empty path.
func (p Path) Length() int {
	return len(p) - 1
}

// Adjacent reports whether a and b differ by exactly one unit move.
func Adjacent(a, b Cell) bool {
	dr := a.Row - b.Row
	dc := a.Col - b.Col

	return (dr == 0 && (dc == 1 || dc == -1)) || (dc == 0 && (dr == 1 || dr == -1))
}
