package controller

import (
	"strings"

	m "gridpath.dev/pkg/gridpath/internal/model"
)

type cellMark int

const (
	markFree cellMark = iota
	markObstacle
	markVisited
	markFrontier
	markPath
	markCurrent
	markStart
	markGoal
)

var plainSymbols = map[cellMark]string{
	markFree:     ".",
	markObstacle: "#",
	markVisited:  "o",
	markFrontier: "+",
	markPath:     "*",
	markCurrent:  "@",
	markStart:    "S",
	markGoal:     "G",
}

const gridLegend = "S start  G goal  * path  @ current  + frontier  o visited  # obstacle"

// gridOverlay lists the search state drawn on top of the grid.
type gridOverlay struct {
	visited  []m.Cell
	frontier []m.Cell
	path     []m.Cell
	current  *m.Cell
}

// gridMarks classifies every cell. Later layers win: visited, frontier,
// path, current, then the endpoints.
func gridMarks(scenario m.Scenario, overlay gridOverlay) [][]cellMark {
	grid := scenario.Grid
	marks := make([][]cellMark, grid.Rows())

	for row := range marks {
		marks[row] = make([]cellMark, grid.Cols())

		for col := range marks[row] {
			if !grid.IsPassable(m.Cell{Row: row, Col: col}) {
				marks[row][col] = markObstacle
			}
		}
	}

	paint := func(cells []m.Cell, mark cellMark) {
		for _, c := range cells {
			if grid.InBounds(c) {
				marks[c.Row][c.Col] = mark
			}
		}
	}

	paint(overlay.visited, markVisited)
	paint(overlay.frontier, markFrontier)
	paint(overlay.path, markPath)

	if overlay.current != nil {
		paint([]m.Cell{*overlay.current}, markCurrent)
	}

	paint([]m.Cell{scenario.Start}, markStart)
	paint([]m.Cell{scenario.Goal}, markGoal)

	return marks
}

// renderGrid draws marks one row per line, cells separated by a space.
func renderGrid(marks [][]cellMark, draw func(cellMark) string) string {
	var b strings.Builder

	for _, row := range marks {
		for col, mark := range row {
			if col > 0 {
				b.WriteByte(' ')
			}

			b.WriteString(draw(mark))
		}

		b.WriteByte('\n')
	}

	return b.String()
}

func plainCell(mark cellMark) string {
	return plainSymbols[mark]
}

func formatCells(cells []m.Cell) string {
	parts := make([]string, len(cells))
	for i, c := range cells {
		parts[i] = c.String()
	}

	return strings.Join(parts, " ")
}

func formatMoves(moves []m.Move) string {
	parts := make([]string, len(moves))
	for i, move := range moves {
		parts[i] = move.String()
	}

	return strings.Join(parts, ", ")
}
