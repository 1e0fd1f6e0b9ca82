package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCell_Add(t *testing.T) {
	origin := Cell{Row: 3, Col: 3}

	assert.Equal(t, Cell{3, 4}, origin.Add(Right))
	assert.Equal(t, Cell{3, 2}, origin.Add(Left))
	assert.Equal(t, Cell{4, 3}, origin.Add(Down))
	assert.Equal(t, Cell{2, 3}, origin.Add(Up))
	assert.Equal(t, "(3,3)", origin.String())
}

func TestMoves(t *testing.T) {
	assert.Equal(t, []Move{Right, Left, Down, Up}, CanonicalMoves())
	assert.Equal(t, []Move{Up, Down, Left, Right}, ReversedMoves(CanonicalMoves()))
	assert.Equal(t, "right", Right.String())
	assert.Equal(t, "up", Up.String())
	assert.Equal(t, "(+1,+1)", Move{DRow: 1, DCol: 1}.String())
}

func TestAdjacent(t *testing.T) {
	assert.True(t, Adjacent(Cell{0, 0}, Cell{0, 1}))
	assert.True(t, Adjacent(Cell{1, 0}, Cell{0, 0}))
	assert.False(t, Adjacent(Cell{0, 0}, Cell{1, 1}))
	assert.False(t, Adjacent(Cell{0, 0}, Cell{0, 0}))
	assert.False(t, Adjacent(Cell{0, 0}, Cell{0, 2}))
}

func TestPath_Length(t *testing.T) {
	assert.Equal(t, -1, Path(nil).Length())
	assert.Equal(t, 0, Path{{0, 0}}.Length())
	assert.Equal(t, 2, Path{{0, 0}, {0, 1}, {0, 2}}.Length())
}

func TestParseMoves(t *testing.T) {
	moves, err := ParseMoves([]string{"down", " U ", "right", "l"})
	require.NoError(t, err)
	assert.Equal(t, []Move{Down, Up, Right, Left}, moves)

	_, err = ParseMoves([]string{"north"})
	assert.ErrorContains(t, err, "unknown move")

	_, err = ParseMoves([]string{"up", "u"})
	assert.ErrorContains(t, err, "listed twice")

	_, err = ParseMoves(nil)
	assert.Error(t, err)
}
