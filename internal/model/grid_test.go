package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGrid(t *testing.T) {
	grid, err := NewGrid([][]int{
		{0, 1, 0},
		{0, 0, 1},
	})
	require.NoError(t, err)

	assert.Equal(t, 2, grid.Rows())
	assert.Equal(t, 3, grid.Cols())
	assert.Equal(t, 6, grid.Size())
	assert.Equal(t, ".#.\n..#\n", grid.String())
}

func TestNewGrid_CopiesInput(t *testing.T) {
	matrix := [][]int{{0, 0}, {0, 0}}

	grid, err := NewGrid(matrix)
	require.NoError(t, err)

	matrix[0][1] = Obstacle
	assert.True(t, grid.IsPassable(Cell{Row: 0, Col: 1}))
}

func TestNewGrid_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		matrix [][]int
	}{
		{"nil", nil},
		{"empty row", [][]int{{}}},
		{"ragged", [][]int{{0, 0}, {0}}},
		{"bad value", [][]int{{0, 2}}},
		{"all obstacles", [][]int{{1, 1}, {1, 1}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			grid, err := NewGrid(tt.matrix)
			require.ErrorIs(t, err, ErrInvalidGrid)
			assert.Nil(t, grid)
		})
	}
}

func TestParseGrid(t *testing.T) {
	grid, err := ParseGrid([]string{"..#", "0 1 0"})
	require.NoError(t, err)
	assert.Equal(t, "..#\n.#.\n", grid.String())

	_, err = ParseGrid([]string{"..x"})
	require.ErrorIs(t, err, ErrInvalidGrid)

	_, err = ParseGrid([]string{"...", ".."})
	require.ErrorIs(t, err, ErrInvalidGrid)
}

func TestGrid_IsPassable(t *testing.T) {
	grid, err := NewGrid([][]int{
		{0, 1},
		{0, 0},
	})
	require.NoError(t, err)

	tests := []struct {
		cell Cell
		want bool
	}{
		{Cell{0, 0}, true},
		{Cell{0, 1}, false},
		{Cell{1, 1}, true},
		{Cell{-1, 0}, false},
		{Cell{0, -1}, false},
		{Cell{2, 0}, false},
		{Cell{0, 2}, false},
	}

	for _, tt := range tests {
		t.Run(tt.cell.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, grid.IsPassable(tt.cell))
		})
	}
}

func TestGrid_Neighbors(t *testing.T) {
	grid, err := NewGrid([][]int{
		{0, 0, 0},
		{0, 1, 0},
		{0, 0, 0},
	})
	require.NoError(t, err)

	assert.Equal(t, []Cell{{0, 2}, {0, 0}}, grid.Neighbors(Cell{0, 1}, CanonicalMoves()))
	assert.Equal(t, []Cell{{0, 0}, {0, 2}}, grid.Neighbors(Cell{0, 1}, ReversedMoves(CanonicalMoves())))
	assert.Equal(t, []Cell{{0, 1}, {1, 0}}, grid.Neighbors(Cell{0, 0}, CanonicalMoves()))
}

func TestNewScenario(t *testing.T) {
	grid, err := NewGrid([][]int{
		{0, 0},
		{1, 0},
	})
	require.NoError(t, err)

	scenario, err := NewScenario("tiny", grid, Cell{0, 0}, Cell{1, 1})
	require.NoError(t, err)
	assert.Equal(t, "tiny", scenario.Name)
	assert.Equal(t, Cell{1, 1}, scenario.Goal)

	tests := []struct {
		name        string
		grid        *Grid
		start, goal Cell
		message     string
	}{
		{"no grid", nil, Cell{0, 0}, Cell{0, 0}, "has no grid"},
		{"start outside", grid, Cell{5, 0}, Cell{0, 0}, "start (5,0) is outside"},
		{"goal outside", grid, Cell{0, 0}, Cell{0, -1}, "goal (0,-1) is outside"},
		{"start obstacle", grid, Cell{1, 0}, Cell{0, 0}, "start (1,0) is an obstacle"},
		{"goal obstacle", grid, Cell{0, 0}, Cell{1, 0}, "goal (1,0) is an obstacle"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewScenario("bad", tt.grid, tt.start, tt.goal)
			require.ErrorIs(t, err, ErrInvalidGrid)
			assert.Contains(t, err.Error(), tt.message)
		})
	}
}
