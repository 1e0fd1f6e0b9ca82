package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
	m "gridpath.dev/pkg/gridpath/internal/model"
)

func exampleMatrix() [][]int {
	return [][]int{
		{0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
		{0, 1, 1, 1, 0, 1, 1, 1, 1, 0},
		{0, 1, 0, 0, 0, 1, 0, 0, 1, 0},
		{0, 1, 0, 1, 1, 1, 0, 1, 1, 0},
		{0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
		{0, 1, 1, 1, 1, 1, 1, 1, 1, 0},
		{0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	}
}

func cell(row, col int) m.Cell { return m.Cell{Row: row, Col: col} }

func mustScenario(t *testing.T, matrix [][]int, start, goal m.Cell) m.Scenario {
	t.Helper()

	grid, err := m.NewGrid(matrix)
	require.NoError(t, err)

	scenario, err := m.NewScenario(t.Name(), grid, start, goal)
	require.NoError(t, err)

	return scenario
}

func exampleScenario(t *testing.T) m.Scenario {
	t.Helper()

	return mustScenario(t, exampleMatrix(), cell(0, 0), cell(6, 9))
}

// shortestDistance is an independent BFS used as an oracle.
func shortestDistance(grid *m.Grid, start, goal m.Cell) int {
	distance := map[m.Cell]int{start: 0}
	queue := []m.Cell{start}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		if current == goal {
			return distance[current]
		}

		for _, next := range grid.Neighbors(current, m.CanonicalMoves()) {
			if _, ok := distance[next]; !ok {
				distance[next] = distance[current] + 1
				queue = append(queue, next)
			}
		}
	}

	return -1
}

// reachable returns every cell connected to start.
func reachable(grid *m.Grid, start m.Cell) map[m.Cell]bool {
	seen := map[m.Cell]bool{start: true}
	stack := []m.Cell{start}

	for len(stack) > 0 {
		current := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		for _, next := range grid.Neighbors(current, m.CanonicalMoves()) {
			if !seen[next] {
				seen[next] = true
				stack = append(stack, next)
			}
		}
	}

	return seen
}

func requireValidPath(t *testing.T, scenario m.Scenario, path m.Path) {
	t.Helper()

	require.NotEmpty(t, path)
	require.Equal(t, scenario.Start, path[0])
	require.Equal(t, scenario.Goal, path[len(path)-1])

	for i, c := range path {
		require.True(t, scenario.Grid.IsPassable(c), "cell %v is not passable", c)

		if i > 0 {
			require.True(t, m.Adjacent(path[i-1], c), "cells %v and %v are not adjacent", path[i-1], c)
		}
	}
}
