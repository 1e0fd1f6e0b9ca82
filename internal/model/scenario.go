package model

import "fmt"

// Scenario is a validated search problem: a grid plus start and goal cells.
type Scenario struct {
	Name  string
	Grid  *Grid
	Start Cell
	Goal  Cell
}

// NewScenario checks that start and goal are passable cells of grid.
func NewScenario(name string, grid *Grid, start, goal Cell) (Scenario, error) {
	if grid == nil {
		return Scenario{}, fmt.Errorf("%w: scenario %q has no grid", ErrInvalidGrid, name)
	}

	if err := checkEndpoint(grid, "start", start); err != nil {
		return Scenario{}, err
	}

	if err := checkEndpoint(grid, "goal", goal); err != nil {
		return Scenario{}, err
	}

	return Scenario{Name: name, Grid: grid, Start: start, Goal: goal}, nil
}

func checkEndpoint(grid *Grid, label string, cell Cell) error {
	if !grid.InBounds(cell) {
		return fmt.Errorf("%w: %s %v is outside the %dx%d grid", ErrInvalidGrid, label, cell, grid.Rows(), grid.Cols())
	}

	if !grid.IsPassable(cell) {
		return fmt.Errorf("%w: %s %v is an obstacle", ErrInvalidGrid, label, cell)
	}

	return nil
}

// FilePath represents a file system path.
type FilePath string
