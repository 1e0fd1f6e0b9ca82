package controller

import (
	"bytes"
	"context"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"

	m "gridpath.dev/pkg/gridpath/internal/model"
)

func newTestCmd() (*cobra.Command, *bytes.Buffer) {
	var out bytes.Buffer

	cmd := &cobra.Command{}
	cmd.SetOut(&out)
	cmd.SetErr(&out)

	return cmd, &out
}

// smallScenario is the 2x2 grid
//
//	. .
//	# .
//
// from (0,0) to (1,1).
func smallScenario(t *testing.T) m.Scenario {
	t.Helper()

	grid, err := m.NewGrid([][]int{{0, 0}, {1, 0}})
	require.NoError(t, err)

	scenario, err := m.NewScenario("small", grid, m.Cell{Row: 0, Col: 0}, m.Cell{Row: 1, Col: 1})
	require.NoError(t, err)

	return scenario
}

func smallPath() m.Path {
	return m.Path{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 1, Col: 1}}
}

func smallResult() m.Result {
	return m.Result{
		Strategy:   m.BFS,
		Found:      true,
		Path:       smallPath(),
		Length:     2,
		Visited:    []m.Cell{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 1, Col: 1}},
		Iterations: 1,
	}
}

// fakeStepper replays scripted snapshots.
type fakeStepper struct {
	scenario  m.Scenario
	strategy  m.Strategy
	snapshots []m.StepSnapshot
	result    m.Result
	err       error
	index     int
}

func newFakeStepper(t *testing.T) *fakeStepper {
	t.Helper()

	path := smallPath()

	return &fakeStepper{
		scenario: smallScenario(t),
		strategy: m.BFS,
		snapshots: []m.StepSnapshot{
			{Step: 1, Current: path[0], Frontier: []m.Cell{path[1]}, Visited: path[:1]},
			{Step: 2, Current: path[1], Frontier: []m.Cell{path[2]}, Visited: path[:2]},
			{Step: 3, Current: path[2], Visited: path, Done: true, Found: true, Path: path},
		},
		result: smallResult(),
	}
}

func (f *fakeStepper) Scenario() m.Scenario { return f.scenario }
func (f *fakeStepper) Strategy() m.Strategy { return f.strategy }
func (f *fakeStepper) Done() bool           { return f.err == nil && f.index >= len(f.snapshots) }
func (f *fakeStepper) Result() m.Result     { return f.result }

func (f *fakeStepper) Step(ctx context.Context) (m.StepSnapshot, error) {
	if err := ctx.Err(); err != nil {
		return m.StepSnapshot{}, err
	}

	if f.err != nil {
		return m.StepSnapshot{}, f.err
	}

	if f.index < len(f.snapshots) {
		f.index++
	}

	return f.snapshots[f.index-1], nil
}
