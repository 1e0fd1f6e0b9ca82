// Package controller provides output adapters for displaying search results.
package controller

import (
	"context"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	m "gridpath.dev/pkg/gridpath/internal/model"
)

// Stepper is a search that can be advanced one expansion at a time.
type Stepper interface {
	Scenario() m.Scenario
	Strategy() m.Strategy
	Step(ctx context.Context) (m.StepSnapshot, error)
	Done() bool
	Result() m.Result
}

// StrategyRow describes one strategy for the strategies table.
type StrategyRow struct {
	Strategy  m.Strategy
	Frontier  string
	Heuristic string
	Moves     []m.Move
}

// UI defines how search results are presented.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	DisplayResult(ctx context.Context, scenario m.Scenario, result m.Result) error
	DisplayComparison(ctx context.Context, scenario m.Scenario, results []m.Result) error
	DisplayReports(ctx context.Context, dir m.FilePath, reports []m.Report) error
	DisplayStrategies(ctx context.Context, rows []StrategyRow) error
	DisplaySavedReports(ctx context.Context, paths []m.FilePath)
	// Step drives stepper until it finishes or the user quits.
	Step(ctx context.Context, stepper Stepper) error
}

// NewUI returns the interactive TUI when attached to a terminal and the
// plain SimpleUI otherwise.
func NewUI(cmd *cobra.Command, isTTY bool) UI {
	if isTTY {
		return NewTUI(cmd)
	}

	return NewSimpleUI(cmd)
}

// IsTTY reports whether f is an interactive terminal.
func IsTTY(f *os.File) bool {
	if f == nil {
		return false
	}

	return term.IsTerminal(int(f.Fd()))
}
