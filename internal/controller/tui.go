package controller

import (
	"context"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	m "gridpath.dev/pkg/gridpath/internal/model"
)

// TUI implements UI for interactive terminals. Tables come from SimpleUI;
// grids are colored and stepping runs a Bubble Tea program.
type TUI struct {
	*SimpleUI
	output io.Writer
	input  io.Reader
	theme  *Theme
}

// NewTUI creates a new TUI writing to the command's output.
func NewTUI(cmd *cobra.Command) *TUI {
	return &TUI{
		SimpleUI: NewSimpleUI(cmd),
		output:   cmd.OutOrStdout(),
		input:    cmd.InOrStdin(),
		theme:    DefaultTheme(),
	}
}

// DisplayResult prints the summary followed by a colored grid.
func (p *TUI) DisplayResult(ctx context.Context, scenario m.Scenario, result m.Result) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	grid := renderGrid(gridMarks(scenario, resultOverlay(result)), p.theme.cell)

	_, err := fmt.Fprintf(p.output, "%s\n%s%s\n",
		resultSummary(scenario, result), grid, p.theme.LabelStyle.Render(gridLegend))

	return err
}

// Step runs the interactive step viewer and prints the result on exit.
func (p *TUI) Step(ctx context.Context, stepper Stepper) error {
	program := tea.NewProgram(
		newStepModel(ctx, stepper, p.theme),
		tea.WithContext(ctx),
		tea.WithInput(p.input),
		tea.WithOutput(p.output),
		tea.WithAltScreen(),
	)

	final, err := program.Run()
	if err != nil {
		return err
	}

	if model, ok := final.(stepModel); ok && model.err != nil {
		return model.err
	}

	if !stepper.Done() {
		return nil
	}

	return p.DisplayResult(ctx, stepper.Scenario(), stepper.Result())
}
