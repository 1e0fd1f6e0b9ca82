package controller

import (
	"bytes"
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	m "gridpath.dev/pkg/gridpath/internal/model"
)

const (
	notFoundLabel = "no path"
	shortIDLength = 8
)

// SimpleUI implements UI using cobra Command's output writer.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// DisplayResult prints the outcome of one search and the grid with the path.
func (s *SimpleUI) DisplayResult(ctx context.Context, scenario m.Scenario, result m.Result) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.printf("%s", resultSummary(scenario, result))
	s.printf("\n%s", renderGrid(gridMarks(scenario, resultOverlay(result)), plainCell))
	s.printf("%s\n", gridLegend)

	return nil
}

func resultSummary(scenario m.Scenario, result m.Result) string {
	var b bytes.Buffer

	fmt.Fprintf(&b, "Scenario:   %s (%dx%d) %v -> %v\n",
		scenario.Name, scenario.Grid.Rows(), scenario.Grid.Cols(), scenario.Start, scenario.Goal)
	fmt.Fprintf(&b, "Strategy:   %s (%s)\n", result.Strategy.Title(), result.Strategy)

	if result.Found {
		fmt.Fprintf(&b, "Result:     path found, length %d\n", result.Length)
		fmt.Fprintf(&b, "Path:       %s\n", formatCells(result.Path))
	} else {
		fmt.Fprintf(&b, "Result:     %s\n", notFoundLabel)
	}

	fmt.Fprintf(&b, "Visited:    %d\n", len(result.Visited))
	fmt.Fprintf(&b, "Order:      %s\n", formatCells(result.Visited))

	if result.Strategy == m.IDS {
		fmt.Fprintf(&b, "Iterations: %d\n", result.Iterations)
	}

	fmt.Fprintf(&b, "Elapsed:    %s\n", result.Elapsed.Round(time.Microsecond))

	return b.String()
}

func resultOverlay(result m.Result) gridOverlay {
	return gridOverlay{visited: result.Visited, path: result.Path}
}

// DisplayComparison prints one table row per strategy.
func (s *SimpleUI) DisplayComparison(ctx context.Context, scenario m.Scenario, results []m.Result) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.printf("Scenario: %s (%dx%d) %v -> %v\n\n",
		scenario.Name, scenario.Grid.Rows(), scenario.Grid.Cols(), scenario.Start, scenario.Goal)
	s.printf("%s", renderComparisonTable(results))

	return nil
}

func renderComparisonTable(results []m.Result) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Strategy", "Found", "Length", "Visited", "Iterations", "Elapsed"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_CENTER,
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_RIGHT,
	})

	for _, result := range results {
		table.Append([]string{
			result.Strategy.String(),
			strconv.FormatBool(result.Found),
			formatLength(result.Found, result.Length),
			strconv.Itoa(len(result.Visited)),
			strconv.Itoa(result.Iterations),
			result.Elapsed.Round(time.Microsecond).String(),
		})
	}

	table.Render()

	return tableBuffer.String()
}

func formatLength(found bool, length int) string {
	if !found {
		return "-"
	}

	return strconv.Itoa(length)
}

// DisplayReports lists saved reports.
func (s *SimpleUI) DisplayReports(ctx context.Context, dir m.FilePath, reports []m.Report) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if len(reports) == 0 {
		s.printf("No reports found in %s\n", dir)
		return nil
	}

	s.printf("%s", renderReportsTable(reports))

	return nil
}

func renderReportsTable(reports []m.Report) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"ID", "Created", "Scenario", "Strategy", "Found", "Length", "Visited"})
	table.SetBorder(false)
	table.SetCenterSeparator("")

	for _, report := range reports {
		table.Append([]string{
			shortID(report.ID),
			report.CreatedAt.Local().Format(time.DateTime),
			report.Scenario,
			report.Strategy.String(),
			strconv.FormatBool(report.Found),
			formatLength(report.Found, report.Length),
			strconv.Itoa(len(report.Visited)),
		})
	}

	table.SetFooter([]string{fmt.Sprintf("Total %d", len(reports)), "", "", "", "", "", ""})
	table.Render()

	return tableBuffer.String()
}

func shortID(id string) string {
	if len(id) <= shortIDLength {
		return id
	}

	return id[:shortIDLength]
}

// DisplayStrategies prints the strategy table.
func (s *SimpleUI) DisplayStrategies(ctx context.Context, rows []StrategyRow) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Name", "Strategy", "Frontier", "Heuristic", "Move order"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)

	for _, row := range rows {
		table.Append([]string{
			row.Strategy.String(),
			row.Strategy.Title(),
			row.Frontier,
			row.Heuristic,
			formatMoves(row.Moves),
		})
	}

	table.Render()
	s.printf("%s", tableBuffer.String())

	return nil
}

// DisplaySavedReports lists the report files that were written.
func (s *SimpleUI) DisplaySavedReports(ctx context.Context, paths []m.FilePath) {
	if err := ctx.Err(); err != nil {
		return
	}

	for _, path := range paths {
		s.printf("Saved report %s\n", path)
	}
}

// Step prints one line per expansion, then the final result.
func (s *SimpleUI) Step(ctx context.Context, stepper Stepper) error {
	printed := 0

	for !stepper.Done() {
		snapshot, err := stepper.Step(ctx)
		if err != nil {
			return err
		}

		// The call that finds the frontier exhausted expands nothing.
		if snapshot.Step > printed {
			printed = snapshot.Step
			s.printf("%s\n", describeStep(stepper.Strategy(), snapshot))
		}
	}

	return s.DisplayResult(ctx, stepper.Scenario(), stepper.Result())
}

func describeStep(strategy m.Strategy, snapshot m.StepSnapshot) string {
	line := fmt.Sprintf("step %d: visit %v, frontier %d, visited %d",
		snapshot.Step, snapshot.Current, len(snapshot.Frontier), len(snapshot.Visited))

	if strategy == m.IDS {
		line += fmt.Sprintf(", depth limit %d", snapshot.Limit)
	}

	if snapshot.Done && snapshot.Found {
		line += ", goal reached"
	}

	return line
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}
