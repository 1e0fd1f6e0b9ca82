// Package adapter contains the file-backed infrastructure used by the
// gridpath workflows: scenario loading and report persistence.
package adapter

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	m "gridpath.dev/pkg/gridpath/internal/model"
)

// ExampleScenarioName names the built-in scenario.
const ExampleScenarioName = "example"

// ScenarioStore loads search scenarios. Implementations validate the grid,
// start and goal before returning, so callers never see an invalid Scenario.
type ScenarioStore interface {
	// LoadScenario reads the scenario at path. An empty path selects the
	// built-in example scenario.
	LoadScenario(ctx context.Context, path m.FilePath) (m.Scenario, error)
}

// LocalScenarioStore reads YAML and HCL scenario files from disk.
type LocalScenarioStore struct{}

// NewLocalScenarioStore constructs a LocalScenarioStore.
func NewLocalScenarioStore() *LocalScenarioStore {
	return &LocalScenarioStore{}
}

// LoadScenario dispatches on the file extension: .yaml/.yml or .hcl.
func (s *LocalScenarioStore) LoadScenario(ctx context.Context, path m.FilePath) (m.Scenario, error) {
	if err := ctx.Err(); err != nil {
		return m.Scenario{}, err
	}

	if strings.TrimSpace(string(path)) == "" {
		return ExampleScenario()
	}

	content, err := os.ReadFile(string(path))
	if err != nil {
		slog.Error("Failed to read scenario file", "path", path, "error", err)
		return m.Scenario{}, fmt.Errorf("read scenario %s: %w", path, err)
	}

	fallbackName := strings.TrimSuffix(filepath.Base(string(path)), filepath.Ext(string(path)))

	var spec scenarioSpec

	switch strings.ToLower(filepath.Ext(string(path))) {
	case ".yaml", ".yml":
		spec, err = decodeYAMLScenario(content)
	case ".hcl":
		spec, err = decodeHCLScenario(string(path), content)
	default:
		return m.Scenario{}, fmt.Errorf("unsupported scenario format %q (want .yaml, .yml or .hcl)", filepath.Ext(string(path)))
	}

	if err != nil {
		slog.Error("Failed to decode scenario", "path", path, "error", err)
		return m.Scenario{}, fmt.Errorf("decode scenario %s: %w", path, err)
	}

	if spec.name == "" {
		spec.name = fallbackName
	}

	scenario, err := spec.build()
	if err != nil {
		return m.Scenario{}, fmt.Errorf("scenario %s: %w", path, err)
	}

	slog.Debug("Loaded scenario", "path", path, "name", scenario.Name, "rows", scenario.Grid.Rows(), "cols", scenario.Grid.Cols())

	return scenario, nil
}

// scenarioSpec is the format-independent result of decoding a scenario file.
type scenarioSpec struct {
	name   string
	rows   []string
	matrix [][]int
	start  []int
	goal   []int
}

func (s scenarioSpec) build() (m.Scenario, error) {
	var (
		grid *m.Grid
		err  error
	)

	if s.rows != nil {
		grid, err = m.ParseGrid(s.rows)
	} else {
		grid, err = m.NewGrid(s.matrix)
	}

	if err != nil {
		return m.Scenario{}, err
	}

	start, err := toCell("start", s.start)
	if err != nil {
		return m.Scenario{}, err
	}

	goal, err := toCell("goal", s.goal)
	if err != nil {
		return m.Scenario{}, err
	}

	return m.NewScenario(s.name, grid, start, goal)
}

func toCell(label string, coords []int) (m.Cell, error) {
	if len(coords) != 2 {
		return m.Cell{}, fmt.Errorf("%w: %s must be [row, col], got %v", m.ErrInvalidGrid, label, coords)
	}

	return m.Cell{Row: coords[0], Col: coords[1]}, nil
}

var exampleRows = []string{
	"0000000000",
	"0111011110",
	"0100010010",
	"0101110110",
	"0000000000",
	"0111111110",
	"0000000000",
}

// ExampleScenario returns the built-in 7x10 scenario from (0,0) to (6,9).
func ExampleScenario() (m.Scenario, error) {
	return scenarioSpec{
		name:  ExampleScenarioName,
		rows:  exampleRows,
		start: []int{0, 0},
		goal:  []int{6, 9},
	}.build()
}
