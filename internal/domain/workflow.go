package domain

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"gridpath.dev/pkg/gridpath/internal/adapter"
	"gridpath.dev/pkg/gridpath/internal/controller"
	m "gridpath.dev/pkg/gridpath/internal/model"
)

// RunArgs contains the arguments for a single search.
type RunArgs struct {
	Scenario m.FilePath
	Strategy m.Strategy
	// Timeout bounds the search; zero means no limit.
	Timeout time.Duration
	Save    bool
	Reports m.FilePath
	Options []Option
}

// CompareArgs contains the arguments for running several strategies.
type CompareArgs struct {
	Scenario m.FilePath
	// Strategies to compare. Empty means all of them.
	Strategies []m.Strategy
	// Parallel limits concurrent searches; zero or less means unlimited.
	Parallel int
	Timeout  time.Duration
	Save     bool
	Reports  m.FilePath
	Options  []Option
}

// StepArgs contains the arguments for the interactive step viewer.
type StepArgs struct {
	Scenario m.FilePath
	Strategy m.Strategy
	Options  []Option
}

// ViewArgs contains the arguments for listing saved reports.
type ViewArgs struct {
	Reports m.FilePath
}

// Workflow defines the use cases behind the CLI commands.
type Workflow interface {
	Run(ctx context.Context, args RunArgs) error
	Compare(ctx context.Context, args CompareArgs) error
	Step(ctx context.Context, args StepArgs) error
	View(ctx context.Context, args ViewArgs) error
	Strategies(ctx context.Context) error
}

type workflow struct {
	adapter.ScenarioStore
	adapter.ReportStore
	controller.UI

	now func() time.Time
}

// NewWorkflow creates a new Workflow instance with the provided dependencies.
func NewWorkflow(
	scenarioStore adapter.ScenarioStore,
	reportStore adapter.ReportStore,
	ui controller.UI,
) Workflow {
	return &workflow{
		ScenarioStore: scenarioStore,
		ReportStore:   reportStore,
		UI:            ui,
		now:           time.Now,
	}
}

func (w *workflow) Run(ctx context.Context, args RunArgs) error {
	scenario, err := w.LoadScenario(ctx, args.Scenario)
	if err != nil {
		return fmt.Errorf("load scenario: %w", err)
	}

	result, err := searchWithTimeout(ctx, scenario, args.Strategy, args.Timeout, args.Options...)
	if err != nil {
		return fmt.Errorf("%s search: %w", args.Strategy, err)
	}

	if err := w.DisplayResult(ctx, scenario, result); err != nil {
		return fmt.Errorf("display result: %w", err)
	}

	if !args.Save {
		return nil
	}

	return w.save(ctx, args.Reports, scenario, []m.Result{result})
}

func (w *workflow) Compare(ctx context.Context, args CompareArgs) error {
	scenario, err := w.LoadScenario(ctx, args.Scenario)
	if err != nil {
		return fmt.Errorf("load scenario: %w", err)
	}

	strategies := compareOrder(args.Strategies)
	results := make([]m.Result, len(strategies))

	group, groupCtx := errgroup.WithContext(ctx)
	if args.Parallel > 0 {
		group.SetLimit(args.Parallel)
	}

	slog.Info("Comparing strategies", "scenario", scenario.Name, "strategies", len(strategies), "parallel", args.Parallel)

	for i, strategy := range strategies {
		group.Go(func() error {
			result, err := searchWithTimeout(groupCtx, scenario, strategy, args.Timeout, args.Options...)
			if err != nil {
				return fmt.Errorf("%s search: %w", strategy, err)
			}

			// Each goroutine owns its slot.
			results[i] = result

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return err
	}

	if err := w.DisplayComparison(ctx, scenario, results); err != nil {
		return fmt.Errorf("display comparison: %w", err)
	}

	if !args.Save {
		return nil
	}

	return w.save(ctx, args.Reports, scenario, results)
}

func (w *workflow) Step(ctx context.Context, args StepArgs) error {
	scenario, err := w.LoadScenario(ctx, args.Scenario)
	if err != nil {
		return fmt.Errorf("load scenario: %w", err)
	}

	stepper, err := NewStepper(scenario, args.Strategy, args.Options...)
	if err != nil {
		return fmt.Errorf("prepare %s stepper: %w", args.Strategy, err)
	}

	return w.UI.Step(ctx, stepper)
}

func (w *workflow) View(ctx context.Context, args ViewArgs) error {
	reports, err := w.LoadReports(ctx, args.Reports)
	if err != nil {
		return fmt.Errorf("load reports: %w", err)
	}

	return w.DisplayReports(ctx, args.Reports, reports)
}

func (w *workflow) Strategies(ctx context.Context) error {
	strategies := m.AllStrategies()
	rows := make([]controller.StrategyRow, 0, len(strategies))

	for _, strategy := range strategies {
		profile, err := Describe(strategy)
		if err != nil {
			return err
		}

		rows = append(rows, controller.StrategyRow{
			Strategy:  strategy,
			Frontier:  profile.Discipline.String(),
			Heuristic: profile.HeuristicName(),
			Moves:     profile.Moves,
		})
	}

	return w.DisplayStrategies(ctx, rows)
}

func (w *workflow) save(ctx context.Context, dir m.FilePath, scenario m.Scenario, results []m.Result) error {
	createdAt := w.now()
	reports := make([]m.Report, 0, len(results))

	for _, result := range results {
		reports = append(reports, m.NewReport("", createdAt, scenario.Name, result))
	}

	paths, err := w.SaveReports(ctx, dir, reports)
	if err != nil {
		return fmt.Errorf("save reports: %w", err)
	}

	w.DisplaySavedReports(ctx, paths)

	return nil
}

func searchWithTimeout(ctx context.Context, scenario m.Scenario, strategy m.Strategy, timeout time.Duration, options ...Option) (m.Result, error) {
	if timeout > 0 {
		var cancel context.CancelFunc

		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	return Search(ctx, scenario, strategy, options...)
}

// compareOrder deduplicates strategies and sorts them in declaration order.
// An empty selection means every strategy.
func compareOrder(selected []m.Strategy) []m.Strategy {
	if len(selected) == 0 {
		return m.AllStrategies()
	}

	seen := make(map[m.Strategy]bool, len(selected))
	strategies := make([]m.Strategy, 0, len(selected))

	for _, strategy := range selected {
		if seen[strategy] {
			continue
		}

		seen[strategy] = true
		strategies = append(strategies, strategy)
	}

	sort.Slice(strategies, func(i, j int) bool { return strategies[i] < strategies[j] })

	return strategies
}
