package domain_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"gridpath.dev/pkg/gridpath/internal/adapter"
	adaptermocks "gridpath.dev/pkg/gridpath/internal/adapter/mocks"
	"gridpath.dev/pkg/gridpath/internal/controller"
	controllermocks "gridpath.dev/pkg/gridpath/internal/controller/mocks"
	"gridpath.dev/pkg/gridpath/internal/domain"
	m "gridpath.dev/pkg/gridpath/internal/model"
)

type workflowMocks struct {
	scenarios *adaptermocks.MockScenarioStore
	reports   *adaptermocks.MockReportStore
	ui        *controllermocks.MockUI
}

func newWorkflowUnderTest(t *testing.T) (domain.Workflow, workflowMocks) {
	t.Helper()

	mocks := workflowMocks{
		scenarios: adaptermocks.NewMockScenarioStore(t),
		reports:   adaptermocks.NewMockReportStore(t),
		ui:        controllermocks.NewMockUI(t),
	}

	return domain.NewWorkflow(mocks.scenarios, mocks.reports, mocks.ui), mocks
}

func exampleScenario(t *testing.T) m.Scenario {
	t.Helper()

	scenario, err := adapter.ExampleScenario()
	require.NoError(t, err)

	return scenario
}

func TestWorkflow_Run(t *testing.T) {
	wf, mocks := newWorkflowUnderTest(t)
	scenario := exampleScenario(t)

	mocks.scenarios.EXPECT().LoadScenario(mock.Anything, m.FilePath("maze.yaml")).Return(scenario, nil).Once()
	mocks.ui.EXPECT().DisplayResult(mock.Anything, scenario, mock.MatchedBy(func(result m.Result) bool {
		return result.Strategy == m.BFS && result.Found && result.Length == 15 && len(result.Visited) == 46
	})).Return(nil).Once()

	err := wf.Run(context.Background(), domain.RunArgs{
		Scenario: "maze.yaml",
		Strategy: m.BFS,
		Timeout:  time.Minute,
	})
	require.NoError(t, err)
}

func TestWorkflow_Run_Save(t *testing.T) {
	wf, mocks := newWorkflowUnderTest(t)
	scenario := exampleScenario(t)
	saved := []m.FilePath{"reports/1.yaml"}

	mocks.scenarios.EXPECT().LoadScenario(mock.Anything, m.FilePath("")).Return(scenario, nil).Once()
	mocks.ui.EXPECT().DisplayResult(mock.Anything, scenario, mock.Anything).Return(nil).Once()
	mocks.reports.EXPECT().SaveReports(mock.Anything, m.FilePath("reports"), mock.MatchedBy(func(reports []m.Report) bool {
		return len(reports) == 1 &&
			reports[0].ID == "" &&
			reports[0].Scenario == adapter.ExampleScenarioName &&
			reports[0].Strategy == m.AStar &&
			reports[0].Length == 15 &&
			!reports[0].CreatedAt.IsZero()
	})).Return(saved, nil).Once()
	mocks.ui.EXPECT().DisplaySavedReports(mock.Anything, saved).Return().Once()

	err := wf.Run(context.Background(), domain.RunArgs{
		Strategy: m.AStar,
		Save:     true,
		Reports:  "reports",
	})
	require.NoError(t, err)
}

func TestWorkflow_Run_Errors(t *testing.T) {
	t.Run("load failure", func(t *testing.T) {
		wf, mocks := newWorkflowUnderTest(t)
		loadErr := errors.New("no such file")

		mocks.scenarios.EXPECT().LoadScenario(mock.Anything, m.FilePath("missing.yaml")).Return(m.Scenario{}, loadErr).Once()

		err := wf.Run(context.Background(), domain.RunArgs{Scenario: "missing.yaml", Strategy: m.BFS})
		require.Error(t, err)
		assert.ErrorIs(t, err, loadErr)
		assert.Contains(t, err.Error(), "load scenario")
	})

	t.Run("cancelled search", func(t *testing.T) {
		wf, mocks := newWorkflowUnderTest(t)

		mocks.scenarios.EXPECT().LoadScenario(mock.Anything, mock.Anything).Return(exampleScenario(t), nil).Once()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		err := wf.Run(ctx, domain.RunArgs{Strategy: m.DFS})
		assert.ErrorIs(t, err, context.Canceled)
	})

	t.Run("save failure", func(t *testing.T) {
		wf, mocks := newWorkflowUnderTest(t)
		saveErr := errors.New("disk full")

		mocks.scenarios.EXPECT().LoadScenario(mock.Anything, mock.Anything).Return(exampleScenario(t), nil).Once()
		mocks.ui.EXPECT().DisplayResult(mock.Anything, mock.Anything, mock.Anything).Return(nil).Once()
		mocks.reports.EXPECT().SaveReports(mock.Anything, mock.Anything, mock.Anything).Return(nil, saveErr).Once()

		err := wf.Run(context.Background(), domain.RunArgs{Strategy: m.UCS, Save: true, Reports: "out"})
		assert.ErrorIs(t, err, saveErr)
	})
}

func TestWorkflow_Compare(t *testing.T) {
	wf, mocks := newWorkflowUnderTest(t)
	scenario := exampleScenario(t)

	mocks.scenarios.EXPECT().LoadScenario(mock.Anything, mock.Anything).Return(scenario, nil).Once()
	mocks.ui.EXPECT().DisplayComparison(mock.Anything, scenario, mock.Anything).
		Run(func(_ context.Context, _ m.Scenario, results []m.Result) {
			require.Len(t, results, 3)
			assert.Equal(t, m.BFS, results[0].Strategy)
			assert.Equal(t, m.AStar, results[1].Strategy)
			assert.Equal(t, m.IDS, results[2].Strategy)

			for _, result := range results {
				assert.True(t, result.Found)
				assert.Equal(t, 15, result.Length)
			}

			assert.Equal(t, 16, results[2].Iterations)
		}).
		Return(nil).Once()

	err := wf.Compare(context.Background(), domain.CompareArgs{
		Strategies: []m.Strategy{m.IDS, m.BFS, m.BFS, m.AStar},
		Parallel:   2,
	})
	require.NoError(t, err)
}

func TestWorkflow_Compare_MatchesSequentialSearch(t *testing.T) {
	wf, mocks := newWorkflowUnderTest(t)
	scenario := exampleScenario(t)

	var expected []m.Result

	for _, strategy := range m.AllStrategies() {
		result, err := domain.Search(context.Background(), scenario, strategy)
		require.NoError(t, err)

		expected = append(expected, result)
	}

	mocks.scenarios.EXPECT().LoadScenario(mock.Anything, mock.Anything).Return(scenario, nil).Once()
	mocks.ui.EXPECT().DisplayComparison(mock.Anything, scenario, mock.Anything).
		Run(func(_ context.Context, _ m.Scenario, results []m.Result) {
			require.Len(t, results, len(expected))

			for i := range expected {
				assert.Equal(t, expected[i].Strategy, results[i].Strategy)
				assert.Equal(t, expected[i].Path, results[i].Path)
				assert.Equal(t, expected[i].Visited, results[i].Visited)
			}
		}).
		Return(nil).Once()
	mocks.reports.EXPECT().SaveReports(mock.Anything, m.FilePath("out"), mock.MatchedBy(func(reports []m.Report) bool {
		return len(reports) == len(expected) && reports[0].CreatedAt.Equal(reports[len(reports)-1].CreatedAt)
	})).Return([]m.FilePath{}, nil).Once()
	mocks.ui.EXPECT().DisplaySavedReports(mock.Anything, []m.FilePath{}).Return().Once()

	err := wf.Compare(context.Background(), domain.CompareArgs{Save: true, Reports: "out"})
	require.NoError(t, err)
}

func TestWorkflow_Compare_Cancelled(t *testing.T) {
	wf, mocks := newWorkflowUnderTest(t)

	mocks.scenarios.EXPECT().LoadScenario(mock.Anything, mock.Anything).Return(exampleScenario(t), nil).Once()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := wf.Compare(ctx, domain.CompareArgs{Parallel: 1})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestWorkflow_Step(t *testing.T) {
	wf, mocks := newWorkflowUnderTest(t)
	scenario := exampleScenario(t)

	mocks.scenarios.EXPECT().LoadScenario(mock.Anything, mock.Anything).Return(scenario, nil).Once()
	mocks.ui.EXPECT().Step(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, stepper controller.Stepper) error {
			assert.Equal(t, m.UCS, stepper.Strategy())
			assert.Equal(t, scenario.Name, stepper.Scenario().Name)

			for !stepper.Done() {
				if _, err := stepper.Step(ctx); err != nil {
					return err
				}
			}

			result := stepper.Result()
			assert.True(t, result.Found)
			assert.Equal(t, 15, result.Length)

			return nil
		}).Once()

	require.NoError(t, wf.Step(context.Background(), domain.StepArgs{Strategy: m.UCS}))
}

func TestWorkflow_Step_InvalidStrategy(t *testing.T) {
	wf, mocks := newWorkflowUnderTest(t)

	mocks.scenarios.EXPECT().LoadScenario(mock.Anything, mock.Anything).Return(exampleScenario(t), nil).Once()

	err := wf.Step(context.Background(), domain.StepArgs{Strategy: m.Strategy(42)})
	assert.ErrorIs(t, err, m.ErrUnknownStrategy)
}

func TestWorkflow_View(t *testing.T) {
	wf, mocks := newWorkflowUnderTest(t)
	reports := []m.Report{{ID: "a", Strategy: m.BFS}}

	mocks.reports.EXPECT().LoadReports(mock.Anything, m.FilePath("reports")).Return(reports, nil).Once()
	mocks.ui.EXPECT().DisplayReports(mock.Anything, m.FilePath("reports"), reports).Return(nil).Once()

	require.NoError(t, wf.View(context.Background(), domain.ViewArgs{Reports: "reports"}))
}

func TestWorkflow_View_LoadError(t *testing.T) {
	wf, mocks := newWorkflowUnderTest(t)
	loadErr := errors.New("permission denied")

	mocks.reports.EXPECT().LoadReports(mock.Anything, mock.Anything).Return(nil, loadErr).Once()

	err := wf.View(context.Background(), domain.ViewArgs{Reports: "reports"})
	assert.ErrorIs(t, err, loadErr)
}

func TestWorkflow_Strategies(t *testing.T) {
	wf, mocks := newWorkflowUnderTest(t)

	mocks.ui.EXPECT().DisplayStrategies(mock.Anything, mock.Anything).
		Run(func(_ context.Context, rows []controller.StrategyRow) {
			require.Len(t, rows, 5)
			assert.Equal(t, m.BFS, rows[0].Strategy)
			assert.Equal(t, "fifo queue", rows[0].Frontier)
			assert.Equal(t, "lifo stack", rows[1].Frontier)
			assert.Equal(t, "manhattan", rows[3].Heuristic)
			assert.Equal(t, "none", rows[2].Heuristic)
			assert.Equal(t, "depth-bounded stack", rows[4].Frontier)
			assert.Equal(t, m.CanonicalMoves(), rows[1].Moves)
		}).
		Return(nil).Once()

	require.NoError(t, wf.Strategies(context.Background()))
}
