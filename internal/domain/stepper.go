package domain

import (
	"context"
	"time"

	m "gridpath.dev/pkg/gridpath/internal/model"
)

// Stepper drives a search one expansion at a time. Driving a Stepper to
// completion produces the same visitation log and path as Search.
type Stepper struct {
	scenario m.Scenario
	strategy m.Strategy
	searcher searcher

	stepCount int
	current   m.Cell
	started   time.Time
	elapsed   time.Duration
}

// NewStepper prepares a step-by-step search.
func NewStepper(scenario m.Scenario, strategy m.Strategy, options ...Option) (*Stepper, error) {
	s, err := newSearcher(scenario, strategy, options...)
	if err != nil {
		return nil, err
	}

	return &Stepper{scenario: scenario, strategy: strategy, searcher: s}, nil
}

// Scenario returns the scenario being searched.
func (s *Stepper) Scenario() m.Scenario { return s.scenario }

// Strategy returns the strategy being stepped.
func (s *Stepper) Strategy() m.Strategy { return s.strategy }

// Step expands one cell and returns a snapshot. Once the search is done it
// keeps returning the terminal snapshot.
func (s *Stepper) Step(ctx context.Context) (m.StepSnapshot, error) {
	if s.searcher.finished() {
		return s.snapshot(), nil
	}

	if s.stepCount == 0 {
		s.started = time.Now()
	}

	current, ok, err := s.searcher.next(ctx)
	if err != nil {
		return m.StepSnapshot{Step: s.stepCount, Current: s.current}, err
	}

	if ok {
		s.stepCount++
		s.current = current
	}

	if s.searcher.finished() {
		s.elapsed = time.Since(s.started)
	}

	return s.snapshot(), nil
}

// Done reports whether the search has finished.
func (s *Stepper) Done() bool { return s.searcher.finished() }

// Result returns the search result so far. It is final once Done is true.
func (s *Stepper) Result() m.Result {
	result := s.searcher.result()
	result.Elapsed = s.elapsed

	return result
}

func (s *Stepper) snapshot() m.StepSnapshot {
	result := s.searcher.result()

	return m.StepSnapshot{
		Step:     s.stepCount,
		Current:  s.current,
		Frontier: s.searcher.pending(),
		Visited:  result.Visited,
		Limit:    s.searcher.limit(),
		Done:     s.searcher.finished(),
		Found:    result.Found,
		Path:     result.Path,
	}
}
