package domain

import (
	"context"
	"log/slog"
	"time"

	m "gridpath.dev/pkg/gridpath/internal/model"
)

// Search runs strategy on scenario to completion.
//
// A path that does not exist is not an error: the Result has Found set to
// false and keeps the full visitation log. Errors are reserved for invalid
// input and context cancellation.
func Search(ctx context.Context, scenario m.Scenario, strategy m.Strategy, options ...Option) (m.Result, error) {
	s, err := newSearcher(scenario, strategy, options...)
	if err != nil {
		slog.Error("Failed to configure search", "strategy", strategy, "scenario", scenario.Name, "error", err)
		return m.Result{}, err
	}

	slog.Debug("Search started", "strategy", strategy, "scenario", scenario.Name, "start", scenario.Start, "goal", scenario.Goal)
	started := time.Now()

	for !s.finished() {
		if _, _, err := s.next(ctx); err != nil {
			slog.Warn("Search interrupted", "strategy", strategy, "scenario", scenario.Name, "error", err)
			return m.Result{}, err
		}
	}

	result := s.result()
	result.Elapsed = time.Since(started)

	slog.Debug("Search finished",
		"strategy", strategy,
		"scenario", scenario.Name,
		"found", result.Found,
		"length", result.Length,
		"visited", len(result.Visited),
		"iterations", result.Iterations,
		"elapsed", result.Elapsed,
	)

	return result, nil
}
