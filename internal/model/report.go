package model

import "time"

// Result is the outcome of one strategy invocation.
type Result struct {
	Strategy Strategy
	Found    bool
	// Path is nil when Found is false.
	Path Path
	// Length is the number of edges in Path, or -1 when no path exists.
	Length int
	// Visited lists cells in expansion order. IDS may list a cell many times.
	Visited []Cell
	// Iterations is the number of depth limits tried by IDS and 1 otherwise.
	Iterations int
	Elapsed    time.Duration
}

// StepSnapshot exposes the state of a search after one expansion.
type StepSnapshot struct {
	Step     int
	Current  Cell
	Frontier []Cell
	Visited  []Cell
	// Limit is the active depth limit for IDS.
	Limit int
	Done  bool
	Found bool
	Path  Path
}

// Report is the persisted form of a Result.
type Report struct {
	ID            string    `yaml:"id"`
	CreatedAt     time.Time `yaml:"created_at"`
	Scenario      string    `yaml:"scenario"`
	Strategy      Strategy  `yaml:"strategy"`
	Found         bool      `yaml:"found"`
	Length        int       `yaml:"length"`
	Iterations    int       `yaml:"iterations"`
	ElapsedMicros int64     `yaml:"elapsed_us"`
	Path          []Cell    `yaml:"path,omitempty"`
	Visited       []Cell    `yaml:"visited"`
}

// NewReport converts a Result into a Report for the named scenario.
func NewReport(id string, createdAt time.Time, scenario string, result Result) Report {
	return Report{
		ID:            id,
		CreatedAt:     createdAt,
		Scenario:      scenario,
		Strategy:      result.Strategy,
		Found:         result.Found,
		Length:        result.Length,
		Iterations:    result.Iterations,
		ElapsedMicros: result.Elapsed.Microseconds(),
		Path:          result.Path,
		Visited:       result.Visited,
	}
}
