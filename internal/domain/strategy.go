package domain

import (
	"fmt"

	m "gridpath.dev/pkg/gridpath/internal/model"
)

// Profile describes how a strategy configures the search engine.
type Profile struct {
	Strategy   m.Strategy
	Discipline Discipline
	// Informed strategies add Manhattan distance to the ordering key.
	Informed bool
	// Moves is the order in which neighbors are explored.
	Moves []m.Move
}

// HeuristicName returns "manhattan" for informed strategies and "none" otherwise.
func (p Profile) HeuristicName() string {
	if p.Informed {
		return "manhattan"
	}

	return "none"
}

// pushOrder is the order neighbors are generated in. A LIFO frontier pops
// in reverse, so DFS pushes the exploration order reversed.
func (p Profile) pushOrder() []m.Move {
	if p.Discipline == LIFO {
		return m.ReversedMoves(p.Moves)
	}

	return append([]m.Move(nil), p.Moves...)
}

func (p Profile) heuristic() Heuristic {
	if p.Informed {
		return Manhattan
	}

	return zeroHeuristic
}

var disciplines = map[m.Strategy]Discipline{
	m.BFS:   FIFO,
	m.DFS:   LIFO,
	m.UCS:   CostPriority,
	m.AStar: HeuristicPriority,
	m.IDS:   DepthBounded,
}

// Describe returns the default engine configuration of a strategy.
func Describe(strategy m.Strategy) (Profile, error) {
	discipline, ok := disciplines[strategy]
	if !ok {
		return Profile{}, fmt.Errorf("%w: %v", m.ErrUnknownStrategy, strategy)
	}

	return Profile{
		Strategy:   strategy,
		Discipline: discipline,
		Informed:   strategy == m.AStar,
		Moves:      m.CanonicalMoves(),
	}, nil
}

// Options defines parameters for a search.
type Options struct {
	// MoveOrder overrides the neighbor exploration order.
	MoveOrder []m.Move
	// PlateauCutoff stops IDS once a deeper limit reaches no new cell.
	PlateauCutoff bool
}

// Option is a function that modifies Options.
type Option func(*Options)

// WithMoveOrder sets the neighbor exploration order.
func WithMoveOrder(moves []m.Move) Option {
	return func(options *Options) { options.MoveOrder = append([]m.Move(nil), moves...) }
}

// WithPlateauCutoff enables or disables the IDS plateau cutoff. Without it,
// a failing IDS tries every depth limit up to rows*cols.
func WithPlateauCutoff(enabled bool) Option {
	return func(options *Options) { options.PlateauCutoff = enabled }
}

func newSearcher(scenario m.Scenario, strategy m.Strategy, options ...Option) (searcher, error) {
	// Re-validate: a zero Scenario or a hand-built one may bypass NewScenario.
	if _, err := m.NewScenario(scenario.Name, scenario.Grid, scenario.Start, scenario.Goal); err != nil {
		return nil, err
	}

	profile, err := Describe(strategy)
	if err != nil {
		return nil, err
	}

	searchOptions := Options{PlateauCutoff: true}
	for _, option := range options {
		option(&searchOptions)
	}

	if len(searchOptions.MoveOrder) > 0 {
		if err := checkMoves(searchOptions.MoveOrder); err != nil {
			return nil, err
		}

		profile.Moves = searchOptions.MoveOrder
	}

	if profile.Discipline == DepthBounded {
		return newDeepening(scenario, profile, searchOptions.PlateauCutoff), nil
	}

	return newEngine(scenario, profile)
}

func checkMoves(moves []m.Move) error {
	seen := make(map[m.Move]bool, len(moves))

	for _, move := range moves {
		if !m.Adjacent(m.Cell{}, m.Cell{}.Add(move)) {
			return fmt.Errorf("move %v is not a unit axis-aligned step", move)
		}

		if seen[move] {
			return fmt.Errorf("move %v listed twice", move)
		}

		seen[move] = true
	}

	return nil
}
