package model

import (
	"fmt"
	"strings"
)

// Strategy names one of the supported search algorithms.
type Strategy int

// Supported strategies.
const (
	BFS Strategy = iota
	DFS
	UCS
	AStar
	IDS
)

var strategyNames = map[Strategy]string{
	BFS:   "bfs",
	DFS:   "dfs",
	UCS:   "ucs",
	AStar: "astar",
	IDS:   "ids",
}

var strategyAliases = map[string]Strategy{
	"bfs":                 BFS,
	"breadth-first":       BFS,
	"dfs":                 DFS,
	"depth-first":         DFS,
	"ucs":                 UCS,
	"uniform-cost":        UCS,
	"dijkstra":            UCS,
	"astar":               AStar,
	"a*":                  AStar,
	"a-star":              AStar,
	"ids":                 IDS,
	"iddfs":               IDS,
	"iterative-deepening": IDS,
}

// AllStrategies lists every strategy in display order.
func AllStrategies() []Strategy {
	return []Strategy{BFS, DFS, UCS, AStar, IDS}
}

// ParseStrategy converts a name or alias into a Strategy.
func ParseStrategy(name string) (Strategy, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if strategy, ok := strategyAliases[key]; ok {
		return strategy, nil
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
}

// ParseStrategies parses a list of names; an empty list means all strategies.
func ParseStrategies(names []string) ([]Strategy, error) {
	if len(names) == 0 {
		return AllStrategies(), nil
	}

	strategies := make([]Strategy, 0, len(names))
	seen := make(map[Strategy]bool, len(names))

	for _, name := range names {
		strategy, err := ParseStrategy(name)
		if err != nil {
			return nil, err
		}

		if seen[strategy] {
			continue
		}

		seen[strategy] = true
		strategies = append(strategies, strategy)
	}

	return strategies, nil
}

// String returns the canonical name of the strategy.
func (s Strategy) String() string {
	if name, ok := strategyNames[s]; ok {
		return name
	}

	return fmt.Sprintf("strategy(%d)", int(s))
}

// Title returns a human readable name.
func (s Strategy) Title() string {
	switch s {
	case BFS:
		return "Breadth-First Search"
	case DFS:
		return "Depth-First Search"
	case UCS:
		return "Uniform-Cost Search"
	case AStar:
		return "A* Search"
	case IDS:
		return "Iterative Deepening Search"
	}

	return s.String()
}

// MarshalYAML encodes the strategy by name.
func (s Strategy) MarshalYAML() (interface{}, error) {
	return s.String(), nil
}

// UnmarshalYAML decodes a strategy name.
func (s *Strategy) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var name string
	if err := unmarshal(&name); err != nil {
		return err
	}

	parsed, err := ParseStrategy(name)
	if err != nil {
		return err
	}

	*s = parsed

	return nil
}
