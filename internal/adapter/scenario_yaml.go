package adapter

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

type yamlScenarioFile struct {
	Name  string    `yaml:"name"`
	Grid  yaml.Node `yaml:"grid"`
	Start []int     `yaml:"start"`
	Goal  []int     `yaml:"goal"`
}

// decodeYAMLScenario accepts the grid either as a list of row strings
// ("0010" or "..#.") or as a list of integer rows.
func decodeYAMLScenario(content []byte) (scenarioSpec, error) {
	var file yamlScenarioFile
	if err := yaml.Unmarshal(content, &file); err != nil {
		return scenarioSpec{}, err
	}

	spec := scenarioSpec{name: file.Name, start: file.Start, goal: file.Goal}

	if file.Grid.Kind != yaml.SequenceNode || len(file.Grid.Content) == 0 {
		return scenarioSpec{}, fmt.Errorf("grid must be a non-empty list of rows")
	}

	for i, row := range file.Grid.Content {
		switch row.Kind {
		case yaml.ScalarNode:
			// Raw text keeps leading zeros that an int decode would drop.
			spec.rows = append(spec.rows, row.Value)
		case yaml.SequenceNode:
			var values []int
			if err := row.Decode(&values); err != nil {
				return scenarioSpec{}, fmt.Errorf("grid row %d: %w", i, err)
			}

			spec.matrix = append(spec.matrix, values)
		default:
			return scenarioSpec{}, fmt.Errorf("grid row %d must be a string or a list of 0/1 values", i)
		}
	}

	if spec.rows != nil && spec.matrix != nil {
		return scenarioSpec{}, fmt.Errorf("grid mixes string rows and list rows")
	}

	return spec, nil
}
