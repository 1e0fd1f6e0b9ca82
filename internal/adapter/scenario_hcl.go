package adapter

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
)

// hclScenarioFile is the top-level structure of an .hcl scenario file:
//
//	scenario "maze" {
//	  grid  = ["..#", "..."]
//	  start = [0, 0]
//	  goal  = [1, 2]
//	}
type hclScenarioFile struct {
	Scenarios []*hclScenario `hcl:"scenario,block"`
}

type hclScenario struct {
	Name  string         `hcl:"name,label"`
	Grid  hcl.Expression `hcl:"grid"`
	Start []int          `hcl:"start"`
	Goal  []int          `hcl:"goal"`
}

func decodeHCLScenario(filename string, content []byte) (scenarioSpec, error) {
	parser := hclparse.NewParser()

	hclFile, diags := parser.ParseHCL(content, filename)
	if diags.HasErrors() {
		return scenarioSpec{}, fmt.Errorf("failed to parse HCL: %w", diags)
	}

	var parsedFile hclScenarioFile
	if diags := gohcl.DecodeBody(hclFile.Body, nil, &parsedFile); diags.HasErrors() {
		return scenarioSpec{}, fmt.Errorf("failed to decode HCL: %w", diags)
	}

	if len(parsedFile.Scenarios) != 1 {
		return scenarioSpec{}, fmt.Errorf("expected exactly one scenario block, found %d", len(parsedFile.Scenarios))
	}

	block := parsedFile.Scenarios[0]
	spec := scenarioSpec{name: block.Name, start: block.Start, goal: block.Goal}

	if err := decodeHCLGrid(block.Grid, &spec); err != nil {
		return scenarioSpec{}, err
	}

	return spec, nil
}

// decodeHCLGrid evaluates the grid expression as a literal and accepts a
// list of strings or a list of number lists.
func decodeHCLGrid(expr hcl.Expression, spec *scenarioSpec) error {
	if len(expr.Variables()) != 0 {
		return fmt.Errorf("grid must be a literal value")
	}

	value, diags := expr.Value(nil)
	if diags.HasErrors() {
		return fmt.Errorf("failed to evaluate grid: %w", diags)
	}

	ty := value.Type()
	if !(ty.IsTupleType() || ty.IsListType()) || value.LengthInt() == 0 {
		return fmt.Errorf("grid must be a non-empty list of rows")
	}

	it := value.ElementIterator()
	for it.Next() {
		index, row := it.Element()
		rowType := row.Type()

		switch {
		case rowType == cty.String:
			spec.rows = append(spec.rows, row.AsString())
		case rowType.IsTupleType() || rowType.IsListType():
			values, err := ctyRowToInts(row)
			if err != nil {
				return fmt.Errorf("grid row %s: %w", index.GoString(), err)
			}

			spec.matrix = append(spec.matrix, values)
		default:
			return fmt.Errorf("grid row %s must be a string or a list of 0/1 values", index.GoString())
		}
	}

	if spec.rows != nil && spec.matrix != nil {
		return fmt.Errorf("grid mixes string rows and list rows")
	}

	return nil
}

func ctyRowToInts(row cty.Value) ([]int, error) {
	values := make([]int, 0, row.LengthInt())

	it := row.ElementIterator()
	for it.Next() {
		_, cellValue := it.Element()
		if cellValue.Type() != cty.Number || cellValue.IsNull() {
			return nil, fmt.Errorf("cells must be numbers")
		}

		bf := cellValue.AsBigFloat()
		if !bf.IsInt() {
			return nil, fmt.Errorf("cells must be whole numbers")
		}

		n, _ := bf.Int64()
		values = append(values, int(n))
	}

	return values, nil
}
