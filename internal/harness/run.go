package harness

import (
	"fmt"
	"math"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sfta-dev/sfta/internal/compiler"
	"github.com/sfta-dev/sfta/internal/parser"
	"github.com/sfta-dev/sfta/internal/result"
)

// Run parses, validates, and computes the full result model for
// scenario's source.
func Run(scenario *Scenario) (*result.Tree, error) {
	doc, err := parser.Parse(scenario.Source)
	if err != nil {
		return nil, err
	}
	tree, err := compiler.Build(doc)
	if err != nil {
		return nil, err
	}
	return result.Build(tree), nil
}

// AssertScenario runs scenario and asserts every gate named in
// scenario.Gates matches its expected minimal cut sets, quantity, and
// dimension.
func AssertScenario(t *testing.T, scenario *Scenario) *result.Tree {
	t.Helper()

	tr, err := Run(scenario)
	require.NoError(t, err, "scenario %q", scenario.Name)

	for id, expected := range scenario.Gates {
		gate := tr.Gate(id)
		require.NotNil(t, gate, "scenario %q: gate %q not found in result", scenario.Name, id)

		actualCutSets := make([][]string, len(gate.MinimalCutSets))
		for i, cs := range gate.MinimalCutSets {
			actualCutSets[i] = cs.EventIDs
		}
		assert.Equal(t, expected.MinimalCutSets, actualCutSets,
			"scenario %q: gate %q minimal cut sets", scenario.Name, id)

		wantQuantity, err := strconv.ParseFloat(expected.Quantity, 64)
		require.NoError(t, err, "scenario %q: gate %q quantity %q", scenario.Name, id, expected.Quantity)
		assertQuantityEqual(t, wantQuantity, gate.Quantity,
			fmt.Sprintf("scenario %q: gate %q quantity", scenario.Name, id))

		assert.Equal(t, expected.Dimension, string(gate.Dimension),
			"scenario %q: gate %q dimension", scenario.Name, id)
	}

	return tr
}

func assertQuantityEqual(t *testing.T, want, got float64, msg string) {
	t.Helper()
	switch {
	case math.IsNaN(want):
		assert.True(t, math.IsNaN(got), "%s: want NaN, got %v", msg, got)
	case math.IsInf(want, 1):
		assert.True(t, math.IsInf(got, 1), "%s: want +Inf, got %v", msg, got)
	default:
		assert.InDelta(t, want, got, 1e-9, msg)
	}
}
