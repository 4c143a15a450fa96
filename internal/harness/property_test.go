package harness

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sfta-dev/sfta/internal/compiler"
	"github.com/sfta-dev/sfta/internal/parser"
	"github.com/sfta-dev/sfta/internal/result"
)

func buildResult(t *testing.T, src string) *result.Tree {
	t.Helper()
	doc, err := parser.Parse(src)
	require.NoError(t, err)
	tree, err := compiler.Build(doc)
	require.NoError(t, err)
	return result.Build(tree)
}

const diamondSource = `
Event: A
- probability: 0.1
Event: B
- probability: 0.2
Event: C
- probability: 0.05
Gate: G1
- type: OR
- inputs: A, B
Gate: G2
- type: AND
- inputs: G1, C
Gate: Top
- type: OR
- inputs: G2, A
`

// Minimality: no minimal cut set the engine reports is a subset of another.
func TestPropertyMinimality(t *testing.T) {
	tr := buildResult(t, diamondSource)
	for _, g := range tr.Gates {
		sets := g.MinimalCutSets
		for i := range sets {
			for j := range sets {
				if i == j {
					continue
				}
				if isSubsetIDs(sets[i].EventIDs, sets[j].EventIDs) {
					t.Fatalf("gate %s: cut set %v is a subset of %v", g.ID, sets[i].EventIDs, sets[j].EventIDs)
				}
			}
		}
	}
}

func isSubsetIDs(a, b []string) bool {
	set := make(map[string]bool, len(b))
	for _, id := range b {
		set[id] = true
	}
	for _, id := range a {
		if !set[id] {
			return false
		}
	}
	return len(a) <= len(b)
}

// Determinism: re-running the full pipeline over identical source
// produces byte-identical minimal-cut-set listings and quantities.
func TestPropertyDeterminism(t *testing.T) {
	first := buildResult(t, diamondSource)
	second := buildResult(t, diamondSource)
	assert.Equal(t, first, second)
}

// Contribution totals: every event's contribution to a gate never
// exceeds that gate's own aggregated quantity (each contribution is a
// sub-sum of the same cut sets the total is folded from).
func TestPropertyContributionBoundedByGateQuantity(t *testing.T) {
	tr := buildResult(t, diamondSource)
	top := tr.Gate("Top")
	require.NotNil(t, top)
	for _, v := range top.Contributions {
		assert.LessOrEqual(t, v, top.Quantity+1e-12)
	}
}

// Zero absorption: a probability-0 event drives its cut set's
// quantity, and any gate consisting solely of that cut set, to 0 —
// even across an intervening AND gate combined with a NaN-valued event.
func TestPropertyZeroAbsorption(t *testing.T) {
	tr := buildResult(t, `Event: Z
- probability: 0
Event: N
- probability: nan
Gate: G
- type: AND
- inputs: Z, N
`)
	g := tr.Gate("G")
	require.NotNil(t, g)
	assert.Equal(t, float64(0), g.Quantity)
}

// Infinity dominance: an infinite-rate event dominates an OR gate's
// aggregated quantity regardless of what else feeds it.
func TestPropertyInfinityDominance(t *testing.T) {
	tr := buildResult(t, `- time_unit: h
Event: Certain
- rate: inf
Event: Ordinary
- rate: 0.01
Gate: G
- type: OR
- inputs: Certain, Ordinary
`)
	g := tr.Gate("G")
	require.NotNil(t, g)
	assert.True(t, math.IsInf(g.Quantity, 1))
}

// Idempotence/absorption: OR-ing a gate with itself, or AND-ing a gate
// with itself, changes nothing about its minimal cut sets.
func TestPropertySelfCombineIsNoOp(t *testing.T) {
	orTree := buildResult(t, `Event: A
- probability: 0.1
Gate: G
- type: OR
- inputs: A
Gate: GG
- type: OR
- inputs: G, G
`)
	assert.Equal(t, orTree.Gate("G").MinimalCutSets, orTree.Gate("GG").MinimalCutSets)

	andTree := buildResult(t, `Event: A
- probability: 0.1
Gate: G
- type: OR
- inputs: A
Gate: GG
- type: AND
- inputs: G, G
`)
	assert.Equal(t, andTree.Gate("G").MinimalCutSets, andTree.Gate("GG").MinimalCutSets)
}
