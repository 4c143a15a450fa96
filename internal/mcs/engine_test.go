package mcs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sfta-dev/sfta/internal/compiler"
	"github.com/sfta-dev/sfta/internal/ir"
	"github.com/sfta-dev/sfta/internal/parser"
)

func buildTree(t *testing.T, src string) *ir.FaultTree {
	t.Helper()
	doc, err := parser.Parse(src)
	require.NoError(t, err)
	tree, err := compiler.Build(doc)
	require.NoError(t, err)
	return tree
}

func idLists(tree *ir.FaultTree, cutSets []ir.CutSet) [][]string {
	var out [][]string
	for _, cs := range cutSets {
		out = append(out, EventIDs(tree, cs))
	}
	return out
}

// S1 from spec.md §8.
const toastSource = `
- time_unit: h

Event: BF
- rate: 0.1

Event: TF
- rate: 0.2

Event: TB
- probability: 0.75

Event: BSD
- probability: 0.9

Gate: TFBSD
- type: AND
- inputs: TF, TB, BSD

Gate: FB
- type: OR
- inputs: BF, TFBSD
`

func TestMCSToastScenario(t *testing.T) {
	tree := buildTree(t, toastSource)
	engine := NewEngine(tree)

	tfbsd := engine.MCS(tree.GateByID["TFBSD"])
	require.Len(t, tfbsd, 1)
	assert.Equal(t, []string{"TF", "TB", "BSD"}, EventIDs(tree, tfbsd[0]))

	fb := engine.MCS(tree.GateByID["FB"])
	lists := idLists(tree, fb)
	assert.Equal(t, [][]string{{"BF"}, {"TF", "TB", "BSD"}}, lists)
}

// S2 from spec.md §8: A*(A|B) = A.
func TestMCSAndOfOrAbsorption(t *testing.T) {
	tree := buildTree(t, `Event: A
- probability: 0.5
Event: B
- probability: 0.5
Event: C
- probability: 0.5
Gate: G1
- type: OR
- inputs: A, B
Gate: G2
- type: AND
- inputs: G1, A
`)
	engine := NewEngine(tree)
	g2 := engine.MCS(tree.GateByID["G2"])
	require.Len(t, g2, 1)
	assert.Equal(t, []string{"A"}, EventIDs(tree, g2[0]))
}

// S3 from spec.md §8: rare-event sum, no inclusion-exclusion merging.
func TestMCSRareEventNoMerge(t *testing.T) {
	tree := buildTree(t, `Event: A
- probability: 0.1
Event: B
- probability: 0.2
Gate: G
- type: OR
- inputs: A, B
`)
	engine := NewEngine(tree)
	g := engine.MCS(tree.GateByID["G"])
	assert.Equal(t, [][]string{{"A"}, {"B"}}, idLists(tree, g))
}

func TestMCSMinimalityInvariant(t *testing.T) {
	tree := buildTree(t, `Event: A
- probability: 0.1
Event: B
- probability: 0.1
Event: C
- probability: 0.1
Gate: G1
- type: OR
- inputs: A, B
Gate: G2
- type: AND
- inputs: G1, C
Gate: Top
- type: OR
- inputs: G2, A
`)
	engine := NewEngine(tree)
	top := engine.MCS(tree.GateByID["Top"])
	for i, ci := range top {
		for j, cj := range top {
			if i == j {
				continue
			}
			assert.False(t, ci.IsSubsetOf(cj), "cut set %d must not be a subset of %d", i, j)
		}
	}
}

func TestMCSIdempotenceOfORSelfCombine(t *testing.T) {
	tree := buildTree(t, `Event: A
- probability: 0.1
Event: B
- probability: 0.2
Gate: G
- type: OR
- inputs: A, B
Gate: GG
- type: OR
- inputs: G, G
`)
	engine := NewEngine(tree)
	g := engine.MCS(tree.GateByID["G"])
	gg := engine.MCS(tree.GateByID["GG"])
	assert.Equal(t, idLists(tree, g), idLists(tree, gg))
}

func TestMCSAbsorptionOfANDSelfCombine(t *testing.T) {
	tree := buildTree(t, `Event: A
- probability: 0.1
Gate: G
- type: OR
- inputs: A
Gate: GG
- type: AND
- inputs: G, G
`)
	engine := NewEngine(tree)
	g := engine.MCS(tree.GateByID["G"])
	gg := engine.MCS(tree.GateByID["GG"])
	assert.Equal(t, idLists(tree, g), idLists(tree, gg))
}

func TestMCSDeterministicUnderGateDeclarationShuffle(t *testing.T) {
	srcA := `Event: A
- probability: 0.1
Event: B
- probability: 0.2
Event: C
- probability: 0.3
Gate: G1
- type: OR
- inputs: A, B
Gate: G2
- type: AND
- inputs: G1, C
`
	srcB := `Event: A
- probability: 0.1
Event: B
- probability: 0.2
Event: C
- probability: 0.3
Gate: G2
- type: AND
- inputs: G1, C
Gate: G1
- type: OR
- inputs: A, B
`
	treeA := buildTree(t, srcA)
	treeB := buildTree(t, srcB)

	engineA := NewEngine(treeA)
	engineB := NewEngine(treeB)

	assert.Equal(t,
		idLists(treeA, engineA.MCS(treeA.GateByID["G2"])),
		idLists(treeB, engineB.MCS(treeB.GateByID["G2"])),
	)
}

func TestMCSIsMemoised(t *testing.T) {
	tree := buildTree(t, `Event: A
- probability: 0.1
Gate: G
- type: OR
- inputs: A
`)
	engine := NewEngine(tree)
	first := engine.MCS(tree.GateByID["G"])
	second := engine.MCS(tree.GateByID["G"])
	assert.Same(t, &first[0], &second[0])
}
