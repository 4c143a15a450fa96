package mcs

import "github.com/sfta-dev/sfta/internal/ir"

// Engine computes and memoises minimal cut sets per gate for one
// FaultTree. It is not safe for concurrent use without external
// synchronisation (spec.md §5).
type Engine struct {
	tree  *ir.FaultTree
	cache map[string][]ir.CutSet
}

// NewEngine returns an Engine over tree. tree must already be built
// and validated by internal/compiler.
func NewEngine(tree *ir.FaultTree) *Engine {
	return &Engine{tree: tree, cache: make(map[string][]ir.CutSet)}
}

// MCS returns gate's minimal cut sets, computing and caching them on
// first request. The returned slice must not be mutated by callers.
func (e *Engine) MCS(gate *ir.Gate) []ir.CutSet {
	if cached, ok := e.cache[gate.IDValue]; ok {
		return cached
	}

	var result []ir.CutSet
	switch gate.Type {
	case ir.AND:
		result = e.nodeMCS(gate.Inputs[0])
		for _, in := range gate.Inputs[1:] {
			result = andCombine(result, e.nodeMCS(in))
		}
	case ir.OR:
		for _, in := range gate.Inputs {
			result = orCombine(result, e.nodeMCS(in))
		}
	}

	e.cache[gate.IDValue] = result
	return result
}

// nodeMCS dispatches on the sealed ir.Node variant: an Event is its
// own singleton cut set, a Gate recurses through MCS (and its cache).
func (e *Engine) nodeMCS(node ir.Node) []ir.CutSet {
	switch n := node.(type) {
	case *ir.Event:
		return []ir.CutSet{ir.SingletonMask(n.BitIndex)}
	case *ir.Gate:
		return e.MCS(n)
	default:
		panic("mcs: unreachable: unknown ir.Node implementation")
	}
}

// EventIDs resolves a cut set's bit indices back to event identifiers,
// sorted by bit index ascending, for display and for the programmatic
// surface's gate.mcs (spec.md §6.2: "each a sorted list of event IDs").
func EventIDs(tree *ir.FaultTree, cutSet ir.CutSet) []string {
	ids := make([]string, 0, cutSet.Popcount())
	for _, bit := range cutSet.Bits() {
		ids = append(ids, tree.Events[bit].IDValue)
	}
	return ids
}
