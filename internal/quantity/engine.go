package quantity

import (
	"math"

	"github.com/sfta-dev/sfta/internal/ir"
	"github.com/sfta-dev/sfta/internal/mcs"
)

// GateQuantity is a gate's aggregated rare-event quantity together
// with the dimension it was computed in.
type GateQuantity struct {
	Value     float64
	Dimension ir.Dimension
}

// Engine computes and memoises gate quantities, per-event
// contributions, and importances over one FaultTree's minimal cut
// sets. It is not safe for concurrent use without external
// synchronisation, matching mcs.Engine.
type Engine struct {
	tree      *ir.FaultTree
	mcsEngine *mcs.Engine

	gateCache    map[string]GateQuantity
	contribCache map[string]map[string]float64
}

// NewEngine returns an Engine over tree, delegating cut-set
// computation to mcsEngine. mcsEngine must be built over the same
// tree.
func NewEngine(tree *ir.FaultTree, mcsEngine *mcs.Engine) *Engine {
	return &Engine{
		tree:         tree,
		mcsEngine:    mcsEngine,
		gateCache:    make(map[string]GateQuantity),
		contribCache: make(map[string]map[string]float64),
	}
}

// GateQuantity returns gate's rare-event sum over its minimal cut
// sets: Q(g) = Σ Q(C) for C in MCS(g), folded left to right in the
// engine's deterministic cut-set order under addInfDominant.
func (e *Engine) GateQuantity(gate *ir.Gate) GateQuantity {
	if cached, ok := e.gateCache[gate.IDValue]; ok {
		return cached
	}

	cutSets := e.mcsEngine.MCS(gate)
	total := 0.0
	anyRate := false
	for _, cs := range cutSets {
		v, dim := CutSetQuantity(e.tree, cs)
		if dim == ir.Rate {
			anyRate = true
		}
		total = addInfDominant(total, v)
	}

	dim := ir.Probability
	if anyRate {
		dim = ir.Rate
	}
	result := GateQuantity{Value: total, Dimension: dim}
	e.gateCache[gate.IDValue] = result
	return result
}

// contributionTable returns, for every event that appears in at least
// one of gate's minimal cut sets, the sum of Q(C) over the cut sets C
// containing that event — the event's contribution to gate, per
// spec.md §4.4. The table is computed once per gate and cached.
func (e *Engine) contributionTable(gate *ir.Gate) map[string]float64 {
	if cached, ok := e.contribCache[gate.IDValue]; ok {
		return cached
	}

	table := make(map[string]float64)
	for _, cs := range e.mcsEngine.MCS(gate) {
		v, _ := CutSetQuantity(e.tree, cs)
		for _, bit := range cs.Bits() {
			id := e.tree.Events[bit].IDValue
			table[id] = addInfDominant(table[id], v)
		}
	}

	e.contribCache[gate.IDValue] = table
	return table
}

// Contribution returns event's contribution to gate: the sum of Q(C)
// over gate's minimal cut sets C containing event. It is 0 for an
// event that does not appear in any of gate's minimal cut sets.
func (e *Engine) Contribution(gate *ir.Gate, event *ir.Event) float64 {
	return e.contributionTable(gate)[event.IDValue]
}

// ContributionTable returns event-ID-to-contribution for every event
// appearing in at least one of gate's minimal cut sets. The returned
// map must not be mutated by callers.
func (e *Engine) ContributionTable(gate *ir.Gate) map[string]float64 {
	return e.contributionTable(gate)
}

// Importance returns event's fractional importance to gate:
// Contribution(gate, event) / GateQuantity(gate). It is NaN when
// gate's quantity is 0, NaN, or +Inf — the ratio is not meaningful in
// any of those cases.
func (e *Engine) Importance(gate *ir.Gate, event *ir.Event) float64 {
	gq := e.GateQuantity(gate)
	if gq.Value == 0 || math.IsNaN(gq.Value) || math.IsInf(gq.Value, 1) {
		return math.NaN()
	}
	return e.Contribution(gate, event) / gq.Value
}
