package result

import (
	"github.com/sfta-dev/sfta/internal/ir"
	"github.com/sfta-dev/sfta/internal/mcs"
	"github.com/sfta-dev/sfta/internal/quantity"
)

// Build computes the full result model for tree: every event's
// summary and every gate's minimal cut sets, quantity, and
// per-event contribution/importance. tree must already be built and
// validated by internal/compiler.
func Build(tree *ir.FaultTree) *Tree {
	mcsEngine := mcs.NewEngine(tree)
	qEngine := quantity.NewEngine(tree, mcsEngine)

	events := make([]EventSummary, 0, len(tree.Events))
	for _, ev := range tree.Events {
		events = append(events, EventSummary{
			ID:        ev.IDValue,
			Label:     ev.DisplayLabel(),
			Dimension: ev.Dimension(),
			Quantity:  ev.Quantity(),
		})
	}

	gates := make([]GateResult, 0, len(tree.Gates))
	for _, g := range tree.Gates {
		gates = append(gates, buildGateResult(tree, mcsEngine, qEngine, g))
	}

	return &Tree{TimeUnit: tree.TimeUnit, Events: events, Gates: gates}
}

func buildGateResult(tree *ir.FaultTree, mcsEngine *mcs.Engine, qEngine *quantity.Engine, g *ir.Gate) GateResult {
	cutSets := mcsEngine.MCS(g)
	gq := qEngine.GateQuantity(g)

	minimal := make([]CutSet, 0, len(cutSets))
	for _, cs := range cutSets {
		v, dim := quantity.CutSetQuantity(tree, cs)
		minimal = append(minimal, CutSet{
			EventIDs:  mcs.EventIDs(tree, cs),
			Quantity:  v,
			Dimension: dim,
		})
	}

	contributions := make(map[string]float64)
	importances := make(map[string]float64)
	for id, v := range qEngine.ContributionTable(g) {
		contributions[id] = v
		importances[id] = qEngine.Importance(g, tree.EventByID[id])
	}

	return GateResult{
		ID:             g.IDValue,
		Label:          g.DisplayLabel(),
		Type:           g.Type,
		Quantity:       gq.Value,
		Dimension:      gq.Dimension,
		MinimalCutSets: minimal,
		Contributions:  contributions,
		Importances:    importances,
	}
}
