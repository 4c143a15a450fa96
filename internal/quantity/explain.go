package quantity

import (
	"github.com/sfta-dev/sfta/internal/ir"
	"github.com/sfta-dev/sfta/internal/mcs"
)

// CutSetBreakdown is one minimal cut set's contribution to an
// Explanation: its member event IDs (sorted by bit index, matching
// mcs.EventIDs) and the quantity that cut set carries.
type CutSetBreakdown struct {
	EventIDs  []string
	Value     float64
	Dimension ir.Dimension
}

// Explanation is the full accounting behind one event's importance to
// one gate: every minimal cut set of gate that contains event, each
// with its own quantity, plus the totals they were derived from. It
// exists so a caller (the CLI's explain command, in particular) can
// show why an event matters to a gate rather than only how much.
type Explanation struct {
	GateID       string
	EventID      string
	CutSets      []CutSetBreakdown
	Contribution float64
	GateQuantity GateQuantity
	Importance   float64
}

// Explain returns the full breakdown of event's role in gate: the
// subset of gate's minimal cut sets that contain event, each cut
// set's own quantity, and the contribution/importance totals those
// cut sets sum to.
func (e *Engine) Explain(gate *ir.Gate, event *ir.Event) Explanation {
	var cutSets []CutSetBreakdown
	for _, cs := range e.mcsEngine.MCS(gate) {
		if !containsBit(cs, event.BitIndex) {
			continue
		}
		v, dim := CutSetQuantity(e.tree, cs)
		cutSets = append(cutSets, CutSetBreakdown{
			EventIDs:  mcs.EventIDs(e.tree, cs),
			Value:     v,
			Dimension: dim,
		})
	}

	return Explanation{
		GateID:       gate.IDValue,
		EventID:      event.IDValue,
		CutSets:      cutSets,
		Contribution: e.Contribution(gate, event),
		GateQuantity: e.GateQuantity(gate),
		Importance:   e.Importance(gate, event),
	}
}

func containsBit(mask ir.EventMask, bit int) bool {
	for _, b := range mask.Bits() {
		if b == bit {
			return true
		}
	}
	return false
}
