package result

import "github.com/sfta-dev/sfta/internal/ir"

// EventSummary is one event's static description plus its own
// quantity, independent of any gate.
type EventSummary struct {
	ID        string
	Label     string
	Dimension ir.Dimension
	Quantity  float64
}

// CutSet is one minimal cut set, as the sorted IDs of its member
// events, plus the quantity and dimension that cut set carries on its
// own (before being summed into the owning gate's quantity).
type CutSet struct {
	EventIDs  []string
	Quantity  float64
	Dimension ir.Dimension
}

// GateResult is one gate's full result: its minimal cut sets, its
// aggregated quantity, and every cut-set event's contribution and
// importance to it.
type GateResult struct {
	ID             string
	Label          string
	Type           ir.GateType
	Quantity       float64
	Dimension      ir.Dimension
	MinimalCutSets []CutSet

	// Contributions and Importances are keyed by event ID, holding an
	// entry for every event that appears in at least one of
	// MinimalCutSets.
	Contributions map[string]float64
	Importances   map[string]float64
}

// Tree is the full result for one fault tree: every event's own
// summary and every gate's result, both in declaration order.
type Tree struct {
	TimeUnit string
	Events   []EventSummary
	Gates    []GateResult
}

// Gate looks up a gate's result by ID, returning nil if there is no
// gate with that ID.
func (t *Tree) Gate(id string) *GateResult {
	for i := range t.Gates {
		if t.Gates[i].ID == id {
			return &t.Gates[i]
		}
	}
	return nil
}

// Event looks up an event's summary by ID, returning nil if there is
// no event with that ID.
func (t *Tree) Event(id string) *EventSummary {
	for i := range t.Events {
		if t.Events[i].ID == id {
			return &t.Events[i]
		}
	}
	return nil
}
