package compiler

import (
	"github.com/sfta-dev/sfta/internal/apperr"
	"github.com/sfta-dev/sfta/internal/ir"
	"github.com/sfta-dev/sfta/internal/parser"
)

// Build constructs a validated ir.FaultTree from parsed declarations.
// It implements spec.md §4.2 steps 1-5.
func Build(doc *parser.RawDoc) (*ir.FaultTree, error) {
	tree := &ir.FaultTree{
		TimeUnit:  doc.TimeUnit,
		EventByID: map[string]*ir.Event{},
		GateByID:  map[string]*ir.Gate{},
	}

	if err := buildEvents(tree, doc.Events); err != nil {
		return nil, err
	}
	if err := buildGateSkeletons(tree, doc.Gates); err != nil {
		return nil, err
	}
	if err := resolveGateInputs(tree, doc.Gates); err != nil {
		return nil, err
	}
	if err := detectCycles(tree); err != nil {
		return nil, err
	}

	tree.TopoOrder = topoOrder(tree.Gates)
	tree.TopGates = topGates(tree.Gates)

	return tree, nil
}

// buildEvents constructs the Event table and assigns bit indices in
// declaration order (spec.md §3, §4.2 step 4).
func buildEvents(tree *ir.FaultTree, raws []*parser.RawEvent) error {
	for i, raw := range raws {
		if _, exists := tree.EventByID[raw.ID]; exists {
			return apperr.New(apperr.StructureError, raw.Line, "duplicate identifier %q", raw.ID)
		}
		ev := &ir.Event{
			IDValue:     raw.ID,
			Label:       raw.Label,
			Comment:     raw.Comment,
			HasRate:     raw.HasRate,
			Probability: raw.Probability,
			Rate:        raw.Rate,
			BitIndex:    i,
		}
		tree.Events = append(tree.Events, ev)
		tree.EventByID[ev.IDValue] = ev
	}
	return nil
}

// buildGateSkeletons constructs the Gate table (without resolved
// inputs yet) and checks ID uniqueness across both tables.
func buildGateSkeletons(tree *ir.FaultTree, raws []*parser.RawGate) error {
	for _, raw := range raws {
		if _, exists := tree.EventByID[raw.ID]; exists {
			return apperr.New(apperr.StructureError, raw.Line, "duplicate identifier %q", raw.ID)
		}
		if _, exists := tree.GateByID[raw.ID]; exists {
			return apperr.New(apperr.StructureError, raw.Line, "duplicate identifier %q", raw.ID)
		}
		g := &ir.Gate{
			IDValue:  raw.ID,
			Label:    raw.Label,
			Comment:  raw.Comment,
			Type:     ir.GateType(raw.Type),
			IsPaged:  raw.IsPaged,
			InputIDs: raw.InputIDs,
			Line:     raw.Line,
		}
		tree.Gates = append(tree.Gates, g)
		tree.GateByID[g.IDValue] = g
	}
	return nil
}

// resolveGateInputs resolves every gate's declared input IDs to Nodes,
// in declared order (spec.md §4.2 step 2).
func resolveGateInputs(tree *ir.FaultTree, raws []*parser.RawGate) error {
	for _, raw := range raws {
		g := tree.GateByID[raw.ID]
		g.Inputs = make([]ir.Node, len(raw.InputIDs))
		for i, inputID := range raw.InputIDs {
			if ev, ok := tree.EventByID[inputID]; ok {
				g.Inputs[i] = ev
				continue
			}
			if gate, ok := tree.GateByID[inputID]; ok {
				g.Inputs[i] = gate
				continue
			}
			return apperr.New(apperr.ReferenceError, raw.Line, "gate %q references undefined identifier %q", raw.ID, inputID)
		}
	}
	return nil
}

// topGates returns the gates that are not an input of any other gate,
// in declaration order (spec.md §9 "Top-gate discovery").
func topGates(gates []*ir.Gate) []*ir.Gate {
	referenced := make(map[string]bool)
	for _, g := range gates {
		for _, in := range g.Inputs {
			if inGate, ok := in.(*ir.Gate); ok {
				referenced[inGate.IDValue] = true
			}
		}
	}

	var tops []*ir.Gate
	for _, g := range gates {
		if !referenced[g.IDValue] {
			tops = append(tops, g)
		}
	}
	return tops
}

// topoOrder returns gates in leaves-first order: every gate's gate
// inputs precede it. Used by the MCS engine to evaluate bottom-up.
func topoOrder(gates []*ir.Gate) []*ir.Gate {
	visited := make(map[string]bool)
	var order []*ir.Gate

	var visit func(g *ir.Gate)
	visit = func(g *ir.Gate) {
		if visited[g.IDValue] {
			return
		}
		visited[g.IDValue] = true
		for _, in := range g.Inputs {
			if inGate, ok := in.(*ir.Gate); ok {
				visit(inGate)
			}
		}
		order = append(order, g)
	}

	for _, g := range gates {
		visit(g)
	}
	return order
}
