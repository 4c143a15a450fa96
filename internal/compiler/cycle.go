package compiler

import (
	"strings"

	"github.com/sfta-dev/sfta/internal/apperr"
	"github.com/sfta-dev/sfta/internal/ir"
)

// detectCycles runs Tarjan's strongly-connected-components algorithm
// over the gate-to-gate dependency graph and fails on any cycle.
//
// Unlike a dependency graph between independently-triggered rules,
// a fault tree's gates form a Boolean expression: a gate that is its
// own input (directly or transitively) has no well-defined value, so
// every non-trivial SCC here is a hard StructureError, not a warning.
func detectCycles(tree *ir.FaultTree) error {
	graph := buildGateGraph(tree.Gates)
	sccs := tarjanSCC(tree.Gates, graph)

	for _, scc := range sccs {
		if len(scc) > 1 || hasSelfLoop(scc[0], graph) {
			return cycleError(tree, scc)
		}
	}
	return nil
}

type gateGraph map[string][]string

func buildGateGraph(gates []*ir.Gate) gateGraph {
	graph := make(gateGraph, len(gates))
	for _, g := range gates {
		edges := graph[g.IDValue]
		for _, in := range g.Inputs {
			if inGate, ok := in.(*ir.Gate); ok {
				edges = append(edges, inGate.IDValue)
			}
		}
		graph[g.IDValue] = edges
	}
	return graph
}

func hasSelfLoop(node string, graph gateGraph) bool {
	for _, neighbor := range graph[node] {
		if neighbor == node {
			return true
		}
	}
	return false
}

// tarjanSCC finds strongly connected components, visiting gates in
// declaration order so results (and thus which cycle is reported
// first) are deterministic regardless of map iteration order.
func tarjanSCC(gates []*ir.Gate, graph gateGraph) [][]string {
	var (
		index   = 0
		stack   []string
		indices = make(map[string]int)
		lowlink = make(map[string]int)
		onStack = make(map[string]bool)
		sccs    [][]string
	)

	var strongConnect func(v string)
	strongConnect = func(v string) {
		indices[v] = index
		lowlink[v] = index
		index++
		stack = append(stack, v)
		onStack[v] = true

		for _, w := range graph[v] {
			if _, visited := indices[w]; !visited {
				strongConnect(w)
				lowlink[v] = min(lowlink[v], lowlink[w])
			} else if onStack[w] {
				lowlink[v] = min(lowlink[v], indices[w])
			}
		}

		if lowlink[v] == indices[v] {
			var scc []string
			for {
				w := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				onStack[w] = false
				scc = append(scc, w)
				if w == v {
					break
				}
			}
			sccs = append(sccs, scc)
		}
	}

	for _, g := range gates {
		if _, visited := indices[g.IDValue]; !visited {
			strongConnect(g.IDValue)
		}
	}

	return sccs
}

func cycleError(tree *ir.FaultTree, scc []string) error {
	line := 0
	if g, ok := tree.GateByID[scc[0]]; ok {
		line = g.Line
	}
	return apperr.New(apperr.StructureError, line, "cycle detected among gates: %s", strings.Join(scc, " -> "))
}
