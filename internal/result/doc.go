// Package result assembles the pure-value result model of spec.md §3
// and §6.2: for a validated FaultTree, every gate's minimal cut sets,
// aggregated quantity, and per-event contribution/importance, plus
// per-event summaries — independent of any output format.
//
// Build is the package's only entry point; everything else is plain
// data, safe to marshal, cache, or compare directly.
package result
