// Package compiler folds a parser.RawDoc into a validated, immutable
// ir.FaultTree: it resolves gate inputs, assigns event bit indices,
// detects cycles, and computes the topological order the MCS engine
// walks leaves-first.
//
// Build is fail-fast: it returns the first apperr.Error it encounters
// and never a partial tree.
package compiler
