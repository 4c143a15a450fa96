// Package harness runs YAML-described fault-tree scenarios end to end
// (parse, validate, compute minimal cut sets and quantities) and
// asserts the result against the scenario's expectations, optionally
// snapshotting the full result against a goldie golden file.
//
// Scenarios live under testdata/scenarios and cover spec.md §8's
// worked examples S1-S5; only S1 (the toast tree) is also snapshotted
// against a golden file.
package harness
