// Package quantity implements the rare-event quantity algebra of
// spec.md §4.4: per-event, per-cut-set, and per-gate quantities, plus
// per-event contribution and importance, under IEEE-754 double
// arithmetic with the document's explicit NaN/Infinity overrides.
//
// There are no errors at this layer: NaN is a valid in-band result.
package quantity
