// Package ir defines the validated, immutable data model for a coherent
// fault tree: events, gates, and the tree that owns them.
//
// Values in this package are built once by internal/compiler and never
// mutated afterwards. Event and Gate are the two implementations of the
// sealed Node interface; nothing outside this package may implement it.
package ir
