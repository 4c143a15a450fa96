// Package mcs computes minimal cut sets for the gates of a fault tree,
// per spec.md §4.3: an exact Boolean-algebra simplification over
// bit-indexed EventMasks, not a heuristic search.
//
// Engine memoises each gate's result the first time it is requested;
// memoisation is mandatory because MCS counts are worst-case
// exponential in the number of events.
package mcs
