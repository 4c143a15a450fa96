package mcs

import (
	"sort"

	"github.com/sfta-dev/sfta/internal/ir"
)

// orCombine implements A ⊕ B: multiset union followed by absorption.
func orCombine(a, b []ir.CutSet) []ir.CutSet {
	combined := make([]ir.CutSet, 0, len(a)+len(b))
	combined = append(combined, a...)
	combined = append(combined, b...)
	return absorb(combined)
}

// andCombine implements A ⊗ B: emit a ∪ b for every pair, then absorb.
func andCombine(a, b []ir.CutSet) []ir.CutSet {
	combined := make([]ir.CutSet, 0, len(a)*len(b))
	for _, x := range a {
		for _, y := range b {
			combined = append(combined, x.Union(y))
		}
	}
	return absorb(combined)
}

// absorb removes every mask that is a proper superset of another mask
// in the list (it is not minimal) and deduplicates exact ties.
//
// Candidates are sorted by (popcount, value) ascending first, so a
// single left-to-right scan suffices: by the time a candidate is
// visited, every mask that could dominate it (a subset with equal or
// smaller popcount) has already been decided.
func absorb(masks []ir.EventMask) []ir.EventMask {
	sorted := append([]ir.EventMask(nil), masks...)
	sortCutSets(sorted)

	kept := make([]ir.EventMask, 0, len(sorted))
	for _, m := range sorted {
		dominated := false
		for _, k := range kept {
			if k.IsSubsetOf(m) {
				// k == m (exact duplicate) or k is a proper, smaller
				// subset of m (m is not minimal). Either way drop m.
				dominated = true
				break
			}
		}
		if !dominated {
			kept = append(kept, m)
		}
	}
	return kept
}

// sortCutSets orders masks by cut-set order (popcount) ascending, then
// by numeric mask value ascending — the deterministic ordering
// spec.md §4.3 requires for output and for reproducible absorption.
func sortCutSets(masks []ir.EventMask) {
	sort.Slice(masks, func(i, j int) bool {
		pi, pj := masks[i].Popcount(), masks[j].Popcount()
		if pi != pj {
			return pi < pj
		}
		return masks[i].Compare(masks[j]) < 0
	})
}
