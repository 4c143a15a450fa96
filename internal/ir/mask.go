package ir

import "math/big"

// EventMask is an arbitrary-precision, non-negative bit-set over event
// bit indices: bit i is set iff the event with BitIndex i is a member.
//
// Using big.Int (rather than a fixed-width uint64) means the engine is
// not limited to trees with fewer than 64 events — spec.md §3 specifies
// EventMask only as "an arbitrary-precision nonneg integer".
type EventMask struct {
	bits *big.Int
}

// CutSet is an EventMask with cardinality >= 1.
type CutSet = EventMask

// NewEventMask returns the empty mask (no events set).
func NewEventMask() EventMask {
	return EventMask{bits: new(big.Int)}
}

// SingletonMask returns a mask with exactly bitIndex set.
func SingletonMask(bitIndex int) EventMask {
	m := NewEventMask()
	m.bits.SetBit(m.bits, bitIndex, 1)
	return m
}

// Union returns the bitwise OR of a and b.
func (a EventMask) Union(b EventMask) EventMask {
	return EventMask{bits: new(big.Int).Or(a.bits, b.bits)}
}

// Intersect returns the bitwise AND of a and b.
func (a EventMask) Intersect(b EventMask) EventMask {
	return EventMask{bits: new(big.Int).And(a.bits, b.bits)}
}

// IsSubsetOf reports whether every bit set in a is also set in b,
// i.e. a & b == a.
func (a EventMask) IsSubsetOf(b EventMask) bool {
	and := new(big.Int).And(a.bits, b.bits)
	return and.Cmp(a.bits) == 0
}

// Equal reports whether a and b have identical bit patterns.
func (a EventMask) Equal(b EventMask) bool {
	return a.bits.Cmp(b.bits) == 0
}

// Popcount returns the number of set bits, i.e. the cut set's order.
func (a EventMask) Popcount() int {
	count := 0
	for _, w := range a.bits.Bits() {
		count += popcountWord(uint64(w))
	}
	return count
}

func popcountWord(w uint64) int {
	n := 0
	for w != 0 {
		w &= w - 1
		n++
	}
	return n
}

// Bits returns the set bit indices in ascending order.
func (a EventMask) Bits() []int {
	var out []int
	for i := 0; i <= a.bits.BitLen(); i++ {
		if a.bits.Bit(i) == 1 {
			out = append(out, i)
		}
	}
	return out
}

// Compare orders masks by numeric value ascending; used as the
// tie-breaker after popcount in the deterministic ordering required by
// spec.md §4.3.
func (a EventMask) Compare(b EventMask) int {
	return a.bits.Cmp(b.bits)
}

// String renders the mask as a decimal integer, mostly for debugging.
func (a EventMask) String() string {
	return a.bits.String()
}
