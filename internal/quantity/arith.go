package quantity

import (
	"math"

	"github.com/sfta-dev/sfta/internal/ir"
)

// mulZero multiplies a and b under the override spec.md §4.4 states for
// products: a factor that is exactly 0 makes the product 0, even when
// the other factor is NaN or +Inf (0 × ∞ ≡ 0, and 0 absorbs NaN too).
// Every other combination is ordinary IEEE-754 multiplication, so NaN
// and +Inf propagate through it unless masked by a zero factor.
func mulZero(a, b float64) float64 {
	if a == 0 || b == 0 {
		return 0
	}
	return a * b
}

// addInfDominant adds a and b under the override spec.md §4.4 states
// for rare-event sums: +Inf dominates every other value, including
// NaN (∞ + NaN = ∞). Neither operand is ever -Inf: probabilities and
// rates are non-negative by construction.
func addInfDominant(a, b float64) float64 {
	if math.IsInf(a, 1) || math.IsInf(b, 1) {
		return math.Inf(1)
	}
	return a + b
}

// CutSetQuantity returns a cut set's quantity and dimension: the
// product of its events' quantities under mulZero, and a dimension
// that is Rate when exactly one event in the cut set is rate-valued,
// Probability when none are, or — when two or more are — NaN with
// dimension Rate, per spec.md §4.4's "ill-defined" rule for mixed-rate
// cut sets.
func CutSetQuantity(tree *ir.FaultTree, cutSet ir.CutSet) (float64, ir.Dimension) {
	product := 1.0
	rateCount := 0
	for _, bit := range cutSet.Bits() {
		ev := tree.Events[bit]
		product = mulZero(product, ev.Quantity())
		if ev.Dimension() == ir.Rate {
			rateCount++
		}
	}
	if rateCount >= 2 {
		return math.NaN(), ir.Rate
	}
	dim := ir.Probability
	if rateCount == 1 {
		dim = ir.Rate
	}
	return product, dim
}
