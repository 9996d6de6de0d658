package column

import (
	"github.com/katalvlaran/rforest/ginisplit"
	"github.com/katalvlaran/rforest/mask"
	"github.com/katalvlaran/rforest/rng"
)

// Column is a ThreeValColumn backed by raw {0,1,2} bytes.
type Column struct {
	values []int8
}

// New validates raw and wraps it as a Column. Every byte must be in
// {0,1,2}; out-of-range bytes are a fatal Configuration error. The
// constructor never produces Absent (spec.md Open Question Q3): this
// type's zero-effort treatment of missing values is "reject at parse
// time", one of the two options the spec leaves open.
func New(raw []int8) (Column, error) {
	for _, v := range raw {
		if v < 0 || v > 2 {
			return Column{}, ErrOutOfRange
		}
	}
	return Column{values: append([]int8(nil), raw...)}, nil
}

// Len returns the column's length (nrow).
func (c Column) Len() int { return len(c.values) }

// Raw returns the column's underlying bytes. Callers must treat the
// slice as read-only; use Permute to obtain an independently owned,
// modified copy.
func (c Column) Raw() []int8 { return c.values }

// Permute returns a fresh Column equal to c, except that the values at
// the rows named by oobMask are independently shuffled among
// themselves using r. Rows outside oobMask keep their original value.
func (c Column) Permute(r *rng.PRNG, oobMask mask.Mask) Column {
	out := append([]int8(nil), c.values...)
	rows := oobMask.Indices()

	buf := make([]int8, len(rows))
	for i, row := range rows {
		buf[i] = out[row]
	}
	shuffleInt8(buf, r)
	for i, row := range rows {
		out[row] = buf[i]
	}
	return Column{values: out}
}

func shuffleInt8(a []int8, r *rng.PRNG) {
	for i := len(a) - 1; i > 0; i-- {
		j := int(r.NextUsize(uint32(i + 1)))
		a[i], a[j] = a[j], a[i]
	}
}

// SplitWithPivot partitions m according to pivot. A row is sent right
// iff its value equals pivot's target category (e.g. NotRed sends Red
// rows right); every other masked row is sent left. Equality rule,
// reproduced exactly from spec.md §4.4 and confirmed by the reference
// implementation's `PartialEq<ThreeVal> for ThreeValPivot`: "NotX == X
// ⇒ false" (the row fails the pivot's own "not X" test and is excluded
// to the right, the "is X" side); "NotX == Y ⇒ true" for Y != X (the
// row passes the "not X" test and lands on the left).
func (c Column) SplitWithPivot(m mask.Mask, pivot Pivot) (left, right mask.Mask) {
	target := pivot.targetCategory()
	rows := m.Indices()
	leftIdx := make([]int, 0, len(rows))
	rightIdx := make([]int, 0, len(rows))
	for _, row := range rows {
		if c.values[row] == target {
			rightIdx = append(rightIdx, row)
		} else {
			leftIdx = append(leftIdx, row)
		}
	}
	return mask.New(leftIdx), mask.New(rightIdx)
}

// GenOptimalPivot evaluates the partition-Gini cost of all three
// candidate pivots over m and returns the minimizing pivot and its
// cost. Ties are broken by category index: NotRed wins if it is
// strictly better than both others; else NotGreen wins if strictly
// better than NotBlue; else NotBlue.
//
// shadowRng is reserved: spec.md Open Question Q2 observes that every
// shipped call site passes nil, so the rng-driven pre-shuffle is
// intentionally not implemented here. frame.FindMinIdx permutes shadow
// probe columns itself (via Permute) before calling this function, so
// the parameter is never needed in practice; it is kept in the
// signature so a future caller can opt in without an API break.
func (c Column) GenOptimalPivot(m mask.Mask, labels []bool, shadowRng *rng.PRNG) (Pivot, float64, error) {
	_ = shadowRng // reserved, see doc comment above.

	scores, err := ginisplit.Score(c.values, labels, m.Indices())
	if err != nil {
		return 0, 0, err
	}

	switch {
	case scores.Red < scores.Green && scores.Red < scores.Blue:
		return NotRed, scores.Red, nil
	case scores.Green < scores.Blue:
		return NotGreen, scores.Green, nil
	default:
		return NotBlue, scores.Blue, nil
	}
}
