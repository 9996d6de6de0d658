package response

import (
	"github.com/katalvlaran/rforest/mask"
	"github.com/katalvlaran/rforest/rng"
)

// YBool is a boolean response vector of fixed length nrow.
type YBool struct {
	values []bool
}

// New wraps values as a YBool. The slice is not copied; callers must
// not mutate it afterwards (the response is treated as immutable and
// shared read-only across tree-building goroutines, per the ownership
// model in spec.md §3).
func New(values []bool) YBool {
	return YBool{values: values}
}

// Len returns the response's length (nrow).
func (y YBool) Len() int { return len(y.values) }

// Values returns the underlying boolean slice. Callers must treat it
// as read-only.
func (y YBool) Values() []bool { return y.values }

// At returns the response at row i.
func (y YBool) At(i int) bool { return y.values[i] }

// Class reports the single class shared by every row in m: (b, true)
// if all masked rows equal b, or (false, false) if the rows are mixed.
func (y YBool) Class(m mask.Mask) (bool, bool) {
	rows := m.Indices()
	if len(rows) == 0 {
		return false, false
	}
	first := y.values[rows[0]]
	for _, r := range rows[1:] {
		if y.values[r] != first {
			return false, false
		}
	}
	return first, true
}

// Majority returns the majority class among the masked rows, breaking
// exact ties with a fair Bernoulli draw from r.
func (y YBool) Majority(m mask.Mask, r *rng.PRNG) (bool, error) {
	rows := m.Indices()
	if len(rows) == 0 {
		return false, ErrEmptyMask
	}
	trueCount := 0
	for _, row := range rows {
		if y.values[row] {
			trueCount++
		}
	}
	falseCount := len(rows) - trueCount
	switch {
	case trueCount > falseCount:
		return true, nil
	case falseCount > trueCount:
		return false, nil
	default:
		return r.RandUni() > 0.5, nil
	}
}

// ErrorCount returns the Hamming distance between the response masked
// by m (in mask order) and preds, a prediction vector aligned 1:1 with
// m. len(preds) must equal m.Len().
func (y YBool) ErrorCount(m mask.Mask, preds []bool) (int, error) {
	rows := m.Indices()
	if len(preds) != len(rows) {
		return 0, ErrLengthMismatch
	}
	errs := 0
	for i, row := range rows {
		if y.values[row] != preds[i] {
			errs++
		}
	}
	return errs, nil
}
