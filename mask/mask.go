package mask

import (
	"sort"

	"github.com/katalvlaran/rforest/rng"
)

// Mask is a sorted, distinct sequence of row indices. The zero value is
// an empty mask. Mask is immutable: every operation that would change
// membership returns a new Mask.
type Mask struct {
	indices []int
}

// New sorts a copy of idx and returns the resulting Mask. Duplicate
// indices are preserved as given by the caller (the spec does not
// require de-duplication, only ascending order); callers that need a
// strict set pass already-distinct input, as every call site in this
// module does.
func New(idx []int) Mask {
	cp := append([]int(nil), idx...)
	sort.Ints(cp)
	return Mask{indices: cp}
}

// Len returns the number of rows in the mask.
func (m Mask) Len() int { return len(m.indices) }

// Indices returns the mask's sorted row indices. The returned slice
// must not be mutated by callers.
func (m Mask) Indices() []int { return m.indices }

// At returns the i-th row index in ascending order.
func (m Mask) At(i int) int { return m.indices[i] }

// IsSorted reports whether the mask's indices are in ascending order;
// this always holds for a Mask built through this package's API and
// exists to let tests assert the invariant (spec.md property #2).
func (m Mask) IsSorted() bool {
	return sort.IntsAreSorted(m.indices)
}

// GetByMask gathers arr[i] for every i in the mask, preserving mask
// order (ascending row index).
func GetByMask[T any](m Mask, arr []T) []T {
	out := make([]T, len(m.indices))
	for i, idx := range m.indices {
		out[i] = arr[idx]
	}
	return out
}

// Complement returns the rows of [0, nrow) not present in m, as a
// fresh sorted Mask. m's indices are assumed to be a subset of
// [0, nrow).
func (m Mask) Complement(nrow int) Mask {
	in := make(map[int]struct{}, len(m.indices))
	for _, idx := range m.indices {
		in[idx] = struct{}{}
	}
	out := make([]int, 0, nrow-len(m.indices))
	for i := 0; i < nrow; i++ {
		if _, ok := in[i]; !ok {
			out = append(out, i)
		}
	}
	return Mask{indices: out}
}

// Full returns the mask covering every row in [0, nrow).
func Full(nrow int) Mask {
	out := make([]int, nrow)
	for i := range out {
		out[i] = i
	}
	return Mask{indices: out}
}

// Random draws floor(n*fraction) distinct row indices from [0, n) via
// Algorithm L reservoir sampling and returns them as a sorted Mask.
func Random(n int, fraction float64, r *rng.PRNG) (Mask, error) {
	k := int(float64(n) * fraction)
	picked, err := r.Sample(n, k)
	if err != nil {
		return Mask{}, err
	}
	return New(picked), nil
}
