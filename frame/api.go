package frame

import (
	"math"

	"github.com/katalvlaran/rforest/column"
	"github.com/katalvlaran/rforest/mask"
	"github.com/katalvlaran/rforest/rng"
)

// SplitCandidate is the result of FindMinIdx: the split-id and pivot
// minimizing partition-Gini cost, plus (when the winning candidate was
// a shadow probe) the already-permuted column to reuse in MakeSplit so
// the same permutation is not regenerated twice.
type SplitCandidate struct {
	SplitID        int
	Pivot          column.Pivot
	Cost           float64
	PermutedColumn *column.Column
}

// FindMinIdx draws mtry distinct candidate columns from [0, ncol), or
// [0, 2*ncol) when shadowVars is true, via Algorithm L (using treeRng),
// and returns the candidate minimizing partition-Gini cost over m.
//
// Candidates in [ncol, 2*ncol) are "shadow probes": on-the-fly
// permuted copies of physical column c-ncol, independent of the
// Boruta shadow columns AddShadows appends. Per spec.md Open Question
// Q2, the permutation is performed here (via column.Permute, keyed on
// factory.Shadow) rather than threaded into GenOptimalPivot's
// shadow-rng parameter, which every shipped call path leaves nil.
func (df *XDf) FindMinIdx(m mask.Mask, labels []bool, mtry int, treeRng *rng.PRNG, factory *rng.Factory, shadowVars bool) (SplitCandidate, error) {
	ncol := df.Ncol()
	if ncol == 0 {
		return SplitCandidate{}, ErrNoCandidates
	}
	rangeN := ncol
	if shadowVars {
		rangeN = 2 * ncol
	}
	if mtry <= 0 || mtry > rangeN {
		return SplitCandidate{}, ErrInvalidMtry
	}

	candidates, err := treeRng.Sample(rangeN, mtry)
	if err != nil {
		return SplitCandidate{}, err
	}

	best := SplitCandidate{}
	bestCost := math.Inf(1)
	for _, c := range candidates {
		physIdx := c
		isShadowProbe := false
		if c >= ncol {
			physIdx = c - ncol
			isShadowProbe = true
		}

		col := df.cols[physIdx]
		var permCol *column.Column
		useCol := col
		if isShadowProbe {
			permuted := col.Permute(factory.Shadow(physIdx), mask.Full(col.Len()))
			permCol = &permuted
			useCol = permuted
		}

		pivot, cost, err := useCol.GenOptimalPivot(m, labels, nil)
		if err != nil {
			return SplitCandidate{}, err
		}
		if math.IsNaN(cost) {
			return SplitCandidate{}, ErrNaNCost
		}
		if cost < bestCost {
			bestCost = cost
			best = SplitCandidate{
				SplitID:        df.indexToSplitID[physIdx],
				Pivot:          pivot,
				Cost:           cost,
				PermutedColumn: permCol,
			}
		}
	}
	return best, nil
}

// MakeSplit resolves splitID's physical column (unless replacement is
// non-nil, in which case that column is used directly -- the path
// FindMinIdx's shadow-probe result takes) and applies SplitWithPivot.
func (df *XDf) MakeSplit(splitID int, m mask.Mask, pivot column.Pivot, replacement *column.Column) (left, right mask.Mask, err error) {
	var col column.Column
	if replacement != nil {
		col = *replacement
	} else {
		col, err = df.column(splitID)
		if err != nil {
			return mask.Mask{}, mask.Mask{}, err
		}
	}
	left, right = col.SplitWithPivot(m, pivot)
	return left, right, nil
}

// PermuteIndex returns a fresh column equal to splitID's current
// column, with values at oobMask rows independently permuted using
// factory.Permutation(treeIndex, splitID).
func (df *XDf) PermuteIndex(splitID int, factory *rng.Factory, oobMask mask.Mask, treeIndex int) (column.Column, error) {
	col, err := df.column(splitID)
	if err != nil {
		return column.Column{}, err
	}
	return col.Permute(factory.Permutation(treeIndex, splitID), oobMask), nil
}

// Subset returns a new XDf containing exactly the columns named by
// splitIDs, in the given order, preserving those split-ids.
func (df *XDf) Subset(splitIDs []int) (*XDf, error) {
	cols := make([]column.Column, len(splitIDs))
	indexToSplitID := make([]int, len(splitIDs))
	splitIDToIndex := make(map[int]int, len(splitIDs))
	for i, id := range splitIDs {
		col, err := df.column(id)
		if err != nil {
			return nil, err
		}
		cols[i] = col
		indexToSplitID[i] = id
		splitIDToIndex[id] = i
	}
	return &XDf{cols: cols, indexToSplitID: indexToSplitID, splitIDToIndex: splitIDToIndex}, nil
}

// AddShadows appends numShadow permuted copies of the existing columns
// to df, where numShadow starts at the current column count and
// doubles until it reaches at least 5. Shadow i is a permuted copy of
// column (i mod currentNcol), permuted over the full row range using
// factory.Shadow(i). New split-ids are strictly greater than every
// existing split-id.
func (df *XDf) AddShadows(factory *rng.Factory) error {
	currentNcol := df.Ncol()
	if currentNcol == 0 {
		return ErrNoCandidates
	}

	numShadow := currentNcol
	for numShadow < 5 {
		numShadow *= 2
	}

	base := df.maxSplitID() + 1
	full := mask.Full(df.Nrow())

	for i := 0; i < numShadow; i++ {
		src := df.cols[i%currentNcol]
		shadow := src.Permute(factory.Shadow(i), full)
		splitID := base + i

		df.cols = append(df.cols, shadow)
		df.indexToSplitID = append(df.indexToSplitID, splitID)
		df.splitIDToIndex[splitID] = len(df.cols) - 1
	}
	return nil
}
