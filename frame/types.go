package frame

import "github.com/katalvlaran/rforest/column"

// XDf is an ordered vector of columns plus the two parallel index maps
// described in spec.md §3: indexToSplitID maps a physical position to
// the stable split-id callers see, and splitIDToIndex is its inverse.
type XDf struct {
	cols           []column.Column
	indexToSplitID []int
	splitIDToIndex map[int]int
}

// New wraps cols as a fresh XDf, assigning split-ids 0..len(cols)-1 in
// order.
func New(cols []column.Column) *XDf {
	df := &XDf{
		cols:           append([]column.Column(nil), cols...),
		indexToSplitID: make([]int, len(cols)),
		splitIDToIndex: make(map[int]int, len(cols)),
	}
	for i := range cols {
		df.indexToSplitID[i] = i
		df.splitIDToIndex[i] = i
	}
	return df
}

// Ncol returns the number of physical columns currently in the frame.
func (df *XDf) Ncol() int { return len(df.cols) }

// Nrow returns the number of rows every column shares, or 0 if the
// frame has no columns.
func (df *XDf) Nrow() int {
	if len(df.cols) == 0 {
		return 0
	}
	return df.cols[0].Len()
}

// GetColIDs returns the frame's split-ids in physical order. The
// returned slice is a fresh copy.
func (df *XDf) GetColIDs() []int {
	return append([]int(nil), df.indexToSplitID...)
}

// column resolves a split-id to its current Column.
func (df *XDf) column(splitID int) (column.Column, error) {
	idx, ok := df.splitIDToIndex[splitID]
	if !ok {
		return column.Column{}, ErrUnknownSplitID
	}
	return df.cols[idx], nil
}

// Column resolves a split-id to its current Column. Unlike the
// physical column vector, the split-id a caller holds is always valid
// across Subset and AddShadows operations (spec.md §3 invariant).
func (df *XDf) Column(splitID int) (column.Column, error) {
	return df.column(splitID)
}

func (df *XDf) maxSplitID() int {
	max := -1
	for id := range df.splitIDToIndex {
		if id > max {
			max = id
		}
	}
	return max
}
