package tree

import (
	"sort"

	"github.com/katalvlaran/rforest/column"
	"github.com/katalvlaran/rforest/frame"
	"github.com/katalvlaran/rforest/mask"
)

func rankOf(m mask.Mask) map[int]int {
	rows := m.Indices()
	rank := make(map[int]int, len(rows))
	for i, row := range rows {
		rank[row] = i
	}
	return rank
}

// PredictFirstPass evaluates the tree against m and populates every
// prediction cache as a side effect (spec.md §4.7 "First pass"). It
// must be called once, with the tree's OOB mask, before any call to
// PredictPermuted. The returned slice is aligned 1:1 with m in
// ascending row order.
func (t *Tree) PredictFirstPass(df *frame.XDf, m mask.Mask) ([]bool, error) {
	rank := rankOf(m)
	out := make([]bool, m.Len())

	t.maskCache = make([]mask.Mask, len(t.nodes))
	t.predsCache = nil
	t.predsCacheRange = make([][2]int, len(t.nodes))
	t.splitIdxCacheRange = make([][2]int, len(t.nodes))
	t.splitMaskMap = make(map[int][]int)

	counter := 0
	var walk func(nodeIdx int, mm mask.Mask) error
	walk = func(nodeIdx int, mm mask.Mask) error {
		t.maskCache[nodeIdx] = mm
		start := counter
		rangeStart := len(t.predsCache)
		n := &t.nodes[nodeIdx]

		if n.kind == leafKind {
			rangeStart := len(t.predsCache)
			for _, row := range mm.Indices() {
				t.predsCache = append(t.predsCache, predEntry{class: n.class, row: row})
				out[rank[row]] = n.class
			}
			t.predsCacheRange[nodeIdx] = [2]int{rangeStart, len(t.predsCache)}
		} else {
			col, err := df.Column(n.splitID)
			if err != nil {
				return err
			}
			left, right := col.SplitWithPivot(mm, n.pivot)
			if err := walk(n.left, left); err != nil {
				return err
			}
			if err := walk(n.right, right); err != nil {
				return err
			}
		}

		t.predsCacheRange[nodeIdx] = [2]int{rangeStart, len(t.predsCache)}
		counter++
		own := counter
		t.splitIdxCacheRange[nodeIdx] = [2]int{start, own}
		if n.kind == splitKind {
			t.splitMaskMap[n.splitID] = append(t.splitMaskMap[n.splitID], own)
		}
		return nil
	}

	if err := walk(t.Root(), m); err != nil {
		return nil, err
	}
	t.cachesPopulated = true
	return out, nil
}

// PredictPermuted evaluates the tree against m as if column
// permSplitID had been replaced by permCol, reusing the caches
// PredictFirstPass populated. Subtrees whose split-index range (spec.md
// §3) contains no occurrence of permSplitID, and which no Split on
// permSplitID lies above, receive the same rows as in the first pass and
// replay their cached leaf predictions directly; every other subtree is
// re-split and re-walked.
func (t *Tree) PredictPermuted(df *frame.XDf, m mask.Mask, permSplitID int, permCol column.Column) ([]bool, error) {
	if !t.cachesPopulated {
		return nil, ErrCachesNotPopulated
	}
	rank := rankOf(m)
	out := make([]bool, m.Len())

	// moved is true once an ancestor has split on the permuted column, so
	// the rows reaching this node may differ from the cached ones.
	var walk func(nodeIdx int, mm mask.Mask, moved bool) error
	walk = func(nodeIdx int, mm mask.Mask, moved bool) error {
		n := &t.nodes[nodeIdx]

		if n.kind == leafKind {
			for _, row := range mm.Indices() {
				out[rank[row]] = n.class
			}
			return nil
		}

		if !moved && !t.mustRecurse(nodeIdx, permSplitID) {
			cacheRange := t.predsCacheRange[nodeIdx]
			for _, e := range t.predsCache[cacheRange[0]:cacheRange[1]] {
				out[rank[e.row]] = e.class
			}
			return nil
		}

		var col column.Column
		var err error
		if n.splitID == permSplitID {
			col = permCol
		} else {
			col, err = df.Column(n.splitID)
			if err != nil {
				return err
			}
		}
		left, right := col.SplitWithPivot(mm, n.pivot)
		childMoved := moved || n.splitID == permSplitID
		if err := walk(n.left, left, childMoved); err != nil {
			return err
		}
		return walk(n.right, right, childMoved)
	}

	if err := walk(t.Root(), m, false); err != nil {
		return nil, err
	}
	return out, nil
}

// mustRecurse reports whether some post-order occurrence of permSplitID
// lies in node's cached split-index range [start, own], as recorded by
// PredictFirstPass. start is the counter value before the subtree was
// entered (the post-order number of the node visited just before it),
// so the test can also report true for a subtree that does not itself
// split on permSplitID; re-walking such a subtree yields the same
// predictions as replaying it. occurrences is always sorted ascending
// because post-order numbers only increase as the first pass walk
// proceeds.
func (t *Tree) mustRecurse(nodeIdx, permSplitID int) bool {
	occurrences, ok := t.splitMaskMap[permSplitID]
	if !ok {
		return false
	}
	bounds := t.splitIdxCacheRange[nodeIdx]
	i := sort.SearchInts(occurrences, bounds[0])
	return i < len(occurrences) && occurrences[i] <= bounds[1]
}
