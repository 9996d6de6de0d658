package tree

import (
	"github.com/katalvlaran/rforest/frame"
	"github.com/katalvlaran/rforest/mask"
	"github.com/katalvlaran/rforest/response"
	"github.com/katalvlaran/rforest/rng"
)

// Importance computes this tree's permutation importance for every
// split-id it actually used, against the out-of-bag mask oob. treeIdx
// selects the tree's permutation streams from factory (spec.md §4.2).
//
// For each used column c: baseline predictions are computed once
// (populating this tree's caches via PredictFirstPass), then column c
// is permuted on oob and re-predicted via PredictPermuted, which only
// re-walks the subtrees whose paths actually test c. The signed delta
// in error count is c's importance for this tree. Columns this tree
// never split on are absent from the result.
func (t *Tree) Importance(df *frame.XDf, y response.YBool, oob mask.Mask, factory *rng.Factory, treeIdx int) (map[int]int, error) {
	baseline, err := t.PredictFirstPass(df, oob)
	if err != nil {
		return nil, err
	}
	baseErr, err := y.ErrorCount(oob, baseline)
	if err != nil {
		return nil, err
	}

	importance := make(map[int]int)
	seen := make(map[int]bool)
	for _, splitID := range t.splitCols {
		if seen[splitID] {
			continue
		}
		seen[splitID] = true

		permuted, err := df.PermuteIndex(splitID, factory, oob, treeIdx)
		if err != nil {
			return nil, err
		}
		preds, err := t.PredictPermuted(df, oob, splitID, permuted)
		if err != nil {
			return nil, err
		}
		errCount, err := y.ErrorCount(oob, preds)
		if err != nil {
			return nil, err
		}
		importance[splitID] = errCount - baseErr
	}
	return importance, nil
}
