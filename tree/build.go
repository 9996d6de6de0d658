package tree

import (
	"github.com/katalvlaran/rforest/frame"
	"github.com/katalvlaran/rforest/mask"
	"github.com/katalvlaran/rforest/response"
	"github.com/katalvlaran/rforest/rng"
)

// BuildOptions configures a single tree's construction. MaxDepth of
// nil means unbounded (grow until pure or until a split leaves an
// empty side).
type BuildOptions struct {
	Mtry       int
	MaxDepth   *int
	ShadowVars bool
}

// Build grows a tree recursively over bag (the tree's in-sample row
// mask), writing nodes in post-order so the tree root ends up as the
// last arena entry. treeRng drives structural randomness (majority-
// vote tie-breaks, FindMinIdx's Algorithm L candidate draw); factory
// supplies the shadow-probe permutation streams FindMinIdx needs when
// opts.ShadowVars is set.
func Build(df *frame.XDf, y response.YBool, bag mask.Mask, opts BuildOptions, treeRng *rng.PRNG, factory *rng.Factory) (*Tree, error) {
	if bag.Len() == 0 {
		return nil, ErrEmptyBag
	}
	t := &Tree{}
	_, err := t.buildNode(df, y, bag, 0, opts, treeRng, factory)
	if err != nil {
		return nil, err
	}
	return t, nil
}

func (t *Tree) buildNode(df *frame.XDf, y response.YBool, m mask.Mask, depth int, opts BuildOptions, treeRng *rng.PRNG, factory *rng.Factory) (int, error) {
	if class, ok := y.Class(m); ok {
		return t.appendLeaf(class), nil
	}

	if opts.MaxDepth != nil && depth >= *opts.MaxDepth {
		majority, err := y.Majority(m, treeRng)
		if err != nil {
			return 0, err
		}
		return t.appendLeaf(majority), nil
	}

	cand, err := df.FindMinIdx(m, y.Values(), opts.Mtry, treeRng, factory, opts.ShadowVars)
	if err != nil {
		return 0, err
	}

	left, right, err := df.MakeSplit(cand.SplitID, m, cand.Pivot, cand.PermutedColumn)
	if err != nil {
		return 0, err
	}

	if left.Len() == 0 || right.Len() == 0 {
		majority, err := y.Majority(m, treeRng)
		if err != nil {
			return 0, err
		}
		return t.appendLeaf(majority), nil
	}

	leftIdx, err := t.buildNode(df, y, left, depth+1, opts, treeRng, factory)
	if err != nil {
		return 0, err
	}
	rightIdx, err := t.buildNode(df, y, right, depth+1, opts, treeRng, factory)
	if err != nil {
		return 0, err
	}

	return t.appendSplit(cand.SplitID, cand.Pivot, leftIdx, rightIdx), nil
}
