package tree_test

import (
	"testing"

	"github.com/katalvlaran/rforest/column"
	"github.com/katalvlaran/rforest/frame"
	"github.com/katalvlaran/rforest/mask"
	"github.com/katalvlaran/rforest/response"
	"github.com/katalvlaran/rforest/rng"
	"github.com/katalvlaran/rforest/tree"
	"github.com/stretchr/testify/require"
)

func mustCol(t *testing.T, raw []int8) column.Column {
	t.Helper()
	c, err := column.New(raw)
	require.NoError(t, err)
	return c
}

// buildFixture returns a 16-row, 2-column frame where the response is
// a deterministic function of column 0 only; column 1 is unrelated
// noise, so a tree split on it should carry zero or near-zero
// importance.
func buildFixture(t *testing.T) (*frame.XDf, response.YBool) {
	t.Helper()
	x0 := []int8{0, 1, 2, 0, 1, 2, 0, 1, 2, 0, 1, 2, 0, 1, 2, 0}
	x1 := []int8{1, 1, 0, 0, 2, 2, 1, 0, 2, 1, 0, 2, 1, 0, 2, 1}
	y := make([]bool, 16)
	for i, v := range x0 {
		y[i] = v == 1
	}

	df := frame.New([]column.Column{mustCol(t, x0), mustCol(t, x1)})
	return df, response.New(y)
}

func TestBuildArenaTopology(t *testing.T) {
	df, y := buildFixture(t)
	treeRng, err := rng.New(1, 1)
	require.NoError(t, err)
	factory := rng.NewFactory(1, df.Ncol(), 1)

	tr, err := tree.Build(df, y, mask.Full(df.Nrow()), tree.BuildOptions{Mtry: 2}, treeRng, factory)
	require.NoError(t, err)
	require.Equal(t, tr.NodeCount()-1, tr.Root())

	for i := 0; i < tr.NodeCount(); i++ {
		isLeaf, left, right := tr.Node(i)
		if !isLeaf {
			require.Less(t, left, i)
			require.Less(t, right, i)
		}
	}
}

func TestBuildEmptyBagFails(t *testing.T) {
	df, y := buildFixture(t)
	treeRng, _ := rng.New(1, 1)
	factory := rng.NewFactory(1, df.Ncol(), 1)
	_, err := tree.Build(df, y, mask.New(nil), tree.BuildOptions{Mtry: 1}, treeRng, factory)
	require.ErrorIs(t, err, tree.ErrEmptyBag)
}

func TestPredictPermutedRequiresFirstPass(t *testing.T) {
	df, y := buildFixture(t)
	treeRng, _ := rng.New(1, 1)
	factory := rng.NewFactory(1, df.Ncol(), 1)
	tr, err := tree.Build(df, y, mask.Full(df.Nrow()), tree.BuildOptions{Mtry: 2}, treeRng, factory)
	require.NoError(t, err)

	col, err := df.Column(0)
	require.NoError(t, err)
	_, err = tr.PredictPermuted(df, mask.Full(df.Nrow()), 0, col)
	require.ErrorIs(t, err, tree.ErrCachesNotPopulated)
}

// TestCachedVsUncachedEquivalence reproduces spec.md property #7: the
// cached permuted-predict output must equal a from-scratch predict on
// a DataFrame where the target column has been wholesale replaced by
// its permuted version.
func TestCachedVsUncachedEquivalence(t *testing.T) {
	df, y := buildFixture(t)
	full := mask.Full(df.Nrow())
	treeRng, err := rng.New(2, 2)
	require.NoError(t, err)
	factory := rng.NewFactory(2, df.Ncol(), 1)

	tr, err := tree.Build(df, y, full, tree.BuildOptions{Mtry: 2}, treeRng, factory)
	require.NoError(t, err)

	oob := mask.New([]int{0, 2, 4, 6, 8, 10, 12, 14})
	_, err = tr.PredictFirstPass(df, oob)
	require.NoError(t, err)

	for _, splitID := range []int{0, 1} {
		permRng := factory.Permutation(0, splitID)
		col, err := df.Column(splitID)
		require.NoError(t, err)
		permuted := col.Permute(permRng, oob)

		cachedOut, err := tr.PredictPermuted(df, oob, splitID, permuted)
		require.NoError(t, err)

		// From-scratch: rebuild a DataFrame where this column is
		// wholesale replaced by the permuted values, then run a fresh
		// first pass against the SAME tree structure.
		cols := []column.Column{mustColRaw(t, df, 0), mustColRaw(t, df, 1)}
		cols[splitID] = permuted
		df2 := frame.New(cols)

		scratch := &tree.Tree{}
		*scratch = *tr // shares the node arena; caches get overwritten below
		freshOut, err := scratch.PredictFirstPass(df2, oob)
		require.NoError(t, err)

		require.Equal(t, freshOut, cachedOut, "split-id %d", splitID)
	}
}

func mustColRaw(t *testing.T, df *frame.XDf, splitID int) column.Column {
	t.Helper()
	c, err := df.Column(splitID)
	require.NoError(t, err)
	return c
}

func TestImportanceAbsentColumnsOmitted(t *testing.T) {
	df, y := buildFixture(t)
	treeRng, err := rng.New(3, 3)
	require.NoError(t, err)
	factory := rng.NewFactory(3, df.Ncol(), 1)

	maxDepth := 0
	tr, err := tree.Build(df, y, mask.Full(df.Nrow()), tree.BuildOptions{Mtry: 2, MaxDepth: &maxDepth}, treeRng, factory)
	require.NoError(t, err)

	oob := mask.New([]int{1, 3, 5, 7})
	imp, err := tr.Importance(df, y, oob, factory, 0)
	require.NoError(t, err)
	require.Empty(t, imp) // depth-0 tree is a single leaf; no splits used
}

func TestImportanceSignalColumn(t *testing.T) {
	df, y := buildFixture(t)
	treeRng, err := rng.New(5, 5)
	require.NoError(t, err)
	factory := rng.NewFactory(5, df.Ncol(), 1)

	bag := mask.New([]int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9})
	oob := bag.Complement(df.Nrow())

	tr, err := tree.Build(df, y, bag, tree.BuildOptions{Mtry: 2}, treeRng, factory)
	require.NoError(t, err)

	imp, err := tr.Importance(df, y, oob, factory, 0)
	require.NoError(t, err)
	for splitID, v := range imp {
		require.GreaterOrEqual(t, v, -oob.Len())
		require.LessOrEqual(t, v, oob.Len())
		_ = splitID
	}
}
