package frame_test

import (
	"testing"

	"github.com/katalvlaran/rforest/column"
	"github.com/katalvlaran/rforest/frame"
	"github.com/katalvlaran/rforest/mask"
	"github.com/katalvlaran/rforest/rng"
	"github.com/stretchr/testify/require"
)

func mustCol(t *testing.T, raw []int8) column.Column {
	t.Helper()
	c, err := column.New(raw)
	require.NoError(t, err)
	return c
}

func smallFrame(t *testing.T) *frame.XDf {
	t.Helper()
	c1 := mustCol(t, []int8{0, 1, 2, 0, 1, 2, 0, 1})
	c2 := mustCol(t, []int8{1, 1, 0, 0, 2, 2, 1, 0})
	c3 := mustCol(t, []int8{2, 0, 1, 2, 0, 1, 2, 0})
	return frame.New([]column.Column{c1, c2, c3})
}

func TestGetColIDsInitial(t *testing.T) {
	df := smallFrame(t)
	require.Equal(t, []int{0, 1, 2}, df.GetColIDs())
}

func TestSubsetIdempotence(t *testing.T) {
	df := smallFrame(t)
	ids := df.GetColIDs()
	sub, err := df.Subset(ids)
	require.NoError(t, err)
	require.Equal(t, ids, sub.GetColIDs())
}

func TestSubsetPreservesSplitIDsAndOrder(t *testing.T) {
	df := smallFrame(t)
	sub, err := df.Subset([]int{2, 0})
	require.NoError(t, err)
	require.Equal(t, []int{2, 0}, sub.GetColIDs())
}

func TestSubsetUnknownSplitID(t *testing.T) {
	df := smallFrame(t)
	_, err := df.Subset([]int{99})
	require.ErrorIs(t, err, frame.ErrUnknownSplitID)
}

func TestAddShadowsUniqueness(t *testing.T) {
	df := smallFrame(t)
	factory := rng.NewFactory(7, df.Ncol(), 1)
	require.NoError(t, df.AddShadows(factory))

	ids := df.GetColIDs()
	seen := map[int]bool{}
	for _, id := range ids {
		require.False(t, seen[id], "duplicate split-id %d", id)
		seen[id] = true
	}
	// 3 columns -> doubling 3 -> 6 >= 5, so 6 shadows appended.
	require.Equal(t, 3+6, len(ids))
}

func TestAddShadowsNewIDsExceedExisting(t *testing.T) {
	df := smallFrame(t)
	factory := rng.NewFactory(7, df.Ncol(), 1)
	require.NoError(t, df.AddShadows(factory))

	ids := df.GetColIDs()
	for _, id := range ids[3:] {
		require.Greater(t, id, 2)
	}
}

func TestFindMinIdxPicksValidCandidate(t *testing.T) {
	df := smallFrame(t)
	labels := []bool{false, true, true, false, true, false, true, false}
	treeRng, err := rng.New(3, 1)
	require.NoError(t, err)
	factory := rng.NewFactory(3, df.Ncol(), 1)

	cand, err := df.FindMinIdx(mask.Full(8), labels, 2, treeRng, factory, false)
	require.NoError(t, err)
	require.Contains(t, df.GetColIDs(), cand.SplitID)
	require.Nil(t, cand.PermutedColumn)
}

func TestFindMinIdxInvalidMtry(t *testing.T) {
	df := smallFrame(t)
	treeRng, _ := rng.New(1, 1)
	factory := rng.NewFactory(1, df.Ncol(), 1)
	_, err := df.FindMinIdx(mask.Full(8), make([]bool, 8), 0, treeRng, factory, false)
	require.ErrorIs(t, err, frame.ErrInvalidMtry)
}

func TestMakeSplitPartitionsMask(t *testing.T) {
	df := smallFrame(t)
	left, right, err := df.MakeSplit(0, mask.Full(8), column.NotRed, nil)
	require.NoError(t, err)
	require.Equal(t, 8, left.Len()+right.Len())
}

func TestPermuteIndexIsDeterministic(t *testing.T) {
	df := smallFrame(t)
	factory := rng.NewFactory(9, df.Ncol(), 2)
	oob := mask.New([]int{1, 3, 5, 7})

	c1, err := df.PermuteIndex(1, factory, oob, 0)
	require.NoError(t, err)
	c2, err := df.PermuteIndex(1, factory, oob, 0)
	require.NoError(t, err)
	require.Equal(t, c1.Raw(), c2.Raw())
}
