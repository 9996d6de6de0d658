package response_test

import (
	"testing"

	"github.com/katalvlaran/rforest/mask"
	"github.com/katalvlaran/rforest/response"
	"github.com/katalvlaran/rforest/rng"
	"github.com/stretchr/testify/require"
)

func TestClassUniform(t *testing.T) {
	y := response.New([]bool{true, true, true, false})
	m := mask.New([]int{0, 1, 2})
	b, ok := y.Class(m)
	require.True(t, ok)
	require.True(t, b)
}

func TestClassMixed(t *testing.T) {
	y := response.New([]bool{true, false})
	m := mask.New([]int{0, 1})
	_, ok := y.Class(m)
	require.False(t, ok)
}

func TestMajorityNoTie(t *testing.T) {
	y := response.New([]bool{true, true, false})
	r, err := rng.New(1, 1)
	require.NoError(t, err)
	got, err := y.Majority(mask.New([]int{0, 1, 2}), r)
	require.NoError(t, err)
	require.True(t, got)
}

func TestMajorityTieIsDeterministic(t *testing.T) {
	y := response.New([]bool{true, false})
	m := mask.New([]int{0, 1})

	r1, err := rng.New(4, 4)
	require.NoError(t, err)
	r2, err := rng.New(4, 4)
	require.NoError(t, err)

	got1, err := y.Majority(m, r1)
	require.NoError(t, err)
	got2, err := y.Majority(m, r2)
	require.NoError(t, err)
	require.Equal(t, got1, got2)
}

func TestMajorityEmptyMask(t *testing.T) {
	y := response.New([]bool{true})
	r, _ := rng.New(1, 1)
	_, err := y.Majority(mask.New(nil), r)
	require.ErrorIs(t, err, response.ErrEmptyMask)
}

func TestErrorCount(t *testing.T) {
	y := response.New([]bool{true, false, true, false})
	m := mask.New([]int{0, 1, 2, 3})
	preds := []bool{true, true, true, true}
	n, err := y.ErrorCount(m, preds)
	require.NoError(t, err)
	require.Equal(t, 2, n)
}

func TestErrorCountLengthMismatch(t *testing.T) {
	y := response.New([]bool{true, false})
	m := mask.New([]int{0, 1})
	_, err := y.ErrorCount(m, []bool{true})
	require.ErrorIs(t, err, response.ErrLengthMismatch)
}
