package ginisplit_test

import (
	"testing"

	"github.com/katalvlaran/rforest/ginisplit"
	"github.com/stretchr/testify/require"
)

func TestScoreEmptyMask(t *testing.T) {
	_, err := ginisplit.Score(nil, nil, nil)
	require.ErrorIs(t, err, ginisplit.ErrEmptyMask)
}

// TestScoreS2 reproduces spec.md scenario S2: gen_optimal_pivot on
// x=[0,2,2,1,1,0,2,0,1], y=[F,T,T,F,T,F,T,T,F] over the full mask
// should select NotBlue with cost 6/9 - (16+4)/6/9.
func TestScoreS2(t *testing.T) {
	x := []int8{0, 2, 2, 1, 1, 0, 2, 0, 1}
	y := []bool{false, true, true, false, true, false, true, true, false}
	rows := []int{0, 1, 2, 3, 4, 5, 6, 7, 8}

	got, err := ginisplit.Score(x, y, rows)
	require.NoError(t, err)

	wantBlue := 6.0/9.0 - (16.0+4.0)/6.0/9.0
	require.InDelta(t, wantBlue, got.Blue, 1e-12)
	require.Less(t, got.Blue, got.Red)
	require.Less(t, got.Blue, got.Green)
}

func TestGiniPartZeroWhenEmptyCell(t *testing.T) {
	x := []int8{0, 0, 0}
	y := []bool{true, true, false}
	got, err := ginisplit.Score(x, y, []int{0, 1, 2})
	require.NoError(t, err)
	// Green and Blue never occur among the rows: their gIn term is 0,
	// so their cost reduces to gOut alone.
	require.InDelta(t, 1.0-5.0/9.0, got.Green, 1e-12)
}
