package rforest

import (
	"github.com/katalvlaran/rforest/boruta"
	"github.com/katalvlaran/rforest/forest"
	"github.com/katalvlaran/rforest/frame"
	"github.com/katalvlaran/rforest/response"
)

// ColumnID names a column by its frame split-id, plus whether it is a
// Boruta-injected shadow column. Importance and ZScore always report
// Shadow=false: shadow bookkeeping is boruta's internal concern (its
// Result already reports only original split-ids), not something the
// bare forest driver can infer from a caller-supplied frame.
type ColumnID = forest.ColumnID

// Importance builds a forest over df/y with the given seed and
// parameters and returns each used column's mean permutation
// importance (spec.md §6).
func Importance(seed uint64, df *frame.XDf, y response.YBool, p forest.Params) (map[ColumnID]float64, error) {
	raw, err := forest.New(seed).Importance(df, y, p)
	if err != nil {
		return nil, err
	}
	return tagColumnIDs(raw), nil
}

// ZScore builds a forest over df/y with the given seed and parameters
// and returns each used column's permutation-importance z-score
// (spec.md §6).
func ZScore(seed uint64, df *frame.XDf, y response.YBool, p forest.Params) (map[ColumnID]float64, error) {
	raw, err := forest.New(seed).ZScore(df, y, p)
	if err != nil {
		return nil, err
	}
	return tagColumnIDs(raw), nil
}

// RunBoruta runs the Boruta feature-selection loop over df/y (spec.md
// §6, "boruta(...)").
func RunBoruta(df *frame.XDf, y response.YBool, cfg boruta.Config) (boruta.Result, error) {
	return boruta.Run(df, y, cfg)
}

func tagColumnIDs(raw map[int]float64) map[ColumnID]float64 {
	out := make(map[ColumnID]float64, len(raw))
	for id, v := range raw {
		out[ColumnID{SplitID: id}] = v
	}
	return out
}
