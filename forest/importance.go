package forest

import (
	"math"

	"github.com/katalvlaran/rforest/frame"
	"github.com/katalvlaran/rforest/response"
)

// bagSize mirrors mask.Random's row-count formula so aggregation can
// recover oob_n without re-deriving any mask.
func bagSize(nrow int) int {
	return int(float64(nrow) * bagFraction)
}

// Importance builds p.Ntree trees and returns, for every split-id used
// by at least one tree, the mean per-tree importance divided by the
// out-of-bag sample count (spec.md §4.8 "importance"). Columns no tree
// ever split on are absent from the result, not present with a zero.
func (f *Forest) Importance(df *frame.XDf, y response.YBool, p Params) (map[int]float64, error) {
	perTree, err := f.ImportancePerTree(df, y, p)
	if err != nil {
		return nil, err
	}
	return aggregateMean(perTree, df.Nrow()), nil
}

// ZScore builds p.Ntree trees and returns, for every split-id used by
// at least one tree, mean(importance) / stddev(importance) across
// trees, using the population (divide-by-n) variance per spec.md Open
// Question Q4 -- NOT the sample (n-1) variance, since the per-tree
// importances are the entire population of interest for this forest,
// not a sample drawn from a larger one. Columns with zero variance
// (e.g. a single tree, or a column whose delta never varies) are
// omitted rather than dividing by zero.
func (f *Forest) ZScore(df *frame.XDf, y response.YBool, p Params) (map[int]float64, error) {
	perTree, err := f.ImportancePerTree(df, y, p)
	if err != nil {
		return nil, err
	}
	return aggregateZScore(perTree), nil
}

func aggregateMean(perTree []map[int]int, nrow int) map[int]float64 {
	oobN := float64(nrow - bagSize(nrow))
	sums := make(map[int]float64)
	counts := make(map[int]int)
	for _, m := range perTree {
		for id, v := range m {
			sums[id] += float64(v)
			counts[id]++
		}
	}

	out := make(map[int]float64, len(sums))
	for id, sum := range sums {
		mean := sum / float64(counts[id])
		if oobN == 0 {
			out[id] = 0
			continue
		}
		out[id] = mean / oobN
	}
	return out
}

func aggregateZScore(perTree []map[int]int) map[int]float64 {
	values := make(map[int][]float64)
	for _, m := range perTree {
		for id, v := range m {
			values[id] = append(values[id], float64(v))
		}
	}

	out := make(map[int]float64, len(values))
	for id, vs := range values {
		mean := meanOf(vs)
		variance := populationVariance(vs, mean)
		if variance == 0 {
			continue
		}
		out[id] = mean / math.Sqrt(variance)
	}
	return out
}

func meanOf(vs []float64) float64 {
	sum := 0.0
	for _, v := range vs {
		sum += v
	}
	return sum / float64(len(vs))
}

// populationVariance divides by len(vs), not len(vs)-1: per spec.md
// Open Question Q4, the per-tree deltas are the whole population being
// summarized, not a sample estimating a larger one.
func populationVariance(vs []float64, mean float64) float64 {
	sum := 0.0
	for _, v := range vs {
		d := v - mean
		sum += d * d
	}
	return sum / float64(len(vs))
}
