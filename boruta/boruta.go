package boruta

import (
	"math"
	"sort"

	"github.com/google/uuid"

	"github.com/katalvlaran/rforest/forest"
	"github.com/katalvlaran/rforest/frame"
	"github.com/katalvlaran/rforest/response"
	"github.com/katalvlaran/rforest/rng"
)

// Run iterates the Boruta all-relevant feature-selection procedure
// over df/y until every column has left the tentative set or cfg.MaxRuns
// is exhausted, whichever comes first (spec.md §4.9).
func Run(df *frame.XDf, y response.YBool, cfg Config) (Result, error) {
	if err := cfg.validate(); err != nil {
		return Result{}, err
	}
	if df.Ncol() == 0 {
		return Result{}, ErrNoColumns
	}

	tentative := toSet(df.GetColIDs())
	confirmed := make(map[int]bool)
	rejected := make(map[int]bool)
	hits := make(map[int]int)

	for iter := 1; iter <= cfg.MaxRuns && len(tentative) > 0; iter++ {
		active := append(sortedKeys(tentative), sortedKeys(confirmed)...)
		sort.Ints(active)

		curDf, err := df.Subset(active)
		if err != nil {
			return Result{}, err
		}

		baseMax := maxID(curDf.GetColIDs())
		iterSeed := cfg.Seed + uint64(iter)

		addFactory := rng.NewFactory(iterSeed, curDf.Ncol(), cfg.Ntree)
		if err := curDf.AddShadows(addFactory); err != nil {
			return Result{}, err
		}

		var shadowIDs []int
		for _, id := range curDf.GetColIDs() {
			if id > baseMax {
				shadowIDs = append(shadowIDs, id)
			}
		}

		mtry := int(math.Sqrt(float64(curDf.Ncol())))
		if mtry < 1 {
			mtry = 1
		}

		zscores, err := forest.New(iterSeed).ZScore(curDf, y, forest.Params{
			Ntree:      cfg.Ntree,
			Mtry:       mtry,
			ShadowVars: false,
		})
		if err != nil {
			return Result{}, err
		}

		maxShadowZ := -1.0
		for _, id := range shadowIDs {
			if v, ok := zscores[id]; ok && v > maxShadowZ {
				maxShadowZ = v
			}
		}

		for id := range tentative {
			if v, ok := zscores[id]; ok && v > maxShadowZ {
				hits[id]++
			}
		}
		for id := range confirmed {
			if v, ok := zscores[id]; ok && v > maxShadowZ {
				hits[id]++
			}
		}

		pBound := cfg.PvalThreshold / float64(len(tentative))
		var newlyRejected, newlyConfirmed []int
		for id := range tentative {
			h := hits[id]
			switch {
			case binomCDF(h, iter, 0.5) < pBound:
				newlyRejected = append(newlyRejected, id)
			case h > 0 && binomCDF(h-1, iter, 0.5) > 1-pBound:
				newlyConfirmed = append(newlyConfirmed, id)
			}
		}
		for _, id := range newlyRejected {
			delete(tentative, id)
			rejected[id] = true
		}
		for _, id := range newlyConfirmed {
			delete(tentative, id)
			confirmed[id] = true
		}
	}

	return Result{
		Confirmed: sortedKeys(confirmed),
		Rejected:  sortedKeys(rejected),
		Tentative: sortedKeys(tentative),
		RunID:     uuid.New(),
	}, nil
}

func toSet(ids []int) map[int]bool {
	out := make(map[int]bool, len(ids))
	for _, id := range ids {
		out[id] = true
	}
	return out
}

func sortedKeys(m map[int]bool) []int {
	out := make([]int, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Ints(out)
	return out
}

func maxID(ids []int) int {
	max := -1
	for _, id := range ids {
		if id > max {
			max = id
		}
	}
	return max
}
