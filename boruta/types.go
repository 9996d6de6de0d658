package boruta

import "github.com/google/uuid"

// Config configures a Boruta run, following the teacher's plain
// doc-commented struct convention (tsp.Options).
type Config struct {
	// Seed is the top-level PRNG seed. Iteration i derives its own seed
	// as Seed + i so every iteration's forest is independently
	// reproducible without re-running earlier iterations.
	Seed uint64
	// PvalThreshold is the per-iteration significance level (e.g. 0.01).
	// It is Bonferroni-corrected by the current tentative-set size at
	// each decision step, per spec.md §4.9 step 6.
	PvalThreshold float64
	// MaxRuns bounds the number of iterations.
	MaxRuns int
	// Ntree is the number of trees built per iteration's forest.
	Ntree int
}

func (c Config) validate() error {
	if c.PvalThreshold <= 0 || c.PvalThreshold >= 1 {
		return ErrInvalidPvalThreshold
	}
	if c.MaxRuns <= 0 {
		return ErrInvalidMaxRuns
	}
	if c.Ntree <= 0 {
		return ErrInvalidNtree
	}
	return nil
}

// Result is the outcome of a Run: the three disjoint split-id sets a
// Boruta iteration loop settles into, plus a RunID correlating this
// invocation across logs (spec.md §8, domain-stack extension).
type Result struct {
	Confirmed []int
	Rejected  []int
	Tentative []int
	RunID     uuid.UUID
}
