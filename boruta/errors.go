package boruta

import "errors"

var (
	// ErrInvalidPvalThreshold is returned when PvalThreshold is not in
	// (0, 1).
	ErrInvalidPvalThreshold = errors.New("boruta: pval_threshold must be in (0, 1)")
	// ErrInvalidMaxRuns is returned when MaxRuns is not positive.
	ErrInvalidMaxRuns = errors.New("boruta: max_runs must be positive")
	// ErrInvalidNtree is returned when Ntree is not positive.
	ErrInvalidNtree = errors.New("boruta: ntree must be positive")
	// ErrNoColumns is returned when the input frame has no columns to
	// evaluate.
	ErrNoColumns = errors.New("boruta: frame has no columns")
)
