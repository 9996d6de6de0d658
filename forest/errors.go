package forest

import "errors"

// Sentinel errors, matching the teacher's per-package error-block
// convention (core/types.go, matrix/errors.go, tsp/types.go).
var (
	// ErrInvalidNtree is returned when Ntree is not a positive integer.
	ErrInvalidNtree = errors.New("forest: ntree must be positive")
	// ErrEmptyForest names the no-trees condition. ImportancePerTree
	// rejects Ntree <= 0 with ErrInvalidNtree before any tree is built, so
	// aggregation never sees an empty forest and no function in this
	// package returns ErrEmptyForest.
	ErrEmptyForest = errors.New("forest: no trees to aggregate")
)
