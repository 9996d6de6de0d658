package tree

import "errors"

var (
	// ErrCachesNotPopulated indicates PredictPermuted was called before
	// PredictFirstPass ever ran on this tree.
	ErrCachesNotPopulated = errors.New("tree: prediction caches not populated; call PredictFirstPass first")

	// ErrEmptyBag indicates Build was asked to grow a tree from an
	// empty row mask.
	ErrEmptyBag = errors.New("tree: in-sample mask must be non-empty")
)
