package ginisplit

import "errors"

var (
	// ErrEmptyMask indicates Score was called with zero rows; a Gini
	// score is undefined over an empty partition.
	ErrEmptyMask = errors.New("ginisplit: mask must be non-empty")
)
