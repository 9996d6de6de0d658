package response

import "errors"

var (
	// ErrLengthMismatch indicates a prediction vector's length does not
	// match the mask it is being scored against.
	ErrLengthMismatch = errors.New("response: prediction length does not match mask")

	// ErrEmptyMask indicates Majority was asked to summarize an empty row
	// set. (Class reports an empty set as (false, false), not an error.)
	ErrEmptyMask = errors.New("response: mask must be non-empty")
)
