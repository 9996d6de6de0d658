package mask

import "errors"

var (
	// ErrNotSorted indicates an internal invariant violation: a Mask's
	// backing slice was found unsorted. This should never happen through
	// the public API and indicates a bug in this package.
	ErrNotSorted = errors.New("mask: indices are not sorted")

	// ErrOutOfRange indicates a requested row index lies outside the
	// declared row space of a Mask operation.
	ErrOutOfRange = errors.New("mask: index out of range")
)
