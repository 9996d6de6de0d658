package rng

import "errors"

// Sentinel errors for the rng package. As in the rest of this module,
// Configuration-class errors indicate invalid caller arguments and are
// fatal at the call site; callers should not retry without fixing the
// input.
var (
	// ErrZeroIncrement indicates a PRNG was constructed with increment == 0.
	ErrZeroIncrement = errors.New("rng: increment must be greater than zero")

	// ErrSampleTooLarge indicates Sample was asked for more items than
	// are available to draw from (k > n).
	ErrSampleTooLarge = errors.New("rng: k exceeds n")

	// ErrNegativeSize indicates a negative population size was passed to
	// Sample or a negative fraction/size to a random-draw helper.
	ErrNegativeSize = errors.New("rng: n and k must be non-negative")
)
