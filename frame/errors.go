package frame

import "errors"

var (
	// ErrUnknownSplitID indicates a caller referenced a split-id this
	// DataFrame has never assigned.
	ErrUnknownSplitID = errors.New("frame: unknown split-id")

	// ErrInvalidMtry indicates mtry was <= 0 or larger than the
	// candidate range FindMinIdx was asked to draw from.
	ErrInvalidMtry = errors.New("frame: mtry out of range")

	// ErrNaNCost indicates a candidate split's Gini cost was NaN; this
	// is an Invariant-class error and indicates a bug upstream (e.g. an
	// empty mask slipping past the caller).
	ErrNaNCost = errors.New("frame: split cost is NaN")

	// ErrNoCandidates indicates FindMinIdx was called against a
	// DataFrame with zero columns.
	ErrNoCandidates = errors.New("frame: no candidate columns to split on")
)
