package relate

import "errors"

var (
	// ErrTooFewLines indicates Analyze received fewer than two lines;
	// no pair processing starts.
	ErrTooFewLines = errors.New("relate: need at least two lines")
	// ErrBadOptions indicates a nonsensical option value (Workers < 0).
	ErrBadOptions = errors.New("relate: workers must be >= 0")
	// ErrInvariant indicates a routine was called outside its documented
	// precondition, e.g. Intersection on a pair whose determinant is zero.
	// It signals a classifier bug upstream, never bad user input.
	ErrInvariant = errors.New("relate: classification invariant violated")
)
