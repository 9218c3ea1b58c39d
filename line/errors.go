package line

import "errors"

var (
	// ErrDegenerate indicates A and B are both within Eps of zero, so the
	// triple describes no line at all.
	ErrDegenerate = errors.New("line: A and B must not both be zero")
	// ErrNonFinite indicates a coefficient is NaN or ±Inf.
	ErrNonFinite = errors.New("line: coefficients must be finite")
)
