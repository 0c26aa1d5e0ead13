// Package errs defines the sentinel errors returned by the codec and its
// encoders.
//
// All errors are wrapped with contextual detail at the call site using
// fmt.Errorf("%w: ...", ...), so callers should match them with errors.Is:
//
//	c, err := codec.New(1.5)
//	if errors.Is(err, errs.ErrInvalidAggression) {
//	    // handle invalid configuration
//	}
package errs

import "errors"

var (
	// ErrInvalidAggression is returned when a codec is constructed with an
	// aggression value outside the closed interval [0.0, 1.0].
	ErrInvalidAggression = errors.New("aggression out of range")

	// ErrLengthMismatch is returned when decoding is attempted with primary
	// and residual streams of differing lengths.
	ErrLengthMismatch = errors.New("primary/residual length mismatch")
)
