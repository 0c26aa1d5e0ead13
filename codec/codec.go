package codec

import (
	"fmt"
	"math"

	"github.com/HaseebLUMS/adaptive-fp-encoding/errs"
)

const (
	// MantissaBits is the width of the IEEE-754 float32 mantissa field.
	MantissaBits = 23
	// ExponentBits is the width of the IEEE-754 float32 exponent field.
	ExponentBits = 8

	signShift     = 31
	exponentShift = 23
	exponentMask  = 0xFF
	mantissaMask  = 0x7FFFFF
)

// Codec holds the immutable mantissa bit-split derived from the aggression
// parameter at construction.
//
// The zero value is not usable; create instances with New. A Codec is
// returned by value for optimal performance:
//   - Zero heap allocations (stack-only, no GC pressure)
//   - Small struct fits in CPU registers
//   - Immutable after construction, safe for concurrent use
type Codec struct {
	aggression   float64
	primaryBits  int
	residualBits int
}

// New creates a Codec for the given aggression value.
//
// The aggression parameter controls how many of the 23 mantissa bits are
// pushed into the residual stream:
//   - 0.0: all 23 mantissa bits stay in the primary stream (lossless primary)
//   - 1.0: all 23 mantissa bits move to the residual stream
//   - 0.5: 12 bits primary, 11 bits residual (11.5 rounds up)
//
// The split uses round-half-away-from-zero semantics (math.Round).
//
// Parameters:
//   - aggression: Split tuning parameter, must be within [0.0, 1.0]
//
// Returns:
//   - Codec: The configured codec value.
//   - error: errs.ErrInvalidAggression if aggression is NaN or outside [0.0, 1.0].
func New(aggression float64) (Codec, error) {
	if math.IsNaN(aggression) || aggression < 0.0 || aggression > 1.0 {
		return Codec{}, fmt.Errorf("%w: %v is not within [0.0, 1.0]", errs.ErrInvalidAggression, aggression)
	}

	primaryBits := int(math.Round((1.0 - aggression) * MantissaBits))

	return Codec{
		aggression:   aggression,
		primaryBits:  primaryBits,
		residualBits: MantissaBits - primaryBits,
	}, nil
}

// Aggression returns the aggression value the codec was constructed with.
func (c Codec) Aggression() float64 {
	return c.aggression
}

// PrimaryMantissaBits returns the number of mantissa bits kept in the
// primary stream. Always in [0, 23].
func (c Codec) PrimaryMantissaBits() int {
	return c.primaryBits
}

// ResidualMantissaBits returns the number of mantissa bits stored in the
// residual stream. Always equals 23 - PrimaryMantissaBits().
func (c Codec) ResidualMantissaBits() int {
	return c.residualBits
}

// PrimaryWidth returns the total bit width of each primary value:
// 1 sign bit + 8 exponent bits + PrimaryMantissaBits(). Always in [9, 32].
func (c Codec) PrimaryWidth() int {
	return 1 + ExponentBits + c.primaryBits
}
