package codec

import (
	"fmt"
	"math"

	"github.com/HaseebLUMS/adaptive-fp-encoding/errs"
)

// EncodeValue splits a single float32 into its primary and residual values.
//
// The input is reinterpreted as a raw 32-bit pattern (math.Float32bits), so
// NaN payloads, infinities, signed zeros and subnormals pass through
// unchanged. The primary value packs sign : exponent : high mantissa bits
// into the low PrimaryWidth() bits; the residual value holds the low
// ResidualMantissaBits() bits of the mantissa.
func (c Codec) EncodeValue(val float32) (primary uint32, residual uint32) {
	raw := math.Float32bits(val)

	sign := (raw >> signShift) & 0x1
	exponent := (raw >> exponentShift) & exponentMask
	mantissa := raw & mantissaMask

	primary = (sign << (ExponentBits + c.primaryBits)) | (exponent << c.primaryBits) | (mantissa >> c.residualBits)
	residual = mantissa & (1<<c.residualBits - 1)

	return primary, residual
}

// DecodeValue reconstructs the exact original float32 from a primary value
// and its matching residual value.
//
// Precondition: residual must fit within ResidualMantissaBits() bits.
// Residual values produced by EncodeValue always satisfy this; out-of-range
// residuals are caller misuse and yield an unspecified result.
func (c Codec) DecodeValue(primary, residual uint32) float32 {
	mantissa := (c.primaryMantissa(primary) << c.residualBits) | residual

	return math.Float32frombits(c.assemble(primary, mantissa))
}

// DecodeLowValue reconstructs an approximation of the original float32 from
// the primary value alone, treating the discarded residual bits as zero.
//
// Sign and exponent are always exact; the result equals the original value
// when and only when the original residual was zero.
func (c Codec) DecodeLowValue(primary uint32) float32 {
	mantissa := c.primaryMantissa(primary) << c.residualBits

	return math.Float32frombits(c.assemble(primary, mantissa))
}

// Encode splits a sequence of float32 values into index-aligned primary and
// residual streams of the same length as the input.
//
// The returned slices are newly allocated and owned by the caller; the
// input is not modified. Every 32-bit pattern is valid input, so Encode
// never fails.
//
// Parameters:
//   - values: Input float32 sequence (may be empty)
//
// Returns:
//   - primary: Packed sign/exponent/high-mantissa values, one per input
//   - residual: Low mantissa bits, one per input
func (c Codec) Encode(values []float32) (primary []uint32, residual []uint32) {
	if len(values) == 0 {
		return nil, nil
	}

	primary = make([]uint32, len(values))
	residual = make([]uint32, len(values))
	for i, val := range values {
		primary[i], residual[i] = c.EncodeValue(val)
	}

	return primary, residual
}

// Decode losslessly reconstructs the original float32 sequence from
// index-aligned primary and residual streams.
//
// The round trip Decode(Encode(values)) is bit-exact for all 2^32 float32
// patterns, because every original mantissa bit is recoverable from the two
// streams.
//
// Parameters:
//   - primary: Primary stream produced by Encode
//   - residual: Residual stream produced by Encode, same length as primary
//
// Returns:
//   - []float32: Reconstructed values, owned by the caller.
//   - error: errs.ErrLengthMismatch if the streams differ in length; no
//     partial results are returned.
func (c Codec) Decode(primary, residual []uint32) ([]float32, error) {
	if len(primary) != len(residual) {
		return nil, fmt.Errorf("%w: primary has %d values, residual has %d",
			errs.ErrLengthMismatch, len(primary), len(residual))
	}

	if len(primary) == 0 {
		return nil, nil
	}

	values := make([]float32, len(primary))
	for i := range primary {
		values[i] = c.DecodeValue(primary[i], residual[i])
	}

	return values, nil
}

// DecodeLow reconstructs an approximation of the original sequence from the
// primary stream alone, assuming all residual bits are zero.
//
// For each value the relative error is at most 2^-PrimaryMantissaBits();
// sign and exponent are always exact. DecodeLow never fails.
func (c Codec) DecodeLow(primary []uint32) []float32 {
	if len(primary) == 0 {
		return nil
	}

	values := make([]float32, len(primary))
	for i, p := range primary {
		values[i] = c.DecodeLowValue(p)
	}

	return values
}

// primaryMantissa extracts the high mantissa bits from a primary value.
func (c Codec) primaryMantissa(primary uint32) uint32 {
	return primary & (1<<c.primaryBits - 1)
}

// assemble rebuilds a raw float32 bit pattern from the sign and exponent
// carried in a primary value and a full 23-bit mantissa.
func (c Codec) assemble(primary, mantissa uint32) uint32 {
	exponent := (primary >> c.primaryBits) & exponentMask
	sign := (primary >> (ExponentBits + c.primaryBits)) & 0x1

	return (sign << signShift) | (exponent << exponentShift) | mantissa
}
