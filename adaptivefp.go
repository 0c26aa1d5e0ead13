// Package adaptivefp provides a tunable lossy/lossless bit-splitting codec
// for float32 sequences.
//
// Each 32-bit IEEE-754 value is decomposed into a compact primary value
// (sign, full exponent, high mantissa bits) and a residual value (the low
// mantissa bits), with the split controlled by a single aggression
// parameter in [0.0, 1.0]. Both streams together reconstruct the input
// bit-for-bit; the primary stream alone yields a bounded-error
// approximation. This enables dynamic tradeoffs between stream size and
// precision for low-bandwidth transfer or lossy inference scenarios.
//
// # Basic Usage
//
// Encoding and decoding a sequence:
//
//	import adaptivefp "github.com/HaseebLUMS/adaptive-fp-encoding"
//
//	c, err := adaptivefp.New(0.5) // 12 mantissa bits primary, 11 residual
//	if err != nil {
//	    return err
//	}
//
//	primary, residual := c.Encode(values)
//
//	exact, err := c.Decode(primary, residual) // lossless round trip
//	approx := c.DecodeLow(primary)            // residual bits treated as zero
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the codec
// package, simplifying the most common use cases. For incremental encoding
// and iterator-based decoding, use the encoding package directly.
package adaptivefp

import (
	"github.com/HaseebLUMS/adaptive-fp-encoding/codec"
	"github.com/HaseebLUMS/adaptive-fp-encoding/encoding"
)

// DefaultAggression is the aggression value used by NewDefault: an even
// split of the mantissa (12 bits primary, 11 bits residual).
const DefaultAggression = 0.5

// New creates a codec with the given aggression value.
//
// The aggression parameter must be within [0.0, 1.0]; out-of-range values
// fail with errs.ErrInvalidAggression rather than being clamped.
//
// This is a thin wrapper around codec.New; see that package for the full
// transform contract.
func New(aggression float64) (codec.Codec, error) {
	return codec.New(aggression)
}

// NewDefault creates a codec with DefaultAggression.
func NewDefault() codec.Codec {
	c, err := codec.New(DefaultAggression)
	if err != nil {
		// DefaultAggression is a valid constant; this cannot happen.
		panic(err)
	}

	return c
}

// Encode is a one-shot helper that constructs a codec for the given
// aggression and splits values into primary and residual streams.
//
// For repeated use, construct the codec once with New and reuse it.
func Encode(aggression float64, values []float32) (primary, residual []uint32, err error) {
	c, err := codec.New(aggression)
	if err != nil {
		return nil, nil, err
	}

	primary, residual = c.Encode(values)

	return primary, residual, nil
}

// Decode is a one-shot helper that reconstructs the exact original values
// from streams produced with the same aggression.
func Decode(aggression float64, primary, residual []uint32) ([]float32, error) {
	c, err := codec.New(aggression)
	if err != nil {
		return nil, err
	}

	return c.Decode(primary, residual)
}

// DecodeLow is a one-shot helper that reconstructs the low-precision
// approximation from the primary stream alone.
func DecodeLow(aggression float64, primary []uint32) ([]float32, error) {
	c, err := codec.New(aggression)
	if err != nil {
		return nil, err
	}

	return c.DecodeLow(primary), nil
}

// NewSplitEncoder creates an incremental encoder for the given codec.
// See the encoding package for the full encoder contract.
func NewSplitEncoder(c codec.Codec, opts ...encoding.SplitEncoderOption) (*encoding.SplitEncoder, error) {
	return encoding.NewSplitEncoder(c, opts...)
}

// NewSplitDecoder creates an iterator-based decoder for the given codec.
func NewSplitDecoder(c codec.Codec) encoding.SplitDecoder {
	return encoding.NewSplitDecoder(c)
}
