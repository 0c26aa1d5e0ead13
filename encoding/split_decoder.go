package encoding

import (
	"iter"

	"github.com/HaseebLUMS/adaptive-fp-encoding/codec"
)

// SplitDecoder decodes primary/residual streams into float32 values using
// Go iterators.
//
// The decoder is stateless and returned by value:
//   - Zero heap allocations (stack-only, no GC pressure)
//   - Small struct fits in CPU registers
//   - Safe for concurrent use on any number of streams
type SplitDecoder struct {
	codec codec.Codec
}

var _ ValueDecoder = SplitDecoder{}

// NewSplitDecoder creates a decoder for streams produced with the same
// codec configuration.
//
// The caller must use a codec with the same aggression value as the one
// that produced the streams; the split point is not self-describing.
func NewSplitDecoder(c codec.Codec) SplitDecoder {
	return SplitDecoder{codec: c}
}

// Codec returns the codec the decoder was created with.
func (d SplitDecoder) Codec() codec.Codec {
	return d.codec
}

// All returns an iterator yielding the fully reconstructed values from
// index-aligned primary and residual streams.
//
// The reconstruction is bit-exact for streams produced by a matching
// encoder. If the streams differ in length, only the common prefix is
// yielded; use codec.Decode when a mismatch must surface as an error.
func (d SplitDecoder) All(primary, residual []uint32) iter.Seq[float32] {
	return func(yield func(float32) bool) {
		n := min(len(primary), len(residual))
		for i := range n {
			if !yield(d.codec.DecodeValue(primary[i], residual[i])) {
				return
			}
		}
	}
}

// AllLow returns an iterator yielding low-precision reconstructions from
// the primary stream alone, treating all residual bits as zero.
func (d SplitDecoder) AllLow(primary []uint32) iter.Seq[float32] {
	return func(yield func(float32) bool) {
		for _, p := range primary {
			if !yield(d.codec.DecodeLowValue(p)) {
				return
			}
		}
	}
}

// At retrieves the fully reconstructed value at the specified index.
//
// Returns false if index is negative or beyond the end of either stream.
func (d SplitDecoder) At(primary, residual []uint32, index int) (float32, bool) {
	if index < 0 || index >= len(primary) || index >= len(residual) {
		return 0, false
	}

	return d.codec.DecodeValue(primary[index], residual[index]), true
}

// AtLow retrieves the low-precision reconstruction at the specified index.
//
// Returns false if index is out of bounds for the primary stream.
func (d SplitDecoder) AtLow(primary []uint32, index int) (float32, bool) {
	if index < 0 || index >= len(primary) {
		return 0, false
	}

	return d.codec.DecodeLowValue(primary[index]), true
}
