package encoding

import (
	"fmt"

	"github.com/HaseebLUMS/adaptive-fp-encoding/codec"
	"github.com/HaseebLUMS/adaptive-fp-encoding/internal/options"
	"github.com/HaseebLUMS/adaptive-fp-encoding/internal/pool"
)

// SplitEncoder incrementally encodes float32 values into index-aligned
// primary and residual streams using pooled buffers.
//
// The encoder is single-use per session: accumulate with Write/WriteSlice,
// read the streams with Primary/Residual, and call Finish to return the
// buffers to the pool. Reset allows reuse of the buffers for a new
// sequence within the same session.
type SplitEncoder struct {
	codec    codec.Codec
	primary  *pool.Uint32Buffer
	residual *pool.Uint32Buffer
	count    int
}

var _ ValueEncoder = (*SplitEncoder)(nil)

// SplitEncoderOption configures a SplitEncoder during construction.
type SplitEncoderOption = options.Option[*SplitEncoder]

// WithCapacityHint pre-grows the internal buffers to hold n values without
// reallocation. Useful when the number of values is known up front.
//
// Returns an error during construction if n is negative.
func WithCapacityHint(n int) SplitEncoderOption {
	return options.New(func(e *SplitEncoder) error {
		if n < 0 {
			return fmt.Errorf("invalid capacity hint: %d", n)
		}
		e.primary.Grow(n)
		e.residual.Grow(n)

		return nil
	})
}

// NewSplitEncoder creates an incremental encoder for the given codec.
//
// The encoder draws its stream buffers from an internal pool; callers must
// invoke Finish() when done to return them. Use defer to ensure it runs
// even in error paths:
//
//	encoder, err := encoding.NewSplitEncoder(c, encoding.WithCapacityHint(len(values)))
//	if err != nil {
//	    return err
//	}
//	defer encoder.Finish()
//
// Parameters:
//   - c: Codec fixing the mantissa bit-split
//   - opts: Optional configuration (see WithCapacityHint)
//
// Returns:
//   - *SplitEncoder: The created encoder.
//   - error: An error if an option is invalid.
func NewSplitEncoder(c codec.Codec, opts ...SplitEncoderOption) (*SplitEncoder, error) {
	e := &SplitEncoder{
		codec:    c,
		primary:  pool.GetStreamBuffer(),
		residual: pool.GetStreamBuffer(),
	}

	if err := options.Apply(e, opts...); err != nil {
		e.Finish()
		return nil, err
	}

	return e, nil
}

// Codec returns the codec the encoder was created with.
func (e *SplitEncoder) Codec() codec.Codec {
	return e.codec
}

// Write encodes a single float32 value and appends its primary and
// residual parts to the accumulated streams.
//
// Panics if Finish() has been called.
func (e *SplitEncoder) Write(val float32) {
	if e.primary == nil {
		panic("encoder already finished - cannot write values after Finish()")
	}

	p, r := e.codec.EncodeValue(val)
	e.primary.Append(p)
	e.residual.Append(r)
	e.count++
}

// WriteSlice encodes a slice of float32 values in one pass.
//
// The buffers are pre-grown once for the whole slice, so bulk writes avoid
// repeated reallocation.
//
// Panics if Finish() has been called.
func (e *SplitEncoder) WriteSlice(values []float32) {
	if e.primary == nil {
		panic("encoder already finished - cannot write values after Finish()")
	}

	if len(values) == 0 {
		return
	}

	e.primary.Grow(len(values))
	e.residual.Grow(len(values))

	for _, val := range values {
		p, r := e.codec.EncodeValue(val)
		e.primary.Append(p)
		e.residual.Append(r)
	}
	e.count += len(values)
}

// Primary returns the accumulated primary stream.
//
// The returned slice references the internal buffer: it is valid until the
// next call to Write, WriteSlice, Reset, or Finish, and must not be
// modified by the caller.
//
// Panics if Finish() has been called.
func (e *SplitEncoder) Primary() []uint32 {
	if e.primary == nil {
		panic("encoder already finished - cannot access streams after Finish()")
	}

	return e.primary.Values()
}

// Residual returns the accumulated residual stream, index-aligned with
// Primary. Same validity rules as Primary.
//
// Panics if Finish() has been called.
func (e *SplitEncoder) Residual() []uint32 {
	if e.residual == nil {
		panic("encoder already finished - cannot access streams after Finish()")
	}

	return e.residual.Values()
}

// Len returns the number of values written since the last Reset.
func (e *SplitEncoder) Len() int {
	return e.count
}

// Reset clears the accumulated streams for a new sequence while retaining
// the underlying buffers. Slices previously returned by Primary or
// Residual are invalidated.
func (e *SplitEncoder) Reset() {
	if e.primary == nil {
		return
	}

	e.primary.Reset()
	e.residual.Reset()
	e.count = 0
}

// Finish returns the stream buffers to the pool and makes the encoder
// unusable. Subsequent calls to Write, WriteSlice, Primary, or Residual
// will panic; Finish itself is idempotent.
func (e *SplitEncoder) Finish() {
	if e.primary != nil {
		pool.PutStreamBuffer(e.primary)
		e.primary = nil
	}
	if e.residual != nil {
		pool.PutStreamBuffer(e.residual)
		e.residual = nil
	}
	e.count = 0
}
