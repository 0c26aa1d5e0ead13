package encoding

import "iter"

// ValueEncoder is the contract for incremental split-stream encoders.
//
// Implementations accumulate one primary and one residual value per input
// float32, keeping the two streams index-aligned at all times.
type ValueEncoder interface {
	// Primary returns the accumulated primary stream.
	// The returned slice is valid until the next call to Write, WriteSlice,
	// Reset, or Finish. The caller must not modify it; copy the slice to
	// retain the data beyond the encoder's lifetime.
	Primary() []uint32

	// Residual returns the accumulated residual stream.
	// It has the same length and validity rules as Primary.
	Residual() []uint32

	// Len returns the number of values written since the last Reset.
	Len() int

	// Reset clears the accumulated streams for reuse, retaining the
	// underlying buffers. Any slices previously returned by Primary or
	// Residual are invalidated.
	Reset()

	// Finish returns the internal buffers to the pool.
	//
	// After calling Finish(), the encoder is no longer usable. Any
	// subsequent calls to Write(), WriteSlice(), Primary(), or Residual()
	// will panic. Create a new encoder to encode more data.
	//
	// This method must be called when the encoding session is complete so
	// buffer resources are returned for reuse by other encoders. Use defer
	// to ensure it runs even in error paths.
	Finish()

	// Write encodes a single value.
	//
	// This method is optimized for appending a single value.
	// For bulk writes, use WriteSlice for better performance.
	Write(val float32)

	// WriteSlice encodes a slice of values.
	//
	// This method is optimized for bulk writes. For single writes, use
	// Write for better performance.
	WriteSlice(values []float32)
}

// ValueDecoder is the contract for iterator-based split-stream decoders.
type ValueDecoder interface {
	// All returns an iterator that yields the fully reconstructed float32
	// values from index-aligned primary and residual streams.
	//
	// If the streams differ in length, the iterator yields only the common
	// prefix; callers that need strict validation should use codec.Decode.
	All(primary, residual []uint32) iter.Seq[float32]

	// AllLow returns an iterator that yields low-precision reconstructions
	// from the primary stream alone, treating residual bits as zero.
	AllLow(primary []uint32) iter.Seq[float32]

	// At retrieves the fully reconstructed value at the specified index.
	//
	// The second return value is false if the index is out of bounds for
	// either stream.
	At(primary, residual []uint32, index int) (float32, bool)

	// AtLow retrieves the low-precision reconstruction at the specified index.
	AtLow(primary []uint32, index int) (float32, bool)
}
