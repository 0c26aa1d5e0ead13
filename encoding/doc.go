// Package encoding provides an incremental encoding and iterator-based
// decoding surface on top of the core codec package.
//
// The codec package transforms whole slices in one call. This package
// serves callers that produce values one at a time (or in chunks) and want
// to accumulate the primary and residual streams without managing the
// output slices themselves:
//
//	c, _ := codec.New(0.5)
//	encoder, _ := encoding.NewSplitEncoder(c)
//	defer encoder.Finish() // Ensure buffers are returned to the pool
//
//	for _, v := range produceValues() {
//	    encoder.Write(v)
//	}
//	primary := encoder.Primary()   // valid until Reset/Finish
//	residual := encoder.Residual() // valid until Reset/Finish
//
// Decoding mirrors the same shape with Go iterators:
//
//	decoder := encoding.NewSplitDecoder(c)
//	for v := range decoder.All(primary, residual) {
//	    consume(v)
//	}
//
// Both surfaces produce bit-identical results; choose whichever fits the
// call site. SplitDecoder is stateless and safe for concurrent use;
// SplitEncoder holds mutable accumulation state and must not be shared
// across goroutines.
package encoding
