// Package codec implements the core float32 bit-splitting transform.
//
// A Codec decomposes each 32-bit IEEE-754 float into a compact primary
// value (sign, full 8-bit exponent, high mantissa bits) and a residual
// value (the remaining low mantissa bits). How many of the 23 mantissa
// bits land in each stream is fixed at construction by a single
// aggression parameter in [0.0, 1.0]:
//
//	primary mantissa bits  = round((1 - aggression) * 23)
//	residual mantissa bits = 23 - primary mantissa bits
//
// At aggression 0.0 the primary stream alone is lossless; at 1.0 it
// carries only sign and exponent. Both streams together always
// reconstruct the original bit pattern exactly, for every possible
// float32 value including NaN payloads, infinities, signed zeros and
// subnormals, because the transform treats values purely as bit
// patterns and never interprets them numerically.
//
// All operations are pure: a Codec is an immutable value, safe for
// unrestricted concurrent use.
//
// For incremental encoding and iterator-based decoding on top of this
// package, see: github.com/HaseebLUMS/adaptive-fp-encoding/encoding
package codec
