package codec

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/HaseebLUMS/adaptive-fp-encoding/errs"
)

// testAggressions covers both boundaries, the midpoint, and uneven splits.
var testAggressions = []float64{0.0, 0.1, 0.25, 0.5, 0.75, 0.9, 1.0}

// specialPatterns holds float32 bit patterns from every IEEE-754 category.
// Round trips must preserve these exactly, including NaN payload bits and
// the sign of zero.
var specialPatterns = []struct {
	name string
	bits uint32
}{
	{"positive zero", 0x00000000},
	{"negative zero", 0x80000000},
	{"one", 0x3F800000},
	{"one point five", 0x3FC00000},
	{"negative two point seven five", 0xC0300000},
	{"positive infinity", 0x7F800000},
	{"negative infinity", 0xFF800000},
	{"quiet NaN", 0x7FC00000},
	{"quiet NaN with payload", 0x7FC00001},
	{"negative NaN with payload", 0xFFC0BEEF},
	{"signaling NaN", 0x7F800001},
	{"smallest subnormal", 0x00000001},
	{"largest subnormal", 0x007FFFFF},
	{"smallest normal", 0x00800000},
	{"largest finite", 0x7F7FFFFF},
	{"negative largest finite", 0xFF7FFFFF},
	{"all low mantissa bits set", 0x3F8007FF},
}

// TestEncodeDecode_RoundTripSpecialValues verifies bit-exact round trips
// for every value category at every tested aggression.
func TestEncodeDecode_RoundTripSpecialValues(t *testing.T) {
	for _, aggression := range testAggressions {
		c, err := New(aggression)
		require.NoError(t, err)

		for _, tt := range specialPatterns {
			t.Run(tt.name, func(t *testing.T) {
				val := math.Float32frombits(tt.bits)

				primary, residual := c.EncodeValue(val)
				got := c.DecodeValue(primary, residual)

				require.Equal(t, tt.bits, math.Float32bits(got),
					"aggression=%v pattern=0x%08X", aggression, tt.bits)
			})
		}
	}
}

// TestEncodeDecode_RoundTripRandom verifies bit-exact round trips over
// randomized 32-bit patterns, which also exercises random NaNs and
// subnormals.
func TestEncodeDecode_RoundTripRandom(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	const numPatterns = 5000
	values := make([]float32, numPatterns)
	bits := make([]uint32, numPatterns)
	for i := range values {
		bits[i] = rng.Uint32()
		values[i] = math.Float32frombits(bits[i])
	}

	for _, aggression := range testAggressions {
		c, err := New(aggression)
		require.NoError(t, err)

		primary, residual := c.Encode(values)
		require.Len(t, primary, numPatterns)
		require.Len(t, residual, numPatterns)

		decoded, err := c.Decode(primary, residual)
		require.NoError(t, err)
		require.Len(t, decoded, numPatterns)

		for i := range decoded {
			require.Equal(t, bits[i], math.Float32bits(decoded[i]),
				"aggression=%v index=%d pattern=0x%08X", aggression, i, bits[i])
		}

		// Residual values must fit within the residual bit width.
		for i, r := range residual {
			require.Less(t, uint64(r), uint64(1)<<c.ResidualMantissaBits(),
				"residual out of range at index %d", i)
		}
	}
}

// TestEncode_ConcreteScenario pins the exact stream contents for the
// reference sequence [1.5, -2.75, 0.0, 100.125] at aggression 0.5.
func TestEncode_ConcreteScenario(t *testing.T) {
	c, err := New(0.5)
	require.NoError(t, err)

	values := []float32{1.5, -2.75, 0.0, 100.125}

	primary, residual := c.Encode(values)

	// sign : exponent(8) : high 12 mantissa bits, packed into 21 bits.
	require.Equal(t, []uint32{0x07F800, 0x180600, 0x000000, 0x085908}, primary)
	// All four literals are exactly representable in the top 12 mantissa
	// bits, so every residual is zero.
	require.Equal(t, []uint32{0, 0, 0, 0}, residual)

	decoded, err := c.Decode(primary, residual)
	require.NoError(t, err)
	require.Equal(t, values, decoded)

	// With zero residuals the low-precision decode is already exact.
	require.Equal(t, values, c.DecodeLow(primary))
}

// TestDecode_LengthMismatch verifies mismatched stream lengths surface an
// error with no partial results.
func TestDecode_LengthMismatch(t *testing.T) {
	c, err := New(0.5)
	require.NoError(t, err)

	primary, residual := c.Encode([]float32{1.0, 2.0, 3.0})

	decoded, err := c.Decode(primary, residual[:2])
	require.ErrorIs(t, err, errs.ErrLengthMismatch)
	require.Nil(t, decoded)

	decoded, err = c.Decode(primary[:1], residual)
	require.ErrorIs(t, err, errs.ErrLengthMismatch)
	require.Nil(t, decoded)
}

// TestEncodeDecode_Empty verifies empty sequences pass through all three
// operations.
func TestEncodeDecode_Empty(t *testing.T) {
	c, err := New(0.5)
	require.NoError(t, err)

	primary, residual := c.Encode(nil)
	require.Empty(t, primary)
	require.Empty(t, residual)

	decoded, err := c.Decode(primary, residual)
	require.NoError(t, err)
	require.Empty(t, decoded)

	require.Empty(t, c.DecodeLow(primary))
}

// TestDecodeLow_ExactIffResidualZero verifies the low-precision decode
// equals the full decode exactly when the residual is zero, and differs
// only in the low residual bits otherwise.
func TestDecodeLow_ExactIffResidualZero(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for _, aggression := range testAggressions {
		c, err := New(aggression)
		require.NoError(t, err)

		residualMask := uint32(1<<c.ResidualMantissaBits() - 1)

		for i := 0; i < 2000; i++ {
			bits := rng.Uint32()
			val := math.Float32frombits(bits)

			primary, residual := c.EncodeValue(val)
			full := math.Float32bits(c.DecodeValue(primary, residual))
			low := math.Float32bits(c.DecodeLowValue(primary))

			// Sign, exponent and high mantissa bits are always exact.
			require.Equal(t, full&^residualMask, low)
			// The full and low reconstructions differ exactly by the residual.
			require.Equal(t, residual, full&residualMask)

			if residual == 0 {
				require.Equal(t, full, low)
			} else {
				require.NotEqual(t, full, low)
			}
		}
	}
}

// TestDecodeLow_ErrorBound verifies the numeric degradation of normal
// values: the error equals residual * 2^(exponent-150), which is bounded
// by the value representable in the discarded low mantissa bits.
func TestDecodeLow_ErrorBound(t *testing.T) {
	rng := rand.New(rand.NewSource(99))

	c, err := New(0.5)
	require.NoError(t, err)

	for i := 0; i < 2000; i++ {
		// Constrain to normal finite values: exponent in [1, 254].
		exponent := uint32(1 + rng.Intn(254))
		bits := rng.Uint32()&0x807FFFFF | exponent<<23
		val := math.Float32frombits(bits)

		primary, residual := c.EncodeValue(val)
		full := c.DecodeValue(primary, residual)
		low := c.DecodeLowValue(primary)

		// Both reconstructions share sign and exponent, so the float64
		// subtraction below is exact and the relation holds bit-for-bit.
		diff := math.Abs(float64(full) - float64(low))
		want := float64(residual) * math.Pow(2, float64(exponent)-150)
		require.Equal(t, want, diff, "pattern=0x%08X", bits)

		// Worst case: all residual bits set at this exponent.
		bound := float64(uint32(1<<c.ResidualMantissaBits()-1)) * math.Pow(2, float64(exponent)-150)
		require.LessOrEqual(t, diff, bound)
	}
}

// TestEncode_AggressionZero verifies the lossless boundary: the primary
// stream carries everything and residuals are always zero.
func TestEncode_AggressionZero(t *testing.T) {
	rng := rand.New(rand.NewSource(3))

	c, err := New(0.0)
	require.NoError(t, err)

	for i := 0; i < 1000; i++ {
		bits := rng.Uint32()
		val := math.Float32frombits(bits)

		primary, residual := c.EncodeValue(val)
		require.Zero(t, residual)
		// Full 32-bit pattern survives in the primary value.
		require.Equal(t, bits, primary)
		require.Equal(t, bits, math.Float32bits(c.DecodeLowValue(primary)))
	}
}

// TestEncode_AggressionOne verifies the opposite boundary: the primary
// stream holds only sign and exponent in 9 bits, and the low decode zeroes
// the entire mantissa.
func TestEncode_AggressionOne(t *testing.T) {
	rng := rand.New(rand.NewSource(4))

	c, err := New(1.0)
	require.NoError(t, err)

	for i := 0; i < 1000; i++ {
		bits := rng.Uint32()
		val := math.Float32frombits(bits)

		primary, residual := c.EncodeValue(val)
		require.Less(t, primary, uint32(1)<<9)
		require.Equal(t, bits&0x007FFFFF, residual)
		require.Equal(t, bits&0xFF800000, math.Float32bits(c.DecodeLowValue(primary)))

		require.Equal(t, bits, math.Float32bits(c.DecodeValue(primary, residual)))
	}
}
