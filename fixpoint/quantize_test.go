package fixpoint_test

import (
	"testing"

	"github.com/avernet/fxrank/fixpoint"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestQuantize_DropsLowBits verifies the low lostBits fractional bits are
// zeroed and nothing else changes.
func TestQuantize_DropsLowBits(t *testing.T) {
	assert.Equal(t, int64(4), fixpoint.Quantize(fixpoint.FromMantissa(7), 2).Mantissa())
	assert.Equal(t, int64(4), fixpoint.Quantize(fixpoint.FromMantissa(4), 2).Mantissa())
	assert.Equal(t, int64(0), fixpoint.Quantize(fixpoint.FromMantissa(3), 2).Mantissa())

	v, err := fixpoint.FromFloat(0.625)
	require.NoError(t, err)
	assert.Equal(t, v, fixpoint.Quantize(v, 2), "a value with clear low bits crosses the link intact")
}

// TestQuantize_Idempotent verifies quantize(quantize(x,k),k) == quantize(x,k).
func TestQuantize_Idempotent(t *testing.T) {
	for _, m := range []int64{0, 1, 3, 7, 1023, -1, -5, 1 << 47} {
		once := fixpoint.Quantize(fixpoint.FromMantissa(m), 2)
		assert.Equal(t, once, fixpoint.Quantize(once, 2), "mantissa %d", m)
	}
}

// TestQuantize_NeverIncreasesMagnitude verifies the monotonicity contract
// for the non-negative values the engine exchanges.
func TestQuantize_NeverIncreasesMagnitude(t *testing.T) {
	for _, m := range []int64{0, 1, 2, 3, 4, 100, 12345, 1 << 30, 1<<48 - 1} {
		q := fixpoint.Quantize(fixpoint.FromMantissa(m), 3)
		assert.LessOrEqual(t, q.Mantissa(), m, "mantissa %d", m)
		assert.GreaterOrEqual(t, q.Mantissa(), int64(0))
	}
}

// TestQuantize_ZeroLossIsIdentity verifies lostBits = 0 leaves every value
// untouched.
func TestQuantize_ZeroLossIsIdentity(t *testing.T) {
	for _, m := range []int64{0, 1, -1, 7, 1<<50 + 3} {
		v := fixpoint.FromMantissa(m)
		assert.Equal(t, v, fixpoint.Quantize(v, 0))
	}
}

// TestQuantize_NegativeFloors pins the arithmetic-shift floor on negative
// mantissas.
func TestQuantize_NegativeFloors(t *testing.T) {
	assert.Equal(t, int64(-4), fixpoint.Quantize(fixpoint.FromMantissa(-1), 2).Mantissa())
	assert.Equal(t, int64(-8), fixpoint.Quantize(fixpoint.FromMantissa(-5), 2).Mantissa())
}
