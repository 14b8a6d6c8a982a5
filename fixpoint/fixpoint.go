package fixpoint

import (
	"errors"
	"fmt"
	"math"
	"math/bits"
	"strconv"
)

// System-wide numeric configuration. These are compile-time constants by
// design: the exact truncation trajectory of every computation depends on
// them, so they are not per-call parameters.
const (
	// TotalBits is the full width of the backing mantissa.
	TotalBits = 64

	// FracBits is the number of fractional bits. A Value represents
	// mantissa / 2^FracBits, i.e. a Q15.48 number.
	FracBits = 48
)

// Sentinel errors for fixed-point construction and division.
var (
	// ErrOutOfRange indicates a value (or quotient) that is not
	// representable in TotalBits with FracBits fractional bits.
	ErrOutOfRange = errors.New("fixpoint: value not representable")

	// ErrDivideByZero indicates division by a zero Value. It is always
	// fatal to the calling operation; a zero divisor is never treated
	// as "infinity".
	ErrDivideByZero = errors.New("fixpoint: division by zero")
)

// fracMask selects the fractional bits of a mantissa.
const fracMask = (int64(1) << FracBits) - 1

// maxInt / minInt bound the integer part representable after scaling.
const (
	maxInt = math.MaxInt64 >> FracBits
	minInt = math.MinInt64 >> FracBits
)

// Value is an immutable fixed-point number: a signed mantissa scaled by
// 2^-FracBits. The zero Value is 0.
type Value struct {
	mant int64
}

// Zero returns the Value 0.
func Zero() Value { return Value{} }

// One returns the Value 1.
func One() Value { return Value{mant: 1 << FracBits} }

// FromMantissa builds a Value directly from a raw mantissa. Intended for
// bit-exact interoperability with hardware dumps and for tests.
func FromMantissa(m int64) Value { return Value{mant: m} }

// Mantissa returns the raw backing mantissa.
func (v Value) Mantissa() int64 { return v.mant }

// FromFloat constructs the representable Value closest to x (ties round
// away from zero). NaN, infinities and magnitudes beyond the Q15.48
// range fail with ErrOutOfRange.
func FromFloat(x float64) (Value, error) {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return Value{}, fmt.Errorf("%w: %v", ErrOutOfRange, x)
	}
	scaled := math.Round(x * math.Ldexp(1, FracBits))
	limit := math.Ldexp(1, TotalBits-1) // 2^63
	if scaled >= limit || scaled < -limit {
		return Value{}, fmt.Errorf("%w: %v", ErrOutOfRange, x)
	}

	return Value{mant: int64(scaled)}, nil
}

// FromInt constructs the Value equal to the integer n. Integers outside
// [-2^15, 2^15-1] do not fit the Q15.48 format and fail with ErrOutOfRange.
func FromInt(n int64) (Value, error) {
	if n > maxInt || n < minInt {
		return Value{}, fmt.Errorf("%w: %d", ErrOutOfRange, n)
	}

	return Value{mant: n << FracBits}, nil
}

// Add returns v + o. Wraps on overflow (see package overflow policy).
func (v Value) Add(o Value) Value { return Value{mant: v.mant + o.mant} }

// Sub returns v - o. Wraps on overflow.
func (v Value) Sub(o Value) Value { return Value{mant: v.mant - o.mant} }

// Neg returns -v. The most negative Value wraps onto itself.
func (v Value) Neg() Value { return Value{mant: -v.mant} }

// Abs returns the absolute value of v, exact for every Value except the
// most negative mantissa, which wraps onto itself.
func (v Value) Abs() Value {
	if v.mant < 0 {
		return Value{mant: -v.mant}
	}

	return v
}

// IsZero reports whether v == 0.
func (v Value) IsZero() bool { return v.mant == 0 }

// Cmp compares v and o, returning -1 if v < o, 0 if v == o, +1 if v > o.
// The order is total and exact.
func (v Value) Cmp(o Value) int {
	switch {
	case v.mant < o.mant:
		return -1
	case v.mant > o.mant:
		return 1
	default:
		return 0
	}
}

// Mul returns v * o with the hardware multiplier semantics:
//
//  1. Compute the full 128-bit signed intermediate product.
//  2. Arithmetic-shift it right by FracBits — truncation toward negative
//     infinity, never round-to-nearest.
//  3. Keep the low TotalBits bits (wraparound on overflow).
func (v Value) Mul(o Value) Value {
	// Unsigned 128-bit product of the raw mantissas.
	hi, lo := bits.Mul64(uint64(v.mant), uint64(o.mant))

	// Correct the high word for two's-complement operands: for signed
	// a, b the true high word is hi - (a<0 ? b : 0) - (b<0 ? a : 0).
	if v.mant < 0 {
		hi -= uint64(o.mant)
	}
	if o.mant < 0 {
		hi -= uint64(v.mant)
	}

	// Arithmetic shift of the 128-bit product by FracBits, low 64 kept.
	return Value{mant: int64(hi<<(64-FracBits) | lo>>FracBits)}
}

// Div returns v / o with FracBits fractional bits preserved in the
// quotient: the dividend is left-shifted by FracBits into a 128-bit
// intermediate before integer division, and the quotient is floored
// (rounded toward negative infinity, matching Mul's truncation
// direction).
//
// Errors:
//   - ErrDivideByZero if o == 0.
//   - ErrOutOfRange if the floored quotient does not fit in TotalBits.
func (v Value) Div(o Value) (Value, error) {
	if o.mant == 0 {
		return Value{}, fmt.Errorf("%w: %s / 0", ErrDivideByZero, v)
	}

	neg := (v.mant < 0) != (o.mant < 0)
	ua := magnitude(v.mant)
	ub := magnitude(o.mant)

	// 128-bit dividend: ua << FracBits.
	hi := ua >> (64 - FracBits)
	lo := ua << FracBits

	// bits.Div64 requires hi < ub; a violation means the quotient cannot
	// fit in 64 bits, which is a range failure, not a wrap.
	if hi >= ub {
		return Value{}, fmt.Errorf("%w: %s / %s quotient overflow", ErrOutOfRange, v, o)
	}
	q, r := bits.Div64(hi, lo, ub)

	if neg {
		// Floor semantics: a nonzero remainder pushes a negative
		// quotient one step further from zero.
		if r != 0 {
			q++
		}
		if q > 1<<63 {
			return Value{}, fmt.Errorf("%w: %s / %s quotient overflow", ErrOutOfRange, v, o)
		}
		if q == 1<<63 {
			return Value{mant: math.MinInt64}, nil
		}

		return Value{mant: -int64(q)}, nil
	}

	if q > math.MaxInt64 {
		return Value{}, fmt.Errorf("%w: %s / %s quotient overflow", ErrOutOfRange, v, o)
	}

	return Value{mant: int64(q)}, nil
}

// Shr returns v with its mantissa arithmetically shifted right by n bits.
// Shift counts of TotalBits or more saturate to 0 (or -2^-FracBits for
// negative mantissas), per native shift semantics.
func (v Value) Shr(n uint) Value { return Value{mant: v.mant >> n} }

// Shl returns v with its mantissa shifted left by n bits. Wraps on
// overflow.
func (v Value) Shl(n uint) Value { return Value{mant: v.mant << n} }

// Float64 decodes v into the nearest float64. Decoding is for external
// consumption only; it never feeds back into fixed-point computation.
func (v Value) Float64() float64 {
	return float64(v.mant) / math.Ldexp(1, FracBits)
}

// String renders the decoded decimal value, for diagnostics.
func (v Value) String() string {
	return strconv.FormatFloat(v.Float64(), 'g', -1, 64)
}

// Hex renders v in sign-magnitude hexadecimal as "<int>.<frac>", with the
// fractional part zero-padded to FracBits/4 digits. The format mirrors
// the trace output of the hardware reference model, so host and hardware
// traces can be diffed line by line.
func (v Value) Hex() string {
	m := magnitude(v.mant)
	s := fmt.Sprintf("%X.%012X", m>>FracBits, m&uint64(fracMask))
	if v.mant < 0 {
		return "-" + s
	}

	return s
}

// magnitude returns |m| as a uint64; correct for math.MinInt64 as well.
func magnitude(m int64) uint64 {
	u := uint64(m)
	if m < 0 {
		u = -u
	}

	return u
}
