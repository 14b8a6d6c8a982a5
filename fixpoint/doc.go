// Package fixpoint implements bounded-precision fixed-point arithmetic
// for hardware-faithful numeric simulation.
//
// Representation:
//
//   - A Value is a signed two's-complement mantissa stored in an int64
//     (TotalBits = 64), interpreted as mantissa / 2^FracBits with
//     FracBits = 48 (Q15.48). Both constants are system-wide and fixed:
//     changing either changes the exact sequence of truncations and
//     therefore the exact numeric trajectory of everything built on top.
//   - Values are immutable; every operation returns a new Value.
//
// Overflow policy (WRAP):
//
//   - Add, Sub, Mul and the shifts wrap like native fixed-width integer
//     arithmetic, matching the hardware adders and multipliers being
//     modeled. Wraparound keeps addition associative, so accumulating a
//     set of values yields the same bit pattern in any order.
//   - Construction (FromFloat, FromInt) and Div fail fast with
//     ErrOutOfRange instead of wrapping: they model host-side software
//     steps, not datapath operations, and a silent wrap there would hide
//     a configuration mistake rather than emulate the hardware.
//
// Rounding:
//
//   - FromFloat rounds to the nearest representable value (ties away
//     from zero).
//   - Mul computes the full 128-bit intermediate product and then
//     truncates the low FracBits bits via an arithmetic shift: rounding
//     toward negative infinity, never to nearest. This matches the
//     hardware multiplier exactly.
//   - Div left-shifts the dividend by FracBits into a 128-bit
//     intermediate before integer division, preserving FracBits
//     fractional bits in the quotient; the quotient is floored.
//
// Quantization:
//
//   - Quantize(v, lostBits) zeroes the low lostBits fractional bits,
//     modeling the lossy payload encoding of a width-limited link. See
//     quantize.go for the exact contract.
//
// Errors (sentinel):
//
//   - ErrOutOfRange    — a construction or quotient is not representable.
//   - ErrDivideByZero  — division by a zero Value.
//
// All operations are deterministic, side-effect-free, and identical on
// every platform: there is no rounding mode, no global state, and no
// dependency on the host FPU beyond the initial FromFloat conversion.
package fixpoint
