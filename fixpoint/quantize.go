package fixpoint

// Quantize models the lossy payload encoding applied to a value before it
// is considered "sent" across a simulated link: the low lostBits
// fractional bits of v are zeroed, permanently discarding precision, and
// the value is re-widened to the full mantissa width.
//
// Contract:
//
//   - Quantize(v, k) == (v >> k) << k, arithmetic shifts on the mantissa.
//   - Idempotent: Quantize(Quantize(v, k), k) == Quantize(v, k).
//   - Never increases the magnitude of a non-negative value (the only
//     kind the engine exchanges); negative values floor toward negative
//     infinity, per the arithmetic-shift semantics.
//   - Quantize(v, 0) == v: a zero-loss link is the identity.
//
// Quantization applies to values crossing a link, never to locally
// retained state. lostBits is a fixed property of the link being modeled,
// not a tunable.
func Quantize(v Value, lostBits uint) Value {
	return v.Shr(lostBits).Shl(lostBits)
}
