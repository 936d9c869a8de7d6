package intx

// Exp256 computes base^exponent mod 2^256 using right-to-left binary
// exponentiation, per spec.md 4.7 and intx.hpp's exp<Int> template: the
// exponent is consumed one bit at a time, squaring base on every step and
// folding it into the result whenever the current bit is set.
func Exp256(base, exponent UInt256) UInt256 {
	result := UInt256From64(1)
	for !exponent.IsZero() {
		if exponent.lo.lo&1 != 0 {
			result = result.Mul(base)
		}
		base = base.Mul(base)
		exponent = exponent.Rsh(1)
	}
	return result
}

// Exp512 is Exp256 one level up.
func Exp512(base, exponent UInt512) UInt512 {
	result := UInt512From64(1)
	for !exponent.IsZero() {
		lo, _ := exponent.lo.Halves()
		lo64, _ := lo.Parts()
		if lo64&1 != 0 {
			result = result.Mul(base)
		}
		base = base.Mul(base)
		exponent = exponent.Rsh(1)
	}
	return result
}
