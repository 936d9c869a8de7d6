package intx

// Mul is the truncated (same-width) product of spec.md 4.5: lo*lo is
// computed in double precision, and only the low halves of the crossed
// terms are folded in, discarding anything that would overflow 256 bits.
func (u UInt256) Mul(v UInt256) UInt256 {
	t := UMul128(u.lo, v.lo)
	hi := u.lo.Mul(v.hi).Add(u.hi.Mul(v.lo)).Add(t.hi)
	return UInt256{lo: t.lo, hi: hi}
}

// UMul is umul(x, y) for UInt256 operands: the full, non-truncated 512-bit
// product, built from four half multiplies per spec.md 4.5 ("t0 = umul(lo,
// lo) ... hi = t3 + u2.hi + u1.hi").
func (u UInt256) UMul(v UInt256) UInt512 {
	t0 := UMul128(u.lo, v.lo)
	t1 := UMul128(u.hi, v.lo)
	t2 := UMul128(u.lo, v.hi)
	t3 := UMul128(u.hi, v.hi)

	u1 := t1.Add(UInt256FromHalf(t0.hi))
	u2 := t2.Add(UInt256FromHalf(u1.lo))

	lo := UInt256FromParts(t0.lo, u2.lo)
	hi := t3.Add(UInt256FromHalf(u2.hi)).Add(UInt256FromHalf(u1.hi))

	return UInt512{lo: lo, hi: hi}
}
