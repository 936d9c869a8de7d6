package intx

// AddCarry computes u+v mod 2^256 and the carry out, following spec.md
// 4.3's add_with_carry recursion one level above UInt128.AddCarry: the low
// half's carry (c1) is added into the high-half sum, producing c3, and the
// carry out is c2 OR c3 (the high half's own carry c2 and c3 cannot both
// fire).
func (u UInt256) AddCarry(v UInt256) (sum UInt256, carryOut uint64) {
	lo, c1 := u.lo.AddCarry(v.lo)
	hi, c2 := u.hi.AddCarry(v.hi)
	hi, c3 := hi.AddCarry(UInt128From64(c1))
	return UInt256{lo: lo, hi: hi}, c2 | c3
}

func (u UInt256) Add(v UInt256) UInt256 {
	sum, _ := u.AddCarry(v)
	return sum
}

func (u UInt256) Sub(v UInt256) UInt256 {
	return u.Add(v.Neg())
}

// Neg is ~u + 1, the two's-complement negation (spec.md 4.3).
func (u UInt256) Neg() UInt256 {
	return UInt256{lo: u.lo.Not(), hi: u.hi.Not()}.Add(UInt256From64(1))
}

// IsNegative interprets the top bit as a two's-complement sign bit, per
// spec.md 1's "reinterpreting the unsigned values via two's complement".
func (u UInt256) IsNegative() bool {
	_, hi := u.hi.Parts()
	return hi&0x8000000000000000 != 0
}
