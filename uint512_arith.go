package intx

// AddCarry computes u+v mod 2^512 and the carry out, one level above
// UInt256.AddCarry, per spec.md 4.3's add_with_carry recursion.
func (u UInt512) AddCarry(v UInt512) (sum UInt512, carryOut uint64) {
	lo, c1 := u.lo.AddCarry(v.lo)
	hi, c2 := u.hi.AddCarry(v.hi)
	hi, c3 := hi.AddCarry(UInt256From64(c1))
	return UInt512{lo: lo, hi: hi}, c2 | c3
}

func (u UInt512) Add(v UInt512) UInt512 {
	sum, _ := u.AddCarry(v)
	return sum
}

func (u UInt512) Sub(v UInt512) UInt512 {
	return u.Add(v.Neg())
}

// Neg is ~u + 1, the two's-complement negation (spec.md 4.3).
func (u UInt512) Neg() UInt512 {
	return UInt512{lo: u.lo.Not(), hi: u.hi.Not()}.Add(UInt512From64(1))
}

// IsNegative interprets the top bit as a two's-complement sign bit, per
// spec.md 1's "reinterpreting the unsigned values via two's complement".
func (u UInt512) IsNegative() bool {
	_, hi128 := u.hi.Halves()
	_, hi64 := hi128.Parts()
	return hi64&0x8000000000000000 != 0
}
