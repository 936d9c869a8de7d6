package intx

// Lsh implements the shift core of spec.md 4.4 for UInt256, H = 128.
func (u UInt256) Lsh(shift uint) UInt256 {
	const h = 128
	switch {
	case shift == 0:
		return u
	case shift < h:
		spill := u.lo.Rsh(h - shift - 1).Rsh(1)
		return UInt256{lo: u.lo.Lsh(shift), hi: u.hi.Lsh(shift).Or(spill)}
	case shift < 2*h:
		return UInt256{lo: UInt128{}, hi: u.lo.Lsh(shift - h)}
	default:
		return UInt256{}
	}
}

// Rsh is the mirror image of Lsh, per spec.md 4.4.
func (u UInt256) Rsh(shift uint) UInt256 {
	const h = 128
	switch {
	case shift == 0:
		return u
	case shift < h:
		spill := u.hi.Lsh(h - shift - 1).Lsh(1)
		return UInt256{lo: u.lo.Rsh(shift).Or(spill), hi: u.hi.Rsh(shift)}
	case shift < 2*h:
		return UInt256{lo: u.hi.Rsh(shift - h), hi: UInt128{}}
	default:
		return UInt256{}
	}
}

// LshBy shifts by a UInt256-valued amount: 0 whenever shift >= 256,
// otherwise the low word is used, per spec.md 4.4.
func (u UInt256) LshBy(shift UInt256) UInt256 {
	if shift.GreaterEqual(UInt256From64(256)) {
		return UInt256{}
	}
	lo, _ := shift.lo.Parts()
	return u.Lsh(uint(lo))
}

func (u UInt256) RshBy(shift UInt256) UInt256 {
	if shift.GreaterEqual(UInt256From64(256)) {
		return UInt256{}
	}
	lo, _ := shift.lo.Parts()
	return u.Rsh(uint(lo))
}
