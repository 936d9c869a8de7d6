package intx

// Lsh implements the shift core of spec.md 4.4 for UInt512, H = 256.
func (u UInt512) Lsh(shift uint) UInt512 {
	const h = 256
	switch {
	case shift == 0:
		return u
	case shift < h:
		spill := u.lo.Rsh(h - shift - 1).Rsh(1)
		return UInt512{lo: u.lo.Lsh(shift), hi: u.hi.Lsh(shift).Or(spill)}
	case shift < 2*h:
		return UInt512{lo: UInt256{}, hi: u.lo.Lsh(shift - h)}
	default:
		return UInt512{}
	}
}

// Rsh is the mirror image of Lsh, per spec.md 4.4.
func (u UInt512) Rsh(shift uint) UInt512 {
	const h = 256
	switch {
	case shift == 0:
		return u
	case shift < h:
		spill := u.hi.Lsh(h - shift - 1).Lsh(1)
		return UInt512{lo: u.lo.Rsh(shift).Or(spill), hi: u.hi.Rsh(shift)}
	case shift < 2*h:
		return UInt512{lo: u.hi.Rsh(shift - h), hi: UInt256{}}
	default:
		return UInt512{}
	}
}

// LshBy shifts by a UInt512-valued amount: 0 whenever shift >= 512,
// otherwise the low word is used, per spec.md 4.4.
func (u UInt512) LshBy(shift UInt512) UInt512 {
	if shift.GreaterEqual(UInt512From64(512)) {
		return UInt512{}
	}
	lo128, _ := shift.lo.Halves()
	lo, _ := lo128.Parts()
	return u.Lsh(uint(lo))
}

func (u UInt512) RshBy(shift UInt512) UInt512 {
	if shift.GreaterEqual(UInt512From64(512)) {
		return UInt512{}
	}
	lo128, _ := shift.lo.Halves()
	lo, _ := lo128.Parts()
	return u.Rsh(uint(lo))
}
