package intx

// UInt512 is a 512-bit unsigned integer, represented as two UInt256 halves,
// recursing one more level of the half-type layout spec.md 2 describes
// (half(512) = UInt256).
type UInt512 struct {
	lo, hi UInt256
}

var zeroUInt512 UInt512

// MaxUInt512 is the largest representable UInt512 value.
var MaxUInt512 = UInt512{lo: MaxUInt256, hi: MaxUInt256}

// UInt512From64 widens v to a UInt512.
func UInt512From64(v uint64) UInt512 { return UInt512{lo: UInt256From64(v)} }

// UInt512FromHalf places lo in the lower 256 bits, zeroing the upper half.
func UInt512FromHalf(lo UInt256) UInt512 { return UInt512{lo: lo} }

// UInt512FromParts builds a UInt512 from its low and high halves.
func UInt512FromParts(lo, hi UInt256) UInt512 { return UInt512{lo: lo, hi: hi} }

// Halves returns the low and high UInt256 halves of u.
func (u UInt512) Halves() (lo, hi UInt256) { return u.lo, u.hi }

func (u UInt512) IsZero() bool { return u == zeroUInt512 }

func (u UInt512) Cmp(v UInt512) int {
	if c := u.hi.Cmp(v.hi); c != 0 {
		return c
	}
	return u.lo.Cmp(v.lo)
}

func (u UInt512) Equal(v UInt512) bool        { return u == v }
func (u UInt512) LessThan(v UInt512) bool     { return u.Cmp(v) < 0 }
func (u UInt512) LessOrEqual(v UInt512) bool  { return u.Cmp(v) <= 0 }
func (u UInt512) GreaterThan(v UInt512) bool  { return u.Cmp(v) > 0 }
func (u UInt512) GreaterEqual(v UInt512) bool { return u.Cmp(v) >= 0 }

func (u UInt512) And(v UInt512) UInt512 { return UInt512{u.lo.And(v.lo), u.hi.And(v.hi)} }
func (u UInt512) Or(v UInt512) UInt512  { return UInt512{u.lo.Or(v.lo), u.hi.Or(v.hi)} }
func (u UInt512) Xor(v UInt512) UInt512 { return UInt512{u.lo.Xor(v.lo), u.hi.Xor(v.hi)} }
func (u UInt512) Not() UInt512          { return UInt512{u.lo.Not(), u.hi.Not()} }

// LeadingZeros is clz(u): defined as 512 for the zero value (spec.md 4.1/9).
func (u UInt512) LeadingZeros() uint {
	if !u.hi.IsZero() {
		return u.hi.LeadingZeros()
	}
	return 256 + u.lo.LeadingZeros()
}

// CountSignificantWords is the number of 64-bit words, from the low end,
// up to and including the highest nonzero one.
func (u UInt512) CountSignificantWords() int {
	if h := u.hi.CountSignificantWords(); h != 0 {
		return h + 4
	}
	return u.lo.CountSignificantWords()
}

// IsUInt256 reports whether u fits in the low half without truncation.
func (u UInt512) IsUInt256() bool { return u.hi.IsZero() }

// AsUInt256 truncates u to its low 256 bits.
func (u UInt512) AsUInt256() UInt256 { return u.lo }
