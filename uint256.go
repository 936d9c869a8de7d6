package intx

// UInt256 is a 256-bit unsigned integer, represented as two UInt128 halves:
// value(x) = value(x.hi)*2^128 + value(x.lo), per spec.md 3. This is the
// recursive half-type layout spec.md 2 specifies (half(256) = UInt128).
type UInt256 struct {
	lo, hi UInt128
}

var zeroUInt256 UInt256

// MaxUInt256 is the largest representable UInt256 value.
var MaxUInt256 = UInt256{lo: MaxUInt128, hi: MaxUInt128}

// UInt256From64 widens v to a UInt256.
func UInt256From64(v uint64) UInt256 { return UInt256{lo: UInt128From64(v)} }

// UInt256FromHalf places lo in the lower 128 bits, zeroing the upper half.
func UInt256FromHalf(lo UInt128) UInt256 { return UInt256{lo: lo} }

// UInt256FromParts builds a UInt256 from its low and high halves. This is
// the join(hi, lo) of spec.md 4.1: hi occupies the upper half, resolving
// the ordering spec.md 9 flags as an open question.
func UInt256FromParts(lo, hi UInt128) UInt256 { return UInt256{lo: lo, hi: hi} }

// Halves returns the low and high UInt128 halves of u.
func (u UInt256) Halves() (lo, hi UInt128) { return u.lo, u.hi }

func (u UInt256) IsZero() bool { return u == zeroUInt256 }

func (u UInt256) Cmp(v UInt256) int {
	if c := u.hi.Cmp(v.hi); c != 0 {
		return c
	}
	return u.lo.Cmp(v.lo)
}

func (u UInt256) Equal(v UInt256) bool        { return u == v }
func (u UInt256) LessThan(v UInt256) bool     { return u.Cmp(v) < 0 }
func (u UInt256) LessOrEqual(v UInt256) bool  { return u.Cmp(v) <= 0 }
func (u UInt256) GreaterThan(v UInt256) bool  { return u.Cmp(v) > 0 }
func (u UInt256) GreaterEqual(v UInt256) bool { return u.Cmp(v) >= 0 }

func (u UInt256) And(v UInt256) UInt256 { return UInt256{u.lo.And(v.lo), u.hi.And(v.hi)} }
func (u UInt256) Or(v UInt256) UInt256  { return UInt256{u.lo.Or(v.lo), u.hi.Or(v.hi)} }
func (u UInt256) Xor(v UInt256) UInt256 { return UInt256{u.lo.Xor(v.lo), u.hi.Xor(v.hi)} }
func (u UInt256) Not() UInt256          { return UInt256{u.lo.Not(), u.hi.Not()} }

// LeadingZeros is clz(u): defined as 256 for the zero value (spec.md 4.1/9).
func (u UInt256) LeadingZeros() uint {
	if !u.hi.IsZero() {
		return u.hi.LeadingZeros()
	}
	return 128 + u.lo.LeadingZeros()
}

// CountSignificantWords is the number of 64-bit words, from the low end,
// up to and including the highest nonzero one (intx count_significant_words,
// spec.md 6/9).
func (u UInt256) CountSignificantWords() int {
	if h := u.hi.CountSignificantWords(); h != 0 {
		return h + 2
	}
	return u.lo.CountSignificantWords()
}

// IsUInt128 reports whether u fits in the low half without truncation.
func (u UInt256) IsUInt128() bool { return u.hi.IsZero() }

// AsUInt128 truncates u to its low 128 bits.
func (u UInt256) AsUInt128() UInt128 { return u.lo }
