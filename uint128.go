package intx

import "math/bits"

// UInt128 is the half-type UInt256 is built from: the "platform-specific
// 128-bit primitive" spec.md treats as an external collaborator, realized
// here as a small hand-written fallback over math/bits intrinsics rather
// than a compiler-provided int128, exactly as spec.md 9 anticipates.
type UInt128 struct {
	lo, hi uint64
}

var zeroUInt128 UInt128

// MaxUInt128 is the largest representable UInt128 value.
var MaxUInt128 = UInt128{lo: ^uint64(0), hi: ^uint64(0)}

// UInt128From64 widens v to a UInt128.
func UInt128From64(v uint64) UInt128 { return UInt128{lo: v} }

// UInt128FromParts builds a UInt128 from its low and high 64-bit words.
func UInt128FromParts(lo, hi uint64) UInt128 { return UInt128{lo: lo, hi: hi} }

// Parts returns the low and high 64-bit words of u.
func (u UInt128) Parts() (lo, hi uint64) { return u.lo, u.hi }

func (u UInt128) IsZero() bool { return u == zeroUInt128 }

func (u UInt128) Cmp(v UInt128) int {
	if u.hi != v.hi {
		if u.hi < v.hi {
			return -1
		}
		return 1
	}
	if u.lo != v.lo {
		if u.lo < v.lo {
			return -1
		}
		return 1
	}
	return 0
}

func (u UInt128) Equal(v UInt128) bool        { return u == v }
func (u UInt128) LessThan(v UInt128) bool     { return u.Cmp(v) < 0 }
func (u UInt128) LessOrEqual(v UInt128) bool  { return u.Cmp(v) <= 0 }
func (u UInt128) GreaterThan(v UInt128) bool  { return u.Cmp(v) > 0 }
func (u UInt128) GreaterEqual(v UInt128) bool { return u.Cmp(v) >= 0 }

func (u UInt128) And(v UInt128) UInt128 { return UInt128{u.lo & v.lo, u.hi & v.hi} }
func (u UInt128) Or(v UInt128) UInt128  { return UInt128{u.lo | v.lo, u.hi | v.hi} }
func (u UInt128) Xor(v UInt128) UInt128 { return UInt128{u.lo ^ v.lo, u.hi ^ v.hi} }
func (u UInt128) Not() UInt128          { return UInt128{^u.lo, ^u.hi} }

// AddCarry computes u+v mod 2^128 and the carry out, per spec.md 4.3's
// add_with_carry: the low-half add produces c1, the high-half add produces
// c2, folding c1 into the high half produces c3, and the final carry is
// c2 OR c3 (both cannot fire, since a sum already bounded by the carry-in
// cannot itself overflow).
func (u UInt128) AddCarry(v UInt128) (sum UInt128, carryOut uint64) {
	lo, c1 := bits.Add64(u.lo, v.lo, 0)
	hi, c2 := bits.Add64(u.hi, v.hi, 0)
	hi, c3 := bits.Add64(hi, c1, 0)
	return UInt128{lo: lo, hi: hi}, c2 | c3
}

func (u UInt128) Add(v UInt128) UInt128 {
	sum, _ := u.AddCarry(v)
	return sum
}

func (u UInt128) Sub(v UInt128) UInt128 {
	lo, b1 := bits.Sub64(u.lo, v.lo, 0)
	hi, _ := bits.Sub64(u.hi, v.hi, b1)
	return UInt128{lo: lo, hi: hi}
}

// Neg returns the two's-complement negation ~u + 1, per spec.md 4.3.
func (u UInt128) Neg() UInt128 {
	return zeroUInt128.Sub(u)
}

func (u UInt128) Lsh(shift uint) UInt128 {
	const h = 64
	switch {
	case shift == 0:
		return u
	case shift < h:
		spill := (u.lo >> (h - shift - 1)) >> 1
		return UInt128{lo: u.lo << shift, hi: (u.hi << shift) | spill}
	case shift < 2*h:
		return UInt128{lo: 0, hi: u.lo << (shift - h)}
	default:
		return UInt128{}
	}
}

func (u UInt128) Rsh(shift uint) UInt128 {
	const h = 64
	switch {
	case shift == 0:
		return u
	case shift < h:
		spill := (u.hi << (h - shift - 1)) << 1
		return UInt128{lo: (u.lo >> shift) | spill, hi: u.hi >> shift}
	case shift < 2*h:
		return UInt128{lo: u.hi >> (shift - h), hi: 0}
	default:
		return UInt128{}
	}
}

// LeadingZeros is clz for UInt128: clz(0) is defined as 128, per spec.md
// 4.1/9, rather than left undefined.
func (u UInt128) LeadingZeros() uint {
	if u.hi != 0 {
		return clz64(u.hi)
	}
	return 64 + clz64(u.lo)
}

// CountSignificantWords is the number of 64-bit words from the low end up
// to and including the highest nonzero one; 0 for the zero value.
func (u UInt128) CountSignificantWords() int {
	if u.hi != 0 {
		return 2
	}
	if u.lo != 0 {
		return 1
	}
	return 0
}

// Mul is the truncated (same-width) product, per spec.md 4.5: only the
// low half of the cross terms is folded in, discarding overflow beyond
// 128 bits.
func (u UInt128) Mul(v UInt128) UInt128 {
	hi, lo := bits.Mul64(u.lo, v.lo)
	hi += u.hi*v.lo + u.lo*v.hi
	return UInt128{lo: lo, hi: hi}
}

// UMul128 is umul(x, y) for UInt128 operands: the full, non-truncated
// 256-bit product, built from four half multiplies exactly as spec.md 4.5
// describes (with UInt128's own halves being plain uint64 words, so the
// four half-multiplies are math/bits.Mul64 calls rather than a further
// recursion).
func UMul128(x, y UInt128) UInt256 {
	t0hi, t0lo := bits.Mul64(x.lo, y.lo)
	t1hi, t1lo := bits.Mul64(x.hi, y.lo)
	t2hi, t2lo := bits.Mul64(x.lo, y.hi)
	t3hi, t3lo := bits.Mul64(x.hi, y.hi)

	u1lo, u1carry := bits.Add64(t1lo, t0hi, 0)
	u1hi := t1hi + u1carry

	u2lo, u2carry := bits.Add64(t2lo, u1lo, 0)
	u2hi := t2hi + u2carry

	lo := UInt128{lo: t0lo, hi: u2lo}

	hiLo, c1 := bits.Add64(t3lo, u2hi, 0)
	hiHi := t3hi + c1
	hiLo, c2 := bits.Add64(hiLo, u1hi, 0)
	hiHi += c2
	hi := UInt128{lo: hiLo, hi: hiHi}

	return UInt256{lo: lo, hi: hi}
}

// quoRem64 divides u by the single 64-bit word v, per the "v fits in one
// base word" short-circuit of spec.md 4.6 step 1, using the hardware
// 128-by-64 division math/bits.Div64 exposes.
func (u UInt128) quoRem64(v uint64) (q UInt128, r uint64) {
	if u.hi < v {
		q.lo, r = bits.Div64(u.hi, u.lo, v)
		return q, r
	}
	q.hi, r = bits.Div64(0, u.hi, v)
	q.lo, r = bits.Div64(r, u.lo, v)
	return q, r
}

// QuoRem implements UDivRem for UInt128 (spec.md 4.6). UInt256.QuoRem
// calls it instead of the word-array Knuth D core when both its dividend
// and its divisor fit in 128 bits; callers that only need 128-bit division
// can use it directly.
func (u UInt128) QuoRem(v UInt128) (q, r UInt128, err error) {
	if v.IsZero() {
		return UInt128{}, UInt128{}, ErrDivisionByZero
	}
	if v.hi == 0 {
		var r64 uint64
		q, r64 = u.quoRem64(v.lo)
		return q, UInt128From64(r64), nil
	}
	if u.Cmp(v) < 0 {
		return UInt128{}, u, nil
	}

	s := v.LeadingZeros()
	vn := v.Lsh(s)
	un := u.Rsh(1)

	var tq UInt128
	tq.lo, _ = bits.Div64(un.hi, un.lo, vn.hi)
	tq = tq.Rsh(63 - s)
	if !tq.IsZero() {
		tq = tq.Sub(UInt128From64(1))
	}

	q = tq
	r = u.Sub(tq.Mul(v))
	if r.Cmp(v) >= 0 {
		q = q.Add(UInt128From64(1))
		r = r.Sub(v)
	}
	return q, r, nil
}
