package intx

// DivResult256 bundles a quotient and remainder, mirroring intx's udivrem_t
// return type (spec.md 4.6).
type DivResult256 struct {
	Quotient, Remainder UInt256
}

// UDivRem is udivrem(u, v) for UInt256 (spec.md 4.6): unsigned division
// producing both quotient and remainder in one pass.
func (u UInt256) UDivRem(v UInt256) (DivResult256, error) {
	q, r, err := u.QuoRem(v)
	if err != nil {
		return DivResult256{}, err
	}
	return DivResult256{Quotient: q, Remainder: r}, nil
}

// QuoRem is UDivRem with a Go-idiomatic (value, value, error) shape,
// dispatching through the shared word-array Knuth D core in div.go.
func (u UInt256) QuoRem(v UInt256) (q, r UInt256, err error) {
	if v.IsUInt128() {
		lo, hi := u.Halves()
		if hi.IsZero() {
			ql, rl, e := lo.QuoRem(v.AsUInt128())
			if e != nil {
				return UInt256{}, UInt256{}, e
			}
			return UInt256FromHalf(ql), UInt256FromHalf(rl), nil
		}
	}

	uw := wordsFromUInt256(u)
	vw := wordsFromUInt256(v)
	qw, rw, err := udivrem256(uw, vw)
	if err != nil {
		return UInt256{}, UInt256{}, err
	}
	return uint256FromWords(qw), uint256FromWords(rw), nil
}

// Quo panics on division by zero, matching Go's native / operator.
func (u UInt256) Quo(v UInt256) UInt256 {
	q, _, err := u.QuoRem(v)
	if err != nil {
		panic(err)
	}
	return q
}

// Rem panics on division by zero, matching Go's native % operator.
func (u UInt256) Rem(v UInt256) UInt256 {
	_, r, err := u.QuoRem(v)
	if err != nil {
		panic(err)
	}
	return r
}

// SDivRem is sdivrem(u, v) for UInt256 (spec.md 4.6): signed division by
// two's-complement reinterpretation, with no separate signed type. The
// quotient truncates toward zero and the remainder takes the dividend's
// sign, matching Go's own / and % on signed integers.
func (u UInt256) SDivRem(v UInt256) (q, r UInt256, err error) {
	negU, negV := u.IsNegative(), v.IsNegative()
	uu, vv := u, v
	if negU {
		uu = u.Neg()
	}
	if negV {
		vv = v.Neg()
	}
	q, r, err = uu.QuoRem(vv)
	if err != nil {
		return UInt256{}, UInt256{}, err
	}
	if negU != negV {
		q = q.Neg()
	}
	if negU {
		r = r.Neg()
	}
	return q, r, nil
}

func (u UInt256) SQuo(v UInt256) UInt256 {
	q, _, err := u.SDivRem(v)
	if err != nil {
		panic(err)
	}
	return q
}

func (u UInt256) SRem(v UInt256) UInt256 {
	_, r, err := u.SDivRem(v)
	if err != nil {
		panic(err)
	}
	return r
}
