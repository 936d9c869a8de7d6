package intx

// DivResult512 bundles a quotient and remainder, mirroring intx's udivrem_t
// return type (spec.md 4.6).
type DivResult512 struct {
	Quotient, Remainder UInt512
}

// UDivRem is udivrem(u, v) for UInt512 (spec.md 4.6).
func (u UInt512) UDivRem(v UInt512) (DivResult512, error) {
	q, r, err := u.QuoRem(v)
	if err != nil {
		return DivResult512{}, err
	}
	return DivResult512{Quotient: q, Remainder: r}, nil
}

// QuoRem is UDivRem with a Go-idiomatic (value, value, error) shape. When
// both the dividend and the divisor fit in a UInt256, the division is
// delegated down to
// UInt256.QuoRem rather than driving the word-array core with a
// mostly-zero divisor, per spec.md 4.6 step 1's "v fits in the half type"
// short-circuit.
func (u UInt512) QuoRem(v UInt512) (q, r UInt512, err error) {
	if v.IsUInt256() {
		lo, hi := u.Halves()
		if hi.IsZero() {
			ql, rl, e := lo.QuoRem(v.AsUInt256())
			if e != nil {
				return UInt512{}, UInt512{}, e
			}
			return UInt512FromHalf(ql), UInt512FromHalf(rl), nil
		}
	}

	uw := wordsFromUInt512(u)
	vw := wordsFromUInt512(v)
	qw, rw, err := udivrem512(uw, vw)
	if err != nil {
		return UInt512{}, UInt512{}, err
	}
	return uint512FromWords(qw), uint512FromWords(rw), nil
}

// Quo panics on division by zero, matching Go's native / operator.
func (u UInt512) Quo(v UInt512) UInt512 {
	q, _, err := u.QuoRem(v)
	if err != nil {
		panic(err)
	}
	return q
}

// Rem panics on division by zero, matching Go's native % operator.
func (u UInt512) Rem(v UInt512) UInt512 {
	_, r, err := u.QuoRem(v)
	if err != nil {
		panic(err)
	}
	return r
}

// SDivRem is sdivrem(u, v) for UInt512 (spec.md 4.6): two's-complement
// signed division, truncating toward zero with a remainder that takes the
// dividend's sign.
func (u UInt512) SDivRem(v UInt512) (q, r UInt512, err error) {
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
		return UInt512{}, UInt512{}, err
	}
	if negU != negV {
		q = q.Neg()
	}
	if negU {
		r = r.Neg()
	}
	return q, r, nil
}

func (u UInt512) SQuo(v UInt512) UInt512 {
	q, _, err := u.SDivRem(v)
	if err != nil {
		panic(err)
	}
	return q
}

func (u UInt512) SRem(v UInt512) UInt512 {
	_, r, err := u.SDivRem(v)
	if err != nil {
		panic(err)
	}
	return r
}
