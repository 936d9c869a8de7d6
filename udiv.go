package intx

// udivrem256 is the width-specific dispatcher behind UInt256.QuoRem: the
// division-by-zero check, the "v fits in one word" short-circuit, and the
// general multi-word case spec.md 4.6 step 1 describes, fixed to 4 words.
// u and v are little-endian word arrays; every scratch buffer here is a
// fixed-size array living on the stack, never a heap-allocated slice, per
// spec.md 5's "no allocation on the hot paths".
func udivrem256(u, v [4]uint64) (q, r [4]uint64, err error) {
	if isZeroWords(v[:]) {
		return q, r, ErrDivisionByZero
	}
	if cmpWords(u[:], v[:]) < 0 {
		return q, u, nil
	}

	nv := significantWords(v[:])
	if nv == 1 {
		rem := divWordsBySingle(u[:], v[0], q[:])
		r[0] = rem
		return q, r, nil
	}

	var un [5]uint64
	var vn, qq, rr [4]uint64
	knuthDivWords(u[:], v[:nv], qq[:len(u)-nv+1], rr[:nv], un[:], vn[:nv])
	copy(q[:], qq[:len(u)-nv+1])
	copy(r[:], rr[:nv])
	return q, r, nil
}

// udivrem512 is udivrem256's 8-word twin, behind UInt512.QuoRem.
func udivrem512(u, v [8]uint64) (q, r [8]uint64, err error) {
	if isZeroWords(v[:]) {
		return q, r, ErrDivisionByZero
	}
	if cmpWords(u[:], v[:]) < 0 {
		return q, u, nil
	}

	nv := significantWords(v[:])
	if nv == 1 {
		rem := divWordsBySingle(u[:], v[0], q[:])
		r[0] = rem
		return q, r, nil
	}

	var un [9]uint64
	var vn, qq, rr [8]uint64
	knuthDivWords(u[:], v[:nv], qq[:len(u)-nv+1], rr[:nv], un[:], vn[:nv])
	copy(q[:], qq[:len(u)-nv+1])
	copy(r[:], rr[:nv])
	return q, r, nil
}
