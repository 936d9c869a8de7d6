package intx

import "math/bits"

// divWordsBySingle implements the "v fits in one base word" short-circuit
// of spec.md 4.6 step 1: plain word-by-word long division of a multi-word
// dividend by a single 64-bit word, using the hardware 128-by-64 divide
// math/bits.Div64 exposes. u is most-significant-word-last (u[len(u)-1] is
// the top word); q is written in the same order.
func divWordsBySingle(u []uint64, v uint64, q []uint64) (r uint64) {
	for i := len(u) - 1; i >= 0; i-- {
		q[i], r = bits.Div64(r, u[i], v)
	}
	return r
}

// knuthDivWords implements Knuth's Algorithm D (TAOCP 4.3.1) in base 2^64,
// per spec.md 4.6. u and v are little-endian word slices (u[0] is the
// least significant word); v must already be trimmed to its significant
// length with v[len(v)-1] != 0 and len(v) >= 2 (the single-word case is
// handled by divWordsBySingle instead, never by this function). q and r
// are caller-provided output slices: len(q) == len(u)-len(v)+1,
// len(r) == len(v). un and vn are caller-provided scratch buffers backing
// the normalized copies (len(un) == len(u)+1, len(vn) == len(v)) so that
// callers can supply fixed-size stack arrays and keep the division core
// allocation-free.
func knuthDivWords(u, v []uint64, q, r, un, vn []uint64) {
	n := len(v)
	m := len(u) - n

	s := clz64(v[n-1])

	for i := n - 1; i > 0; i-- {
		vn[i] = (v[i] << s) | (v[i-1] >> (64 - s))
	}
	vn[0] = v[0] << s

	un[len(u)] = u[len(u)-1] >> (64 - s)
	for i := len(u) - 1; i > 0; i-- {
		un[i] = (u[i] << s) | (u[i-1] >> (64 - s))
	}
	un[0] = u[0] << s

	for j := m; j >= 0; j-- {
		topHi, topLo := un[j+n], un[j+n-1]

		var qhat, rhat uint64
		overflowed := false
		if topHi == vn[n-1] {
			qhat = ^uint64(0)
			var carry uint64
			rhat, carry = bits.Add64(topLo, vn[n-1], 0)
			overflowed = carry != 0
		} else {
			qhat, rhat = bits.Div64(topHi, topLo, vn[n-1])
		}

		for !overflowed {
			hi, lo := bits.Mul64(qhat, vn[n-2])
			if hi < rhat || (hi == rhat && lo <= un[j+n-2]) {
				break
			}
			qhat--
			var carry uint64
			rhat, carry = bits.Add64(rhat, vn[n-1], 0)
			overflowed = carry != 0
		}

		var borrow, carry uint64
		for i := 0; i < n; i++ {
			ph, pl := bits.Mul64(qhat, vn[i])
			pl, c := bits.Add64(pl, carry, 0)
			ph += c
			t, b := bits.Sub64(un[j+i], pl, borrow)
			un[j+i] = t
			borrow = b
			carry = ph
		}
		t, b := bits.Sub64(un[j+n], carry, borrow)
		un[j+n] = t
		borrow = b

		if borrow != 0 {
			qhat--
			var c uint64
			for i := 0; i < n; i++ {
				sum, cc := bits.Add64(un[j+i], vn[i], c)
				un[j+i] = sum
				c = cc
			}
			un[j+n] += c
		}

		q[j] = qhat
	}

	for i := 0; i < n-1; i++ {
		r[i] = (un[i] >> s) | (un[i+1] << (64 - s))
	}
	r[n-1] = un[n-1] >> s
}

// significantWords returns the number of words in w, from the low end, up
// to and including the highest nonzero one.
func significantWords(w []uint64) int {
	for i := len(w); i > 0; i-- {
		if w[i-1] != 0 {
			return i
		}
	}
	return 0
}

func isZeroWords(w []uint64) bool {
	for _, x := range w {
		if x != 0 {
			return false
		}
	}
	return true
}

func cmpWords(a, b []uint64) int {
	for i := len(a) - 1; i >= 0; i-- {
		if a[i] != b[i] {
			if a[i] < b[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}
