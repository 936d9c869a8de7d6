package intx

import "math/bits"

// Mul is the truncated (same-width) product of spec.md 4.5, computed as a
// word-granularity schoolbook loop rather than a further halving recursion:
// intx.hpp's mul_loop_opt takes the same shortcut for its widest widths,
// only ever forming the columns that can still land inside the result.
func (u UInt512) Mul(v UInt512) UInt512 {
	x := wordsFromUInt512(u)
	y := wordsFromUInt512(v)
	var out [8]uint64

	var carryLo, carryHi uint64
	for k := 0; k < 8; k++ {
		lo, hi, top := carryLo, carryHi, uint64(0)
		for i := 0; i <= k; i++ {
			j := k - i
			ph, pl := bits.Mul64(x[i], y[j])
			var c uint64
			lo, c = bits.Add64(lo, pl, 0)
			hi, c = bits.Add64(hi, ph, c)
			top += c
		}
		out[k] = lo
		carryLo, carryHi = hi, top
	}

	return uint512FromWords(out)
}
