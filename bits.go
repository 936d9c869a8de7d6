package intx

import "math/bits"

// clz64 returns the number of leading zero bits in w, treating w == 0 as
// having all 64 bits leading-zero. This is the base case of every width's
// clz: spec.md 4.1/9 both require clz(0) to be defined (as the operand's
// bit width) rather than left undefined.
func clz64(w uint64) uint { return uint(bits.LeadingZeros64(w)) }
