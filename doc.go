/*
Package intx provides UInt128, UInt256 and UInt512: fixed-width unsigned
integers built as a recursive pair of halves, in the style of the intx C++
library. UInt256 and UInt512 are value types; every operation returns a new
value rather than mutating the receiver.

Construction:

	UInt256From64(v uint64) UInt256
	UInt256FromHalf(lo UInt128) UInt256
	UInt256FromParts(lo, hi UInt128) UInt256
	FromString256(s string) (UInt256, error)
	FromDecimalString256(s string) (UInt256, error)
	FromHexString256(s string) (UInt256, error)
	UInt256FromBigEndian(b []byte) (UInt256, error)

UInt512 has the same set of constructors, one level up (its half-type is
UInt256 rather than UInt128).

Arithmetic overflows silently, wrapping modulo 2^N, matching the hardware
semantics this type exists to expose. Division by zero and malformed parse
input are the only two error conditions. QuoRem, UDivRem, and SDivRem report
them through a normal Go error; the Quo/Rem/SQuo/SRem convenience methods
panic instead, matching Go's own / and % operators.
*/
package intx
