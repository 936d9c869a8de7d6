package intx

import "strings"

// decimalDigitBound is ceil(N*log10(2)), the maximum number of decimal
// digits a UInt<N> literal can need, per spec.md 9's "Parser length
// bounds" fix (the source's from_string has no such cap and can silently
// wrap on an over-long literal).
func decimalDigitBound(bits int) int {
	// log10(2) ~= 0.30103; multiplying by 30103 and dividing by 100000
	// keeps this integer and exact enough to round up correctly for
	// every width this library defines.
	return (bits*30103 + 99999) / 100000
}

// hexDigitBound is ceil(N/4), the maximum number of hex digits (after the
// 0x prefix) a UInt<N> literal can need.
func hexDigitBound(bits int) int { return (bits + 3) / 4 }

// String implements fmt.Stringer for UInt256: repeated udivrem by 10,
// appending the remainder as an ASCII digit and reversing at the end, per
// spec.md 4.8. The zero value formats as "0".
func (u UInt256) String() string {
	if u.IsZero() {
		return "0"
	}
	ten := UInt256From64(10)
	var buf [96]byte
	i := len(buf)
	for !u.IsZero() {
		q, r, _ := u.QuoRem(ten)
		lo, _ := r.Halves()
		digit, _ := lo.Parts()
		i--
		buf[i] = byte('0' + digit)
		u = q
	}
	return string(buf[i:])
}

func (u UInt512) String() string {
	if u.IsZero() {
		return "0"
	}
	ten := UInt512From64(10)
	var buf [160]byte
	i := len(buf)
	for !u.IsZero() {
		q, r, _ := u.QuoRem(ten)
		lo256, _ := r.Halves()
		lo128, _ := lo256.Halves()
		digit, _ := lo128.Parts()
		i--
		buf[i] = byte('0' + digit)
		u = q
	}
	return string(buf[i:])
}

// FromDecimalString256 parses a base-10 literal into a UInt256, per spec.md
// 4.8's from_string: multiply the accumulator by 10 and add each digit,
// with no overflow check (wide multiplication wraps silently, matching the
// "arithmetic overflow is not an error" rule of spec.md 7). The input
// length is capped at decimalDigitBound(256) digits, per spec.md 9.
func FromDecimalString256(s string) (UInt256, error) {
	if s == "" {
		return UInt256{}, &ErrSyntax{Width: 256, Input: s, Cause: errEmptyInput}
	}
	if len(s) > decimalDigitBound(256) {
		return UInt256{}, &ErrSyntax{Width: 256, Input: s, Cause: errTooLong}
	}
	acc := UInt256{}
	ten := UInt256From64(10)
	for _, c := range s {
		d, ok := decimalDigit(c)
		if !ok {
			return UInt256{}, &ErrSyntax{Width: 256, Input: s, Cause: errBadDigit}
		}
		acc = acc.Mul(ten).Add(UInt256From64(d))
	}
	return acc, nil
}

func FromDecimalString512(s string) (UInt512, error) {
	if s == "" {
		return UInt512{}, &ErrSyntax{Width: 512, Input: s, Cause: errEmptyInput}
	}
	if len(s) > decimalDigitBound(512) {
		return UInt512{}, &ErrSyntax{Width: 512, Input: s, Cause: errTooLong}
	}
	acc := UInt512{}
	ten := UInt512From64(10)
	for _, c := range s {
		d, ok := decimalDigit(c)
		if !ok {
			return UInt512{}, &ErrSyntax{Width: 512, Input: s, Cause: errBadDigit}
		}
		acc = acc.Mul(ten).Add(UInt512From64(d))
	}
	return acc, nil
}

func decimalDigit(c rune) (uint64, bool) {
	if c < '0' || c > '9' {
		return 0, false
	}
	return uint64(c - '0'), true
}

// FromString256 dispatches on a 0x prefix between FromHexString256 and
// FromDecimalString256, per spec.md 4.8.
func FromString256(s string) (UInt256, error) {
	if strings.HasPrefix(s, "0x") {
		return FromHexString256(s)
	}
	return FromDecimalString256(s)
}

func FromString512(s string) (UInt512, error) {
	if strings.HasPrefix(s, "0x") {
		return FromHexString512(s)
	}
	return FromDecimalString512(s)
}
