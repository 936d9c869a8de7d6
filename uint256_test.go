package intx

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

var uint256Cases = []UInt256{
	zeroUInt256,
	UInt256From64(1),
	UInt256From64(2),
	UInt256From64(10),
	UInt256From64(7),
	UInt256FromHalf(MaxUInt128),
	UInt256FromParts(UInt128{}, UInt128From64(1)),
	UInt256FromParts(UInt128From64(0xdeadbeefcafebabe), UInt128{}),
	MaxUInt256,
	MaxUInt256.Sub(UInt256From64(1)),
	UInt256From64(1).Lsh(255),
	UInt256From64(1).Lsh(256 - 1),
}

func TestUInt256AddSubAgainstBig(t *testing.T) {
	for _, a := range uint256Cases {
		for _, b := range uint256Cases {
			want := wrap256(new(big.Int).Add(big256(a), big256(b)))
			got := big256(a.Add(b))
			require.Equal(t, want.String(), got.String(), "Add(%s,%s)", a, b)

			wantSub := wrap256(new(big.Int).Sub(big256(a), big256(b)))
			gotSub := big256(a.Sub(b))
			require.Equal(t, wantSub.String(), gotSub.String(), "Sub(%s,%s)", a, b)
		}
	}
}

func TestUInt256MulTruncated(t *testing.T) {
	for _, a := range uint256Cases {
		for _, b := range uint256Cases {
			want := wrap256(new(big.Int).Mul(big256(a), big256(b)))
			got := big256(a.Mul(b))
			require.Equal(t, want.String(), got.String(), "Mul(%s,%s)", a, b)
		}
	}
}

func TestUInt256UMulFullWidth(t *testing.T) {
	for _, a := range uint256Cases {
		for _, b := range uint256Cases {
			want := new(big.Int).Mul(big256(a), big256(b))
			got := big512(a.UMul(b))
			require.Equal(t, want.String(), got.String(), "UMul(%s,%s)", a, b)
		}
	}
}

func TestUInt256QuoRemAgainstBig(t *testing.T) {
	for _, a := range uint256Cases {
		for _, b := range uint256Cases {
			if b.IsZero() {
				_, _, err := a.QuoRem(b)
				require.ErrorIs(t, err, ErrDivisionByZero)
				continue
			}
			q, r, err := a.QuoRem(b)
			require.NoError(t, err)

			bigA, bigB := big256(a), big256(b)
			wantQ := new(big.Int).Quo(bigA, bigB)
			wantR := new(big.Int).Rem(bigA, bigB)
			require.Equal(t, wantQ.String(), big256(q).String(), "Quo(%s,%s)", a, b)
			require.Equal(t, wantR.String(), big256(r).String(), "Rem(%s,%s)", a, b)
		}
	}
}

func TestUInt256UDivRemOfAllOnesByTen(t *testing.T) {
	res, err := MaxUInt256.UDivRem(UInt256From64(10))
	require.NoError(t, err)
	wantQ, wantR := new(big.Int).QuoRem(big256(MaxUInt256), big.NewInt(10), new(big.Int))
	require.Equal(t, wantQ, big256(res.Quotient))
	require.Equal(t, wantR, big256(res.Remainder))
}

func TestUInt256SDivRem(t *testing.T) {
	// sdivrem(-7, 2) truncates toward zero: q = -3, r = -1.
	neg7 := UInt256From64(7).Neg()
	two := UInt256From64(2)
	q, r, err := neg7.SDivRem(two)
	require.NoError(t, err)
	require.Equal(t, UInt256From64(3).Neg(), q)
	require.Equal(t, UInt256From64(1).Neg(), r)
}

func TestUInt256ShiftsAgainstBig(t *testing.T) {
	for _, a := range uint256Cases {
		for _, shift := range []uint{0, 1, 5, 63, 64, 65, 127, 128, 129, 200, 255, 256, 300} {
			want := wrap256(new(big.Int).Lsh(big256(a), shift))
			got := big256(a.Lsh(shift))
			require.Equal(t, want.String(), got.String(), "Lsh(%s,%d)", a, shift)

			wantR := new(big.Int).Rsh(big256(a), shift)
			gotR := big256(a.Rsh(shift))
			require.Equal(t, wantR.String(), gotR.String(), "Rsh(%s,%d)", a, shift)
		}
	}
}

func TestUInt256LeadingZeros(t *testing.T) {
	require.EqualValues(t, 256, zeroUInt256.LeadingZeros())
	require.EqualValues(t, 255, UInt256From64(1).LeadingZeros())
	require.EqualValues(t, 0, MaxUInt256.LeadingZeros())
}

func TestUInt256CountSignificantWords(t *testing.T) {
	require.Equal(t, 0, zeroUInt256.CountSignificantWords())
	require.Equal(t, 1, UInt256From64(1).CountSignificantWords())
	require.Equal(t, 4, MaxUInt256.CountSignificantWords())
}

func TestExp256(t *testing.T) {
	require.Equal(t, UInt256From64(1).Lsh(255), Exp256(UInt256From64(2), UInt256From64(255)))
	require.Equal(t, zeroUInt256, Exp256(UInt256From64(2), UInt256From64(256)))
	require.Equal(t, UInt256From64(1), Exp256(UInt256From64(5), UInt256From64(0)))
}

func TestUInt256ToStringAllOnes(t *testing.T) {
	require.Equal(t,
		"115792089237316195423570985008687907853269984665640564039457584007913129639935",
		MaxUInt256.String())
}

func TestUInt256RoundTripString(t *testing.T) {
	for _, a := range uint256Cases {
		s := a.String()
		got, err := FromString256(s)
		require.NoError(t, err)
		require.Equal(t, a, got, "round trip %q", s)
	}
}

func TestUInt256FromHexString(t *testing.T) {
	got, err := FromString256("0xdeadbeefcafebabe")
	require.NoError(t, err)
	require.Equal(t, UInt256FromHalf(UInt128From64(0xdeadbeefcafebabe)), got)
}

func TestUInt256ParseSyntaxErrors(t *testing.T) {
	_, err := FromString256("")
	require.Error(t, err)

	_, err = FromString256("12x4")
	require.Error(t, err)

	_, err = FromString256("0xzz")
	require.Error(t, err)

	long := make([]byte, decimalDigitBound(256)+1)
	for i := range long {
		long[i] = '9'
	}
	_, err = FromString256(string(long))
	require.Error(t, err)
	var syntaxErr *ErrSyntax
	require.ErrorAs(t, err, &syntaxErr)
}
