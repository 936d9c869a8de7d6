package intx

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

var uint512Cases = []UInt512{
	zeroUInt512,
	UInt512From64(1),
	UInt512From64(10),
	UInt512FromHalf(MaxUInt256),
	UInt512FromParts(UInt256{}, UInt256From64(1)),
	UInt512FromParts(UInt256From64(0xdeadbeefcafebabe), UInt256From64(3)),
	MaxUInt512,
	MaxUInt512.Sub(UInt512From64(1)),
	UInt512From64(1).Lsh(511),
}

func TestUInt512AddSubAgainstBig(t *testing.T) {
	for _, a := range uint512Cases {
		for _, b := range uint512Cases {
			want := wrap512(new(big.Int).Add(big512(a), big512(b)))
			got := big512(a.Add(b))
			require.Equal(t, want.String(), got.String(), "Add(%s,%s)", a, b)

			wantSub := wrap512(new(big.Int).Sub(big512(a), big512(b)))
			gotSub := big512(a.Sub(b))
			require.Equal(t, wantSub.String(), gotSub.String(), "Sub(%s,%s)", a, b)
		}
	}
}

func TestUInt512MulTruncated(t *testing.T) {
	for _, a := range uint512Cases {
		for _, b := range uint512Cases {
			want := wrap512(new(big.Int).Mul(big512(a), big512(b)))
			got := big512(a.Mul(b))
			require.Equal(t, want.String(), got.String(), "Mul(%s,%s)", a, b)
		}
	}
}

func TestUInt512QuoRemAgainstBig(t *testing.T) {
	for _, a := range uint512Cases {
		for _, b := range uint512Cases {
			if b.IsZero() {
				_, _, err := a.QuoRem(b)
				require.ErrorIs(t, err, ErrDivisionByZero)
				continue
			}
			q, r, err := a.QuoRem(b)
			require.NoError(t, err)

			bigA, bigB := big512(a), big512(b)
			wantQ := new(big.Int).Quo(bigA, bigB)
			wantR := new(big.Int).Rem(bigA, bigB)
			require.Equal(t, wantQ.String(), big512(q).String(), "Quo(%s,%s)", a, b)
			require.Equal(t, wantR.String(), big512(r).String(), "Rem(%s,%s)", a, b)
		}
	}
}

func TestUInt512ShiftsAgainstBig(t *testing.T) {
	for _, a := range uint512Cases {
		for _, shift := range []uint{0, 1, 63, 64, 255, 256, 257, 511, 512, 600} {
			want := wrap512(new(big.Int).Lsh(big512(a), shift))
			got := big512(a.Lsh(shift))
			require.Equal(t, want.String(), got.String(), "Lsh(%s,%d)", a, shift)

			wantR := new(big.Int).Rsh(big512(a), shift)
			gotR := big512(a.Rsh(shift))
			require.Equal(t, wantR.String(), gotR.String(), "Rsh(%s,%d)", a, shift)
		}
	}
}

func TestExp512(t *testing.T) {
	require.Equal(t, UInt512From64(1).Lsh(511), Exp512(UInt512From64(2), UInt512From64(511)))
	require.Equal(t, zeroUInt512, Exp512(UInt512From64(2), UInt512From64(512)))
}

func TestUInt512RoundTripString(t *testing.T) {
	for _, a := range uint512Cases {
		s := a.String()
		got, err := FromString512(s)
		require.NoError(t, err)
		require.Equal(t, a, got, "round trip %q", s)
	}
}

func TestUInt512QuoRemDelegatesToUInt256(t *testing.T) {
	a := UInt512FromHalf(MaxUInt256)
	b := UInt512From64(3)
	q, r, err := a.QuoRem(b)
	require.NoError(t, err)

	wantQ, wantR := new(big.Int).QuoRem(big512(a), big.NewInt(3), new(big.Int))
	require.Equal(t, wantQ.String(), big512(q).String())
	require.Equal(t, wantR.String(), big512(r).String())
}
