package intx

import "testing"

func TestSignificantWords(t *testing.T) {
	cases := []struct {
		w    []uint64
		want int
	}{
		{[]uint64{0, 0, 0, 0}, 0},
		{[]uint64{1, 0, 0, 0}, 1},
		{[]uint64{0, 1, 0, 0}, 2},
		{[]uint64{0, 0, 0, 1}, 4},
		{[]uint64{1, 1, 1, 1}, 4},
	}
	for _, c := range cases {
		if got := significantWords(c.w); got != c.want {
			t.Errorf("significantWords(%v) = %d, want %d", c.w, got, c.want)
		}
	}
}

func TestCmpWords(t *testing.T) {
	if cmpWords([]uint64{1, 0}, []uint64{2, 0}) >= 0 {
		t.Fatal("expected {1,0} < {2,0}")
	}
	if cmpWords([]uint64{0, 1}, []uint64{^uint64(0), 0}) <= 0 {
		t.Fatal("expected {0,1} > {maxu64,0}")
	}
	if cmpWords([]uint64{5, 5}, []uint64{5, 5}) != 0 {
		t.Fatal("expected equal words to compare equal")
	}
}

func TestDivWordsBySingleSanity(t *testing.T) {
	u := []uint64{0xFFFFFFFFFFFFFFFF, 0xFFFFFFFFFFFFFFFF, 0xFFFFFFFFFFFFFFFF, 0xFFFFFFFFFFFFFFFF}
	q := make([]uint64, 4)
	r := divWordsBySingle(u, 7, q)
	if r >= 7 {
		t.Fatalf("remainder %d not reduced mod 7", r)
	}
}

// TestKnuthDivWordsReconstructs exercises the multi-word divisor path
// directly (a single-word divisor never reaches knuthDivWords; that case is
// handled by divWordsBySingle instead) and checks u == q*v + r.
func TestKnuthDivWordsReconstructs(t *testing.T) {
	u := []uint64{0xFFFFFFFFFFFFFFFF, 0xFFFFFFFFFFFFFFFF, 0xFFFFFFFFFFFFFFFF, 0xFFFFFFFFFFFFFFFF}
	v := []uint64{3, 1}

	q := make([]uint64, 3)
	r := make([]uint64, 2)
	un := make([]uint64, 5)
	vn := make([]uint64, 2)
	knuthDivWords(u, v, q, r, un, vn)

	qv := uint256FromWords([4]uint64{q[0], q[1], q[2], 0}).
		UMul(uint256FromWords([4]uint64{v[0], v[1], 0, 0}))
	sum := qv.Add(UInt512FromHalf(uint256FromWords([4]uint64{r[0], r[1], 0, 0})))
	want := uint256FromWords([4]uint64{u[0], u[1], u[2], u[3]})
	if sum.AsUInt256() != want {
		t.Fatalf("knuthDivWords reconstruction mismatch: q=%v r=%v", q, r)
	}
	if cmpWords(r, v) >= 0 {
		t.Fatalf("remainder %v not smaller than divisor %v", r, v)
	}
}
