package intx

// wordsFromUInt256 decomposes u into 4 little-endian 64-bit words.
func wordsFromUInt256(u UInt256) [4]uint64 {
	lo, hi := u.Halves()
	l0, l1 := lo.Parts()
	h0, h1 := hi.Parts()
	return [4]uint64{l0, l1, h0, h1}
}

func uint256FromWords(w [4]uint64) UInt256 {
	return UInt256FromParts(UInt128FromParts(w[0], w[1]), UInt128FromParts(w[2], w[3]))
}

// wordsFromUInt512 decomposes u into 8 little-endian 64-bit words.
func wordsFromUInt512(u UInt512) [8]uint64 {
	lo, hi := u.Halves()
	lw := wordsFromUInt256(lo)
	hw := wordsFromUInt256(hi)
	return [8]uint64{lw[0], lw[1], lw[2], lw[3], hw[0], hw[1], hw[2], hw[3]}
}

func uint512FromWords(w [8]uint64) UInt512 {
	return UInt512FromParts(
		uint256FromWords([4]uint64{w[0], w[1], w[2], w[3]}),
		uint256FromWords([4]uint64{w[4], w[5], w[6], w[7]}),
	)
}
