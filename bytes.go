package intx

// PutBigEndian writes the big-endian encoding of u into dst, per spec.md
// 6's "Persisted state" contract: byte index i holds (v >> (256-8*(i+1)))
// & 0xFF. dst must be exactly 32 bytes long; implemented with shifts and
// masks rather than memcpy+bswap, per spec.md 9's endian open question, so
// the result does not depend on the host's byte order.
func (u UInt256) PutBigEndian(dst []byte) {
	if len(dst) != 32 {
		panic(&ErrSyntax{Width: 256, Cause: errBadByteCount})
	}
	for i := 0; i < 32; i++ {
		shift := uint(256 - 8*(i+1))
		dst[i] = byte(u.Rsh(shift).lo.lo)
	}
}

// BigEndianBytes returns the 32-byte big-endian encoding of u.
func (u UInt256) BigEndianBytes() [32]byte {
	var out [32]byte
	u.PutBigEndian(out[:])
	return out
}

// UInt256FromBigEndian is the exact inverse of PutBigEndian: it reads 32
// bytes and reconstructs the value by shifting each byte into place,
// rather than loading native words and byte-swapping.
func UInt256FromBigEndian(src []byte) (UInt256, error) {
	if len(src) != 32 {
		return UInt256{}, &ErrSyntax{Width: 256, Cause: errBadByteCount}
	}
	var v UInt256
	for i := 0; i < 32; i++ {
		v = v.Lsh(8).Or(UInt256From64(uint64(src[i])))
	}
	return v, nil
}

// ByteSwap reverses the byte order of u. Per spec.md 4.8, the recursion is
// bswap(x) = join(bswap(x.lo), bswap(x.hi)) — the halves swap position as
// well as each having its own bytes reversed.
func (u UInt256) ByteSwap() UInt256 {
	return UInt256{lo: u.hi.ByteSwap(), hi: u.lo.ByteSwap()}
}

func (u UInt512) PutBigEndian(dst []byte) {
	if len(dst) != 64 {
		panic(&ErrSyntax{Width: 512, Cause: errBadByteCount})
	}
	for i := 0; i < 64; i++ {
		shift := uint(512 - 8*(i+1))
		lo, _ := u.Rsh(shift).lo.Halves()
		lo64, _ := lo.Parts()
		dst[i] = byte(lo64)
	}
}

func (u UInt512) BigEndianBytes() [64]byte {
	var out [64]byte
	u.PutBigEndian(out[:])
	return out
}

func UInt512FromBigEndian(src []byte) (UInt512, error) {
	if len(src) != 64 {
		return UInt512{}, &ErrSyntax{Width: 512, Cause: errBadByteCount}
	}
	var v UInt512
	for i := 0; i < 64; i++ {
		v = v.Lsh(8).Or(UInt512From64(uint64(src[i])))
	}
	return v, nil
}

func (u UInt512) ByteSwap() UInt512 {
	return UInt512{lo: u.hi.ByteSwap(), hi: u.lo.ByteSwap()}
}

// ByteSwap reverses the byte order of a UInt128, the base case the wider
// types' ByteSwap bottoms out to.
func (u UInt128) ByteSwap() UInt128 {
	return UInt128{lo: byteSwap64(u.hi), hi: byteSwap64(u.lo)}
}

func byteSwap64(x uint64) uint64 {
	return x<<56 |
		(x<<40)&0x00FF000000000000 |
		(x<<24)&0x0000FF0000000000 |
		(x<<8)&0x000000FF00000000 |
		(x>>8)&0x00000000FF000000 |
		(x>>24)&0x0000000000FF0000 |
		(x>>40)&0x000000000000FF00 |
		x>>56
}
