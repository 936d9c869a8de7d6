package intx

import "math/big"

func big256(u UInt256) *big.Int {
	b := u.BigEndianBytes()
	return new(big.Int).SetBytes(b[:])
}

func from256(b *big.Int) UInt256 {
	var buf [32]byte
	bytes := b.Bytes()
	copy(buf[32-len(bytes):], bytes)
	v, err := UInt256FromBigEndian(buf[:])
	if err != nil {
		panic(err)
	}
	return v
}

func big512(u UInt512) *big.Int {
	b := u.BigEndianBytes()
	return new(big.Int).SetBytes(b[:])
}

func from512(b *big.Int) UInt512 {
	var buf [64]byte
	bytes := b.Bytes()
	copy(buf[64-len(bytes):], bytes)
	v, err := UInt512FromBigEndian(buf[:])
	if err != nil {
		panic(err)
	}
	return v
}

var mod256 = new(big.Int).Lsh(big.NewInt(1), 256)
var mod512 = new(big.Int).Lsh(big.NewInt(1), 512)

func wrap256(b *big.Int) *big.Int {
	return new(big.Int).Mod(b, mod256)
}

func wrap512(b *big.Int) *big.Int {
	return new(big.Int).Mod(b, mod512)
}
