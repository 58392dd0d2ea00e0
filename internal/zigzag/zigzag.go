package zigzag

import (
	"lukechampine.com/uint128"
)

// ZigZag interleaves signed integers onto the unsigned domain by
// magnitude, so that varint-style encodings keep small absolute
// values short:
//
//	int32 ->     uint32
//	-------------------
//	    0 ->          0
//	   -1 ->          1
//	    1 ->          2
//	   -2 ->          3
//	  ... ->        ...
//
//	>> encode >>
//	<< decode <<

func Encode32(n int32) uint32 {
	return uint32((n << 1) ^ (n >> 31))
}

func Decode32(n uint32) int32 {
	return int32(n>>1) ^ -int32(n&1)
}

func Encode64(n int64) uint64 {
	return uint64((n << 1) ^ (n >> 63))
}

func Decode64(n uint64) int64 {
	return int64(n>>1) ^ -int64(n&1)
}

// Encode128 operates on the two's-complement bit pattern of a signed
// 128-bit integer; the arithmetic right shift by 127 broadcasts the
// sign bit across the whole width before the xor.
func Encode128(n uint128.Uint128) uint128.Uint128 {
	sign := uint128.Zero
	if n.Hi>>63 != 0 {
		sign = uint128.Max
	}
	return n.Lsh(1).Xor(sign)
}

// Decode128 returns the two's-complement bit pattern of the signed
// 128-bit integer that Encode128 mapped to n.
func Decode128(n uint128.Uint128) uint128.Uint128 {
	sign := uint128.Zero
	if n.Lo&1 != 0 {
		sign = uint128.Max
	}
	return n.Rsh(1).Xor(sign)
}
