package byteorder

import (
	"encoding/binary"
	"math/bits"

	"lukechampine.com/uint128"
)

// Little-endian payload helpers for the codec. Everything writes into
// caller-owned buffers; nothing here allocates.

func PutU32(buf []byte, val uint32) {
	binary.LittleEndian.PutUint32(buf, val)
}

func U32(buf []byte) uint32 {
	return binary.LittleEndian.Uint32(buf)
}

func PutU64(buf []byte, val uint64) {
	binary.LittleEndian.PutUint64(buf, val)
}

func U64(buf []byte) uint64 {
	return binary.LittleEndian.Uint64(buf)
}

// PutU128 writes the full 16-byte little-endian representation:
// low word first, then high word.
func PutU128(buf []byte, val uint128.Uint128) {
	binary.LittleEndian.PutUint64(buf[0:8], val.Lo)
	binary.LittleEndian.PutUint64(buf[8:16], val.Hi)
}

func U128(buf []byte) uint128.Uint128 {
	return uint128.New(
		binary.LittleEndian.Uint64(buf[0:8]),
		binary.LittleEndian.Uint64(buf[8:16]),
	)
}

func Swap32(val uint32) uint32 {
	return bits.ReverseBytes32(val)
}

func Swap64(val uint64) uint64 {
	return bits.ReverseBytes64(val)
}
