package vu128

import (
	"math"
	"math/bits"

	"github.com/blukai/vu128/internal/byteorder"
	"github.com/blukai/vu128/internal/debug"
	"github.com/blukai/vu128/internal/zigzag"
	"lukechampine.com/uint128"
)

// Buffer capacity required by each width, for both encode output and
// decode input. Always W/8 + 1: one prefix byte plus a full-width
// payload.
const (
	MaxLen32  = 5
	MaxLen64  = 9
	MaxLen128 = 17
)

// EncodedLen returns the total encoded length described by a prefix
// byte. It agrees with the length returned by the matching Decode call
// for any buffer beginning with b.
func EncodedLen(b byte) int {
	if b < 0b10000000 {
		return 1
	}
	if b < 0b11000000 {
		return 2
	}
	if b < 0b11100000 {
		return 3
	}
	if b < 0b11110000 {
		return 4
	}
	return int(b&0x0F) + 2
}

// EncodeUint32 encodes value into buf, returning the encoded length.
//
// buf must hold at least MaxLen32 bytes; its contents beyond the
// returned length are unspecified.
func EncodeUint32(buf []byte, value uint32) int {
	debug.Assert(len(buf) >= MaxLen32)

	x := value
	if x < 0x80 {
		buf[0] = byte(x)
		return 1
	}
	if x < 0x10000000 {
		if x < 0x00004000 {
			x <<= 2
			buf[0] = 0x80 | byte(x)>>2
			buf[1] = byte(x >> 8)
			return 2
		}
		if x < 0x00200000 {
			x <<= 3
			buf[0] = 0xC0 | byte(x)>>3
			buf[1] = byte(x >> 8)
			buf[2] = byte(x >> 16)
			return 3
		}
		x <<= 4
		buf[0] = 0xE0 | byte(x)>>4
		buf[1] = byte(x >> 8)
		buf[2] = byte(x >> 16)
		buf[3] = byte(x >> 24)
		return 4
	}

	byteorder.PutU32(buf[1:], x)
	buf[0] = 0xF3
	return 5
}

// EncodeUint64 encodes value into buf, returning the encoded length.
//
// buf must hold at least MaxLen64 bytes; its contents beyond the
// returned length are unspecified.
func EncodeUint64(buf []byte, value uint64) int {
	debug.Assert(len(buf) >= MaxLen64)

	x := value
	if x < 0x80 {
		buf[0] = byte(x)
		return 1
	}
	if x < 0x10000000 {
		if x < 0x00004000 {
			x <<= 2
			buf[0] = 0x80 | byte(x)>>2
			buf[1] = byte(x >> 8)
			return 2
		}
		if x < 0x00200000 {
			x <<= 3
			buf[0] = 0xC0 | byte(x)>>3
			buf[1] = byte(x >> 8)
			buf[2] = byte(x >> 16)
			return 3
		}
		x <<= 4
		buf[0] = 0xE0 | byte(x)>>4
		buf[1] = byte(x >> 8)
		buf[2] = byte(x >> 16)
		buf[3] = byte(x >> 24)
		return 4
	}

	byteorder.PutU64(buf[1:], x)

	const lenMask = 0b111
	length := byte(bits.LeadingZeros64(x)>>3) ^ lenMask
	buf[0] = 0xF0 | length
	return int(length) + 2
}

// EncodeUint128 encodes value into buf, returning the encoded length.
//
// buf must hold at least MaxLen128 bytes; its contents beyond the
// returned length are unspecified.
func EncodeUint128(buf []byte, value uint128.Uint128) int {
	debug.Assert(len(buf) >= MaxLen128)

	if value.Hi == 0 && value.Lo < 0x10000000 {
		// width-independent range, the u32 fast paths cover it
		return EncodeUint32(buf[:MaxLen32], uint32(value.Lo))
	}

	byteorder.PutU128(buf[1:], value)

	const lenMask = 0b1111
	length := byte(value.LeadingZeros()>>3) ^ lenMask
	buf[0] = 0xF0 | length
	return int(length) + 2
}

// DecodeUint32 decodes a uint32 from buf, returning the value and
// encoded length.
//
// buf must hold at least MaxLen32 bytes, even when the encoding itself
// is shorter; bytes past the encoding may hold anything.
func DecodeUint32(buf []byte) (uint32, int) {
	debug.Assert(len(buf) >= MaxLen32)

	buf0 := buf[0]
	if buf0&0x80 == 0 {
		return uint32(buf0), 1
	}
	if buf0&0b01000000 == 0 {
		value := uint32(buf[1])<<6 | uint32(buf0&0x3F)
		return value, 2
	}
	if buf0 >= 0xF0 {
		const lenMask = 0b11
		length := buf0 & 0x0F
		// the raw load reads all 4 payload bytes; an over-long
		// encoding with a shorter stored length owns fewer of
		// them, the rest mask to zero
		mask := ^uint32(0) >> ((length&lenMask ^ lenMask) * 8)
		return byteorder.U32(buf[1:]) & mask, int(length) + 2
	}
	if buf0&0b00100000 == 0 {
		value := uint32(buf[2])<<13 | uint32(buf[1])<<5 | uint32(buf0&0x1F)
		return value, 3
	}
	value := uint32(buf[3])<<20 | uint32(buf[2])<<12 | uint32(buf[1])<<4 | uint32(buf0&0x0F)
	return value, 4
}

// DecodeUint64 decodes a uint64 from buf, returning the value and
// encoded length.
//
// buf must hold at least MaxLen64 bytes, even when the encoding itself
// is shorter; bytes past the encoding may hold anything.
func DecodeUint64(buf []byte) (uint64, int) {
	debug.Assert(len(buf) >= MaxLen64)

	buf0 := buf[0]
	if buf0&0x80 == 0 {
		return uint64(buf0), 1
	}
	if buf0 < 0xF0 {
		if buf0&0b01000000 == 0 {
			value := uint32(buf[1])<<6 | uint32(buf0&0x3F)
			return uint64(value), 2
		}
		if buf0&0b00100000 == 0 {
			value := uint32(buf[2])<<13 | uint32(buf[1])<<5 | uint32(buf0&0x1F)
			return uint64(value), 3
		}
		value := uint32(buf[3])<<20 | uint32(buf[2])<<12 | uint32(buf[1])<<4 | uint32(buf0&0x0F)
		return uint64(value), 4
	}

	const lenMask = 0b111
	length := buf0 & 0x0F
	mask := ^uint64(0) >> ((length&lenMask ^ lenMask) * 8)
	return byteorder.U64(buf[1:]) & mask, int(length) + 2
}

// DecodeUint128 decodes a Uint128 from buf, returning the value and
// encoded length.
//
// buf must hold at least MaxLen128 bytes, even when the encoding itself
// is shorter; bytes past the encoding may hold anything.
func DecodeUint128(buf []byte) (uint128.Uint128, int) {
	debug.Assert(len(buf) >= MaxLen128)

	if buf[0] < 0xF0 {
		value, n := DecodeUint32(buf[:MaxLen32])
		return uint128.From64(uint64(value)), n
	}

	const lenMask = 0b1111
	length := buf[0] & 0x0F
	shift := uint(length&lenMask^lenMask) * 8
	value := byteorder.U128(buf[1:]).And(uint128.Max.Rsh(shift))
	return value, int(length) + 2
}

// EncodeInt32 encodes value into buf, returning the encoded length.
//
// buf must hold at least MaxLen32 bytes; its contents beyond the
// returned length are unspecified.
func EncodeInt32(buf []byte, value int32) int {
	return EncodeUint32(buf, zigzag.Encode32(value))
}

// EncodeInt64 encodes value into buf, returning the encoded length.
//
// buf must hold at least MaxLen64 bytes; its contents beyond the
// returned length are unspecified.
func EncodeInt64(buf []byte, value int64) int {
	return EncodeUint64(buf, zigzag.Encode64(value))
}

// EncodeInt128 encodes a signed 128-bit integer, given as its
// two's-complement bit pattern, into buf, returning the encoded length.
//
// buf must hold at least MaxLen128 bytes; its contents beyond the
// returned length are unspecified.
func EncodeInt128(buf []byte, value uint128.Uint128) int {
	return EncodeUint128(buf, zigzag.Encode128(value))
}

// DecodeInt32 decodes an int32 from buf, returning the value and
// encoded length. Buffer contract as in DecodeUint32.
func DecodeInt32(buf []byte) (int32, int) {
	zz, n := DecodeUint32(buf)
	return zigzag.Decode32(zz), n
}

// DecodeInt64 decodes an int64 from buf, returning the value and
// encoded length. Buffer contract as in DecodeUint64.
func DecodeInt64(buf []byte) (int64, int) {
	zz, n := DecodeUint64(buf)
	return zigzag.Decode64(zz), n
}

// DecodeInt128 decodes a signed 128-bit integer from buf, returning its
// two's-complement bit pattern and the encoded length. Buffer contract
// as in DecodeUint128.
func DecodeInt128(buf []byte) (uint128.Uint128, int) {
	zz, n := DecodeUint128(buf)
	return zigzag.Decode128(zz), n
}

// EncodeFloat32 encodes value into buf, returning the encoded length.
// The byte-swapped IEEE-754 bit pattern is what gets encoded, so
// integers and simple fractions stay short. NaN payloads and signed
// zero round-trip bit-exactly.
//
// buf must hold at least MaxLen32 bytes; its contents beyond the
// returned length are unspecified.
func EncodeFloat32(buf []byte, value float32) int {
	return EncodeUint32(buf, byteorder.Swap32(math.Float32bits(value)))
}

// EncodeFloat64 encodes value into buf, returning the encoded length.
// The byte-swapped IEEE-754 bit pattern is what gets encoded, so
// integers and simple fractions stay short. NaN payloads and signed
// zero round-trip bit-exactly.
//
// buf must hold at least MaxLen64 bytes; its contents beyond the
// returned length are unspecified.
func EncodeFloat64(buf []byte, value float64) int {
	return EncodeUint64(buf, byteorder.Swap64(math.Float64bits(value)))
}

// DecodeFloat32 decodes a float32 from buf, returning the value and
// encoded length. Buffer contract as in DecodeUint32.
func DecodeFloat32(buf []byte) (float32, int) {
	swapped, n := DecodeUint32(buf)
	return math.Float32frombits(byteorder.Swap32(swapped)), n
}

// DecodeFloat64 decodes a float64 from buf, returning the value and
// encoded length. Buffer contract as in DecodeUint64.
func DecodeFloat64(buf []byte) (float64, int) {
	swapped, n := DecodeUint64(buf)
	return math.Float64frombits(byteorder.Swap64(swapped)), n
}
