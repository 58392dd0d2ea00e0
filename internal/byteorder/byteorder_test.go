package byteorder_test

import (
	"testing"

	"github.com/blukai/vu128/internal/byteorder"
	"github.com/matryer/is"
	"lukechampine.com/uint128"
)

func TestU32(t *testing.T) {
	is := is.New(t)

	buf := make([]byte, 4)
	byteorder.PutU32(buf, 0x12345678)
	is.Equal(buf, []byte{0x78, 0x56, 0x34, 0x12})
	is.Equal(byteorder.U32(buf), uint32(0x12345678))
}

func TestU64(t *testing.T) {
	is := is.New(t)

	buf := make([]byte, 8)
	byteorder.PutU64(buf, 0x0102030405060708)
	is.Equal(buf, []byte{0x08, 0x07, 0x06, 0x05, 0x04, 0x03, 0x02, 0x01})
	is.Equal(byteorder.U64(buf), uint64(0x0102030405060708))
}

func TestU128(t *testing.T) {
	is := is.New(t)

	value := uint128.New(0x0102030405060708, 0x090A0B0C0D0E0F10)

	buf := make([]byte, 16)
	byteorder.PutU128(buf, value)
	is.Equal(buf, []byte{
		0x08, 0x07, 0x06, 0x05, 0x04, 0x03, 0x02, 0x01,
		0x10, 0x0F, 0x0E, 0x0D, 0x0C, 0x0B, 0x0A, 0x09,
	})
	is.Equal(byteorder.U128(buf), value)
}

func TestSwap(t *testing.T) {
	is := is.New(t)

	is.Equal(byteorder.Swap32(0x40200000), uint32(0x00002040))
	is.Equal(byteorder.Swap64(0x4004000000000000), uint64(0x0000000000000440))
}
