package tlv

import "encoding/binary"

// NatLength returns the number of bytes EncodeNat would write for v: the
// smallest of 1, 2, or 4 bytes that can hold it.
func NatLength(v uint64) int {
	switch {
	case v <= 0xff:
		return 1
	case v <= 0xffff:
		return 2
	default:
		return 4
	}
}

// EncodeNat writes v as a big-endian non-negative integer field into buf,
// using the smallest width that fits, and returns the number of bytes
// written.
func EncodeNat(v uint64, buf []byte) int {
	switch {
	case v <= 0xff:
		buf[0] = byte(v)
		return 1
	case v <= 0xffff:
		binary.BigEndian.PutUint16(buf, uint16(v))
		return 2
	default:
		binary.BigEndian.PutUint32(buf, uint32(v))
		return 4
	}
}

// DecodeNat parses a non-negative integer field of exactly len(buf)
// bytes, picking the interpretation by the buffer's width (1, 2, or 4).
func DecodeNat(buf []byte) (uint64, error) {
	switch len(buf) {
	case 1:
		return uint64(buf[0]), nil
	case 2:
		return uint64(binary.BigEndian.Uint16(buf)), nil
	case 4:
		return uint64(binary.BigEndian.Uint32(buf)), nil
	default:
		return 0, ErrInvalidLength{Len: len(buf)}
	}
}
