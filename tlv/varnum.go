package tlv

import "encoding/binary"

// VarNumLength returns the number of bytes EncodeVarNum would write for v.
func VarNumLength(v uint64) int {
	switch {
	case v < 253:
		return 1
	case v <= 0xffff:
		return 3
	case v <= 0xffffffff:
		return 5
	default:
		return 9
	}
}

// EncodeVarNum writes v into buf using NDN's variable-length number
// encoding and returns the number of bytes written. The caller must size
// buf using VarNumLength first.
func EncodeVarNum(v uint64, buf []byte) int {
	switch {
	case v < 253:
		buf[0] = byte(v)
		return 1
	case v <= 0xffff:
		buf[0] = 253
		binary.BigEndian.PutUint16(buf[1:], uint16(v))
		return 3
	case v <= 0xffffffff:
		buf[0] = 254
		binary.BigEndian.PutUint32(buf[1:], uint32(v))
		return 5
	default:
		buf[0] = 255
		binary.BigEndian.PutUint64(buf[1:], v)
		return 9
	}
}

// DecodeVarNum parses a variable-length number from the start of buf,
// returning the value and the number of bytes consumed. The reserved
// 9-byte form is rejected with ErrInvalidVarnum.
func DecodeVarNum(buf []byte) (val uint64, n int, err error) {
	if len(buf) < 1 {
		return 0, 0, ErrTruncated{Want: 1, Got: 0}
	}
	lead := buf[0]
	switch {
	case lead <= 252:
		return uint64(lead), 1, nil
	case lead == 253:
		if len(buf) < 3 {
			return 0, 0, ErrTruncated{Want: 3, Got: len(buf)}
		}
		return uint64(binary.BigEndian.Uint16(buf[1:3])), 3, nil
	case lead == 254:
		if len(buf) < 5 {
			return 0, 0, ErrTruncated{Want: 5, Got: len(buf)}
		}
		return uint64(binary.BigEndian.Uint32(buf[1:5])), 5, nil
	default: // 255
		return 0, 0, ErrInvalidVarnum{Lead: lead}
	}
}

// BlockTotalLength returns the total encoded size of a TLV element with
// the given type and value length: varnum(type) + varnum(length) + length.
func BlockTotalLength(typ, length uint64) int {
	return VarNumLength(typ) + VarNumLength(length) + int(length)
}

// ExtractBlock returns the sub-slice of frame holding one complete TLV
// element starting at offset 0, without interpreting the value. It fails
// with ErrTruncated if the asserted length does not fit within frame.
func ExtractBlock(frame []byte) ([]byte, error) {
	_, n1, err := DecodeVarNum(frame)
	if err != nil {
		return nil, err
	}
	length, n2, err := DecodeVarNum(frame[n1:])
	if err != nil {
		return nil, err
	}
	total := n1 + n2 + int(length)
	if total > len(frame) {
		return nil, ErrTruncated{Want: total, Got: len(frame)}
	}
	return frame[:total], nil
}
