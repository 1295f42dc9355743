// Package tlv implements the NDN type-length-value wire primitives: the
// variable-length number encoding, TLV element framing, and fixed-width
// non-negative integer fields used by every higher-level codec.
package tlv

import "fmt"

// ErrTruncated is returned when a buffer ends before a TLV element or
// varnum has been fully read.
type ErrTruncated struct {
	Want int
	Got  int
}

func (e ErrTruncated) Error() string {
	return fmt.Sprintf("tlv: truncated input: want %d bytes, got %d", e.Want, e.Got)
}

// ErrInvalidVarnum is returned by decoders that refuse the reserved
// 9-byte varnum form.
type ErrInvalidVarnum struct {
	Lead byte
}

func (e ErrInvalidVarnum) Error() string {
	return fmt.Sprintf("tlv: invalid or unsupported varnum leading byte 0x%02x", e.Lead)
}

// ErrInvalidType is returned when a TLV element's type does not match
// what the caller expected.
type ErrInvalidType struct {
	Want, Got uint64
}

func (e ErrInvalidType) Error() string {
	return fmt.Sprintf("tlv: invalid type: want %d, got %d", e.Want, e.Got)
}

// ErrInvalidLength is returned when a field's encoded length does not
// match any of the natural-number widths (1, 2, or 4 bytes).
type ErrInvalidLength struct {
	Len int
}

func (e ErrInvalidLength) Error() string {
	return fmt.Sprintf("tlv: invalid integer field length: %d", e.Len)
}

// ErrBufferTooSmall is returned by encoders when the destination buffer
// cannot hold the encoded value.
type ErrBufferTooSmall struct {
	Need, Have int
}

func (e ErrBufferTooSmall) Error() string {
	return fmt.Sprintf("tlv: buffer too small: need %d bytes, have %d", e.Need, e.Have)
}
