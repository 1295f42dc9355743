package tlv

// Reader walks a contiguous TLV-encoded buffer element by element.
// ndnlite's blocks are always a single contiguous shared-block view, so
// a plain cursor over []byte is enough - no scatter-gather.
type Reader struct {
	buf []byte
	pos int
}

// NewReader wraps buf for sequential TLV parsing starting at offset 0.
func NewReader(buf []byte) *Reader {
	return &Reader{buf: buf}
}

// Pos returns the current read offset.
func (r *Reader) Pos() int { return r.pos }

// Len returns the total length of the wrapped buffer.
func (r *Reader) Len() int { return len(r.buf) }

// Remaining reports how many bytes are left unread.
func (r *Reader) Remaining() int { return len(r.buf) - r.pos }

// AtEnd reports whether the reader has consumed the whole buffer.
func (r *Reader) AtEnd() bool { return r.pos >= len(r.buf) }

// PeekVarNum reads a varnum without advancing the cursor.
func (r *Reader) PeekVarNum() (val uint64, n int, err error) {
	return DecodeVarNum(r.buf[r.pos:])
}

// ReadVarNum reads and consumes a varnum.
func (r *Reader) ReadVarNum() (uint64, error) {
	val, n, err := DecodeVarNum(r.buf[r.pos:])
	if err != nil {
		return 0, err
	}
	r.pos += n
	return val, nil
}

// ReadTypeLength reads a type/length pair and returns the value bytes as
// a sub-slice of the original buffer (no copy), advancing past them.
func (r *Reader) ReadTypeLength() (typ uint64, value []byte, err error) {
	typ, err = r.ReadVarNum()
	if err != nil {
		return 0, nil, err
	}
	length, err := r.ReadVarNum()
	if err != nil {
		return 0, nil, err
	}
	if r.Remaining() < int(length) {
		return 0, nil, ErrTruncated{Want: int(length), Got: r.Remaining()}
	}
	value = r.buf[r.pos : r.pos+int(length)]
	r.pos += int(length)
	return typ, value, nil
}

// ExpectTypeLength reads a type/length pair and requires the type to
// equal want.
func (r *Reader) ExpectTypeLength(want uint64) (value []byte, err error) {
	typ, value, err := r.ReadTypeLength()
	if err != nil {
		return nil, err
	}
	if typ != want {
		return nil, ErrInvalidType{Want: want, Got: typ}
	}
	return value, nil
}

// Skip advances the cursor by n bytes without interpreting them.
func (r *Reader) Skip(n int) error {
	if r.Remaining() < n {
		return ErrTruncated{Want: n, Got: r.Remaining()}
	}
	r.pos += n
	return nil
}

// SkipElement reads one full TLV element starting at the cursor and
// discards it, returning its type.
func (r *Reader) SkipElement() (typ uint64, err error) {
	typ, _, err = r.ReadTypeLength()
	return typ, err
}
