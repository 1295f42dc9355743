package ndn

import (
	"strings"

	"github.com/cespare/xxhash"
	"github.com/ndnlite/ndnlite/tlv"
)

// Name is an ordered sequence of components.
type Name []Component

// Relation is the four-valued result of comparing two names by the
// is-prefix-of relation. It drives FIB longest-prefix matching and
// Data-to-PIT matching, as opposed to Compare's total order, which is
// used for canonical sorting.
type Relation int

const (
	// RelIncomparable means neither name is a prefix of the other and
	// they are not equal.
	RelIncomparable Relation = iota
	// RelEqual means the two names hold identical components.
	RelEqual
	// RelAPrefixOfB means a is a proper prefix of b.
	RelAPrefixOfB
	// RelBPrefixOfA means b is a proper prefix of a.
	RelBPrefixOfA
)

// PrefixRelation computes the is-prefix-of relation between a and b. The
// empty name is a prefix of every name.
func PrefixRelation(a, b Name) Relation {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		if CompareComponents(a[i], b[i]) != 0 {
			return RelIncomparable
		}
	}
	switch {
	case len(a) == len(b):
		return RelEqual
	case len(a) < len(b):
		return RelAPrefixOfB
	default:
		return RelBPrefixOfA
	}
}

// IsPrefixOf reports whether a is a prefix of b (including a == b).
func (a Name) IsPrefixOf(b Name) bool {
	rel := PrefixRelation(a, b)
	return rel == RelEqual || rel == RelAPrefixOfB
}

// Compare implements the total canonical order over names: component-wise
// canonical order, with the shorter name sorting before a strict
// extension of it. Returns -1, 0, or 1.
func (a Name) Compare(b Name) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		if c := CompareComponents(a[i], b[i]); c != 0 {
			return c
		}
	}
	switch {
	case len(a) == len(b):
		return 0
	case len(a) < len(b):
		return -1
	default:
		return 1
	}
}

// Equal reports whether a and b hold identical components.
func (a Name) Equal(b Name) bool {
	return a.Compare(b) == 0
}

// Append returns a new Name with an additional component, leaving the
// receiver untouched (names are treated as immutable throughout ndnlite).
func (a Name) Append(c Component) Name {
	out := make(Name, len(a)+1)
	copy(out, a)
	out[len(a)] = c
	return out
}

// Clone returns a deep copy of the name.
func (a Name) Clone() Name {
	out := make(Name, len(a))
	for i, c := range a {
		out[i] = c.Clone()
	}
	return out
}

// EncodingLength returns the number of bytes EncodeInto would write,
// including the outer Name TLV header.
func (a Name) EncodingLength() int {
	valueLen := 0
	for _, c := range a {
		valueLen += tlv.BlockTotalLength(TypeNameComponent, uint64(len(c)))
	}
	return tlv.BlockTotalLength(TypeName, uint64(valueLen))
}

// EncodeInto writes the Name TLV (type 7) into buf, which must be at
// least EncodingLength() bytes, and returns the number of bytes written.
// The empty name encodes as {0x07, 0x00}.
func (a Name) EncodeInto(buf []byte) (int, error) {
	valueLen := 0
	for _, c := range a {
		valueLen += tlv.BlockTotalLength(TypeNameComponent, uint64(len(c)))
	}
	total := tlv.BlockTotalLength(TypeName, uint64(valueLen))
	if len(buf) < total {
		return 0, tlv.ErrBufferTooSmall{Need: total, Have: len(buf)}
	}
	w := tlv.NewWriter(buf)
	if err := w.WriteTypeLength(TypeName, uint64(valueLen)); err != nil {
		return 0, err
	}
	for _, c := range a {
		if err := w.WriteTypeLength(TypeNameComponent, uint64(len(c))); err != nil {
			return 0, err
		}
		if err := w.WriteBytes(c); err != nil {
			return 0, err
		}
	}
	return w.Pos(), nil
}

// Bytes encodes the name into a freshly allocated buffer.
func (a Name) Bytes() []byte {
	buf := make([]byte, a.EncodingLength())
	a.EncodeInto(buf) //nolint:errcheck // buf is sized exactly
	return buf
}

// ParseNameFromBlock decodes a Name TLV element (type 7) starting at
// offset 0 of block. It fails on a non-component subtype inside the Name
// or on truncation.
func ParseNameFromBlock(blk []byte) (Name, error) {
	r := tlv.NewReader(blk)
	value, err := r.ExpectTypeLength(TypeName)
	if err != nil {
		return nil, err
	}
	return parseNameValue(value)
}

// DecodeNameValue decodes a Name's inner value bytes (i.e. the bytes
// after the Name TLV's own type/length header) into a Name. Exposed for
// codecs, like ndn/packet, that parse a Name embedded inside a larger
// TLV element they've already framed themselves.
func DecodeNameValue(value []byte) (Name, error) {
	return parseNameValue(value)
}

func parseNameValue(value []byte) (Name, error) {
	r := tlv.NewReader(value)
	var name Name
	for !r.AtEnd() {
		typ, val, err := r.ReadTypeLength()
		if err != nil {
			return nil, err
		}
		if typ != TypeNameComponent {
			return nil, tlv.ErrInvalidType{Want: TypeNameComponent, Got: typ}
		}
		name = append(name, Component(val))
	}
	if name == nil {
		name = Name{}
	}
	return name, nil
}

// Hash returns a 64-bit fingerprint of the name's canonical encoding,
// used to key callback tables by name instead of doing a byte-wise scan
// on every dispatch.
func (a Name) Hash() uint64 {
	return xxhash.Sum64(a.Bytes())
}

// String renders the name as a slash-delimited URI, percent-encoding any
// byte that is not alphanumeric or one of "-._~".
func (a Name) String() string {
	if len(a) == 0 {
		return "/"
	}
	var sb strings.Builder
	for _, c := range a {
		sb.WriteByte('/')
		writeEscaped(&sb, c)
	}
	return sb.String()
}

func writeEscaped(sb *strings.Builder, c Component) {
	const hex = "0123456789ABCDEF"
	for _, b := range c {
		if isUnreserved(b) {
			sb.WriteByte(b)
		} else {
			sb.WriteByte('%')
			sb.WriteByte(hex[b>>4])
			sb.WriteByte(hex[b&0xf])
		}
	}
}

func isUnreserved(b byte) bool {
	switch {
	case b >= 'a' && b <= 'z', b >= 'A' && b <= 'Z', b >= '0' && b <= '9':
		return true
	case b == '-' || b == '.' || b == '_' || b == '~':
		return true
	default:
		return false
	}
}
