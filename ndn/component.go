package ndn

import "bytes"

// Component is an opaque name component: a byte string of any length. It
// carries no type tag of its own - every component is encoded as a
// NameComponent (type 8) TLV. Typed components (segment numbers,
// versions, implicit digests) are not modeled.
type Component []byte

// CompareComponents implements the canonical NDN component order: shorter
// components sort before longer ones; among equal-length components,
// plain lexicographic byte order applies.
func CompareComponents(a, b Component) int {
	if len(a) != len(b) {
		if len(a) < len(b) {
			return -1
		}
		return 1
	}
	return bytes.Compare(a, b)
}

// Equal reports whether a and b hold identical component bytes.
func (a Component) Equal(b Component) bool {
	return bytes.Equal(a, b)
}

// Clone returns an independent copy of the component's bytes.
func (a Component) Clone() Component {
	cp := make(Component, len(a))
	copy(cp, a)
	return cp
}
