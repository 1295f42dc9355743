// Package block implements the shared-block primitive: a reference-counted
// immutable byte buffer used to hand TLV-encoded Interest/Data packets
// between goroutines without copying on every send. Cross-goroutine
// handoff is copy-on-send, release-on-drop: an owned handle with Clone
// and Release.
package block

import "sync/atomic"

// Shared is an immutable view over a byte buffer plus a reference count.
// The zero value is not usable; construct with New or NewCopy.
//
// Shared is safe to Clone/Release concurrently from multiple goroutines.
// The underlying bytes must never be mutated after construction - every
// holder sees the exact same view.
type Shared struct {
	buf  []byte
	refs *int32
}

// New wraps buf (taking ownership of it - the caller must not retain or
// mutate a reference to buf afterwards) in a Shared with an initial
// reference count of 1.
func New(buf []byte) *Shared {
	refs := int32(1)
	return &Shared{buf: buf, refs: &refs}
}

// NewCopy allocates a new buffer, copies buf into it, and wraps the copy
// in a Shared with an initial reference count of 1.
func NewCopy(buf []byte) *Shared {
	cp := make([]byte, len(buf))
	copy(cp, buf)
	return New(cp)
}

// Bytes returns the underlying immutable byte view. Callers must not
// write through the returned slice.
func (s *Shared) Bytes() []byte {
	return s.buf
}

// Len returns the length of the underlying buffer.
func (s *Shared) Len() int {
	return len(s.buf)
}

// Clone increments the reference count and returns a new handle over the
// same underlying bytes. The caller is now responsible for Release-ing
// the returned handle exactly once.
func (s *Shared) Clone() *Shared {
	atomic.AddInt32(s.refs, 1)
	return &Shared{buf: s.buf, refs: s.refs}
}

// Release decrements the reference count. It is a no-op beyond the
// decrement itself - Go's garbage collector reclaims the backing array
// once every handle has been released and gone out of scope. Release's
// job is to make the handoff discipline explicit and let RefCount
// observably reach zero.
func (s *Shared) Release() {
	atomic.AddInt32(s.refs, -1)
}

// RefCount returns the current reference count. Intended for tests and
// diagnostics, not for control flow (a racing Clone/Release can change it
// immediately after it is read).
func (s *Shared) RefCount() int32 {
	return atomic.LoadInt32(s.refs)
}
