// Package face implements the face abstraction and face table: a face is
// a logical endpoint for packets, either the physical broadcast LINK
// device or an APP thread. The face table maps a face identifier to its
// kind; only the forwarder goroutine ever mutates it.
package face

import (
	"errors"
	"fmt"
	"sync/atomic"
)

// ErrMtuExceeded is returned by LinkFace.SendFrame when a block does not
// fit in a single link frame. The block is dropped; no fragmentation is
// ever performed.
var ErrMtuExceeded = errors.New("face: block exceeds link MTU")

// Kind distinguishes the two face variants.
type Kind int

const (
	// KindLink is the physical broadcast device; one per network
	// interface.
	KindLink Kind = iota
	// KindApp is an application thread identified by a thread handle.
	KindApp
)

// String renders the Kind the way a log line or CLI table would print it.
func (k Kind) String() string {
	switch k {
	case KindLink:
		return "LINK"
	case KindApp:
		return "APP"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// LinkFace is the interface the forwarder uses to talk to the physical
// broadcast device. The link-layer driver itself stays external; ndnlite
// only depends on "send frame / deliver received frame". Implementations
// live in face/packet.
type LinkFace interface {
	fmt.Stringer

	// Open begins receiving frames; received frames are delivered to
	// the callback registered with OnFrame. Open must be called before
	// SendFrame.
	Open() error
	// Close stops the face; SendFrame fails afterwards.
	Close() error
	// IsRunning reports whether the face is between Open and Close.
	IsRunning() bool

	// OnFrame registers the callback invoked for each received frame,
	// with link headers already stripped. Must be called before Open.
	OnFrame(cb func(frame []byte))

	// SendFrame transmits a single Interest or Data block as the payload
	// of one broadcast link frame. Returns ErrMtuExceeded if the block
	// exceeds the face's MTU; the caller must drop and log, never
	// fragment.
	SendFrame(block []byte) error

	// MTU returns the maximum payload size this face can carry in one
	// frame.
	MTU() int
}

// Base factors out the running-state bookkeeping shared by every LinkFace
// implementation. Implementations in face/packet embed Base and provide
// Open/Close/SendFrame/String.
type Base struct {
	Running   atomic.Bool
	OnFrameFn func(frame []byte)
	Mtu       int
}

// NewBase constructs a Base with the given MTU, not yet running.
func NewBase(mtu int) Base {
	return Base{Mtu: mtu}
}

// IsRunning reports whether the face is between Open and Close.
func (b *Base) IsRunning() bool { return b.Running.Load() }

// MTU returns the face's maximum frame payload size.
func (b *Base) MTU() int { return b.Mtu }

// OnFrame registers the callback invoked for each received frame.
func (b *Base) OnFrame(cb func(frame []byte)) { b.OnFrameFn = cb }
