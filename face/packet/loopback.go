// Package packet provides concrete face.LinkFace implementations: an
// in-memory LoopbackLinkFace for tests and a real Linux AF_PACKET
// broadcast link face for production use.
package packet

import (
	"fmt"
	"sync"

	"github.com/ndnlite/ndnlite/face"
)

// LoopbackLinkFace is an in-memory face.LinkFace: frames sent on it are
// captured rather than transmitted, and FeedFrame injects a frame as if it
// had arrived from the wire - a test double for the one real network
// dependency.
type LoopbackLinkFace struct {
	face.Base

	mu   sync.Mutex
	sent [][]byte
}

// NewLoopbackLinkFace returns an unopened loopback face with the given
// MTU.
func NewLoopbackLinkFace(mtu int) *LoopbackLinkFace {
	return &LoopbackLinkFace{Base: face.NewBase(mtu)}
}

func (f *LoopbackLinkFace) String() string { return "loopback-link-face" }

// Open marks the face running. OnFrame must already be registered.
func (f *LoopbackLinkFace) Open() error {
	if f.OnFrameFn == nil {
		return fmt.Errorf("face: loopback face has no OnFrame callback registered")
	}
	if f.Running.Swap(true) {
		return fmt.Errorf("face: loopback face already running")
	}
	return nil
}

// Close marks the face stopped.
func (f *LoopbackLinkFace) Close() error {
	if !f.Running.Swap(false) {
		return fmt.Errorf("face: loopback face is not running")
	}
	return nil
}

// SendFrame records block as sent, enforcing the MTU like a real face
// would.
func (f *LoopbackLinkFace) SendFrame(block []byte) error {
	if !f.IsRunning() {
		return fmt.Errorf("face: loopback face is not running")
	}
	if len(block) > f.MTU() {
		return fmt.Errorf("%w: %d bytes, mtu %d", face.ErrMtuExceeded, len(block), f.MTU())
	}
	cp := make([]byte, len(block))
	copy(cp, block)
	f.mu.Lock()
	f.sent = append(f.sent, cp)
	f.mu.Unlock()
	return nil
}

// Sent returns a snapshot of every frame SendFrame has recorded so far,
// in order. Safe to call while the forwarder goroutine is still sending.
func (f *LoopbackLinkFace) Sent() [][]byte {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([][]byte, len(f.sent))
	copy(out, f.sent)
	return out
}

// FeedFrame delivers block to the registered OnFrame callback as if it had
// just arrived from the wire.
func (f *LoopbackLinkFace) FeedFrame(block []byte) error {
	if !f.IsRunning() {
		return fmt.Errorf("face: loopback face is not running")
	}
	f.OnFrameFn(block)
	return nil
}
