//go:build !linux

package packet

import (
	"fmt"
	"runtime"

	"github.com/ndnlite/ndnlite/face"
)

// AFPacketLinkFace is the production face.LinkFace on Linux; AF_PACKET
// raw sockets have no equivalent on other platforms, so non-Linux builds
// get a stub that fails at construction time instead of at link time.
type AFPacketLinkFace struct {
	face.Base
}

// NewAFPacketLinkFace always fails on non-Linux platforms: AF_PACKET is
// Linux-specific. Use a LoopbackLinkFace for local testing instead.
func NewAFPacketLinkFace(ifaceName string, mtu int) (*AFPacketLinkFace, error) {
	return nil, fmt.Errorf("face: AF_PACKET link faces are only supported on linux (GOOS=%s)", runtime.GOOS)
}

func (f *AFPacketLinkFace) String() string { return "af-packet-link-face(unsupported)" }

func (f *AFPacketLinkFace) Open() error {
	return fmt.Errorf("face: AF_PACKET unsupported on this platform")
}

func (f *AFPacketLinkFace) Close() error {
	return fmt.Errorf("face: AF_PACKET unsupported on this platform")
}

func (f *AFPacketLinkFace) SendFrame(block []byte) error {
	return fmt.Errorf("face: AF_PACKET unsupported on this platform")
}
