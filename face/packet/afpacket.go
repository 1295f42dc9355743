//go:build linux

package packet

import (
	"fmt"
	"net"
	"sync"

	"github.com/ndnlite/ndnlite/face"
	"golang.org/x/sys/unix"
)

// ethProtoNDN is the EtherType of raw NDN frames sent directly over
// AF_PACKET: 0x8624, the EtherType registered for NDN.
const ethProtoNDN = 0x8624

// AFPacketLinkFace is the production face.LinkFace: a raw AF_PACKET
// socket broadcasting NDN frames directly on a network interface - a
// runReceive loop plus a SendFrame primitive over a single shared
// broadcast medium.
type AFPacketLinkFace struct {
	face.Base

	ifaceName string
	ifIndex   int
	fd        int

	closeOnce sync.Once
	closeCh   chan struct{}
}

// NewAFPacketLinkFace opens a raw AF_PACKET socket bound to the named
// interface. The returned face is not yet running; call Open to start
// receiving.
func NewAFPacketLinkFace(ifaceName string, mtu int) (*AFPacketLinkFace, error) {
	fd, err := unix.Socket(unix.AF_PACKET, unix.SOCK_RAW, int(htons(ethProtoNDN)))
	if err != nil {
		return nil, fmt.Errorf("face: AF_PACKET socket: %w", err)
	}

	iface, err := net.InterfaceByName(ifaceName)
	if err != nil {
		unix.Close(fd)
		return nil, fmt.Errorf("face: %w", err)
	}

	addr := &unix.SockaddrLinklayer{
		Protocol: htons(ethProtoNDN),
		Ifindex:  iface.Index,
	}
	if err := unix.Bind(fd, addr); err != nil {
		unix.Close(fd)
		return nil, fmt.Errorf("face: AF_PACKET bind to %s: %w", ifaceName, err)
	}

	return &AFPacketLinkFace{
		Base:      face.NewBase(mtu),
		ifaceName: ifaceName,
		ifIndex:   iface.Index,
		fd:        fd,
		closeCh:   make(chan struct{}),
	}, nil
}

func (f *AFPacketLinkFace) String() string {
	return fmt.Sprintf("af-packet-link-face(%s)", f.ifaceName)
}

// Open starts the receive loop in a background goroutine. OnFrame must
// already be registered.
func (f *AFPacketLinkFace) Open() error {
	if f.OnFrameFn == nil {
		return fmt.Errorf("face: AF_PACKET face has no OnFrame callback registered")
	}
	if f.Running.Swap(true) {
		return fmt.Errorf("face: AF_PACKET face already running")
	}
	go f.runReceive()
	return nil
}

// Close stops the face; the receive goroutine exits on its next
// iteration.
func (f *AFPacketLinkFace) Close() error {
	if !f.Running.Swap(false) {
		return fmt.Errorf("face: AF_PACKET face is not running")
	}
	f.closeOnce.Do(func() { close(f.closeCh) })
	return unix.Close(f.fd)
}

func (f *AFPacketLinkFace) runReceive() {
	buf := make([]byte, 65536)
	for {
		select {
		case <-f.closeCh:
			return
		default:
		}
		n, _, err := unix.Recvfrom(f.fd, buf, 0)
		if err != nil {
			if !f.IsRunning() {
				return
			}
			continue
		}
		if n == 0 {
			continue
		}
		frame := make([]byte, n)
		copy(frame, buf[:n])
		f.OnFrameFn(frame)
	}
}

// SendFrame broadcasts block as a single link-layer frame on the bound
// interface. Returns an error if block exceeds the face's MTU; no
// fragmentation is ever performed.
func (f *AFPacketLinkFace) SendFrame(block []byte) error {
	if !f.IsRunning() {
		return fmt.Errorf("face: AF_PACKET face is not running")
	}
	if len(block) > f.MTU() {
		return fmt.Errorf("%w: %d bytes, mtu %d", face.ErrMtuExceeded, len(block), f.MTU())
	}
	addr := &unix.SockaddrLinklayer{
		Protocol: htons(ethProtoNDN),
		Ifindex:  f.ifIndex,
		Halen:    6,
		Addr:     [8]byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff}, // broadcast
	}
	return unix.Sendto(f.fd, block, 0, addr)
}

func htons(v uint16) uint16 {
	return (v<<8)&0xff00 | v>>8
}
