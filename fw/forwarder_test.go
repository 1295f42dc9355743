package fw_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ndnlite/ndnlite/block"
	"github.com/ndnlite/ndnlite/face/packet"
	"github.com/ndnlite/ndnlite/fw"
	"github.com/ndnlite/ndnlite/ndn"
	ndnpacket "github.com/ndnlite/ndnlite/ndn/packet"
)

type fakeSink struct {
	interests chan *block.Shared
	datas     chan *block.Shared
	timeouts  chan *block.Shared
}

func newFakeSink() *fakeSink {
	return &fakeSink{
		interests: make(chan *block.Shared, 16),
		datas:     make(chan *block.Shared, 16),
		timeouts:  make(chan *block.Shared, 16),
	}
}

func (s *fakeSink) DeliverInterest(blk *block.Shared) error {
	select {
	case s.interests <- blk:
		return nil
	default:
		return fw.ErrMailboxFull
	}
}

func (s *fakeSink) DeliverData(blk *block.Shared) error {
	select {
	case s.datas <- blk:
		return nil
	default:
		return fw.ErrMailboxFull
	}
}

func (s *fakeSink) DeliverTimeout(blk *block.Shared) error {
	select {
	case s.timeouts <- blk:
		return nil
	default:
		return fw.ErrMailboxFull
	}
}

// TestNoRouteDrops: an Interest under a name with no FIB route at all
// (no link face has ever been added, so even the default "/" route is
// absent) is dropped silently, but the PIT entry it created still
// survives until timeout, delivering a Timeout event to the submitting
// app face.
func TestNoRouteDrops(t *testing.T) {
	forwarder := fw.New()

	stop := make(chan struct{})
	defer close(stop)
	go forwarder.Run(stop)

	sink := newFakeSink()
	appID, err := forwarder.AddAppFace(sink)
	require.NoError(t, err)
	defer forwarder.RemoveAppFace(appID)

	name, err := ndn.NameFromURI("/unrouted")
	require.NoError(t, err)

	interest := ndnpacket.CreateInterest(name, 50, ndnpacket.DefaultNonceSource)
	forwarder.Submit(appID, block.New(interest))

	select {
	case <-sink.timeouts:
		// expected: no route -> dropped -> eventually times out.
	case <-time.After(time.Second):
		t.Fatal("expected timeout after unrouted interest, got none")
	}
}

// TestDefaultRouteBroadcastsOnLinkFace checks that an app-submitted
// Interest with no app-registered FIB route still reaches the LINK face
// via the auto-installed default "/" route.
func TestDefaultRouteBroadcastsOnLinkFace(t *testing.T) {
	forwarder := fw.New()
	lf := packet.NewLoopbackLinkFace(1500)
	_, err := forwarder.AddLinkFace(lf)
	require.NoError(t, err)

	stop := make(chan struct{})
	defer close(stop)
	go forwarder.Run(stop)

	sink := newFakeSink()
	appID, err := forwarder.AddAppFace(sink)
	require.NoError(t, err)
	defer forwarder.RemoveAppFace(appID)

	name, err := ndn.NameFromURI("/anything")
	require.NoError(t, err)
	interest := ndnpacket.CreateInterest(name, 2000, ndnpacket.DefaultNonceSource)
	forwarder.Submit(appID, block.New(interest))

	require.Eventually(t, func() bool { return len(lf.Sent()) == 1 }, time.Second, time.Millisecond)
	assert.Equal(t, interest, lf.Sent()[0])
}

// TestRegistrationAcks: every control message is acked, and a failed
// registration surfaces as a non-nil error rather than being swallowed.
func TestRegistrationAcks(t *testing.T) {
	forwarder := fw.New()

	stop := make(chan struct{})
	defer close(stop)
	go forwarder.Run(stop)

	sink := newFakeSink()
	appID, err := forwarder.AddAppFace(sink)
	require.NoError(t, err)

	name, err := ndn.NameFromURI("/p")
	require.NoError(t, err)
	require.NoError(t, forwarder.RegisterPrefix(appID, name))

	// registering on behalf of a face the forwarder never saw fails
	require.ErrorIs(t, forwarder.RegisterPrefix(appID+100, name), fw.ErrUnknownFace)

	require.NoError(t, forwarder.RemoveAppFace(appID))
	// the face is gone now: removal and registration both refuse it
	require.ErrorIs(t, forwarder.RemoveAppFace(appID), fw.ErrUnknownFace)
	require.ErrorIs(t, forwarder.RegisterPrefix(appID, name), fw.ErrUnknownFace)
}
