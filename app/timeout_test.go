package app

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ndnlite/ndnlite/block"
	"github.com/ndnlite/ndnlite/fw"
	"github.com/ndnlite/ndnlite/ndn"
)

// TestInterestTimeout: an Interest with a short lifetime and no
// satisfying Data fires onTimeout exactly once, never onData.
func TestInterestTimeout(t *testing.T) {
	f, _, stop := newTestForwarder(t)
	defer stop()

	h, err := New(f)
	require.NoError(t, err)
	defer h.Close()

	timedOut := make(chan struct{})
	err = h.ExpressInterest(mustName(t, "/a/b"), 100,
		func(name ndn.Name, data *block.Shared) Disposition {
			t.Fatal("on_data must not fire when no Data satisfies the Interest")
			return Stop
		},
		func(name ndn.Name) Disposition {
			close(timedOut)
			return Stop
		},
	)
	require.NoError(t, err)

	appStop := make(chan struct{})
	defer close(appStop)
	go h.Run(appStop)

	select {
	case <-timedOut:
	case <-time.After(2 * time.Second):
		t.Fatal("on_timeout never fired")
	}
}

// TestAppFaceTeardown closes a handle that still has a pending Interest:
// Close succeeds, later registrations on the closed handle are refused
// with ErrUnknownFace, and a fresh handle can still register a prefix.
func TestAppFaceTeardown(t *testing.T) {
	f, _, stop := newTestForwarder(t)
	defer stop()

	h, err := New(f)
	require.NoError(t, err)
	err = h.ExpressInterest(mustName(t, "/teardown"), 5000,
		func(name ndn.Name, data *block.Shared) Disposition { return Stop },
		func(name ndn.Name) Disposition { return Stop },
	)
	require.NoError(t, err)

	// Removing the face must not panic or hang the forwarder loop.
	require.NoError(t, h.Close())

	// the face is gone: further registration on this handle is refused,
	// and the refused prefix never lands in the producer table
	err = h.RegisterPrefix(mustName(t, "/too/late"), func(interest *block.Shared) Disposition {
		return Continue
	})
	require.ErrorIs(t, err, fw.ErrUnknownFace)
	assert.Empty(t, h.producers)

	h2, err := New(f)
	require.NoError(t, err)
	defer h2.Close()
	err = h2.RegisterPrefix(mustName(t, "/still/works"), func(interest *block.Shared) Disposition {
		return Continue
	})
	require.NoError(t, err)
}
