package packet

import (
	"testing"

	"github.com/ndnlite/ndnlite/face"
	"github.com/stretchr/testify/require"
)

func TestLoopbackLinkFaceSendAndFeed(t *testing.T) {
	f := NewLoopbackLinkFace(1500)

	var received [][]byte
	f.OnFrame(func(frame []byte) {
		received = append(received, frame)
	})
	require.NoError(t, f.Open())
	require.True(t, f.IsRunning())

	require.NoError(t, f.SendFrame([]byte("hello")))
	require.Equal(t, [][]byte{[]byte("hello")}, f.Sent())

	require.NoError(t, f.FeedFrame([]byte("world")))
	require.Equal(t, [][]byte{[]byte("world")}, received)

	require.NoError(t, f.Close())
	require.False(t, f.IsRunning())
	require.Error(t, f.SendFrame([]byte("x")))
}

func TestLoopbackLinkFaceRejectsOversizeFrame(t *testing.T) {
	f := NewLoopbackLinkFace(4)
	f.OnFrame(func([]byte) {})
	require.NoError(t, f.Open())
	require.ErrorIs(t, f.SendFrame([]byte("toolong")), face.ErrMtuExceeded)
}
