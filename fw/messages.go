package fw

import (
	"github.com/ndnlite/ndnlite/block"
	"github.com/ndnlite/ndnlite/ndn"
	"github.com/ndnlite/ndnlite/table"
)

// AppSink is the delivery interface the app package's Handle implements,
// so the forwarder can hand Interest, Data, and Timeout events to an app
// face without importing the app package (app depends on fw, not the
// other way around).
//
// Each method must be non-blocking: it either enqueues blk onto the
// app's own mailbox and returns nil, or returns a non-nil error (typically
// ErrMailboxFull) without retaining blk. On a non-nil return the
// forwarder releases blk itself; on nil, ownership of blk passes to the
// sink, which must Release it once consumed.
type AppSink interface {
	DeliverInterest(blk *block.Shared) error
	DeliverData(blk *block.Shared) error
	DeliverTimeout(blk *block.Shared) error
}

// message is the sealed set of event kinds the forwarder's single event
// loop recognizes.
type message interface{ isMessage() }

// frameReceived is sent by a LinkFace's OnFrame callback for every frame
// the link face delivers.
type frameReceived struct {
	faceID uint64
	block  *block.Shared
}

func (frameReceived) isMessage() {}

// appSend is sent by an app handle submitting an Interest or Data block
// for forwarding (ExpressInterest / PutData).
type appSend struct {
	faceID uint64
	block  *block.Shared
}

func (appSend) isMessage() {}

// addFaceResult is the ack for addFace: the allocated face id, or a
// non-nil error when the face table is full.
type addFaceResult struct {
	id  uint64
	err error
}

// addFace registers a new APP face and acks with the allocated id.
// Synchronous: the caller blocks on reply.
type addFace struct {
	sink  AppSink
	reply chan addFaceResult
}

func (addFace) isMessage() {}

// removeFace tears an APP face down, draining the PIT/FIB of references
// to it. Synchronous; acks with ErrUnknownFace when the id is not in the
// face table.
type removeFace struct {
	faceID uint64
	reply  chan error
}

func (removeFace) isMessage() {}

// addFib registers a FIB route on behalf of an app face. Synchronous;
// acks with a non-nil error when the face is unknown or the FIB is full.
type addFib struct {
	faceID uint64
	prefix ndn.Name
	reply  chan error
}

func (addFib) isMessage() {}

// timerFired is enqueued by a PIT entry's expiration timer; handled by
// the forwarder goroutine itself so PIT mutation never races the rest of
// the event loop.
type timerFired struct {
	handle table.PitHandle
}

func (timerFired) isMessage() {}
