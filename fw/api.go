package fw

import (
	"github.com/ndnlite/ndnlite/block"
	"github.com/ndnlite/ndnlite/ndn"
)

// AddAppFace registers an APP face backed by sink and returns its
// allocated face id. Synchronous: the caller blocks until the forwarder
// acknowledges. Fails when the face table is full. Called by app.New
// before the handle submits or registers anything.
func (f *Forwarder) AddAppFace(sink AppSink) (uint64, error) {
	reply := make(chan addFaceResult, 1)
	f.inbox <- addFace{sink: sink, reply: reply}
	res := <-reply
	return res.id, res.err
}

// RemoveAppFace tears a previously added APP face down, draining it from
// the face table, FIB, and PIT. Synchronous; blocks until the forwarder
// has applied the removal. Returns ErrUnknownFace if id was never added
// or is already gone.
func (f *Forwarder) RemoveAppFace(id uint64) error {
	reply := make(chan error, 1)
	f.inbox <- removeFace{faceID: id, reply: reply}
	return <-reply
}

// RegisterPrefix sends a synchronous AddFib control message on behalf of
// faceID; when it returns nil, the FIB already reflects the registration.
// A non-nil return means the forwarder refused the route (unknown face,
// or the FIB is full).
func (f *Forwarder) RegisterPrefix(faceID uint64, prefix ndn.Name) error {
	reply := make(chan error, 1)
	f.inbox <- addFib{faceID: faceID, prefix: prefix, reply: reply}
	return <-reply
}

// Submit hands a block to the forwarder for processing, as if it had
// arrived on faceID - the forwarder side of ExpressInterest and PutData.
// Ownership of blk passes to the forwarder.
func (f *Forwarder) Submit(faceID uint64, blk *block.Shared) {
	f.inbox <- appSend{faceID: faceID, block: blk}
}
