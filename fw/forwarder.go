// Package fw implements the forwarder event loop: a single goroutine
// owning the face table, PIT, and FIB exclusively, consuming messages
// from link faces, app faces, and PIT timers. Message passing is the
// only external entry; the core loop takes no locks.
package fw

import (
	"fmt"
	"time"

	"github.com/ndnlite/ndnlite/block"
	"github.com/ndnlite/ndnlite/face"
	"github.com/ndnlite/ndnlite/log"
	"github.com/ndnlite/ndnlite/ndn"
	"github.com/ndnlite/ndnlite/ndn/packet"
	"github.com/ndnlite/ndnlite/table"
	"github.com/ndnlite/ndnlite/tlv"
)

// Forwarder owns all forwarding state and processes every packet and
// control message on one goroutine. The zero value is not usable;
// construct with New.
type Forwarder struct {
	faces *face.Table
	pit   *table.PIT
	fib   *table.FIB

	linkFaces map[uint64]face.LinkFace
	appSinks  map[uint64]AppSink

	inbox chan message
	done  chan struct{}
}

// New returns a Forwarder with an empty face table, PIT, and FIB, not yet
// running.
func New() *Forwarder {
	return &Forwarder{
		faces:     face.NewTable(),
		pit:       table.NewPIT(),
		fib:       table.NewFIB(),
		linkFaces: make(map[uint64]face.LinkFace),
		appSinks:  make(map[uint64]AppSink),
		inbox:     make(chan message, 256),
		done:      make(chan struct{}),
	}
}

func (f *Forwarder) String() string { return "forwarder" }

// AddLinkFace registers lf as a LINK face, auto-installs the default `/`
// route for it so unrouted Interests are broadcast, wires its OnFrame
// callback to enqueue frameReceived messages, and opens it. Must be
// called before Run.
func (f *Forwarder) AddLinkFace(lf face.LinkFace) (uint64, error) {
	id, err := f.faces.Add(face.KindLink)
	if err != nil {
		return 0, fmt.Errorf("fw: adding link face: %w", err)
	}
	f.linkFaces[id] = lf

	lf.OnFrame(func(frame []byte) {
		// Link frames may carry trailing padding (Ethernet pads short
		// frames); keep only the leading TLV element.
		blk, err := tlv.ExtractBlock(frame)
		if err != nil {
			log.Warn(f, "dropped malformed frame", "face", id, "err", err)
			return
		}
		f.inbox <- frameReceived{faceID: id, block: block.NewCopy(blk)}
	})

	root := ndn.Name{}
	if _, err := f.fib.Add(root, face.Entry{ID: id, Kind: face.KindLink}); err != nil {
		return 0, fmt.Errorf("fw: installing default route: %w", err)
	}
	log.Info(f, "auto-installed default route for link face", "face", id, "prefix", root.String())

	if err := lf.Open(); err != nil {
		return 0, fmt.Errorf("fw: opening link face: %w", err)
	}
	return id, nil
}

// Run executes the event loop until Stop is called or stopCh closes.
// Intended to be run in its own goroutine: `go fwd.Run(stopCh)`.
func (f *Forwarder) Run(stopCh <-chan struct{}) {
	for {
		select {
		case <-stopCh:
			return
		case <-f.done:
			return
		case msg := <-f.inbox:
			f.handle(msg)
		}
	}
}

// Stop ends the event loop started by Run.
func (f *Forwarder) Stop() {
	close(f.done)
}

func (f *Forwarder) handle(msg message) {
	switch m := msg.(type) {
	case frameReceived:
		f.handleBlock(m.faceID, m.block)
	case appSend:
		f.handleBlock(m.faceID, m.block)
	case addFace:
		id, err := f.faces.Add(face.KindApp)
		if err != nil {
			log.Warn(f, "failed to add app face", "err", err)
			m.reply <- addFaceResult{err: err}
			return
		}
		f.appSinks[id] = m.sink
		m.reply <- addFaceResult{id: id}
	case removeFace:
		if !f.faces.Remove(m.faceID) {
			log.Warn(f, "failed to remove face", "face", m.faceID, "err", ErrUnknownFace)
			m.reply <- ErrUnknownFace
			return
		}
		delete(f.appSinks, m.faceID)
		delete(f.linkFaces, m.faceID)
		f.fib.RemoveFace(m.faceID)
		f.pit.RemoveFace(m.faceID)
		m.reply <- nil
	case addFib:
		entry, ok := f.faces.Lookup(m.faceID)
		if !ok {
			log.Warn(f, "failed to register prefix", "face", m.faceID, "err", ErrUnknownFace)
			m.reply <- ErrUnknownFace
			return
		}
		if _, err := f.fib.Add(m.prefix, entry); err != nil {
			log.Warn(f, "failed to register prefix", "face", m.faceID, "prefix", m.prefix.String(), "err", err)
			m.reply <- err
			return
		}
		m.reply <- nil
	case timerFired:
		f.handleTimeout(m.handle)
	}
}

// handleBlock is the shared core of the Interest and Data paths: the
// outer TLV type decides which path a block takes, regardless of whether
// it arrived as a frame from a link face or a submission from an app
// face.
func (f *Forwarder) handleBlock(fromFace uint64, blk *block.Shared) {
	typ, _, err := tlv.DecodeVarNum(blk.Bytes())
	if err != nil {
		log.Warn(f, "dropped malformed frame", "face", fromFace, "err", err)
		blk.Release()
		return
	}

	switch typ {
	case ndn.TypeInterest:
		f.handleInterest(fromFace, blk)
	case ndn.TypeData:
		f.handleData(fromFace, blk)
	default:
		log.Warn(f, "dropped frame with unrecognized outer type", "face", fromFace, "type", typ)
		blk.Release()
	}
}

func (f *Forwarder) handleInterest(fromFace uint64, blk *block.Shared) {
	defer blk.Release()

	lifetimeMs, err := packet.InterestLifetime(blk.Bytes())
	if err != nil {
		log.Warn(f, "dropped malformed interest", "face", fromFace, "err", err)
		return
	}
	if lifetimeMs > packet.MaxLifetimeMs {
		log.Warn(f, "dropped interest", "face", fromFace, "lifetime_ms", lifetimeMs, "err", ErrLifetimeOverflow)
		return
	}
	lifetimeUs := lifetimeMs * 1000

	name, err := packet.InterestName(blk.Bytes())
	if err != nil {
		log.Warn(f, "dropped malformed interest", "face", fromFace, "err", err)
		return
	}

	fromEntry, ok := f.faces.Lookup(fromFace)
	if !ok {
		return
	}

	entry, isNew, err := f.pit.Add(fromEntry, blk)
	if err != nil {
		log.Warn(f, "dropped malformed interest", "face", fromFace, "err", err)
		return
	}
	f.rearmTimer(entry.Handle, time.Duration(lifetimeUs)*time.Microsecond)

	// An aggregated Interest consolidates demand on the existing entry;
	// only the first Interest for a name goes out on the wire.
	if !isNew {
		return
	}

	fibEntry, ok := f.fib.Lookup(name)
	if !ok {
		log.Warn(f, "dropped interest", "face", fromFace, "name", name.String(), "err", ErrNoRoute)
		return
	}

	var next *face.Entry
	for i := range fibEntry.Faces {
		if fibEntry.Faces[i].ID != fromFace {
			next = &fibEntry.Faces[i]
			break
		}
	}
	if next == nil {
		return
	}

	f.forwardTo(*next, ndn.TypeInterest, blk)
}

func (f *Forwarder) handleData(fromFace uint64, blk *block.Shared) {
	defer blk.Release()

	matched, ok, err := f.pit.MatchData(blk.Bytes())
	if err != nil {
		log.Warn(f, "dropped malformed data", "face", fromFace, "err", err)
		return
	}
	if !ok {
		return
	}

	for _, entry := range matched {
		for _, in := range entry.InFaces {
			f.forwardTo(in, ndn.TypeData, blk)
		}
		entry.Interest.Release()
	}
}

// forwardTo dispatches blk to a single next-hop face: a LINK face gets
// the raw block sent on the wire, an APP face gets a cloned shared block
// delivered through its registered AppSink.
func (f *Forwarder) forwardTo(to face.Entry, outerType uint64, blk *block.Shared) {
	switch to.Kind {
	case face.KindLink:
		lf, ok := f.linkFaces[to.ID]
		if !ok {
			return
		}
		if err := lf.SendFrame(blk.Bytes()); err != nil {
			log.Warn(f, "dropped frame: send failed", "face", to.ID, "err", err)
		}
	case face.KindApp:
		sink, ok := f.appSinks[to.ID]
		if !ok {
			return
		}
		clone := blk.Clone()
		var err error
		switch outerType {
		case ndn.TypeInterest:
			err = sink.DeliverInterest(clone)
		case ndn.TypeData:
			err = sink.DeliverData(clone)
		}
		if err != nil {
			log.Warn(f, "dropped event: app mailbox full", "face", to.ID, "err", err)
			clone.Release()
		}
	}
}

func (f *Forwarder) rearmTimer(handle table.PitHandle, d time.Duration) {
	timer := time.AfterFunc(d, func() {
		select {
		case f.inbox <- timerFired{handle: handle}:
		case <-f.done:
		}
	})
	f.pit.SetTimer(handle, timer)
}

// handleTimeout implements the PIT timeout path: remove the entry, then
// best-effort deliver a Timeout event to every APP incoming face.
func (f *Forwarder) handleTimeout(handle table.PitHandle) {
	entry, ok := f.pit.Remove(handle)
	if !ok {
		return
	}
	defer entry.Interest.Release()
	for _, in := range entry.InFaces {
		if in.Kind != face.KindApp {
			continue
		}
		sink, ok := f.appSinks[in.ID]
		if !ok {
			continue
		}
		clone := entry.Interest.Clone()
		if err := sink.DeliverTimeout(clone); err != nil {
			log.Warn(f, "dropped timeout event: app mailbox full", "face", in.ID, "err", err)
			clone.Release()
		}
	}
}
