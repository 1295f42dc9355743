// Package app implements the application-facing library surface: an app
// handle with a consumer callback table, a producer callback table, and
// an incoming mailbox, wired to a fw.Forwarder through the
// AddAppFace/Submit/RegisterPrefix control surface. It is the thing
// producer/consumer code actually calls.
package app

import (
	"fmt"
	"sync"
	"time"

	"github.com/ndnlite/ndnlite/block"
	"github.com/ndnlite/ndnlite/fw"
	"github.com/ndnlite/ndnlite/ndn"
	"github.com/ndnlite/ndnlite/ndn/packet"
)

// OnData is invoked when Data satisfying a pending ExpressInterest
// arrives. data is the Data block; ownership stays with the Handle,
// which releases it once every matching callback has run.
type OnData func(interestName ndn.Name, data *block.Shared) Disposition

// OnTimeout is invoked when a pending ExpressInterest's lifetime expires
// with no matching Data.
type OnTimeout func(interestName ndn.Name) Disposition

// OnInterest is invoked when an Interest matching a registered prefix
// arrives. interest is the Interest block; ownership stays with the
// Handle.
type OnInterest func(interest *block.Shared) Disposition

// consumerEntry is one row of the consumer callback table: a pending
// ExpressInterest awaiting Data or a timeout.
type consumerEntry struct {
	name      ndn.Name
	onData    OnData
	onTimeout OnTimeout
}

// producerEntry is one row of the producer callback table: a registered
// prefix and its handler.
type producerEntry struct {
	prefix     ndn.Name
	onInterest OnInterest
}

// event is the sealed set of messages an app's mailbox carries, mirroring
// the forwarder's own message type.
type event interface{ isEvent() }

type dataEvent struct{ blk *block.Shared }
type timeoutEvent struct{ blk *block.Shared }
type interestEvent struct{ blk *block.Shared }
type scheduledEvent struct {
	cb  func(ctx any)
	ctx any
}

func (dataEvent) isEvent()      {}
func (timeoutEvent) isEvent()   {}
func (interestEvent) isEvent()  {}
func (scheduledEvent) isEvent() {}

// Handle is one app goroutine's handle onto the forwarder: a consumer
// table, a producer table, and an incoming mailbox. The zero value is
// not usable; construct with New.
//
// The consumer table is keyed by the xxHash fingerprint of the Interest's
// encoded Name (ndn.Name.Hash); a bucket holds every pending
// ExpressInterest sharing that fingerprint; exact equality is still
// checked within a bucket to resolve the (astronomically unlikely) hash
// collision. The producer table stays a plain slice because its dispatch
// rule is a prefix scan, not an exact-name lookup, and prefix matching
// cannot be expressed as a hash-map lookup.
type Handle struct {
	fwd    *fw.Forwarder
	faceID uint64

	mu        sync.Mutex
	consumers map[uint64][]*consumerEntry
	producers []*producerEntry

	mailbox chan event
	nonces  packet.NonceSource
}

// New attaches a fresh APP face to fwd and returns a Handle for it. fwd
// must already be running its event loop (fw.Forwarder.Run). Fails when
// the forwarder's face table is full.
func New(fwd *fw.Forwarder) (*Handle, error) {
	h := &Handle{
		fwd:       fwd,
		consumers: make(map[uint64][]*consumerEntry),
		mailbox:   make(chan event, 256),
		nonces:    packet.DefaultNonceSource,
	}
	id, err := fwd.AddAppFace(h)
	if err != nil {
		return nil, err
	}
	h.faceID = id
	return h, nil
}

// Close tears down the handle's APP face.
func (h *Handle) Close() error {
	return h.fwd.RemoveAppFace(h.faceID)
}

// String implements log.Loggable.
func (h *Handle) String() string {
	return fmt.Sprintf("app-face-%d", h.faceID)
}

// DeliverInterest implements fw.AppSink: enqueues an Interest event onto
// the handle's mailbox, never blocking the forwarder goroutine.
func (h *Handle) DeliverInterest(blk *block.Shared) error {
	return h.deliver(interestEvent{blk: blk})
}

// DeliverData implements fw.AppSink.
func (h *Handle) DeliverData(blk *block.Shared) error {
	return h.deliver(dataEvent{blk: blk})
}

// DeliverTimeout implements fw.AppSink.
func (h *Handle) DeliverTimeout(blk *block.Shared) error {
	return h.deliver(timeoutEvent{blk: blk})
}

func (h *Handle) deliver(e event) error {
	select {
	case h.mailbox <- e:
		return nil
	default:
		return fw.ErrMailboxFull
	}
}

// ExpressInterest encodes an Interest, records (name, onData, onTimeout)
// in the consumer table, and submits it to the forwarder for forwarding.
func (h *Handle) ExpressInterest(name ndn.Name, lifetimeMs uint64, onData OnData, onTimeout OnTimeout) error {
	buf := packet.CreateInterest(name, lifetimeMs, h.nonces)

	key := name.Hash()
	h.mu.Lock()
	h.consumers[key] = append(h.consumers[key], &consumerEntry{
		name:      name.Clone(),
		onData:    onData,
		onTimeout: onTimeout,
	})
	h.mu.Unlock()

	h.fwd.Submit(h.faceID, block.New(buf))
	return nil
}

// RegisterPrefix inserts into the producer table and synchronously
// registers the route with the forwarder's FIB. The producer entry is
// inserted before the registration round-trip so an Interest arriving
// right after the ack always finds its handler, and removed again if the
// forwarder refuses the route.
func (h *Handle) RegisterPrefix(prefix ndn.Name, onInterest OnInterest) error {
	entry := &producerEntry{
		prefix:     prefix.Clone(),
		onInterest: onInterest,
	}
	h.mu.Lock()
	h.producers = append(h.producers, entry)
	h.mu.Unlock()

	if err := h.fwd.RegisterPrefix(h.faceID, prefix); err != nil {
		h.mu.Lock()
		for i, e := range h.producers {
			if e == entry {
				h.producers = append(h.producers[:i], h.producers[i+1:]...)
				break
			}
		}
		h.mu.Unlock()
		return err
	}
	return nil
}

// PutData submits a Data block to the forwarder, transferring ownership
// of blk to the forwarder/PIT path.
func (h *Handle) PutData(blk *block.Shared) {
	h.fwd.Submit(h.faceID, blk)
}

// Schedule arms a one-shot timer that, on firing, re-enters the app loop
// by posting a scheduledEvent onto the mailbox instead of calling cb
// directly from the timer goroutine - every callback in this package runs
// on the app goroutine inside Run, never on a timer goroutine.
func (h *Handle) Schedule(cb func(ctx any), ctx any, delayUs int64) {
	d := time.Duration(delayUs) * time.Microsecond
	time.AfterFunc(d, func() {
		// Best-effort: if the mailbox is full, the scheduled callback
		// is dropped rather than blocking the timer goroutine.
		select {
		case h.mailbox <- scheduledEvent{cb: cb, ctx: ctx}:
		default:
		}
	})
}
