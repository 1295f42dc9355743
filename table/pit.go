// Package table implements the Pending Interest Table and the Forwarding
// Information Base. Entries live in an owned slab addressed by a stable
// integer handle rather than a linked list of raw pointers - the
// forwarder's timers carry a PitHandle, not a pointer, so a stray fire
// after an entry is removed can never dereference freed memory.
package table

import (
	"errors"
	"sync"
	"time"

	"github.com/ndnlite/ndnlite/block"
	"github.com/ndnlite/ndnlite/face"
	"github.com/ndnlite/ndnlite/ndn"
	"github.com/ndnlite/ndnlite/ndn/packet"
)

// MaxPitEntries bounds the PIT slab. An Interest arriving while the
// table is full is dropped by the forwarder, the same way a failed entry
// allocation drops the packet on a constrained node.
const MaxPitEntries = 128

// ErrPitFull is returned by PIT.Add when no slab slot is free.
var ErrPitFull = errors.New("table: pit is full")

// PitHandle is a stable identifier for a PIT entry, used by the
// forwarder's per-entry timer instead of a pointer.
type PitHandle uint64

// PitEntry is one row of the Pending Interest Table: the originating
// Interest (held as a shared block so releasing it is explicit), the set
// of faces it arrived on, and the timer the forwarder arms against it.
type PitEntry struct {
	Handle   PitHandle
	Name     ndn.Name
	Interest *block.Shared
	InFaces  []face.Entry

	timer *time.Timer
}

// hasFace reports whether id is already among the entry's incoming faces.
func (e *PitEntry) hasFace(id uint64) bool {
	for _, f := range e.InFaces {
		if f.ID == id {
			return true
		}
	}
	return false
}

// PIT is the Pending Interest Table, owned exclusively by the forwarder
// goroutine. The internal mutex exists only so the read-only
// introspection surface can be queried safely from another goroutine
// (e.g. a CLI), never to make Add/MatchData/Remove safe to call
// concurrently with each other.
type PIT struct {
	mu       sync.Mutex
	entries  map[PitHandle]*PitEntry
	nextHndl PitHandle
}

// NewPIT returns an empty PIT.
func NewPIT() *PIT {
	return &PIT{entries: make(map[PitHandle]*PitEntry)}
}

// Add records an incoming Interest: if an entry already exists for the
// Interest's name (selectors-ignoring aggregation), the incoming face is
// added to it (deduplicated by face id) and isNew is false. Otherwise a
// new entry is allocated holding a cloned reference to interestBlock.
// The caller (the forwarder) is responsible for arming or rearming the
// entry's timer via SetTimer in both cases.
func (p *PIT) Add(from face.Entry, interestBlock *block.Shared) (entry *PitEntry, isNew bool, err error) {
	name, err := packet.InterestName(interestBlock.Bytes())
	if err != nil {
		return nil, false, err
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	for _, e := range p.entries {
		if e.Name.Equal(name) {
			if !e.hasFace(from.ID) {
				e.InFaces = append(e.InFaces, from)
			}
			return e, false, nil
		}
	}

	if len(p.entries) >= MaxPitEntries {
		return nil, false, ErrPitFull
	}

	p.nextHndl++
	e := &PitEntry{
		Handle:   p.nextHndl,
		Name:     name,
		Interest: interestBlock.Clone(),
		InFaces:  []face.Entry{from},
	}
	p.entries[e.Handle] = e
	return e, true, nil
}

// SetTimer attaches or replaces the timer driving an entry's expiration.
// Any previously attached timer is stopped first.
func (p *PIT) SetTimer(handle PitHandle, timer *time.Timer) {
	p.mu.Lock()
	defer p.mu.Unlock()
	e, ok := p.entries[handle]
	if !ok {
		timer.Stop()
		return
	}
	if e.timer != nil {
		e.timer.Stop()
	}
	e.timer = timer
}

// Remove deletes an entry by handle, stopping its timer first so a stray
// fire after removal is impossible.
// The returned entry's Interest block is still held with the reference
// Add cloned for it; the caller must Release it once done. Reports
// whether the entry was present.
func (p *PIT) Remove(handle PitHandle) (*PitEntry, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	e, ok := p.entries[handle]
	if !ok {
		return nil, false
	}
	if e.timer != nil {
		e.timer.Stop()
	}
	delete(p.entries, handle)
	return e, true
}

// MatchData removes every entry whose name equals or is a prefix of the
// Data's name (after cancelling its timer) and returns them for the
// forwarder to fan out to. Reports whether at least one entry matched.
func (p *PIT) MatchData(dataBlock []byte) ([]*PitEntry, bool, error) {
	dataName, err := packet.DataName(dataBlock)
	if err != nil {
		return nil, false, err
	}

	p.mu.Lock()
	var matched []*PitEntry
	for handle, e := range p.entries {
		rel := ndn.PrefixRelation(e.Name, dataName)
		if rel == ndn.RelEqual || rel == ndn.RelAPrefixOfB {
			if e.timer != nil {
				e.timer.Stop()
			}
			delete(p.entries, handle)
			matched = append(matched, e)
		}
	}
	p.mu.Unlock()

	return matched, len(matched) > 0, nil
}

// RemoveFace strips face id from every PIT entry's incoming-face list,
// pruning entries left with zero incoming faces. Invoked when the
// forwarder tears a face down, so a departed face id can never be
// delivered to again.
func (p *PIT) RemoveFace(id uint64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	for handle, e := range p.entries {
		kept := e.InFaces[:0]
		for _, f := range e.InFaces {
			if f.ID != id {
				kept = append(kept, f)
			}
		}
		e.InFaces = kept
		if len(e.InFaces) == 0 {
			if e.timer != nil {
				e.timer.Stop()
			}
			delete(p.entries, handle)
			e.Interest.Release()
		}
	}
}

// Entries returns a snapshot of every live PIT entry.
func (p *PIT) Entries() []*PitEntry {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]*PitEntry, 0, len(p.entries))
	for _, e := range p.entries {
		out = append(out, e)
	}
	return out
}
