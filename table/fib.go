package table

import (
	"errors"
	"sync"

	"github.com/ndnlite/ndnlite/face"
	"github.com/ndnlite/ndnlite/ndn"
)

// MaxFibEntries bounds the FIB slab. A registration for a new prefix
// once the table is full fails with ErrFibFull; the failure travels back
// to the registering app as a non-nil error.
const MaxFibEntries = 64

// ErrFibFull is returned by FIB.Add when no slab slot is free.
var ErrFibFull = errors.New("table: fib is full")

// FibHandle is a stable identifier for a FIB entry.
type FibHandle uint64

// FibEntry is one row of the Forwarding Information Base: a name prefix
// and its next-hop faces. order breaks longest-prefix-match ties: first
// inserted wins.
type FibEntry struct {
	Handle FibHandle
	Prefix ndn.Name
	Faces  []face.Entry
	order  int
}

func (e *FibEntry) hasFace(id uint64) bool {
	for _, f := range e.Faces {
		if f.ID == id {
			return true
		}
	}
	return false
}

// FIB is the Forwarding Information Base. Ownership discipline matches
// PIT: the forwarder goroutine is the sole mutator; the mutex only
// protects the read-only Entries() introspection path.
type FIB struct {
	mu       sync.Mutex
	entries  map[FibHandle]*FibEntry
	nextHndl FibHandle
	seq      int
}

// NewFIB returns an empty FIB.
func NewFIB() *FIB {
	return &FIB{entries: make(map[FibHandle]*FibEntry)}
}

// Add registers a route: if an entry with the exact same prefix exists,
// the face is added to it (deduplicated by face id) and no new entry is
// created. Child-inherit: every existing entry whose prefix is a proper
// extension of the new prefix also receives the face, so a shorter-prefix
// route implicitly covers longer prefixes. Fails with ErrFibFull when a
// new prefix would exceed the slab.
func (f *FIB) Add(prefix ndn.Name, to face.Entry) (*FibEntry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var exact *FibEntry
	for _, e := range f.entries {
		rel := ndn.PrefixRelation(prefix, e.Prefix)
		switch rel {
		case ndn.RelEqual:
			exact = e
		case ndn.RelAPrefixOfB:
			// e.Prefix is a proper extension of the new prefix.
			if !e.hasFace(to.ID) {
				e.Faces = append(e.Faces, to)
			}
		}
	}
	if exact != nil {
		if !exact.hasFace(to.ID) {
			exact.Faces = append(exact.Faces, to)
		}
		return exact, nil
	}

	if len(f.entries) >= MaxFibEntries {
		return nil, ErrFibFull
	}

	f.nextHndl++
	f.seq++
	e := &FibEntry{
		Handle: f.nextHndl,
		Prefix: prefix.Clone(),
		Faces:  []face.Entry{to},
		order:  f.seq,
	}
	f.entries[e.Handle] = e
	return e, nil
}

// Lookup is a longest-prefix match over every entry whose prefix equals
// or is a prefix of name, breaking ties by insertion order (first
// inserted wins).
func (f *FIB) Lookup(name ndn.Name) (*FibEntry, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var best *FibEntry
	for _, e := range f.entries {
		rel := ndn.PrefixRelation(e.Prefix, name)
		if rel != ndn.RelEqual && rel != ndn.RelAPrefixOfB {
			continue
		}
		if best == nil {
			best = e
			continue
		}
		switch {
		case len(e.Prefix) > len(best.Prefix):
			best = e
		case len(e.Prefix) == len(best.Prefix) && e.order < best.order:
			best = e
		}
	}
	if best == nil {
		return nil, false
	}
	return best, true
}

// RemoveFace strips face id from every FIB entry's next-hop list.
// Entries left with zero faces are pruned.
func (f *FIB) RemoveFace(id uint64) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for handle, e := range f.entries {
		kept := e.Faces[:0]
		for _, fe := range e.Faces {
			if fe.ID != id {
				kept = append(kept, fe)
			}
		}
		e.Faces = kept
		if len(e.Faces) == 0 {
			delete(f.entries, handle)
		}
	}
}

// Entries returns a snapshot of every live FIB entry, ordered by
// insertion.
func (f *FIB) Entries() []*FibEntry {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]*FibEntry, 0, len(f.entries))
	for _, e := range f.entries {
		out = append(out, e)
	}
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && out[j-1].order > out[j].order; j-- {
			out[j-1], out[j] = out[j], out[j-1]
		}
	}
	return out
}
