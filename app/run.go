package app

import (
	"github.com/ndnlite/ndnlite/block"
	"github.com/ndnlite/ndnlite/ndn"
	"github.com/ndnlite/ndnlite/ndn/packet"
)

// Run is the app's dispatch loop: it consumes events from the mailbox
// until a callback returns a non-Continue disposition, or stopCh closes.
// Returns the disposition that ended the loop.
func (h *Handle) Run(stopCh <-chan struct{}) Disposition {
	for {
		select {
		case <-stopCh:
			return Stop
		case e := <-h.mailbox:
			if d := h.dispatch(e); d != Continue {
				return d
			}
		}
	}
}

func (h *Handle) dispatch(e event) Disposition {
	switch ev := e.(type) {
	case dataEvent:
		return h.dispatchData(ev.blk)
	case timeoutEvent:
		return h.dispatchTimeout(ev.blk)
	case interestEvent:
		return h.dispatchInterest(ev.blk)
	case scheduledEvent:
		ev.cb(ev.ctx)
		return Continue
	default:
		return Continue
	}
}

// dispatchData scans the consumer table for entries whose Interest name
// equals the Data name or is a prefix of it, invokes onData for each
// match, then removes the entry (one-shot delivery).
func (h *Handle) dispatchData(blk *block.Shared) Disposition {
	defer blk.Release()

	name, err := packet.DataName(blk.Bytes())
	if err != nil {
		return Continue
	}

	var matched []*consumerEntry
	for i := len(name); i >= 0; i-- {
		matched = append(matched, h.takeMatching(name[:i])...)
	}
	for _, entry := range matched {
		if entry.onData == nil {
			continue
		}
		if d := entry.onData(entry.name, blk); d != Continue {
			return d
		}
	}
	return Continue
}

// dispatchTimeout takes the consumer entries whose name equals the
// timed-out Interest's name and invokes onTimeout for each.
func (h *Handle) dispatchTimeout(blk *block.Shared) Disposition {
	defer blk.Release()

	name, err := packet.InterestName(blk.Bytes())
	if err != nil {
		return Continue
	}

	for _, entry := range h.takeMatching(name) {
		if entry.onTimeout == nil {
			continue
		}
		if d := entry.onTimeout(entry.name); d != Continue {
			return d
		}
	}
	return Continue
}

// takeMatching removes and returns every consumer entry whose name
// equals name byte-wise. A consumer sees onData xor onTimeout, never
// both: by the time one fires the PIT entry feeding it is already gone,
// and the consumer entry is removed here. Entries are found via the
// fingerprint bucket for name's hash, then filtered by exact equality to
// resolve any collision.
func (h *Handle) takeMatching(name ndn.Name) []*consumerEntry {
	h.mu.Lock()
	defer h.mu.Unlock()

	key := name.Hash()
	bucket := h.consumers[key]
	if len(bucket) == 0 {
		return nil
	}

	var matched []*consumerEntry
	kept := bucket[:0]
	for _, entry := range bucket {
		if entry.name.Equal(name) {
			matched = append(matched, entry)
		} else {
			kept = append(kept, entry)
		}
	}
	if len(kept) == 0 {
		delete(h.consumers, key)
	} else {
		h.consumers[key] = kept
	}
	return matched
}

// dispatchInterest delivers to every producer entry whose prefix equals
// or is a prefix of the Interest name; stops on non-Continue.
func (h *Handle) dispatchInterest(blk *block.Shared) Disposition {
	defer blk.Release()

	name, err := packet.InterestName(blk.Bytes())
	if err != nil {
		return Continue
	}

	h.mu.Lock()
	matched := make([]*producerEntry, 0, len(h.producers))
	for _, entry := range h.producers {
		rel := ndn.PrefixRelation(entry.prefix, name)
		if rel == ndn.RelEqual || rel == ndn.RelAPrefixOfB {
			matched = append(matched, entry)
		}
	}
	h.mu.Unlock()

	for _, entry := range matched {
		if entry.onInterest == nil {
			continue
		}
		clone := blk.Clone()
		d := entry.onInterest(clone)
		clone.Release()
		if d != Continue {
			return d
		}
	}
	return Continue
}
