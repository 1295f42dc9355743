package packet

import (
	"crypto/rand"
	"encoding/binary"
	"sync"
)

// NonceSource draws 4-byte Interest nonces. Pluggable: the default reads
// crypto/rand on every draw, and tests can supply a deterministic source
// instead.
type NonceSource interface {
	Next() [4]byte
}

// cryptoRandNonceSource draws nonces from crypto/rand, ndnlite's default
// production source.
type cryptoRandNonceSource struct{}

// DefaultNonceSource is the production nonce source: a uniform 32-bit
// value per draw, sourced from the OS CSPRNG.
var DefaultNonceSource NonceSource = cryptoRandNonceSource{}

func (cryptoRandNonceSource) Next() [4]byte {
	var b [4]byte
	_, _ = rand.Read(b[:]) // crypto/rand.Read never fails in practice
	return b
}

// counterNonceSource produces a deterministic, monotonically increasing
// sequence of nonces for reproducible tests.
type counterNonceSource struct {
	mu   sync.Mutex
	next uint32
}

// NewCounterNonceSource returns a deterministic NonceSource starting at
// seed, incrementing by one on each call.
func NewCounterNonceSource(seed uint32) NonceSource {
	return &counterNonceSource{next: seed}
}

func (c *counterNonceSource) Next() [4]byte {
	c.mu.Lock()
	defer c.mu.Unlock()
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], c.next)
	c.next++
	return b
}
