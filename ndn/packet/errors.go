// Package packet implements the Interest and Data wire codecs: encoding,
// field accessors, and Data signing/verification built on top of the tlv
// and ndn packages.
package packet

import "fmt"

// ErrMalformed is returned by an accessor when an expected field is
// absent, has the wrong length, or the packet is otherwise not
// well-formed.
type ErrMalformed struct {
	Field  string
	Reason string
}

func (e ErrMalformed) Error() string {
	return fmt.Sprintf("packet: malformed %s: %s", e.Field, e.Reason)
}

// ErrLifetimeOverflow describes an Interest lifetime above MaxLifetimeMs.
// The codecs in this package do not return it; the forwarder drops such
// Interests and logs fw.ErrLifetimeOverflow.
var ErrLifetimeOverflow = fmt.Errorf("packet: interest lifetime overflows on conversion to microseconds")

// MaxLifetimeMs is the largest InterestLifetime, in milliseconds, the
// forwarder will accept. At this bound the lifetime in microseconds
// (4,194,304,000) still fits in 32 bits.
const MaxLifetimeMs = 0x400000
