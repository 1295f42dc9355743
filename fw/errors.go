package fw

import "errors"

// Forwarder error kinds. NoRoute and LifetimeOverflow cause a drop plus
// a log line; UnknownFace and MailboxFull travel back to the app as a
// non-nil ack or a failed delivery.
var (
	ErrNoRoute          = errors.New("fw: no FIB route for name")
	ErrLifetimeOverflow = errors.New("fw: interest lifetime exceeds 0x400000 ms")
	ErrMailboxFull      = errors.New("fw: app mailbox is full")
	ErrUnknownFace      = errors.New("fw: no such face id")
)
