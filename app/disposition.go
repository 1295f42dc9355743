package app

// Disposition is the value a consumer or producer callback returns to
// tell Run how to continue dispatching.
type Disposition int

const (
	// Continue means keep dispatching further matching callbacks for
	// this event, and keep running.
	Continue Disposition = iota
	// Stop ends Run: no further matching callbacks are invoked for this
	// event, and Run returns Stop.
	Stop
	// Error ends Run the same way as Stop, but Run returns Error to
	// signal an abnormal exit to its caller.
	Error
)
