package replay

import "errors"

// Replay errors.
var (
	// ErrUnboundReceiver indicates the log needs a receiver role that
	// was never bound. Raised before the first dispatch, never mid-run.
	ErrUnboundReceiver = errors.New("replay: receiver role not bound")

	// ErrAlreadyRan indicates Run was called on an engine that already
	// started. An engine replays one log once; build a new one to
	// replay again.
	ErrAlreadyRan = errors.New("replay: engine already ran")
)
