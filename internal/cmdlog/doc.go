// Package cmdlog records the actions of a driving session as a typed,
// timestamped command log and persists it for later replay.
//
// # Entries
//
// Each Entry carries a Kind tag from a closed set, a session-relative
// timestamp in seconds, and the payload for its class: toggles record
// an on/off state, continuous changes record a target value, triggers
// carry nothing. The receiver role that will execute an entry at
// replay time is derived from its kind and never serialized.
//
// # Recording
//
// A Log appends entries in construction order and stamps each with the
// caller-supplied time, converted to seconds since the session clock
// origin. Toggle and Trigger record the moment they happen; Continuous
// is called when the input is released but stamps when the hold began,
// so append order is not necessarily non-decreasing in time. Replay
// honors append order; timestamps pace dispatch, they never reorder it.
//
// Example:
//
//	log := cmdlog.NewLog()
//	log.Toggle(cmdlog.KindHorn, true, time.Now())
//	log.Continuous(cmdlog.KindThrottle, 0.75, heldSince)
//
// # Persistence
//
// Logs are stored as JSON Lines: one self-describing object per line,
// written forward-only and read forward-only. A record that cannot be
// decoded is skipped with a warning; a malformed line never aborts a
// load.
//
// # Thread Safety
//
// Log is safe for concurrent use: recording appends and
// snapshot-for-persist take the same lock. Writer and Reader are not
// concurrency-safe; each belongs to a single goroutine.
package cmdlog
