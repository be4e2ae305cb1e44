package cmdlog

import (
	"sync"
	"time"
)

// Log is the ordered, append-only record of a recording session.
// Appends happen on the input tick while a background task may snapshot
// the log for persistence, so both paths take the same lock.
//
// Callers supply the absolute time of each action; the log converts it
// to seconds since the session clock origin. Append order is the replay
// dispatch order and is independent of the stamped times, so an entry
// may carry an earlier time than the entry appended before it.
type Log struct {
	mu      sync.Mutex
	start   time.Time
	entries []Entry
}

// NewLog starts a log whose session clock begins now.
func NewLog() *Log { return NewLogAt(time.Now()) }

// NewLogAt starts a log whose session clock begins at start.
func NewLogAt(start time.Time) *Log {
	return &Log{start: start}
}

// Toggle appends an entry recording a boolean state change at time at
// and returns it.
func (l *Log) Toggle(kind Kind, on bool, at time.Time) Entry {
	l.mu.Lock()
	defer l.mu.Unlock()
	e := Entry{Kind: kind, Time: l.stamp(at), On: on}
	l.entries = append(l.entries, e)
	return e
}

// Trigger appends a parameterless entry at time at and returns it.
func (l *Log) Trigger(kind Kind, at time.Time) Entry {
	l.mu.Lock()
	defer l.mu.Unlock()
	e := Entry{Kind: kind, Time: l.stamp(at)}
	l.entries = append(l.entries, e)
	return e
}

// Continuous appends an entry recording a held-and-released analog
// change. The entry is appended now, at release, but stamped with
// startedAt, the moment the change began.
func (l *Log) Continuous(kind Kind, target float64, startedAt time.Time) Entry {
	l.mu.Lock()
	defer l.mu.Unlock()
	e := Entry{Kind: kind, Time: l.stamp(startedAt), Target: target}
	l.entries = append(l.entries, e)
	return e
}

// stamp converts an absolute time to session-relative seconds.
func (l *Log) stamp(at time.Time) float64 {
	return at.Sub(l.start).Seconds()
}

// Len returns the number of entries appended so far.
func (l *Log) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}

// Snapshot returns a copy of the entries in append order, taken under
// the append lock so a concurrent persist sees a consistent prefix.
func (l *Log) Snapshot() []Entry {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]Entry, len(l.entries))
	copy(out, l.entries)
	return out
}

// Start returns the session clock origin.
func (l *Log) Start() time.Time {
	return l.start
}
