package cmdlog

import "fmt"

// Entry is one recorded action. Time is in seconds since the start of
// the recording session. On is meaningful for toggle kinds and Target
// for continuous kinds; trigger kinds carry neither. Entries are
// immutable after construction.
type Entry struct {
	Kind   Kind    `json:"kind"`
	Time   float64 `json:"time"`
	On     bool    `json:"on,omitempty"`
	Target float64 `json:"target,omitempty"`
}

// Role returns the receiver role that executes this entry.
func (e Entry) Role() Role { return e.Kind.Role() }

// IsValid reports whether the entry's kind is known.
func (e Entry) IsValid() bool { return e.Kind.IsValid() }

// Describe renders the entry for humans. Not for control flow.
func (e Entry) Describe() string {
	switch e.Kind.Class() {
	case ClassToggle:
		state := "off"
		if e.On {
			state = "on"
		}
		return fmt.Sprintf("%.2fs %s %s", e.Time, e.Kind, state)
	case ClassContinuous:
		return fmt.Sprintf("%.2fs %s to %.3f", e.Time, e.Kind, e.Target)
	case ClassTrigger:
		return fmt.Sprintf("%.2fs %s", e.Time, e.Kind)
	default:
		return fmt.Sprintf("%.2fs unknown kind %q", e.Time, string(e.Kind))
	}
}
