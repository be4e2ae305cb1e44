package chord

import "strings"

// Snapshot is the pressed state of every key at one sample point.
// The zero value is an all-released keyboard. Snapshot is a value type;
// assignment copies the full state, so a previous sample can be retained
// while the current one mutates.
type Snapshot struct {
	down [keyCount]bool
}

// NewSnapshot returns a snapshot with the given keys pressed.
func NewSnapshot(keys ...Key) Snapshot {
	var s Snapshot
	for _, k := range keys {
		s.Press(k)
	}
	return s
}

// Press marks a key as held. Invalid keys are ignored.
func (s *Snapshot) Press(k Key) {
	if k > KeyNone && k < keyCount {
		s.down[k] = true
	}
}

// Release marks a key as released. Invalid keys are ignored.
func (s *Snapshot) Release(k Key) {
	if k > KeyNone && k < keyCount {
		s.down[k] = false
	}
}

// Reset releases every key.
func (s *Snapshot) Reset() {
	*s = Snapshot{}
}

// IsDown returns true if the key is held.
func (s *Snapshot) IsDown(k Key) bool {
	return k > KeyNone && k < keyCount && s.down[k]
}

// ShiftDown returns true if either shift key is held.
func (s *Snapshot) ShiftDown() bool {
	return s.down[KeyLeftShift] || s.down[KeyRightShift]
}

// CtrlDown returns true if either control key is held.
func (s *Snapshot) CtrlDown() bool {
	return s.down[KeyLeftControl] || s.down[KeyRightControl]
}

// AltDown returns true if either alt key is held.
func (s *Snapshot) AltDown() bool {
	return s.down[KeyLeftAlt] || s.down[KeyRightAlt]
}

// Modifiers returns the held modifiers, with left and right variants
// collapsed.
func (s *Snapshot) Modifiers() Modifier {
	var m Modifier
	if s.ShiftDown() {
		m = m.With(ModShift)
	}
	if s.CtrlDown() {
		m = m.With(ModCtrl)
	}
	if s.AltDown() {
		m = m.With(ModAlt)
	}
	return m
}

// String lists the held keys, for debug logging.
func (s *Snapshot) String() string {
	var parts []string
	for k := KeyNone + 1; k < keyCount; k++ {
		if s.down[k] {
			parts = append(parts, k.String())
		}
	}
	if len(parts) == 0 {
		return "(none)"
	}
	return strings.Join(parts, " ")
}
