// Package chord models the keyboard chords that activate cab commands.
//
// A chord describes an input surface: a physical key plus modifier
// requirements (KeyChord), a bare modifier combination (ModifierChord),
// or a key whose modifier requirements are partially relaxed
// (ModifiableKeyChord). Chords are matched against keyboard snapshots
// every input tick and serialized to the comma-separated integer form
// used by stored and command-line binding overrides.
package chord

import "fmt"

// Spec is the behavior shared by all chord variants.
type Spec interface {
	fmt.Stringer

	// IsActive reports whether the chord is satisfied by the snapshot.
	IsActive(kb *Snapshot) bool

	// UniqueInputs returns every distinct trigger surface of the chord
	// in a canonical string form, used for conflict detection.
	UniqueInputs() []string

	// Encode renders the chord in its full serialized form.
	Encode() string

	// Decode merges a serialized override into the chord in place.
	// Omitted trailing fields leave the current values unchanged.
	Decode(s string) error

	// Clone returns an independent copy.
	Clone() Spec
}

// KeyChord activates while a single physical key is held and every
// modifier state equals its requirement exactly. The key is identified
// by a scan code or by a symbolic Key value, never both.
type KeyChord struct {
	ScanCode uint16
	Key      Key
	Mods     Modifier
}

// NewScanCodeChord returns a KeyChord for a scan-code-identified key.
func NewScanCodeChord(code uint16, mods Modifier) *KeyChord {
	return &KeyChord{ScanCode: code, Mods: mods}
}

// NewKeyChord returns a KeyChord for a symbolically identified key.
func NewKeyChord(k Key, mods Modifier) *KeyChord {
	return &KeyChord{Key: k, Mods: mods}
}

// keyDown resolves the chord's physical key against the snapshot.
// Scan codes translate through the US layout table; untranslatable
// codes never match.
func (c *KeyChord) keyDown(kb *Snapshot) bool {
	k := c.Key
	if k == KeyNone {
		k = KeyFromScanCode(c.ScanCode)
	}
	return kb.IsDown(k)
}

// keyName returns the display identity of the chord's physical key.
func (c *KeyChord) keyName() string {
	if c.Key != KeyNone {
		return c.Key.String()
	}
	if k := KeyFromScanCode(c.ScanCode); k != KeyNone {
		return k.String()
	}
	return fmt.Sprintf("sc:0x%02X", c.ScanCode)
}

// IsActive reports whether the key is held with exactly the required
// modifiers. Holding an extra modifier defeats the match.
func (c *KeyChord) IsActive(kb *Snapshot) bool {
	return c.keyDown(kb) && kb.Modifiers() == c.Mods
}

// UniqueInputs returns the chord's single trigger surface.
func (c *KeyChord) UniqueInputs() []string {
	return []string{inputString(c.Mods, c.keyName())}
}

// Clone returns an independent copy.
func (c *KeyChord) Clone() Spec {
	dup := *c
	return &dup
}

func (c *KeyChord) String() string {
	return inputString(c.Mods, c.keyName())
}

// ModifierChord activates while every required modifier is held, in
// either its left or right variant. Modifiers it does not require and
// all other keys are unconstrained, so modifier chords can be active
// alongside key chords.
type ModifierChord struct {
	Mods Modifier
}

// NewModifierChord returns a ModifierChord requiring the given modifiers.
func NewModifierChord(mods Modifier) *ModifierChord {
	return &ModifierChord{Mods: mods}
}

// IsActive reports whether all required modifiers are held.
func (c *ModifierChord) IsActive(kb *Snapshot) bool {
	return kb.Modifiers()&c.Mods == c.Mods
}

// UniqueInputs returns the modifier combination as a single surface.
func (c *ModifierChord) UniqueInputs() []string {
	return []string{c.Mods.String()}
}

// Clone returns an independent copy.
func (c *ModifierChord) Clone() Spec {
	dup := *c
	return &dup
}

func (c *ModifierChord) String() string {
	if c.Mods == ModNone {
		return "(none)"
	}
	return c.Mods.String()
}

// ModifiableKeyChord is a KeyChord with an ignore set: ignored modifiers
// place no constraint on the match, so the chord stays active while a
// companion ModifierChord (camera speed-up, for example) is held.
type ModifiableKeyChord struct {
	KeyChord
	Ignore Modifier
}

// NewModifiableChord derives the ignore set from the referenced
// modifier chords: a modifier is ignored if any of them requires it.
func NewModifiableChord(base *KeyChord, ignoreFrom ...*ModifierChord) *ModifiableKeyChord {
	c := &ModifiableKeyChord{KeyChord: *base}
	for _, mc := range ignoreFrom {
		c.Ignore = c.Ignore.With(mc.Mods)
	}
	return c
}

// IsActive reports whether the key is held and every non-ignored
// modifier matches its base requirement exactly.
func (c *ModifiableKeyChord) IsActive(kb *Snapshot) bool {
	return c.keyDown(kb) && (kb.Modifiers()^c.Mods)&^c.Ignore == ModNone
}

// UniqueInputs expands the ignore set: each ignored modifier doubles
// the surfaces (held and not held), so k ignored modifiers yield 2^k
// strings.
func (c *ModifiableKeyChord) UniqueInputs() []string {
	prefixes := []string{""}
	for _, mod := range modifierOrder {
		switch {
		case c.Ignore.Has(mod):
			next := make([]string, 0, len(prefixes)*2)
			for _, p := range prefixes {
				next = append(next, p, p+modifierName(mod)+"+")
			}
			prefixes = next
		case c.Mods.Has(mod):
			for i := range prefixes {
				prefixes[i] += modifierName(mod) + "+"
			}
		}
	}
	key := c.keyName()
	inputs := make([]string, len(prefixes))
	for i, p := range prefixes {
		inputs[i] = p + key
	}
	return inputs
}

// Clone returns an independent copy.
func (c *ModifiableKeyChord) Clone() Spec {
	dup := *c
	return &dup
}

func (c *ModifiableKeyChord) String() string {
	s := c.KeyChord.String()
	if c.Ignore != ModNone {
		s += " (ignoring " + c.Ignore.String() + ")"
	}
	return s
}

// inputString builds the canonical surface form: modifiers in Ctrl,
// Alt, Shift order joined to the key name with "+".
func inputString(mods Modifier, key string) string {
	if mods == ModNone {
		return key
	}
	return mods.String() + "+" + key
}
