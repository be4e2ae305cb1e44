package chord

import (
	"reflect"
	"testing"
)

func TestKeyChordExactModifiers(t *testing.T) {
	plain := NewScanCodeChord(0x30, ModNone)    // B
	shifted := NewScanCodeChord(0x30, ModShift) // Shift+B

	tests := []struct {
		name        string
		kb          Snapshot
		wantPlain   bool
		wantShifted bool
	}{
		{"released", NewSnapshot(), false, false},
		{"key only", NewSnapshot(KeyB), true, false},
		{"left shift", NewSnapshot(KeyB, KeyLeftShift), false, true},
		{"right shift", NewSnapshot(KeyB, KeyRightShift), false, true},
		{"extra ctrl", NewSnapshot(KeyB, KeyLeftShift, KeyLeftControl), false, false},
		{"other key", NewSnapshot(KeyN), false, false},
	}

	for _, tt := range tests {
		if got := plain.IsActive(&tt.kb); got != tt.wantPlain {
			t.Errorf("%s: plain.IsActive() = %v, want %v", tt.name, got, tt.wantPlain)
		}
		if got := shifted.IsActive(&tt.kb); got != tt.wantShifted {
			t.Errorf("%s: shifted.IsActive() = %v, want %v", tt.name, got, tt.wantShifted)
		}
	}
}

func TestKeyChordSymbolicKey(t *testing.T) {
	c := NewKeyChord(KeyPause, ModNone)

	kb := NewSnapshot(KeyPause)
	if !c.IsActive(&kb) {
		t.Error("IsActive() = false with Pause held, want true")
	}
	kb = NewSnapshot(KeySpace)
	if c.IsActive(&kb) {
		t.Error("IsActive() = true with Space held, want false")
	}
}

func TestKeyChordUnmappedScanCode(t *testing.T) {
	c := NewScanCodeChord(0x7F, ModNone)

	kb := NewSnapshot(KeyA, KeyB, KeySpace, KeyLeftShift)
	if c.IsActive(&kb) {
		t.Error("IsActive() = true for unmapped scan code, want false")
	}
}

func TestModifierChordSubsetMatch(t *testing.T) {
	shift := NewModifierChord(ModShift)
	ctrlShift := NewModifierChord(ModCtrl | ModShift)

	tests := []struct {
		name          string
		kb            Snapshot
		wantShift     bool
		wantCtrlShift bool
	}{
		{"released", NewSnapshot(), false, false},
		{"left shift", NewSnapshot(KeyLeftShift), true, false},
		{"right shift", NewSnapshot(KeyRightShift), true, false},
		{"shift plus key", NewSnapshot(KeyLeftShift, KeyW), true, false},
		{"shift plus alt", NewSnapshot(KeyLeftShift, KeyLeftAlt), true, false},
		{"ctrl only", NewSnapshot(KeyLeftControl), false, false},
		{"ctrl and shift", NewSnapshot(KeyLeftControl, KeyRightShift), true, true},
	}

	for _, tt := range tests {
		if got := shift.IsActive(&tt.kb); got != tt.wantShift {
			t.Errorf("%s: shift.IsActive() = %v, want %v", tt.name, got, tt.wantShift)
		}
		if got := ctrlShift.IsActive(&tt.kb); got != tt.wantCtrlShift {
			t.Errorf("%s: ctrlShift.IsActive() = %v, want %v", tt.name, got, tt.wantCtrlShift)
		}
	}
}

func TestModifiableChordIgnoredModifiers(t *testing.T) {
	fast := NewModifierChord(ModShift)
	slow := NewModifierChord(ModCtrl)
	c := NewModifiableChord(NewScanCodeChord(0xCB, ModNone), fast, slow) // Left arrow

	if c.Ignore != ModShift|ModCtrl {
		t.Fatalf("Ignore = %v, want %v", c.Ignore, ModShift|ModCtrl)
	}

	tests := []struct {
		name string
		kb   Snapshot
		want bool
	}{
		{"key only", NewSnapshot(KeyLeft), true},
		{"with shift", NewSnapshot(KeyLeft, KeyLeftShift), true},
		{"with ctrl", NewSnapshot(KeyLeft, KeyRightControl), true},
		{"with both", NewSnapshot(KeyLeft, KeyLeftShift, KeyLeftControl), true},
		{"with alt", NewSnapshot(KeyLeft, KeyLeftAlt), false},
		{"released", NewSnapshot(KeyLeftShift), false},
	}

	for _, tt := range tests {
		if got := c.IsActive(&tt.kb); got != tt.want {
			t.Errorf("%s: IsActive() = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestModifiableChordIgnoreOverridesRequirement(t *testing.T) {
	// A modifier both required and ignored is a detectable conflict, but
	// matching must still treat it as unconstrained.
	c := NewModifiableChord(NewScanCodeChord(0x30, ModShift), NewModifierChord(ModShift))

	with := NewSnapshot(KeyB, KeyLeftShift)
	without := NewSnapshot(KeyB)
	if !c.IsActive(&with) {
		t.Error("IsActive() = false with shift held, want true")
	}
	if !c.IsActive(&without) {
		t.Error("IsActive() = false with shift released, want true")
	}
}

func TestKeyChordUniqueInputs(t *testing.T) {
	tests := []struct {
		name string
		c    Spec
		want []string
	}{
		{"bare key", NewScanCodeChord(0x39, ModNone), []string{"Space"}},
		{"shifted", NewScanCodeChord(0x30, ModShift), []string{"Shift+B"}},
		{"symbolic", NewKeyChord(KeyF5, ModCtrl|ModAlt), []string{"Ctrl+Alt+F5"}},
		{"unmapped", NewScanCodeChord(0x70, ModNone), []string{"sc:0x70"}},
		{"modifier only", NewModifierChord(ModShift), []string{"Shift"}},
		{"two modifiers", NewModifierChord(ModCtrl | ModShift), []string{"Ctrl+Shift"}},
	}

	for _, tt := range tests {
		if got := tt.c.UniqueInputs(); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("%s: UniqueInputs() = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestModifiableChordUniqueInputs(t *testing.T) {
	tests := []struct {
		name string
		c    *ModifiableKeyChord
		want []string
	}{
		{
			"two ignored",
			NewModifiableChord(NewScanCodeChord(0xCB, ModNone),
				NewModifierChord(ModShift), NewModifierChord(ModCtrl)),
			[]string{"Left", "Shift+Left", "Ctrl+Left", "Ctrl+Shift+Left"},
		},
		{
			"required plus ignored",
			NewModifiableChord(NewScanCodeChord(0xCB, ModAlt), NewModifierChord(ModShift)),
			[]string{"Alt+Left", "Alt+Shift+Left"},
		},
		{
			"nothing ignored",
			NewModifiableChord(NewScanCodeChord(0xCB, ModNone)),
			[]string{"Left"},
		},
	}

	for _, tt := range tests {
		got := tt.c.UniqueInputs()
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("%s: UniqueInputs() = %v, want %v", tt.name, got, tt.want)
		}
		if want := 1 << popCount(tt.c.Ignore); len(got) != want {
			t.Errorf("%s: len(UniqueInputs()) = %d, want %d", tt.name, len(got), want)
		}
	}
}

func popCount(m Modifier) int {
	n := 0
	for _, mod := range modifierOrder {
		if m.Has(mod) {
			n++
		}
	}
	return n
}

func TestCloneIndependence(t *testing.T) {
	orig := NewModifiableChord(NewScanCodeChord(0xCB, ModNone), NewModifierChord(ModShift))
	dup := orig.Clone().(*ModifiableKeyChord)

	dup.Ignore = ModNone
	dup.ScanCode = 0xCD
	if orig.Ignore != ModShift {
		t.Errorf("original Ignore = %v after mutating clone, want %v", orig.Ignore, ModShift)
	}
	if orig.ScanCode != 0xCB {
		t.Errorf("original ScanCode = %#x after mutating clone, want 0xCB", orig.ScanCode)
	}
}

func TestChordString(t *testing.T) {
	tests := []struct {
		c    Spec
		want string
	}{
		{NewScanCodeChord(0x39, ModNone), "Space"},
		{NewScanCodeChord(0x30, ModShift), "Shift+B"},
		{NewModifierChord(ModShift), "Shift"},
		{NewModifierChord(ModNone), "(none)"},
		{
			NewModifiableChord(NewScanCodeChord(0xCB, ModNone), NewModifierChord(ModCtrl|ModShift)),
			"Left (ignoring Ctrl+Shift)",
		},
	}

	for _, tt := range tests {
		if got := tt.c.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}
