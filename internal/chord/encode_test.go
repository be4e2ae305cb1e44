package chord

import (
	"errors"
	"fmt"
	"reflect"
	"testing"
)

func TestKeyChordEncode(t *testing.T) {
	tests := []struct {
		c    Spec
		want string
	}{
		{NewScanCodeChord(0x39, ModNone), "57,0,0,0,0"},
		{NewScanCodeChord(0x30, ModShift), "48,0,0,0,1"},
		{NewScanCodeChord(0x12, ModCtrl|ModAlt), "18,0,1,1,0"},
		{NewKeyChord(KeyPause, ModNone), fmt.Sprintf("0,%d,0,0,0", uint16(KeyPause))},
		{NewModifierChord(ModShift), "0,0,0,0,1"},
		{NewModifierChord(ModCtrl | ModShift), "0,0,1,0,1"},
		{
			NewModifiableChord(NewScanCodeChord(0xCB, ModNone), NewModifierChord(ModCtrl|ModShift)),
			"203,0,0,0,0,1,0,1",
		},
	}

	for _, tt := range tests {
		if got := tt.c.Encode(); got != tt.want {
			t.Errorf("Encode() = %q, want %q", got, tt.want)
		}
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		c    Spec
		zero Spec
	}{
		{"scan chord", NewScanCodeChord(0x39, ModShift), &KeyChord{}},
		{"symbolic chord", NewKeyChord(KeyF12, ModCtrl|ModAlt|ModShift), &KeyChord{}},
		{"modifier chord", NewModifierChord(ModAlt), &ModifierChord{}},
		{
			"modifiable chord",
			NewModifiableChord(NewScanCodeChord(0xC8, ModAlt), NewModifierChord(ModShift)),
			&ModifiableKeyChord{},
		},
	}

	for _, tt := range tests {
		encoded := tt.c.Encode()
		if err := tt.zero.Decode(encoded); err != nil {
			t.Errorf("%s: Decode(%q) error = %v", tt.name, encoded, err)
			continue
		}
		if !reflect.DeepEqual(tt.zero, tt.c) {
			t.Errorf("%s: Decode(Encode()) = %+v, want %+v", tt.name, tt.zero, tt.c)
		}
	}
}

func TestKeyChordDecodeMergesTrailingFields(t *testing.T) {
	c := NewScanCodeChord(0x39, ModCtrl)

	// Two fields rebind the key and keep the modifier requirements.
	if err := c.Decode("48,0"); err != nil {
		t.Fatalf("Decode(\"48,0\") error = %v", err)
	}
	if c.ScanCode != 0x30 || c.Mods != ModCtrl {
		t.Errorf("after partial decode: scan = %#x mods = %v, want 0x30 Ctrl", c.ScanCode, c.Mods)
	}

	// A present flag field overwrites its modifier.
	if err := c.Decode("48,0,0,0,1"); err != nil {
		t.Fatalf("Decode full error = %v", err)
	}
	if c.Mods != ModShift {
		t.Errorf("after full decode: mods = %v, want Shift", c.Mods)
	}
}

func TestKeyChordDecodeSwitchesToSymbolic(t *testing.T) {
	c := NewScanCodeChord(0x39, ModNone)
	spec := fmt.Sprintf("0,%d", uint16(KeyPause))

	if err := c.Decode(spec); err != nil {
		t.Fatalf("Decode(%q) error = %v", spec, err)
	}
	if c.ScanCode != 0 || c.Key != KeyPause {
		t.Errorf("decode = scan %d key %v, want scan 0 key Pause", c.ScanCode, c.Key)
	}
}

func TestKeyChordDecodeHexFields(t *testing.T) {
	var c KeyChord
	if err := c.Decode("0x39,0"); err != nil {
		t.Fatalf("Decode(\"0x39,0\") error = %v", err)
	}
	if c.ScanCode != 0x39 {
		t.Errorf("ScanCode = %#x, want 0x39", c.ScanCode)
	}
}

func TestKeyChordDecodeErrors(t *testing.T) {
	tests := []struct {
		spec    string
		wantErr error
	}{
		{"", ErrBadField},
		{"57", ErrBadArity},
		{"57,0,0,0,0,0", ErrBadArity},
		{"57,x", ErrBadField},
		{"-1,0", ErrBadField},
		{"70000,0", ErrBadField},
		{"0,9999", ErrUnknownKey},
		{"57,28", ErrAmbiguousKey},
		{"0,0", ErrNoKey},
		{"57,0,2", ErrBadFlag},
	}

	for _, tt := range tests {
		var c KeyChord
		err := c.Decode(tt.spec)
		if !errors.Is(err, tt.wantErr) {
			t.Errorf("Decode(%q) error = %v, want %v", tt.spec, err, tt.wantErr)
			continue
		}
		var parseErr *ParseError
		if !errors.As(err, &parseErr) {
			t.Errorf("Decode(%q) error type = %T, want *ParseError", tt.spec, err)
		}
	}
}

func TestModifierChordDecode(t *testing.T) {
	var c ModifierChord
	if err := c.Decode("0,0,1,0,1"); err != nil {
		t.Fatalf("Decode error = %v", err)
	}
	if c.Mods != ModCtrl|ModShift {
		t.Errorf("Mods = %v, want Ctrl+Shift", c.Mods)
	}

	tests := []struct {
		spec    string
		wantErr error
	}{
		{"0,0,1,0", ErrBadArity},
		{"0,0,1,0,1,0", ErrBadArity},
		{"5,0,1,0,1", ErrReservedField},
		{"0,3,1,0,1", ErrReservedField},
		{"0,0,1,0,2", ErrBadFlag},
	}
	for _, tt := range tests {
		var c ModifierChord
		if err := c.Decode(tt.spec); !errors.Is(err, tt.wantErr) {
			t.Errorf("Decode(%q) error = %v, want %v", tt.spec, err, tt.wantErr)
		}
	}
}

func TestModifiableChordDecode(t *testing.T) {
	base := NewModifiableChord(NewScanCodeChord(0xCB, ModNone), NewModifierChord(ModCtrl|ModShift))

	// Rebinding the key keeps the ignore set.
	c := base.Clone().(*ModifiableKeyChord)
	if err := c.Decode("205,0"); err != nil {
		t.Fatalf("Decode(\"205,0\") error = %v", err)
	}
	if c.ScanCode != 0xCD || c.Ignore != ModCtrl|ModShift {
		t.Errorf("decode = scan %#x ignore %v, want 0xCD Ctrl+Shift", c.ScanCode, c.Ignore)
	}

	// Full form replaces the ignore set.
	c = base.Clone().(*ModifiableKeyChord)
	if err := c.Decode("200,0,0,1,0,0,1,0"); err != nil {
		t.Fatalf("Decode full error = %v", err)
	}
	if c.ScanCode != 0xC8 || c.Mods != ModAlt || c.Ignore != ModAlt {
		t.Errorf("decode = scan %#x mods %v ignore %v, want 0xC8 Alt Alt", c.ScanCode, c.Mods, c.Ignore)
	}

	// Nine fields is one too many.
	c = base.Clone().(*ModifiableKeyChord)
	if err := c.Decode("200,0,0,1,0,0,1,0,0"); !errors.Is(err, ErrBadArity) {
		t.Errorf("Decode error = %v, want %v", err, ErrBadArity)
	}

	// A bad key field must not corrupt the ignore set.
	c = base.Clone().(*ModifiableKeyChord)
	if err := c.Decode("0,0,0,0,0,1,1,1"); !errors.Is(err, ErrNoKey) {
		t.Errorf("Decode error = %v, want %v", err, ErrNoKey)
	}
	if c.Ignore != ModCtrl|ModShift {
		t.Errorf("Ignore = %v after failed decode, want Ctrl+Shift", c.Ignore)
	}
}
