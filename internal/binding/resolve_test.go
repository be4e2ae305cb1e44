package binding

import (
	"errors"
	"strings"
	"testing"

	"github.com/dshills/railcab/internal/catalog"
	"github.com/dshills/railcab/internal/chord"
)

// fakeStore is an in-memory Store for resolution tests.
type fakeStore struct {
	values map[string]string
	saved  map[string]string
	err    error
}

func (s *fakeStore) Lookup(name string) (string, bool, error) {
	if s.err != nil {
		return "", false, s.err
	}
	v, ok := s.values[strings.ToLower(name)]
	return v, ok, nil
}

func (s *fakeStore) Save(name, value string) error {
	if s.err != nil {
		return s.err
	}
	if s.saved == nil {
		s.saved = make(map[string]string)
	}
	s.saved[strings.ToLower(name)] = value
	return nil
}

func TestResolveDefaultsOnly(t *testing.T) {
	table, warnings := Resolve(Defaults(), Options{})
	if len(warnings) != 0 {
		t.Fatalf("Resolve warnings = %v, want none", warnings)
	}

	for _, cmd := range catalog.All() {
		if table.Chord(cmd) == nil {
			t.Errorf("%s has no chord", cmd)
		}
		if src := table.Provenance(cmd); src != SourceDefault {
			t.Errorf("%s provenance = %v, want default", cmd, src)
		}
	}
}

func TestResolveLayerPrecedence(t *testing.T) {
	store := &fakeStore{values: map[string]string{
		"controlhorn": "48,0", // B
		"controlbell": "33,0", // F
	}}
	opts := Options{
		Store:     store,
		Overrides: ParseOverrides([]string{"ControlHorn=31,0"}), // S
	}

	table, warnings := Resolve(Defaults(), opts)
	if len(warnings) != 0 {
		t.Fatalf("Resolve warnings = %v, want none", warnings)
	}

	// Command line beats store beats default.
	if got := table.Chord(catalog.ControlHorn).(*chord.KeyChord).ScanCode; got != 0x1F {
		t.Errorf("ControlHorn scan = %#x, want 0x1F", got)
	}
	if src := table.Provenance(catalog.ControlHorn); src != SourceCommandLine {
		t.Errorf("ControlHorn provenance = %v, want command line", src)
	}

	if got := table.Chord(catalog.ControlBell).(*chord.KeyChord).ScanCode; got != 0x21 {
		t.Errorf("ControlBell scan = %#x, want 0x21", got)
	}
	if src := table.Provenance(catalog.ControlBell); src != SourceStore {
		t.Errorf("ControlBell provenance = %v, want store", src)
	}

	// Untouched commands stay on defaults.
	if src := table.Provenance(catalog.ControlSander); src != SourceDefault {
		t.Errorf("ControlSander provenance = %v, want default", src)
	}
}

func TestResolveDisableStore(t *testing.T) {
	store := &fakeStore{values: map[string]string{"controlhorn": "48,0"}}

	table, warnings := Resolve(Defaults(), Options{Store: store, DisableStore: true})
	if len(warnings) != 0 {
		t.Fatalf("Resolve warnings = %v, want none", warnings)
	}
	if got := table.Chord(catalog.ControlHorn).(*chord.KeyChord).ScanCode; got != 0x39 {
		t.Errorf("ControlHorn scan = %#x, want default 0x39", got)
	}
}

func TestResolveStoreErrorFallsBack(t *testing.T) {
	store := &fakeStore{err: errors.New("disk gone")}

	table, warnings := Resolve(Defaults(), Options{Store: store})
	if len(warnings) != catalog.Count() {
		t.Fatalf("got %d warnings, want one per command (%d)", len(warnings), catalog.Count())
	}
	if got := table.Chord(catalog.ControlHorn).(*chord.KeyChord).ScanCode; got != 0x39 {
		t.Errorf("ControlHorn scan = %#x, want default 0x39", got)
	}
	if src := table.Provenance(catalog.ControlHorn); src != SourceDefault {
		t.Errorf("ControlHorn provenance = %v, want default", src)
	}
}

func TestResolveBadStoredValueKeepsDefault(t *testing.T) {
	store := &fakeStore{values: map[string]string{"controlhorn": "banana"}}

	table, warnings := Resolve(Defaults(), Options{Store: store})
	if len(warnings) != 1 {
		t.Fatalf("got %d warnings, want 1", len(warnings))
	}
	if !strings.Contains(warnings[0].String(), "ControlHorn") {
		t.Errorf("warning %q does not name the command", warnings[0])
	}
	if got := table.Chord(catalog.ControlHorn).(*chord.KeyChord).ScanCode; got != 0x39 {
		t.Errorf("ControlHorn scan = %#x, want default 0x39", got)
	}
	if src := table.Provenance(catalog.ControlHorn); src != SourceDefault {
		t.Errorf("ControlHorn provenance = %v, want default", src)
	}
}

func TestResolveUnknownOverrideSuggests(t *testing.T) {
	opts := Options{Overrides: ParseOverrides([]string{"ControlHron=48,0"})}

	table, warnings := Resolve(Defaults(), opts)
	if len(warnings) != 1 {
		t.Fatalf("got %d warnings, want 1", len(warnings))
	}
	if !strings.Contains(warnings[0].String(), "did you mean ControlHorn?") {
		t.Errorf("warning %q missing suggestion", warnings[0])
	}
	if got := table.Chord(catalog.ControlHorn).(*chord.KeyChord).ScanCode; got != 0x39 {
		t.Errorf("ControlHorn scan = %#x, want default 0x39", got)
	}
}

func TestResolveDuplicateOverridesLastWins(t *testing.T) {
	opts := Options{Overrides: ParseOverrides([]string{
		"ControlHorn=48,0",
		"controlhorn=33,0",
	})}

	table, warnings := Resolve(Defaults(), opts)
	if len(warnings) != 0 {
		t.Fatalf("Resolve warnings = %v, want none", warnings)
	}
	if got := table.Chord(catalog.ControlHorn).(*chord.KeyChord).ScanCode; got != 0x21 {
		t.Errorf("ControlHorn scan = %#x, want 0x21", got)
	}
}

func TestResolvePartialOverrideMerges(t *testing.T) {
	// The store adds Ctrl; the command line rebinds the key with a
	// two-field value and must keep the stored modifier requirement.
	store := &fakeStore{values: map[string]string{"controlhorn": "57,0,1"}}
	opts := Options{
		Store:     store,
		Overrides: ParseOverrides([]string{"ControlHorn=33,0"}),
	}

	table, warnings := Resolve(Defaults(), opts)
	if len(warnings) != 0 {
		t.Fatalf("Resolve warnings = %v, want none", warnings)
	}
	got := table.Chord(catalog.ControlHorn).(*chord.KeyChord)
	if got.ScanCode != 0x21 || got.Mods != chord.ModCtrl {
		t.Errorf("ControlHorn = scan %#x mods %v, want 0x21 Ctrl", got.ScanCode, got.Mods)
	}
}

func TestParseOverrides(t *testing.T) {
	tests := []struct {
		arg  string
		want Override
	}{
		{"ControlHorn=48,0", Override{"ControlHorn", "48,0"}},
		{"ControlHorn:48,0", Override{"ControlHorn", "48,0"}},
		{"ControlHorn", Override{"ControlHorn", "yes"}},
		{"a=b:c", Override{"a", "b:c"}},
		{"a:b=c", Override{"a", "b=c"}},
		{" name = value ", Override{"name", "value"}},
	}

	for _, tt := range tests {
		got := ParseOverrides([]string{tt.arg})
		if len(got) != 1 || got[0] != tt.want {
			t.Errorf("ParseOverrides(%q) = %v, want %v", tt.arg, got, tt.want)
		}
	}
}

func TestSuggestCommand(t *testing.T) {
	tests := []struct {
		name   string
		want   catalog.Command
		wantOK bool
	}{
		{"ControlHron", catalog.ControlHorn, true},
		{"gamesav", catalog.GameSave, true},
		{"xyzzy plugh", 0, false},
	}

	for _, tt := range tests {
		got, ok := SuggestCommand(tt.name)
		if ok != tt.wantOK || (ok && got != tt.want) {
			t.Errorf("SuggestCommand(%q) = %v, %v, want %v, %v", tt.name, got, ok, tt.want, tt.wantOK)
		}
	}
}
