package binding

import (
	"fmt"

	"github.com/dshills/railcab/internal/catalog"
	"github.com/dshills/railcab/internal/chord"
)

// Whitelist reports command pairs that are allowed to share an input
// surface on purpose.
type Whitelist interface {
	Allowed(a, b catalog.Command) bool
}

// ValidateOptions configures a conflict scan.
type ValidateOptions struct {
	// IncludeNoisy also reports pairs inside the noisy category and
	// pairs where both bindings are untouched defaults.
	IncludeNoisy bool

	// Whitelist suppresses known-intentional overlaps; nil allows none.
	Whitelist Whitelist
}

// Validate scans the table for binding conflicts. It reports chords
// that conflict with themselves (a modifier both required and ignored)
// and command pairs whose trigger surfaces intersect. The scan is a
// plain nested pass in catalogue order, so output order is
// deterministic; the catalogue is far too small to need indexing.
func Validate(t *Table, opts ValidateOptions) []Warning {
	var warnings []Warning

	for i := range t.entries {
		warnings = append(warnings, selfConflicts(&t.entries[i])...)
	}

	for i := range t.entries {
		a := &t.entries[i]
		if _, ok := a.Chord.(*chord.ModifierChord); ok {
			continue
		}
		for j := i + 1; j < len(t.entries); j++ {
			b := &t.entries[j]
			if _, ok := b.Chord.(*chord.ModifierChord); ok {
				continue
			}
			if !opts.IncludeNoisy && suppressed(a, b) {
				continue
			}
			if opts.Whitelist != nil && opts.Whitelist.Allowed(a.Command, b.Command) {
				continue
			}
			for _, input := range sharedInputs(a.Chord, b.Chord) {
				warnings = append(warnings, Warning{
					Commands: []catalog.Command{a.Command, b.Command},
					Input:    input,
					Message:  "conflicting bindings",
				})
			}
		}
	}
	return warnings
}

// selfConflicts reports modifiers that a chord both requires and
// ignores. Such a chord still matches (ignore wins) but the requirement
// is dead and almost certainly a configuration mistake.
func selfConflicts(e *Entry) []Warning {
	mc, ok := e.Chord.(*chord.ModifiableKeyChord)
	if !ok {
		return nil
	}
	var warnings []Warning
	for _, mod := range []chord.Modifier{chord.ModCtrl, chord.ModAlt, chord.ModShift} {
		if mc.Mods.Has(mod) && mc.Ignore.Has(mod) {
			warnings = append(warnings, Warning{
				Commands: []catalog.Command{e.Command},
				Message:  fmt.Sprintf("chord requires and ignores %s", mod),
			})
		}
	}
	return warnings
}

// suppressed reports pairs skipped by the default conflict policy:
// both commands in the noisy category, or both bindings untouched
// defaults.
func suppressed(a, b *Entry) bool {
	if a.Command.Category().Noisy() && b.Command.Category().Noisy() {
		return true
	}
	return a.Source == SourceDefault && b.Source == SourceDefault
}

// sharedInputs intersects the trigger surfaces of two chords.
func sharedInputs(a, b chord.Spec) []string {
	bInputs := b.UniqueInputs()
	set := make(map[string]bool, len(bInputs))
	for _, s := range bInputs {
		set[s] = true
	}

	var shared []string
	for _, s := range a.UniqueInputs() {
		if set[s] {
			shared = append(shared, s)
		}
	}
	return shared
}
