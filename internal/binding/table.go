package binding

import (
	"errors"
	"fmt"

	"github.com/dshills/railcab/internal/catalog"
	"github.com/dshills/railcab/internal/chord"
)

// Table errors
var (
	ErrUnknownCommand = errors.New("binding: unknown command")
	ErrNoStore        = errors.New("binding: no store to persist rebind")
)

// Entry is one resolved binding: a command, its chord and the source
// that supplied it.
type Entry struct {
	Command catalog.Command
	Chord   chord.Spec
	Source  Source
}

// Table holds the resolved binding for every command in the catalogue.
// After resolution it is read-only except through Rebind; the matching
// methods never mutate it.
type Table struct {
	entries []Entry
}

// newTable builds a table with every command bound to a never-active
// placeholder chord. Resolve fills the real entries.
func newTable() *Table {
	t := &Table{entries: make([]Entry, catalog.Count())}
	for i := range t.entries {
		t.entries[i] = Entry{
			Command: catalog.Command(i),
			Chord:   chord.NewKeyChord(chord.KeyNone, chord.ModNone),
			Source:  SourceDefault,
		}
	}
	return t
}

// Chord returns the chord bound to a command. The returned spec is
// shared with the table and must not be mutated; rebinding goes through
// Rebind.
func (t *Table) Chord(cmd catalog.Command) chord.Spec {
	if !cmd.IsValid() {
		return nil
	}
	return t.entries[cmd].Chord
}

// Provenance returns which source supplied a command's chord.
func (t *Table) Provenance(cmd catalog.Command) Source {
	if !cmd.IsValid() {
		return SourceDefault
	}
	return t.entries[cmd].Source
}

// IsActive reports whether a command's chord is satisfied by the
// snapshot.
func (t *Table) IsActive(cmd catalog.Command, kb *chord.Snapshot) bool {
	if !cmd.IsValid() {
		return false
	}
	return t.entries[cmd].Chord.IsActive(kb)
}

// Active returns every command whose chord is satisfied by the
// snapshot, in catalogue order.
func (t *Table) Active(kb *chord.Snapshot) []catalog.Command {
	var active []catalog.Command
	for i := range t.entries {
		if t.entries[i].Chord.IsActive(kb) {
			active = append(active, t.entries[i].Command)
		}
	}
	return active
}

// Entries returns a copy of every binding in catalogue order.
func (t *Table) Entries() []Entry {
	out := make([]Entry, len(t.entries))
	for i, e := range t.entries {
		out[i] = Entry{Command: e.Command, Chord: e.Chord.Clone(), Source: e.Source}
	}
	return out
}

// Rebind replaces a command's chord and writes it through to the
// persisted store. The table entry changes only if the store write
// succeeds.
func (t *Table) Rebind(cmd catalog.Command, spec chord.Spec, store Store) error {
	if !cmd.IsValid() {
		return fmt.Errorf("%w: %d", ErrUnknownCommand, uint16(cmd))
	}
	if store == nil {
		return ErrNoStore
	}
	if err := store.Save(cmd.String(), spec.Encode()); err != nil {
		return fmt.Errorf("persisting %s: %w", cmd, err)
	}
	t.entries[cmd] = Entry{Command: cmd, Chord: spec.Clone(), Source: SourceStore}
	return nil
}
