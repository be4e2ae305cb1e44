package binding

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/dshills/railcab/internal/catalog"
	"github.com/dshills/railcab/internal/chord"
)

// Store is the persisted-override collaborator consumed by resolution.
// Lookups are by canonical command name, matched case-insensitively by
// the implementation.
type Store interface {
	// Lookup returns the stored chord string for a command name.
	Lookup(name string) (value string, ok bool, err error)

	// Save persists a chord string for a command name.
	Save(name, value string) error
}

// Override is one command-line binding override, already split into
// name and value.
type Override struct {
	Name  string
	Value string
}

// ParseOverrides splits raw override tokens. A token is name=value or
// name:value (whichever separator comes first); a bare name gets the
// value "yes". Order is preserved.
func ParseOverrides(args []string) []Override {
	out := make([]Override, 0, len(args))
	for _, arg := range args {
		name, value := arg, "yes"
		if i := strings.IndexAny(arg, "=:"); i >= 0 {
			name, value = arg[:i], arg[i+1:]
		}
		out = append(out, Override{
			Name:  strings.TrimSpace(name),
			Value: strings.TrimSpace(value),
		})
	}
	return out
}

// Options configures one resolution pass.
type Options struct {
	// Store supplies persisted overrides; nil means no store.
	Store Store

	// DisableStore skips store lookups even when Store is set, for
	// sessions that must run with factory bindings.
	DisableStore bool

	// Overrides are command-line overrides in argument order. Later
	// entries for the same command apply on top of earlier ones.
	Overrides []Override

	// Logger receives resolution events. Defaults to slog.Default().
	Logger *slog.Logger
}

// Resolve builds the binding table for the whole catalogue. Every
// command is seeded with its default, then store and command-line
// overrides apply in that order. All failures are local: a bad override
// leaves the previous value bound and adds a warning, so resolution
// always produces a complete table.
func Resolve(defaults map[catalog.Command]chord.Spec, opts Options) (*Table, []Warning) {
	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}

	t := newTable()
	var warnings []Warning

	for _, cmd := range catalog.All() {
		def, ok := defaults[cmd]
		if !ok {
			warnings = append(warnings, Warning{
				Commands: []catalog.Command{cmd},
				Message:  "no default binding",
			})
			continue
		}
		t.entries[cmd].Chord = def.Clone()

		if opts.Store == nil || opts.DisableStore {
			continue
		}
		value, found, err := opts.Store.Lookup(cmd.String())
		if err != nil {
			// An unreadable store behaves like an absent one.
			warnings = append(warnings, Warning{
				Commands: []catalog.Command{cmd},
				Message:  fmt.Sprintf("stored binding unavailable: %v", err),
			})
			log.Warn("binding store lookup failed", "command", cmd.String(), "error", err)
			continue
		}
		if !found {
			continue
		}
		if w, ok := applyOverride(t, cmd, value, SourceStore); !ok {
			warnings = append(warnings, w)
			log.Warn("stored binding rejected", "command", cmd.String(), "value", value)
		} else {
			log.Debug("stored binding applied", "command", cmd.String(), "chord", t.Chord(cmd).String())
		}
	}

	warnings = append(warnings, applyCommandLine(t, opts.Overrides, log)...)
	return t, warnings
}

// applyCommandLine applies ordered command-line overrides on top of the
// resolved table.
func applyCommandLine(t *Table, overrides []Override, log *slog.Logger) []Warning {
	var warnings []Warning
	for _, o := range overrides {
		cmd, ok := catalog.FromName(o.Name)
		if !ok {
			msg := fmt.Sprintf("unknown command %q in override", o.Name)
			if suggestion, ok := SuggestCommand(o.Name); ok {
				msg += fmt.Sprintf(" (did you mean %s?)", suggestion)
			}
			warnings = append(warnings, Warning{Message: msg})
			log.Warn("override names no command", "name", o.Name)
			continue
		}
		if w, ok := applyOverride(t, cmd, o.Value, SourceCommandLine); !ok {
			warnings = append(warnings, w)
			log.Warn("override rejected", "command", cmd.String(), "value", o.Value)
		} else {
			log.Debug("override applied", "command", cmd.String(), "chord", t.Chord(cmd).String())
		}
	}
	return warnings
}

// applyOverride decodes a chord string into a copy of the command's
// current chord, so partial values merge and a decode failure leaves
// the binding untouched.
func applyOverride(t *Table, cmd catalog.Command, value string, src Source) (Warning, bool) {
	next := t.entries[cmd].Chord.Clone()
	if err := next.Decode(value); err != nil {
		return Warning{
			Commands: []catalog.Command{cmd},
			Message:  fmt.Sprintf("invalid %s override: %v", src, err),
		}, false
	}
	t.entries[cmd] = Entry{Command: cmd, Chord: next, Source: src}
	return Warning{}, true
}

// suggestionCutoff is the largest edit distance still offered as a
// "did you mean" candidate.
const suggestionCutoff = 3

// SuggestCommand returns the catalogue command whose name is closest to
// the given one, if any is close enough to be a plausible typo.
func SuggestCommand(name string) (catalog.Command, bool) {
	lower := strings.ToLower(strings.TrimSpace(name))
	best := catalog.Command(0)
	bestDist := suggestionCutoff + 1
	for _, cmd := range catalog.All() {
		d := levenshtein.ComputeDistance(lower, strings.ToLower(cmd.String()))
		if d < bestDist {
			best, bestDist = cmd, d
		}
	}
	return best, bestDist <= suggestionCutoff
}
