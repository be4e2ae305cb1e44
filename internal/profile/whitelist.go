package profile

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/dshills/railcab/internal/catalog"
)

// WhitelistEntry is one accepted conflict in the whitelist file: two
// command names allowed to share an input, with an optional reason
// kept for humans.
type WhitelistEntry struct {
	Commands []string `yaml:"commands"`
	Reason   string   `yaml:"reason,omitempty"`
}

type whitelistFile struct {
	Pairs []WhitelistEntry `yaml:"pairs"`
}

type pairKey struct {
	a, b catalog.Command
}

// Whitelist holds command pairs whose shared inputs are accepted.
// Lookup is order-insensitive.
type Whitelist struct {
	allowed map[pairKey]struct{}
}

// Allowed reports whether the conflict between a and b is accepted.
// Safe on a nil receiver.
func (w *Whitelist) Allowed(a, b catalog.Command) bool {
	if w == nil {
		return false
	}
	if a > b {
		a, b = b, a
	}
	_, ok := w.allowed[pairKey{a, b}]
	return ok
}

// Len returns the number of whitelisted pairs.
func (w *Whitelist) Len() int {
	if w == nil {
		return 0
	}
	return len(w.allowed)
}

// LoadWhitelist reads the whitelist at path. A missing file is an
// empty whitelist. Entries that do not name exactly two known commands
// are skipped with a warning rather than failing the load.
func LoadWhitelist(path string) (*Whitelist, []string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Whitelist{}, nil, nil
		}
		return nil, nil, fmt.Errorf("reading whitelist %s: %w", path, err)
	}

	var file whitelistFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, nil, &ParseError{Path: path, Message: err.Error(), Err: err}
	}

	w := &Whitelist{allowed: make(map[pairKey]struct{})}
	var warnings []string
	for i, entry := range file.Pairs {
		if len(entry.Commands) != 2 {
			warnings = append(warnings, fmt.Sprintf("whitelist pair %d: need exactly 2 commands, got %d", i+1, len(entry.Commands)))
			continue
		}
		a, ok := catalog.FromName(entry.Commands[0])
		if !ok {
			warnings = append(warnings, fmt.Sprintf("whitelist pair %d: unknown command %q", i+1, entry.Commands[0]))
			continue
		}
		b, ok := catalog.FromName(entry.Commands[1])
		if !ok {
			warnings = append(warnings, fmt.Sprintf("whitelist pair %d: unknown command %q", i+1, entry.Commands[1]))
			continue
		}
		if a > b {
			a, b = b, a
		}
		w.allowed[pairKey{a, b}] = struct{}{}
	}
	return w, warnings, nil
}
