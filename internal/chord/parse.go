package chord

import (
	"errors"
	"fmt"
	"strings"
)

// Parse errors
var (
	ErrEmptySpec   = errors.New("empty chord specification")
	ErrInvalidSpec = errors.New("invalid chord specification")
)

// ParseName parses a human-friendly chord like "Ctrl+B", "Shift+Space"
// or "F5" into a symbolic KeyChord. All parts before the last are
// modifiers; the last part is a key name, letter or digit.
func ParseName(spec string) (*KeyChord, error) {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return nil, ErrEmptySpec
	}

	parts := strings.Split(spec, "+")
	var mods Modifier
	for _, p := range parts[:len(parts)-1] {
		mod := ModifierFromName(strings.TrimSpace(p))
		if mod == ModNone {
			return nil, fmt.Errorf("%w: unknown modifier %q", ErrInvalidSpec, p)
		}
		mods = mods.With(mod)
	}

	keyPart := strings.TrimSpace(parts[len(parts)-1])
	k := KeyFromName(keyPart)
	if k == KeyNone {
		return nil, fmt.Errorf("%w: unknown key %q", ErrInvalidSpec, keyPart)
	}
	return NewKeyChord(k, mods), nil
}
