// Package binding resolves the command catalogue to one chord per
// command across three layered sources and checks the result for input
// conflicts.
//
// Resolution seeds every command with its programmer default, then
// applies persisted-store overrides, then ordered command-line
// overrides. Higher sources win; every failure along the way degrades
// to a warning so a session can always start.
package binding

// Source indicates which layer supplied a command's chord.
type Source uint8

const (
	// SourceDefault is the built-in binding.
	SourceDefault Source = iota
	// SourceStore is a persisted user override.
	SourceStore
	// SourceCommandLine is a per-launch override.
	SourceCommandLine
)

// String returns a human-readable name for the source.
func (s Source) String() string {
	switch s {
	case SourceDefault:
		return "default"
	case SourceStore:
		return "store"
	case SourceCommandLine:
		return "command line"
	default:
		return "unknown"
	}
}
