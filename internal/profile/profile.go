// Package profile loads the user-facing configuration files: the TOML
// profile, the YAML conflict whitelist, and a watcher that reloads
// them when they change on disk.
package profile

import (
	"fmt"
	"os"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// Duration wraps time.Duration so profile values read as "30s" or
// "2m" instead of nanosecond counts.
type Duration time.Duration

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	*d = Duration(v)
	return nil
}

// Std returns the value as a time.Duration.
func (d Duration) Std() time.Duration { return time.Duration(d) }

// Session configures recording sessions.
type Session struct {
	LogDir           string   `toml:"log_dir"`
	AutosaveInterval Duration `toml:"autosave_interval"`
}

// Store configures the persisted binding store.
type Store struct {
	Path         string `toml:"path"`
	DisableReads bool   `toml:"disable_reads"`
}

// Conflicts configures conflict validation.
type Conflicts struct {
	IncludeDebug bool   `toml:"include_debug"`
	Whitelist    string `toml:"whitelist"`
}

// Controls configures how fast held levers move, in units per second.
type Controls struct {
	ThrottleRate float64 `toml:"throttle_rate"`
	BrakeRate    float64 `toml:"brake_rate"`
}

// Profile is the top-level user configuration.
type Profile struct {
	Session   Session   `toml:"session"`
	Store     Store     `toml:"store"`
	Conflicts Conflicts `toml:"conflicts"`
	Controls  Controls  `toml:"controls"`
}

// Default returns the configuration used when no profile file exists.
func Default() Profile {
	return Profile{
		Session: Session{
			LogDir:           "logs",
			AutosaveInterval: Duration(30 * time.Second),
		},
		Store: Store{
			Path: "bindings.db",
		},
		Controls: Controls{
			ThrottleRate: 0.25,
			BrakeRate:    0.25,
		},
	}
}

// Load reads the profile at path. A missing file returns the defaults;
// keys absent from the file keep their default values. A file that
// exists but does not parse is an error.
func Load(path string) (Profile, error) {
	p := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return p, nil
		}
		return Default(), fmt.Errorf("reading profile %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, &p); err != nil {
		return Default(), &ParseError{Path: path, Message: err.Error(), Err: err}
	}
	return p, nil
}

// ParseError reports a configuration file that exists but could not be
// parsed.
type ParseError struct {
	Path    string
	Message string
	Err     error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error in %s: %s", e.Path, e.Message)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
