package chord

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Decode errors. Every decode failure wraps one of these inside a
// *ParseError so callers can both classify and report.
var (
	ErrBadArity      = errors.New("wrong number of fields")
	ErrBadField      = errors.New("malformed field")
	ErrBadFlag       = errors.New("flag field must be 0 or 1")
	ErrReservedField = errors.New("reserved field must be zero")
	ErrAmbiguousKey  = errors.New("scan code and key both set")
	ErrNoKey         = errors.New("scan code or key required")
	ErrUnknownKey    = errors.New("unknown key value")
)

// ParseError describes a rejected chord string.
type ParseError struct {
	Spec    string
	Message string
	Err     error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error in chord %q: %s", e.Spec, e.Message)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// parseFailf builds a ParseError wrapping the given sentinel.
func parseFailf(spec string, sentinel error, format string, args ...any) error {
	return &ParseError{
		Spec:    spec,
		Message: fmt.Sprintf(format, args...),
		Err:     sentinel,
	}
}

// splitFields parses a comma-separated integer list. Fields accept
// decimal or 0x-prefixed hex.
func splitFields(spec string) ([]int64, error) {
	parts := strings.Split(spec, ",")
	fields := make([]int64, len(parts))
	for i, p := range parts {
		v, err := strconv.ParseInt(strings.TrimSpace(p), 0, 32)
		if err != nil {
			return nil, parseFailf(spec, ErrBadField, "field %d is not an integer", i+1)
		}
		fields[i] = v
	}
	return fields, nil
}

// flagBit validates a 0/1 flag field and reports the modifier state.
func flagBit(spec string, pos int, v int64) (bool, error) {
	switch v {
	case 0:
		return false, nil
	case 1:
		return true, nil
	}
	return false, parseFailf(spec, ErrBadFlag, "field %d is %d", pos+1, v)
}

// applyFlag sets or clears one modifier bit from a flag field.
func applyFlag(m Modifier, bit Modifier, on bool) Modifier {
	if on {
		return m.With(bit)
	}
	return m.Without(bit)
}

// flagOrder maps flag field positions to modifier bits: the serialized
// order is always ctrl, alt, shift.
var flagOrder = [3]Modifier{ModCtrl, ModAlt, ModShift}

// Encode renders the chord as <scan>,<key>,<ctrl>,<alt>,<shift>.
func (c *KeyChord) Encode() string {
	return fmt.Sprintf("%d,%d,%s", c.ScanCode, uint16(c.Key), encodeFlags(c.Mods))
}

// Decode merges an override of the form <scan>,<key>[,<ctrl>[,<alt>
// [,<shift>]]] into the chord. The two key fields are required and
// exactly one may be non-zero; omitted flag fields keep their current
// state.
func (c *KeyChord) Decode(spec string) error {
	fields, err := splitFields(spec)
	if err != nil {
		return err
	}
	if len(fields) < 2 || len(fields) > 5 {
		return parseFailf(spec, ErrBadArity, "got %d fields, want 2 to 5", len(fields))
	}
	return c.decodeKeyFields(spec, fields)
}

// decodeKeyFields applies the shared key-chord field layout: scan code,
// key, then up to three modifier flags.
func (c *KeyChord) decodeKeyFields(spec string, fields []int64) error {
	scan, key := fields[0], fields[1]
	if scan < 0 || scan > 0xFFFF {
		return parseFailf(spec, ErrBadField, "scan code %d out of range", scan)
	}
	if key < 0 || !Key(key).IsValid() {
		return parseFailf(spec, ErrUnknownKey, "key value %d", key)
	}
	if scan != 0 && key != 0 {
		return parseFailf(spec, ErrAmbiguousKey, "scan code %d and key %d", scan, key)
	}
	if scan == 0 && key == 0 {
		return parseFailf(spec, ErrNoKey, "both key fields are zero")
	}

	mods := c.Mods
	for i := 0; i < 3 && i+2 < len(fields); i++ {
		on, err := flagBit(spec, i+2, fields[i+2])
		if err != nil {
			return err
		}
		mods = applyFlag(mods, flagOrder[i], on)
	}

	c.ScanCode = uint16(scan)
	c.Key = Key(key)
	c.Mods = mods
	return nil
}

// Encode renders the chord as 0,0,<ctrl>,<alt>,<shift>. The leading
// zeros occupy the key fields so every variant shares one field layout.
func (c *ModifierChord) Encode() string {
	return "0,0," + encodeFlags(c.Mods)
}

// Decode replaces the chord from an override of the form
// 0,0,<ctrl>,<alt>,<shift>. All five fields are required.
func (c *ModifierChord) Decode(spec string) error {
	fields, err := splitFields(spec)
	if err != nil {
		return err
	}
	if len(fields) != 5 {
		return parseFailf(spec, ErrBadArity, "got %d fields, want 5", len(fields))
	}
	if fields[0] != 0 || fields[1] != 0 {
		return parseFailf(spec, ErrReservedField, "key fields must be zero for a modifier chord")
	}

	mods := ModNone
	for i, bit := range flagOrder {
		on, err := flagBit(spec, i+2, fields[i+2])
		if err != nil {
			return err
		}
		mods = applyFlag(mods, bit, on)
	}
	c.Mods = mods
	return nil
}

// Encode renders the chord as the key-chord fields followed by the
// three ignore flags.
func (c *ModifiableKeyChord) Encode() string {
	return c.KeyChord.Encode() + "," + encodeFlags(c.Ignore)
}

// Decode merges an override with up to eight fields: the key-chord
// layout plus <ignoreCtrl>,<ignoreAlt>,<ignoreShift>. Omitted trailing
// fields keep their current state.
func (c *ModifiableKeyChord) Decode(spec string) error {
	fields, err := splitFields(spec)
	if err != nil {
		return err
	}
	if len(fields) < 2 || len(fields) > 8 {
		return parseFailf(spec, ErrBadArity, "got %d fields, want 2 to 8", len(fields))
	}

	ignore := c.Ignore
	for i := 0; i < 3 && i+5 < len(fields); i++ {
		on, err := flagBit(spec, i+5, fields[i+5])
		if err != nil {
			return err
		}
		ignore = applyFlag(ignore, flagOrder[i], on)
	}

	if len(fields) > 5 {
		fields = fields[:5]
	}
	if err := c.decodeKeyFields(spec, fields); err != nil {
		return err
	}
	c.Ignore = ignore
	return nil
}

// encodeFlags renders three modifier bits as ctrl,alt,shift.
func encodeFlags(m Modifier) string {
	f := func(bit Modifier) byte {
		if m.Has(bit) {
			return '1'
		}
		return '0'
	}
	return fmt.Sprintf("%c,%c,%c", f(ModCtrl), f(ModAlt), f(ModShift))
}
