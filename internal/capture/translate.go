package capture

import (
	"github.com/gdamore/tcell/v2"

	"github.com/dshills/railcab/internal/chord"
)

// specialKeys maps tcell named keys to keyboard keys. The aliased
// control codes (Enter, Tab, Backspace, Escape) are handled before
// this table is consulted.
var specialKeys = map[tcell.Key]chord.Key{
	tcell.KeyUp:     chord.KeyUp,
	tcell.KeyDown:   chord.KeyDown,
	tcell.KeyLeft:   chord.KeyLeft,
	tcell.KeyRight:  chord.KeyRight,
	tcell.KeyHome:   chord.KeyHome,
	tcell.KeyEnd:    chord.KeyEnd,
	tcell.KeyPgUp:   chord.KeyPageUp,
	tcell.KeyPgDn:   chord.KeyPageDown,
	tcell.KeyInsert: chord.KeyInsert,
	tcell.KeyDelete: chord.KeyDelete,
	tcell.KeyPause:  chord.KeyPause,
	tcell.KeyPrint:  chord.KeyPrintScreen,
	tcell.KeyF1:     chord.KeyF1,
	tcell.KeyF2:     chord.KeyF2,
	tcell.KeyF3:     chord.KeyF3,
	tcell.KeyF4:     chord.KeyF4,
	tcell.KeyF5:     chord.KeyF5,
	tcell.KeyF6:     chord.KeyF6,
	tcell.KeyF7:     chord.KeyF7,
	tcell.KeyF8:     chord.KeyF8,
	tcell.KeyF9:     chord.KeyF9,
	tcell.KeyF10:    chord.KeyF10,
	tcell.KeyF11:    chord.KeyF11,
	tcell.KeyF12:    chord.KeyF12,
}

// punctKeys maps unshifted punctuation runes to their keys.
var punctKeys = map[rune]chord.Key{
	'-':  chord.KeyMinus,
	'=':  chord.KeyEquals,
	'[':  chord.KeyLeftBracket,
	']':  chord.KeyRightBracket,
	';':  chord.KeySemicolon,
	'\'': chord.KeyApostrophe,
	'`':  chord.KeyGrave,
	'\\': chord.KeyBackslash,
	',':  chord.KeyComma,
	'.':  chord.KeyPeriod,
	'/':  chord.KeySlash,
}

// shiftedRunes maps a shifted rune to the US-layout rune on the same
// physical key.
var shiftedRunes = map[rune]rune{
	'!': '1', '@': '2', '#': '3', '$': '4', '%': '5',
	'^': '6', '&': '7', '*': '8', '(': '9', ')': '0',
	'_': '-', '+': '=', '{': '[', '}': ']', ':': ';',
	'"': '\'', '~': '`', '|': '\\', '<': ',', '>': '.', '?': '/',
}

// Translate converts a tcell key event to the set of physical keys it
// implies: the main key plus a left-variant key for each modifier.
// Shifted runes resolve to their US-layout base key with LeftShift
// added. Escape and unmapped events return ok == false; Escape is
// reserved for ending capture.
func Translate(ev *tcell.EventKey) (keys []chord.Key, ok bool) {
	add := func(k chord.Key) {
		for _, have := range keys {
			if have == k {
				return
			}
		}
		keys = append(keys, k)
	}

	switch k := ev.Key(); {
	case k == tcell.KeyRune:
		main, shifted, known := runeKey(ev.Rune())
		if !known {
			return nil, false
		}
		add(main)
		if shifted {
			add(chord.KeyLeftShift)
		}
	case k == tcell.KeyEscape:
		return nil, false
	case k == tcell.KeyEnter:
		add(chord.KeyEnter)
	case k == tcell.KeyTab:
		add(chord.KeyTab)
	case k == tcell.KeyBackspace || k == tcell.KeyBackspace2:
		add(chord.KeyBackspace)
	case k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ:
		// Remaining bare control codes are Ctrl plus a letter; the
		// codes doubling as Enter, Tab and Backspace were claimed
		// above.
		add(chord.KeyA + chord.Key(k-tcell.KeyCtrlA))
		add(chord.KeyLeftControl)
	default:
		main, known := specialKeys[k]
		if !known {
			return nil, false
		}
		add(main)
	}

	mods := ev.Modifiers()
	if mods&tcell.ModShift != 0 {
		add(chord.KeyLeftShift)
	}
	if mods&tcell.ModCtrl != 0 {
		add(chord.KeyLeftControl)
	}
	if mods&tcell.ModAlt != 0 {
		add(chord.KeyLeftAlt)
	}
	return keys, true
}

// runeKey resolves a rune to its physical key under the US layout and
// reports whether the rune requires shift.
func runeKey(r rune) (key chord.Key, shifted, ok bool) {
	switch {
	case r >= 'a' && r <= 'z':
		return chord.KeyA + chord.Key(r-'a'), false, true
	case r >= 'A' && r <= 'Z':
		return chord.KeyA + chord.Key(r-'A'), true, true
	case r >= '0' && r <= '9':
		return chord.Key0 + chord.Key(r-'0'), false, true
	case r == ' ':
		return chord.KeySpace, false, true
	}
	if k, known := punctKeys[r]; known {
		return k, false, true
	}
	if base, known := shiftedRunes[r]; known {
		k, _, known2 := runeKey(base)
		return k, true, known2
	}
	return chord.KeyNone, false, false
}
