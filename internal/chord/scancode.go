package chord

// scanCodeMap translates US set-1 keyboard scan codes (the make codes
// reported by the input layer, extended keys at 0x80+base) to keys.
var scanCodeMap = map[uint16]Key{
	0x01: KeyEscape,
	0x02: Key1,
	0x03: Key2,
	0x04: Key3,
	0x05: Key4,
	0x06: Key5,
	0x07: Key6,
	0x08: Key7,
	0x09: Key8,
	0x0A: Key9,
	0x0B: Key0,
	0x0C: KeyMinus,
	0x0D: KeyEquals,
	0x0E: KeyBackspace,
	0x0F: KeyTab,
	0x10: KeyQ,
	0x11: KeyW,
	0x12: KeyE,
	0x13: KeyR,
	0x14: KeyT,
	0x15: KeyY,
	0x16: KeyU,
	0x17: KeyI,
	0x18: KeyO,
	0x19: KeyP,
	0x1A: KeyLeftBracket,
	0x1B: KeyRightBracket,
	0x1C: KeyEnter,
	0x1D: KeyLeftControl,
	0x1E: KeyA,
	0x1F: KeyS,
	0x20: KeyD,
	0x21: KeyF,
	0x22: KeyG,
	0x23: KeyH,
	0x24: KeyJ,
	0x25: KeyK,
	0x26: KeyL,
	0x27: KeySemicolon,
	0x28: KeyApostrophe,
	0x29: KeyGrave,
	0x2A: KeyLeftShift,
	0x2B: KeyBackslash,
	0x2C: KeyZ,
	0x2D: KeyX,
	0x2E: KeyC,
	0x2F: KeyV,
	0x30: KeyB,
	0x31: KeyN,
	0x32: KeyM,
	0x33: KeyComma,
	0x34: KeyPeriod,
	0x35: KeySlash,
	0x36: KeyRightShift,
	0x37: KeyKPMultiply,
	0x38: KeyLeftAlt,
	0x39: KeySpace,
	0x3A: KeyCapsLock,
	0x3B: KeyF1,
	0x3C: KeyF2,
	0x3D: KeyF3,
	0x3E: KeyF4,
	0x3F: KeyF5,
	0x40: KeyF6,
	0x41: KeyF7,
	0x42: KeyF8,
	0x43: KeyF9,
	0x44: KeyF10,
	0x45: KeyNumLock,
	0x46: KeyScrollLock,
	0x47: KeyKP7,
	0x48: KeyKP8,
	0x49: KeyKP9,
	0x4A: KeyKPSubtract,
	0x4B: KeyKP4,
	0x4C: KeyKP5,
	0x4D: KeyKP6,
	0x4E: KeyKPAdd,
	0x4F: KeyKP1,
	0x50: KeyKP2,
	0x51: KeyKP3,
	0x52: KeyKP0,
	0x53: KeyKPDecimal,
	0x57: KeyF11,
	0x58: KeyF12,

	// Extended keys (E0 prefix folded into the high bit)
	0x9C: KeyKPEnter,
	0x9D: KeyRightControl,
	0xB5: KeyKPDivide,
	0xB7: KeyPrintScreen,
	0xB8: KeyRightAlt,
	0xC5: KeyPause,
	0xC7: KeyHome,
	0xC8: KeyUp,
	0xC9: KeyPageUp,
	0xCB: KeyLeft,
	0xCD: KeyRight,
	0xCF: KeyEnd,
	0xD0: KeyDown,
	0xD1: KeyPageDown,
	0xD2: KeyInsert,
	0xD3: KeyDelete,
}

// KeyFromScanCode translates a scan code to its key under the US layout.
// Returns KeyNone for codes with no mapping; a chord referencing such a
// code can never become active.
func KeyFromScanCode(code uint16) Key {
	if k, ok := scanCodeMap[code]; ok {
		return k
	}
	return KeyNone
}
