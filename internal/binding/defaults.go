package binding

import (
	"github.com/dshills/railcab/internal/catalog"
	"github.com/dshills/railcab/internal/chord"
)

// Defaults returns the programmer default binding for every command.
// Most bindings use scan codes so they track the physical key position
// on any layout; a few use symbolic keys that have no stable scan code.
// The camera movement chords ignore the modifiers claimed by CameraFast
// and CameraSlow so panning keeps working while a speed modifier is
// held.
func Defaults() map[catalog.Command]chord.Spec {
	fast := chord.NewModifierChord(chord.ModShift)
	slow := chord.NewModifierChord(chord.ModCtrl)

	pan := func(code uint16) chord.Spec {
		return chord.NewModifiableChord(chord.NewScanCodeChord(code, chord.ModNone), fast, slow)
	}

	return map[catalog.Command]chord.Spec{
		// Game
		catalog.GamePause:        chord.NewKeyChord(chord.KeyPause, chord.ModNone),
		catalog.GameSave:         chord.NewScanCodeChord(0x3C, chord.ModNone), // F2
		catalog.GameQuit:         chord.NewScanCodeChord(0x01, chord.ModNone), // Escape
		catalog.GameScreenshot:   chord.NewKeyChord(chord.KeyPrintScreen, chord.ModNone),
		catalog.GameSwitchAhead:  chord.NewScanCodeChord(0x22, chord.ModNone),  // G
		catalog.GameSwitchBehind: chord.NewScanCodeChord(0x22, chord.ModShift), // Shift+G
		catalog.GameChangeCab:    chord.NewScanCodeChord(0x12, chord.ModCtrl),  // Ctrl+E

		// Control
		catalog.ControlHorn:             chord.NewScanCodeChord(0x39, chord.ModNone), // Space
		catalog.ControlBell:             chord.NewScanCodeChord(0x30, chord.ModNone), // B
		catalog.ControlThrottleIncrease: chord.NewScanCodeChord(0x20, chord.ModNone), // D
		catalog.ControlThrottleDecrease: chord.NewScanCodeChord(0x1E, chord.ModNone), // A
		catalog.ControlBrakeIncrease:    chord.NewScanCodeChord(0x1B, chord.ModNone), // ]
		catalog.ControlBrakeDecrease:    chord.NewScanCodeChord(0x1A, chord.ModNone), // [
		catalog.ControlReverserForward:  chord.NewScanCodeChord(0x11, chord.ModNone), // W
		catalog.ControlReverserBackward: chord.NewScanCodeChord(0x1F, chord.ModNone), // S
		catalog.ControlEmergencyStop:    chord.NewScanCodeChord(0x0E, chord.ModNone), // Backspace
		catalog.ControlSander:           chord.NewScanCodeChord(0x2D, chord.ModNone), // X
		catalog.ControlWiper:            chord.NewScanCodeChord(0x2F, chord.ModNone), // V
		catalog.ControlHeadlight:        chord.NewScanCodeChord(0x23, chord.ModNone), // H
		catalog.ControlPantograph:       chord.NewScanCodeChord(0x19, chord.ModNone), // P
		catalog.ControlAlerterReset:     chord.NewScanCodeChord(0x2C, chord.ModNone), // Z

		// Camera
		catalog.CameraFast:      fast,
		catalog.CameraSlow:      slow,
		catalog.CameraCab:       chord.NewScanCodeChord(0x02, chord.ModNone), // 1
		catalog.CameraOutside:   chord.NewScanCodeChord(0x03, chord.ModNone), // 2
		catalog.CameraRear:      chord.NewScanCodeChord(0x04, chord.ModNone), // 3
		catalog.CameraTrackside: chord.NewScanCodeChord(0x05, chord.ModNone), // 4
		catalog.CameraFree:      chord.NewScanCodeChord(0x06, chord.ModNone), // 5
		catalog.CameraPanLeft:   pan(0xCB),                                   // Left
		catalog.CameraPanRight:  pan(0xCD),                                   // Right
		catalog.CameraPanUp:     pan(0xC8),                                   // Up
		catalog.CameraPanDown:   pan(0xD0),                                   // Down
		catalog.CameraZoomIn:    pan(0xC9),                                   // PageUp
		catalog.CameraZoomOut:   pan(0xD1),                                   // PageDown

		// Display
		catalog.DisplayHUD:          chord.NewScanCodeChord(0x3F, chord.ModNone), // F5
		catalog.DisplayTrackMonitor: chord.NewScanCodeChord(0x3E, chord.ModNone), // F4
		catalog.DisplaySwitchWindow: chord.NewScanCodeChord(0x42, chord.ModNone), // F8
		catalog.DisplayCompass:      chord.NewScanCodeChord(0x25, chord.ModNone), // K

		// Debug
		catalog.DebugSpeedUp:       chord.NewScanCodeChord(0x0D, chord.ModCtrl),               // Ctrl+=
		catalog.DebugSpeedDown:     chord.NewScanCodeChord(0x0C, chord.ModCtrl),               // Ctrl+-
		catalog.DebugSpeedReset:    chord.NewScanCodeChord(0x35, chord.ModCtrl),               // Ctrl+/
		catalog.DebugOverlay:       chord.NewScanCodeChord(0x3F, chord.ModCtrl|chord.ModAlt), // Ctrl+Alt+F5
		catalog.DebugLogger:        chord.NewScanCodeChord(0x58, chord.ModNone),               // F12
		catalog.DebugWeatherChange: chord.NewScanCodeChord(0x19, chord.ModAlt),                // Alt+P
	}
}
