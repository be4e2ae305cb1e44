// Package catalog enumerates the commands a cab session can invoke.
//
// The catalogue is closed and ordered: binding tables, conflict scans
// and persisted override names all key off this enumeration, and the
// declaration order below is the deterministic scan order.
package catalog

import (
	"fmt"
	"strings"
)

// Command identifies one entry of the command catalogue.
type Command uint16

const (
	// Game commands
	GamePause Command = iota
	GameSave
	GameQuit
	GameScreenshot
	GameSwitchAhead
	GameSwitchBehind
	GameChangeCab

	// Control commands
	ControlHorn
	ControlBell
	ControlThrottleIncrease
	ControlThrottleDecrease
	ControlBrakeIncrease
	ControlBrakeDecrease
	ControlReverserForward
	ControlReverserBackward
	ControlEmergencyStop
	ControlSander
	ControlWiper
	ControlHeadlight
	ControlPantograph
	ControlAlerterReset

	// Camera commands
	CameraFast
	CameraSlow
	CameraCab
	CameraOutside
	CameraRear
	CameraTrackside
	CameraFree
	CameraPanLeft
	CameraPanRight
	CameraPanUp
	CameraPanDown
	CameraZoomIn
	CameraZoomOut

	// Display commands
	DisplayHUD
	DisplayTrackMonitor
	DisplaySwitchWindow
	DisplayCompass

	// Debug commands
	DebugSpeedUp
	DebugSpeedDown
	DebugSpeedReset
	DebugOverlay
	DebugLogger
	DebugWeatherChange

	commandCount
)

// commandNames maps commands to their canonical names.
var commandNames = [commandCount]string{
	GamePause:               "GamePause",
	GameSave:                "GameSave",
	GameQuit:                "GameQuit",
	GameScreenshot:          "GameScreenshot",
	GameSwitchAhead:         "GameSwitchAhead",
	GameSwitchBehind:        "GameSwitchBehind",
	GameChangeCab:           "GameChangeCab",
	ControlHorn:             "ControlHorn",
	ControlBell:             "ControlBell",
	ControlThrottleIncrease: "ControlThrottleIncrease",
	ControlThrottleDecrease: "ControlThrottleDecrease",
	ControlBrakeIncrease:    "ControlBrakeIncrease",
	ControlBrakeDecrease:    "ControlBrakeDecrease",
	ControlReverserForward:  "ControlReverserForward",
	ControlReverserBackward: "ControlReverserBackward",
	ControlEmergencyStop:    "ControlEmergencyStop",
	ControlSander:           "ControlSander",
	ControlWiper:            "ControlWiper",
	ControlHeadlight:        "ControlHeadlight",
	ControlPantograph:       "ControlPantograph",
	ControlAlerterReset:     "ControlAlerterReset",
	CameraFast:              "CameraFast",
	CameraSlow:              "CameraSlow",
	CameraCab:               "CameraCab",
	CameraOutside:           "CameraOutside",
	CameraRear:              "CameraRear",
	CameraTrackside:         "CameraTrackside",
	CameraFree:              "CameraFree",
	CameraPanLeft:           "CameraPanLeft",
	CameraPanRight:          "CameraPanRight",
	CameraPanUp:             "CameraPanUp",
	CameraPanDown:           "CameraPanDown",
	CameraZoomIn:            "CameraZoomIn",
	CameraZoomOut:           "CameraZoomOut",
	DisplayHUD:              "DisplayHUD",
	DisplayTrackMonitor:     "DisplayTrackMonitor",
	DisplaySwitchWindow:     "DisplaySwitchWindow",
	DisplayCompass:          "DisplayCompass",
	DebugSpeedUp:            "DebugSpeedUp",
	DebugSpeedDown:          "DebugSpeedDown",
	DebugSpeedReset:         "DebugSpeedReset",
	DebugOverlay:            "DebugOverlay",
	DebugLogger:             "DebugLogger",
	DebugWeatherChange:      "DebugWeatherChange",
}

// String returns the command's canonical name.
func (c Command) String() string {
	if c < commandCount {
		return commandNames[c]
	}
	return fmt.Sprintf("Command(%d)", uint16(c))
}

// IsValid returns true if c is a defined command.
func (c Command) IsValid() bool {
	return c < commandCount
}

// Category returns the command's group, derived from its name prefix.
func (c Command) Category() Category {
	name := c.String()
	switch {
	case strings.HasPrefix(name, "Control"):
		return CategoryControl
	case strings.HasPrefix(name, "Camera"):
		return CategoryCamera
	case strings.HasPrefix(name, "Display"):
		return CategoryDisplay
	case strings.HasPrefix(name, "Debug"):
		return CategoryDebug
	default:
		return CategoryGame
	}
}

// Count returns the number of defined commands.
func Count() int {
	return int(commandCount)
}

// All returns every command in declaration order.
func All() []Command {
	cmds := make([]Command, commandCount)
	for i := range cmds {
		cmds[i] = Command(i)
	}
	return cmds
}

// commandByName maps lowercase names to commands for override lookup.
var commandByName = func() map[string]Command {
	m := make(map[string]Command, commandCount)
	for c := Command(0); c < commandCount; c++ {
		m[strings.ToLower(c.String())] = c
	}
	return m
}()

// FromName returns the command with the given name (case-insensitive).
func FromName(name string) (Command, bool) {
	c, ok := commandByName[strings.ToLower(strings.TrimSpace(name))]
	return c, ok
}

// Names returns every command name in declaration order.
func Names() []string {
	names := make([]string, commandCount)
	copy(names, commandNames[:])
	return names
}

// Category groups commands for display and for conflict policy.
type Category uint8

const (
	CategoryGame Category = iota
	CategoryControl
	CategoryCamera
	CategoryDisplay
	CategoryDebug
)

// String returns a human-readable name for the category.
func (c Category) String() string {
	switch c {
	case CategoryGame:
		return "Game"
	case CategoryControl:
		return "Control"
	case CategoryCamera:
		return "Camera"
	case CategoryDisplay:
		return "Display"
	case CategoryDebug:
		return "Debug"
	default:
		return fmt.Sprintf("Category(%d)", uint8(c))
	}
}

// Noisy returns true for the category whose internal overlaps are
// suppressed by default during conflict checks.
func (c Category) Noisy() bool {
	return c == CategoryDebug
}
