// Package session drives one recording session: a Controller turns
// per-tick keyboard snapshots into command log entries, and a Recorder
// gives the session an identity and keeps its log on disk.
package session

import (
	"log/slog"
	"time"

	"github.com/dshills/railcab/internal/binding"
	"github.com/dshills/railcab/internal/catalog"
	"github.com/dshills/railcab/internal/chord"
	"github.com/dshills/railcab/internal/cmdlog"
	"github.com/dshills/railcab/internal/profile"
)

// Controller converts keyboard state changes into log entries. Each
// Tick compares the current snapshot against the previous one and acts
// on command press and release edges:
//
//   - held toggles (horn, sander) go on at press and off at release
//   - latched toggles (bell, wiper, headlight, pantograph, pause,
//     emergency stop) flip state at press
//   - lever commands (throttle, train brake) start a tracked change at
//     press, move at the profile rate while held, and append one entry
//     at release stamped with the press time
//   - reverser steps append an entry immediately
//   - triggers (save, alerter reset, switch throws) fire at press
//
// Camera, display and debug commands are bindable and conflict-checked
// but produce no log entries; their effects are view-side.
//
// Controller is not safe for concurrent use. It belongs to the input
// tick goroutine.
type Controller struct {
	table  *binding.Table
	log    *cmdlog.Log
	logger *slog.Logger

	prevDown []bool
	lastTick time.Time

	latched  map[cmdlog.Kind]bool
	throttle lever
	brake    lever
	reverser float64
}

// NewController builds a controller appending to log using the resolved
// table. Lever rates come from the profile's control settings. A nil
// logger falls back to slog.Default().
func NewController(table *binding.Table, log *cmdlog.Log, controls profile.Controls, logger *slog.Logger) *Controller {
	if logger == nil {
		logger = slog.Default()
	}
	return &Controller{
		table:    table,
		log:      log,
		logger:   logger,
		prevDown: make([]bool, catalog.Count()),
		latched:  make(map[cmdlog.Kind]bool),
		throttle: lever{kind: cmdlog.KindThrottle, rate: controls.ThrottleRate},
		brake:    lever{kind: cmdlog.KindTrainBrake, rate: controls.BrakeRate},
	}
}

// Tick advances the controller to the keyboard state kb at time at.
// Held levers first move by their rate over the elapsed time, then
// press and release edges are applied in catalogue order. Ticking with
// an empty snapshot releases everything still held, which is how a
// session is finished cleanly.
func (c *Controller) Tick(at time.Time, kb *chord.Snapshot) {
	if !c.lastTick.IsZero() {
		dt := at.Sub(c.lastTick).Seconds()
		c.throttle.advance(dt)
		c.brake.advance(dt)
	}
	c.lastTick = at

	cur := make([]bool, len(c.prevDown))
	for _, cmd := range c.table.Active(kb) {
		cur[cmd] = true
	}
	for i := range cur {
		cmd := catalog.Command(i)
		switch {
		case cur[i] && !c.prevDown[i]:
			c.logger.Debug("command pressed", "command", cmd.String())
			c.pressed(cmd, at)
		case !cur[i] && c.prevDown[i]:
			c.logger.Debug("command released", "command", cmd.String())
			c.released(cmd)
		}
	}
	c.prevDown = cur
}

// pressed handles a command's rising edge.
func (c *Controller) pressed(cmd catalog.Command, at time.Time) {
	switch cmd {
	case catalog.ControlHorn:
		c.log.Toggle(cmdlog.KindHorn, true, at)
	case catalog.ControlSander:
		c.log.Toggle(cmdlog.KindSander, true, at)

	case catalog.ControlBell:
		c.flip(cmdlog.KindBell, at)
	case catalog.ControlWiper:
		c.flip(cmdlog.KindWiper, at)
	case catalog.ControlHeadlight:
		c.flip(cmdlog.KindHeadlight, at)
	case catalog.ControlPantograph:
		c.flip(cmdlog.KindPantograph, at)
	case catalog.GamePause:
		c.flip(cmdlog.KindPause, at)
	case catalog.ControlEmergencyStop:
		c.flip(cmdlog.KindEmergencyBrake, at)

	case catalog.ControlThrottleIncrease:
		c.throttle.press(cmd, +1, at, c.log)
	case catalog.ControlThrottleDecrease:
		c.throttle.press(cmd, -1, at, c.log)
	case catalog.ControlBrakeIncrease:
		c.brake.press(cmd, +1, at, c.log)
	case catalog.ControlBrakeDecrease:
		c.brake.press(cmd, -1, at, c.log)

	case catalog.ControlReverserForward:
		c.stepReverser(+1, at)
	case catalog.ControlReverserBackward:
		c.stepReverser(-1, at)

	case catalog.GameSave:
		c.log.Trigger(cmdlog.KindSave, at)
	case catalog.ControlAlerterReset:
		c.log.Trigger(cmdlog.KindAlerterReset, at)
	case catalog.GameSwitchAhead:
		c.log.Trigger(cmdlog.KindSwitchAhead, at)
	case catalog.GameSwitchBehind:
		c.log.Trigger(cmdlog.KindSwitchBehind, at)
	}
}

// released handles a command's falling edge.
func (c *Controller) released(cmd catalog.Command) {
	switch cmd {
	case catalog.ControlHorn:
		c.log.Toggle(cmdlog.KindHorn, false, c.lastTick)
	case catalog.ControlSander:
		c.log.Toggle(cmdlog.KindSander, false, c.lastTick)
	case catalog.ControlThrottleIncrease, catalog.ControlThrottleDecrease:
		c.throttle.release(cmd, c.log)
	case catalog.ControlBrakeIncrease, catalog.ControlBrakeDecrease:
		c.brake.release(cmd, c.log)
	}
}

// flip inverts a latched toggle and records the new state.
func (c *Controller) flip(kind cmdlog.Kind, at time.Time) {
	on := !c.latched[kind]
	c.latched[kind] = on
	c.log.Toggle(kind, on, at)
}

// stepReverser notches the reverser one position and records the new
// one. At the end of travel a step changes nothing and records nothing.
func (c *Controller) stepReverser(dir float64, at time.Time) {
	pos := clamp(c.reverser+dir, -1, 1)
	if pos == c.reverser {
		return
	}
	c.reverser = pos
	c.log.Continuous(cmdlog.KindReverser, pos, at)
}

// Throttle returns the current throttle position in [0, 1].
func (c *Controller) Throttle() float64 { return c.throttle.position() }

// TrainBrake returns the current train brake position in [0, 1].
func (c *Controller) TrainBrake() float64 { return c.brake.position() }

// Reverser returns the reverser position: -1, 0 or 1.
func (c *Controller) Reverser() float64 { return c.reverser }

// Latched reports the current state of a latched toggle.
func (c *Controller) Latched(kind cmdlog.Kind) bool { return c.latched[kind] }

// lever tracks one analog control driven by a raise/lower command
// pair. While one of the pair is held the position moves at rate per
// second; release appends a single entry stamped with the moment the
// hold began.
type lever struct {
	kind cmdlog.Kind
	rate float64

	// value is the last committed position.
	value float64

	held      bool
	active    catalog.Command
	dir       float64
	startedAt time.Time
	pending   float64
}

func (lv *lever) press(cmd catalog.Command, dir float64, at time.Time, log *cmdlog.Log) {
	if lv.held {
		// The opposite command takes over mid-hold; the running
		// segment commits before the new one starts.
		lv.commit(log)
	}
	lv.held = true
	lv.active = cmd
	lv.dir = dir
	lv.startedAt = at
	lv.pending = lv.value
}

func (lv *lever) advance(dt float64) {
	if !lv.held {
		return
	}
	lv.pending = clamp(lv.pending+lv.dir*lv.rate*dt, 0, 1)
}

// release ends the hold if cmd is the command driving it. Releasing
// the other command of the pair changes nothing.
func (lv *lever) release(cmd catalog.Command, log *cmdlog.Log) {
	if !lv.held || lv.active != cmd {
		return
	}
	lv.commit(log)
}

func (lv *lever) commit(log *cmdlog.Log) {
	lv.held = false
	lv.value = lv.pending
	log.Continuous(lv.kind, lv.value, lv.startedAt)
}

func (lv *lever) position() float64 {
	if lv.held {
		return lv.pending
	}
	return lv.value
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
