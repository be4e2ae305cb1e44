// Package replay re-executes a recorded command log against live
// receivers, preserving the log's append order and original pacing.
//
// Receivers are the domain objects that carry out replayed entries:
// the locomotive being driven, the train behind it and the simulator
// session itself. The log stores only role tags, so every role a log
// needs must be rebound to a live object before the engine runs.
package replay

import (
	"fmt"

	"github.com/dshills/railcab/internal/cmdlog"
)

// Locomotive executes entries with role RoleLocomotive.
type Locomotive interface {
	SetHorn(on bool)
	SetBell(on bool)
	SetSander(on bool)
	SetWiper(on bool)
	SetHeadlight(on bool)
	SetPantograph(on bool)
	SetThrottle(target float64)
	SetReverser(target float64)
	ResetAlerter()
}

// Train executes entries with role RoleTrain.
type Train interface {
	SetBrake(target float64)
	SetEmergencyBrake(on bool)
}

// Simulator executes entries with role RoleSimulator.
type Simulator interface {
	SetPaused(on bool)
	Save()
	ThrowSwitchAhead()
	ThrowSwitchBehind()
}

// Receivers is the role-to-object table consulted during replay. Bind
// every role the log requires before starting the engine; Complete
// reports the first missing one.
type Receivers struct {
	locomotive Locomotive
	train      Train
	simulator  Simulator
}

// BindLocomotive binds the locomotive role.
func (r *Receivers) BindLocomotive(l Locomotive) { r.locomotive = l }

// BindTrain binds the train role.
func (r *Receivers) BindTrain(t Train) { r.train = t }

// BindSimulator binds the simulator role.
func (r *Receivers) BindSimulator(s Simulator) { r.simulator = s }

// Complete checks that every role required by the entries is bound.
// Returns ErrUnboundReceiver naming the first missing role.
func (r *Receivers) Complete(entries []cmdlog.Entry) error {
	for _, e := range entries {
		role := e.Role()
		if !r.bound(role) {
			return fmt.Errorf("%w: %s", ErrUnboundReceiver, role)
		}
	}
	return nil
}

func (r *Receivers) bound(role cmdlog.Role) bool {
	switch role {
	case cmdlog.RoleLocomotive:
		return r.locomotive != nil
	case cmdlog.RoleTrain:
		return r.train != nil
	case cmdlog.RoleSimulator:
		return r.simulator != nil
	default:
		return true
	}
}

// dispatch invokes the bound receiver for one entry. Callers have
// already run Complete, so the receiver is non-nil for every known
// kind; unknown kinds are a no-op.
func (r *Receivers) dispatch(e cmdlog.Entry) {
	switch e.Kind {
	case cmdlog.KindHorn:
		r.locomotive.SetHorn(e.On)
	case cmdlog.KindBell:
		r.locomotive.SetBell(e.On)
	case cmdlog.KindSander:
		r.locomotive.SetSander(e.On)
	case cmdlog.KindWiper:
		r.locomotive.SetWiper(e.On)
	case cmdlog.KindHeadlight:
		r.locomotive.SetHeadlight(e.On)
	case cmdlog.KindPantograph:
		r.locomotive.SetPantograph(e.On)
	case cmdlog.KindThrottle:
		r.locomotive.SetThrottle(e.Target)
	case cmdlog.KindReverser:
		r.locomotive.SetReverser(e.Target)
	case cmdlog.KindAlerterReset:
		r.locomotive.ResetAlerter()
	case cmdlog.KindTrainBrake:
		r.train.SetBrake(e.Target)
	case cmdlog.KindEmergencyBrake:
		r.train.SetEmergencyBrake(e.On)
	case cmdlog.KindPause:
		r.simulator.SetPaused(e.On)
	case cmdlog.KindSave:
		r.simulator.Save()
	case cmdlog.KindSwitchAhead:
		r.simulator.ThrowSwitchAhead()
	case cmdlog.KindSwitchBehind:
		r.simulator.ThrowSwitchBehind()
	}
}
