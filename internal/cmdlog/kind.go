package cmdlog

// Kind tags a log entry with the action it records. The set is closed:
// decoding rejects any kind not listed here.
type Kind string

// Entry kinds, grouped by receiver role.
const (
	// Locomotive toggles
	KindHorn       Kind = "horn"
	KindBell       Kind = "bell"
	KindSander     Kind = "sander"
	KindWiper      Kind = "wiper"
	KindHeadlight  Kind = "headlight"
	KindPantograph Kind = "pantograph"

	// Locomotive continuous changes
	KindThrottle Kind = "throttle"
	KindReverser Kind = "reverser"

	// Locomotive triggers
	KindAlerterReset Kind = "alerterReset"

	// Train
	KindTrainBrake     Kind = "trainBrake"
	KindEmergencyBrake Kind = "emergencyBrake"

	// Simulator
	KindPause        Kind = "pause"
	KindSave         Kind = "save"
	KindSwitchAhead  Kind = "switchAhead"
	KindSwitchBehind Kind = "switchBehind"
)

// Role identifies which external receiver executes an entry. The role
// is derived from the kind and never serialized; replay rebinds roles
// to live objects before dispatch.
type Role uint8

// Receiver roles.
const (
	RoleNone Role = iota
	RoleLocomotive
	RoleTrain
	RoleSimulator
)

// String returns the role name.
func (r Role) String() string {
	switch r {
	case RoleLocomotive:
		return "locomotive"
	case RoleTrain:
		return "train"
	case RoleSimulator:
		return "simulator"
	default:
		return "none"
	}
}

// Class describes the payload shape of a kind.
type Class uint8

// Payload classes.
const (
	ClassNone       Class = iota
	ClassToggle           // carries On
	ClassContinuous       // carries Target
	ClassTrigger          // carries no payload
)

type kindInfo struct {
	role  Role
	class Class
}

var kinds = map[Kind]kindInfo{
	KindHorn:           {RoleLocomotive, ClassToggle},
	KindBell:           {RoleLocomotive, ClassToggle},
	KindSander:         {RoleLocomotive, ClassToggle},
	KindWiper:          {RoleLocomotive, ClassToggle},
	KindHeadlight:      {RoleLocomotive, ClassToggle},
	KindPantograph:     {RoleLocomotive, ClassToggle},
	KindThrottle:       {RoleLocomotive, ClassContinuous},
	KindReverser:       {RoleLocomotive, ClassContinuous},
	KindAlerterReset:   {RoleLocomotive, ClassTrigger},
	KindTrainBrake:     {RoleTrain, ClassContinuous},
	KindEmergencyBrake: {RoleTrain, ClassToggle},
	KindPause:          {RoleSimulator, ClassToggle},
	KindSave:           {RoleSimulator, ClassTrigger},
	KindSwitchAhead:    {RoleSimulator, ClassTrigger},
	KindSwitchBehind:   {RoleSimulator, ClassTrigger},
}

// IsValid reports whether k is a known kind.
func (k Kind) IsValid() bool {
	_, ok := kinds[k]
	return ok
}

// Role returns the receiver role that executes entries of this kind,
// or RoleNone for an unknown kind.
func (k Kind) Role() Role {
	return kinds[k].role
}

// Class returns the payload shape of this kind, or ClassNone for an
// unknown kind.
func (k Kind) Class() Class {
	return kinds[k].class
}
