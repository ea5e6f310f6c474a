package bindings

import (
	"errors"
	"fmt"
)

var (
	// ErrNotBuilt reports that the native bindings were not linked into the
	// current binary. Build with `-tags g1sdk` and cgo enabled to link
	// unitree_sdk2.
	ErrNotBuilt = errors.New("g1bridge/internal/bindings: native bindings not built")

	// ErrNilClient is returned when a freed or never-created client pointer is
	// passed to the bindings.
	ErrNilClient = errors.New("g1bridge/internal/bindings: nil client")
)

// NativeError carries the what() text of a C++ exception caught by the shim.
type NativeError struct {
	Op      string
	Message string
}

func (e *NativeError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("%s: native exception", e.Op)
	}
	return fmt.Sprintf("%s: %s", e.Op, e.Message)
}

// Op selects the LocoClient method invoked by LocoCall. The numeric values are
// shared with capi.cpp and must not be reordered.
type Op int32

const (
	OpInit Op = iota + 1
	OpSetTimeout
	OpGetFsmID
	OpGetFsmMode
	OpGetBalanceMode
	OpGetSwingHeight
	OpGetStandHeight
	OpSetFsmID
	OpSetBalanceMode
	OpSetSwingHeight
	OpSetStandHeight
	OpSetVelocity
	OpSetTaskID
	OpSetSpeedMode
	OpDamp
	OpStart
	OpStandUp
	OpSquat
	OpSit
	OpZeroTorque
	OpStopMove
	OpHighStand
	OpLowStand
	OpBalanceStand
	OpContinuousGait
	OpSwitchMoveMode
	OpMove
	OpWaveHand
	OpShakeHand
)

var opNames = map[Op]string{
	OpInit:           "Init",
	OpSetTimeout:     "SetTimeout",
	OpGetFsmID:       "GetFsmId",
	OpGetFsmMode:     "GetFsmMode",
	OpGetBalanceMode: "GetBalanceMode",
	OpGetSwingHeight: "GetSwingHeight",
	OpGetStandHeight: "GetStandHeight",
	OpSetFsmID:       "SetFsmId",
	OpSetBalanceMode: "SetBalanceMode",
	OpSetSwingHeight: "SetSwingHeight",
	OpSetStandHeight: "SetStandHeight",
	OpSetVelocity:    "SetVelocity",
	OpSetTaskID:      "SetTaskId",
	OpSetSpeedMode:   "SetSpeedMode",
	OpDamp:           "Damp",
	OpStart:          "Start",
	OpStandUp:        "StandUp",
	OpSquat:          "Squat",
	OpSit:            "Sit",
	OpZeroTorque:     "ZeroTorque",
	OpStopMove:       "StopMove",
	OpHighStand:      "HighStand",
	OpLowStand:       "LowStand",
	OpBalanceStand:   "BalanceStand",
	OpContinuousGait: "ContinuousGait",
	OpSwitchMoveMode: "SwitchMoveMode",
	OpMove:           "Move",
	OpWaveHand:       "WaveHand",
	OpShakeHand:      "ShakeHand",
}

func (o Op) String() string {
	if name, ok := opNames[o]; ok {
		return name
	}
	return fmt.Sprintf("Op(%d)", int32(o))
}

// Args holds the scalar arguments of a LocoCall. Int carries ids, modes,
// stages and boolean flags (non-zero is true); F carries velocities, heights,
// durations and the timeout, in declaration order of the SDK method.
type Args struct {
	Int int32
	F   [4]float32
}

// Ret holds everything a LocoCall can produce. Code is the SDK return value
// (zero for void methods); Int and Float are the getters' output parameters,
// filled even when Code is non-zero.
type Ret struct {
	Code  int32
	Int   int32
	Float float32
}
