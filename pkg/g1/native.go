package g1

import (
	"runtime"
	"sync"

	"github.com/gerri-robotics/g1bridge-go/internal/bindings"
)

// NativeSDK returns the factories backed by unitree_sdk2. Without the g1sdk
// build tag every call fails with ErrNotBuilt.
func NativeSDK() NativeFactory { return NativeFactory{} }

// NativeFactory implements ChannelFactory and ClientFactory over the native
// library.
type NativeFactory struct{}

func (NativeFactory) Init(domainID int32, networkInterface string) error {
	return remapError(bindings.ChannelInit(domainID, networkInterface))
}

func (NativeFactory) NewLocoClient() (LocoClient, error) {
	l, err := bindings.NewLoco()
	if err != nil {
		return nil, remapError(err)
	}
	c := &nativeLoco{l: l}
	runtime.SetFinalizer(c, func(c *nativeLoco) { _ = c.Close() })
	return c, nil
}

func (NativeFactory) NewArmActionClient() (ArmActionClient, error) {
	a, err := bindings.NewArm()
	if err != nil {
		return nil, remapError(err)
	}
	c := &nativeArm{a: a}
	runtime.SetFinalizer(c, func(c *nativeArm) { _ = c.Close() })
	return c, nil
}

// nativeLoco holds the read lock for the duration of a call so Close waits
// for in-flight calls before freeing the client.
type nativeLoco struct {
	mu sync.RWMutex
	l  bindings.Loco
}

func (c *nativeLoco) do(op bindings.Op, a bindings.Args) (bindings.Ret, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	r, err := bindings.LocoCall(c.l, op, a)
	return r, remapError(err)
}

func (c *nativeLoco) code(op bindings.Op, a bindings.Args) (int32, error) {
	r, err := c.do(op, a)
	return r.Code, err
}

func (c *nativeLoco) getInt(op bindings.Op) (int32, int32, error) {
	r, err := c.do(op, bindings.Args{})
	return r.Int, r.Code, err
}

func (c *nativeLoco) getFloat(op bindings.Op) (float32, int32, error) {
	r, err := c.do(op, bindings.Args{})
	return r.Float, r.Code, err
}

func flag(on bool) bindings.Args {
	if on {
		return bindings.Args{Int: 1}
	}
	return bindings.Args{}
}

func floats(f ...float32) bindings.Args {
	var a bindings.Args
	copy(a.F[:], f)
	return a
}

func (c *nativeLoco) Init() error {
	_, err := c.do(bindings.OpInit, bindings.Args{})
	return err
}

func (c *nativeLoco) SetTimeout(seconds float32) error {
	_, err := c.do(bindings.OpSetTimeout, floats(seconds))
	return err
}

func (c *nativeLoco) GetFsmID() (int32, int32, error)       { return c.getInt(bindings.OpGetFsmID) }
func (c *nativeLoco) GetFsmMode() (int32, int32, error)     { return c.getInt(bindings.OpGetFsmMode) }
func (c *nativeLoco) GetBalanceMode() (int32, int32, error) { return c.getInt(bindings.OpGetBalanceMode) }
func (c *nativeLoco) GetSwingHeight() (float32, int32, error) {
	return c.getFloat(bindings.OpGetSwingHeight)
}
func (c *nativeLoco) GetStandHeight() (float32, int32, error) {
	return c.getFloat(bindings.OpGetStandHeight)
}

func (c *nativeLoco) SetFsmID(id int32) (int32, error) {
	return c.code(bindings.OpSetFsmID, bindings.Args{Int: id})
}
func (c *nativeLoco) SetBalanceMode(mode int32) (int32, error) {
	return c.code(bindings.OpSetBalanceMode, bindings.Args{Int: mode})
}
func (c *nativeLoco) SetSwingHeight(h float32) (int32, error) {
	return c.code(bindings.OpSetSwingHeight, floats(h))
}
func (c *nativeLoco) SetStandHeight(h float32) (int32, error) {
	return c.code(bindings.OpSetStandHeight, floats(h))
}
func (c *nativeLoco) SetVelocity(vx, vy, omega, duration float32) (int32, error) {
	return c.code(bindings.OpSetVelocity, floats(vx, vy, omega, duration))
}
func (c *nativeLoco) SetTaskID(id int32) (int32, error) {
	return c.code(bindings.OpSetTaskID, bindings.Args{Int: id})
}
func (c *nativeLoco) SetSpeedMode(mode int32) (int32, error) {
	return c.code(bindings.OpSetSpeedMode, bindings.Args{Int: mode})
}

func (c *nativeLoco) Damp() (int32, error)         { return c.code(bindings.OpDamp, bindings.Args{}) }
func (c *nativeLoco) Start() (int32, error)        { return c.code(bindings.OpStart, bindings.Args{}) }
func (c *nativeLoco) StandUp() (int32, error)      { return c.code(bindings.OpStandUp, bindings.Args{}) }
func (c *nativeLoco) Squat() (int32, error)        { return c.code(bindings.OpSquat, bindings.Args{}) }
func (c *nativeLoco) Sit() (int32, error)          { return c.code(bindings.OpSit, bindings.Args{}) }
func (c *nativeLoco) ZeroTorque() (int32, error)   { return c.code(bindings.OpZeroTorque, bindings.Args{}) }
func (c *nativeLoco) StopMove() (int32, error)     { return c.code(bindings.OpStopMove, bindings.Args{}) }
func (c *nativeLoco) HighStand() (int32, error)    { return c.code(bindings.OpHighStand, bindings.Args{}) }
func (c *nativeLoco) LowStand() (int32, error)     { return c.code(bindings.OpLowStand, bindings.Args{}) }
func (c *nativeLoco) BalanceStand() (int32, error) { return c.code(bindings.OpBalanceStand, bindings.Args{}) }

func (c *nativeLoco) ContinuousGait(on bool) (int32, error) {
	return c.code(bindings.OpContinuousGait, flag(on))
}
func (c *nativeLoco) SwitchMoveMode(on bool) (int32, error) {
	return c.code(bindings.OpSwitchMoveMode, flag(on))
}

func (c *nativeLoco) Move(vx, vy, vyaw float32, continuous bool) (int32, error) {
	a := floats(vx, vy, vyaw)
	if continuous {
		a.Int = 1
	}
	return c.code(bindings.OpMove, a)
}

func (c *nativeLoco) WaveHand(turn bool) (int32, error) {
	return c.code(bindings.OpWaveHand, flag(turn))
}
func (c *nativeLoco) ShakeHand(stage int32) (int32, error) {
	return c.code(bindings.OpShakeHand, bindings.Args{Int: stage})
}

// Close frees the native client. It is idempotent.
func (c *nativeLoco) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.l == nil {
		return nil
	}
	bindings.FreeLoco(c.l)
	c.l = nil
	runtime.SetFinalizer(c, nil)
	return nil
}

type nativeArm struct {
	mu sync.RWMutex
	a  bindings.Arm
}

func (c *nativeArm) Init() error {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return remapError(bindings.ArmInit(c.a))
}

func (c *nativeArm) SetTimeout(seconds float32) error {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return remapError(bindings.ArmSetTimeout(c.a, seconds))
}

func (c *nativeArm) ExecuteAction(actionID int32) (int32, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	rc, err := bindings.ArmExecute(c.a, actionID)
	return rc, remapError(err)
}

func (c *nativeArm) GetActionList() (string, int32, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	s, rc, err := bindings.ArmActionList(c.a)
	return s, rc, remapError(err)
}

// Close frees the native client. It is idempotent.
func (c *nativeArm) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.a == nil {
		return nil
	}
	bindings.FreeArm(c.a)
	c.a = nil
	runtime.SetFinalizer(c, nil)
	return nil
}
