package g1_test

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gerri-robotics/g1bridge-go/pkg/g1"
	"github.com/gerri-robotics/g1bridge-go/pkg/g1/logging"
	"github.com/gerri-robotics/g1bridge-go/pkg/g1/sim"
)

func newBridge(t *testing.T, opts ...sim.Option) (*g1.Bridge, *sim.Robot, *bytes.Buffer) {
	t.Helper()
	r := sim.New(opts...)
	var buf bytes.Buffer
	log := logging.New(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	return g1.New(g1.Config{Channel: r, Clients: r, Logger: log}), r, &buf
}

func readyLoco(t *testing.T, b *g1.Bridge) g1.LocoHandle {
	t.Helper()
	h := b.CreateLoco("eth0")
	require.NotZero(t, h)
	require.Equal(t, g1.StatusOK, b.LocoInit(h))
	return h
}

func readyArm(t *testing.T, b *g1.Bridge) g1.ArmHandle {
	t.Helper()
	h := b.CreateArm("eth0")
	require.NotZero(t, h)
	require.Equal(t, g1.StatusOK, b.ArmInit(h))
	return h
}

func TestNullHandleRejectedWithoutSDKCall(t *testing.T) {
	b, r, _ := newBridge(t)
	var lh g1.LocoHandle
	var ah g1.ArmHandle

	codes := map[string]int32{
		"init_loco_client":       b.LocoInit(lh),
		"set_timeout":            b.LocoSetTimeout(lh, 1),
		"get_fsm_id":             b.GetFsmID(lh).Code,
		"get_fsm_mode":           b.GetFsmMode(lh).Code,
		"get_balance_mode":       b.GetBalanceMode(lh).Code,
		"get_swing_height":       b.GetSwingHeight(lh).Code,
		"get_stand_height":       b.GetStandHeight(lh).Code,
		"set_fsm_id":             b.SetFsmID(lh, 500),
		"set_balance_mode":       b.SetBalanceMode(lh, 1),
		"set_swing_height":       b.SetSwingHeight(lh, 0.1),
		"set_stand_height":       b.SetStandHeight(lh, 0.7),
		"set_velocity":           b.SetVelocity(lh, 0.3, 0, 0, 2),
		"set_task_id":            b.SetTaskID(lh, 1),
		"set_speed_mode":         b.SetSpeedMode(lh, 1),
		"damp":                   b.Damp(lh),
		"start_robot":            b.Start(lh),
		"stand_up":               b.StandUp(lh),
		"squat":                  b.Squat(lh),
		"sit":                    b.Sit(lh),
		"zero_torque":            b.ZeroTorque(lh),
		"stop_move":              b.StopMove(lh),
		"high_stand":             b.HighStand(lh),
		"low_stand":              b.LowStand(lh),
		"balance_stand":          b.BalanceStand(lh),
		"continuous_gait":        b.ContinuousGait(lh, true),
		"switch_move_mode":       b.SwitchMoveMode(lh, true),
		"move_robot":             b.Move(lh, 0.1, 0, 0),
		"wave_hand":              b.WaveHand(lh, false),
		"shake_hand":             b.ShakeHand(lh, -1),
		"init_arm_client":        b.ArmInit(ah),
		"set_arm_timeout":        b.ArmSetTimeout(ah, 10),
		"execute_action":         b.ExecuteAction(ah, g1.ActionClap),
		"execute_action_by_name": b.ExecuteActionByName(ah, "clap"),
		"get_action_list":        b.GetActionList(ah).Code,
	}
	for op, code := range codes {
		assert.Negative(t, code, op)
	}

	assert.Equal(t, float32(0), b.GetSwingHeight(lh).Value)
	assert.Nil(t, b.GetActionList(ah).Data)
	assert.Empty(t, r.Calls(), "no SDK method may run for a null handle")

	b.DestroyLoco(lh)
	b.DestroyArm(ah)
}

func TestDestroyedHandleRejected(t *testing.T) {
	b, r, _ := newBridge(t)
	h := readyLoco(t, b)
	b.DestroyLoco(h)
	b.DestroyLoco(h)
	r.ResetCalls()

	assert.Equal(t, g1.StatusFailure, b.Damp(h))
	assert.Empty(t, r.Calls())

	loco, arm := b.LiveHandles()
	assert.Zero(t, loco)
	assert.Zero(t, arm)
}

func TestCreateInitSetVelocity(t *testing.T) {
	b, r, _ := newBridge(t)
	h := readyLoco(t, b)

	r.FailWith("loco.SetVelocity", g1.CodeRobotNotReady)
	assert.Equal(t, g1.CodeRobotNotReady, b.SetVelocity(h, 0.3, 0, 0, 2.0), "SDK code is passed through")

	r.Clear("loco.SetVelocity")
	assert.Equal(t, g1.StatusOK, b.SetVelocity(h, 0.3, 0, 0, 2.0))
	assert.Equal(t, sim.Velocity{Vx: 0.3, Duration: 2.0}, r.State().Velocity)

	calls := r.Calls("loco.SetVelocity")
	require.Len(t, calls, 2)
	assert.Equal(t, []any{float32(0.3), float32(0), float32(0), float32(2.0)}, calls[1].Args)
}

func TestBestEffortGettersIgnoreSDKCode(t *testing.T) {
	b, r, _ := newBridge(t, sim.WithState(sim.State{FsmID: 801, FsmMode: 2, BalanceMode: 1, SwingHeight: 0.09, StandHeight: 0.7}))
	h := readyLoco(t, b)

	for _, op := range []string{"GetFsmID", "GetFsmMode", "GetBalanceMode", "GetSwingHeight", "GetStandHeight"} {
		r.FailWith("loco."+op, g1.CodeCommunicationTimeout)
	}

	assert.Equal(t, g1.IntResult{Code: 0, Value: 801}, b.GetFsmID(h))
	assert.Equal(t, g1.IntResult{Code: 0, Value: 2}, b.GetFsmMode(h))
	assert.Equal(t, g1.IntResult{Code: 0, Value: 1}, b.GetBalanceMode(h))
	assert.Equal(t, g1.FloatResult{Code: 0, Value: 0.09}, b.GetSwingHeight(h))
	assert.Equal(t, g1.FloatResult{Code: 0, Value: 0.7}, b.GetStandHeight(h))
}

func TestGetterThrowReportsFailure(t *testing.T) {
	b, r, _ := newBridge(t)
	h := readyLoco(t, b)

	r.Throw("loco.GetStandHeight", errors.New("rpc broken"))
	assert.Equal(t, g1.FloatResult{Code: g1.StatusFailure}, b.GetStandHeight(h))
	r.Panic("loco.GetFsmID")
	assert.Equal(t, g1.IntResult{Code: g1.StatusFailure}, b.GetFsmID(h))
}

func TestMoveUsesPerHandleContinuity(t *testing.T) {
	b, r, _ := newBridge(t)
	h1 := readyLoco(t, b)
	h2 := readyLoco(t, b)

	continuity := func() []bool {
		var out []bool
		for _, c := range r.Calls("loco.Move") {
			out = append(out, c.Args[3].(bool))
		}
		return out
	}

	require.Equal(t, g1.StatusOK, b.Move(h1, 0.2, 0, 0))
	require.Equal(t, g1.StatusOK, b.SwitchMoveMode(h1, true))
	require.Equal(t, g1.StatusOK, b.Move(h1, 0.2, 0, 0))
	require.Equal(t, g1.StatusOK, b.Move(h2, 0.2, 0, 0))
	require.Equal(t, g1.StatusOK, b.SwitchMoveMode(h1, false))
	require.Equal(t, g1.StatusOK, b.Move(h1, 0.2, 0, 0))

	assert.Equal(t, []bool{false, true, false, false}, continuity())
}

func TestSwitchMoveModeKeepsFlagOnSDKFailure(t *testing.T) {
	b, r, _ := newBridge(t)
	h := readyLoco(t, b)

	r.Throw("loco.SwitchMoveMode", errors.New("busy"))
	assert.Equal(t, g1.StatusFailure, b.SwitchMoveMode(h, true))
	require.Equal(t, g1.StatusOK, b.Move(h, 0.1, 0, 0))

	calls := r.Calls("loco.Move")
	require.Len(t, calls, 1)
	assert.Equal(t, true, calls[0].Args[3])
}

func TestDispatchRecoversFailures(t *testing.T) {
	b, r, logs := newBridge(t)
	h := readyLoco(t, b)

	r.Throw("loco.Damp", errors.New("lease expired"))
	assert.Equal(t, g1.StatusFailure, b.Damp(h))
	assert.Contains(t, logs.String(), "lease expired")

	r.Panic("loco.Sit")
	assert.Equal(t, g1.StatusFailure, b.Sit(h))
	assert.Contains(t, logs.String(), "dispatch panicked")

	assert.Equal(t, g1.StatusOK, b.StandUp(h), "handle stays usable")
}

func TestActionsForwardSDKCode(t *testing.T) {
	b, r, _ := newBridge(t)
	h := readyLoco(t, b)

	actions := map[string]func() int32{
		"Damp":           func() int32 { return b.Damp(h) },
		"Start":          func() int32 { return b.Start(h) },
		"StandUp":        func() int32 { return b.StandUp(h) },
		"Squat":          func() int32 { return b.Squat(h) },
		"Sit":            func() int32 { return b.Sit(h) },
		"ZeroTorque":     func() int32 { return b.ZeroTorque(h) },
		"StopMove":       func() int32 { return b.StopMove(h) },
		"HighStand":      func() int32 { return b.HighStand(h) },
		"LowStand":       func() int32 { return b.LowStand(h) },
		"BalanceStand":   func() int32 { return b.BalanceStand(h) },
		"ContinuousGait": func() int32 { return b.ContinuousGait(h, true) },
		"WaveHand":       func() int32 { return b.WaveHand(h, true) },
		"ShakeHand":      func() int32 { return b.ShakeHand(h, 0) },
		"SetFsmID":       func() int32 { return b.SetFsmID(h, 500) },
		"SetBalanceMode": func() int32 { return b.SetBalanceMode(h, 1) },
		"SetSwingHeight": func() int32 { return b.SetSwingHeight(h, 0.1) },
		"SetStandHeight": func() int32 { return b.SetStandHeight(h, 0.7) },
		"SetTaskID":      func() int32 { return b.SetTaskID(h, 3) },
		"SetSpeedMode":   func() int32 { return b.SetSpeedMode(h, 2) },
	}
	for name, do := range actions {
		r.FailWith("loco."+name, g1.CodeMotorError)
		assert.Equal(t, g1.CodeMotorError, do(), name)
		r.Clear("loco." + name)
		assert.Equal(t, g1.StatusOK, do(), name)
		assert.Len(t, r.Calls("loco."+name), 2, name)
	}
}

func TestSettersUpdateState(t *testing.T) {
	b, _, _ := newBridge(t)
	h := readyLoco(t, b)

	require.Equal(t, g1.StatusOK, b.SetFsmID(h, 500))
	require.Equal(t, g1.StatusOK, b.SetStandHeight(h, 0.66))
	require.Equal(t, g1.StatusOK, b.SetSwingHeight(h, 0.12))
	require.Equal(t, g1.StatusOK, b.SetBalanceMode(h, 1))

	assert.Equal(t, int32(500), b.GetFsmID(h).Value)
	assert.Equal(t, float32(0.66), b.GetStandHeight(h).Value)
	assert.Equal(t, float32(0.12), b.GetSwingHeight(h).Value)
	assert.Equal(t, int32(1), b.GetBalanceMode(h).Value)
}

func TestBridgesShareChannelInit(t *testing.T) {
	r := sim.New()
	first := g1.New(g1.Config{Channel: r, Clients: r, Logger: logging.Discard()})
	second := g1.New(g1.Config{Channel: r, Clients: r, Logger: logging.Discard()})

	assert.NotZero(t, first.CreateLoco("eth0"))
	assert.NotZero(t, second.CreateLoco("eth0"))
	assert.NotZero(t, second.CreateLoco("eth1"))

	assert.Equal(t, 1, r.ChannelInits())
	assert.Len(t, r.Calls("channel.Init"), 1)

	iface, ok := second.Gate().Initialized()
	assert.True(t, ok)
	assert.Equal(t, "eth0", iface)
}

func TestLifecycleErrors(t *testing.T) {
	b, r, _ := newBridge(t)
	h := b.CreateLoco("eth0")
	require.NotZero(t, h)

	r.Throw("loco.Init", errors.New("no lease"))
	assert.Equal(t, g1.StatusFailure, b.LocoInit(h))
	r.Clear("loco.Init")
	assert.Equal(t, g1.StatusOK, b.LocoInit(h))

	r.Throw("loco.SetTimeout", errors.New("bad"))
	assert.Equal(t, g1.StatusFailure, b.LocoSetTimeout(h, 3))
	r.Clear("loco.SetTimeout")
	assert.Equal(t, g1.StatusOK, b.LocoSetTimeout(h, 3))
}

func TestCreateLocoChannelFailure(t *testing.T) {
	b, r, logs := newBridge(t, sim.WithInterfaces("eth0"))

	assert.Zero(t, b.CreateLoco("eth9"))
	assert.Contains(t, logs.String(), "eth9")
	assert.Zero(t, r.ChannelInits())

	h := b.CreateLoco("eth0")
	assert.NotZero(t, h)
	assert.NotZero(t, b.CreateLoco("eth0"))
	assert.Equal(t, 1, r.ChannelInits())

	loco, _ := b.LiveHandles()
	assert.Equal(t, 2, loco)
}

func TestCreateLocoConstructorFailure(t *testing.T) {
	b, r, _ := newBridge(t)
	r.Throw("factory.NewLocoClient", errors.New("alloc"))
	assert.Zero(t, b.CreateLoco("eth0"))

	r.Panic("factory.NewArmActionClient")
	assert.Zero(t, b.CreateArm("eth0"))
}

func TestDestroyClosesClient(t *testing.T) {
	b, r, _ := newBridge(t)
	h := readyLoco(t, b)
	a := readyArm(t, b)

	b.DestroyArm(a)
	b.DestroyLoco(h)
	assert.Len(t, r.Calls("loco.Close"), 1)
	assert.Len(t, r.Calls("arm.Close"), 1)
}

func TestArmActionList(t *testing.T) {
	b, r, _ := newBridge(t)
	readyLoco(t, b)
	a := readyArm(t, b)

	res := b.GetActionList(a)
	assert.Equal(t, g1.StatusOK, res.Code)
	assert.Nil(t, res.Data, "no actions configured")

	r.FailWith("arm.GetActionList", g1.CodeArmSDKError)
	res = b.GetActionList(a)
	assert.Equal(t, g1.CodeArmSDKError, res.Code)
	assert.Nil(t, res.Data)

	r.Throw("arm.GetActionList", errors.New("timeout"))
	res = b.GetActionList(a)
	assert.Equal(t, g1.StatusFailure, res.Code)
	assert.Nil(t, res.Data)
}

func TestArmActionListPayload(t *testing.T) {
	b, _, _ := newBridge(t, sim.WithActions(g1.Action{Name: "hug", ID: g1.ActionHug}))
	readyLoco(t, b)
	a := readyArm(t, b)

	res := b.GetActionList(a)
	require.True(t, res.OK())
	assert.JSONEq(t, `[{"name":"hug","id":19}]`, res.String())
}

func TestExecuteAction(t *testing.T) {
	b, r, _ := newBridge(t)
	h := readyLoco(t, b)
	a := readyArm(t, b)
	require.Equal(t, g1.ArmHandle(1), a)

	assert.Equal(t, g1.CodeInvalidFsmID, b.ExecuteAction(a, g1.ActionClap))
	require.Equal(t, g1.StatusOK, b.Start(h))
	assert.Equal(t, g1.StatusOK, b.ExecuteAction(a, g1.ActionClap))
	assert.Equal(t, g1.CodeInvalidActionID, b.ExecuteAction(a, 7))

	assert.Equal(t, g1.StatusOK, b.ExecuteActionByName(a, "high_five"))
	assert.Equal(t, g1.StatusFailure, b.ExecuteActionByName(a, "moonwalk"))

	calls := r.Calls("arm.ExecuteAction")
	require.Len(t, calls, 4)
	assert.Equal(t, []any{g1.ActionHighFive}, calls[3].Args)

	assert.Equal(t, g1.StatusOK, b.ArmSetTimeout(a, 10))
}

// An arm handle created before any loco handle runs on an uninitialized
// channel. The bridge does not initialize it; the outcome of later calls is
// up to the SDK.
func TestArmBeforeLocoOrderingHazard(t *testing.T) {
	b, r, logs := newBridge(t)

	a := b.CreateArm("eth0")
	require.NotZero(t, a)
	assert.Zero(t, r.ChannelInits())
	assert.Empty(t, r.Calls("channel.Init"))
	assert.Contains(t, logs.String(), "before channel initialization")

	_, ok := b.Gate().Initialized()
	assert.False(t, ok)
	b.ExecuteAction(a, g1.ActionClap)
}

func TestHandleKindsAreDistinct(t *testing.T) {
	b, r, _ := newBridge(t)
	h := readyLoco(t, b)
	r.ResetCalls()

	// Same numeric id, different registry.
	assert.Equal(t, g1.StatusFailure, b.ArmInit(g1.ArmHandle(h)))
	assert.Empty(t, r.Calls())
}
