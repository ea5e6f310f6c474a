package main

import (
	"encoding/json"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gerri-robotics/g1bridge-go/internal/config"
	"github.com/gerri-robotics/g1bridge-go/pkg/g1"
	"github.com/gerri-robotics/g1bridge-go/pkg/g1/logging"
	"github.com/gerri-robotics/g1bridge-go/pkg/g1/sim"
)

func useSim(t *testing.T, opts ...sim.Option) *sim.Robot {
	t.Helper()
	r := sim.New(opts...)
	lib.once.Do(func() {})
	install(g1.New(g1.Config{Channel: r, Clients: r, Logger: logging.Discard()}), config.Default())
	return r
}

// cBytes reads n bytes plus the terminator from a C string.
func cBytes(p unsafe.Pointer, n int) []byte {
	return unsafe.Slice((*byte)(p), n+1)
}

func TestNullHandles(t *testing.T) {
	r := useSim(t)

	assert.EqualValues(t, -1, init_loco_client(cLoco(0)))
	assert.EqualValues(t, -1, damp(cLoco(0)))
	assert.EqualValues(t, -1, move_robot(cLoco(0), 0.1, 0, 0))
	assert.EqualValues(t, -1, get_fsm_id(cLoco(0)).code)
	assert.EqualValues(t, -1, get_stand_height(cLoco(0)).code)
	assert.EqualValues(t, -1, execute_action(cArm(0), 17))
	assert.EqualValues(t, -1, execute_action_by_name(cArm(0), nil))

	res := get_action_list(cArm(0))
	assert.EqualValues(t, -1, res.code)
	assert.Nil(t, unsafe.Pointer(res.data))

	destroy_loco_client(cLoco(0))
	destroy_arm_client(cArm(0))
	assert.Empty(t, r.Calls())
}

func TestLocoRoundTrip(t *testing.T) {
	r := useSim(t)

	h := create_loco_client(nil)
	require.NotZero(t, locoHandle(h), "NULL interface falls back to configuration")
	assert.Equal(t, "eth0", r.State().Channel)
	defer destroy_loco_client(h)

	require.EqualValues(t, 0, init_loco_client(h))
	require.EqualValues(t, 0, set_timeout(h, 3))
	require.EqualValues(t, 0, set_velocity(h, 0.3, 0, 0, 2.0))
	assert.Equal(t, sim.Velocity{Vx: 0.3, Duration: 2}, r.State().Velocity)

	require.EqualValues(t, 0, start_robot(h))
	fsm := get_fsm_id(h)
	assert.EqualValues(t, 0, fsm.code)
	assert.EqualValues(t, sim.FsmStart, fsm.value)

	require.EqualValues(t, 0, set_stand_height(h, 0.7))
	height := get_stand_height(h)
	assert.EqualValues(t, 0, height.code)
	assert.InDelta(t, 0.7, float64(height.value), 1e-6)

	require.EqualValues(t, 0, switch_move_mode(h, 1))
	require.EqualValues(t, 0, move_robot(h, 0.2, 0, 0))
	moves := r.Calls("loco.Move")
	require.Len(t, moves, 1)
	assert.Equal(t, true, moves[0].Args[3])

	r.FailWith("loco.Squat", g1.CodeEmergencyStop)
	assert.EqualValues(t, g1.CodeEmergencyStop, squat(h))
}

func TestStringResultOwnership(t *testing.T) {
	useSim(t, sim.WithActions(g1.Action{Name: "clap", ID: g1.ActionClap}))

	loco := create_loco_client(nil)
	require.NotZero(t, locoHandle(loco))
	arm := create_arm_client(nil)
	require.NotZero(t, armHandle(arm))
	require.EqualValues(t, 0, init_arm_client(arm))

	res := get_action_list(arm)
	require.EqualValues(t, 0, res.code)
	require.NotNil(t, unsafe.Pointer(res.data))

	want := `[{"name":"clap","id":17}]`
	got := cBytes(unsafe.Pointer(res.data), len(want))
	assert.Equal(t, want, string(got[:len(want)]))
	assert.Zero(t, got[len(want)], "NUL terminated")

	var actions []g1.Action
	require.NoError(t, json.Unmarshal(got[:len(want)], &actions))
	free_string_result(res)

	destroy_arm_client(arm)
	destroy_loco_client(loco)
}

func TestEmptyActionListHasNullData(t *testing.T) {
	useSim(t)
	loco := create_loco_client(nil)
	arm := create_arm_client(nil)
	require.EqualValues(t, 0, init_arm_client(arm))

	res := get_action_list(arm)
	assert.EqualValues(t, 0, res.code)
	assert.Nil(t, unsafe.Pointer(res.data))
	free_string_result(res)

	destroy_arm_client(arm)
	destroy_loco_client(loco)
}

func failAllocations(t *testing.T) {
	t.Helper()
	prev := copyOut
	copyOut = func(*byte, int) unsafe.Pointer { return nil }
	t.Cleanup(func() { copyOut = prev })
}

func TestAllocationFailureKeepsCode(t *testing.T) {
	useSim(t, sim.WithActions(g1.Action{Name: "clap", ID: g1.ActionClap}))
	loco := create_loco_client(nil)
	arm := create_arm_client(nil)
	require.EqualValues(t, 0, init_arm_client(arm))
	defer destroy_loco_client(loco)
	defer destroy_arm_client(arm)

	failAllocations(t)

	res := get_action_list(arm)
	assert.EqualValues(t, 0, res.code)
	assert.Nil(t, unsafe.Pointer(res.data))
	free_string_result(res)

	text := status_text(0)
	assert.EqualValues(t, 0, text.code)
	assert.Nil(t, unsafe.Pointer(text.data))
	free_string_result(text)
}

func TestStatusText(t *testing.T) {
	res := status_text(-8)
	require.EqualValues(t, 0, res.code)
	defer free_string_result(res)

	want := g1.StatusText(g1.CodeInvalidFsmID)
	got := cBytes(unsafe.Pointer(res.data), len(want))
	assert.Equal(t, want, string(got[:len(want)]))
	assert.Zero(t, got[len(want)])
}

func TestHandlesAreIDs(t *testing.T) {
	useSim(t)
	a := create_loco_client(nil)
	b := create_loco_client(nil)
	defer destroy_loco_client(a)
	defer destroy_loco_client(b)

	assert.Equal(t, locoHandle(a)+1, locoHandle(b))

	destroy_loco_client(a)
	assert.EqualValues(t, -1, damp(a), "destroyed handle is rejected")
}
