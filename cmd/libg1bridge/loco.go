package main

/*
#include "g1bridge.h"
*/
import "C"

//export create_loco_client
func create_loco_client(networkInterface *C.char) C.G1LocoHandle {
	b := bridge()
	return cLoco(b.CreateLoco(iface(networkInterface)))
}

//export destroy_loco_client
func destroy_loco_client(h C.G1LocoHandle) {
	bridge().DestroyLoco(locoHandle(h))
}

//export init_loco_client
func init_loco_client(h C.G1LocoHandle) C.int {
	return C.int(bridge().LocoInit(locoHandle(h)))
}

//export set_timeout
func set_timeout(h C.G1LocoHandle, timeout C.float) C.int {
	return C.int(bridge().LocoSetTimeout(locoHandle(h), float32(timeout)))
}

//export get_fsm_id
func get_fsm_id(h C.G1LocoHandle) C.IntResult {
	return intResult(bridge().GetFsmID(locoHandle(h)))
}

//export get_fsm_mode
func get_fsm_mode(h C.G1LocoHandle) C.IntResult {
	return intResult(bridge().GetFsmMode(locoHandle(h)))
}

//export get_balance_mode
func get_balance_mode(h C.G1LocoHandle) C.IntResult {
	return intResult(bridge().GetBalanceMode(locoHandle(h)))
}

//export get_swing_height
func get_swing_height(h C.G1LocoHandle) C.FloatResult {
	return floatResult(bridge().GetSwingHeight(locoHandle(h)))
}

//export get_stand_height
func get_stand_height(h C.G1LocoHandle) C.FloatResult {
	return floatResult(bridge().GetStandHeight(locoHandle(h)))
}

//export set_fsm_id
func set_fsm_id(h C.G1LocoHandle, id C.int) C.int {
	return C.int(bridge().SetFsmID(locoHandle(h), int32(id)))
}

//export set_balance_mode
func set_balance_mode(h C.G1LocoHandle, mode C.int) C.int {
	return C.int(bridge().SetBalanceMode(locoHandle(h), int32(mode)))
}

//export set_swing_height
func set_swing_height(h C.G1LocoHandle, height C.float) C.int {
	return C.int(bridge().SetSwingHeight(locoHandle(h), float32(height)))
}

//export set_stand_height
func set_stand_height(h C.G1LocoHandle, height C.float) C.int {
	return C.int(bridge().SetStandHeight(locoHandle(h), float32(height)))
}

//export set_velocity
func set_velocity(h C.G1LocoHandle, vx, vy, omega, duration C.float) C.int {
	return C.int(bridge().SetVelocity(locoHandle(h), float32(vx), float32(vy), float32(omega), float32(duration)))
}

//export set_task_id
func set_task_id(h C.G1LocoHandle, id C.int) C.int {
	return C.int(bridge().SetTaskID(locoHandle(h), int32(id)))
}

//export set_speed_mode
func set_speed_mode(h C.G1LocoHandle, mode C.int) C.int {
	return C.int(bridge().SetSpeedMode(locoHandle(h), int32(mode)))
}

//export damp
func damp(h C.G1LocoHandle) C.int { return C.int(bridge().Damp(locoHandle(h))) }

//export start_robot
func start_robot(h C.G1LocoHandle) C.int { return C.int(bridge().Start(locoHandle(h))) }

//export stand_up
func stand_up(h C.G1LocoHandle) C.int { return C.int(bridge().StandUp(locoHandle(h))) }

//export squat
func squat(h C.G1LocoHandle) C.int { return C.int(bridge().Squat(locoHandle(h))) }

//export sit
func sit(h C.G1LocoHandle) C.int { return C.int(bridge().Sit(locoHandle(h))) }

//export zero_torque
func zero_torque(h C.G1LocoHandle) C.int { return C.int(bridge().ZeroTorque(locoHandle(h))) }

//export stop_move
func stop_move(h C.G1LocoHandle) C.int { return C.int(bridge().StopMove(locoHandle(h))) }

//export high_stand
func high_stand(h C.G1LocoHandle) C.int { return C.int(bridge().HighStand(locoHandle(h))) }

//export low_stand
func low_stand(h C.G1LocoHandle) C.int { return C.int(bridge().LowStand(locoHandle(h))) }

//export balance_stand
func balance_stand(h C.G1LocoHandle) C.int { return C.int(bridge().BalanceStand(locoHandle(h))) }

//export continuous_gait
func continuous_gait(h C.G1LocoHandle, flag C.int) C.int {
	return C.int(bridge().ContinuousGait(locoHandle(h), flag != 0))
}

//export switch_move_mode
func switch_move_mode(h C.G1LocoHandle, flag C.int) C.int {
	return C.int(bridge().SwitchMoveMode(locoHandle(h), flag != 0))
}

//export move_robot
func move_robot(h C.G1LocoHandle, vx, vy, vyaw C.float) C.int {
	return C.int(bridge().Move(locoHandle(h), float32(vx), float32(vy), float32(vyaw)))
}

//export wave_hand
func wave_hand(h C.G1LocoHandle, turnFlag C.int) C.int {
	return C.int(bridge().WaveHand(locoHandle(h), turnFlag != 0))
}

//export shake_hand
func shake_hand(h C.G1LocoHandle, stage C.int) C.int {
	return C.int(bridge().ShakeHand(locoHandle(h), int32(stage)))
}
