package main

/*
#include "g1bridge.h"
*/
import "C"

//export create_arm_client
func create_arm_client(networkInterface *C.char) C.G1ArmHandle {
	b := bridge()
	return cArm(b.CreateArm(iface(networkInterface)))
}

//export destroy_arm_client
func destroy_arm_client(h C.G1ArmHandle) {
	bridge().DestroyArm(armHandle(h))
}

//export init_arm_client
func init_arm_client(h C.G1ArmHandle) C.int {
	return C.int(bridge().ArmInit(armHandle(h)))
}

//export set_arm_timeout
func set_arm_timeout(h C.G1ArmHandle, timeout C.float) C.int {
	return C.int(bridge().ArmSetTimeout(armHandle(h), float32(timeout)))
}

//export execute_action
func execute_action(h C.G1ArmHandle, actionID C.int) C.int {
	return C.int(bridge().ExecuteAction(armHandle(h), int32(actionID)))
}

//export execute_action_by_name
func execute_action_by_name(h C.G1ArmHandle, name *C.char) C.int {
	var n string
	if name != nil {
		n = C.GoString(name)
	}
	return C.int(bridge().ExecuteActionByName(armHandle(h), n))
}

// get_action_list returns the SDK's action list. A non-NULL data must be
// released with free_string_result.
//
//export get_action_list
func get_action_list(h C.G1ArmHandle) C.StringResult {
	return stringResult(bridge().GetActionList(armHandle(h)))
}
