//go:build cgo && g1sdk

package bindings

/*
#cgo CXXFLAGS: -std=c++17 -I/opt/unitree_robotics/include -I/opt/unitree_robotics/include/ddscxx -Wno-deprecated-declarations
#cgo LDFLAGS: -L/opt/unitree_robotics/lib -lunitree_sdk2 -lddscxx -lddsc -lpthread -lstdc++
#include <stdlib.h>
#include "capi.h"
*/
import "C"

import (
	"unsafe"
)

// Loco is an owned unitree::robot::g1::LocoClient.
type Loco = *C.g1sdk_loco

// Arm is an owned unitree::robot::g1::G1ArmActionClient.
type Arm = *C.g1sdk_arm

// Linked reports whether unitree_sdk2 is linked into this binary.
func Linked() bool { return true }

// takeErr converts the shim's malloc'd error text and frees it.
func takeErr(op string, cerr *C.char) error {
	msg := ""
	if cerr != nil {
		msg = C.GoString(cerr)
		C.free(unsafe.Pointer(cerr))
	}
	return &NativeError{Op: op, Message: msg}
}

// ChannelInit calls ChannelFactory::Instance()->Init(domainID, iface).
func ChannelInit(domainID int32, iface string) error {
	ciface := C.CString(iface)
	defer C.free(unsafe.Pointer(ciface))

	var cerr *C.char
	if C.g1sdk_channel_init(C.int32_t(domainID), ciface, &cerr) != 0 {
		return takeErr("ChannelFactory.Init", cerr)
	}
	return nil
}

func NewLoco() (Loco, error) {
	var (
		out  *C.g1sdk_loco
		cerr *C.char
	)
	if C.g1sdk_loco_new(&out, &cerr) != 0 {
		return nil, takeErr("LocoClient", cerr)
	}
	return out, nil
}

func FreeLoco(l Loco) {
	if l == nil {
		return
	}
	C.g1sdk_loco_free(l)
}

// LocoCall invokes one LocoClient method selected by op.
func LocoCall(l Loco, op Op, a Args) (Ret, error) {
	if l == nil {
		return Ret{}, ErrNilClient
	}
	var (
		rc   C.int32_t
		iout C.int32_t
		fout C.float
		cerr *C.char
	)
	thrown := C.g1sdk_loco_call(l, C.int32_t(op), C.int32_t(a.Int),
		C.float(a.F[0]), C.float(a.F[1]), C.float(a.F[2]), C.float(a.F[3]),
		&rc, &iout, &fout, &cerr)
	if thrown != 0 {
		return Ret{}, takeErr(op.String(), cerr)
	}
	return Ret{Code: int32(rc), Int: int32(iout), Float: float32(fout)}, nil
}

func NewArm() (Arm, error) {
	var (
		out  *C.g1sdk_arm
		cerr *C.char
	)
	if C.g1sdk_arm_new(&out, &cerr) != 0 {
		return nil, takeErr("G1ArmActionClient", cerr)
	}
	return out, nil
}

func FreeArm(a Arm) {
	if a == nil {
		return
	}
	C.g1sdk_arm_free(a)
}

func ArmInit(a Arm) error {
	if a == nil {
		return ErrNilClient
	}
	var cerr *C.char
	if C.g1sdk_arm_init(a, &cerr) != 0 {
		return takeErr("Init", cerr)
	}
	return nil
}

func ArmSetTimeout(a Arm, seconds float32) error {
	if a == nil {
		return ErrNilClient
	}
	var cerr *C.char
	if C.g1sdk_arm_set_timeout(a, C.float(seconds), &cerr) != 0 {
		return takeErr("SetTimeout", cerr)
	}
	return nil
}

func ArmExecute(a Arm, actionID int32) (int32, error) {
	if a == nil {
		return 0, ErrNilClient
	}
	var (
		rc   C.int32_t
		cerr *C.char
	)
	if C.g1sdk_arm_execute(a, C.int32_t(actionID), &rc, &cerr) != 0 {
		return 0, takeErr("ExecuteAction", cerr)
	}
	return int32(rc), nil
}

// ArmActionList returns the SDK's action list text and return code. The
// shim's copy of the string is freed before returning.
func ArmActionList(a Arm) (string, int32, error) {
	if a == nil {
		return "", 0, ErrNilClient
	}
	var (
		rc   C.int32_t
		data *C.char
		cerr *C.char
	)
	if C.g1sdk_arm_action_list(a, &rc, &data, &cerr) != 0 {
		return "", 0, takeErr("GetActionList", cerr)
	}
	var out string
	if data != nil {
		out = C.GoString(data)
		C.free(unsafe.Pointer(data))
	}
	return out, int32(rc), nil
}
