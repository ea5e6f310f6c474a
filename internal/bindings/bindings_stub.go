//go:build !cgo || !g1sdk

package bindings

import "unsafe"

// Stub implementations for builds without cgo or without the g1sdk tag.
// These allow the package to compile but return ErrNotBuilt when called.

type Loco = unsafe.Pointer

type Arm = unsafe.Pointer

func Linked() bool { return false }

func ChannelInit(int32, string) error { return ErrNotBuilt }

func NewLoco() (Loco, error) { return nil, ErrNotBuilt }

func FreeLoco(Loco) {}

func LocoCall(Loco, Op, Args) (Ret, error) { return Ret{}, ErrNotBuilt }

func NewArm() (Arm, error) { return nil, ErrNotBuilt }

func FreeArm(Arm) {}

func ArmInit(Arm) error { return ErrNotBuilt }

func ArmSetTimeout(Arm, float32) error { return ErrNotBuilt }

func ArmExecute(Arm, int32) (int32, error) { return 0, ErrNotBuilt }

func ArmActionList(Arm) (string, int32, error) { return "", 0, ErrNotBuilt }
