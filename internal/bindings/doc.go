// Package bindings contains all cgo bindings to the unitree_sdk2 C++ library.
//
// # Design Principles
//
// 1. Isolation: ALL cgo code that talks to the SDK lives in this package. The
//    only other package importing "C" is cmd/libg1bridge, which exports the
//    flat C ABI.
//
// 2. Minimal Surface: the C++ shim (capi.h, capi.cpp) exposes one dispatcher
//    for LocoClient methods and four functions for the arm-action client.
//
// 3. Error Handling: every C++ exception is caught inside the shim and
//    returned as a *NativeError. Nothing unwinds through cgo.
//
// 4. Memory Management: SDK clients are C++ heap objects owned by the caller
//    of NewLoco/NewArm and released with FreeLoco/FreeArm. Strings produced by
//    the shim are copied into Go memory and freed immediately.
//
// # Build
//
// The real implementation requires cgo and the g1sdk build tag:
//
//	CGO_ENABLED=1 go build -tags g1sdk ./...
//
// Without the tag every function returns ErrNotBuilt so the rest of the
// repository compiles and tests on machines without the SDK.
//
// # Threading
//
// ChannelFactory::Init is not safe to call twice; callers serialize it (see
// g1.Gate). Individual clients are not synchronized here.
package bindings
