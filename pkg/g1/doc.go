// Package g1 is a handle-based bridge over the Unitree G1 locomotion and
// arm-action clients.
//
// The package is the pure-Go core behind the flat C ABI in cmd/libg1bridge
// and the g1ctl command. It owns three concerns:
//
//   - the Channel Gate, which initializes the shared DDS channel at most once
//     per process (only locomotion handle creation triggers it);
//   - two registries of opaque handles, LocoHandle and ArmHandle, each owning
//     one SDK client and, for locomotion, the cached continuous-move flag;
//   - the dispatch boundary, which turns SDK return codes, returned errors and
//     recovered panics into the fixed IntResult, FloatResult and StringResult
//     shapes.
//
// # Status codes
//
// Zero is success. StatusFailure (-1) reports an invalid handle or a failure
// caught at the boundary. Any other value is the SDK's own return code and is
// passed through unchanged; StatusText describes the codes known to the
// bridge.
//
// Five getters (GetFsmID, GetFsmMode, GetBalanceMode, GetSwingHeight and
// GetStandHeight) are best-effort reads: they report success whenever the
// handle is valid and nothing was thrown, even when the SDK call returned a
// non-zero code. The payload is whatever the SDK left in its output
// parameter.
//
// # Ordering
//
// An arm-action handle relies on the channel initialized by an earlier
// locomotion handle. Creating one first leaves the channel uninitialized;
// the bridge logs the hazard but does not initialize the channel itself.
//
// # Usage
//
//	b := g1.New(g1.Config{Channel: g1.NativeSDK(), Clients: g1.NativeSDK()})
//	loco := b.CreateLoco("eth0")
//	if loco == 0 {
//	    // channel init or client creation failed; see the logs
//	}
//	defer b.DestroyLoco(loco)
//	_ = b.LocoInit(loco)
//	code := b.SetVelocity(loco, 0.3, 0, 0, 2.0)
package g1
