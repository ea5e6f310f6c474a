// Command libg1bridge builds the G1 bridge as a C shared library:
//
//	go build -buildmode=c-shared -tags g1sdk -o libg1bridge.so ./cmd/libg1bridge
//
// The generated libg1bridge.h declares the exported functions together with
// the IntResult, FloatResult and StringResult records from g1bridge.h.
// Configuration is read once, on first use, from G1_CONFIG, G1_ENV_FILE and
// G1_* variables.
package main

/*
#include <stdlib.h>
#include "g1bridge.h"
*/
import "C"

import (
	"context"
	"log/slog"
	"sync"
	"unsafe"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/gerri-robotics/g1bridge-go/internal/config"
	"github.com/gerri-robotics/g1bridge-go/internal/telemetry"
	"github.com/gerri-robotics/g1bridge-go/pkg/g1"
	"github.com/gerri-robotics/g1bridge-go/pkg/g1/logging"
	"github.com/gerri-robotics/g1bridge-go/pkg/g1/sim"
)

func main() {}

var lib struct {
	once   sync.Once
	bridge *g1.Bridge
	cfg    config.Config
}

// bridge returns the process-wide bridge, building it on first use.
func bridge() *g1.Bridge {
	lib.once.Do(func() { install(setup()) })
	return lib.bridge
}

func install(b *g1.Bridge, cfg config.Config) {
	lib.bridge = b
	lib.cfg = cfg
}

func setup() (*g1.Bridge, config.Config) {
	cfg, err := config.Load(config.FromEnv())
	if err != nil {
		slog.Error("g1bridge: falling back to default configuration", "err", err)
		cfg = config.Default()
	}

	log, _, err := logging.Open(cfg.LogOptions())
	if err != nil {
		slog.Error("g1bridge: falling back to default logger", "err", err)
		log = logging.New(nil)
	}
	log = log.With("component", "libg1bridge")

	var obs g1.Observer
	if cfg.MetricsAddr != "" {
		reg := prometheus.NewRegistry()
		obs = telemetry.NewMetrics(reg)
		go func() {
			if err := telemetry.Serve(context.Background(), cfg.MetricsAddr, reg, log); err != nil {
				log.Error(context.Background(), "metrics server stopped", "addr", cfg.MetricsAddr, "err", err)
			}
		}()
	}

	var (
		channel g1.ChannelFactory
		clients g1.ClientFactory
	)
	if cfg.Simulate {
		r := sim.New()
		channel, clients = r, r
		log.Warn(context.Background(), "using simulated robot")
	} else {
		sdk := g1.NativeSDK()
		channel, clients = sdk, sdk
	}

	log.Info(context.Background(), "bridge ready",
		"version", g1.BridgeVersion(), "sdk", g1.SDKVersion(), "interface", cfg.NetworkInterface)
	return g1.New(g1.Config{
		Channel:  channel,
		Clients:  clients,
		DomainID: cfg.DomainID,
		Logger:   log,
		Observer: obs,
	}), cfg
}

// iface returns the caller's interface name, or the configured one for NULL
// or empty input.
func iface(s *C.char) string {
	if s != nil {
		if v := C.GoString(s); v != "" {
			return v
		}
	}
	return lib.cfg.NetworkInterface
}

func cLoco(h g1.LocoHandle) C.G1LocoHandle { return C.G1LocoHandle{id: C.uintptr_t(h)} }

func locoHandle(h C.G1LocoHandle) g1.LocoHandle { return g1.LocoHandle(h.id) }

func cArm(h g1.ArmHandle) C.G1ArmHandle { return C.G1ArmHandle{id: C.uintptr_t(h)} }

func armHandle(h C.G1ArmHandle) g1.ArmHandle { return g1.ArmHandle(h.id) }

func intResult(r g1.IntResult) C.IntResult {
	return C.IntResult{code: C.int(r.Code), value: C.int(r.Value)}
}

func floatResult(r g1.FloatResult) C.FloatResult {
	return C.FloatResult{code: C.int(r.Code), value: C.float(r.Value)}
}

// copyOut copies n bytes from src into a NUL-terminated malloc'd buffer. It
// returns nil when the allocation fails.
var copyOut = func(src *byte, n int) unsafe.Pointer {
	return unsafe.Pointer(C.g1bridge_copy((*C.char)(unsafe.Pointer(src)), C.size_t(n)))
}

// stringResult copies the payload into C memory. A failed allocation leaves
// data NULL and keeps the code.
func stringResult(r g1.StringResult) C.StringResult {
	out := C.StringResult{code: C.int(r.Code)}
	if len(r.Data) > 0 {
		out.data = (*C.char)(copyOut(&r.Data[0], len(r.Data)))
	}
	return out
}

//export free_string_result
func free_string_result(r C.StringResult) {
	if r.data != nil {
		C.free(unsafe.Pointer(r.data))
	}
}

//export status_text
func status_text(code C.int) C.StringResult {
	text := g1.StatusText(int32(code))
	return stringResult(g1.StringResult{Code: g1.StatusOK, Data: []byte(text)})
}
