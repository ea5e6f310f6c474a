package g1

import (
	"context"
	"fmt"

	"github.com/gerri-robotics/g1bridge-go/pkg/g1/logging"
)

// Config wires a Bridge to its collaborators.
type Config struct {
	// Channel initializes the shared channel. Required for CreateLoco.
	// Bridges given the same factory share its one-time init.
	Channel ChannelFactory

	// Clients constructs SDK clients. Required.
	Clients ClientFactory

	// DomainID is forwarded to ChannelFactory.Init. The G1 uses 0.
	DomainID int32

	// Logger receives diagnostics for every caught failure. Nil binds to
	// slog.Default().
	Logger logging.Logger

	// Observer receives dispatch and lifecycle events, e.g. for metrics.
	Observer Observer
}

// Observer is notified of bridge activity. Implementations must be safe for
// concurrent use and must not block.
type Observer interface {
	ObserveDispatch(kind HandleKind, op string, code int32, failed bool)
	ObserveHandles(kind HandleKind, delta int)
	ObserveChannelInit(err error)
}

type nopObserver struct{}

func (nopObserver) ObserveDispatch(HandleKind, string, int32, bool) {}
func (nopObserver) ObserveHandles(HandleKind, int)                  {}
func (nopObserver) ObserveChannelInit(error)                        {}

// Bridge owns the channel gate and both handle registries. All methods are
// synchronous and safe to call from multiple goroutines; operations on one
// handle are not ordered against each other.
type Bridge struct {
	gate    *Gate
	clients ClientFactory
	log     logging.Logger
	obs     Observer

	locos *registry[locoState]
	arms  *registry[armState]
}

// New builds a Bridge from cfg.
func New(cfg Config) *Bridge {
	log := cfg.Logger
	if log == nil {
		log = logging.New(nil)
	}
	obs := cfg.Observer
	if obs == nil {
		obs = nopObserver{}
	}
	return &Bridge{
		gate:    NewGate(cfg.Channel, cfg.DomainID, log.With("component", "gate"), obs),
		clients: cfg.Clients,
		log:     log,
		obs:     obs,
		locos:   newRegistry[locoState](),
		arms:    newRegistry[armState](),
	}
}

// Gate exposes the bridge's channel gate.
func (b *Bridge) Gate() *Gate { return b.gate }

// LiveHandles returns the number of live locomotion and arm handles.
func (b *Bridge) LiveHandles() (loco, arm int) {
	return b.locos.len(), b.arms.len()
}

// call is the dispatch boundary. It turns a returned error or a panic into
// StatusFailure, logs it, and reports the outcome to the observer.
func (b *Bridge) call(kind HandleKind, op string, fn func() (int32, error)) (code int32) {
	failed := false
	defer func() {
		if r := recover(); r != nil {
			b.log.Error(context.Background(), "dispatch panicked", "kind", kind, "op", op, "panic", fmt.Sprint(r))
			code, failed = StatusFailure, true
		}
		b.obs.ObserveDispatch(kind, op, code, failed)
	}()

	rc, err := fn()
	if err != nil {
		b.log.Error(context.Background(), "dispatch failed", "kind", kind, "op", op, "err", remapError(err))
		failed = true
		return StatusFailure
	}
	return rc
}

func (b *Bridge) invalidHandle(kind HandleKind, op string, h uintptr) int32 {
	b.log.Warn(context.Background(), "rejected call", "kind", kind, "op", op, "handle", h, "err", errInvalidHandle)
	b.obs.ObserveDispatch(kind, op, StatusFailure, true)
	return StatusFailure
}
