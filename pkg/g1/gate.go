package g1

import (
	"context"
	"fmt"
	"reflect"
	"sync"

	"github.com/gerri-robotics/g1bridge-go/pkg/g1/logging"
)

// channelState is the init state of one ChannelFactory. It lives for the
// whole process, so every Gate over the same factory shares it.
type channelState struct {
	mu    sync.Mutex
	done  bool
	iface string
}

var channels = struct {
	sync.Mutex
	m map[ChannelFactory]*channelState
}{m: make(map[ChannelFactory]*channelState)}

// channelFor returns the process-wide state for factory. Factories that
// cannot be used as map keys get a private state.
func channelFor(factory ChannelFactory) *channelState {
	if factory == nil || !reflect.ValueOf(factory).Comparable() {
		return &channelState{}
	}
	channels.Lock()
	defer channels.Unlock()
	st, ok := channels.m[factory]
	if !ok {
		st = &channelState{}
		channels.m[factory] = st
	}
	return st
}

// Gate runs channel initialization at most once per factory and process:
// gates built over equal factories, including every NativeSDK value, share
// one init. Concurrent first use is serialized; the loser observes the
// winner's result.
type Gate struct {
	ch       *channelState
	factory  ChannelFactory
	domainID int32
	log      logging.Logger
	obs      Observer
}

// NewGate returns a gate over factory. A nil logger binds to slog.Default and
// a nil observer discards events.
func NewGate(factory ChannelFactory, domainID int32, log logging.Logger, obs Observer) *Gate {
	if log == nil {
		log = logging.New(nil)
	}
	if obs == nil {
		obs = nopObserver{}
	}
	return &Gate{ch: channelFor(factory), factory: factory, domainID: domainID, log: log, obs: obs}
}

// Ensure initializes the channel on iface unless that already happened. A
// failed attempt is not remembered, so a later call may retry. Once the
// channel is up, requests for another interface are ignored with a warning.
func (g *Gate) Ensure(ctx context.Context, iface string) error {
	g.ch.mu.Lock()
	defer g.ch.mu.Unlock()

	if g.ch.done {
		if iface != g.ch.iface {
			g.log.Warn(ctx, "channel already initialized; ignoring interface",
				"active", g.ch.iface, "requested", iface)
		}
		return nil
	}
	if g.factory == nil {
		return fmt.Errorf("g1: no channel factory configured")
	}

	g.log.Info(ctx, "initializing channel", "interface", iface, "domain_id", g.domainID)
	err := guardErr(func() error { return g.factory.Init(g.domainID, iface) })
	g.obs.ObserveChannelInit(err)
	if err != nil {
		return fmt.Errorf("g1: channel init on %q: %w", iface, remapError(err))
	}
	g.ch.done = true
	g.ch.iface = iface
	g.log.Info(ctx, "channel initialized", "interface", iface)
	return nil
}

// Initialized reports whether the channel is up and on which interface.
func (g *Gate) Initialized() (string, bool) {
	g.ch.mu.Lock()
	defer g.ch.mu.Unlock()
	return g.ch.iface, g.ch.done
}

// guardErr runs fn and converts a panic into an error.
func guardErr(fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	return fn()
}
