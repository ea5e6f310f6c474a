package sim

import (
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/gerri-robotics/g1bridge-go/pkg/g1"
)

// ErrClosed is returned by calls on a client after Close.
var ErrClosed = errors.New("sim: client closed")

// FSM ids the simulated convenience commands move between.
const (
	FsmZeroTorque int32 = 0
	FsmDamp       int32 = 1
	FsmSquat      int32 = 2
	FsmSit        int32 = 3
	FsmStandUp    int32 = 4
	FsmStart      int32 = 500
	FsmStart2     int32 = 501
	FsmWalkRun    int32 = 801
)

// Call is one recorded SDK invocation. Client is the id of the simulated
// client that received it; channel and factory calls use 0.
type Call struct {
	Client int
	Op     string
	Args   []any
}

// Velocity is the last commanded body velocity.
type Velocity struct {
	Vx, Vy, Omega, Duration float32
}

// State is a snapshot of the simulated robot.
type State struct {
	FsmID       int32
	FsmMode     int32
	BalanceMode int32
	SwingHeight float32
	StandHeight float32
	SpeedMode   int32
	TaskID      int32
	Velocity    Velocity
	Channel     string
}

type faultKind int

const (
	faultCode faultKind = iota
	faultErr
	faultPanic
)

type fault struct {
	kind faultKind
	code int32
	err  error
}

// Robot is a simulated G1. It is safe for concurrent use.
type Robot struct {
	mu sync.Mutex

	state      State
	channelUp  bool
	inits      int
	interfaces map[string]bool

	actions []g1.Action
	calls   []Call
	faults  map[string]fault
	nextID  int
}

// Option configures a Robot.
type Option func(*Robot)

// WithInterfaces restricts channel initialization to the named interfaces.
// By default any non-empty name is accepted.
func WithInterfaces(names ...string) Option {
	return func(r *Robot) {
		r.interfaces = make(map[string]bool, len(names))
		for _, n := range names {
			r.interfaces[n] = true
		}
	}
}

// WithActions configures the actions reported by GetActionList.
func WithActions(actions ...g1.Action) Option {
	return func(r *Robot) { r.actions = append([]g1.Action(nil), actions...) }
}

// WithState sets the initial robot state.
func WithState(s State) Option {
	return func(r *Robot) { r.state = s }
}

// New returns a robot in the damped state with no configured actions.
func New(opts ...Option) *Robot {
	r := &Robot{
		state: State{
			FsmID:       FsmDamp,
			SwingHeight: 0.08,
			StandHeight: 0.75,
		},
		faults: make(map[string]fault),
	}
	for _, o := range opts {
		o(r)
	}
	return r
}

// FailWith makes op return code without touching state.
func (r *Robot) FailWith(op string, code int32) { r.setFault(op, fault{kind: faultCode, code: code}) }

// Throw makes op fail with err, as a native exception would.
func (r *Robot) Throw(op string, err error) { r.setFault(op, fault{kind: faultErr, err: err}) }

// Panic makes op panic.
func (r *Robot) Panic(op string) { r.setFault(op, fault{kind: faultPanic}) }

// Clear removes any fault injected for op.
func (r *Robot) Clear(op string) {
	r.mu.Lock()
	delete(r.faults, op)
	r.mu.Unlock()
}

func (r *Robot) setFault(op string, f fault) {
	r.mu.Lock()
	r.faults[op] = f
	r.mu.Unlock()
}

// Calls returns the recorded calls, filtered to ops when any are given.
func (r *Robot) Calls(ops ...string) []Call {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(ops) == 0 {
		return append([]Call(nil), r.calls...)
	}
	want := make(map[string]bool, len(ops))
	for _, op := range ops {
		want[op] = true
	}
	var out []Call
	for _, c := range r.calls {
		if want[c.Op] {
			out = append(out, c)
		}
	}
	return out
}

// ResetCalls clears the call log.
func (r *Robot) ResetCalls() {
	r.mu.Lock()
	r.calls = nil
	r.mu.Unlock()
}

// State returns a snapshot of the robot state.
func (r *Robot) State() State {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state
}

// ChannelInits reports how many times the channel was initialized
// successfully.
func (r *Robot) ChannelInits() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.inits
}

// enter records the call and returns the injected fault for op, if any.
// Injected panics fire here, outside the lock.
func (r *Robot) enter(client int, op string, args ...any) (fault, bool) {
	r.mu.Lock()
	r.calls = append(r.calls, Call{Client: client, Op: op, Args: args})
	f, ok := r.faults[op]
	r.mu.Unlock()
	if ok && f.kind == faultPanic {
		panic(fmt.Sprintf("sim: injected panic in %s", op))
	}
	return f, ok
}

// Init implements g1.ChannelFactory.
func (r *Robot) Init(domainID int32, networkInterface string) error {
	if f, ok := r.enter(0, "channel.Init", domainID, networkInterface); ok {
		if f.kind == faultErr {
			return f.err
		}
		return fmt.Errorf("sim: channel init returned %d", f.code)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if networkInterface == "" {
		return errors.New("sim: empty network interface")
	}
	if r.interfaces != nil && !r.interfaces[networkInterface] {
		return fmt.Errorf("sim: no such network interface %q", networkInterface)
	}
	if r.channelUp {
		return errors.New("sim: channel factory initialized twice")
	}
	r.channelUp = true
	r.inits++
	r.state.Channel = networkInterface
	return nil
}

func (r *Robot) newClient(op string) (int, error) {
	if f, ok := r.enter(0, op); ok {
		if f.kind == faultErr {
			return 0, f.err
		}
		return 0, fmt.Errorf("sim: %s returned %d", op, f.code)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	return r.nextID, nil
}

// NewLocoClient implements g1.ClientFactory.
func (r *Robot) NewLocoClient() (g1.LocoClient, error) {
	id, err := r.newClient("factory.NewLocoClient")
	if err != nil {
		return nil, err
	}
	return &locoClient{client: client{r: r, id: id, kind: "loco"}}, nil
}

// NewArmActionClient implements g1.ClientFactory.
func (r *Robot) NewArmActionClient() (g1.ArmActionClient, error) {
	id, err := r.newClient("factory.NewArmActionClient")
	if err != nil {
		return nil, err
	}
	return &armClient{client: client{r: r, id: id, kind: "arm"}}, nil
}

// client holds what both simulated clients share.
type client struct {
	r      *Robot
	id     int
	kind   string
	inited bool
	closed bool
}

// invoke records the call, applies any fault, and otherwise runs apply under
// the robot lock. Commands issued before Init or without a channel time out.
func (c *client) invoke(method string, apply func(s *State) int32, args ...any) (int32, error) {
	op := c.kind + "." + method
	if f, ok := c.r.enter(c.id, op, args...); ok {
		if f.kind == faultErr {
			return 0, f.err
		}
		return f.code, nil
	}

	c.r.mu.Lock()
	defer c.r.mu.Unlock()
	if c.closed {
		return 0, ErrClosed
	}
	if !c.inited || !c.r.channelUp {
		return g1.CodeCommunicationTimeout, nil
	}
	return apply(&c.r.state), nil
}

func (c *client) initialize() error {
	return codeErr("Init", func() (int32, error) {
		return c.lifecycle("Init", func() { c.inited = true })
	})
}

func (c *client) setTimeout(seconds float32) error {
	return codeErr("SetTimeout", func() (int32, error) {
		return c.lifecycle("SetTimeout", func() {}, seconds)
	})
}

// codeErr folds an injected code into an error for methods that return none.
func codeErr(method string, fn func() (int32, error)) error {
	rc, err := fn()
	if err != nil {
		return err
	}
	if rc != g1.StatusOK {
		return fmt.Errorf("sim: %s returned %d", method, rc)
	}
	return nil
}

func (c *client) lifecycle(method string, apply func(), args ...any) (int32, error) {
	op := c.kind + "." + method
	if f, ok := c.r.enter(c.id, op, args...); ok {
		if f.kind == faultErr {
			return 0, f.err
		}
		return f.code, nil
	}
	c.r.mu.Lock()
	defer c.r.mu.Unlock()
	if c.closed {
		return 0, ErrClosed
	}
	apply()
	return g1.StatusOK, nil
}

func (c *client) close() error {
	c.r.enter(c.id, c.kind+".Close")
	c.r.mu.Lock()
	defer c.r.mu.Unlock()
	c.closed = true
	return nil
}

func (r *Robot) actionListJSON() (string, error) {
	if len(r.actions) == 0 {
		return "", nil
	}
	b, err := json.Marshal(r.actions)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
