package sim

import "github.com/gerri-robotics/g1bridge-go/pkg/g1"

// continuousDuration is the duration Move uses for continuous motion.
const continuousDuration float32 = 864000

type locoClient struct {
	client
}

var _ g1.LocoClient = (*locoClient)(nil)

func (c *locoClient) Init() error                      { return c.initialize() }
func (c *locoClient) SetTimeout(seconds float32) error { return c.setTimeout(seconds) }
func (c *locoClient) Close() error                     { return c.close() }

// get reads a value. Under an injected code the current value is still
// returned, as the SDK leaves its output parameter set.
func get[T int32 | float32](c *locoClient, method string, read func(s State) T) (T, int32, error) {
	var v T
	rc, err := c.invoke(method, func(s *State) int32 { v = read(*s); return g1.StatusOK })
	if err != nil {
		var zero T
		return zero, 0, err
	}
	if rc != g1.StatusOK {
		v = read(c.r.State())
	}
	return v, rc, nil
}

func (c *locoClient) GetFsmID() (int32, int32, error) {
	return get(c, "GetFsmID", func(s State) int32 { return s.FsmID })
}

func (c *locoClient) GetFsmMode() (int32, int32, error) {
	return get(c, "GetFsmMode", func(s State) int32 { return s.FsmMode })
}

func (c *locoClient) GetBalanceMode() (int32, int32, error) {
	return get(c, "GetBalanceMode", func(s State) int32 { return s.BalanceMode })
}

func (c *locoClient) GetSwingHeight() (float32, int32, error) {
	return get(c, "GetSwingHeight", func(s State) float32 { return s.SwingHeight })
}

func (c *locoClient) GetStandHeight() (float32, int32, error) {
	return get(c, "GetStandHeight", func(s State) float32 { return s.StandHeight })
}

func setFsm(id int32) func(*State) int32 {
	return func(s *State) int32 {
		s.FsmID = id
		return g1.StatusOK
	}
}

func (c *locoClient) SetFsmID(id int32) (int32, error) {
	return c.invoke("SetFsmID", setFsm(id), id)
}

func (c *locoClient) SetBalanceMode(mode int32) (int32, error) {
	return c.invoke("SetBalanceMode", func(s *State) int32 { s.BalanceMode = mode; return g1.StatusOK }, mode)
}

func (c *locoClient) SetSwingHeight(h float32) (int32, error) {
	return c.invoke("SetSwingHeight", func(s *State) int32 { s.SwingHeight = h; return g1.StatusOK }, h)
}

func (c *locoClient) SetStandHeight(h float32) (int32, error) {
	return c.invoke("SetStandHeight", func(s *State) int32 { s.StandHeight = h; return g1.StatusOK }, h)
}

func (c *locoClient) SetVelocity(vx, vy, omega, duration float32) (int32, error) {
	return c.invoke("SetVelocity", func(s *State) int32 {
		s.Velocity = Velocity{Vx: vx, Vy: vy, Omega: omega, Duration: duration}
		return g1.StatusOK
	}, vx, vy, omega, duration)
}

func (c *locoClient) SetTaskID(id int32) (int32, error) {
	return c.invoke("SetTaskID", func(s *State) int32 { s.TaskID = id; return g1.StatusOK }, id)
}

func (c *locoClient) SetSpeedMode(mode int32) (int32, error) {
	return c.invoke("SetSpeedMode", func(s *State) int32 { s.SpeedMode = mode; return g1.StatusOK }, mode)
}

func (c *locoClient) Damp() (int32, error)       { return c.invoke("Damp", setFsm(FsmDamp)) }
func (c *locoClient) Start() (int32, error)      { return c.invoke("Start", setFsm(FsmStart)) }
func (c *locoClient) StandUp() (int32, error)    { return c.invoke("StandUp", setFsm(FsmStandUp)) }
func (c *locoClient) Squat() (int32, error)      { return c.invoke("Squat", setFsm(FsmSquat)) }
func (c *locoClient) Sit() (int32, error)        { return c.invoke("Sit", setFsm(FsmSit)) }
func (c *locoClient) ZeroTorque() (int32, error) { return c.invoke("ZeroTorque", setFsm(FsmZeroTorque)) }

func (c *locoClient) StopMove() (int32, error) {
	return c.invoke("StopMove", func(s *State) int32 { s.Velocity = Velocity{}; return g1.StatusOK })
}

// HighStand and LowStand drive the stand height to its limits.
func (c *locoClient) HighStand() (int32, error) {
	return c.invoke("HighStand", func(s *State) int32 { s.StandHeight = 0.78; return g1.StatusOK })
}

func (c *locoClient) LowStand() (int32, error) {
	return c.invoke("LowStand", func(s *State) int32 { s.StandHeight = 0.58; return g1.StatusOK })
}

func (c *locoClient) BalanceStand() (int32, error) {
	return c.invoke("BalanceStand", func(s *State) int32 { s.BalanceMode = 0; return g1.StatusOK })
}

func (c *locoClient) ContinuousGait(on bool) (int32, error) {
	return c.invoke("ContinuousGait", func(s *State) int32 { s.BalanceMode = b2i(on); return g1.StatusOK }, on)
}

func (c *locoClient) SwitchMoveMode(on bool) (int32, error) {
	return c.invoke("SwitchMoveMode", func(s *State) int32 {
		if on {
			s.FsmID = FsmWalkRun
		} else {
			s.FsmID = FsmStart
		}
		return g1.StatusOK
	}, on)
}

// Move commands a velocity for one control tick, or indefinitely when
// continuous is set.
func (c *locoClient) Move(vx, vy, vyaw float32, continuous bool) (int32, error) {
	return c.invoke("Move", func(s *State) int32 {
		d := float32(1)
		if continuous {
			d = continuousDuration
		}
		s.Velocity = Velocity{Vx: vx, Vy: vy, Omega: vyaw, Duration: d}
		return g1.StatusOK
	}, vx, vy, vyaw, continuous)
}

func (c *locoClient) WaveHand(turn bool) (int32, error) {
	return c.invoke("WaveHand", func(s *State) int32 { s.TaskID = b2i(turn); return g1.StatusOK }, turn)
}

// ShakeHand alternates between the two handshake stages when stage is -1.
func (c *locoClient) ShakeHand(stage int32) (int32, error) {
	return c.invoke("ShakeHand", func(s *State) int32 {
		switch stage {
		case 0:
			s.TaskID = 2
		case 1:
			s.TaskID = 3
		case -1:
			if s.TaskID == 2 {
				s.TaskID = 3
			} else {
				s.TaskID = 2
			}
		default:
			return g1.CodeInvalidCommand
		}
		return g1.StatusOK
	}, stage)
}

func b2i(b bool) int32 {
	if b {
		return 1
	}
	return 0
}
