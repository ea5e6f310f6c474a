package g1

import "context"

// CreateLoco initializes the shared channel on iface if no earlier call did,
// then creates a locomotion client. It returns the null handle when either
// step fails. The client must be initialized with LocoInit before use.
func (b *Bridge) CreateLoco(iface string) LocoHandle {
	ctx := context.Background()
	if err := b.gate.Ensure(ctx, iface); err != nil {
		b.log.Error(ctx, "create loco client", "interface", iface, "err", err)
		return 0
	}
	if b.clients == nil {
		b.log.Error(ctx, "create loco client", "err", "no client factory configured")
		return 0
	}

	var client LocoClient
	err := guardErr(func() (err error) {
		client, err = b.clients.NewLocoClient()
		return err
	})
	if err != nil {
		b.log.Error(ctx, "create loco client", "interface", iface, "err", remapError(err))
		return 0
	}

	h := LocoHandle(b.locos.put(&locoState{client: client}))
	b.obs.ObserveHandles(KindLoco, 1)
	b.log.Debug(ctx, "loco client created", "handle", uintptr(h))
	return h
}

// DestroyLoco releases the client owned by h. The null handle and handles
// that were already destroyed are ignored.
func (b *Bridge) DestroyLoco(h LocoHandle) {
	st, ok := b.locos.take(uintptr(h))
	if !ok {
		return
	}
	b.obs.ObserveHandles(KindLoco, -1)
	if err := guardErr(st.client.Close); err != nil {
		b.log.Error(context.Background(), "destroy loco client", "handle", uintptr(h), "err", err)
	}
}

func (b *Bridge) loco(h LocoHandle, op string, fn func(*locoState) (int32, error)) int32 {
	st, ok := b.locos.get(uintptr(h))
	if !ok {
		return b.invalidHandle(KindLoco, op, uintptr(h))
	}
	return b.call(KindLoco, op, func() (int32, error) { return fn(st) })
}

// bestEffort runs a getter whose SDK status is deliberately discarded: the
// result reports success whenever the handle is valid and nothing failed.
func bestEffort[T int32 | float32](b *Bridge, h LocoHandle, op string, get func(LocoClient) (T, int32, error)) (int32, T) {
	var value T
	code := b.loco(h, op, func(s *locoState) (int32, error) {
		v, _, err := get(s.client)
		if err != nil {
			return StatusFailure, err
		}
		value = v
		return StatusOK, nil
	})
	if code != StatusOK {
		var zero T
		return code, zero
	}
	return code, value
}

// LocoInit binds the client to the channel. Required before any command.
func (b *Bridge) LocoInit(h LocoHandle) int32 {
	return b.loco(h, "init_loco_client", func(s *locoState) (int32, error) {
		return StatusOK, s.client.Init()
	})
}

// LocoSetTimeout forwards the request timeout in seconds to the client.
func (b *Bridge) LocoSetTimeout(h LocoHandle, seconds float32) int32 {
	return b.loco(h, "set_timeout", func(s *locoState) (int32, error) {
		return StatusOK, s.client.SetTimeout(seconds)
	})
}

// GetFsmID is a best-effort read of the current FSM id.
func (b *Bridge) GetFsmID(h LocoHandle) IntResult {
	code, v := bestEffort(b, h, "get_fsm_id", LocoClient.GetFsmID)
	return IntResult{Code: code, Value: v}
}

// GetFsmMode is a best-effort read of the current FSM mode.
func (b *Bridge) GetFsmMode(h LocoHandle) IntResult {
	code, v := bestEffort(b, h, "get_fsm_mode", LocoClient.GetFsmMode)
	return IntResult{Code: code, Value: v}
}

// GetBalanceMode is a best-effort read of the balance mode.
func (b *Bridge) GetBalanceMode(h LocoHandle) IntResult {
	code, v := bestEffort(b, h, "get_balance_mode", LocoClient.GetBalanceMode)
	return IntResult{Code: code, Value: v}
}

// GetSwingHeight is a best-effort read of the swing height.
func (b *Bridge) GetSwingHeight(h LocoHandle) FloatResult {
	code, v := bestEffort(b, h, "get_swing_height", LocoClient.GetSwingHeight)
	return FloatResult{Code: code, Value: v}
}

// GetStandHeight is a best-effort read of the stand height.
func (b *Bridge) GetStandHeight(h LocoHandle) FloatResult {
	code, v := bestEffort(b, h, "get_stand_height", LocoClient.GetStandHeight)
	return FloatResult{Code: code, Value: v}
}

func (b *Bridge) SetFsmID(h LocoHandle, id int32) int32 {
	return b.loco(h, "set_fsm_id", func(s *locoState) (int32, error) { return s.client.SetFsmID(id) })
}

func (b *Bridge) SetBalanceMode(h LocoHandle, mode int32) int32 {
	return b.loco(h, "set_balance_mode", func(s *locoState) (int32, error) { return s.client.SetBalanceMode(mode) })
}

func (b *Bridge) SetSwingHeight(h LocoHandle, height float32) int32 {
	return b.loco(h, "set_swing_height", func(s *locoState) (int32, error) { return s.client.SetSwingHeight(height) })
}

func (b *Bridge) SetStandHeight(h LocoHandle, height float32) int32 {
	return b.loco(h, "set_stand_height", func(s *locoState) (int32, error) { return s.client.SetStandHeight(height) })
}

// SetVelocity commands a body velocity for duration seconds.
func (b *Bridge) SetVelocity(h LocoHandle, vx, vy, omega, duration float32) int32 {
	return b.loco(h, "set_velocity", func(s *locoState) (int32, error) {
		return s.client.SetVelocity(vx, vy, omega, duration)
	})
}

func (b *Bridge) SetTaskID(h LocoHandle, id int32) int32 {
	return b.loco(h, "set_task_id", func(s *locoState) (int32, error) { return s.client.SetTaskID(id) })
}

func (b *Bridge) SetSpeedMode(h LocoHandle, mode int32) int32 {
	return b.loco(h, "set_speed_mode", func(s *locoState) (int32, error) { return s.client.SetSpeedMode(mode) })
}

func (b *Bridge) Damp(h LocoHandle) int32 {
	return b.loco(h, "damp", func(s *locoState) (int32, error) { return s.client.Damp() })
}

func (b *Bridge) Start(h LocoHandle) int32 {
	return b.loco(h, "start_robot", func(s *locoState) (int32, error) { return s.client.Start() })
}

func (b *Bridge) StandUp(h LocoHandle) int32 {
	return b.loco(h, "stand_up", func(s *locoState) (int32, error) { return s.client.StandUp() })
}

func (b *Bridge) Squat(h LocoHandle) int32 {
	return b.loco(h, "squat", func(s *locoState) (int32, error) { return s.client.Squat() })
}

func (b *Bridge) Sit(h LocoHandle) int32 {
	return b.loco(h, "sit", func(s *locoState) (int32, error) { return s.client.Sit() })
}

func (b *Bridge) ZeroTorque(h LocoHandle) int32 {
	return b.loco(h, "zero_torque", func(s *locoState) (int32, error) { return s.client.ZeroTorque() })
}

func (b *Bridge) StopMove(h LocoHandle) int32 {
	return b.loco(h, "stop_move", func(s *locoState) (int32, error) { return s.client.StopMove() })
}

func (b *Bridge) HighStand(h LocoHandle) int32 {
	return b.loco(h, "high_stand", func(s *locoState) (int32, error) { return s.client.HighStand() })
}

func (b *Bridge) LowStand(h LocoHandle) int32 {
	return b.loco(h, "low_stand", func(s *locoState) (int32, error) { return s.client.LowStand() })
}

func (b *Bridge) BalanceStand(h LocoHandle) int32 {
	return b.loco(h, "balance_stand", func(s *locoState) (int32, error) { return s.client.BalanceStand() })
}

func (b *Bridge) ContinuousGait(h LocoHandle, on bool) int32 {
	return b.loco(h, "continuous_gait", func(s *locoState) (int32, error) { return s.client.ContinuousGait(on) })
}

// SwitchMoveMode records on as the handle's continuous-move flag, then
// forwards the switch. The flag is kept even if the SDK rejects the switch;
// it only affects Move calls issued after this one.
func (b *Bridge) SwitchMoveMode(h LocoHandle, on bool) int32 {
	return b.loco(h, "switch_move_mode", func(s *locoState) (int32, error) {
		s.continuousMove.Store(on)
		return s.client.SwitchMoveMode(on)
	})
}

// Move commands a velocity, passing the handle's continuous-move flag as
// the continuity argument.
func (b *Bridge) Move(h LocoHandle, vx, vy, vyaw float32) int32 {
	return b.loco(h, "move_robot", func(s *locoState) (int32, error) {
		return s.client.Move(vx, vy, vyaw, s.continuousMove.Load())
	})
}

func (b *Bridge) WaveHand(h LocoHandle, turn bool) int32 {
	return b.loco(h, "wave_hand", func(s *locoState) (int32, error) { return s.client.WaveHand(turn) })
}

// ShakeHand runs one stage of the handshake; -1 lets the SDK pick the next.
func (b *Bridge) ShakeHand(h LocoHandle, stage int32) int32 {
	return b.loco(h, "shake_hand", func(s *locoState) (int32, error) { return s.client.ShakeHand(stage) })
}
