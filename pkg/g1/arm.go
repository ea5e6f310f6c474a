package g1

import "context"

// CreateArm creates an arm-action client. It never initializes the channel:
// the arm client relies on an earlier CreateLoco having done so. iface is
// recorded in logs only.
func (b *Bridge) CreateArm(iface string) ArmHandle {
	ctx := context.Background()
	if active, ok := b.gate.Initialized(); !ok {
		b.log.Warn(ctx, "arm client created before channel initialization; create a loco client first",
			"interface", iface)
	} else if active != iface {
		b.log.Debug(ctx, "arm client interface differs from channel", "active", active, "requested", iface)
	}
	if b.clients == nil {
		b.log.Error(ctx, "create arm client", "err", "no client factory configured")
		return 0
	}

	var client ArmActionClient
	err := guardErr(func() (err error) {
		client, err = b.clients.NewArmActionClient()
		return err
	})
	if err != nil {
		b.log.Error(ctx, "create arm client", "interface", iface, "err", remapError(err))
		return 0
	}

	h := ArmHandle(b.arms.put(&armState{client: client}))
	b.obs.ObserveHandles(KindArm, 1)
	b.log.Debug(ctx, "arm client created", "handle", uintptr(h))
	return h
}

// DestroyArm releases the client owned by h. The null handle and handles
// that were already destroyed are ignored.
func (b *Bridge) DestroyArm(h ArmHandle) {
	st, ok := b.arms.take(uintptr(h))
	if !ok {
		return
	}
	b.obs.ObserveHandles(KindArm, -1)
	if err := guardErr(st.client.Close); err != nil {
		b.log.Error(context.Background(), "destroy arm client", "handle", uintptr(h), "err", err)
	}
}

func (b *Bridge) arm(h ArmHandle, op string, fn func(*armState) (int32, error)) int32 {
	st, ok := b.arms.get(uintptr(h))
	if !ok {
		return b.invalidHandle(KindArm, op, uintptr(h))
	}
	return b.call(KindArm, op, func() (int32, error) { return fn(st) })
}

func (b *Bridge) ArmInit(h ArmHandle) int32 {
	return b.arm(h, "init_arm_client", func(s *armState) (int32, error) {
		return StatusOK, s.client.Init()
	})
}

func (b *Bridge) ArmSetTimeout(h ArmHandle, seconds float32) int32 {
	return b.arm(h, "set_arm_timeout", func(s *armState) (int32, error) {
		return StatusOK, s.client.SetTimeout(seconds)
	})
}

// ExecuteAction runs the numbered arm action and returns the SDK's code.
func (b *Bridge) ExecuteAction(h ArmHandle, actionID int32) int32 {
	return b.arm(h, "execute_action", func(s *armState) (int32, error) {
		return s.client.ExecuteAction(actionID)
	})
}

// ExecuteActionByName resolves name through the action catalog and runs it.
// Unknown names return StatusFailure without reaching the SDK.
func (b *Bridge) ExecuteActionByName(h ArmHandle, name string) int32 {
	id, err := ActionID(name)
	if err != nil {
		return b.arm(h, "execute_action_by_name", func(*armState) (int32, error) { return 0, err })
	}
	return b.arm(h, "execute_action_by_name", func(s *armState) (int32, error) {
		return s.client.ExecuteAction(id)
	})
}

// GetActionList returns the SDK's action list. Data is nil on failure and
// when the SDK succeeded with an empty list.
func (b *Bridge) GetActionList(h ArmHandle) StringResult {
	var list string
	code := b.arm(h, "get_action_list", func(s *armState) (int32, error) {
		l, rc, err := s.client.GetActionList()
		if err != nil {
			return StatusFailure, err
		}
		list = l
		return rc, nil
	})
	return stringResult(code, list)
}
