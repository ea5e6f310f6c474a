package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/gerri-robotics/g1bridge-go/pkg/g1"
)

func newLocoCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "loco",
		Short: "Locomotion commands",
	}
	cmd.AddCommand(
		newLocoGetCmd(a),
		newLocoSetCmd(a),
		newVelocityCmd(a),
		newMoveCmd(a),
		newGaitCmd(a),
		newWaveHandCmd(a),
		newShakeHandCmd(a),
	)

	actions := []struct {
		use, short string
		do         func(*g1.Bridge, g1.LocoHandle) int32
	}{
		{"damp", "Enter damping mode", (*g1.Bridge).Damp},
		{"start", "Start the locomotion controller", (*g1.Bridge).Start},
		{"stand-up", "Stand up", (*g1.Bridge).StandUp},
		{"squat", "Squat", (*g1.Bridge).Squat},
		{"sit", "Sit down", (*g1.Bridge).Sit},
		{"zero-torque", "Release all joints", (*g1.Bridge).ZeroTorque},
		{"stop-move", "Stop moving", (*g1.Bridge).StopMove},
		{"high-stand", "Stand at maximum height", (*g1.Bridge).HighStand},
		{"low-stand", "Stand at minimum height", (*g1.Bridge).LowStand},
		{"balance-stand", "Balanced standing", (*g1.Bridge).BalanceStand},
	}
	for _, act := range actions {
		cmd.AddCommand(&cobra.Command{
			Use:   act.use,
			Short: act.short,
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return a.withLoco(cmd, func(h g1.LocoHandle) error {
					return check(cmd.OutOrStdout(), act.use, act.do(a.bridge, h))
				})
			},
		})
	}
	return cmd
}

func newLocoGetCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:       "get [fsm-id|fsm-mode|balance-mode|swing-height|stand-height]",
		Short:     "Read locomotion state (all fields when none is named)",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{"fsm-id", "fsm-mode", "balance-mode", "swing-height", "stand-height"},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withLoco(cmd, func(h g1.LocoHandle) error {
				b := a.bridge
				fields := []struct {
					name string
					read func() (string, int32)
				}{
					{"fsm-id", func() (string, int32) { r := b.GetFsmID(h); return strconv.Itoa(int(r.Value)), r.Code }},
					{"fsm-mode", func() (string, int32) { r := b.GetFsmMode(h); return strconv.Itoa(int(r.Value)), r.Code }},
					{"balance-mode", func() (string, int32) { r := b.GetBalanceMode(h); return strconv.Itoa(int(r.Value)), r.Code }},
					{"swing-height", func() (string, int32) { r := b.GetSwingHeight(h); return formatFloat(r.Value), r.Code }},
					{"stand-height", func() (string, int32) { r := b.GetStandHeight(h); return formatFloat(r.Value), r.Code }},
				}
				found := false
				for _, f := range fields {
					if len(args) == 1 && args[0] != f.name {
						continue
					}
					found = true
					v, code := f.read()
					if code != g1.StatusOK {
						return check(cmd.OutOrStdout(), f.name, code)
					}
					fmt.Fprintf(cmd.OutOrStdout(), "%s=%s\n", f.name, v)
				}
				if !found {
					return fmt.Errorf("unknown field %q", args[0])
				}
				return nil
			})
		},
	}
}

func newLocoSetCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "set <fsm-id|balance-mode|swing-height|stand-height|task-id|speed-mode> <value>",
		Short: "Write one locomotion parameter",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, raw := args[0], args[1]
			var set func(b *g1.Bridge, h g1.LocoHandle) int32
			switch name {
			case "fsm-id", "balance-mode", "task-id", "speed-mode":
				v, err := strconv.ParseInt(raw, 10, 32)
				if err != nil {
					return fmt.Errorf("%s: %w", name, err)
				}
				n := int32(v)
				set = map[string]func(*g1.Bridge, g1.LocoHandle) int32{
					"fsm-id":       func(b *g1.Bridge, h g1.LocoHandle) int32 { return b.SetFsmID(h, n) },
					"balance-mode": func(b *g1.Bridge, h g1.LocoHandle) int32 { return b.SetBalanceMode(h, n) },
					"task-id":      func(b *g1.Bridge, h g1.LocoHandle) int32 { return b.SetTaskID(h, n) },
					"speed-mode":   func(b *g1.Bridge, h g1.LocoHandle) int32 { return b.SetSpeedMode(h, n) },
				}[name]
			case "swing-height", "stand-height":
				f, err := parseFloat(raw)
				if err != nil {
					return fmt.Errorf("%s: %w", name, err)
				}
				if name == "swing-height" {
					set = func(b *g1.Bridge, h g1.LocoHandle) int32 { return b.SetSwingHeight(h, f) }
				} else {
					set = func(b *g1.Bridge, h g1.LocoHandle) int32 { return b.SetStandHeight(h, f) }
				}
			default:
				return fmt.Errorf("unknown parameter %q", name)
			}
			return a.withLoco(cmd, func(h g1.LocoHandle) error {
				return check(cmd.OutOrStdout(), "set "+name, set(a.bridge, h))
			})
		},
	}
}

func newVelocityCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "velocity <vx> <vy> <omega> <duration>",
		Short: "Command a body velocity for a duration in seconds",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := parseFloats(args)
			if err != nil {
				return err
			}
			return a.withLoco(cmd, func(h g1.LocoHandle) error {
				return check(cmd.OutOrStdout(), "velocity", a.bridge.SetVelocity(h, v[0], v[1], v[2], v[3]))
			})
		},
	}
}

func newMoveCmd(a *app) *cobra.Command {
	var continuous bool
	cmd := &cobra.Command{
		Use:   "move <vx> <vy> <vyaw>",
		Short: "Move with a velocity",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := parseFloats(args)
			if err != nil {
				return err
			}
			return a.withLoco(cmd, func(h g1.LocoHandle) error {
				if err := check(cmd.OutOrStdout(), "move mode", a.bridge.SwitchMoveMode(h, continuous)); err != nil {
					return err
				}
				return check(cmd.OutOrStdout(), "move", a.bridge.Move(h, v[0], v[1], v[2]))
			})
		},
	}
	cmd.Flags().BoolVar(&continuous, "continuous", false, "keep moving until stop-move")
	return cmd
}

func newGaitCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:       "gait <on|off>",
		Short:     "Toggle continuous gait",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"on", "off"},
		RunE: func(cmd *cobra.Command, args []string) error {
			on, err := parseSwitch(args[0])
			if err != nil {
				return err
			}
			return a.withLoco(cmd, func(h g1.LocoHandle) error {
				return check(cmd.OutOrStdout(), "gait", a.bridge.ContinuousGait(h, on))
			})
		},
	}
}

func newWaveHandCmd(a *app) *cobra.Command {
	var turn bool
	cmd := &cobra.Command{
		Use:   "wave-hand",
		Short: "Wave a hand",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.withLoco(cmd, func(h g1.LocoHandle) error {
				return check(cmd.OutOrStdout(), "wave-hand", a.bridge.WaveHand(h, turn))
			})
		},
	}
	cmd.Flags().BoolVar(&turn, "turn", false, "turn around while waving")
	return cmd
}

func newShakeHandCmd(a *app) *cobra.Command {
	var stage int32
	cmd := &cobra.Command{
		Use:   "shake-hand",
		Short: "Run one handshake stage",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.withLoco(cmd, func(h g1.LocoHandle) error {
				return check(cmd.OutOrStdout(), "shake-hand", a.bridge.ShakeHand(h, stage))
			})
		},
	}
	cmd.Flags().Int32Var(&stage, "stage", -1, "handshake stage (0 extend, 1 withdraw, -1 next)")
	return cmd
}

func parseFloat(s string) (float32, error) {
	f, err := strconv.ParseFloat(s, 32)
	return float32(f), err
}

func parseFloats(args []string) ([]float32, error) {
	out := make([]float32, len(args))
	for i, s := range args {
		f, err := parseFloat(s)
		if err != nil {
			return nil, fmt.Errorf("argument %d: %w", i+1, err)
		}
		out[i] = f
	}
	return out, nil
}

func parseSwitch(s string) (bool, error) {
	switch s {
	case "on", "1", "true":
		return true, nil
	case "off", "0", "false":
		return false, nil
	}
	return false, fmt.Errorf("expected on or off, got %q", s)
}

func formatFloat(f float32) string {
	return strconv.FormatFloat(float64(f), 'f', -1, 32)
}
