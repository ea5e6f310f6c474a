package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/gerri-robotics/g1bridge-go/internal/config"
	"github.com/gerri-robotics/g1bridge-go/pkg/g1"
	"github.com/gerri-robotics/g1bridge-go/pkg/g1/logging"
	"github.com/gerri-robotics/g1bridge-go/pkg/g1/sim"
)

// app carries global flags and the bridge shared by subcommands.
type app struct {
	configFile string
	envFile    string
	iface      string
	simulate   bool

	cfg    config.Config
	bridge *g1.Bridge
	robot  *sim.Robot
	closer io.Closer
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:           "g1ctl",
		Short:         "Control a Unitree G1 through the g1 bridge",
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}
	root.PersistentFlags().StringVarP(&a.configFile, "config", "c", "", "YAML configuration file")
	root.PersistentFlags().StringVarP(&a.envFile, "env-file", "e", "", "environment file")
	root.PersistentFlags().StringVarP(&a.iface, "iface", "i", "", "network interface (overrides configuration)")
	root.PersistentFlags().BoolVar(&a.simulate, "sim", false, "use the simulated robot")

	root.AddCommand(
		newVersionCmd(),
		newStatusCmd(),
		newLocoCmd(a),
		newArmCmd(a),
	)
	return root
}

// open loads configuration and builds the bridge. Subcommands that talk to
// the robot call it first.
func (a *app) open(cmd *cobra.Command) error {
	if a.bridge != nil {
		return nil
	}
	src := config.FromEnv()
	if a.configFile != "" {
		src.File = a.configFile
	}
	if a.envFile != "" {
		src.EnvFile = a.envFile
	}
	cfg, err := config.Load(src)
	if err != nil {
		return err
	}
	if a.iface != "" {
		cfg.NetworkInterface = a.iface
	}
	if a.simulate {
		cfg.Simulate = true
	}

	opts := cfg.LogOptions()
	opts.Writer = cmd.ErrOrStderr()
	log, closer, err := logging.Open(opts)
	if err != nil {
		return err
	}

	var (
		channel g1.ChannelFactory
		clients g1.ClientFactory
	)
	if cfg.Simulate {
		a.robot = sim.New(sim.WithActions(g1.Actions()...))
		channel, clients = a.robot, a.robot
	} else {
		sdk := g1.NativeSDK()
		channel, clients = sdk, sdk
	}
	a.cfg = cfg
	a.closer = closer
	a.bridge = g1.New(g1.Config{Channel: channel, Clients: clients, DomainID: cfg.DomainID, Logger: log})
	return nil
}

func (a *app) close() {
	if a.closer != nil {
		_ = a.closer.Close()
	}
}

// withLoco runs fn with an initialized locomotion handle.
func (a *app) withLoco(cmd *cobra.Command, fn func(h g1.LocoHandle) error) error {
	if err := a.open(cmd); err != nil {
		return err
	}
	defer a.close()

	h := a.bridge.CreateLoco(a.cfg.NetworkInterface)
	if h == 0 {
		return fmt.Errorf("create loco client on %s failed", a.cfg.NetworkInterface)
	}
	defer a.bridge.DestroyLoco(h)
	if err := check(cmd.OutOrStdout(), "init", a.bridge.LocoInit(h)); err != nil {
		return err
	}
	if err := check(cmd.OutOrStdout(), "set timeout", a.bridge.LocoSetTimeout(h, a.cfg.LocoTimeout)); err != nil {
		return err
	}
	return fn(h)
}

// withArm runs fn with an initialized arm handle. A loco handle is created
// first so the channel is up.
func (a *app) withArm(cmd *cobra.Command, fn func(h g1.ArmHandle) error) error {
	return a.withLoco(cmd, func(g1.LocoHandle) error {
		h := a.bridge.CreateArm(a.cfg.NetworkInterface)
		if h == 0 {
			return fmt.Errorf("create arm client failed")
		}
		defer a.bridge.DestroyArm(h)
		if err := check(cmd.OutOrStdout(), "arm init", a.bridge.ArmInit(h)); err != nil {
			return err
		}
		if err := check(cmd.OutOrStdout(), "arm timeout", a.bridge.ArmSetTimeout(h, a.cfg.ArmTimeout)); err != nil {
			return err
		}
		return fn(h)
	})
}

// StatusError reports a non-zero status from the bridge.
type StatusError struct {
	Op   string
	Code int32
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s: %d (%s)", e.Op, e.Code, g1.StatusText(e.Code))
}

var (
	okColor   = color.New(color.FgGreen)
	failColor = color.New(color.FgRed, color.Bold)
)

// check prints the outcome of op and returns a StatusError for non-zero
// codes.
func check(w io.Writer, op string, code int32) error {
	if code == g1.StatusOK {
		okColor.Fprintf(w, "%s: ok\n", op)
		return nil
	}
	failColor.Fprintf(w, "%s: %s\n", op, g1.StatusText(code))
	return &StatusError{Op: op, Code: code}
}

