package main

import (
	"fmt"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/gerri-robotics/g1bridge-go/pkg/g1"
)

func newArmCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "arm",
		Short: "Arm action commands",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "Print the action list reported by the robot",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return a.withArm(cmd, func(h g1.ArmHandle) error {
					res := a.bridge.GetActionList(h)
					if !res.OK() {
						return check(cmd.OutOrStdout(), "list", res.Code)
					}
					if res.Data == nil {
						fmt.Fprintln(cmd.OutOrStdout(), "(no actions reported)")
						return nil
					}
					fmt.Fprintln(cmd.OutOrStdout(), res.String())
					return nil
				})
			},
		},
		&cobra.Command{
			Use:   "exec <id|name>",
			Short: "Execute an arm action by id or catalog name",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				id, err := resolveAction(args[0])
				if err != nil {
					return err
				}
				return a.withArm(cmd, func(h g1.ArmHandle) error {
					return check(cmd.OutOrStdout(), "exec "+args[0], a.bridge.ExecuteAction(h, id))
				})
			},
		},
		&cobra.Command{
			Use:   "catalog",
			Short: "Print the built-in action catalog",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
				fmt.Fprintln(tw, "NAME\tID")
				for _, act := range g1.Actions() {
					fmt.Fprintf(tw, "%s\t%d\n", act.Name, act.ID)
				}
				return tw.Flush()
			},
		},
	)
	return cmd
}

func resolveAction(s string) (int32, error) {
	if n, err := strconv.ParseInt(s, 10, 32); err == nil {
		return int32(n), nil
	}
	return g1.ActionID(s)
}
