package main

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/gerri-robotics/g1bridge-go/pkg/g1"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "g1ctl:   %s\nsdk:     %s\nOS/Arch: %s/%s\n",
				g1.BridgeVersion(), g1.SDKVersion(), runtime.GOOS, runtime.GOARCH)
		},
	}
}
