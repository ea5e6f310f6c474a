package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/gerri-robotics/g1bridge-go/pkg/g1"
)

func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status <code>",
		Short: "Explain a status code (use -- before negative codes)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.ParseInt(args[0], 10, 32)
			if err != nil {
				return fmt.Errorf("status code: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d: %s\n", n, g1.StatusText(int32(n)))
			return nil
		},
	}
}
