// Command g1ctl drives a Unitree G1 through the bridge from the command line.
//
//	g1ctl --iface eth0 loco stand-up
//	g1ctl --sim arm catalog
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
