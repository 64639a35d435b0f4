// Command windtunnel drives the wind-tunnel simulator either headlessly
// (run) or in a windowed viewer (view).
package main

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var log = logrus.New()

func main() {
	root := &cobra.Command{
		Use:   "windtunnel",
		Short: "2D incompressible-fluid wind-tunnel simulator",
	}
	root.AddCommand(newRunCommand())
	root.AddCommand(newViewCommand())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
