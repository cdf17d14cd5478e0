// Command qmc exposes the internal/qmc minimization engine from the
// command line.
package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/pborges/qmcx/internal/qmc"
)

const version = "0.2.0"

var verbose bool

func main() {
	root := newRootCmd()
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "qmc",
		Short:         "Quine-McCluskey minimizer with XOR/XNOR support",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				qmc.SetOutput(os.Stderr)
				logrus.SetLevel(logrus.DebugLevel)
			}
		},
	}
	root.PersistentFlags().BoolVar(&verbose, "verbose", false, "log pipeline stage progress to stderr")

	root.AddCommand(newMinimizeCmd())
	root.AddCommand(newProfileCmd())
	root.AddCommand(newVersionCmd())
	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "print the qmc version",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println(version)
			return nil
		},
	}
}
