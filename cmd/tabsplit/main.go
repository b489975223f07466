// Command tabsplit splits a bill from the command line.
package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/mmynk/tabsplit/pkg/logging"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "tabsplit",
		Short:        "Split a bill's tax and service charge by what each person ordered",
		SilenceUsage: true,
	}
	root.AddCommand(newCalcCmd(), newShowCmd())
	return root
}

func main() {
	logging.Setup()
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
