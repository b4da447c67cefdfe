// Command hst is the primary CLI front end for the engine: it loads a CSP0
// file, resolves a named process, and drives one of the core operations
// (reachability enumeration, traces refinement, trace demonstration)
// against it.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	root := newRootCmd()
	if err := root.Execute(); err != nil {
		if msg := err.Error(); msg != "" {
			fmt.Fprintln(os.Stderr, msg)
		}
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var debug bool

	root := &cobra.Command{
		Use:           "hst",
		Short:         "A formal-methods engine for Hoare's CSP traces model",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug tracing to stderr (also HST_TRACE=1)")

	root.AddCommand(
		newReachableCmd(&debug),
		newRefinesCmd(&debug),
		newTraceCmd(&debug),
		newVersionCmd(),
	)
	return root
}
