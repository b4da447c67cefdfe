package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hst-go/hst/csp/graph"
	"github.com/hst-go/hst/csp/process"
	"github.com/hst-go/hst/internal/tracelog"
)

func newReachableCmd(debug *bool) *cobra.Command {
	return &cobra.Command{
		Use:   "reachable <file> [process-name]",
		Short: "Enumerate every process reachable from a process, one per line",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			tracer := tracelog.New(*debug, cmd.ErrOrStderr())
			if tracer2 := tracelog.FromEnv(); tracer2.Enabled() {
				tracer = tracer2
			}

			name := ""
			if len(args) > 1 {
				name = args[1]
			}

			l, err := loadFile(args[0], tracer)
			if err != nil {
				return err
			}
			root, err := lookupProcess(l, name)
			if err != nil {
				return err
			}

			for _, p := range graph.Reachable(root) {
				fmt.Fprintln(cmd.OutOrStdout(), process.NameString(p))
			}
			return nil
		},
	}
}
