package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hst-go/hst/csp/event"
	"github.com/hst-go/hst/csp/process"
	"github.com/hst-go/hst/internal/tracelog"
)

func newTraceCmd(debug *bool) *cobra.Command {
	var maxLen int
	cmd := &cobra.Command{
		Use:   "trace <file> [process-name]",
		Short: "Print one non-τ trace reachable from a process",
		Long: "Walks initials/afters from a process, always taking the first\n" +
			"enabled event (preferring a non-τ event when one is enabled), and\n" +
			"prints the resulting trace. This is a demonstration aid over the\n" +
			"trace value (C13), not part of any invariant: it picks one\n" +
			"arbitrary-but-deterministic path through the graph, not the\n" +
			"longest or shortest one. The walk stops at a process with no\n" +
			"initials, at a process already visited on this path, or after\n" +
			"--max-length steps.",
		Args: cobra.RangeArgs(1, 2),
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

			t := walkOneTrace(root, maxLen)
			fmt.Fprintln(cmd.OutOrStdout(), t)
			return nil
		},
	}
	cmd.Flags().IntVar(&maxLen, "max-length", 1000, "stop after this many events (guards against infinite recursion)")
	return cmd
}

// walkOneTrace takes the first enabled non-τ event at each step (falling
// back to τ only when nothing else is enabled), stopping at STOP, at a
// process already seen on this path (a cycle), or at maxLen events.
func walkOneTrace(p process.Process, maxLen int) *process.Trace {
	t := process.EmptyTrace()
	seen := map[process.Process]bool{}

	for i := 0; i < maxLen; i++ {
		if seen[p] {
			break
		}
		seen[p] = true

		initials := process.Initials(p)
		if len(initials) == 0 {
			break
		}

		chosen := firstNonTau(initials)
		successors := process.Afters(p, chosen)
		if len(successors) == 0 {
			break
		}
		if !event.IsTau(chosen) {
			t = process.Extend(t, chosen)
		}
		p = successors[0]
	}
	return t
}

func firstNonTau(events []*event.Event) *event.Event {
	for _, e := range events {
		if !event.IsTau(e) {
			return e
		}
	}
	return events[0]
}
