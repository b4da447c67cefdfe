// Package closure saturates a process set under repeated transitions on a
// single event — used with τ to build the τ-closed sets that
// prenormalisation turns into single deterministic states.
package closure

import (
	"github.com/hst-go/hst/csp/event"
	"github.com/hst-go/hst/csp/ident"
	"github.com/hst-go/hst/csp/process"
)

// Close returns the smallest superset of seed that is closed under
// afters(·, e): every process reachable from a seed member by zero or more
// e-labelled transitions is included. Implemented as a double-buffered
// worklist so each newly-discovered process is expanded exactly once.
func Close(seed []process.Process, e *event.Event) *process.Set {
	closed := process.NewSetBuilder()
	seen := make(map[ident.ID]bool, len(seed))

	worklist := make([]process.Process, 0, len(seed))
	for _, p := range seed {
		if seen[p.ID()] {
			continue
		}
		seen[p.ID()] = true
		closed.Add(p)
		worklist = append(worklist, p)
	}

	for len(worklist) > 0 {
		var next []process.Process
		for _, p := range worklist {
			for _, successor := range process.Afters(p, e) {
				if seen[successor.ID()] {
					continue
				}
				seen[successor.ID()] = true
				closed.Add(successor)
				next = append(next, successor)
			}
		}
		worklist = next
	}

	return closed.Build()
}

// CloseTau is Close specialised to τ, the only event the engine ever
// closes over.
func CloseTau(seed []process.Process) *process.Set {
	return Close(seed, event.Tau())
}
