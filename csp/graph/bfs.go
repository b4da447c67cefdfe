// Package graph implements breadth-first traversal over the process graph,
// used by bisimulation to index every reachable prenormalised state and by
// the CLI's reachable command.
package graph

import (
	"github.com/hst-go/hst/csp/ident"
	"github.com/hst-go/hst/csp/process"
)

// BFS walks every process reachable from root, visiting each exactly once.
// visitor is called once per reached process; its Decision controls the
// walk: process.Continue explores that process's successors, process.Prune
// skips them but keeps the rest of the frontier going, and process.Abort
// stops the whole walk immediately.
func BFS(root process.Process, visitor process.ProcessVisitor) {
	seen := map[ident.ID]bool{root.ID(): true}
	frontier := []process.Process{root}

	for len(frontier) > 0 {
		var next []process.Process
		for _, p := range frontier {
			decision := visitor.Visit(p)
			if decision == process.Abort {
				return
			}
			if decision == process.Prune {
				continue
			}
			for _, e := range process.Initials(p) {
				for _, successor := range process.Afters(p, e) {
					if seen[successor.ID()] {
						continue
					}
					seen[successor.ID()] = true
					next = append(next, successor)
				}
			}
		}
		frontier = next
	}
}

// collector is a process.ProcessVisitor that records every process shown
// to it, always continuing the walk.
type collector struct {
	out []process.Process
}

func (c *collector) Visit(p process.Process) process.Decision {
	c.out = append(c.out, p)
	return process.Continue
}

// Reachable collects every process reachable from root, including root
// itself, in BFS order.
func Reachable(root process.Process) []process.Process {
	var c collector
	BFS(root, &c)
	return c.out
}
