package graph

import (
	"testing"

	"github.com/hst-go/hst/csp/event"
	"github.com/hst-go/hst/csp/ident"
	"github.com/hst-go/hst/csp/process"
)

func TestReachableFromStop(t *testing.T) {
	env := process.NewEnv()
	stop := process.Stop(env)
	reached := Reachable(stop)
	if len(reached) != 1 || reached[0].ID() != stop.ID() {
		t.Fatal("STOP should only reach itself")
	}
}

func TestReachableFollowsPrefixChain(t *testing.T) {
	env := process.NewEnv()
	a, b := event.Get("a"), event.Get("b")
	p := process.Prefix(env, a, process.Prefix(env, b, process.Stop(env)))

	reached := Reachable(p)
	if len(reached) != 3 {
		t.Fatalf("expected 3 reachable processes (a->b->STOP, b->STOP, STOP), got %d", len(reached))
	}
}

func TestAbortStopsTraversalImmediately(t *testing.T) {
	env := process.NewEnv()
	a := event.Get("a")
	p := process.Prefix(env, a, process.Prefix(env, a, process.Stop(env)))

	var visitor abortAfterFirst
	BFS(p, &visitor)
	if visitor.count != 1 {
		t.Fatalf("expected abort after the first visit, saw %d", visitor.count)
	}
}

type abortAfterFirst struct{ count int }

func (a *abortAfterFirst) Visit(process.Process) process.Decision {
	a.count++
	return process.Abort
}

func TestPrunePreventsDescendingButKeepsFrontier(t *testing.T) {
	env := process.NewEnv()
	a, b := event.Get("a"), event.Get("b")
	left := process.Prefix(env, a, process.Prefix(env, a, process.Stop(env)))
	right := process.Prefix(env, b, process.Stop(env))
	// Internal choice exposes both branches as direct tau-successors, so
	// left and right land in the same BFS frontier.
	root := process.InternalChoice(env, process.NewSet(left, right))

	seen := make(map[ident.ID]bool)
	BFS(root, &pruneVisitor{seen: seen, pruneID: left.ID()})

	innerLeftSuccessor := process.Afters(left, a)[0]
	if seen[innerLeftSuccessor.ID()] {
		t.Fatal("pruning left should stop the walk from descending into its successors")
	}
	if !seen[right.ID()] {
		t.Fatal("pruning one frontier member must not stop the rest of the frontier from being visited")
	}
}

type pruneVisitor struct {
	seen    map[ident.ID]bool
	pruneID ident.ID
}

func (v *pruneVisitor) Visit(p process.Process) process.Decision {
	v.seen[p.ID()] = true
	if p.ID() == v.pruneID {
		return process.Prune
	}
	return process.Continue
}
