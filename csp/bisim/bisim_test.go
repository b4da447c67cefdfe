package bisim

import (
	"testing"

	"github.com/hst-go/hst/csp/event"
	"github.com/hst-go/hst/csp/prenorm"
	"github.com/hst-go/hst/csp/process"
)

// buildABCDE constructs:
//
//	let A = []{a->B, a->D} B = []{a->C} C = []{} D = []{a->E} E = []{} within A
//
// Powerset determinisation alone already merges B and D's successors into
// one prenormalised node (and likewise C and E's), since both are direct,
// non-tau successors of A on the same event. What bisimulation must then
// confirm is that the three resulting prenormalised states are pairwise
// distinct: {A} and {B,D} share the same immediate initials ({a}) but
// diverge on where that a leads, so no further merging should happen.
func buildABCDE(env *process.Env) process.Process {
	scope := process.OpenScope(env)
	a := event.Get("a")

	bTarget := scope.Target("B")
	dTarget := scope.Target("D")
	cTarget := scope.Target("C")
	eTarget := scope.Target("E")
	aTarget := scope.Target("A")

	scope.Fill("C", process.ExternalChoice(env, process.NewSet()))
	scope.Fill("E", process.ExternalChoice(env, process.NewSet()))
	scope.Fill("B", process.ExternalChoice(env, process.NewSet(process.Prefix(env, a, cTarget))))
	scope.Fill("D", process.ExternalChoice(env, process.NewSet(process.Prefix(env, a, eTarget))))
	scope.Fill("A", process.ExternalChoice(env, process.NewSet(
		process.Prefix(env, a, bTarget),
		process.Prefix(env, a, dTarget),
	)))

	return aTarget
}

func TestBisimulationKeepsDistinctContinuationsSeparate(t *testing.T) {
	env := process.NewEnv()
	a := buildABCDE(env)
	root := prenorm.Prenormalise(env, a)

	rel, _ := Run(root)
	if rel.ClassCount() != 3 {
		t.Fatalf("expected 3 bisimulation classes (A, {B,D}, {C,E}), got %d", rel.ClassCount())
	}
}
