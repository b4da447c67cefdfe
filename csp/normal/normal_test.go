package normal

import (
	"testing"

	"github.com/hst-go/hst/csp/event"
	"github.com/hst-go/hst/csp/prenorm"
	"github.com/hst-go/hst/csp/process"
)

func buildChain(env *process.Env) process.Process {
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

func TestNormaliseProducesDeterministicChain(t *testing.T) {
	env := process.NewEnv()
	a := event.Get("a")
	root := buildChain(env)
	normRoot := Normalise(env, prenorm.Prenormalise(env, root))

	if !process.Enabled(normRoot, a) {
		t.Fatal("normalised root should still offer a")
	}
	step1 := process.Afters(normRoot, a)
	if len(step1) != 1 {
		t.Fatalf("a normalised process must have at most one successor per event, got %d", len(step1))
	}

	step2 := process.Afters(step1[0], a)
	if len(step2) != 1 {
		t.Fatalf("expected exactly one successor at the second step, got %d", len(step2))
	}

	if len(process.Initials(step2[0])) != 0 {
		t.Fatal("the chain should terminate with no further transitions")
	}
}

func TestNormaliseIsInterned(t *testing.T) {
	env := process.NewEnv()
	root := buildChain(env)
	prenormRoot := prenorm.Prenormalise(env, root)
	n1 := Normalise(env, prenormRoot)
	n2 := Normalise(env, prenormRoot)
	if n1.ID() != n2.ID() {
		t.Fatal("normalising the same prenormalised root twice should yield the same node")
	}
}
