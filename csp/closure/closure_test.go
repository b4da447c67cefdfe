package closure

import (
	"testing"

	"github.com/hst-go/hst/csp/event"
	"github.com/hst-go/hst/csp/process"
)

func TestCloseTauIncludesSeed(t *testing.T) {
	env := process.NewEnv()
	stop := process.Stop(env)
	closed := CloseTau([]process.Process{stop})
	if closed.Len() != 1 || !closed.Contains(stop.ID()) {
		t.Fatal("closure of a process with no tau transitions is just itself")
	}
}

func TestCloseTauFollowsInternalChoice(t *testing.T) {
	env := process.NewEnv()
	a := event.Get("a")
	left := process.Prefix(env, a, process.Stop(env))
	right := process.Stop(env)
	choice := process.InternalChoice(env, process.NewSet(left, right))

	closed := CloseTau([]process.Process{choice})
	if !closed.Contains(choice.ID()) || !closed.Contains(left.ID()) || !closed.Contains(right.ID()) {
		t.Fatal("tau-closure of an internal choice must include the choice and every branch")
	}
}

func TestCloseTauIsIdempotent(t *testing.T) {
	env := process.NewEnv()
	choice := process.InternalChoice(env, process.NewSet(process.Stop(env)))
	first := CloseTau([]process.Process{choice})
	second := CloseTau(first.Members())
	if first.Len() != second.Len() {
		t.Fatal("closing an already-closed set should not grow it")
	}
}
