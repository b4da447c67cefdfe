package refine

import (
	"testing"

	"github.com/hst-go/hst/csp/event"
	"github.com/hst-go/hst/csp/process"
	"github.com/stretchr/testify/require"
)

func TestStopRefinesStop(t *testing.T) {
	env := process.NewEnv()
	result := CheckTracesRefinement(env, process.Stop(env), process.Stop(env))
	require.True(t, result.Holds, "STOP should refine STOP")
}

func TestStopDoesNotRefineAPrefixedProcess(t *testing.T) {
	env := process.NewEnv()
	a := event.Get("a")
	impl := process.Prefix(env, a, process.Stop(env))
	result := CheckTracesRefinement(env, process.Stop(env), impl)
	require.False(t, result.Holds, "STOP must not refine a process that can perform a")
	// The very first pair already fails, so the trace that reached it is
	// the empty trace ⟨⟩.
	require.Equal(t, 0, result.Counterexample.Length(), "a refinement failing at the root pair should carry the empty counterexample trace")
}

func TestPrefixedProcessRefinesStop(t *testing.T) {
	env := process.NewEnv()
	a := event.Get("a")
	spec := process.Prefix(env, a, process.Stop(env))
	result := CheckTracesRefinement(env, spec, process.Stop(env))
	require.True(t, result.Holds, "every process should refine STOP")
}

func TestNarrowerSpecDoesNotRefineWiderChoice(t *testing.T) {
	env := process.NewEnv()
	a, b := event.Get("a"), event.Get("b")
	spec := process.Prefix(env, a, process.Stop(env))
	impl := process.ExternalChoice(env, process.NewSet(
		process.Prefix(env, a, process.Stop(env)),
		process.Prefix(env, b, process.Stop(env)),
	))
	result := CheckTracesRefinement(env, spec, impl)
	require.False(t, result.Holds, "an impl offering more initials than spec must not refine")
}

func TestExternalChoiceRefinesInternalChoice(t *testing.T) {
	env := process.NewEnv()
	a, b := event.Get("a"), event.Get("b")
	stopA := process.Prefix(env, a, process.Stop(env))
	stopB := process.Prefix(env, b, process.Stop(env))
	spec := process.ExternalChoice(env, process.NewSet(stopA, stopB))
	impl := process.InternalChoice(env, process.NewSet(stopA, stopB))
	result := CheckTracesRefinement(env, spec, impl)
	require.True(t, result.Holds, "a->STOP [] b->STOP should refine a->STOP |~| b->STOP")
}

func TestRefinementIsReflexive(t *testing.T) {
	env := process.NewEnv()
	a, b := event.Get("a"), event.Get("b")
	p := process.ExternalChoice(env, process.NewSet(
		process.Prefix(env, a, process.Stop(env)),
		process.Prefix(env, b, process.Prefix(env, a, process.Stop(env))),
	))
	result := CheckTracesRefinement(env, p, p)
	require.True(t, result.Holds, "every process should refine itself")
}
