package csp0

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hst-go/hst/csp/event"
	"github.com/hst-go/hst/csp/process"
)

func TestParseStop(t *testing.T) {
	env := process.NewEnv()
	prog, err := Parse([]byte("STOP"), env)
	require.NoError(t, err)
	require.Empty(t, process.Initials(prog.Root))
}

func TestParsePrefix(t *testing.T) {
	env := process.NewEnv()
	prog, err := Parse([]byte("a -> STOP"), env)
	require.NoError(t, err)
	initials := process.Initials(prog.Root)
	require.Len(t, initials, 1)
	require.Equal(t, "a", initials[0].Name())
}

func TestParseBinaryExternalChoice(t *testing.T) {
	env := process.NewEnv()
	prog, err := Parse([]byte("(a -> STOP) [] (b -> STOP)"), env)
	require.NoError(t, err)
	names := eventNames(process.Initials(prog.Root))
	require.ElementsMatch(t, []string{"a", "b"}, names)
}

func TestParseReplicatedInternalChoice(t *testing.T) {
	env := process.NewEnv()
	prog, err := Parse([]byte("|~|{ a -> STOP, b -> STOP, c -> STOP }"), env)
	require.NoError(t, err)
	initials := process.Initials(prog.Root)
	require.Len(t, initials, 1)
	require.True(t, event.IsTau(initials[0]))
}

func TestParseReplicatedInterleave(t *testing.T) {
	env := process.NewEnv()
	prog, err := Parse([]byte("⫴{ a -> STOP, b -> STOP }"), env)
	require.NoError(t, err)
	names := eventNames(process.Initials(prog.Root))
	require.ElementsMatch(t, []string{"a", "b"}, names)
}

func TestParseSequentialComposition(t *testing.T) {
	env := process.NewEnv()
	prog, err := Parse([]byte("a -> SKIP ; STOP"), env)
	require.NoError(t, err)
	initials := process.Initials(prog.Root)
	require.Len(t, initials, 1)
	require.Equal(t, "a", initials[0].Name())
}

func TestParseLetWithMutualRecursion(t *testing.T) {
	env := process.NewEnv()
	src := `let A = a -> B
	            B = b -> A
	        within A`
	prog, err := Parse([]byte(src), env)
	require.NoError(t, err)

	a, ok := prog.Lookup("A")
	require.True(t, ok)
	require.Same(t, a, prog.Root)

	afterA := process.Afters(a, event.Get("a"))
	require.Len(t, afterA, 1)
	b := afterA[0]
	afterB := process.Afters(b, event.Get("b"))
	require.Len(t, afterB, 1)
	require.Same(t, a, afterB[0])
}

func TestParseLetRejectsUnboundNameInBody(t *testing.T) {
	env := process.NewEnv()
	_, err := Parse([]byte("let A = a -> B within A"), env)
	require.Error(t, err)
}

func TestParseLetRejectsRedefinition(t *testing.T) {
	env := process.NewEnv()
	_, err := Parse([]byte("let A = STOP A = SKIP within A"), env)
	require.Error(t, err)
}

func TestParseRejectsUndefinedReference(t *testing.T) {
	env := process.NewEnv()
	_, err := Parse([]byte("X"), env)
	require.Error(t, err)
}

func TestParseUndefinedReferenceSuggestsCloseMatch(t *testing.T) {
	env := process.NewEnv()
	// "Vendng" is missing the 'i' from "Vending" but is still a fuzzy
	// subsequence match of it, so the suggestion should fire.
	_, err := Parse([]byte("let Vending = a -> STOP within Vendng"), env)
	require.Error(t, err)
	require.Contains(t, err.Error(), `did you mean "Vending"?`)
}

func TestParseDebugScopeReference(t *testing.T) {
	env := process.NewEnv()
	// The debug form X@N addresses a recursion target by its scope's tag
	// rather than lexical scope. Opening a throwaway scope first lets this
	// test predict the tag the real let-block's own scope will be assigned
	// (the process-wide scope counter is monotonic), so "A@N" below
	// resolves to the very A being defined.
	probe := process.OpenScope(env)
	src := fmt.Sprintf("let A = a -> STOP within A@%d", probe.Tag()+1)

	prog, err := Parse([]byte(src), env)
	require.NoError(t, err)

	a, ok := prog.Lookup("A")
	require.True(t, ok)
	require.Same(t, a, prog.Root)
}

func TestParseInterningSameExpressionSameProcess(t *testing.T) {
	env := process.NewEnv()
	p1, err := Parse([]byte("a -> STOP"), env)
	require.NoError(t, err)
	p2, err := Parse([]byte("a -> STOP"), env)
	require.NoError(t, err)
	require.Same(t, p1.Root, p2.Root)
}

func eventNames(events []*event.Event) []string {
	names := make([]string, len(events))
	for i, e := range events {
		names[i] = e.Name()
	}
	return names
}
