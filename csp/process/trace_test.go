package process

import (
	"testing"

	"github.com/hst-go/hst/csp/event"
)

func TestEmptyTraceHasZeroLength(t *testing.T) {
	if EmptyTrace().Length() != 0 {
		t.Fatal("empty trace must have length 0")
	}
}

func TestExtendGrowsLength(t *testing.T) {
	a, b := event.Get("a"), event.Get("b")
	tr := Extend(Extend(EmptyTrace(), a), b)
	if tr.Length() != 2 {
		t.Fatalf("expected length 2, got %d", tr.Length())
	}
	events := tr.Events()
	if len(events) != 2 || events[0] != a || events[1] != b {
		t.Fatal("Events() should render front-to-back in extension order")
	}
}

func TestTraceEqual(t *testing.T) {
	a, b := event.Get("a"), event.Get("b")
	t1 := Extend(Extend(EmptyTrace(), a), b)
	t2 := Extend(Extend(EmptyTrace(), a), b)
	if !t1.Equal(t2) {
		t.Fatal("traces with the same events in the same order must be equal")
	}
	t3 := Extend(EmptyTrace(), a)
	if t1.Equal(t3) {
		t.Fatal("traces of different length must not be equal")
	}
}

func TestTraceString(t *testing.T) {
	a, b := event.Get("a"), event.Get("b")
	tr := Extend(Extend(EmptyTrace(), a), b)
	want := "⟨a, b⟩"
	if got := tr.String(); got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
}
