package process

import (
	"strings"

	"github.com/hst-go/hst/csp/event"
)

// Trace is an immutable, reverse-linked finite sequence of events, used
// only to report counterexamples during refinement checking; the
// refinement algorithm itself never inspects one.
type Trace struct {
	prev   *Trace
	event  *event.Event
	length int
}

// EmptyTrace returns the zero-length trace ⟨⟩.
func EmptyTrace() *Trace {
	return nil
}

// Extend returns a new trace formed by appending e to prev (prev may be
// the empty trace, i.e. nil).
func Extend(prev *Trace, e *event.Event) *Trace {
	length := 1
	if prev != nil {
		length = prev.length + 1
	}
	return &Trace{prev: prev, event: e, length: length}
}

// Length returns the number of events in t (0 for the empty trace).
func (t *Trace) Length() int {
	if t == nil {
		return 0
	}
	return t.length
}

// Events renders t front-to-back as a slice, allocating once.
func (t *Trace) Events() []*event.Event {
	out := make([]*event.Event, t.Length())
	for i := len(out) - 1; t != nil; i-- {
		out[i] = t.event
		t = t.prev
	}
	return out
}

// Equal reports whether t and other contain the same events in the same
// order.
func (t *Trace) Equal(other *Trace) bool {
	if t.Length() != other.Length() {
		return false
	}
	for t != nil {
		if t.event.ID() != other.event.ID() {
			return false
		}
		t, other = t.prev, other.prev
	}
	return true
}

// String renders t as ⟨e1, e2, …, en⟩.
func (t *Trace) String() string {
	events := t.Events()
	names := make([]string, len(events))
	for i, e := range events {
		names[i] = e.Name()
	}
	return "⟨" + strings.Join(names, ", ") + "⟩"
}
