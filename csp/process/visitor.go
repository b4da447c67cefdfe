package process

import (
	"github.com/hst-go/hst/csp/event"
	"github.com/hst-go/hst/csp/ident"
)

// EventVisitor receives one event at a time from VisitInitials.
type EventVisitor interface {
	Visit(e *event.Event)
}

// EdgeVisitor receives (event, successor) pairs from VisitAfters. The event
// argument is always the event VisitAfters was called with; it is passed
// through so one EdgeVisitor implementation can be reused across several
// VisitAfters calls without closing over the event itself.
type EdgeVisitor interface {
	Visit(e *event.Event, successor Process)
}

// NameVisitor receives fragments of rendered CSP0 syntax, in left-to-right
// order. Splitting Name rendering into fragments (rather than building one
// string per call) lets callers stream straight to an io.Writer without
// materializing the whole name.
type NameVisitor interface {
	Write(fragment string)
}

// Decision is returned by a ProcessVisitor to control a graph traversal.
type Decision int

const (
	// Continue keeps traversing this process's successors.
	Continue Decision = iota
	// Prune stops exploring past this process, but lets the traversal
	// continue with other frontier members.
	Prune
	// Abort stops the whole traversal immediately.
	Abort
)

// ProcessVisitor is invoked once per process reached during a graph
// traversal (see the graph package).
type ProcessVisitor interface {
	Visit(p Process) Decision
}

// --- Event visitor adapters ---

// CollectEvents accumulates every distinct event it is shown, in visit
// order, deduplicated by id.
type CollectEvents struct {
	Events []*event.Event
	seen   map[ident.ID]bool
}

func (c *CollectEvents) Visit(e *event.Event) {
	if c.seen == nil {
		c.seen = make(map[ident.ID]bool)
	}
	if c.seen[e.ID()] {
		return
	}
	c.seen[e.ID()] = true
	c.Events = append(c.Events, e)
}

// ContainsEvent reports (via Found) whether Target was among the visited
// events.
type ContainsEvent struct {
	Target *event.Event
	Found  bool
}

func (c *ContainsEvent) Visit(e *event.Event) {
	if e.ID() == c.Target.ID() {
		c.Found = true
	}
}

// AnyEvent reports (via Any) whether at least one event was visited at all;
// used to implement "is this process's initials empty?" without allocating
// a slice.
type AnyEvent struct {
	Any bool
}

func (a *AnyEvent) Visit(*event.Event) {
	a.Any = true
}

// IgnoreEvent forwards every visited event to Inner except Except (compared
// by id). Used throughout the traces model to strip τ out of initials
// without building an intermediate set.
type IgnoreEvent struct {
	Except *event.Event
	Inner  EventVisitor
}

func (ig *IgnoreEvent) Visit(e *event.Event) {
	if ig.Except != nil && e.ID() == ig.Except.ID() {
		return
	}
	ig.Inner.Visit(e)
}

// --- Edge visitor adapter ---

// CollectAfters accumulates every successor process shown to it, in visit
// order.
type CollectAfters struct {
	Processes []Process
}

func (c *CollectAfters) Visit(_ *event.Event, successor Process) {
	c.Processes = append(c.Processes, successor)
}

// --- Name visitor adapter ---

// stringNameVisitor accumulates fragments into a single string.
type stringNameVisitor string

func (s *stringNameVisitor) Write(fragment string) {
	*s += stringNameVisitor(fragment)
}
