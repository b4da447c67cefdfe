package process

import (
	"sort"

	"github.com/hst-go/hst/csp/event"
	"github.com/hst-go/hst/csp/ident"
)

// EventSet is an unordered collection of events with a stable, content-
// addressed hash. Used by Behaviour to represent a process's initials.
type EventSet struct {
	members map[ident.ID]*event.Event
}

// NewEventSet builds an EventSet from a list of events, deduplicating by
// id.
func NewEventSet(events ...*event.Event) *EventSet {
	m := make(map[ident.ID]*event.Event, len(events))
	for _, e := range events {
		m[e.ID()] = e
	}
	return &EventSet{members: m}
}

// Len reports the number of distinct events.
func (s *EventSet) Len() int { return len(s.members) }

// Contains reports whether e is a member.
func (s *EventSet) Contains(e *event.Event) bool {
	_, ok := s.members[e.ID()]
	return ok
}

// Subset reports whether every member of s is also a member of other — the
// condition the traces refinement check evaluates at each paired step.
func (s *EventSet) Subset(other *EventSet) bool {
	for id := range s.members {
		if _, ok := other.members[id]; !ok {
			return false
		}
	}
	return true
}

// Equal reports whether s and other contain exactly the same events.
func (s *EventSet) Equal(other *EventSet) bool {
	return s.Len() == other.Len() && s.Subset(other)
}

// Members returns the set's contents sorted by name, for deterministic
// printing.
func (s *EventSet) Members() []*event.Event {
	out := make([]*event.Event, 0, len(s.members))
	for _, e := range s.members {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name() < out[j].Name() })
	return out
}

// Hash returns a content hash of the set's membership, independent of
// insertion order.
func (s *EventSet) Hash() ident.ID {
	ids := make([]ident.ID, 0, len(s.members))
	for id := range s.members {
		ids = append(ids, id)
	}
	b := ident.Start("event-set")
	return b.AddIDSet(ids).Finish()
}
