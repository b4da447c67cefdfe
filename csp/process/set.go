package process

import (
	"sort"

	"github.com/hst-go/hst/csp/ident"
)

// Set is an unordered collection of distinct processes: the operand type
// for external and internal choice. Construct one with SetBuilder;
// Set itself is immutable once built, so it is safe to share as an operand
// between processes.
type Set struct {
	members map[ident.ID]Process
	order   []Process // by insertion index, for deterministic printing
}

// SetBuilder accumulates processes before freezing them into a Set.
type SetBuilder struct {
	members map[ident.ID]Process
}

// NewSetBuilder returns an empty SetBuilder.
func NewSetBuilder() *SetBuilder {
	return &SetBuilder{members: make(map[ident.ID]Process)}
}

// Add inserts p if it is not already present; re-adding the same process is
// a no-op, matching "the set stores each process at most once".
func (b *SetBuilder) Add(p Process) *SetBuilder {
	b.members[p.ID()] = p
	return b
}

// AddAll adds every process in ps.
func (b *SetBuilder) AddAll(ps ...Process) *SetBuilder {
	for _, p := range ps {
		b.Add(p)
	}
	return b
}

// Len reports how many distinct processes have been added so far.
func (b *SetBuilder) Len() int { return len(b.members) }

// Build freezes the builder's contents into a Set, sorted by each member's
// Index for deterministic iteration, and clears the builder so it can be
// reused.
func (b *SetBuilder) Build() *Set {
	order := make([]Process, 0, len(b.members))
	for _, p := range b.members {
		order = append(order, p)
	}
	sort.Slice(order, func(i, j int) bool { return order[i].Index() < order[j].Index() })

	s := &Set{members: b.members, order: order}
	b.members = make(map[ident.ID]Process)
	return s
}

// NewSet is a convenience for building a Set from a fixed list of
// processes in one call.
func NewSet(ps ...Process) *Set {
	return NewSetBuilder().AddAll(ps...).Build()
}

// Len reports the number of distinct processes in s.
func (s *Set) Len() int { return len(s.members) }

// Contains reports whether id is a member of s.
func (s *Set) Contains(id ident.ID) bool {
	_, ok := s.members[id]
	return ok
}

// Members returns the set's contents in insertion-index order: deterministic
// for printing, independent of fingerprint/map iteration order.
func (s *Set) Members() []Process {
	out := make([]Process, len(s.order))
	copy(out, s.order)
	return out
}

// IDs returns the fingerprints of every member, in no particular order;
// used only as input to the (order-independent) identifier scheme.
func (s *Set) IDs() []ident.ID {
	ids := make([]ident.ID, 0, len(s.members))
	for id := range s.members {
		ids = append(ids, id)
	}
	return ids
}

// Equal reports whether s and other contain exactly the same member ids.
func (s *Set) Equal(other *Set) bool {
	if s.Len() != other.Len() {
		return false
	}
	for id := range s.members {
		if !other.Contains(id) {
			return false
		}
	}
	return true
}

// Without returns a new Set containing every member of s except the one
// with the given id (a no-op copy if id is not present). Used by the
// external-choice τ rule, which replaces a single member with its
// τ-successor.
func (s *Set) Without(id ident.ID) *Set {
	b := NewSetBuilder()
	for _, p := range s.order {
		if p.ID() != id {
			b.Add(p)
		}
	}
	return b.Build()
}
