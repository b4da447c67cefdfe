package process

import (
	"sort"

	"github.com/hst-go/hst/csp/ident"
)

// Bag is an unordered multiset of processes: the operand type for
// interleave, which must distinguish P ⫴ P from P.
type Bag struct {
	counts map[ident.ID]int
	procs  map[ident.ID]Process
	order  []Process // distinct members, by insertion index
}

// BagBuilder accumulates processes (with multiplicity) before freezing them
// into a Bag.
type BagBuilder struct {
	counts map[ident.ID]int
	procs  map[ident.ID]Process
}

// NewBagBuilder returns an empty BagBuilder.
func NewBagBuilder() *BagBuilder {
	return &BagBuilder{counts: make(map[ident.ID]int), procs: make(map[ident.ID]Process)}
}

// Add inserts one more occurrence of p.
func (b *BagBuilder) Add(p Process) *BagBuilder {
	b.counts[p.ID()]++
	b.procs[p.ID()] = p
	return b
}

// AddAll adds one occurrence of each process in ps.
func (b *BagBuilder) AddAll(ps ...Process) *BagBuilder {
	for _, p := range ps {
		b.Add(p)
	}
	return b
}

// Build freezes the builder into a Bag, sorted by each distinct member's
// Index, and clears the builder so it can be reused.
func (b *BagBuilder) Build() *Bag {
	order := make([]Process, 0, len(b.procs))
	for _, p := range b.procs {
		order = append(order, p)
	}
	sort.Slice(order, func(i, j int) bool { return order[i].Index() < order[j].Index() })

	bag := &Bag{counts: b.counts, procs: b.procs, order: order}
	b.counts = make(map[ident.ID]int)
	b.procs = make(map[ident.ID]Process)
	return bag
}

// NewBag is a convenience for building a Bag from a fixed list of
// processes (with repeats) in one call.
func NewBag(ps ...Process) *Bag {
	return NewBagBuilder().AddAll(ps...).Build()
}

// Len returns the number of distinct processes in the bag (not counting
// multiplicity).
func (b *Bag) Len() int { return len(b.procs) }

// DistinctMembers returns one Process per distinct id, in insertion-index
// order. Every operational rule over a bag only needs to branch once per
// distinct id: copies of the same process behave identically, so the
// resulting successor bag (via ReplaceOne) fully captures multiplicity.
func (b *Bag) DistinctMembers() []Process {
	out := make([]Process, len(b.order))
	copy(out, b.order)
	return out
}

// Counts returns the id -> multiplicity map; used only as input to the
// (order-independent, multiplicity-sensitive) identifier scheme.
func (b *Bag) Counts() map[ident.ID]int {
	out := make(map[ident.ID]int, len(b.counts))
	for id, n := range b.counts {
		out[id] = n
	}
	return out
}

// ReplaceOne returns a new Bag with one occurrence of id removed and one
// occurrence of replacement added — the "Ps \ {P} ∪ {P'}" step common to
// every interleave operational rule.
func (b *Bag) ReplaceOne(id ident.ID, replacement Process) *Bag {
	nb := NewBagBuilder()
	removed := false
	for _, p := range b.order {
		n := b.counts[p.ID()]
		for i := 0; i < n; i++ {
			if !removed && p.ID() == id {
				removed = true
				continue
			}
			nb.Add(p)
		}
	}
	nb.Add(replacement)
	return nb.Build()
}
