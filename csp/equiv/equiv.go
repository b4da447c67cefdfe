// Package equiv implements the bidirectional class/member map bisimulation
// refines in place: which processes are currently believed equivalent, and
// which class each belongs to.
package equiv

import (
	"sort"

	"github.com/hst-go/hst/csp/ident"
)

// Relation is a mutable equivalence relation over process ids. Class ids
// are whatever the caller passes to Add: bisimulation's refinement passes
// use the id of one of the class's own members (its "head"), while its
// initial partition keys classes by behaviour hash. Adding a member to a
// class removes it from whatever class it was previously in.
type Relation struct {
	classToMembers map[ident.ID]map[ident.ID]bool
	memberToClass  map[ident.ID]ident.ID
}

// New returns an empty Relation.
func New() *Relation {
	return &Relation{
		classToMembers: make(map[ident.ID]map[ident.ID]bool),
		memberToClass:  make(map[ident.ID]ident.ID),
	}
}

// Add puts member into class, first removing it from any class it already
// belonged to.
func (r *Relation) Add(class, member ident.ID) {
	if prev, ok := r.memberToClass[member]; ok {
		if prev == class {
			return
		}
		delete(r.classToMembers[prev], member)
		if len(r.classToMembers[prev]) == 0 {
			delete(r.classToMembers, prev)
		}
	}
	if r.classToMembers[class] == nil {
		r.classToMembers[class] = make(map[ident.ID]bool)
	}
	r.classToMembers[class][member] = true
	r.memberToClass[member] = class
}

// GetClass returns the class member belongs to, or (0, false) if member
// has never been added.
func (r *Relation) GetClass(member ident.ID) (ident.ID, bool) {
	class, ok := r.memberToClass[member]
	return class, ok
}

// MembersOf returns every member of class, sorted for deterministic
// iteration.
func (r *Relation) MembersOf(class ident.ID) []ident.ID {
	members := r.classToMembers[class]
	out := make([]ident.ID, 0, len(members))
	for m := range members {
		out = append(out, m)
	}
	sortIDs(out)
	return out
}

// Classes returns every distinct class id currently populated, sorted for
// deterministic iteration.
func (r *Relation) Classes() []ident.ID {
	out := make([]ident.ID, 0, len(r.classToMembers))
	for c := range r.classToMembers {
		out = append(out, c)
	}
	sortIDs(out)
	return out
}

// ClassCount reports how many distinct classes currently exist.
func (r *Relation) ClassCount() int {
	return len(r.classToMembers)
}

func sortIDs(ids []ident.ID) {
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
}
