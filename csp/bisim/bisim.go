// Package bisim computes strong bisimulation equivalence over a
// prenormalised process graph via iterative partition refinement.
package bisim

import (
	"github.com/hst-go/hst/csp/equiv"
	"github.com/hst-go/hst/csp/event"
	"github.com/hst-go/hst/csp/graph"
	"github.com/hst-go/hst/csp/ident"
	"github.com/hst-go/hst/csp/prenorm"
	"github.com/hst-go/hst/csp/process"
)

// Run computes the coarsest bisimulation over every process reachable from
// root and returns it as an equiv.Relation, plus the by-id index of every
// reachable prenormalised process (callers need it to look states back up
// from the relation's member ids).
func Run(root *prenorm.Process) (*equiv.Relation, map[ident.ID]*prenorm.Process) {
	byID := indexReachable(root)

	current := initialPartition(byID)
	for {
		next, changed := refine(current, byID)
		current = next
		if !changed {
			return current, byID
		}
	}
}

func indexReachable(root *prenorm.Process) map[ident.ID]*prenorm.Process {
	byID := make(map[ident.ID]*prenorm.Process)
	for _, p := range graph.Reachable(root) {
		byID[p.ID()] = p.(*prenorm.Process)
	}
	return byID
}

// initialPartition groups every reachable state by its traces-behaviour
// hash: two states with distinct initials can never be bisimilar, so they
// start in distinct classes.
func initialPartition(byID map[ident.ID]*prenorm.Process) *equiv.Relation {
	rel := equiv.New()
	for id, p := range byID {
		hash := process.ComputeBehaviour(p, process.ModelTraces).Hash
		rel.Add(hash, id)
	}
	return rel
}

// refine performs one partition-refinement pass: within each class of prev,
// the first member (by id ordering, which equiv.Classes/MembersOf already
// gives deterministically) is the head; every other member is kept with
// the head iff, for every event the head enables, the two states'
// successors land in the same prev-class. A member that does not match the
// head joins the first splinter created in this pass whose own head it
// matches, or else starts a new splinter headed by itself. Returns the
// refined relation and whether any class actually split.
func refine(prev *equiv.Relation, byID map[ident.ID]*prenorm.Process) (*equiv.Relation, bool) {
	next := equiv.New()
	changed := false

	for _, class := range prev.Classes() {
		members := prev.MembersOf(class)
		heads := []*prenorm.Process{byID[members[0]]}
		next.Add(heads[0].ID(), heads[0].ID())

		for _, memberID := range members[1:] {
			member := byID[memberID]
			home := member
			for _, h := range heads {
				if equivalentUnder(prev, h, member, byID) {
					home = h
					break
				}
			}
			if home == member {
				heads = append(heads, member)
				changed = true
			}
			next.Add(home.ID(), member.ID())
		}
	}

	return next, changed
}

// equivalentUnder reports whether head and member agree, under prev's
// partition, on every one-step successor: for each event head enables, its
// unique successor and member's unique successor on that event must fall
// in the same prev class.
func equivalentUnder(prev *equiv.Relation, head, member *prenorm.Process, byID map[ident.ID]*prenorm.Process) bool {
	for _, e := range process.Initials(head) {
		headSucc := uniqueSuccessor(head, e)
		memberSucc := uniqueSuccessor(member, e)
		if headSucc == nil || memberSucc == nil {
			return false
		}
		headClass, ok1 := prev.GetClass(headSucc.ID())
		memberClass, ok2 := prev.GetClass(memberSucc.ID())
		if !ok1 || !ok2 || headClass != memberClass {
			return false
		}
	}
	return true
}

func uniqueSuccessor(p *prenorm.Process, e *event.Event) process.Process {
	successors := process.Afters(p, e)
	if len(successors) == 0 {
		return nil
	}
	return successors[0]
}
