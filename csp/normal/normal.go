// Package normal builds the normalised process: the quotient of a
// prenormalised graph by its strong bisimulation, where every state has
// distinct traces-behaviour and at most one outgoing edge per event. This
// is the canonical deterministic form used as the Spec side of a
// refinement check.
package normal

import (
	"strings"

	"github.com/hst-go/hst/csp/bisim"
	"github.com/hst-go/hst/csp/equiv"
	"github.com/hst-go/hst/csp/event"
	"github.com/hst-go/hst/csp/ident"
	"github.com/hst-go/hst/csp/prenorm"
	"github.com/hst-go/hst/csp/process"
)

const scopeNormal ident.Scope = "normal"

// Process is one equivalence class of a bisimulation: a set of
// prenormalised states that are all behaviourally indistinguishable.
type Process struct {
	id      ident.ID
	idx     int
	env     *process.Env
	root    *prenorm.Process
	rel     *equiv.Relation
	byID    map[ident.ID]*prenorm.Process
	classID ident.ID
	members []*prenorm.Process
}

// Normalise builds a fresh bisimulation over prenormRoot's reachable graph
// and returns the normalised node for the class containing prenormRoot.
func Normalise(env *process.Env, prenormRoot *prenorm.Process) *Process {
	rel, byID := bisim.Run(prenormRoot)
	classID, ok := rel.GetClass(prenormRoot.ID())
	if !ok {
		classID = prenormRoot.ID()
	}
	return buildClass(env, prenormRoot, rel, byID, classID)
}

func buildClass(env *process.Env, root *prenorm.Process, rel *equiv.Relation, byID map[ident.ID]*prenorm.Process, classID ident.ID) *Process {
	id := ident.Start(scopeNormal).AddID(root.ID()).AddID(classID).Finish()
	p := env.Intern(id, func(idx int) process.Process {
		memberIDs := rel.MembersOf(classID)
		members := make([]*prenorm.Process, len(memberIDs))
		for i, mid := range memberIDs {
			members[i] = byID[mid]
		}
		return &Process{
			id: id, idx: idx, env: env,
			root: root, rel: rel, byID: byID,
			classID: classID, members: members,
		}
	})
	return p.(*Process)
}

// ClassID returns the bisimulation class id this node represents.
func (p *Process) ClassID() ident.ID { return p.classID }

func (p *Process) ID() ident.ID             { return p.id }
func (p *Process) Variant() process.Variant { return process.VariantNormal }
func (p *Process) Precedence() int          { return 0 }
func (p *Process) Index() int               { return p.idx }

func (p *Process) VisitInitials(v process.EventVisitor) {
	ig := &process.IgnoreEvent{Except: event.Tau(), Inner: v}
	for _, m := range p.members {
		m.VisitInitials(ig)
	}
}

// VisitAfters emits at most one successor: by the bisimulation invariant,
// every class member's successor on e lands in the same class, so the
// first enabled member determines the whole edge.
func (p *Process) VisitAfters(e *event.Event, v process.EdgeVisitor) {
	if event.IsTau(e) {
		return
	}
	for _, m := range p.members {
		successors := process.Afters(m, e)
		if len(successors) == 0 {
			continue
		}
		successorClass, ok := p.rel.GetClass(successors[0].ID())
		if !ok {
			continue
		}
		v.Visit(e, buildClass(p.env, p.root, p.rel, p.byID, successorClass))
		return
	}
}

func (p *Process) Name(v process.NameVisitor) {
	names := make([]string, len(p.members))
	for i, m := range p.members {
		names[i] = process.NameString(m)
	}
	v.Write("⟦" + strings.Join(names, " ~ ") + "⟧")
}
