package process

import (
	"github.com/hst-go/hst/csp/event"
	"github.com/hst-go/hst/csp/ident"
)

const scopeInterleave ident.Scope = "interleave"

type interleaveProcess struct {
	id      ident.ID
	idx     int
	env     *Env
	members *Bag
}

// Interleave returns `⫴ members`. A non-τ, non-✔ event advances exactly one
// member; τ both advances a member and lets any member offering ✔ collapse
// to STOP; ✔ itself is offered, generalised, whenever every member is stuck
// (has no initials at all), not only when the bag is a literal {STOP} bag.
func Interleave(env *Env, members *Bag) Process {
	id := ident.Start(scopeInterleave).AddWeightedIDSet(members.Counts()).Finish()
	return env.intern(id, func(idx int) Process {
		return &interleaveProcess{id: id, idx: idx, env: env, members: members}
	})
}

func hasNoInitials(p Process) bool {
	var any AnyEvent
	p.VisitInitials(&any)
	return !any.Any
}

func allMembersStuck(bag *Bag) bool {
	for _, m := range bag.DistinctMembers() {
		if !hasNoInitials(m) {
			return false
		}
	}
	return true
}

func (p *interleaveProcess) ID() ident.ID     { return p.id }
func (p *interleaveProcess) Variant() Variant { return VariantInterleave }
func (p *interleaveProcess) Precedence() int  { return PrecInterleave }
func (p *interleaveProcess) Index() int       { return p.idx }

func (p *interleaveProcess) VisitInitials(v EventVisitor) {
	var collected CollectEvents
	for _, m := range p.members.DistinctMembers() {
		var raw CollectEvents
		m.VisitInitials(&raw)
		for _, e := range raw.Events {
			if event.IsTick(e) {
				collected.Visit(event.Tau())
			} else {
				collected.Visit(e)
			}
		}
	}
	if len(collected.Events) == 0 {
		v.Visit(event.Tick())
		return
	}
	for _, e := range collected.Events {
		v.Visit(e)
	}
}

func (p *interleaveProcess) VisitAfters(e *event.Event, v EdgeVisitor) {
	switch {
	case event.IsTick(e):
		// Rule 4 (generalised): only when every member is stuck (no
		// initials at all) can the whole interleaving terminate.
		if allMembersStuck(p.members) {
			v.Visit(e, Stop(p.env))
		}
		return

	case event.IsTau(e):
		// Rule 1: apply the ordinary interleave step with e = τ.
		p.stepEachMember(e, v)
		// Rule 3: any member offering ✔ can be silently replaced by STOP.
		for _, m := range p.members.DistinctMembers() {
			if Enabled(m, event.Tick()) {
				v.Visit(e, Interleave(p.env, p.members.ReplaceOne(m.ID(), Stop(p.env))))
			}
		}
		return

	default:
		// Rule 2: an ordinary event just advances one member.
		p.stepEachMember(e, v)
	}
}

// stepEachMember implements "for P in Ps, for P' in afters(P, e): emit
// ⫴(Ps \ {P} ∪ {P'})", shared by rules 1 and 2.
func (p *interleaveProcess) stepEachMember(e *event.Event, v EdgeVisitor) {
	for _, m := range p.members.DistinctMembers() {
		for _, successor := range Afters(m, e) {
			v.Visit(e, Interleave(p.env, p.members.ReplaceOne(m.ID(), successor)))
		}
	}
}

func (p *interleaveProcess) Name(v NameVisitor) {
	members := p.members.DistinctMembers()
	if len(members) == 0 {
		v.Write("STOP")
		return
	}
	for i, m := range members {
		if i > 0 {
			v.Write(" ||| ")
		}
		writeChild(v, p.Precedence(), m)
	}
}
