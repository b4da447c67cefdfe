package process

import (
	"github.com/hst-go/hst/csp/event"
	"github.com/hst-go/hst/csp/ident"
)

const scopeExternalChoice ident.Scope = "external-choice"

type externalChoiceProcess struct {
	id      ident.ID
	idx     int
	env     *Env
	members *Set
}

// ExternalChoice returns `□ members`. A singleton choice behaves exactly
// like its one member, but is still a distinct algebraic object: no
// operator here special-cases singleton operands, so identity is left
// entirely to interning on the computed id.
func ExternalChoice(env *Env, members *Set) Process {
	id := ident.Start(scopeExternalChoice).AddIDSet(members.IDs()).Finish()
	return env.intern(id, func(idx int) Process {
		return &externalChoiceProcess{id: id, idx: idx, env: env, members: members}
	})
}

func (p *externalChoiceProcess) ID() ident.ID     { return p.id }
func (p *externalChoiceProcess) Variant() Variant { return VariantExternalChoice }
func (p *externalChoiceProcess) Precedence() int  { return PrecExternalChoice }
func (p *externalChoiceProcess) Index() int       { return p.idx }

func (p *externalChoiceProcess) VisitInitials(v EventVisitor) {
	for _, m := range p.members.Members() {
		m.VisitInitials(v)
	}
}

func (p *externalChoiceProcess) VisitAfters(e *event.Event, v EdgeVisitor) {
	if event.IsTau(e) {
		// τ does not resolve the choice: for every member P and every
		// τ-successor P' of P, emit □(Ps \ {P} ∪ {P'}).
		for _, m := range p.members.Members() {
			for _, successor := range Afters(m, e) {
				replaced := p.members.Without(m.ID())
				newMembers := NewSetBuilder().AddAll(replaced.Members()...).Add(successor).Build()
				v.Visit(e, ExternalChoice(p.env, newMembers))
			}
		}
		return
	}
	// A non-τ event resolves the choice outright: each member's successor
	// on e is offered directly, not re-wrapped in a choice.
	for _, m := range p.members.Members() {
		for _, successor := range Afters(m, e) {
			v.Visit(e, successor)
		}
	}
}

func (p *externalChoiceProcess) Name(v NameVisitor) {
	members := p.members.Members()
	if len(members) == 0 {
		v.Write("STOP") // □{} has no initials, same observable behaviour as STOP
		return
	}
	for i, m := range members {
		if i > 0 {
			v.Write(" [] ")
		}
		writeChild(v, p.Precedence(), m)
	}
}
