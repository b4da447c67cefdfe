package process

import (
	"github.com/hst-go/hst/csp/event"
	"github.com/hst-go/hst/csp/ident"
)

const scopeInternalChoice ident.Scope = "internal-choice"

type internalChoiceProcess struct {
	id      ident.ID
	idx     int
	members *Set
}

// InternalChoice returns `⊓ members`: initials = {τ}, afters(τ) = members,
// afters(anything else) = ∅.
func InternalChoice(env *Env, members *Set) Process {
	id := ident.Start(scopeInternalChoice).AddIDSet(members.IDs()).Finish()
	return env.intern(id, func(idx int) Process {
		return &internalChoiceProcess{id: id, idx: idx, members: members}
	})
}

func (p *internalChoiceProcess) ID() ident.ID     { return p.id }
func (p *internalChoiceProcess) Variant() Variant { return VariantInternalChoice }
func (p *internalChoiceProcess) Precedence() int  { return PrecInternalChoice }
func (p *internalChoiceProcess) Index() int       { return p.idx }

func (p *internalChoiceProcess) VisitInitials(v EventVisitor) {
	v.Visit(event.Tau())
}

func (p *internalChoiceProcess) VisitAfters(e *event.Event, v EdgeVisitor) {
	if !event.IsTau(e) {
		return
	}
	for _, m := range p.members.Members() {
		v.Visit(e, m)
	}
}

func (p *internalChoiceProcess) Name(v NameVisitor) {
	members := p.members.Members()
	if len(members) == 0 {
		v.Write("STOP") // ⊓{} offers τ to nothing further; STOP is the closest surface rendering
		return
	}
	for i, m := range members {
		if i > 0 {
			v.Write(" |~| ")
		}
		writeChild(v, p.Precedence(), m)
	}
}
