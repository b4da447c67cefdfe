package process

import (
	"github.com/hst-go/hst/csp/event"
	"github.com/hst-go/hst/csp/ident"
)

const scopePrefix ident.Scope = "prefix"

type prefixProcess struct {
	id   ident.ID
	idx  int
	env  *Env
	a    *event.Event
	next Process
}

// Prefix returns `a → next`: initials = {a}, afters(a) = {next}.
func Prefix(env *Env, a *event.Event, next Process) Process {
	id := ident.Start(scopePrefix).AddID(a.ID()).AddID(next.ID()).Finish()
	return env.intern(id, func(idx int) Process {
		return &prefixProcess{id: id, idx: idx, env: env, a: a, next: next}
	})
}

func (p *prefixProcess) ID() ident.ID     { return p.id }
func (p *prefixProcess) Variant() Variant { return VariantPrefix }
func (p *prefixProcess) Precedence() int  { return PrecPrefix }
func (p *prefixProcess) Index() int       { return p.idx }

func (p *prefixProcess) VisitInitials(v EventVisitor) {
	v.Visit(p.a)
}

func (p *prefixProcess) VisitAfters(e *event.Event, v EdgeVisitor) {
	if e.ID() == p.a.ID() {
		v.Visit(e, p.next)
	}
}

func (p *prefixProcess) Name(v NameVisitor) {
	v.Write(p.a.Name())
	v.Write(" -> ")
	writeChild(v, p.Precedence(), p.next)
}
