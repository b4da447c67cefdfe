package process

import (
	"github.com/hst-go/hst/csp/event"
	"github.com/hst-go/hst/csp/ident"
)

const scopeSkip ident.Scope = "SKIP"

type skipProcess struct {
	id  ident.ID
	idx int
	env *Env
}

// Skip returns the SKIP process: initials = {✔}, afters(✔) = {STOP}.
func Skip(env *Env) Process {
	id := ident.Start(scopeSkip).Finish()
	return env.intern(id, func(idx int) Process {
		return &skipProcess{id: id, idx: idx, env: env}
	})
}

func (p *skipProcess) ID() ident.ID     { return p.id }
func (p *skipProcess) Variant() Variant { return VariantSkip }
func (p *skipProcess) Precedence() int  { return PrecPrimitive }
func (p *skipProcess) Index() int       { return p.idx }

func (p *skipProcess) VisitInitials(v EventVisitor) {
	v.Visit(event.Tick())
}

func (p *skipProcess) VisitAfters(e *event.Event, v EdgeVisitor) {
	if event.IsTick(e) {
		v.Visit(e, Stop(p.env))
	}
}

func (p *skipProcess) Name(v NameVisitor) {
	v.Write("SKIP")
}
