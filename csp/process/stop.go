package process

import (
	"github.com/hst-go/hst/csp/event"
	"github.com/hst-go/hst/csp/ident"
)

// scopeStop is STOP's identifier scheme scope tag. STOP has no operands, so
// every STOP constructed in the same Env interns to the same process.
const scopeStop ident.Scope = "STOP"

type stopProcess struct {
	id  ident.ID
	idx int
}

// Stop returns the STOP process: initials = ∅, afters(any) = ∅.
func Stop(env *Env) Process {
	id := ident.Start(scopeStop).Finish()
	return env.intern(id, func(idx int) Process {
		return &stopProcess{id: id, idx: idx}
	})
}

func (p *stopProcess) ID() ident.ID      { return p.id }
func (p *stopProcess) Variant() Variant  { return VariantStop }
func (p *stopProcess) Precedence() int   { return PrecPrimitive }
func (p *stopProcess) Index() int        { return p.idx }
func (p *stopProcess) VisitInitials(EventVisitor)           {}
func (p *stopProcess) VisitAfters(*event.Event, EdgeVisitor) {}

func (p *stopProcess) Name(v NameVisitor) {
	v.Write("STOP")
}
