package process

import (
	"github.com/hst-go/hst/csp/event"
	"github.com/hst-go/hst/csp/ident"
)

const scopeSeqComp ident.Scope = "seq-comp"

type seqCompProcess struct {
	id     ident.ID
	idx    int
	env    *Env
	first  Process
	second Process
}

// SeqComp returns `first ; second`. While first has not offered ✔, its
// non-tick initials pass straight through; the moment first offers ✔ that
// tick is swallowed and replaced with a τ step into second, never exposed
// as an observable event of the composite.
func SeqComp(env *Env, first, second Process) Process {
	id := ident.Start(scopeSeqComp).AddID(first.ID()).AddID(second.ID()).Finish()
	return env.intern(id, func(idx int) Process {
		return &seqCompProcess{id: id, idx: idx, env: env, first: first, second: second}
	})
}

func (p *seqCompProcess) ID() ident.ID     { return p.id }
func (p *seqCompProcess) Variant() Variant { return VariantSeqComp }
func (p *seqCompProcess) Precedence() int  { return PrecSeqComp }
func (p *seqCompProcess) Index() int       { return p.idx }

func (p *seqCompProcess) VisitInitials(v EventVisitor) {
	ig := &IgnoreEvent{Except: event.Tick(), Inner: v}
	p.first.VisitInitials(ig)
	if Enabled(p.first, event.Tick()) {
		v.Visit(event.Tau())
	}
}

func (p *seqCompProcess) VisitAfters(e *event.Event, v EdgeVisitor) {
	if event.IsTick(e) {
		return
	}
	if event.IsTau(e) && Enabled(p.first, event.Tick()) {
		v.Visit(e, p.second)
	}
	if event.IsTau(e) {
		for _, successor := range Afters(p.first, event.Tau()) {
			v.Visit(e, SeqComp(p.env, successor, p.second))
		}
		return
	}
	for _, successor := range Afters(p.first, e) {
		v.Visit(e, SeqComp(p.env, successor, p.second))
	}
}

func (p *seqCompProcess) Name(v NameVisitor) {
	writeChild(v, p.Precedence(), p.first)
	v.Write(" ; ")
	writeChild(v, p.Precedence(), p.second)
}
