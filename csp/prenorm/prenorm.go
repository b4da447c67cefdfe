// Package prenorm builds deterministic, τ-free states out of τ-closed sets
// of the underlying process graph — the powerset-determinisation step
// between the raw operator algebra and bisimulation-based normalisation.
package prenorm

import (
	"strings"

	"github.com/hst-go/hst/csp/closure"
	"github.com/hst-go/hst/csp/event"
	"github.com/hst-go/hst/csp/ident"
	"github.com/hst-go/hst/csp/process"
)

const scopePrenorm ident.Scope = "prenorm"

// Process wraps a τ-closed set of underlying processes and presents them
// as a single deterministic state with no τ-labelled outgoing edge.
type Process struct {
	id      ident.ID
	idx     int
	env     *process.Env
	members *process.Set
}

// Prenormalise constructs the prenormalised process for the τ-closure of
// {seed}. Prenormalised processes are interned on the τ-closed set's
// content id, so two seeds whose τ-closures coincide share one node —
// this is the canonical powerset determinisation.
func Prenormalise(env *process.Env, seed process.Process) *Process {
	return build(env, closure.CloseTau([]process.Process{seed}))
}

func build(env *process.Env, members *process.Set) *Process {
	id := ident.Start(scopePrenorm).AddIDSet(members.IDs()).Finish()
	p := env.Intern(id, func(idx int) process.Process {
		return &Process{id: id, idx: idx, env: env, members: members}
	})
	return p.(*Process)
}

// Members returns the τ-closed set this state wraps.
func (p *Process) Members() *process.Set { return p.members }

func (p *Process) ID() ident.ID             { return p.id }
func (p *Process) Variant() process.Variant { return process.VariantPrenorm }
func (p *Process) Precedence() int          { return 0 }
func (p *Process) Index() int               { return p.idx }

func (p *Process) VisitInitials(v process.EventVisitor) {
	ig := &process.IgnoreEvent{Except: event.Tau(), Inner: v}
	for _, m := range p.members.Members() {
		m.VisitInitials(ig)
	}
}

func (p *Process) VisitAfters(e *event.Event, v process.EdgeVisitor) {
	if event.IsTau(e) {
		return
	}
	var successors []process.Process
	for _, m := range p.members.Members() {
		successors = append(successors, process.Afters(m, e)...)
	}
	if len(successors) == 0 {
		return
	}
	closedSet := closure.CloseTau(successors)
	v.Visit(e, build(p.env, closedSet))
}

func (p *Process) Name(v process.NameVisitor) {
	members := p.members.Members()
	names := make([]string, len(members))
	for i, m := range members {
		names[i] = process.NameString(m)
	}
	v.Write("{" + strings.Join(names, ", ") + "}")
}
