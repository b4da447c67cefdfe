package process

import (
	"sync"

	"github.com/hst-go/hst/csp/event"
	"github.com/hst-go/hst/csp/ident"
	"github.com/hst-go/hst/internal/contract"
)

const scopeRecursionTarget ident.Scope = "recursion-target"

// recursionTargetProcess is a named placeholder created before its
// recursive definition has been parsed. Its operational behaviour is
// entirely that of whatever is later filled into it via Fill; until then
// it has no valid initials or afters.
type recursionTargetProcess struct {
	id   ident.ID
	idx  int
	name string

	mu         sync.RWMutex
	definition Process
}

func (p *recursionTargetProcess) ID() ident.ID     { return p.id }
func (p *recursionTargetProcess) Variant() Variant { return VariantRecursionTarget }
func (p *recursionTargetProcess) Precedence() int  { return PrecPrimitive }
func (p *recursionTargetProcess) Index() int       { return p.idx }

func (p *recursionTargetProcess) body() Process {
	p.mu.RLock()
	defer p.mu.RUnlock()
	contract.Assert(p.definition != nil, "recursion target %q read before its definition was filled", p.name)
	return p.definition
}

func (p *recursionTargetProcess) fill(body Process) {
	p.mu.Lock()
	defer p.mu.Unlock()
	contract.Assert(p.definition == nil, "recursion target %q filled twice", p.name)
	p.definition = body
}

func (p *recursionTargetProcess) isFilled() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.definition != nil
}

func (p *recursionTargetProcess) VisitInitials(v EventVisitor) {
	p.body().VisitInitials(v)
}

func (p *recursionTargetProcess) VisitAfters(e *event.Event, v EdgeVisitor) {
	p.body().VisitAfters(e, v)
}

func (p *recursionTargetProcess) Name(v NameVisitor) {
	v.Write(p.name)
}
