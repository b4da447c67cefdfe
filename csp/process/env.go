package process

import (
	"sync"

	"github.com/hst-go/hst/csp/ident"
	"github.com/hst-go/hst/internal/contract"
)

// Env is the process registry: it owns one
// canonical instance per structurally-equal process expression for its
// entire lifetime. Unlike the event registry (a package-level singleton),
// an Env is a value the caller creates and may discard; tearing one down
// (letting it become unreachable) tears down every process it interned —
// Go's garbage collector does that for us, so Env has no explicit Close.
type Env struct {
	mu        sync.Mutex
	byID      map[ident.ID]Process
	nextIndex int
}

// NewEnv creates an empty environment.
func NewEnv() *Env {
	return &Env{byID: make(map[ident.ID]Process)}
}

// Get returns the process registered under id, or (nil, false) if absent.
func (e *Env) Get(id ident.ID) (Process, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	p, ok := e.byID[id]
	return p, ok
}

// Require returns the process registered under id, asserting that it is
// present. Use this at call sites where absence can only mean a bug (e.g.
// looking up a process id that this same Env must already have interned).
func (e *Env) Require(id ident.ID) Process {
	p, ok := e.Get(id)
	contract.Assert(ok, "process %d must already be registered", id)
	return p
}

// intern is the shared factory pattern every operator constructor uses:
// compute id from the operands first; if a process is
// already registered under that id, return it; otherwise build, register,
// and return the new one. build receives the insertion index that will be
// assigned to the new process.
func (e *Env) intern(id ident.ID, build func(idx int) Process) Process {
	e.mu.Lock()
	defer e.mu.Unlock()
	if existing, ok := e.byID[id]; ok {
		return existing
	}
	idx := e.nextIndex
	e.nextIndex++
	p := build(idx)
	contract.Assert(p.ID() == id, "constructed process id %d does not match computed id %d", p.ID(), id)
	e.byID[id] = p
	return p
}

// Intern exposes the same interning pattern as every in-package operator
// constructor to other packages that define additional Process variants
// (prenormalised and normalised processes): compute id from the operands
// first, then call Intern so identical expressions still share one object.
func (e *Env) Intern(id ident.ID, build func(idx int) Process) Process {
	return e.intern(id, build)
}

// Size reports how many distinct processes this Env has interned so far.
func (e *Env) Size() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.byID)
}
