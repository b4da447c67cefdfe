package process

import (
	"sync"
	"sync/atomic"

	"github.com/hst-go/hst/csp/ident"
	"github.com/hst-go/hst/internal/contract"
)

var scopeCounter uint64

// Scope mints and fills named recursion targets for one parse of a
// mutually-recursive block of process definitions. Targets must be
// mintable before their bodies are known (so `P = a -> P` can refer to its
// own target while parsing the right-hand side), and every minted target
// must eventually be filled exactly once before the scope's processes are
// used operationally.
type Scope struct {
	env *Env
	tag uint64

	mu       sync.Mutex
	targets  map[string]*recursionTargetProcess
	unfilled int
}

// OpenScope starts a fresh recursion scope within env. Each call gets its
// own identity tag, so recursion targets minted by different scopes never
// collide even if they share a name.
func OpenScope(env *Env) *Scope {
	return &Scope{
		env:     env,
		tag:     atomic.AddUint64(&scopeCounter, 1),
		targets: make(map[string]*recursionTargetProcess),
	}
}

// Target returns the recursion target for name, minting it on first
// request within this scope. Calling Target again with the same name
// within the same scope returns the identical process.
func (s *Scope) Target(name string) Process {
	s.mu.Lock()
	defer s.mu.Unlock()

	if t, ok := s.targets[name]; ok {
		return t
	}

	id := ident.Start(scopeRecursionTarget).
		AddID(ident.ID(s.tag)).
		AddName([]byte(name)).
		Finish()

	var t *recursionTargetProcess
	s.env.intern(id, func(idx int) Process {
		t = &recursionTargetProcess{id: id, idx: idx, name: name}
		return t
	})
	s.targets[name] = t
	s.unfilled++
	return t
}

// Fill supplies the definition for a target previously minted by Target.
// It is a contract violation to fill a name that was never requested, or
// to fill the same name twice.
func (s *Scope) Fill(name string, body Process) {
	s.mu.Lock()
	t, ok := s.targets[name]
	s.mu.Unlock()
	contract.Assert(ok, "Fill called for %q, which was never requested from this scope", name)

	t.fill(body)

	s.mu.Lock()
	s.unfilled--
	s.mu.Unlock()
}

// Tag returns this scope's unique identity tag. The CSP0 parser's debug
// form (X@N) uses it to address a target by scope id directly, rather than
// through the lexical let-block that minted it.
func (s *Scope) Tag() uint64 {
	return s.tag
}

// UnfilledCount reports how many targets minted by this scope still lack a
// definition. A complete parse must drive this to zero before the scope's
// processes can be used.
func (s *Scope) UnfilledCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.unfilled
}

// AllFilled reports whether every target minted so far has been filled.
func (s *Scope) AllFilled() bool {
	return s.UnfilledCount() == 0
}
