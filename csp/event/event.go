// Package event implements the event registry: a single process-wide table
// interning Event values by name, plus the two distinguished events τ and
// ✔.
//
// The registry is a package-level singleton, not owned by any Environment:
// events live in a separate process-wide registry created on first use,
// independent of how many Environments come and go around it.
package event

import (
	"sync"

	"github.com/hst-go/hst/csp/ident"
)

// Event is an immutable, interned event name. Two Events are the same
// event if and only if they have the same ID, which is itself a pure
// function of the name bytes.
type Event struct {
	id   ident.ID
	name string
}

// ID returns the event's fingerprint.
func (e *Event) ID() ident.ID { return e.id }

// Name returns the event's display name.
func (e *Event) Name() string { return e.name }

func (e *Event) String() string { return e.name }

var (
	registryMu sync.Mutex
	registry   = make(map[ident.ID]*Event)
)

// Get interns name, returning the single Event instance for it. Calling Get
// twice with the same name always returns the same *Event.
func Get(name string) *Event {
	return GetBytes([]byte(name))
}

// GetBytes is Get for a raw byte slice, used by the CSP0 lexer which slices
// identifiers directly out of the source buffer.
func GetBytes(name []byte) *Event {
	id := ident.HashName(name)

	registryMu.Lock()
	defer registryMu.Unlock()
	if e, ok := registry[id]; ok {
		return e
	}
	e := &Event{id: id, name: string(name)}
	registry[id] = e
	return e
}

// lookup returns a previously-interned event by id, or nil.
func lookup(id ident.ID) *Event {
	registryMu.Lock()
	defer registryMu.Unlock()
	return registry[id]
}

var (
	tauOnce  sync.Once
	tau      *Event
	tickOnce sync.Once
	tick     *Event
)

// Tau returns the distinguished silent/internal event τ.
func Tau() *Event {
	tauOnce.Do(func() { tau = Get("τ") })
	return tau
}

// Tick returns the distinguished successful-termination event ✔.
func Tick() *Event {
	tickOnce.Do(func() { tick = Get("✔") })
	return tick
}

// IsTau reports whether e is the distinguished silent event.
func IsTau(e *Event) bool {
	return e != nil && e.id == Tau().id
}

// IsTick reports whether e is the distinguished termination event.
func IsTick(e *Event) bool {
	return e != nil && e.id == Tick().id
}
