package process

import (
	"github.com/hst-go/hst/csp/event"
	"github.com/hst-go/hst/csp/ident"
)

// Model names the observational model a Behaviour was computed under. Only
// the traces model is implemented; the type exists so Behaviour's shape
// matches what a failures/divergences extension would also need.
type Model int

const (
	// ModelTraces observes only the set of events a process can perform
	// immediately, with τ removed (τ is never part of an observed trace).
	ModelTraces Model = iota
)

// Behaviour is the observable footprint compared during refinement: a
// model tag, the initials under that model, and a content hash of those
// initials for cheap equality checks.
type Behaviour struct {
	Model    Model
	Initials *EventSet
	Hash     ident.ID
}

func hashInitials(events []*event.Event) ident.ID {
	ids := make([]ident.ID, len(events))
	for i, e := range events {
		ids[i] = e.ID()
	}
	return ident.Start("behaviour").AddIDSet(ids).Finish()
}

// ComputeBehaviour computes p's Behaviour under model: its initials with τ
// removed, plus a content hash of that set.
func ComputeBehaviour(p Process, model Model) *Behaviour {
	var collected CollectEvents
	p.VisitInitials(&IgnoreEvent{Except: event.Tau(), Inner: &collected})
	return &Behaviour{
		Model:    model,
		Initials: NewEventSet(collected.Events...),
		Hash:     hashInitials(collected.Events),
	}
}

// ComputeSetBehaviour computes the Behaviour of a process set as a whole:
// the union of every member's initials, τ removed. This is the same union
// normalised nodes expose as their own initials.
func ComputeSetBehaviour(members []Process, model Model) *Behaviour {
	var collected CollectEvents
	ig := &IgnoreEvent{Except: event.Tau(), Inner: &collected}
	for _, m := range members {
		m.VisitInitials(ig)
	}
	return &Behaviour{
		Model:    model,
		Initials: NewEventSet(collected.Events...),
		Hash:     hashInitials(collected.Events),
	}
}

// Equal reports whether two behaviours were computed under the same model
// and have identical initials.
func (b *Behaviour) Equal(other *Behaviour) bool {
	return b.Model == other.Model && b.Hash == other.Hash && b.Initials.Equal(other.Initials)
}

// Refines reports whether impl's initials are a subset of spec's, under
// the same model — the per-step condition traces refinement checks at
// every paired state.
func Refines(spec, impl *Behaviour) bool {
	return spec.Model == impl.Model && impl.Initials.Subset(spec.Initials)
}
