// Package refine decides traces refinement, Spec ⊑T Impl: does every
// trace the implementation can perform also occur as a trace of the
// specification? The check runs a paired breadth-first search over the
// normalised Spec and the raw Impl.
package refine

import (
	"github.com/hst-go/hst/csp/event"
	"github.com/hst-go/hst/csp/ident"
	"github.com/hst-go/hst/csp/normal"
	"github.com/hst-go/hst/csp/prenorm"
	"github.com/hst-go/hst/csp/process"
)

// Result is the verdict of a traces-refinement check. When Holds is false,
// Counterexample carries a trace that reaches the first pair at which
// refinement failed.
type Result struct {
	Holds          bool
	Counterexample *process.Trace
}

type pairKey struct {
	spec, impl ident.ID
}

type pending struct {
	spec  *normal.Process
	impl  process.Process
	trace *process.Trace
}

// CheckTracesRefinement is the full driver: prenormalise and normalise
// Spec, then run the paired BFS against Impl as-is.
func CheckTracesRefinement(env *process.Env, spec, impl process.Process) Result {
	normSpec := normal.Normalise(env, prenorm.Prenormalise(env, spec))
	return Refines(normSpec, impl)
}

// Refines runs the paired BFS directly against an already-normalised Spec.
// Precondition: spec must be normalised (CheckTracesRefinement enforces
// this; call Refines directly only when you already hold a normalised
// node, e.g. across repeated checks against the same Spec).
func Refines(spec *normal.Process, impl process.Process) Result {
	checked := map[pairKey]bool{{spec.ID(), impl.ID()}: true}
	queue := []pending{{spec: spec, impl: impl}}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		behaviourSpec := process.ComputeBehaviour(cur.spec, process.ModelTraces)
		behaviourImpl := process.ComputeBehaviour(cur.impl, process.ModelTraces)
		if !process.Refines(behaviourSpec, behaviourImpl) {
			return Result{Holds: false, Counterexample: cur.trace}
		}

		for _, e := range process.Initials(cur.impl) {
			nextSpec := cur.spec
			if !event.IsTau(e) {
				succ := process.Afters(cur.spec, e)
				if len(succ) == 0 {
					return Result{Holds: false, Counterexample: cur.trace}
				}
				nextSpec = succ[0].(*normal.Process)
			}

			nextTrace := cur.trace
			if !event.IsTau(e) {
				nextTrace = process.Extend(cur.trace, e)
			}

			for _, nextImpl := range process.Afters(cur.impl, e) {
				key := pairKey{nextSpec.ID(), nextImpl.ID()}
				if checked[key] {
					continue
				}
				checked[key] = true
				queue = append(queue, pending{spec: nextSpec, impl: nextImpl, trace: nextTrace})
			}
		}
	}

	return Result{Holds: true}
}
