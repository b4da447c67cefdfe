// Package process implements the canonical, hash-identified process graph
// and its operator algebra: the process registry, the CSP operators
// (prefix, choice, interleave, sequential composition, recursion targets),
// traces, behaviour records, and the visitor protocols used to walk them.
//
// Every process is owned by an *Env for its entire lifetime; there is no
// free-standing Process construction outside of one. Processes never leave
// the Env that built them.
package process

import (
	"github.com/hst-go/hst/csp/event"
	"github.com/hst-go/hst/csp/ident"
)

// Variant identifies a process's operator. It exists for diagnostics and
// type-switch-free dispatch where callers need to branch on shape (the
// bisimulation and refinement algorithms never need to, and work purely
// through the Process interface).
type Variant int

const (
	VariantStop Variant = iota
	VariantSkip
	VariantPrefix
	VariantExternalChoice
	VariantInternalChoice
	VariantInterleave
	VariantSeqComp
	VariantRecursionTarget
	VariantPrenorm
	VariantNormal
)

func (v Variant) String() string {
	switch v {
	case VariantStop:
		return "STOP"
	case VariantSkip:
		return "SKIP"
	case VariantPrefix:
		return "prefix"
	case VariantExternalChoice:
		return "external-choice"
	case VariantInternalChoice:
		return "internal-choice"
	case VariantInterleave:
		return "interleave"
	case VariantSeqComp:
		return "sequential-composition"
	case VariantRecursionTarget:
		return "recursion-target"
	case VariantPrenorm:
		return "prenormalised"
	case VariantNormal:
		return "normalised"
	default:
		return "unknown"
	}
}

// Precedence ranks, tightest-binding first: primitives, prefix, ;, □, ⊓, ⫴.
// A subprocess is parenthesized by its parent's Name method when its own
// Precedence is numerically higher.
const (
	PrecPrimitive = iota
	PrecPrefix
	PrecSeqComp
	PrecExternalChoice
	PrecInternalChoice
	PrecInterleave
)

// Process is the capability set every operator variant implements. A
// reference implementation in a manually-memory-managed language would
// additionally carry a `free` entry in this table to release an operator's
// owned operand sets; Go's garbage collector makes that hook unnecessary
// here.
type Process interface {
	// ID is this process's content-addressed fingerprint.
	ID() ident.ID

	// Variant identifies which operator constructed this process.
	Variant() Variant

	// Precedence is this process's own binding strength, used by a parent's
	// Name method to decide whether to parenthesize it.
	Precedence() int

	// Index is the monotonically increasing insertion order assigned by the
	// owning Env when this process was first interned. Used to produce a
	// deterministic iteration order over sets and bags for printing.
	Index() int

	// VisitInitials calls v.Visit once per event in this process's initials.
	VisitInitials(v EventVisitor)

	// VisitAfters calls v.Visit once per successor process reachable by
	// performing e. For events not enabled, VisitAfters visits nothing.
	VisitAfters(e *event.Event, v EdgeVisitor)

	// Name renders this process's CSP0 surface syntax, parenthesizing
	// sub-expressions whose Precedence exceeds this process's own.
	Name(v NameVisitor)
}

// Initials collects and returns a process's initials as a Go slice, for
// callers that don't need visitor-style streaming.
func Initials(p Process) []*event.Event {
	var c CollectEvents
	p.VisitInitials(&c)
	return c.Events
}

// Enabled reports whether e is one of p's initials.
func Enabled(p Process, e *event.Event) bool {
	var c ContainsEvent
	c.Target = e
	p.VisitInitials(&c)
	return c.Found
}

// Afters collects and returns a process's successors on e as a Go slice.
func Afters(p Process, e *event.Event) []Process {
	var c CollectAfters
	p.VisitAfters(e, &c)
	return c.Processes
}

// NameString renders p's CSP0 syntax to a plain string; a thin convenience
// wrapper around the NameVisitor protocol for callers (tests, the CLI) that
// just want text.
func NameString(p Process) string {
	var sb stringNameVisitor
	p.Name(&sb)
	return string(sb)
}
