// Package contract provides the assertion helpers used throughout hst for
// programmer errors: conditions that can only be false because of a bug in
// this codebase, never because of bad user input. They panic rather than
// return an error, matching the "assertions are a force multiplier for
// discovering bugs" stance the rest of the engine is held to.
package contract

import (
	"fmt"
	"runtime"
)

// Assert panics with a formatted "VIOLATION" message if condition is false.
// Use it for registry lookups that must succeed by construction, and for any
// other internal consistency check that should never fail outside of a bug.
func Assert(condition bool, format string, args ...interface{}) {
	if !condition {
		fail("ASSERTION", format, args...)
	}
}

// NotNil panics if value is nil. Use for arguments that the caller must
// already have validated (e.g. a Process handed back by the registry).
func NotNil(value interface{}, name string) {
	if value == nil {
		fail("ASSERTION", "%s must not be nil", name)
	}
}

// Unreachable panics unconditionally. Use in switch defaults over a closed
// set of variants (event kinds, process variants) where every case has
// supposedly been handled.
func Unreachable(format string, args ...interface{}) {
	fail("UNREACHABLE", format, args...)
}

func fail(kind, format string, args ...interface{}) {
	pc := make([]uintptr, 8)
	n := runtime.Callers(3, pc)
	frames := runtime.CallersFrames(pc[:n])

	msg := fmt.Sprintf("%s VIOLATION: "+format, append([]interface{}{kind}, args...)...)
	if frame, ok := frames.Next(); ok {
		msg += fmt.Sprintf("\n  at %s:%d", frame.File, frame.Line)
	}
	panic(msg)
}
