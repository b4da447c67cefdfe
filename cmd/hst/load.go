package main

import (
	"fmt"
	"os"

	"golang.org/x/crypto/sha3"

	"github.com/hst-go/hst/csp/process"
	"github.com/hst-go/hst/csp0"
	"github.com/hst-go/hst/internal/tracelog"
)

// loaded bundles the result of reading and parsing one CSP0 file: the
// environment every process in the program was interned into, and the
// parsed program itself (root expression plus every let-bound name).
type loaded struct {
	env     *process.Env
	program *csp0.Program
}

// loadFile reads path, parses it as CSP0, and reports a run-tag banner on
// stderr when debug is enabled. The banner is purely cosmetic: a short
// display tag derived from the source text, useful for telling concurrent
// -debug runs apart in a shared terminal, never fed back into the engine.
func loadFile(path string, tracer *tracelog.Tracer) (*loaded, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	if tracer.Enabled() {
		tracer.Tracef("run %s: loading %s (%d bytes)", runTag(src), path, len(src))
	}

	env := process.NewEnv()
	program, err := csp0.Parse(src, env)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	if tracer.Enabled() {
		tracer.Tracef("parsed %s: %d named process(es), %d interned", path, len(program.Names), env.Size())
	}
	return &loaded{env: env, program: program}, nil
}

// lookupProcess resolves name against the loaded program, falling back to
// the parsed root when name is empty (so single-process files don't need a
// let binding just to be addressable from the CLI).
func lookupProcess(l *loaded, name string) (process.Process, error) {
	if name == "" {
		return l.program.Root, nil
	}
	p, ok := l.program.Lookup(name)
	if !ok {
		return nil, fmt.Errorf("no process named %q in this file", name)
	}
	return p, nil
}

// runTag derives an 8-hex-character display tag from the source text via
// SHA3-224, mirroring the teacher's HKDF-over-digest derivation for
// DisplayIDs: a short, deterministic, but otherwise meaningless label.
func runTag(src []byte) string {
	digest := sha3.Sum224(src)
	return fmt.Sprintf("%x", digest[:4])
}
