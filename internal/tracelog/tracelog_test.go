package tracelog

import (
	"bytes"
	"os"
	"testing"
)

func TestDisabledTracerWritesNothing(t *testing.T) {
	var buf bytes.Buffer
	tr := New(false, &buf)
	tr.Tracef("should not appear: %d", 1)
	if buf.Len() != 0 {
		t.Fatalf("disabled tracer wrote %q", buf.String())
	}
}

func TestEnabledTracerWritesLine(t *testing.T) {
	var buf bytes.Buffer
	tr := New(true, &buf)
	tr.Tracef("event %s", "a")
	if got, want := buf.String(), "event a\n"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestNilTracerIsSafe(t *testing.T) {
	var tr *Tracer
	if tr.Enabled() {
		t.Fatal("nil tracer must report disabled")
	}
	tr.Tracef("must not panic")
}

func TestFromEnvHonorsEnvironmentVariable(t *testing.T) {
	os.Unsetenv("HST_TRACE")
	if FromEnv().Enabled() {
		t.Fatal("tracer should be disabled when HST_TRACE is unset")
	}

	os.Setenv("HST_TRACE", "1")
	defer os.Unsetenv("HST_TRACE")
	if !FromEnv().Enabled() {
		t.Fatal("tracer should be enabled when HST_TRACE is set")
	}
}
