package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeCSP0(t *testing.T, contents string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "input.csp0")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func runCmd(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestReachableCommandListsProcesses(t *testing.T) {
	path := writeCSP0(t, "(a -> STOP) [] (b -> STOP)")
	out, err := runCmd(t, "reachable", path)
	require.NoError(t, err)
	require.Contains(t, out, "STOP")
}

func TestRefinesCommandPrintsTrueForReflexiveCheck(t *testing.T) {
	path := writeCSP0(t, "a -> STOP")
	out, err := runCmd(t, "refines", path, "", "")
	require.NoError(t, err)
	require.Contains(t, out, "true")
}

func TestRefinesCommandExitsNonZeroOnFalseVerdict(t *testing.T) {
	path := writeCSP0(t, "let A = a -> STOP B = (a -> STOP) [] (b -> STOP) within A")
	_, err := runCmd(t, "refines", path, "A", "B")
	require.Error(t, err)
}

func TestTraceCommandPrintsANonEmptyTraceForAPrefixedProcess(t *testing.T) {
	path := writeCSP0(t, "a -> b -> STOP")
	out, err := runCmd(t, "trace", path)
	require.NoError(t, err)
	require.Contains(t, out, "a")
}

func TestVersionCommand(t *testing.T) {
	out, err := runCmd(t, "version")
	require.NoError(t, err)
	require.Contains(t, out, version)
}

func TestReachableCommandRejectsUnknownProcessName(t *testing.T) {
	path := writeCSP0(t, "STOP")
	_, err := runCmd(t, "reachable", path, "NoSuchProcess")
	require.Error(t, err)
}
