// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package main

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// captureStdout redirects os.Stdout for the duration of fn and returns
// everything written to it. The report line and each solution are short, so
// this never risks filling the pipe buffer before fn returns.
func captureStdout(t *testing.T, fn func() error) (string, error) {
	t.Helper()
	r, w, err := os.Pipe()
	require.NoError(t, err)
	old := os.Stdout
	os.Stdout = w
	defer func() { os.Stdout = old }()

	fnErr := fn()
	require.NoError(t, w.Close())
	out, err := io.ReadAll(r)
	require.NoError(t, err)
	return string(out), fnErr
}

// TestRunIdentityFixture drives the binary's run entry point end to end
// against spec §8's two-variable identity scenario, exercising the
// exit-code/stdout contract: a zero error and the expected report line plus
// both solutions.
func TestRunIdentityFixture(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "identity.zdd")
	require.NoError(t, os.WriteFile(path, []byte("1 2 B T\n2 2 T T\n3 1 1 2\n"), 0o644))

	old := zddFile
	zddFile = path
	defer func() { zddFile = old }()

	out, err := captureStdout(t, func() error { return run(nil, nil) })
	require.NoError(t, err)
	require.Contains(t, out, "num solutions 2")
	require.Contains(t, out, "[1 2]")
}

// TestRunMissingFile checks the error path: a nonexistent input file must
// make run return a non-nil error (which main turns into exit code 1),
// without panicking.
func TestRunMissingFile(t *testing.T) {
	old := zddFile
	zddFile = filepath.Join(t.TempDir(), "does-not-exist.zdd")
	defer func() { zddFile = old }()

	_, err := captureStdout(t, func() error { return run(nil, nil) })
	require.Error(t, err)
}

// TestRunInvalidZDD checks that a malformed input file surfaces as an error
// from run rather than a partial report.
func TestRunInvalidZDD(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "malformed.zdd")
	require.NoError(t, os.WriteFile(path, []byte("1 1 B\n"), 0o644))

	old := zddFile
	zddFile = path
	defer func() { zddFile = old }()

	_, err := captureStdout(t, func() error { return run(nil, nil) })
	require.Error(t, err)
}
