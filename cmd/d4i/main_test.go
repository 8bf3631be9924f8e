package main

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"
)

func TestRunMainExitsSilentlyOnSilentExitError(t *testing.T) {
	original := executeFunc
	defer func() { executeFunc = original }()
	executeFunc = func(args []string, stdout io.Writer, stderr io.Writer) error {
		return &SilentExitError{Code: 3}
	}

	var stderr bytes.Buffer
	code := -1
	runMain([]string{"d4i", "install"}, io.Discard, &stderr, func(c int) { code = c })

	if code != 3 {
		t.Fatalf("expected exit code 3, got %d", code)
	}
	if stderr.Len() != 0 {
		t.Fatalf("expected no stderr output, got %q", stderr.String())
	}
}

func TestRunMainPrintsGenericErrors(t *testing.T) {
	original := executeFunc
	defer func() { executeFunc = original }()
	executeFunc = func(args []string, stdout io.Writer, stderr io.Writer) error {
		return errors.New("boom")
	}

	var stderr bytes.Buffer
	code := -1
	runMain([]string{"d4i"}, io.Discard, &stderr, func(c int) { code = c })

	if code != 1 {
		t.Fatalf("expected exit code 1, got %d", code)
	}
	if !strings.Contains(stderr.String(), "boom") {
		t.Fatalf("expected stderr to contain error, got %q", stderr.String())
	}
}

func TestRunMainDoesNotExitOnSuccess(t *testing.T) {
	original := executeFunc
	defer func() { executeFunc = original }()
	executeFunc = func(args []string, stdout io.Writer, stderr io.Writer) error {
		return nil
	}

	exited := false
	runMain([]string{"d4i"}, io.Discard, io.Discard, func(int) { exited = true })

	if exited {
		t.Fatal("expected no exit call on success")
	}
}

func TestVersionString(t *testing.T) {
	originalVersion, originalCommit, originalDate := Version, Commit, BuildDate
	defer func() { Version, Commit, BuildDate = originalVersion, originalCommit, originalDate }()

	Version, Commit, BuildDate = "1.2.0", "unknown", "unknown"
	if got := versionString(); got != "1.2.0" {
		t.Fatalf("expected bare version, got %q", got)
	}

	Version, Commit, BuildDate = "1.2.0", "abc123", "2025-03-01"
	want := "1.2.0 (commit abc123, built 2025-03-01)"
	if got := versionString(); got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestExecuteUnknownCommandFails(t *testing.T) {
	var stdout, stderr bytes.Buffer
	err := execute([]string{"d4i", "no-such-command"}, &stdout, &stderr)
	if err == nil {
		t.Fatal("expected error for unknown command")
	}
}
