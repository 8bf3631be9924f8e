// Package testutil provides shell-stub helpers for tests that exercise
// process execution against a fixture PATH.
package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
)

// WriteStub writes an executable shell stub that exits successfully.
// t is the active test; dir is the output directory; name is the executable file name.
func WriteStub(t *testing.T, dir string, name string) {
	t.Helper()
	WriteStubWithExit(t, dir, name, 0)
}

// WriteStubWithExit writes an executable shell stub that exits with the provided code.
// t is the active test; dir is the output directory; name is the executable file name.
func WriteStubWithExit(t *testing.T, dir string, name string, exitCode int) {
	t.Helper()
	WriteScript(t, dir, name, fmt.Sprintf("#!/bin/sh\nexit %d\n", exitCode))
}

// WriteStubExpectArg writes an executable shell stub that succeeds only when expectedArg is present.
// t is the active test; dir is the output directory; name is the executable file name.
func WriteStubExpectArg(t *testing.T, dir string, name string, expectedArg string) {
	t.Helper()
	WriteScript(t, dir, name, fmt.Sprintf("#!/bin/sh\nfor arg in \"$@\"; do\n  if [ \"$arg\" = \"%s\" ]; then exit 0; fi\ndone\nexit 1\n", expectedArg))
}

// WriteScript writes an executable script with the provided content.
// t is the active test; dir is the output directory; name is the executable file name.
func WriteScript(t *testing.T, dir string, name string, content string) {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o755); err != nil {
		t.Fatalf("write stub: %v", err)
	}
}
