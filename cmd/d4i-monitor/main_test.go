package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/0xamirreza/Docker4Iran/internal/monitor"
)

func TestRunMainExitsOnError(t *testing.T) {
	original := executeFunc
	defer func() { executeFunc = original }()
	executeFunc = func(args []string, stdout io.Writer, stderr io.Writer) error {
		return errors.New("boom")
	}

	var stderr bytes.Buffer
	code := -1
	runMain([]string{"d4i-monitor"}, io.Discard, &stderr, func(c int) { code = c })

	if code != 1 {
		t.Fatalf("expected exit code 1, got %d", code)
	}
	if !strings.Contains(stderr.String(), "boom") {
		t.Fatalf("expected stderr to contain error, got %q", stderr.String())
	}
}

func TestRootCommandRegistersSubcommands(t *testing.T) {
	cmd := newRootCmd()
	names := make(map[string]bool)
	for _, sub := range cmd.Commands() {
		names[sub.Name()] = true
	}
	for _, want := range []string{"daemon", "install-self", "status"} {
		if !names[want] {
			t.Fatalf("missing subcommand %q, got %v", want, names)
		}
	}
}

func TestStatusReportsLastRecord(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "monitor.log")
	rec := monitor.Record{
		Timestamp: time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC),
		Healthy:   true,
		Exited:    2,
	}
	data, err := json.Marshal(rec)
	if err != nil {
		t.Fatalf("marshal record: %v", err)
	}
	if err := os.WriteFile(logPath, append(data, '\n'), 0o644); err != nil {
		t.Fatalf("write log: %v", err)
	}

	got, ok, err := monitor.NewAppender(logPath).Last()
	if err != nil {
		t.Fatalf("read last record: %v", err)
	}
	if !ok {
		t.Fatal("expected a record")
	}
	if !got.Healthy || got.Exited != 2 {
		t.Fatalf("unexpected record %+v", got)
	}
}

func TestVersionString(t *testing.T) {
	originalVersion, originalCommit, originalDate := Version, Commit, BuildDate
	defer func() { Version, Commit, BuildDate = originalVersion, originalCommit, originalDate }()

	Version, Commit, BuildDate = "1.2.0", "unknown", "unknown"
	if got := versionString(); got != "1.2.0" {
		t.Fatalf("expected bare version, got %q", got)
	}
}
