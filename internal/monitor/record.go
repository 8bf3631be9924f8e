// Package monitor implements the companion daemon: a fixed-interval poll of
// runtime health and stopped containers, appended as JSON lines to a
// per-user log.
package monitor

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Record is one poll result. One record is one log line.
type Record struct {
	Timestamp  time.Time `json:"timestamp"`
	Healthy    bool      `json:"healthy"`
	Error      string    `json:"error,omitempty"`
	Exited     int       `json:"exited"`
	Containers []string  `json:"containers,omitempty"`
}

// Appender writes records to an append-only JSONL log. Each record is
// marshaled first and written with its newline in a single call, so a
// stop signal mid-tick never leaves a partial line behind.
type Appender struct {
	path string
}

// NewAppender creates an Appender writing to path.
func NewAppender(path string) *Appender {
	return &Appender{path: path}
}

// Append adds one record to the log.
func (a *Appender) Append(rec Record) error {
	if err := os.MkdirAll(filepath.Dir(a.path), 0o755); err != nil {
		return fmt.Errorf("creating log directory: %w", err)
	}

	f, err := os.OpenFile(a.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("opening log: %w", err)
	}
	defer f.Close()

	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("marshaling record: %w", err)
	}
	if _, err := f.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("writing record: %w", err)
	}
	return nil
}

// Last returns the most recent record in the log, or false when the log is
// empty or absent.
func (a *Appender) Last() (Record, bool, error) {
	data, err := os.ReadFile(a.path)
	if err != nil {
		if os.IsNotExist(err) {
			return Record{}, false, nil
		}
		return Record{}, false, err
	}

	lines := bytes.Split(bytes.TrimRight(data, "\n"), []byte("\n"))
	last := lines[len(lines)-1]
	if len(last) == 0 {
		return Record{}, false, nil
	}
	var rec Record
	if err := json.Unmarshal(last, &rec); err != nil {
		return Record{}, false, fmt.Errorf("parsing log line: %w", err)
	}
	return rec, true, nil
}
