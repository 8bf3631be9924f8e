// Package netopt supervises the external DNS and registry-mirror selector
// programs. The selection algorithms themselves live in those programs; this
// package only invokes them and interprets success or failure, with a probe
// against the vendor download endpoint as the deciding evidence.
package netopt

import (
	"net/http"
	"os"
	"os/exec"
	"time"
)

// System abstracts process execution and the connectivity probe.
type System interface {
	Stat(name string) (os.FileInfo, error)
	RunInteractive(name string, args ...string) error
	Run(name string, args ...string) error
	Probe(url string, timeout time.Duration) error
}

// RealSystem implements System against the host OS.
type RealSystem struct{}

// Stat returns a FileInfo describing the named file.
func (RealSystem) Stat(name string) (os.FileInfo, error) {
	return os.Stat(name)
}

// RunInteractive runs a command with inherited stdio. The selectors are
// interactive programs; they own the terminal while they run.
func (RealSystem) RunInteractive(name string, args ...string) error {
	cmd := exec.Command(name, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

// Run runs a command with inherited stderr only.
func (RealSystem) Run(name string, args ...string) error {
	cmd := exec.Command(name, args...)
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

// Probe issues a HEAD request against url with the given timeout.
func (RealSystem) Probe(url string, timeout time.Duration) error {
	client := &http.Client{Timeout: timeout}
	resp, err := client.Head(url)
	if err != nil {
		return err
	}
	return resp.Body.Close()
}
