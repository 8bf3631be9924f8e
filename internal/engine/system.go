// Package engine installs and uninstalls the Docker runtime packages and
// verifies post-install health.
package engine

import (
	"os"
	"os/exec"
	"strings"
)

// System abstracts package-manager and service-manager invocations.
type System interface {
	Run(name string, args ...string) error
	Output(name string, args ...string) (string, error)
	RemoveAll(path string) error
}

// RealSystem implements System against the host OS.
type RealSystem struct{}

// Run runs a command with inherited stdout/stderr so apt and systemctl
// progress stays visible.
func (RealSystem) Run(name string, args ...string) error {
	cmd := exec.Command(name, args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

// Output runs a command and returns its trimmed stdout.
func (RealSystem) Output(name string, args ...string) (string, error) {
	out, err := exec.Command(name, args...).Output()
	return strings.TrimSpace(string(out)), err
}

// RemoveAll removes path and any children it contains.
func (RealSystem) RemoveAll(path string) error {
	return os.RemoveAll(path)
}
