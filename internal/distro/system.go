package distro

import (
	"os"
	"os/exec"
	"strings"
)

// System abstracts the host reads and tool invocations the resolver needs,
// so tests can present fabricated release metadata.
type System interface {
	ReadFile(name string) ([]byte, error)
	LookPath(file string) (string, error)
	Output(name string, args ...string) (string, error)
	Run(name string, args ...string) error
}

// RealSystem implements System against the host OS.
type RealSystem struct{}

// ReadFile reads the named file and returns the contents.
func (RealSystem) ReadFile(name string) ([]byte, error) {
	return os.ReadFile(name)
}

// LookPath searches PATH for an executable.
func (RealSystem) LookPath(file string) (string, error) {
	return exec.LookPath(file)
}

// Output runs a command and returns its trimmed stdout.
func (RealSystem) Output(name string, args ...string) (string, error) {
	out, err := exec.Command(name, args...).Output()
	return strings.TrimSpace(string(out)), err
}

// Run runs a command with inherited stderr for operator visibility.
func (RealSystem) Run(name string, args ...string) error {
	cmd := exec.Command(name, args...)
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
