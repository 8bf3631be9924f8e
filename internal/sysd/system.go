package sysd

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/0xamirreza/Docker4Iran/internal/fsutil"
	"github.com/0xamirreza/Docker4Iran/internal/paths"
)

// System abstracts the filesystem and systemctl operations the lifecycle
// manager needs so tests run against fixtures.
type System interface {
	Stat(name string) (os.FileInfo, error)
	ReadFile(name string) ([]byte, error)
	ReadDir(name string) ([]os.DirEntry, error)
	WriteFileAtomic(filename string, data []byte, perm os.FileMode) error
	Remove(name string) error
	Run(name string, args ...string) error
	Output(name string, args ...string) (string, error)
	RunAsUser(user string, name string, args ...string) error
	FindCompanion() (string, error)
}

// RealSystem implements System against the host OS.
type RealSystem struct{}

// Stat returns a FileInfo describing the named file.
func (RealSystem) Stat(name string) (os.FileInfo, error) {
	return os.Stat(name)
}

// ReadFile reads the named file and returns the contents.
func (RealSystem) ReadFile(name string) ([]byte, error) {
	return os.ReadFile(name)
}

// ReadDir reads the named directory, returning its entries.
func (RealSystem) ReadDir(name string) ([]os.DirEntry, error) {
	return os.ReadDir(name)
}

// WriteFileAtomic writes data to a file atomically.
func (RealSystem) WriteFileAtomic(filename string, data []byte, perm os.FileMode) error {
	return fsutil.WriteFileAtomic(filename, data, perm)
}

// Remove removes the named file or empty directory.
func (RealSystem) Remove(name string) error {
	return os.Remove(name)
}

// Run runs a command with inherited stderr.
func (RealSystem) Run(name string, args ...string) error {
	cmd := exec.Command(name, args...)
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

// Output runs a command and returns its trimmed stdout.
func (RealSystem) Output(name string, args ...string) (string, error) {
	out, err := exec.Command(name, args...).Output()
	return strings.TrimSpace(string(out)), err
}

// RunAsUser runs a command as another user via sudo -u, with inherited
// stdio. Used for the companion's self-install, which must resolve
// per-user paths as the invoking user.
func (RealSystem) RunAsUser(user string, name string, args ...string) error {
	sudoArgs := append([]string{"-u", user, name}, args...)
	cmd := exec.Command("sudo", sudoArgs...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

// FindCompanion locates the companion binary: next to the running
// orchestrator first, then on PATH.
func (RealSystem) FindCompanion() (string, error) {
	if self, err := os.Executable(); err == nil {
		sibling := filepath.Join(filepath.Dir(self), paths.MonitorName)
		if _, err := os.Stat(sibling); err == nil {
			return sibling, nil
		}
	}
	return exec.LookPath(paths.MonitorName)
}
