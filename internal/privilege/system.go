package privilege

import (
	"os"
	"os/exec"
	"os/user"

	"github.com/mitchellh/go-homedir"
	"golang.org/x/sys/unix"
)

// System abstracts the OS operations the privilege gate needs. The
// interface is package-local so tests can run the elevation logic against
// fixtures instead of a real sudo.
type System interface {
	Geteuid() int
	Getenv(key string) string
	LookupUserHome(username string) (string, error)
	CurrentHome() (string, error)
	Executable() (string, error)
	LookPath(file string) (string, error)
	RunInteractive(name string, args ...string) error
}

// RealSystem implements System against the host OS.
type RealSystem struct{}

// Geteuid returns the effective user id of the current process.
func (RealSystem) Geteuid() int {
	return unix.Geteuid()
}

// Getenv returns the value of the environment variable named by key.
func (RealSystem) Getenv(key string) string {
	return os.Getenv(key)
}

// LookupUserHome returns the home directory of the named user.
func (RealSystem) LookupUserHome(username string) (string, error) {
	u, err := user.Lookup(username)
	if err != nil {
		return "", err
	}
	return u.HomeDir, nil
}

// CurrentHome returns the current user's home directory.
func (RealSystem) CurrentHome() (string, error) {
	return homedir.Dir()
}

// Executable returns the path of the running binary.
func (RealSystem) Executable() (string, error) {
	return os.Executable()
}

// LookPath searches PATH for an executable.
func (RealSystem) LookPath(file string) (string, error) {
	return exec.LookPath(file)
}

// RunInteractive runs a command with inherited stdio, blocking until it
// exits.
func (RealSystem) RunInteractive(name string, args ...string) error {
	cmd := exec.Command(name, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
