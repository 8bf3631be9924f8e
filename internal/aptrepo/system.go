package aptrepo

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/0xamirreza/Docker4Iran/internal/fsutil"
)

// System abstracts the filesystem, process, and network operations the
// reconciler needs so tests run against fixtures instead of /etc/apt.
type System interface {
	MkdirAll(path string, perm os.FileMode) error
	ReadDir(name string) ([]os.DirEntry, error)
	ReadFile(name string) ([]byte, error)
	WriteFileAtomic(filename string, data []byte, perm os.FileMode) error
	Rename(oldpath string, newpath string) error
	Remove(name string) error
	Chmod(name string, mode os.FileMode) error
	Stat(name string) (os.FileInfo, error)
	Run(name string, args ...string) error
	Output(name string, args ...string) (string, error)
	Download(url string) ([]byte, error)
}

// RealSystem implements System against the host OS.
type RealSystem struct{}

// MkdirAll creates a directory and all parent directories.
func (RealSystem) MkdirAll(path string, perm os.FileMode) error {
	return os.MkdirAll(path, perm)
}

// ReadDir reads the named directory, returning its entries.
func (RealSystem) ReadDir(name string) ([]os.DirEntry, error) {
	return os.ReadDir(name)
}

// ReadFile reads the named file and returns the contents.
func (RealSystem) ReadFile(name string) ([]byte, error) {
	return os.ReadFile(name)
}

// WriteFileAtomic writes data to a file atomically.
func (RealSystem) WriteFileAtomic(filename string, data []byte, perm os.FileMode) error {
	return fsutil.WriteFileAtomic(filename, data, perm)
}

// Rename moves oldpath to newpath.
func (RealSystem) Rename(oldpath string, newpath string) error {
	return os.Rename(oldpath, newpath)
}

// Remove removes the named file.
func (RealSystem) Remove(name string) error {
	return os.Remove(name)
}

// Chmod changes the mode of the named file.
func (RealSystem) Chmod(name string, mode os.FileMode) error {
	return os.Chmod(name, mode)
}

// Stat returns a FileInfo describing the named file.
func (RealSystem) Stat(name string) (os.FileInfo, error) {
	return os.Stat(name)
}

// Run runs a command with inherited stdout/stderr so apt progress stays
// visible to the operator.
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

// Download fetches a URL over HTTPS and returns the response body.
func (RealSystem) Download(url string) ([]byte, error) {
	client := &http.Client{Timeout: 30 * time.Second}
	resp, err := client.Get(url)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("GET %s: %s", url, resp.Status)
	}
	return io.ReadAll(resp.Body)
}
