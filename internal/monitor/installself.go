package monitor

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/0xamirreza/Docker4Iran/internal/fsutil"
	"github.com/0xamirreza/Docker4Iran/internal/logging"
	"github.com/0xamirreza/Docker4Iran/internal/messages"
	"github.com/0xamirreza/Docker4Iran/internal/paths"
)

// InstallSystem abstracts the host operations self-install needs.
type InstallSystem interface {
	Executable() (string, error)
	ReadFile(name string) ([]byte, error)
	MkdirAll(path string, perm os.FileMode) error
	WriteFileAtomic(filename string, data []byte, perm os.FileMode) error
	Getenv(key string) string
}

// RealInstallSystem implements InstallSystem against the host OS.
type RealInstallSystem struct{}

func (RealInstallSystem) Executable() (string, error) { return os.Executable() }
func (RealInstallSystem) ReadFile(name string) ([]byte, error) { return os.ReadFile(name) }
func (RealInstallSystem) MkdirAll(path string, perm os.FileMode) error {
	return os.MkdirAll(path, perm)
}
func (RealInstallSystem) WriteFileAtomic(filename string, data []byte, perm os.FileMode) error {
	return fsutil.WriteFileAtomic(filename, data, perm)
}
func (RealInstallSystem) Getenv(key string) string { return os.Getenv(key) }

// InstallSelf copies the running executable to the user's bin directory and
// creates the data directory. A PATH that does not cover the bin directory
// is reported to the operator, never rewritten.
func InstallSelf(sys InstallSystem, p paths.UserPaths) error {
	self, err := sys.Executable()
	if err != nil {
		return fmt.Errorf("locating running executable: %w", err)
	}

	if err := sys.MkdirAll(p.BinDir, 0o755); err != nil {
		return fmt.Errorf("creating bin directory: %w", err)
	}
	if err := sys.MkdirAll(p.DataDir, 0o755); err != nil {
		return fmt.Errorf("creating data directory: %w", err)
	}

	if self != p.MonitorBin {
		data, err := sys.ReadFile(self)
		if err != nil {
			return fmt.Errorf("reading running executable: %w", err)
		}
		if err := sys.WriteFileAtomic(p.MonitorBin, data, 0o755); err != nil {
			return fmt.Errorf("installing executable: %w", err)
		}
	}

	if !pathCovers(sys.Getenv("PATH"), p.BinDir) {
		logging.Warning(messages.MonitorPathGapFmt, p.BinDir)
	}
	logging.Success(messages.MonitorInstalledFmt, p.MonitorBin)
	return nil
}

// pathCovers reports whether dir is one of the PATH entries.
func pathCovers(pathEnv string, dir string) bool {
	for _, entry := range strings.Split(pathEnv, string(os.PathListSeparator)) {
		if entry != "" && filepath.Clean(entry) == filepath.Clean(dir) {
			return true
		}
	}
	return false
}
