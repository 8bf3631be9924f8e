// Package paths centralizes filesystem locations for the companion tool.
//
// The companion executable and its log always live under the invoking
// user's home, even when the orchestrator itself runs elevated, so every
// location is derived from an explicit home directory rather than the
// process environment.
package paths

import (
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/mitchellh/go-homedir"
)

const (
	// MonitorName is the companion executable's file name.
	MonitorName = "d4i-monitor"
	// dataDirName is the directory name under the XDG data home.
	dataDirName = "docker4iran"
	// LogName is the companion daemon's append-only log file name.
	LogName = "monitor.log"

	// ConfigFile is the orchestrator's optional system-wide config file.
	ConfigFile = "/etc/docker4iran/config.toml"
	// ShareDir holds the bundled selector scripts.
	ShareDir = "/usr/local/share/docker4iran"
)

// UserPaths are the per-user install locations for the companion tool.
type UserPaths struct {
	Home       string
	BinDir     string
	DataDir    string
	MonitorBin string
	LogFile    string
}

// ForHome derives the companion tool locations from an explicit home
// directory. Used when the orchestrator runs elevated and must resolve
// against the invoking user's home instead of root's.
func ForHome(home string) UserPaths {
	dataDir := filepath.Join(home, ".local", "share", dataDirName)
	binDir := filepath.Join(home, ".local", "bin")
	return UserPaths{
		Home:       home,
		BinDir:     binDir,
		DataDir:    dataDir,
		MonitorBin: filepath.Join(binDir, MonitorName),
		LogFile:    filepath.Join(dataDir, LogName),
	}
}

// Current resolves the companion tool locations for the current process
// user, preferring XDG base directories.
func Current() (UserPaths, error) {
	home, err := homedir.Dir()
	if err != nil {
		return UserPaths{}, err
	}
	p := ForHome(home)
	if xdg.DataHome != "" {
		p.DataDir = filepath.Join(xdg.DataHome, dataDirName)
		p.LogFile = filepath.Join(p.DataDir, LogName)
	}
	return p, nil
}
