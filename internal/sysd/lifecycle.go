package sysd

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/0xamirreza/Docker4Iran/internal/logging"
	"github.com/0xamirreza/Docker4Iran/internal/messages"
	"github.com/0xamirreza/Docker4Iran/internal/outcome"
	"github.com/0xamirreza/Docker4Iran/internal/paths"
)

// ServiceName is the companion daemon's systemd unit name.
const ServiceName = "d4i-monitor"

// shellRCFiles are checked (never modified) for PATH entries on uninstall.
var shellRCFiles = []string{".bashrc", ".profile", ".zshrc"}

// Manager installs and removes the companion tool and its systemd unit.
type Manager struct {
	Sys System
	// User is the invoking user the service runs as.
	User string
	// Paths are the invoking user's companion-tool locations.
	Paths paths.UserPaths
	// UnitPath is the unit file location.
	UnitPath string
}

// NewManager wires a Manager for the invoking user against the real host.
func NewManager(user string, userPaths paths.UserPaths) Manager {
	return Manager{
		Sys:      RealSystem{},
		User:     user,
		Paths:    userPaths,
		UnitPath: filepath.Join("/etc/systemd/system", ServiceName+".service"),
	}
}

// InstallService materializes the companion executable if needed, writes
// the unit file, and enables and starts the daemon. A unit that does not
// report active after start is reported with a log-inspection hint but is
// not a crash.
func (m Manager) InstallService() outcome.Outcome {
	if got := m.ensureCompanion(); got.Fatal() {
		return got
	}

	unit := Unit{
		Description:    "Docker4Iran runtime monitor",
		ExecStart:      []string{m.Paths.MonitorBin, "daemon"},
		User:           m.User,
		WorkingDir:     m.Paths.DataDir,
		ReadWritePaths: []string{m.Paths.DataDir},
	}
	if err := m.Sys.WriteFileAtomic(m.UnitPath, []byte(unit.Render()), 0o644); err != nil {
		return outcome.Fatalf(messages.ServiceWriteUnitFailedFmt, err)
	}

	if err := m.Sys.Run("systemctl", "daemon-reload"); err != nil {
		return outcome.Fatalf(messages.ServiceReloadFailedFmt, err)
	}
	if err := m.Sys.Run("systemctl", "enable", ServiceName); err != nil {
		return outcome.Fatalf(messages.ServiceEnableFailedFmt, err)
	}
	// A start failure is reported the same way as a unit that starts but
	// never reaches active: the unit is installed and enabled, the
	// operator inspects the journal.
	if err := m.Sys.Run("systemctl", "start", ServiceName); err != nil {
		logging.Warning(messages.ServiceStartFailedFmt, err)
		logging.Error(messages.ServiceNotActiveFmt, ServiceName, ServiceName)
		return outcome.Fallbackf(messages.ServiceNotActiveReason)
	}

	state, err := m.Sys.Output("systemctl", "is-active", ServiceName)
	if err != nil || state != "active" {
		logging.Error(messages.ServiceNotActiveFmt, ServiceName, ServiceName)
		return outcome.Fallbackf(messages.ServiceNotActiveReason)
	}
	logging.Success(messages.ServiceInstalledFmt, ServiceName)
	return outcome.OK()
}

// ensureCompanion verifies the companion executable exists at its per-user
// path, running the tool's self-install as the invoking user when absent.
// Self-install must not run as root or the tool would land in root's home.
func (m Manager) ensureCompanion() outcome.Outcome {
	if _, err := m.Sys.Stat(m.Paths.MonitorBin); err == nil {
		return outcome.OK()
	}

	companion, err := m.Sys.FindCompanion()
	if err != nil {
		return outcome.Fatalf(messages.ServiceCompanionMissingFmt, m.Paths.MonitorBin)
	}
	user := m.User
	if user == "" {
		user = "root"
	}
	logging.Info(messages.ServiceSelfInstallFmt, user)
	if m.User == "" {
		// No separate invoking user; this process already resolves the
		// right per-user paths.
		err = m.Sys.Run(companion, "install-self")
	} else {
		err = m.Sys.RunAsUser(m.User, companion, "install-self")
	}
	if err != nil {
		return outcome.Fatalf(messages.ServiceSelfInstallFailedFmt, err)
	}
	if _, err := m.Sys.Stat(m.Paths.MonitorBin); err != nil {
		return outcome.Fatalf(messages.ServiceCompanionMissingFmt, m.Paths.MonitorBin)
	}
	return outcome.OK()
}

// UninstallService stops, disables, and removes the unit. Every step
// tolerates already-stopped, already-disabled, and already-missing states.
func (m Manager) UninstallService() outcome.Outcome {
	if _, err := m.Sys.Stat(m.UnitPath); err != nil {
		if os.IsNotExist(err) {
			logging.Debug("unit already absent", "unit", ServiceName)
			return outcome.OK()
		}
		return outcome.Fatalf(messages.ServiceStatUnitFailedFmt, err)
	}

	if err := m.Sys.Run("systemctl", "stop", ServiceName); err != nil {
		logging.Debug("stop tolerated failure", "err", err)
	}
	if err := m.Sys.Run("systemctl", "disable", ServiceName); err != nil {
		logging.Debug("disable tolerated failure", "err", err)
	}
	if err := m.Sys.Remove(m.UnitPath); err != nil && !os.IsNotExist(err) {
		return outcome.Fatalf(messages.ServiceRemoveUnitFailedFmt, err)
	}
	if err := m.Sys.Run("systemctl", "daemon-reload"); err != nil {
		logging.Debug("daemon-reload tolerated failure", "err", err)
	}
	logging.Success(messages.ServiceUninstalledFmt, ServiceName)
	return outcome.OK()
}

// UninstallTool removes the companion executable and its log. The log
// directory is removed only when empty, and user-added PATH entries in
// shell startup files are flagged to the operator, never rewritten.
func (m Manager) UninstallTool() outcome.Outcome {
	if err := m.Sys.Remove(m.Paths.MonitorBin); err != nil && !os.IsNotExist(err) {
		return outcome.Fatalf(messages.ServiceRemoveToolFailedFmt, err)
	}
	if err := m.Sys.Remove(m.Paths.LogFile); err != nil && !os.IsNotExist(err) {
		logging.Warning(messages.ServiceRemoveLogFailedFmt, err)
	}
	if entries, err := m.Sys.ReadDir(m.Paths.DataDir); err == nil && len(entries) == 0 {
		if err := m.Sys.Remove(m.Paths.DataDir); err != nil {
			logging.Debug("data dir removal tolerated failure", "err", err)
		}
	}
	m.flagPathEntries()
	logging.Success(messages.ServiceToolRemoved)
	return outcome.OK()
}

// UninstallAll removes the service first, then the tool: an orphaned unit
// pointing at a deleted executable is a worse failure mode than a leftover
// unit with no executable removed.
func (m Manager) UninstallAll() outcome.Outcome {
	if got := m.UninstallService(); got.Fatal() {
		return got
	}
	return m.UninstallTool()
}

// flagPathEntries informs the operator about shell startup files still
// referencing the companion bin directory.
func (m Manager) flagPathEntries() {
	for _, rc := range shellRCFiles {
		rcPath := filepath.Join(m.Paths.Home, rc)
		data, err := m.Sys.ReadFile(rcPath)
		if err != nil {
			continue
		}
		if strings.Contains(string(data), m.Paths.BinDir) {
			logging.Warning(messages.ServicePathEntryFmt, rcPath, m.Paths.BinDir)
		}
	}
}
