package messages

// Version display formats.
const (
	// VersionCommitFmt formats the commit hash for version display.
	VersionCommitFmt = "commit %s"
	VersionBuildFmt  = "built %s"
	VersionFullFmt   = "%s (%s)"
	VersionTemplate  = "{{.Version}}\n"
)

// Prompt formats.
const (
	PromptYesDefaultFmt = "%s [Y/n]: "
	PromptNoDefaultFmt  = "%s [y/N]: "
)

// Command usage strings.
const (
	RootUse   = "d4i"
	RootShort = "Provision a container runtime and its companion monitor"
	RootLong  = "d4i installs the Docker runtime on Debian and Ubuntu hosts, reconciles apt sources,\napplies DNS and registry-mirror optimizations, and manages the companion monitor service."

	InstallUse          = "install"
	InstallShort        = "Optimize DNS, install the Docker runtime, and install the monitor service"
	InstallEngineUse    = "engine"
	InstallEngineShort  = "Install the Docker runtime only"
	InstallServiceUse   = "service"
	InstallServiceShort = "Install the monitor as a systemd service"

	UninstallUse         = "uninstall"
	UninstallShort       = "Remove the Docker runtime or the monitor tool and service"
	UninstallEngineUse   = "engine"
	UninstallEngineShort = "Remove the Docker runtime, its packages, and its data"
	UninstallAllUse      = "all"
	UninstallAllShort    = "Remove the monitor service and the monitor tool"

	OptimizeUse         = "optimize"
	OptimizeShort       = "Network optimizations for restricted networks"
	OptimizeDNSUse      = "dns"
	OptimizeDNSShort    = "Select and apply a working DNS configuration"
	OptimizeMirrorUse   = "mirror"
	OptimizeMirrorShort = "Select and apply a registry mirror"

	MonitorUse   = "monitor"
	MonitorShort = "Run the companion monitor tool"
)

// ElevatedRequiresRoot rejects direct invocation of the continuation entry
// point without root privileges.
const ElevatedRequiresRoot = "the elevated entry point must run as root; invoke the parent command instead"

// MonitorLaunchFailedFmt reports a missing companion executable.
const MonitorLaunchFailedFmt = "monitor tool not found: %v; run 'd4i install service' first"

// Companion tool command usage strings.
const (
	MonitorRootUse   = "d4i-monitor"
	MonitorRootShort = "Background monitor for the Docker runtime"

	MonitorDaemonUse   = "daemon"
	MonitorDaemonShort = "Poll runtime health on an interval, appending results to the log"

	MonitorInstallSelfUse   = "install-self"
	MonitorInstallSelfShort = "Copy this executable into the per-user bin directory"

	MonitorStatusUse   = "status"
	MonitorStatusShort = "Print the most recent recorded runtime health"
)

// OperationFailedFmt reports a fatal operation outcome.
const OperationFailedFmt = "%s failed: %s"
