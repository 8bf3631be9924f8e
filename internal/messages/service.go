package messages

// Service lifecycle messages.
const (
	ServiceWriteUnitFailedFmt   = "writing systemd unit failed: %v"
	ServiceReloadFailedFmt      = "systemd daemon-reload failed: %v"
	ServiceEnableFailedFmt      = "enabling service failed: %v"
	ServiceStartFailedFmt       = "starting service failed: %v"
	ServiceStatUnitFailedFmt    = "checking systemd unit failed: %v"
	ServiceRemoveUnitFailedFmt  = "removing systemd unit failed: %v"
	ServiceRemoveToolFailedFmt  = "removing monitor executable failed: %v"
	ServiceRemoveLogFailedFmt   = "removing monitor log failed: %v"
	ServiceNotActiveFmt         = "%s did not report active; inspect it with: journalctl -u %s"
	ServiceNotActiveReason      = "service installed but not active"
	ServiceCompanionMissingFmt  = "monitor executable not found at %s and self-install could not provide it"
	ServiceSelfInstallFmt       = "Installing the monitor tool for user %s"
	ServiceSelfInstallFailedFmt = "monitor self-install failed: %v"
	ServiceInstalledFmt         = "Service %s installed and running"
	ServiceUninstalledFmt       = "Service %s removed"
	ServiceToolRemoved          = "Monitor tool removed"
	ServicePathEntryFmt         = "%s still references %s in PATH; remove the line manually if unwanted"
)
