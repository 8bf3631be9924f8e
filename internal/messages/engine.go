package messages

// Runtime installer messages.
const (
	EngineInstalled         = "Docker runtime installed and healthy"
	EngineUninstalled       = "Docker runtime removed"
	EngineUninstallPrompt   = "This removes Docker, its packages, and all container data under /var/lib/docker. Continue?"
	EngineUninstallCanceled = "uninstall canceled; no changes were made"

	// EngineResolvedFmt reports the resolved identity.
	EngineResolvedFmt = "detected %s (%s)"
	// EngineInstallFailedFmt formats runtime package install failures.
	EngineInstallFailedFmt = "runtime package installation failed: %v"
	// EngineServiceStartFailedFmt warns about a failed enable/start; health verification decides.
	EngineServiceStartFailedFmt = "could not enable the docker service: %v"
	// EngineGroupAddedFmt reports docker group membership; effective after re-login.
	EngineGroupAddedFmt = "added %s to the docker group (log out and back in for it to apply)"
	// EngineGroupAddFailedFmt warns about a failed group update.
	EngineGroupAddFailedFmt = "could not add %s to the docker group: %v"
	// EngineHealthVersionFailedFmt formats the version health-check failure; remediation included.
	EngineHealthVersionFailedFmt = "docker version query failed: %v; the runtime did not install correctly"
	// EngineHealthComposeFailedFmt formats the compose health-check failure.
	EngineHealthComposeFailedFmt = "docker compose query failed: %v; the compose plugin did not install correctly"
	// EngineMirrorSkippedFmt notes a non-fatal mirror optimization result.
	EngineMirrorSkippedFmt = "mirror optimization did not complete: %s"
	// EnginePurgeFailedFmt warns about purge failures (packages may already be absent).
	EnginePurgeFailedFmt = "package purge reported errors (continuing): %v"
	// EngineDataRemoveFailedFmt warns about data directory removal failures.
	EngineDataRemoveFailedFmt = "could not remove %s: %v"
	// EngineVendorRemoveFailedFmt warns about vendor entry removal failures.
	EngineVendorRemoveFailedFmt = "could not remove the Docker repository entry: %v"
	// EngineConfirmFailedFmt reports a failed confirmation prompt.
	EngineConfirmFailedFmt = "confirmation prompt failed: %v"
)
