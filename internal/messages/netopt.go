package messages

// Network optimizer messages.
const (
	NetoptDNSStarting      = "running DNS selector"
	NetoptDNSApplied       = "DNS configuration optimized"
	NetoptMirrorStarting   = "running registry mirror selector"
	NetoptMirrorApplied    = "registry mirror configured"
	NetoptContinuePrompt   = "The Docker download endpoint is unreachable. Continue anyway?"
	NetoptDeclined         = "aborted: Docker download endpoint unreachable and operator declined to continue"
	NetoptPipFallback      = "pip install failed; trying the system python3-docker package"

	// NetoptProbeAfterDNSFmt warns that the endpoint is unreachable even after DNS optimization.
	NetoptProbeAfterDNSFmt = "probe of %s failed after DNS optimization: %v"
	// NetoptDNSSelectorFailedFmt warns that the selector made no change.
	NetoptDNSSelectorFailedFmt = "DNS selector failed (no DNS change was made): %v"
	// NetoptMirrorScriptMissingFmt reports the mirror selector script missing.
	NetoptMirrorScriptMissingFmt = "mirror selector not found at %s"
	// NetoptMirrorFailedFmt warns that mirror selection failed.
	NetoptMirrorFailedFmt = "registry mirror selection failed: %v"
	// NetoptConfirmFailedFmt reports a failed confirmation prompt.
	NetoptConfirmFailedFmt = "confirmation prompt failed: %v"
	// NetoptDependencyInstallFailedFmt warns that both dependency install methods failed.
	NetoptDependencyInstallFailedFmt = "could not install the python docker client: %v"

	// Outcome reasons.
	NetoptProbeFailedReason     = "vendor endpoint unreachable after DNS optimization"
	NetoptCurrentDNSWorksReason = "DNS selector failed but the current DNS configuration reaches the vendor endpoint"
	NetoptProceedAnywayReason   = "operator chose to continue without a reachable vendor endpoint"
	NetoptMirrorFailedReason    = "mirror selector reported failure"
)
