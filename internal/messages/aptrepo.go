package messages

// Repository reconciler messages.
const (
	// AptBackupFailedFmt formats failures while relocating prior configuration.
	AptBackupFailedFmt = "failed to back up apt configuration: %v"
	// AptWriteSourcesFailedFmt formats primary source file write failures.
	AptWriteSourcesFailedFmt = "failed to write sources.list: %v"
	// AptIndexRefreshFailedFmt formats apt-get update failures; nothing can proceed past this.
	AptIndexRefreshFailedFmt = "package index refresh failed: %v; check network connectivity and the generated sources.list"
	// AptVendorKeyFailedFmt formats signing key fetch/install failures.
	AptVendorKeyFailedFmt = "failed to install the Docker signing key: %v"
	// AptVendorListFailedFmt formats repository entry write failures.
	AptVendorListFailedFmt = "failed to write the Docker repository entry: %v"
	// AptReconciled confirms a completed reconciliation.
	AptReconciled = "apt repositories reconciled"
)
