package messages

// Privilege gate messages.
const (
	// PrivilegeSudoMissing is reported when no elevation mechanism exists.
	PrivilegeSudoMissing = "sudo is not available; run this command as root or install sudo"
	// PrivilegeExecutableFmt formats failures to locate the running binary.
	PrivilegeExecutableFmt = "cannot locate the running binary for re-execution: %v"
	// PrivilegeChildFailedFmt formats a non-zero exit from the elevated child.
	PrivilegeChildFailedFmt = "elevated %s failed with exit status %d"
	// PrivilegeEscalationFailedFmt formats sudo invocation errors (denied, interrupted).
	PrivilegeEscalationFailedFmt = "privilege escalation failed: %v"
)
