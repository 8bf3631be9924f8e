package messages

// Distribution resolver messages.
const (
	// DistroUnsupportedHost is reported when no metadata source yields a family.
	DistroUnsupportedHost = "unsupported host: no Debian or Ubuntu release metadata found (checked /etc/os-release, /etc/lsb-release, /etc/debian_version)"
	// DistroCodenameSubstitutedFmt warns the operator about a codename substitution.
	DistroCodenameSubstitutedFmt = "codename %q is not a supported %s release; using %q instead"
	// DistroCodenameFallbackFmt records the substitution in the step outcome.
	DistroCodenameFallbackFmt = "substituted codename %q with %q"
)
