// Package distro detects the host distribution identity and validates its
// release codename against the supported set.
package distro

// Family identifies a supported distribution family.
type Family string

const (
	// FamilyUbuntu covers Ubuntu and flavors that share its archives.
	FamilyUbuntu Family = "ubuntu"
	// FamilyDebian covers Debian proper.
	FamilyDebian Family = "debian"
)

// Identity describes the resolved host distribution. Codename is always a
// member of the family's supported set after resolution; unrecognized
// codenames are substituted with the family default.
type Identity struct {
	Family   Family
	Codename string
	Version  string
}

// supportedCodenames lists the releases with working repository layouts per
// family.
var supportedCodenames = map[Family][]string{
	FamilyUbuntu: {"focal", "jammy", "noble"},
	FamilyDebian: {"bullseye", "bookworm", "trixie"},
}

// defaultCodename is the long-term-support substitute applied when the host
// reports a codename outside the supported set.
var defaultCodename = map[Family]string{
	FamilyUbuntu: "jammy",
	FamilyDebian: "bookworm",
}

// Supported reports whether codename is a known release of the family.
func Supported(family Family, codename string) bool {
	for _, c := range supportedCodenames[family] {
		if c == codename {
			return true
		}
	}
	return false
}

// DefaultCodename returns the substitute codename for a family.
func DefaultCodename(family Family) string {
	return defaultCodename[family]
}

// SupportedCodenames returns the validated codename set of a family.
func SupportedCodenames(family Family) []string {
	out := make([]string, len(supportedCodenames[family]))
	copy(out, supportedCodenames[family])
	return out
}
