package aptrepo

import (
	"fmt"
	"strings"

	"github.com/0xamirreza/Docker4Iran/internal/distro"
)

// repoLine is one repository entry of the regenerated primary source file.
type repoLine struct {
	url        string
	suite      string
	components string
}

const (
	ubuntuArchive  = "http://archive.ubuntu.com/ubuntu"
	ubuntuSecurity = "http://security.ubuntu.com/ubuntu"
	debianArchive  = "http://deb.debian.org/debian"
	debianSecurity = "http://security.debian.org/debian-security"

	ubuntuComponents = "main restricted universe multiverse"
	debianComponents = "main contrib non-free non-free-firmware"
)

// standardLines returns the ordered repository entries for a resolved
// identity: main, updates, backports, and the family's security variant.
func standardLines(id distro.Identity) []repoLine {
	switch id.Family {
	case distro.FamilyDebian:
		return []repoLine{
			{debianArchive, id.Codename, debianComponents},
			{debianArchive, id.Codename + "-updates", debianComponents},
			{debianArchive, id.Codename + "-backports", debianComponents},
			{debianSecurity, id.Codename + "-security", debianComponents},
		}
	default:
		return []repoLine{
			{ubuntuArchive, id.Codename, ubuntuComponents},
			{ubuntuArchive, id.Codename + "-updates", ubuntuComponents},
			{ubuntuArchive, id.Codename + "-backports", ubuntuComponents},
			{ubuntuSecurity, id.Codename + "-security", ubuntuComponents},
		}
	}
}

// SourcesContent renders the full primary source file for an identity.
// Rendering is deterministic: the same identity always produces the same
// bytes, which is what makes reconciliation idempotent.
func SourcesContent(id distro.Identity) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Generated by docker4iran for %s %s. Do not edit;\n", id.Family, id.Codename)
	fmt.Fprintf(&b, "# prior configuration is preserved under the backup directory.\n")
	for _, line := range standardLines(id) {
		fmt.Fprintf(&b, "deb %s %s %s\n", line.url, line.suite, line.components)
	}
	return b.String()
}

// VendorListContent renders the Docker repository entry referencing the
// dearmored keyring and the host's package architecture.
func VendorListContent(id distro.Identity, arch string, keyring string) string {
	return fmt.Sprintf(
		"deb [arch=%s signed-by=%s] https://download.docker.com/linux/%s %s stable\n",
		arch, keyring, id.Family, id.Codename,
	)
}

// VendorKeyURL is the signing key location for a family.
func VendorKeyURL(id distro.Identity) string {
	return fmt.Sprintf("https://download.docker.com/linux/%s/gpg", id.Family)
}
