package distro

import (
	"strings"

	"github.com/0xamirreza/Docker4Iran/internal/logging"
	"github.com/0xamirreza/Docker4Iran/internal/messages"
	"github.com/0xamirreza/Docker4Iran/internal/outcome"
)

const (
	osReleasePath     = "/etc/os-release"
	lsbReleasePath    = "/etc/lsb-release"
	debianVersionPath = "/etc/debian_version"
)

// Resolve detects the host identity and validates its codename. Evidence is
// consulted in order: os-release, legacy lsb-release, then the Debian
// version marker file. The returned outcome is Fatal when no source yields
// a usable family (unsupported host), Fallback when the codename had to be
// substituted, and Success otherwise.
func Resolve(sys System) (Identity, outcome.Outcome) {
	id, ok := detectFamily(sys)
	if !ok {
		return Identity{}, outcome.Fatalf(messages.DistroUnsupportedHost)
	}

	id.Codename = resolveCodename(sys, id)

	if !Supported(id.Family, id.Codename) {
		substitute := DefaultCodename(id.Family)
		logging.Warning(messages.DistroCodenameSubstitutedFmt, id.Codename, id.Family, substitute)
		reason := id.Codename
		id.Codename = substitute
		return id, outcome.Fallbackf(messages.DistroCodenameFallbackFmt, reason, substitute)
	}
	return id, outcome.OK()
}

// detectFamily walks the evidence sources, first match wins.
func detectFamily(sys System) (Identity, bool) {
	if data, err := sys.ReadFile(osReleasePath); err == nil {
		fields := parseReleaseFile(string(data))
		if id, ok := identityFromOSRelease(fields); ok {
			return id, true
		}
	}
	if data, err := sys.ReadFile(lsbReleasePath); err == nil {
		fields := parseReleaseFile(string(data))
		if strings.EqualFold(fields["DISTRIB_ID"], "ubuntu") {
			return Identity{
				Family:   FamilyUbuntu,
				Codename: fields["DISTRIB_CODENAME"],
				Version:  fields["DISTRIB_RELEASE"],
			}, true
		}
	}
	if data, err := sys.ReadFile(debianVersionPath); err == nil {
		return Identity{Family: FamilyDebian, Version: strings.TrimSpace(string(data))}, true
	}
	return Identity{}, false
}

func identityFromOSRelease(fields map[string]string) (Identity, bool) {
	id := Identity{Version: fields["VERSION_ID"]}
	switch strings.ToLower(fields["ID"]) {
	case "ubuntu":
		id.Family = FamilyUbuntu
	case "debian":
		id.Family = FamilyDebian
	default:
		// ID_LIKE catches Ubuntu derivatives that track Ubuntu archives.
		like := strings.ToLower(fields["ID_LIKE"])
		switch {
		case strings.Contains(like, "ubuntu"):
			id.Family = FamilyUbuntu
		case strings.Contains(like, "debian"):
			id.Family = FamilyDebian
		default:
			return Identity{}, false
		}
	}
	if id.Family == FamilyUbuntu && fields["UBUNTU_CODENAME"] != "" {
		id.Codename = fields["UBUNTU_CODENAME"]
	} else {
		id.Codename = fields["VERSION_CODENAME"]
	}
	return id, true
}

// resolveCodename prefers lsb_release, which is authoritative when present.
// When the tool is missing it is installed best-effort in the same
// privileged context; a failed install falls back to the os-release fields
// already captured, then to "unknown".
func resolveCodename(sys System, id Identity) string {
	if _, err := sys.LookPath("lsb_release"); err != nil {
		logging.Debug("lsb_release missing, attempting install")
		if err := sys.Run("apt-get", "install", "-y", "lsb-release"); err != nil {
			logging.Warn("lsb-release install failed", "err", err)
		}
	}
	if _, err := sys.LookPath("lsb_release"); err == nil {
		if out, err := sys.Output("lsb_release", "-cs"); err == nil && strings.TrimSpace(out) != "" {
			return strings.TrimSpace(out)
		}
	}
	if id.Codename != "" {
		return id.Codename
	}
	return "unknown"
}

// parseReleaseFile parses KEY=value lines, stripping quotes. Malformed
// lines are skipped.
func parseReleaseFile(content string) map[string]string {
	fields := map[string]string{}
	for line := range strings.Lines(content) {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, value, found := strings.Cut(line, "=")
		if !found {
			continue
		}
		fields[strings.TrimSpace(key)] = strings.Trim(strings.TrimSpace(value), `"'`)
	}
	return fields
}
