package distro

import (
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/0xamirreza/Docker4Iran/internal/outcome"
)

type mockSystem struct {
	files    map[string]string
	binaries map[string]bool
	outputs  map[string]string
	runErr   error
	runCalls []string
}

func (m *mockSystem) ReadFile(name string) ([]byte, error) {
	content, ok := m.files[name]
	if !ok {
		return nil, os.ErrNotExist
	}
	return []byte(content), nil
}

func (m *mockSystem) LookPath(file string) (string, error) {
	if m.binaries[file] {
		return "/usr/bin/" + file, nil
	}
	return "", errors.New("not found: " + file)
}

func (m *mockSystem) Output(name string, args ...string) (string, error) {
	key := strings.Join(append([]string{name}, args...), " ")
	out, ok := m.outputs[key]
	if !ok {
		return "", errors.New("no output for " + key)
	}
	return out, nil
}

func (m *mockSystem) Run(name string, args ...string) error {
	m.runCalls = append(m.runCalls, strings.Join(append([]string{name}, args...), " "))
	if m.runErr != nil {
		return m.runErr
	}
	// Successful apt-get install makes the tool appear.
	if name == "apt-get" {
		m.binaries["lsb_release"] = true
	}
	return nil
}

const ubuntuOSRelease = `NAME="Ubuntu"
ID=ubuntu
VERSION_ID="22.04"
VERSION_CODENAME=jammy
UBUNTU_CODENAME=jammy
`

func TestResolveUbuntuViaOSRelease(t *testing.T) {
	sys := &mockSystem{
		files:    map[string]string{"/etc/os-release": ubuntuOSRelease},
		binaries: map[string]bool{"lsb_release": true},
		outputs:  map[string]string{"lsb_release -cs": "jammy"},
	}

	id, got := Resolve(sys)
	require.Equal(t, outcome.Success, got.Kind)
	require.Equal(t, FamilyUbuntu, id.Family)
	require.Equal(t, "jammy", id.Codename)
	require.Equal(t, "22.04", id.Version)
}

func TestResolveDebianDerivativeViaIDLike(t *testing.T) {
	sys := &mockSystem{
		files: map[string]string{"/etc/os-release": "ID=raspbian\nID_LIKE=debian\nVERSION_CODENAME=bookworm\nVERSION_ID=\"12\"\n"},
		binaries: map[string]bool{},
	}

	id, got := Resolve(sys)
	require.Equal(t, FamilyDebian, id.Family)
	require.Equal(t, "bookworm", id.Codename)
	require.True(t, got.Continue())
}

func TestResolveLegacyLSBRelease(t *testing.T) {
	sys := &mockSystem{
		files: map[string]string{
			"/etc/lsb-release": "DISTRIB_ID=Ubuntu\nDISTRIB_RELEASE=20.04\nDISTRIB_CODENAME=focal\n",
		},
		binaries: map[string]bool{"lsb_release": true},
		outputs:  map[string]string{"lsb_release -cs": "focal"},
	}

	id, got := Resolve(sys)
	require.Equal(t, outcome.Success, got.Kind)
	require.Equal(t, FamilyUbuntu, id.Family)
	require.Equal(t, "focal", id.Codename)
	require.Equal(t, "20.04", id.Version)
}

func TestResolveDebianMarkerFile(t *testing.T) {
	sys := &mockSystem{
		files:    map[string]string{"/etc/debian_version": "12.5\n"},
		binaries: map[string]bool{"lsb_release": true},
		outputs:  map[string]string{"lsb_release -cs": "bookworm"},
	}

	id, got := Resolve(sys)
	require.Equal(t, outcome.Success, got.Kind)
	require.Equal(t, FamilyDebian, id.Family)
	require.Equal(t, "bookworm", id.Codename)
	require.Equal(t, "12.5", id.Version)
}

func TestResolveUnsupportedHostIsFatal(t *testing.T) {
	sys := &mockSystem{files: map[string]string{}, binaries: map[string]bool{}}

	_, got := Resolve(sys)
	require.True(t, got.Fatal())
	require.Contains(t, got.Reason, "unsupported host")
}

func TestResolveUnknownCodenameSubstitutesDefault(t *testing.T) {
	sys := &mockSystem{
		files: map[string]string{
			"/etc/os-release": "ID=ubuntu\nVERSION_ID=\"99.04\"\nVERSION_CODENAME=fictional99\n",
		},
		binaries: map[string]bool{"lsb_release": true},
		outputs:  map[string]string{"lsb_release -cs": "fictional99"},
	}

	id, got := Resolve(sys)
	require.Equal(t, outcome.Fallback, got.Kind)
	require.Contains(t, got.Reason, "fictional99")
	require.Equal(t, "jammy", id.Codename, "unvalidated codename must never survive resolution")
}

func TestResolveInstallsLsbReleaseWhenMissing(t *testing.T) {
	sys := &mockSystem{
		files:    map[string]string{"/etc/os-release": ubuntuOSRelease},
		binaries: map[string]bool{},
		outputs:  map[string]string{"lsb_release -cs": "jammy"},
	}

	id, got := Resolve(sys)
	require.Equal(t, outcome.Success, got.Kind)
	require.Equal(t, "jammy", id.Codename)
	require.Equal(t, []string{"apt-get install -y lsb-release"}, sys.runCalls)
}

func TestResolveToleratesLsbReleaseInstallFailure(t *testing.T) {
	sys := &mockSystem{
		files:    map[string]string{"/etc/os-release": ubuntuOSRelease},
		binaries: map[string]bool{},
		runErr:   errors.New("no network"),
	}

	id, got := Resolve(sys)
	require.True(t, got.Continue())
	require.Equal(t, "jammy", id.Codename, "falls back to os-release codename")
}

func TestResolveUnknownCodenameWhenNoEvidence(t *testing.T) {
	sys := &mockSystem{
		files:    map[string]string{"/etc/debian_version": "12.5\n"},
		binaries: map[string]bool{},
		runErr:   errors.New("offline"),
	}

	id, got := Resolve(sys)
	require.Equal(t, outcome.Fallback, got.Kind)
	require.Equal(t, "bookworm", id.Codename)
}

func TestParseReleaseFileStripsQuotesAndComments(t *testing.T) {
	fields := parseReleaseFile("# comment\nID=\"ubuntu\"\nPRETTY='Ubuntu 22.04'\nbroken line\n")
	require.Equal(t, "ubuntu", fields["ID"])
	require.Equal(t, "Ubuntu 22.04", fields["PRETTY"])
	require.NotContains(t, fields, "broken line")
}

func TestSupportedSets(t *testing.T) {
	require.True(t, Supported(FamilyUbuntu, "noble"))
	require.False(t, Supported(FamilyUbuntu, "warty"))
	require.Equal(t, "bookworm", DefaultCodename(FamilyDebian))
	require.Contains(t, SupportedCodenames(FamilyDebian), "trixie")
}
