package outcome

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOK(t *testing.T) {
	o := OK()
	require.Equal(t, Success, o.Kind)
	require.True(t, o.Continue())
	require.False(t, o.Fatal())
	require.Equal(t, "success", o.String())
}

func TestFallbackContinues(t *testing.T) {
	o := Fallbackf("codename %q not recognized", "fictional99")
	require.Equal(t, Fallback, o.Kind)
	require.True(t, o.Continue())
	require.False(t, o.Fatal())
	require.Equal(t, `fallback: codename "fictional99" not recognized`, o.String())
}

func TestFatalStops(t *testing.T) {
	o := Fatalf("package index refresh failed")
	require.True(t, o.Fatal())
	require.False(t, o.Continue())
	require.Equal(t, "fatal: package index refresh failed", o.String())
}

func TestFatalCodeCarriesExitStatus(t *testing.T) {
	o := FatalCode(7, "elevated run of %s failed", "install-engine")
	require.True(t, o.Fatal())
	require.Equal(t, 7, o.Code)
	require.Equal(t, "fatal: elevated run of install-engine failed", o.String())
}

func TestStringWithoutReason(t *testing.T) {
	require.Equal(t, "fallback", Outcome{Kind: Fallback}.String())
	require.Equal(t, "fatal", Outcome{Kind: Fatal}.String())
}
