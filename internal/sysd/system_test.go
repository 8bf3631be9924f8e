package sysd

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/0xamirreza/Docker4Iran/internal/testutil"
)

func TestFindCompanionFallsBackToPath(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteStub(t, dir, "d4i-monitor")
	t.Setenv("PATH", dir)

	got, err := RealSystem{}.FindCompanion()

	require.NoError(t, err)
	require.Contains(t, got, "d4i-monitor")
}

func TestFindCompanionErrorsWhenAbsent(t *testing.T) {
	t.Setenv("PATH", t.TempDir())

	_, err := RealSystem{}.FindCompanion()

	require.Error(t, err)
}
