package privilege

import (
	"errors"
	"os/exec"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/0xamirreza/Docker4Iran/internal/outcome"
)

type mockSystem struct {
	euid        int
	env         map[string]string
	homes       map[string]string
	currentHome string
	executable  string
	lookPathErr error
	runErr      error
	runCalls    [][]string
}

func (m *mockSystem) Geteuid() int {
	return m.euid
}

func (m *mockSystem) Getenv(key string) string {
	return m.env[key]
}

func (m *mockSystem) LookupUserHome(username string) (string, error) {
	home, ok := m.homes[username]
	if !ok {
		return "", errors.New("unknown user " + username)
	}
	return home, nil
}

func (m *mockSystem) CurrentHome() (string, error) {
	return m.currentHome, nil
}

func (m *mockSystem) Executable() (string, error) {
	return m.executable, nil
}

func (m *mockSystem) LookPath(file string) (string, error) {
	if m.lookPathErr != nil {
		return "", m.lookPathErr
	}
	return "/usr/bin/" + file, nil
}

func (m *mockSystem) RunInteractive(name string, args ...string) error {
	m.runCalls = append(m.runCalls, append([]string{name}, args...))
	return m.runErr
}

func TestNewContextUnprivileged(t *testing.T) {
	sys := &mockSystem{euid: 1000, env: map[string]string{"USER": "amir"}, currentHome: "/home/amir"}

	ctx, err := NewContext(sys)
	require.NoError(t, err)
	require.False(t, ctx.Elevated)
	require.Equal(t, "amir", ctx.InvokingUser)
	require.Equal(t, "/home/amir", ctx.HomeDir)
}

func TestNewContextElevatedViaSudo(t *testing.T) {
	sys := &mockSystem{
		euid:        0,
		env:         map[string]string{"SUDO_USER": "amir"},
		homes:       map[string]string{"amir": "/home/amir"},
		currentHome: "/root",
	}

	ctx, err := NewContext(sys)
	require.NoError(t, err)
	require.True(t, ctx.Elevated)
	require.Equal(t, "amir", ctx.InvokingUser)
	require.Equal(t, "/home/amir", ctx.HomeDir)
}

func TestNewContextRootWithoutSudoUser(t *testing.T) {
	sys := &mockSystem{euid: 0, env: map[string]string{}, currentHome: "/root"}

	ctx, err := NewContext(sys)
	require.NoError(t, err)
	require.True(t, ctx.Elevated)
	require.Empty(t, ctx.InvokingUser)
	require.Equal(t, "/root", ctx.HomeDir)
}

func TestEnsureElevatedRunsContinuationInProcess(t *testing.T) {
	sys := &mockSystem{}
	ran := false

	got := EnsureElevated(Context{Elevated: true}, sys, "install", func() outcome.Outcome {
		ran = true
		return outcome.OK()
	})

	require.True(t, ran)
	require.Equal(t, outcome.Success, got.Kind)
	require.Empty(t, sys.runCalls, "already-elevated run must not re-escalate")
}

func TestEnsureElevatedReExecsUnderSudo(t *testing.T) {
	sys := &mockSystem{executable: "/usr/local/bin/d4i"}

	got := EnsureElevated(Context{}, sys, "install", func() outcome.Outcome {
		t.Fatal("continuation must not run in the unprivileged parent")
		return outcome.OK()
	})

	require.Equal(t, outcome.Success, got.Kind)
	require.Equal(t, [][]string{{"sudo", "/usr/local/bin/d4i", ContinuationArg, "install"}}, sys.runCalls)
}

func TestEnsureElevatedSudoMissingIsFatal(t *testing.T) {
	sys := &mockSystem{lookPathErr: exec.ErrNotFound}

	got := EnsureElevated(Context{}, sys, "install", func() outcome.Outcome { return outcome.OK() })

	require.True(t, got.Fatal())
	require.Contains(t, got.Reason, "sudo")
}

func TestEnsureElevatedPropagatesChildFailure(t *testing.T) {
	sys := &mockSystem{executable: "/usr/local/bin/d4i", runErr: errors.New("denied")}

	got := EnsureElevated(Context{}, sys, "install", func() outcome.Outcome { return outcome.OK() })

	require.True(t, got.Fatal())
}

func TestEnsureElevatedCarriesChildExitCode(t *testing.T) {
	childErr := exec.Command("/bin/sh", "-c", "exit 7").Run()
	require.Error(t, childErr)
	sys := &mockSystem{executable: "/usr/local/bin/d4i", runErr: childErr}

	got := EnsureElevated(Context{}, sys, "install", func() outcome.Outcome { return outcome.OK() })

	require.True(t, got.Fatal())
	require.Equal(t, 7, got.Code)
}
