package netopt

import (
	"errors"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/0xamirreza/Docker4Iran/internal/config"
	"github.com/0xamirreza/Docker4Iran/internal/outcome"
)

type mockSystem struct {
	files           map[string]bool
	interactiveErr  map[string]error
	runErr          map[string]error
	probeErr        error
	interactiveRuns []string
	runs            []string
}

func (m *mockSystem) Stat(name string) (os.FileInfo, error) {
	if m.files[name] {
		return nil, nil
	}
	return nil, os.ErrNotExist
}

func (m *mockSystem) RunInteractive(name string, args ...string) error {
	call := strings.Join(append([]string{name}, args...), " ")
	m.interactiveRuns = append(m.interactiveRuns, call)
	for prefix, err := range m.interactiveErr {
		if strings.HasPrefix(call, prefix) {
			return err
		}
	}
	return nil
}

func (m *mockSystem) Run(name string, args ...string) error {
	call := strings.Join(append([]string{name}, args...), " ")
	m.runs = append(m.runs, call)
	for prefix, err := range m.runErr {
		if strings.HasPrefix(call, prefix) {
			return err
		}
	}
	return nil
}

func (m *mockSystem) Probe(url string, timeout time.Duration) error {
	return m.probeErr
}

func confirmAnswer(answer bool) ConfirmFunc {
	return func(string) (bool, error) { return answer, nil }
}

func testOptimizer(sys *mockSystem, confirm ConfirmFunc) Optimizer {
	return Optimizer{Sys: sys, Cfg: config.Default(), Confirm: confirm}
}

func TestOptimizeDNSSuccess(t *testing.T) {
	sys := &mockSystem{}

	got := testOptimizer(sys, confirmAnswer(false)).OptimizeDNS()
	require.Equal(t, outcome.Success, got.Kind)
	require.Len(t, sys.interactiveRuns, 1)
	require.Contains(t, sys.interactiveRuns[0], "dns_selector.py")
}

func TestOptimizeDNSProbeFailureIsOnlyAWarning(t *testing.T) {
	sys := &mockSystem{probeErr: errors.New("timeout")}

	got := testOptimizer(sys, confirmAnswer(false)).OptimizeDNS()
	require.Equal(t, outcome.Fallback, got.Kind)
	require.True(t, got.Continue())
}

func TestOptimizeDNSSelectorFailureFallsBackToCurrentDNS(t *testing.T) {
	sys := &mockSystem{interactiveErr: map[string]error{"python3": errors.New("exit 1")}}

	got := testOptimizer(sys, confirmAnswer(false)).OptimizeDNS()
	require.Equal(t, outcome.Fallback, got.Kind)
}

func TestOptimizeDNSDeclinedConfirmationIsFatal(t *testing.T) {
	sys := &mockSystem{
		interactiveErr: map[string]error{"python3": errors.New("exit 1")},
		probeErr:       errors.New("unreachable"),
	}

	got := testOptimizer(sys, confirmAnswer(false)).OptimizeDNS()
	require.True(t, got.Fatal())
}

func TestOptimizeDNSAcceptedConfirmationContinues(t *testing.T) {
	sys := &mockSystem{
		interactiveErr: map[string]error{"python3": errors.New("exit 1")},
		probeErr:       errors.New("unreachable"),
	}

	got := testOptimizer(sys, confirmAnswer(true)).OptimizeDNS()
	require.Equal(t, outcome.Fallback, got.Kind)
}

func TestOptimizeMirrorScriptMissingIsFatalForSubOperation(t *testing.T) {
	sys := &mockSystem{files: map[string]bool{}}

	got := testOptimizer(sys, confirmAnswer(false)).OptimizeMirror()
	require.True(t, got.Fatal())
	require.Contains(t, got.Reason, "mirror selector not found")
}

func TestOptimizeMirrorSuccess(t *testing.T) {
	cfg := config.Default()
	sys := &mockSystem{files: map[string]bool{cfg.Selectors.MirrorScript: true}}

	got := testOptimizer(sys, confirmAnswer(false)).OptimizeMirror()
	require.Equal(t, outcome.Success, got.Kind)
	// Dependency check ran before the selector.
	require.Equal(t, []string{"python3 -c import docker"}, sys.runs)
}

func TestOptimizeMirrorInstallsDependencyViaPip(t *testing.T) {
	cfg := config.Default()
	sys := &mockSystem{
		files:  map[string]bool{cfg.Selectors.MirrorScript: true},
		runErr: map[string]error{"python3 -c": errors.New("ModuleNotFoundError")},
	}

	got := testOptimizer(sys, confirmAnswer(false)).OptimizeMirror()
	require.Equal(t, outcome.Success, got.Kind)
	require.Contains(t, sys.runs, "pip3 install docker")
	require.NotContains(t, strings.Join(sys.runs, ";"), "apt-get")
}

func TestOptimizeMirrorFallsBackToSystemPackage(t *testing.T) {
	cfg := config.Default()
	sys := &mockSystem{
		files: map[string]bool{cfg.Selectors.MirrorScript: true},
		runErr: map[string]error{
			"python3 -c":   errors.New("ModuleNotFoundError"),
			"pip3 install": errors.New("no pip"),
		},
	}

	got := testOptimizer(sys, confirmAnswer(false)).OptimizeMirror()
	require.Equal(t, outcome.Success, got.Kind)
	require.Contains(t, sys.runs, "apt-get install -y python3-docker")
}

func TestOptimizeMirrorSelectorFailureIsNotFatal(t *testing.T) {
	cfg := config.Default()
	sys := &mockSystem{
		files:          map[string]bool{cfg.Selectors.MirrorScript: true},
		interactiveErr: map[string]error{"python3": errors.New("exit 1")},
	}

	got := testOptimizer(sys, confirmAnswer(false)).OptimizeMirror()
	require.Equal(t, outcome.Fallback, got.Kind)
	require.True(t, got.Continue())
}
