package netopt

import (
	"github.com/0xamirreza/Docker4Iran/internal/config"
	"github.com/0xamirreza/Docker4Iran/internal/logging"
	"github.com/0xamirreza/Docker4Iran/internal/messages"
	"github.com/0xamirreza/Docker4Iran/internal/outcome"
)

// ConfirmFunc asks the operator a yes/no question. It blocks without a
// timeout: an unattended run must never continue past a failed probe on its
// own.
type ConfirmFunc func(prompt string) (bool, error)

// Optimizer wraps the two selector programs with their fallback contracts.
type Optimizer struct {
	Sys     System
	Cfg     config.Config
	Confirm ConfirmFunc
}

// NewOptimizer returns an Optimizer over the real host.
func NewOptimizer(cfg config.Config, confirm ConfirmFunc) Optimizer {
	return Optimizer{Sys: RealSystem{}, Cfg: cfg, Confirm: confirm}
}

// OptimizeDNS runs the external DNS selector. Selector success is verified
// with a probe against the vendor endpoint; a failed probe is only a
// warning, because DNS optimization is an optimization, not a precondition.
// Selector failure falls back to probing under the unmodified DNS
// configuration, and as a last resort asks the operator whether to proceed
// anyway. Declining is the only Fatal path.
func (o Optimizer) OptimizeDNS() outcome.Outcome {
	logging.Info(messages.NetoptDNSStarting)
	selectorErr := o.Sys.RunInteractive("python3", o.Cfg.Selectors.DNSScript)

	if selectorErr == nil {
		if err := o.probe(); err != nil {
			logging.Warning(messages.NetoptProbeAfterDNSFmt, o.Cfg.Probe.URL, err)
			return outcome.Fallbackf(messages.NetoptProbeFailedReason)
		}
		logging.Success(messages.NetoptDNSApplied)
		return outcome.OK()
	}

	logging.Warning(messages.NetoptDNSSelectorFailedFmt, selectorErr)
	if err := o.probe(); err == nil {
		return outcome.Fallbackf(messages.NetoptCurrentDNSWorksReason)
	}

	proceed, err := o.Confirm(messages.NetoptContinuePrompt)
	if err != nil {
		return outcome.Fatalf(messages.NetoptConfirmFailedFmt, err)
	}
	if !proceed {
		return outcome.Fatalf(messages.NetoptDeclined)
	}
	return outcome.Fallbackf(messages.NetoptProceedAnywayReason)
}

// OptimizeMirror verifies the mirror selector is present, makes sure its
// python docker dependency is importable, and runs it elevated. A missing
// script is Fatal for this sub-operation only; a selector failure never
// aborts a composite operation that scheduled this as a post-step.
func (o Optimizer) OptimizeMirror() outcome.Outcome {
	script := o.Cfg.Selectors.MirrorScript
	if _, err := o.Sys.Stat(script); err != nil {
		return outcome.Fatalf(messages.NetoptMirrorScriptMissingFmt, script)
	}

	o.ensurePythonDockerClient()

	logging.Info(messages.NetoptMirrorStarting)
	if err := o.Sys.RunInteractive("python3", script); err != nil {
		logging.Warning(messages.NetoptMirrorFailedFmt, err)
		return outcome.Fallbackf(messages.NetoptMirrorFailedReason)
	}
	logging.Success(messages.NetoptMirrorApplied)
	return outcome.OK()
}

// ensurePythonDockerClient installs the selector's runtime dependency when
// missing: pip first, the system package as the secondary method. Both
// failing is tolerated; the selector itself reports the hard failure.
func (o Optimizer) ensurePythonDockerClient() {
	if err := o.Sys.Run("python3", "-c", "import docker"); err == nil {
		return
	}
	if err := o.Sys.Run("pip3", "install", "docker"); err == nil {
		return
	}
	logging.Warning(messages.NetoptPipFallback)
	if err := o.Sys.Run("apt-get", "install", "-y", "python3-docker"); err != nil {
		logging.Warning(messages.NetoptDependencyInstallFailedFmt, err)
	}
}

func (o Optimizer) probe() error {
	return o.Sys.Probe(o.Cfg.Probe.URL, o.Cfg.ProbeTimeout())
}
