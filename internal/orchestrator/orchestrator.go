// Package orchestrator composes the provisioning components into named
// operations. Execution is single threaded and sequential; the shared
// resources it mutates (apt sources, keyrings, the systemd unit directory,
// runtime data directories) are host global and unlocked, so concurrent
// invocations against the same host are out of contract.
package orchestrator

import (
	"fmt"

	"github.com/0xamirreza/Docker4Iran/internal/config"
	"github.com/0xamirreza/Docker4Iran/internal/engine"
	"github.com/0xamirreza/Docker4Iran/internal/netopt"
	"github.com/0xamirreza/Docker4Iran/internal/outcome"
	"github.com/0xamirreza/Docker4Iran/internal/paths"
	"github.com/0xamirreza/Docker4Iran/internal/privilege"
	"github.com/0xamirreza/Docker4Iran/internal/sysd"
)

// Operation is a named top-level operation. The string form doubles as the
// as-root continuation argument after privilege re-execution.
type Operation string

const (
	FullInstall     Operation = "full-install"
	InstallEngine   Operation = "install-engine"
	OptimizeDNS     Operation = "optimize-dns"
	OptimizeMirror  Operation = "optimize-mirror"
	InstallService  Operation = "install-service"
	UninstallEngine Operation = "uninstall-engine"
	UninstallAll    Operation = "uninstall-all"
)

// operations lists every dispatchable operation.
var operations = []Operation{
	FullInstall,
	InstallEngine,
	OptimizeDNS,
	OptimizeMirror,
	InstallService,
	UninstallEngine,
	UninstallAll,
}

// ParseOperation maps a continuation argument back to its Operation.
func ParseOperation(name string) (Operation, error) {
	for _, op := range operations {
		if string(op) == name {
			return op, nil
		}
	}
	return "", fmt.Errorf("unknown operation %q", name)
}

// Deps are the component entry points an operation dispatches to. Fields
// are funcs so tests substitute recorders without constructing real
// components.
type Deps struct {
	InstallEngine      func() outcome.Outcome
	UninstallEngine    func() outcome.Outcome
	OptimizeDNS        func() outcome.Outcome
	OptimizeMirror     func() outcome.Outcome
	InstallService     func() outcome.Outcome
	UninstallCompanion func() outcome.Outcome
}

// ConfirmFunc asks the operator a yes/no question.
type ConfirmFunc func(prompt string) (bool, error)

// NewDeps wires the real components for the invoking user described by the
// privilege context.
func NewDeps(privCtx privilege.Context, cfg config.Config, confirm ConfirmFunc) Deps {
	optimizer := netopt.NewOptimizer(cfg, netopt.ConfirmFunc(confirm))
	installer := engine.NewInstaller(privCtx.InvokingUser, optimizer.OptimizeMirror, engine.ConfirmFunc(confirm))
	manager := sysd.NewManager(privCtx.InvokingUser, paths.ForHome(privCtx.HomeDir))
	return Deps{
		InstallEngine:      installer.Install,
		UninstallEngine:    installer.Uninstall,
		OptimizeDNS:        optimizer.OptimizeDNS,
		OptimizeMirror:     optimizer.OptimizeMirror,
		InstallService:     manager.InstallService,
		UninstallCompanion: manager.UninstallAll,
	}
}

// Run dispatches an operation. Composites continue through later stages
// only while every prior stage returned Success or Fallback; a Fatal stage
// stops the composite.
func Run(op Operation, deps Deps) outcome.Outcome {
	switch op {
	case FullInstall:
		return composite(deps.OptimizeDNS, deps.InstallEngine, deps.InstallService)
	case InstallEngine:
		return deps.InstallEngine()
	case OptimizeDNS:
		return deps.OptimizeDNS()
	case OptimizeMirror:
		return deps.OptimizeMirror()
	case InstallService:
		return deps.InstallService()
	case UninstallEngine:
		return deps.UninstallEngine()
	case UninstallAll:
		return deps.UninstallCompanion()
	default:
		return outcome.Fatalf("unknown operation %q", op)
	}
}

// composite runs stages in order, stopping at the first Fatal outcome and
// carrying the worst non-fatal kind forward.
func composite(stages ...func() outcome.Outcome) outcome.Outcome {
	got := outcome.OK()
	for _, stage := range stages {
		next := stage()
		if next.Fatal() {
			return next
		}
		if next.Kind > got.Kind {
			got = next
		}
	}
	return got
}
