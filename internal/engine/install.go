package engine

import (
	"github.com/0xamirreza/Docker4Iran/internal/aptrepo"
	"github.com/0xamirreza/Docker4Iran/internal/distro"
	"github.com/0xamirreza/Docker4Iran/internal/logging"
	"github.com/0xamirreza/Docker4Iran/internal/messages"
	"github.com/0xamirreza/Docker4Iran/internal/outcome"
)

// runtimePackages are the Docker runtime and its plugins, installed and
// purged as one set.
var runtimePackages = []string{
	"docker-ce",
	"docker-ce-cli",
	"containerd.io",
	"docker-buildx-plugin",
	"docker-compose-plugin",
}

// dataDirs are the runtime state directories removed on uninstall.
var dataDirs = []string{"/var/lib/docker", "/var/lib/containerd"}

// ConfirmFunc asks the operator a yes/no question before destructive work.
type ConfirmFunc func(prompt string) (bool, error)

// Installer drives runtime installation and removal. Collaborators are
// injected as functions so tests can substitute fixtures for the resolver,
// the reconciler, and the mirror optimizer.
type Installer struct {
	Sys          System
	Resolve      func() (distro.Identity, outcome.Outcome)
	Reconcile    func(distro.Identity) outcome.Outcome
	RemoveVendor func() error
	Mirror       func() outcome.Outcome
	Confirm      ConfirmFunc
	// InvokingUser is added to the docker group after install. Empty when
	// the orchestrator was invoked directly as root, in which case there is
	// no separate user to add.
	InvokingUser string
}

// NewInstaller wires an Installer against the real host.
func NewInstaller(invokingUser string, mirror func() outcome.Outcome, confirm ConfirmFunc) Installer {
	rec := aptrepo.NewReconciler()
	return Installer{
		Sys:          RealSystem{},
		Resolve:      func() (distro.Identity, outcome.Outcome) { return distro.Resolve(distro.RealSystem{}) },
		Reconcile:    rec.Reconcile,
		RemoveVendor: rec.RemoveVendorEntry,
		Mirror:       mirror,
		Confirm:      confirm,
		InvokingUser: invokingUser,
	}
}

// Install provisions the runtime: identity resolution, repository
// reconciliation, package installation, service start, group membership,
// then health verification. The health check is the single source of truth
// for "installed successfully"; earlier service and group steps are
// best-effort and only logged. Mirror optimization runs last, and only
// after verified health, because a mirror choice is meaningless before a
// working runtime exists.
func (i Installer) Install() outcome.Outcome {
	worst := outcome.OK()

	id, got := i.Resolve()
	if got.Fatal() {
		return got
	}
	worst = merge(worst, got)
	logging.Info(messages.EngineResolvedFmt, id.Family, id.Codename)

	got = i.Reconcile(id)
	if got.Fatal() {
		return got
	}
	worst = merge(worst, got)

	args := append([]string{"install", "-y"}, runtimePackages...)
	if err := i.Sys.Run("apt-get", args...); err != nil {
		return outcome.Fatalf(messages.EngineInstallFailedFmt, err)
	}

	if err := i.Sys.Run("systemctl", "enable", "--now", "docker"); err != nil {
		logging.Warning(messages.EngineServiceStartFailedFmt, err)
	}
	if i.InvokingUser != "" {
		if err := i.Sys.Run("usermod", "-aG", "docker", i.InvokingUser); err != nil {
			logging.Warning(messages.EngineGroupAddFailedFmt, i.InvokingUser, err)
		} else {
			logging.Info(messages.EngineGroupAddedFmt, i.InvokingUser)
		}
	}

	if got := i.VerifyHealth(); got.Fatal() {
		return got
	}
	logging.Success(messages.EngineInstalled)

	if got := i.Mirror(); got.Fatal() || got.Kind == outcome.Fallback {
		logging.Warning(messages.EngineMirrorSkippedFmt, got.Reason)
	}
	return worst
}

// VerifyHealth queries the runtime version and the compose subcommand; both
// must succeed for the install to count.
func (i Installer) VerifyHealth() outcome.Outcome {
	version, err := i.Sys.Output("docker", "--version")
	if err != nil {
		return outcome.Fatalf(messages.EngineHealthVersionFailedFmt, err)
	}
	logging.Debug("runtime version", "version", version)
	if _, err := i.Sys.Output("docker", "compose", "version"); err != nil {
		return outcome.Fatalf(messages.EngineHealthComposeFailedFmt, err)
	}
	return outcome.OK()
}

// Uninstall removes the runtime after explicit confirmation. Package and
// service removal failures are tolerated (the packages may already be
// absent); only the confirmation gate is strict. The vendor repository
// entry and keyring are removed, but the reconciled primary source file is
// deliberately left in place.
func (i Installer) Uninstall() outcome.Outcome {
	proceed, err := i.Confirm(messages.EngineUninstallPrompt)
	if err != nil {
		return outcome.Fatalf(messages.EngineConfirmFailedFmt, err)
	}
	if !proceed {
		logging.Info(messages.EngineUninstallCanceled)
		return outcome.OK()
	}

	for _, unit := range []string{"docker.service", "docker.socket"} {
		if err := i.Sys.Run("systemctl", "stop", unit); err != nil {
			logging.Debug("stop tolerated failure", "unit", unit, "err", err)
		}
	}
	if err := i.Sys.Run("systemctl", "disable", "docker"); err != nil {
		logging.Debug("disable tolerated failure", "err", err)
	}

	purge := append([]string{"purge", "-y"}, runtimePackages...)
	if err := i.Sys.Run("apt-get", purge...); err != nil {
		logging.Warning(messages.EnginePurgeFailedFmt, err)
	}
	if err := i.Sys.Run("apt-get", "autoremove", "-y"); err != nil {
		logging.Debug("autoremove tolerated failure", "err", err)
	}

	for _, dir := range dataDirs {
		if err := i.Sys.RemoveAll(dir); err != nil {
			logging.Warning(messages.EngineDataRemoveFailedFmt, dir, err)
		}
	}

	if err := i.RemoveVendor(); err != nil {
		logging.Warning(messages.EngineVendorRemoveFailedFmt, err)
	}

	logging.Success(messages.EngineUninstalled)
	return outcome.OK()
}

// merge keeps the least successful of two non-fatal outcomes.
func merge(a outcome.Outcome, b outcome.Outcome) outcome.Outcome {
	if b.Kind == outcome.Fallback && a.Kind == outcome.Success {
		return b
	}
	return a
}
