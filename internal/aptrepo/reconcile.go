package aptrepo

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/aymanbagabas/go-udiff"
	"golang.org/x/sys/unix"

	"github.com/0xamirreza/Docker4Iran/internal/distro"
	"github.com/0xamirreza/Docker4Iran/internal/logging"
	"github.com/0xamirreza/Docker4Iran/internal/messages"
	"github.com/0xamirreza/Docker4Iran/internal/outcome"
)

// diffPreviewMaxLines caps the source-list diff shown in the debug log.
const diffPreviewMaxLines = 40

// Reconciler rewrites the host's apt configuration for a resolved identity.
type Reconciler struct {
	Sys    System
	Layout Layout
	// Now stamps backup copies; defaults to time.Now.
	Now func() time.Time
}

// NewReconciler returns a Reconciler over the real host apt layout.
func NewReconciler() Reconciler {
	return Reconciler{Sys: RealSystem{}, Layout: DefaultLayout(), Now: time.Now}
}

// Reconcile backs up the existing repository configuration, regenerates the
// primary source file for the identity, refreshes the package index, and
// installs the Docker signing key and repository entry. Re-running on an
// already-reconciled host is safe: generation is deterministic and the
// keyring path is simply overwritten. Index refresh failures are Fatal;
// nothing downstream can proceed without a valid index.
func (r Reconciler) Reconcile(id distro.Identity) outcome.Outcome {
	if err := r.backupFragments(); err != nil {
		return outcome.Fatalf(messages.AptBackupFailedFmt, err)
	}
	if err := r.backupSourcesList(); err != nil {
		return outcome.Fatalf(messages.AptBackupFailedFmt, err)
	}
	if err := r.writeSourcesList(id); err != nil {
		return outcome.Fatalf(messages.AptWriteSourcesFailedFmt, err)
	}

	if err := r.Sys.Run("apt-get", "clean"); err != nil {
		logging.Warn("apt-get clean failed", "err", err)
	}
	if err := r.Sys.Run("apt-get", "update"); err != nil {
		return outcome.Fatalf(messages.AptIndexRefreshFailedFmt, err)
	}

	if err := r.installVendorKey(id); err != nil {
		return outcome.Fatalf(messages.AptVendorKeyFailedFmt, err)
	}
	if err := r.writeVendorList(id); err != nil {
		return outcome.Fatalf(messages.AptVendorListFailedFmt, err)
	}
	if err := r.Sys.Run("apt-get", "update"); err != nil {
		return outcome.Fatalf(messages.AptIndexRefreshFailedFmt, err)
	}

	logging.Success(messages.AptReconciled)
	return outcome.OK()
}

// backupFragments moves every fragment file out of sources.list.d into the
// backup directory. A missing fragment directory is not an error.
func (r Reconciler) backupFragments() error {
	if err := r.Sys.MkdirAll(r.Layout.BackupDir, 0o755); err != nil {
		return err
	}
	entries, err := r.Sys.ReadDir(r.Layout.SourcesDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	for _, entry := range entries {
		if entry.IsDir() || !isFragment(entry.Name()) {
			continue
		}
		src := filepath.Join(r.Layout.SourcesDir, entry.Name())
		// The vendor list is reconciler-owned and regenerated below; moving
		// it would grow the backup directory on every re-run.
		if src == r.Layout.VendorList {
			continue
		}
		dst := filepath.Join(r.Layout.BackupDir, entry.Name())
		if err := r.Sys.Rename(src, dst); err != nil {
			return err
		}
		logging.Debug("moved repository fragment to backup", "file", entry.Name())
	}
	return nil
}

func isFragment(name string) bool {
	return strings.HasSuffix(name, ".list") || strings.HasSuffix(name, ".sources")
}

// backupSourcesList copies (not moves) the primary source file to a
// distinctly named backup so the overwrite target stays recoverable.
func (r Reconciler) backupSourcesList() error {
	data, err := r.Sys.ReadFile(r.Layout.SourcesList)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	name := "sources.list." + r.now().Format("20060102-150405") + ".bak"
	return r.Sys.WriteFileAtomic(filepath.Join(r.Layout.BackupDir, name), data, 0o644)
}

// writeSourcesList fully regenerates the primary source file. When the
// prior content differs, a truncated unified diff is recorded for the
// operator before the overwrite.
func (r Reconciler) writeSourcesList(id distro.Identity) error {
	content := SourcesContent(id)
	if prior, err := r.Sys.ReadFile(r.Layout.SourcesList); err == nil && string(prior) != content {
		logging.Debug("regenerating primary source file", "diff", truncatedDiff(string(prior), content))
	}
	return r.Sys.WriteFileAtomic(r.Layout.SourcesList, []byte(content), 0o644)
}

func truncatedDiff(prior string, next string) string {
	diff := udiff.Unified("sources.list (previous)", "sources.list (regenerated)", prior, next)
	lines := strings.Split(strings.TrimRight(diff, "\n"), "\n")
	if len(lines) > diffPreviewMaxLines {
		lines = append(lines[:diffPreviewMaxLines], "... (truncated)")
	}
	return strings.Join(lines, "\n")
}

// installVendorKey fetches the armored vendor key over HTTPS, dearmors it
// into the keyring directory with restrictive permissions, then widens the
// keyring to world-readable so apt's sandboxed fetchers can use it.
func (r Reconciler) installVendorKey(id distro.Identity) error {
	if err := r.Sys.MkdirAll(r.Layout.KeyringDir, 0o755); err != nil {
		return err
	}
	armored, err := r.Sys.Download(VendorKeyURL(id))
	if err != nil {
		return err
	}
	armoredPath := r.Layout.Keyring + ".asc"
	if err := r.Sys.WriteFileAtomic(armoredPath, armored, 0o600); err != nil {
		return err
	}
	defer func() { _ = r.Sys.Remove(armoredPath) }()

	if err := r.Sys.Run("gpg", "--dearmor", "--yes", "-o", r.Layout.Keyring, armoredPath); err != nil {
		return err
	}
	return r.Sys.Chmod(r.Layout.Keyring, 0o644)
}

// writeVendorList writes the single repository entry referencing the
// keyring and the host architecture.
func (r Reconciler) writeVendorList(id distro.Identity) error {
	arch := r.architecture()
	content := VendorListContent(id, arch, r.Layout.Keyring)
	return r.Sys.WriteFileAtomic(r.Layout.VendorList, []byte(content), 0o644)
}

// architecture asks dpkg for the package architecture and falls back to a
// uname mapping when dpkg is unavailable.
func (r Reconciler) architecture() string {
	if out, err := r.Sys.Output("dpkg", "--print-architecture"); err == nil && out != "" {
		return out
	}
	var uts unix.Utsname
	if err := unix.Uname(&uts); err == nil {
		switch machine := unix.ByteSliceToString(uts.Machine[:]); machine {
		case "x86_64":
			return "amd64"
		case "aarch64":
			return "arm64"
		case "armv7l":
			return "armhf"
		}
	}
	return "amd64"
}

// RemoveVendorEntry removes the Docker repository entry and keyring written
// by Reconcile. Missing files are tolerated. The regenerated primary source
// file is intentionally left in place: uninstall only undoes the
// vendor-specific additions, not the general repository cleanup.
func (r Reconciler) RemoveVendorEntry() error {
	for _, path := range []string{r.Layout.VendorList, r.Layout.Keyring} {
		if err := r.Sys.Remove(path); err != nil && !os.IsNotExist(err) {
			return err
		}
	}
	return nil
}

func (r Reconciler) now() time.Time {
	if r.Now == nil {
		return time.Now()
	}
	return r.Now()
}
