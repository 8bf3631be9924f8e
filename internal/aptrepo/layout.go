// Package aptrepo regenerates the host's apt configuration to a known-good
// state and installs the Docker vendor repository and signing key.
//
// Reconciliation is a full overwrite, never a merge: partial edits to
// unknown prior configurations are the primary source of unrecoverable apt
// corruption this package exists to eliminate. Prior configuration is moved
// to a backup directory, never deleted.
package aptrepo

import "path/filepath"

// Layout names every apt path the reconciler touches. Tests point it at a
// temporary directory; production uses DefaultLayout.
type Layout struct {
	// SourcesList is the primary source file, fully regenerated each run.
	SourcesList string
	// SourcesDir holds repository fragment files (*.list, *.sources).
	SourcesDir string
	// BackupDir receives displaced configuration.
	BackupDir string
	// KeyringDir holds dearmored signing keys.
	KeyringDir string
	// Keyring is the Docker vendor signing key path.
	Keyring string
	// VendorList is the Docker repository entry file.
	VendorList string
}

// DefaultLayout returns the standard apt paths.
func DefaultLayout() Layout {
	keyringDir := "/etc/apt/keyrings"
	sourcesDir := "/etc/apt/sources.list.d"
	return Layout{
		SourcesList: "/etc/apt/sources.list",
		SourcesDir:  sourcesDir,
		BackupDir:   "/etc/apt/backup-docker4iran",
		KeyringDir:  keyringDir,
		Keyring:     filepath.Join(keyringDir, "docker.gpg"),
		VendorList:  filepath.Join(sourcesDir, "docker.list"),
	}
}
