// Package terminal provides terminal detection utilities.
package terminal

import (
	"os"

	"golang.org/x/term"
)

// IsInteractive reports whether stdin and stdout are both terminals.
// Destructive confirmation prompts require an interactive terminal; an
// unattended run must never default onto a destructive path.
func IsInteractive() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}
