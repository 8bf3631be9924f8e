// Package privilege determines the effective privilege level and re-executes
// the orchestrator under sudo when elevation is required.
package privilege

import (
	"strings"
)

// Context captures the privilege state of the current process. It is built
// once at process start and never mutated; per-user path resolution for the
// companion tool is driven by InvokingUser and HomeDir even when the
// orchestrator itself runs elevated.
type Context struct {
	Elevated     bool
	InvokingUser string
	HomeDir      string
}

// NewContext derives the privilege context from the effective UID and the
// sudo environment. When running under sudo, the invoking user and their
// home directory are resolved from SUDO_USER so companion-tool paths do not
// land in root's home.
func NewContext(sys System) (Context, error) {
	ctx := Context{Elevated: sys.Geteuid() == 0}

	sudoUser := strings.TrimSpace(sys.Getenv("SUDO_USER"))
	if ctx.Elevated && sudoUser != "" && sudoUser != "root" {
		ctx.InvokingUser = sudoUser
		home, err := sys.LookupUserHome(sudoUser)
		if err != nil {
			return Context{}, err
		}
		ctx.HomeDir = home
		return ctx, nil
	}

	home, err := sys.CurrentHome()
	if err != nil {
		return Context{}, err
	}
	ctx.HomeDir = home
	if !ctx.Elevated {
		ctx.InvokingUser = strings.TrimSpace(sys.Getenv("USER"))
	}
	return ctx, nil
}
