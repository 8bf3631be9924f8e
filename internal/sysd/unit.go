// Package sysd manages the companion tool's systemd unit and the companion
// executable's lifecycle on the host.
package sysd

import (
	"fmt"
	"strings"

	"github.com/kballard/go-shellquote"
)

// Unit describes the companion daemon's systemd service: the executable it
// runs, the invoking user it runs as, and the sandboxing scope it is
// confined to.
type Unit struct {
	Description    string
	ExecStart      []string
	User           string
	WorkingDir     string
	ReadWritePaths []string
}

// Render produces the unit file text. The service restarts always with a
// bounded backoff, runs as the invoking user rather than root, and is
// sandboxed to writing only its own data directory.
func (u Unit) Render() string {
	var b strings.Builder
	fmt.Fprintf(&b, "[Unit]\n")
	fmt.Fprintf(&b, "Description=%s\n", u.Description)
	fmt.Fprintf(&b, "After=network.target docker.service\n")
	fmt.Fprintf(&b, "StartLimitIntervalSec=300\n")
	fmt.Fprintf(&b, "StartLimitBurst=5\n")
	fmt.Fprintf(&b, "\n[Service]\n")
	fmt.Fprintf(&b, "Type=simple\n")
	if u.User != "" {
		// Empty means no separate invoking user; systemd then defaults
		// the service to root, matching the invocation.
		fmt.Fprintf(&b, "User=%s\n", u.User)
	}
	fmt.Fprintf(&b, "ExecStart=%s\n", shellquote.Join(u.ExecStart...))
	if u.WorkingDir != "" {
		fmt.Fprintf(&b, "WorkingDirectory=%s\n", u.WorkingDir)
	}
	fmt.Fprintf(&b, "Restart=always\n")
	fmt.Fprintf(&b, "RestartSec=10\n")
	fmt.Fprintf(&b, "NoNewPrivileges=yes\n")
	fmt.Fprintf(&b, "PrivateTmp=yes\n")
	fmt.Fprintf(&b, "ProtectSystem=full\n")
	fmt.Fprintf(&b, "ProtectHome=read-only\n")
	if len(u.ReadWritePaths) > 0 {
		fmt.Fprintf(&b, "ReadWritePaths=%s\n", strings.Join(u.ReadWritePaths, " "))
	}
	fmt.Fprintf(&b, "\n[Install]\n")
	fmt.Fprintf(&b, "WantedBy=multi-user.target\n")
	return b.String()
}
