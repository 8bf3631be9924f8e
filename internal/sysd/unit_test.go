package sysd

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUnitRender(t *testing.T) {
	u := Unit{
		Description:    "Docker4Iran runtime monitor",
		ExecStart:      []string{"/home/amir/.local/bin/d4i-monitor", "daemon"},
		User:           "amir",
		WorkingDir:     "/home/amir/.local/share/docker4iran",
		ReadWritePaths: []string{"/home/amir/.local/share/docker4iran"},
	}

	text := u.Render()

	require.Contains(t, text, "Description=Docker4Iran runtime monitor")
	require.Contains(t, text, "After=network.target docker.service")
	require.Contains(t, text, "ExecStart=/home/amir/.local/bin/d4i-monitor daemon")
	require.Contains(t, text, "User=amir")
	require.Contains(t, text, "Restart=always")
	require.Contains(t, text, "ProtectHome=read-only")
	require.Contains(t, text, "ReadWritePaths=/home/amir/.local/share/docker4iran")
	require.Contains(t, text, "WantedBy=multi-user.target")
	require.True(t, strings.HasSuffix(text, "\n"))
}

func TestUnitRenderOmitsEmptyUser(t *testing.T) {
	u := Unit{
		Description: "monitor",
		ExecStart:   []string{"/root/.local/bin/d4i-monitor", "daemon"},
	}

	require.NotContains(t, u.Render(), "User=")
}

func TestUnitRenderQuotesExecStart(t *testing.T) {
	u := Unit{
		Description: "monitor",
		ExecStart:   []string{"/home/a b/bin/d4i-monitor", "daemon"},
		User:        "amir",
	}

	require.Contains(t, u.Render(), "ExecStart='/home/a b/bin/d4i-monitor' daemon")
}
