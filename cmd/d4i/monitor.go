package main

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/spf13/cobra"

	"github.com/0xamirreza/Docker4Iran/internal/messages"
	"github.com/0xamirreza/Docker4Iran/internal/sysd"
)

// newMonitorCmd launches the companion tool with inherited stdio, passing
// any trailing arguments through unparsed.
func newMonitorCmd() *cobra.Command {
	return &cobra.Command{
		Use:                messages.MonitorUse,
		Short:              messages.MonitorShort,
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			companion, err := sysd.RealSystem{}.FindCompanion()
			if err != nil {
				return fmt.Errorf(messages.MonitorLaunchFailedFmt, err)
			}
			child := exec.Command(companion, args...)
			child.Stdin = os.Stdin
			child.Stdout = os.Stdout
			child.Stderr = os.Stderr
			return child.Run()
		},
	}
}
