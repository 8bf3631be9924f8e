package main

import (
	"github.com/spf13/cobra"

	"github.com/0xamirreza/Docker4Iran/internal/messages"
	"github.com/0xamirreza/Docker4Iran/internal/monitor"
	"github.com/0xamirreza/Docker4Iran/internal/paths"
)

func newInstallSelfCmd() *cobra.Command {
	return &cobra.Command{
		Use:   messages.MonitorInstallSelfUse,
		Short: messages.MonitorInstallSelfShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := paths.Current()
			if err != nil {
				return err
			}
			return monitor.InstallSelf(monitor.RealInstallSystem{}, p)
		},
	}
}
