package main

import (
	"github.com/spf13/cobra"

	"github.com/0xamirreza/Docker4Iran/internal/messages"
	"github.com/0xamirreza/Docker4Iran/internal/orchestrator"
)

func newInstallCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   messages.InstallUse,
		Short: messages.InstallShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOperation(cmd, orchestrator.FullInstall)
		},
	}
	cmd.AddCommand(newInstallEngineCmd())
	cmd.AddCommand(newInstallServiceCmd())
	return cmd
}

func newInstallEngineCmd() *cobra.Command {
	return &cobra.Command{
		Use:   messages.InstallEngineUse,
		Short: messages.InstallEngineShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOperation(cmd, orchestrator.InstallEngine)
		},
	}
}

func newInstallServiceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   messages.InstallServiceUse,
		Short: messages.InstallServiceShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOperation(cmd, orchestrator.InstallService)
		},
	}
}
