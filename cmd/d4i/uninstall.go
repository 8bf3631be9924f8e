package main

import (
	"github.com/spf13/cobra"

	"github.com/0xamirreza/Docker4Iran/internal/messages"
	"github.com/0xamirreza/Docker4Iran/internal/orchestrator"
)

func newUninstallCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   messages.UninstallUse,
		Short: messages.UninstallShort,
	}
	cmd.AddCommand(newUninstallEngineCmd())
	cmd.AddCommand(newUninstallAllCmd())
	return cmd
}

func newUninstallEngineCmd() *cobra.Command {
	return &cobra.Command{
		Use:   messages.UninstallEngineUse,
		Short: messages.UninstallEngineShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOperation(cmd, orchestrator.UninstallEngine)
		},
	}
}

func newUninstallAllCmd() *cobra.Command {
	return &cobra.Command{
		Use:   messages.UninstallAllUse,
		Short: messages.UninstallAllShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOperation(cmd, orchestrator.UninstallAll)
		},
	}
}
