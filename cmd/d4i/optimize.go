package main

import (
	"github.com/spf13/cobra"

	"github.com/0xamirreza/Docker4Iran/internal/messages"
	"github.com/0xamirreza/Docker4Iran/internal/orchestrator"
)

func newOptimizeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   messages.OptimizeUse,
		Short: messages.OptimizeShort,
	}
	cmd.AddCommand(newOptimizeDNSCmd())
	cmd.AddCommand(newOptimizeMirrorCmd())
	return cmd
}

func newOptimizeDNSCmd() *cobra.Command {
	return &cobra.Command{
		Use:   messages.OptimizeDNSUse,
		Short: messages.OptimizeDNSShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOperation(cmd, orchestrator.OptimizeDNS)
		},
	}
}

func newOptimizeMirrorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   messages.OptimizeMirrorUse,
		Short: messages.OptimizeMirrorShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOperation(cmd, orchestrator.OptimizeMirror)
		},
	}
}
