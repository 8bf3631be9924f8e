package main

import (
	"github.com/spf13/cobra"

	"github.com/0xamirreza/Docker4Iran/internal/config"
	"github.com/0xamirreza/Docker4Iran/internal/logging"
	"github.com/0xamirreza/Docker4Iran/internal/messages"
	"github.com/0xamirreza/Docker4Iran/internal/orchestrator"
	"github.com/0xamirreza/Docker4Iran/internal/outcome"
	"github.com/0xamirreza/Docker4Iran/internal/paths"
	"github.com/0xamirreza/Docker4Iran/internal/privilege"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           messages.RootUse,
		Short:         messages.RootShort,
		Long:          messages.RootLong,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.AddCommand(newInstallCmd())
	cmd.AddCommand(newUninstallCmd())
	cmd.AddCommand(newOptimizeCmd())
	cmd.AddCommand(newMonitorCmd())
	cmd.AddCommand(newElevatedCmd())
	return cmd
}

// runOperation executes op behind the privilege gate. A process that is not
// yet elevated re-executes itself under sudo; the continuation below then
// runs in the elevated child via the hidden elevated subcommand.
func runOperation(cmd *cobra.Command, op orchestrator.Operation) error {
	sys := privilege.RealSystem{}
	privCtx, err := privilege.NewContext(sys)
	if err != nil {
		return err
	}
	got := privilege.EnsureElevated(privCtx, sys, string(op), func() outcome.Outcome {
		return runElevated(cmd, op, privCtx)
	})
	return finish(op, got)
}

// runElevated loads config, wires real components, and dispatches op.
func runElevated(cmd *cobra.Command, op orchestrator.Operation, privCtx privilege.Context) outcome.Outcome {
	cfg, err := config.Load(paths.ConfigFile)
	if err != nil {
		return outcome.Fatalf("%v", err)
	}
	deps := orchestrator.NewDeps(privCtx, cfg, newConfirm(cmd))
	return orchestrator.Run(op, deps)
}

// finish maps an outcome onto the CLI exit contract. Fatal prints the
// reason and exits non-zero, preserving a failed child's exit status when
// the outcome carries one; Fallback warns and exits zero.
func finish(op orchestrator.Operation, got outcome.Outcome) error {
	switch got.Kind {
	case outcome.Fatal:
		logging.Error(messages.OperationFailedFmt, op, got.Reason)
		code := got.Code
		if code <= 0 {
			code = 1
		}
		return &SilentExitError{Code: code}
	case outcome.Fallback:
		if got.Reason != "" {
			logging.Warning("%s", got.Reason)
		}
	}
	return nil
}
