package main

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/0xamirreza/Docker4Iran/internal/messages"
	"github.com/0xamirreza/Docker4Iran/internal/orchestrator"
	"github.com/0xamirreza/Docker4Iran/internal/privilege"
)

// newElevatedCmd is the hidden as-root continuation entry point. The
// privilege gate re-executes `sudo d4i elevated <operation>`; this command
// never re-enters the gate, so elevation fires at most once per operation.
func newElevatedCmd() *cobra.Command {
	return &cobra.Command{
		Use:    privilege.ContinuationArg + " <operation>",
		Hidden: true,
		Args:   cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			op, err := orchestrator.ParseOperation(args[0])
			if err != nil {
				return err
			}
			sys := privilege.RealSystem{}
			privCtx, err := privilege.NewContext(sys)
			if err != nil {
				return err
			}
			if !privCtx.Elevated {
				return errors.New(messages.ElevatedRequiresRoot)
			}
			return finish(op, runElevated(cmd, op, privCtx))
		},
	}
}
