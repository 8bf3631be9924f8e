package privilege

import (
	"errors"
	"os/exec"

	"github.com/0xamirreza/Docker4Iran/internal/messages"
	"github.com/0xamirreza/Docker4Iran/internal/outcome"
)

// ContinuationArg is the hidden subcommand used as the as-root entry point
// after re-execution. The elevated child runs `<binary> elevated <op>` and
// never calls EnsureElevated again, so elevation fires at most once per
// logical operation.
const ContinuationArg = "elevated"

// RunFunc is an as-root continuation invoked once privilege is ensured.
type RunFunc func() outcome.Outcome

// EnsureElevated runs the continuation directly when the process is already
// elevated; otherwise it re-invokes the current binary under sudo with the
// continuation name as its argument and maps the child's exit status onto
// the returned outcome. A refused or unavailable sudo is Fatal.
func EnsureElevated(ctx Context, sys System, op string, run RunFunc) outcome.Outcome {
	if ctx.Elevated {
		return run()
	}

	if _, err := sys.LookPath("sudo"); err != nil {
		return outcome.Fatalf(messages.PrivilegeSudoMissing)
	}
	binary, err := sys.Executable()
	if err != nil {
		return outcome.Fatalf(messages.PrivilegeExecutableFmt, err)
	}

	err = sys.RunInteractive("sudo", binary, ContinuationArg, op)
	if err == nil {
		return outcome.OK()
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		// The child already reported its own failure; the parent's job is
		// to exit with the same status.
		return outcome.FatalCode(exitErr.ExitCode(), messages.PrivilegeChildFailedFmt, op, exitErr.ExitCode())
	}
	return outcome.Fatalf(messages.PrivilegeEscalationFailedFmt, err)
}
