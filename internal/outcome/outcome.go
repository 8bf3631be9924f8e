// Package outcome defines the tri-state result every provisioning step
// reports back to the dispatcher.
package outcome

import "fmt"

// Kind classifies how a step finished.
type Kind int

const (
	// Success means the step completed as intended.
	Success Kind = iota
	// Fallback means the preferred path failed and a substitute was applied.
	Fallback
	// Fatal means the step failed in a way that must abort the operation.
	Fatal
)

// Outcome is the result of a single provisioning step. Composite operations
// continue past Success and Fallback and stop at the first Fatal.
type Outcome struct {
	Kind   Kind
	Reason string
	// Code is the process exit status a Fatal outcome propagates, used
	// when the failure is a child process whose own exit status must
	// survive to the parent's exit. Zero means unspecified; the CLI maps
	// it to 1.
	Code int
}

// OK returns a Success outcome.
func OK() Outcome {
	return Outcome{Kind: Success}
}

// Fallbackf returns a Fallback outcome with a formatted reason.
func Fallbackf(format string, args ...any) Outcome {
	return Outcome{Kind: Fallback, Reason: fmt.Sprintf(format, args...)}
}

// Fatalf returns a Fatal outcome with a formatted reason.
func Fatalf(format string, args ...any) Outcome {
	return Outcome{Kind: Fatal, Reason: fmt.Sprintf(format, args...)}
}

// FatalCode returns a Fatal outcome carrying a child process exit status.
func FatalCode(code int, format string, args ...any) Outcome {
	return Outcome{Kind: Fatal, Reason: fmt.Sprintf(format, args...), Code: code}
}

// Fatal reports whether the outcome aborts the current operation.
func (o Outcome) Fatal() bool {
	return o.Kind == Fatal
}

// Continue reports whether a composite operation may proceed to its next stage.
func (o Outcome) Continue() bool {
	return o.Kind != Fatal
}

// String renders the outcome for logs and error messages.
func (o Outcome) String() string {
	switch o.Kind {
	case Success:
		return "success"
	case Fallback:
		if o.Reason == "" {
			return "fallback"
		}
		return "fallback: " + o.Reason
	default:
		if o.Reason == "" {
			return "fatal"
		}
		return "fatal: " + o.Reason
	}
}
