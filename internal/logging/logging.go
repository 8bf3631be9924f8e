// Package logging provides the orchestrator's structured debug logger and
// the user-facing output helpers.
//
// Structured logs (Debug/Warn) go to stderr through charmbracelet/log and
// are controlled by the D4I_LOG environment variable. User output goes
// through Info/Success/Warning/Error with a colored status prefix:
// Info and Success write to stdout, Warning and Error to stderr.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/fatih/color"
)

// EnvLogLevel selects the structured log level (debug, info, warn, error).
const EnvLogLevel = "D4I_LOG"

var (
	loggerOnce sync.Once
	logger     *log.Logger

	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr

	successPrefix = color.New(color.FgGreen).Sprint("[ok]")
	infoPrefix    = color.New(color.FgCyan).Sprint("[..]")
	warnPrefix    = color.New(color.FgYellow).Sprint("[!!]")
	errorPrefix   = color.New(color.FgRed).Sprint("[xx]")
)

// Logger returns the process-wide structured logger, creating it on first use.
func Logger() *log.Logger {
	loggerOnce.Do(func() {
		logger = log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Prefix:          "d4i",
		})
		logger.SetLevel(levelFromEnv(os.Getenv(EnvLogLevel)))
	})
	return logger
}

func levelFromEnv(value string) log.Level {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "debug":
		return log.DebugLevel
	case "warn":
		return log.WarnLevel
	case "error":
		return log.ErrorLevel
	default:
		return log.InfoLevel
	}
}

// Debug records a structured debug entry with optional key-value pairs.
func Debug(msg string, keyvals ...any) {
	Logger().Debug(msg, keyvals...)
}

// Warn records a structured warning entry with optional key-value pairs.
func Warn(msg string, keyvals ...any) {
	Logger().Warn(msg, keyvals...)
}

// SetOutput redirects user-facing output, returning a restore function.
// Intended for tests.
func SetOutput(out io.Writer, err io.Writer) func() {
	prevOut, prevErr := stdout, stderr
	stdout, stderr = out, err
	return func() {
		stdout, stderr = prevOut, prevErr
	}
}

// Info prints a progress message to stdout.
func Info(format string, args ...any) {
	fmt.Fprintf(stdout, infoPrefix+" "+format+"\n", args...)
}

// Success prints a completion message to stdout.
func Success(format string, args ...any) {
	fmt.Fprintf(stdout, successPrefix+" "+format+"\n", args...)
}

// Warning prints a recoverable-problem message to stderr.
func Warning(format string, args ...any) {
	fmt.Fprintf(stderr, warnPrefix+" "+format+"\n", args...)
}

// Error prints a failure message to stderr.
func Error(format string, args ...any) {
	fmt.Fprintf(stderr, errorPrefix+" "+format+"\n", args...)
}
