package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/0xamirreza/Docker4Iran/internal/messages"
	"github.com/0xamirreza/Docker4Iran/internal/orchestrator"
	"github.com/0xamirreza/Docker4Iran/internal/terminal"
)

// interactiveFunc is replaced in tests to force the line-based prompt path.
var interactiveFunc = terminal.IsInteractive

// newConfirm builds the confirmation callback destructive operations block
// on. Prompts default to no so an unattended run never selects a
// destructive path.
func newConfirm(cmd *cobra.Command) orchestrator.ConfirmFunc {
	return func(prompt string) (bool, error) {
		if interactiveFunc() {
			var confirmed bool
			err := huh.NewConfirm().
				Title(prompt).
				Value(&confirmed).
				Run()
			if err != nil {
				return false, err
			}
			return confirmed, nil
		}
		return promptYesNo(cmd.InOrStdin(), cmd.OutOrStdout(), prompt, false)
	}
}

// promptYesNo reads a yes/no answer, re-asking on unrecognized input. EOF
// answers no regardless of the default.
func promptYesNo(in io.Reader, out io.Writer, prompt string, defaultYes bool) (bool, error) {
	reader := bufio.NewReader(in)
	for {
		if defaultYes {
			if _, err := fmt.Fprintf(out, messages.PromptYesDefaultFmt, prompt); err != nil {
				return false, err
			}
		} else {
			if _, err := fmt.Fprintf(out, messages.PromptNoDefaultFmt, prompt); err != nil {
				return false, err
			}
		}
		line, err := reader.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return false, err
		}
		response := strings.TrimSpace(line)
		if response == "" {
			if errors.Is(err, io.EOF) {
				return false, nil
			}
			return defaultYes, nil
		}
		if errors.Is(err, io.EOF) {
			switch strings.ToLower(response) {
			case "y", "yes":
				return true, nil
			}
			return false, nil
		}
		switch strings.ToLower(response) {
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}
	}
}
