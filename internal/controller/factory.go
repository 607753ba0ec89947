package controller

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

// NewUI picks the UI for a command: JSON when requested, the Bubble Tea
// TUI on a terminal, plain text otherwise.
func NewUI(cmd *cobra.Command, useTTY, jsonOutput bool) UI {
	switch {
	case jsonOutput:
		return NewJSONUI(cmd.OutOrStdout())
	case useTTY:
		return NewTUI(cmd.OutOrStdout(), cmd.InOrStdin())
	default:
		return NewSimpleUI(cmd)
	}
}

// IsTTY reports whether w is an interactive terminal. Files, pipes and
// in-memory writers are not.
func IsTTY(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}

	fd := file.Fd()

	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
