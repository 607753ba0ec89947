// Package controller renders hooklens results and drives the interactive
// selection of components and functions.
package controller

import (
	"errors"

	m "github.com/mouse-blink/hooklens/internal/model"
)

var (
	// ErrNotInteractive is returned by Select when the output is not a
	// terminal.
	ErrNotInteractive = errors.New("interactive selection needs a terminal: pass --select or --all")
	// ErrSelectionCanceled is returned when the user leaves the selector
	// without confirming.
	ErrSelectionCanceled = errors.New("selection canceled")
)

// UI defines how workflows report results and ask for selections.
// Implementations can use different output methods (simple text, TUI, JSON).
type UI interface {
	DisplayFindings(report m.AnalysisReport) error
	DisplayHierarchy(graph *m.ComponentGraph) error
	DisplayCatalog(catalog *m.FunctionCatalog) error
	DisplayFileResult(result m.FileResult) error
	DisplaySummary(summary m.RunSummary) error
	Select(title string, groups []m.SelectionGroup) ([]string, error)
}
