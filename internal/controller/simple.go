package controller

import (
	"fmt"

	"github.com/spf13/cobra"

	m "github.com/mouse-blink/hooklens/internal/model"
)

// SimpleUI implements UI as plain text written to the command's output.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

func (s *SimpleUI) renderer() renderer {
	return renderer{out: s.cmd.OutOrStdout()}
}

// DisplayFindings prints the findings table and the per-class counts.
func (s *SimpleUI) DisplayFindings(report m.AnalysisReport) error {
	s.renderer().findings(report)
	return nil
}

// DisplayHierarchy prints the component tree.
func (s *SimpleUI) DisplayHierarchy(graph *m.ComponentGraph) error {
	s.renderer().hierarchy(graph)
	return nil
}

// DisplayCatalog prints the function catalog.
func (s *SimpleUI) DisplayCatalog(catalog *m.FunctionCatalog) error {
	s.renderer().catalog(catalog)
	return nil
}

// DisplayFileResult prints one line per modified file, or its diff.
func (s *SimpleUI) DisplayFileResult(result m.FileResult) error {
	s.renderer().fileResult(result)
	return nil
}

// DisplaySummary prints the run totals.
func (s *SimpleUI) DisplaySummary(summary m.RunSummary) error {
	s.renderer().summary(summary)
	return nil
}

// Select cannot prompt without a terminal.
func (s *SimpleUI) Select(title string, _ []m.SelectionGroup) ([]string, error) {
	return nil, fmt.Errorf("%s: %w", title, ErrNotInteractive)
}
