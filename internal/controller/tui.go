package controller

import (
	"errors"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	m "github.com/mouse-blink/hooklens/internal/model"
)

const (
	defaultWidth  = 80
	defaultHeight = 24
)

// TUI implements UI for an interactive terminal: styled output and a
// Bubble Tea checklist for selections.
type TUI struct {
	output io.Writer
	input  io.Reader
}

// NewTUI creates a new TUI. A nil input reads from stdin.
func NewTUI(output io.Writer, input io.Reader) *TUI {
	if input == nil {
		input = os.Stdin
	}

	return &TUI{output: output, input: input}
}

func (t *TUI) size() (int, int) {
	if f, ok := t.output.(*os.File); ok {
		width, height, err := term.GetSize(int(f.Fd()))
		if err == nil && width > 0 && height > 0 {
			return width, height
		}
	}

	return defaultWidth, defaultHeight
}

func (t *TUI) renderer() renderer {
	width, _ := t.size()

	snippetWidth := width / 3
	if snippetWidth < 20 {
		snippetWidth = 20
	}

	return renderer{
		out:          t.output,
		snippetWidth: snippetWidth,
		rootStyle:    lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true),
		itemStyle:    lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
	}
}

// DisplayFindings prints the findings table with snippets fitted to the
// terminal width.
func (t *TUI) DisplayFindings(report m.AnalysisReport) error {
	t.renderer().findings(report)
	return nil
}

// DisplayHierarchy prints the component tree.
func (t *TUI) DisplayHierarchy(graph *m.ComponentGraph) error {
	t.renderer().hierarchy(graph)
	return nil
}

// DisplayCatalog prints the function catalog.
func (t *TUI) DisplayCatalog(catalog *m.FunctionCatalog) error {
	t.renderer().catalog(catalog)
	return nil
}

// DisplayFileResult prints one line per modified file, or its diff.
func (t *TUI) DisplayFileResult(result m.FileResult) error {
	t.renderer().fileResult(result)
	return nil
}

// DisplaySummary prints the run totals.
func (t *TUI) DisplaySummary(summary m.RunSummary) error {
	t.renderer().summary(summary)
	return nil
}

// Select runs the checklist and returns the confirmed names in the order
// they were offered. Leaving without confirming returns
// ErrSelectionCanceled.
func (t *TUI) Select(title string, groups []m.SelectionGroup) ([]string, error) {
	model := newSelectorModel(title, groups)
	if model.total == 0 {
		return nil, nil
	}

	model.width, model.height = t.size()

	final, err := tea.NewProgram(model,
		tea.WithInput(t.input),
		tea.WithOutput(t.output),
		tea.WithAltScreen(),
	).Run()
	if err != nil {
		return nil, fmt.Errorf("run selector: %w", err)
	}

	result, ok := final.(selectorModel)
	if !ok {
		return nil, errors.New("selector returned an unexpected model")
	}

	if result.canceled {
		return nil, ErrSelectionCanceled
	}

	return result.Selected(), nil
}
