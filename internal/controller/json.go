package controller

import (
	"encoding/json"
	"fmt"
	"io"

	m "github.com/mouse-blink/hooklens/internal/model"
)

// JSONUI writes machine-readable documents. Rewrite runs emit a single
// document once the summary is known.
type JSONUI struct {
	output io.Writer
	files  []jsonFileResult
}

type jsonSite struct {
	Type  m.CodemodType `json:"type"`
	Line  int           `json:"line"`
	Label string        `json:"label,omitempty"`
}

type jsonFileResult struct {
	Path    m.Path     `json:"path"`
	Sites   []jsonSite `json:"sites,omitempty"`
	Written bool       `json:"written"`
	Diff    string     `json:"diff,omitempty"`
	Error   string     `json:"error,omitempty"`
}

type jsonRun struct {
	Files   []jsonFileResult `json:"files"`
	Summary m.RunSummary     `json:"summary"`
}

type jsonFunctions struct {
	Functions []m.FunctionEntry `json:"functions"`
}

type jsonComponents struct {
	Components []m.Component `json:"components"`
	Roots      []string      `json:"roots"`
}

// NewJSONUI creates a JSONUI writing to output.
func NewJSONUI(output io.Writer) *JSONUI {
	return &JSONUI{output: output}
}

func (j *JSONUI) encode(v any) error {
	enc := json.NewEncoder(j.output)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)

	return enc.Encode(v)
}

// DisplayFindings writes the report as one document.
func (j *JSONUI) DisplayFindings(report m.AnalysisReport) error {
	if report.Findings == nil {
		report.Findings = []m.Finding{}
	}

	return j.encode(report)
}

// DisplayHierarchy writes the components and the roots of the tree.
func (j *JSONUI) DisplayHierarchy(graph *m.ComponentGraph) error {
	return j.encode(jsonComponents{Components: graph.Components(), Roots: graph.Roots()})
}

// DisplayCatalog writes the cataloged functions.
func (j *JSONUI) DisplayCatalog(catalog *m.FunctionCatalog) error {
	return j.encode(jsonFunctions{Functions: catalog.Entries()})
}

// DisplayFileResult buffers the result until DisplaySummary.
func (j *JSONUI) DisplayFileResult(result m.FileResult) error {
	r := jsonFileResult{
		Path:    result.File.ShortPath,
		Written: result.Written,
		Diff:    result.Diff,
	}

	if result.Err != nil {
		r.Error = result.Err.Error()
	}

	for _, site := range result.Sites {
		r.Sites = append(r.Sites, jsonSite(site))
	}

	j.files = append(j.files, r)

	return nil
}

// DisplaySummary writes the buffered file results with the totals.
func (j *JSONUI) DisplaySummary(summary m.RunSummary) error {
	files := j.files
	if files == nil {
		files = []jsonFileResult{}
	}

	j.files = nil

	return j.encode(jsonRun{Files: files, Summary: summary})
}

// Select cannot prompt while writing JSON.
func (j *JSONUI) Select(title string, _ []m.SelectionGroup) ([]string, error) {
	return nil, fmt.Errorf("%s: %w", title, ErrNotInteractive)
}
