package controller

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/tree"
	"github.com/olekukonko/tablewriter"

	m "github.com/mouse-blink/hooklens/internal/model"
)

// renderer writes the plain-text views shared by the terminal UIs.
type renderer struct {
	out io.Writer
	// snippetWidth bounds the snippet column; zero means unbounded.
	snippetWidth int
	rootStyle    lipgloss.Style
	itemStyle    lipgloss.Style
}

func newTable(w io.Writer, header ...string) *tablewriter.Table {
	table := tablewriter.NewWriter(w)
	table.SetHeader(header)
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnSeparator(" ")
	table.SetAutoWrapText(false)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)

	return table
}

func (r renderer) findings(report m.AnalysisReport) {
	if len(report.Findings) == 0 {
		r.printf("No complex useState initializers found\n")
	} else {
		table := newTable(r.out, "#", "Component", "Variable", "Location", "Class", "Snippet")

		for i, f := range report.Findings {
			table.Append([]string{
				strconv.Itoa(i + 1),
				f.Component,
				f.Variable,
				fmt.Sprintf("%s:%d", f.File, f.Line),
				string(f.Class),
				truncateToWidth(f.Snippet, r.snippetWidth),
			})
		}

		table.Render()
	}

	if len(report.Counts) > 0 {
		r.printf("\n")

		counts := newTable(r.out, "Class", "Count")
		counts.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_RIGHT})

		for _, c := range report.Counts {
			counts.Append([]string{string(c.Class), strconv.Itoa(c.Count)})
		}

		counts.SetFooter([]string{"Total", strconv.Itoa(len(report.Findings))})
		counts.Render()
	}

	r.printf("\nScanned %d files, %d failed\n", report.Summary.Files, report.Summary.Failed)
}

func (r renderer) hierarchy(graph *m.ComponentGraph) {
	if graph.Len() == 0 {
		r.printf("No components found\n")
		return
	}

	for _, root := range graph.Roots() {
		t := r.subtree(graph, root, map[string]bool{})
		r.printf("%s\n", t.String())
	}
}

// subtree renders name and its descendants. A component already on the
// current path is printed as a leaf so cycles terminate.
func (r renderer) subtree(graph *m.ComponentGraph, name string, path map[string]bool) *tree.Tree {
	t := tree.Root(name).
		Enumerator(tree.RoundedEnumerator).
		RootStyle(r.rootStyle).
		ItemStyle(r.itemStyle)

	c, ok := graph.Get(name)
	if !ok {
		return t
	}

	path[name] = true
	defer delete(path, name)

	for _, child := range c.Children {
		switch _, known := graph.Get(child); {
		case path[child]:
			t.Child(child + " (cycle)")
		case !known:
			t.Child(child)
		default:
			t.Child(r.subtree(graph, child, path))
		}
	}

	return t
}

func (r renderer) catalog(catalog *m.FunctionCatalog) {
	if catalog.Len() == 0 {
		r.printf("No functions found\n")
		return
	}

	table := newTable(r.out, "Function", "Category", "Parent", "File")
	for _, e := range catalog.Entries() {
		table.Append([]string{e.Name, string(e.Category), e.Parent, string(e.File)})
	}

	table.Render()
}

func (r renderer) fileResult(result m.FileResult) {
	if result.Err != nil {
		r.printf("failed %s: %v\n", result.File.ShortPath, result.Err)
		return
	}

	if result.Diff != "" {
		r.printf("%s", result.Diff)

		if !strings.HasSuffix(result.Diff, "\n") {
			r.printf("\n")
		}

		return
	}

	if result.Written {
		r.printf("modified %s (%s)\n", result.File.ShortPath, pluralize(len(result.Sites), "site", "sites"))
	}
}

func (r renderer) summary(s m.RunSummary) {
	r.printf("\n%d files scanned, %d modified, %s, %d failed\n",
		s.Files, s.Modified, pluralize(s.Sites, "site", "sites"), s.Failed)
}

func (r renderer) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(r.out, format, args...)
}

func pluralize(n int, one, many string) string {
	if n == 1 {
		return "1 " + one
	}

	return strconv.Itoa(n) + " " + many
}

// truncateToWidth shortens text to width display cells, ending with an
// ellipsis. A width of zero or less leaves text untouched.
func truncateToWidth(text string, width int) string {
	if width <= 0 || lipgloss.Width(text) <= width {
		return text
	}

	const ellipsis = "…"

	if width == 1 {
		return ellipsis
	}

	var (
		b       strings.Builder
		current int
	)

	for _, r := range text {
		w := lipgloss.Width(string(r))
		if current+w > width-1 {
			break
		}

		b.WriteRune(r)
		current += w
	}

	return b.String() + ellipsis
}
