package codemods

import (
	"fmt"
	"log/slog"
	"slices"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/mouse-blink/hooklens/internal/config"
	"github.com/mouse-blink/hooklens/internal/engine"
	m "github.com/mouse-blink/hooklens/internal/model"
	"github.com/mouse-blink/hooklens/internal/syntax"
)

// TraceMode selects where the tracer puts its logs.
type TraceMode string

const (
	// TraceCalls logs before every call site of a selected function.
	TraceCalls TraceMode = "calls"
	// TraceEntry logs at the top of each selected function body.
	TraceEntry TraceMode = "entry"
)

// ParseTraceMode validates a mode name.
func ParseTraceMode(s string) (TraceMode, error) {
	switch mode := TraceMode(strings.ToLower(s)); mode {
	case TraceCalls, TraceEntry:
		return mode, nil
	}

	return "", fmt.Errorf("unknown trace mode %q (want %q or %q)", s, TraceCalls, TraceEntry)
}

// FunctionScanner records every named function into a FunctionCatalog.
type FunctionScanner struct {
	catalog *m.FunctionCatalog
}

// NewFunctionScanner creates a FunctionScanner filling catalog.
func NewFunctionScanner(catalog *m.FunctionCatalog) *FunctionScanner {
	return &FunctionScanner{catalog: catalog}
}

// Scan adds the named functions of doc to the catalog. Functions generated
// by hooklens itself are skipped.
func (s *FunctionScanner) Scan(doc *syntax.Document, file m.File) {
	syntax.Walk(doc, func(w *syntax.Walker, n *sitter.Node) bool {
		if !syntax.KindOf(n).IsFunctionLike() {
			return true
		}

		name := w.FunctionName(n)
		if name == "" || strings.HasPrefix(name, "__hooklens") {
			return true
		}

		s.catalog.Add(name, file.ShortPath, engine.Owner(w.Frames()))

		return true
	})
}

// Tracer logs calls to, or entries into, the selected functions.
type Tracer struct {
	cfg      config.Config
	selected Selection
	mode     TraceMode
}

// NewTracer creates a Tracer.
func NewTracer(cfg config.Config, selected Selection, mode TraceMode) *Tracer {
	if mode == "" {
		mode = TraceCalls
	}

	return &Tracer{cfg: cfg, selected: selected, mode: mode}
}

// Type implements Codemod.
func (t *Tracer) Type() m.CodemodType {
	return m.CodemodTrace
}

// Plan queues the trace logs for doc.
func (t *Tracer) Plan(doc *syntax.Document) *engine.Editor {
	ed := engine.NewEditor(doc)
	ignore := BuildIgnoreIndex(doc)

	if ignore.IgnoresFile(string(m.CodemodTrace)) {
		return ed
	}

	if t.mode == TraceEntry {
		syntax.Walk(doc, func(w *syntax.Walker, n *sitter.Node) bool {
			t.planEntry(ed, ignore, w, n)
			return true
		})

		return ed
	}

	syntax.Walk(doc, func(w *syntax.Walker, n *sitter.Node) bool {
		t.planCall(ed, ignore, w, n)
		return true
	})

	return ed
}

func (t *Tracer) label(parent, name string) string {
	return fmt.Sprintf("%s %s -> %s()", LogPrefix, parent, name)
}

func (t *Tracer) planCall(ed *engine.Editor, ignore IgnoreIndex, w *syntax.Walker, n *sitter.Node) {
	doc := w.Document()

	name := calleeName(doc, n)
	if name == "" || !t.selected[name] || ignore.Ignores(string(m.CodemodTrace), doc.Line(n)) {
		return
	}

	frames := w.Frames()
	if engine.InsideFunction(frames, name) {
		return
	}

	anchor, ok := engine.FindAnchor(w.Ancestors(), n)
	if !ok {
		slog.Debug("call has no insertion point", "file", doc.Path, "line", doc.Line(n), "function", name)
		return
	}

	label := t.label(engine.Owner(frames), name)
	if slices.Contains(engine.PrecedingCallLabels(doc, anchor, t.cfg.LogFunction), label) {
		return
	}

	stmt := engine.CallStatement(t.cfg.LogFunction, engine.Quote(label))
	if slices.Contains(ed.Queued(anchor), stmt) {
		return
	}

	ed.InsertBefore(anchor, stmt)
	ed.AddSite(m.Site{Type: m.CodemodTrace, Line: doc.Line(n), Label: label})
}

func (t *Tracer) planEntry(ed *engine.Editor, ignore IgnoreIndex, w *syntax.Walker, n *sitter.Node) {
	if !syntax.KindOf(n).IsFunctionLike() {
		return
	}

	doc := w.Document()

	name := w.FunctionName(n)
	if !t.selected[name] || ignore.Ignores(string(m.CodemodTrace), doc.Line(n)) {
		return
	}

	label := t.label(engine.Owner(w.Frames()), name)

	body := syntax.Field(n, "body")
	if syntax.KindOf(body) == syntax.KindStatementBlock {
		if got, ok := engine.CallLabel(doc, syntax.FirstNamedChild(body), t.cfg.LogFunction); ok && got == label {
			return
		}
	}

	ed.PrependToBody(n, engine.CallStatement(t.cfg.LogFunction, engine.Quote(label)))
	ed.AddSite(m.Site{Type: m.CodemodTrace, Line: doc.Line(n), Label: label})
}

// calleeName returns the name a call invokes: a bare identifier or a
// property of `this`.
func calleeName(doc *syntax.Document, call *sitter.Node) string {
	if syntax.KindOf(call) != syntax.KindCall {
		return ""
	}

	callee := syntax.Unwrap(syntax.Field(call, "function"))

	switch syntax.KindOf(callee) {
	case syntax.KindIdentifier:
		return doc.Text(callee)
	case syntax.KindMember:
		if object := syntax.Field(callee, "object"); object != nil && object.Type() == "this" {
			return doc.PropertyName(syntax.Field(callee, "property"))
		}
	}

	return ""
}
