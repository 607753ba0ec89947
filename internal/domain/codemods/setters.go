package codemods

import (
	"log/slog"
	"slices"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/mouse-blink/hooklens/internal/config"
	"github.com/mouse-blink/hooklens/internal/engine"
	m "github.com/mouse-blink/hooklens/internal/model"
	"github.com/mouse-blink/hooklens/internal/syntax"
)

// SetterLogger inserts a log statement before every call to a useState
// setter. A call already preceded by the same log is left alone.
type SetterLogger struct {
	cfg config.Config
}

// NewSetterLogger creates a SetterLogger.
func NewSetterLogger(cfg config.Config) *SetterLogger {
	return &SetterLogger{cfg: cfg}
}

// Type implements Codemod.
func (s *SetterLogger) Type() m.CodemodType {
	return m.CodemodSetterLog
}

// Plan queues the setter logs for doc.
func (s *SetterLogger) Plan(doc *syntax.Document) *engine.Editor {
	ed := engine.NewEditor(doc)
	mt := engine.NewMatcher(doc, s.cfg.Module)

	bindings := mt.CollectBindings(s.cfg.StateHook)
	if len(bindings) == 0 {
		return ed
	}

	ignore := BuildIgnoreIndex(doc)

	syntax.Walk(doc, func(w *syntax.Walker, n *sitter.Node) bool {
		b, ok := mt.SetterCall(n, bindings)
		if !ok || ignore.Ignores(string(m.CodemodSetterLog), doc.Line(n)) {
			return true
		}

		anchor, ok := engine.FindAnchor(w.Ancestors(), n)
		if !ok {
			slog.Debug("setter call has no insertion point", "file", doc.Path, "line", doc.Line(n), "setter", b.Setter)
			return true
		}

		label := LogPrefix + " " + engine.ComponentOrOwner(w.Frames()) + "." + b.Setter
		if slices.Contains(engine.PrecedingCallLabels(doc, anchor, s.cfg.LogFunction), label) {
			return true
		}

		args := []string{engine.Quote(label)}
		if src := argumentSource(doc, n); src != "" {
			args = append(args, engine.Quote(src))
		}

		ed.InsertBefore(anchor, engine.CallStatement(s.cfg.LogFunction, args...))
		ed.AddSite(m.Site{Type: m.CodemodSetterLog, Line: doc.Line(n), Label: label})

		return true
	})

	return ed
}

func argumentSource(doc *syntax.Document, call *sitter.Node) string {
	args := engine.HookArguments(call)
	parts := make([]string, 0, len(args))

	for _, arg := range args {
		parts = append(parts, Snippet(doc.Text(arg)))
	}

	return strings.Join(parts, ", ")
}
