// Package codemods implements the hooklens tools on top of the engine:
// the useState analysis, the scan passes that feed interactive selection
// and the rewrites that insert logging or Profiler wrappers.
package codemods

import (
	"strings"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/mouse-blink/hooklens/internal/config"
	"github.com/mouse-blink/hooklens/internal/engine"
	m "github.com/mouse-blink/hooklens/internal/model"
	"github.com/mouse-blink/hooklens/internal/syntax"
)

// LogPrefix starts the first argument of every injected log call.
const LogPrefix = "[hooklens]"

// StateAnalyzer reports useState calls whose initializer is evaluated on
// every render.
type StateAnalyzer struct {
	cfg        config.Config
	classifier engine.Classifier
}

// NewStateAnalyzer creates a StateAnalyzer.
func NewStateAnalyzer(cfg config.Config) *StateAnalyzer {
	return &StateAnalyzer{cfg: cfg, classifier: engine.NewClassifier(cfg.Unlisted)}
}

// Analyze returns the findings of doc in source order.
func (a *StateAnalyzer) Analyze(doc *syntax.Document, file m.File) []m.Finding {
	mt := engine.NewMatcher(doc, a.cfg.Module)
	ignore := BuildIgnoreIndex(doc)

	var findings []m.Finding

	syntax.Walk(doc, func(w *syntax.Walker, n *sitter.Node) bool {
		if !mt.IsHookCall(n, a.cfg.StateHook) || ignore.Ignores(StatesTool, doc.Line(n)) {
			return true
		}

		args := engine.HookArguments(n)
		if len(args) == 0 {
			return true
		}

		class, report := a.classifier.Classify(doc, args[0])
		if !report {
			return true
		}

		findings = append(findings, m.Finding{
			Component: engine.Owner(w.Frames()),
			Variable:  stateVariable(mt, w.Parent(), a.cfg.StateHook),
			File:      file.ShortPath,
			Line:      doc.Line(n),
			Class:     class,
			Snippet:   Snippet(doc.Text(args[0])),
		})

		return true
	})

	return findings
}

// stateVariable names the state bound by the declarator around a hook call,
// falling back to the setter or to "?" for non-destructured calls.
func stateVariable(mt *engine.Matcher, parent *sitter.Node, hook string) string {
	if b, ok := mt.HookBinding(parent, hook); ok {
		switch {
		case b.State != "":
			return b.State
		case b.Setter != "":
			return b.Setter
		}
	}

	return "?"
}

// Snippet collapses the whitespace of source text onto one line.
func Snippet(text string) string {
	return strings.Join(strings.Fields(text), " ")
}
