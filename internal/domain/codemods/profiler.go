package codemods

import (
	"fmt"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/mouse-blink/hooklens/internal/config"
	"github.com/mouse-blink/hooklens/internal/engine"
	m "github.com/mouse-blink/hooklens/internal/model"
	"github.com/mouse-blink/hooklens/internal/syntax"
)

// OnRenderCallback is the hoisted Profiler onRender logger.
const OnRenderCallback = "__hooklensOnRender"

// ComponentScanner records component functions and the components their
// JSX renders into a ComponentGraph.
type ComponentScanner struct {
	cfg          config.Config
	graph        *m.ComponentGraph
	includeLocal bool
}

// NewComponentScanner creates a ComponentScanner filling graph. With
// includeLocal, components declared in the same file count as children
// too; otherwise only imported ones do.
func NewComponentScanner(cfg config.Config, graph *m.ComponentGraph, includeLocal bool) *ComponentScanner {
	return &ComponentScanner{cfg: cfg, graph: graph, includeLocal: includeLocal}
}

// Scan adds the components of doc to the graph.
func (s *ComponentScanner) Scan(doc *syntax.Document, file m.File) {
	mt := engine.NewMatcher(doc, s.cfg.Module)

	syntax.Walk(doc, func(w *syntax.Walker, n *sitter.Node) bool {
		kind := syntax.KindOf(n)

		if kind.IsFunctionLike() {
			if name := w.FunctionName(n); mt.IsComponentFunction(n, name) {
				s.graph.AddComponent(name, file.ShortPath, doc.Line(n))
			}

			return true
		}

		child, imported, ok := mt.JSXChildReference(n)
		if !ok || child == s.cfg.ProfilerComponent || (!imported && !s.includeLocal) {
			return true
		}

		if parent := engine.Component(w.Frames()); parent != engine.GlobalScope {
			s.graph.AddChild(parent, child)
		}

		return true
	})
}

// Profiler wraps the JSX returned by the selected components in a
// Profiler element reporting to a hoisted onRender logger.
type Profiler struct {
	cfg      config.Config
	selected Selection
}

// NewProfiler creates a Profiler for the selected component names.
func NewProfiler(cfg config.Config, selected Selection) *Profiler {
	return &Profiler{cfg: cfg, selected: selected}
}

// Type implements Codemod.
func (p *Profiler) Type() m.CodemodType {
	return m.CodemodProfiler
}

// Plan queues the wrappers for doc.
func (p *Profiler) Plan(doc *syntax.Document) *engine.Editor {
	ed := engine.NewEditor(doc)
	mt := engine.NewMatcher(doc, p.cfg.Module)

	ignore := BuildIgnoreIndex(doc)

	tag, imported := mt.Imports().LocalFor(p.cfg.Module, p.cfg.ProfilerComponent)
	if !imported {
		tag = p.cfg.ProfilerComponent

		if obj, ok := mt.Imports().ModuleObject(p.cfg.Module); ok {
			tag, imported = obj+"."+p.cfg.ProfilerComponent, true
		}
	}

	syntax.Walk(doc, func(w *syntax.Walker, n *sitter.Node) bool {
		if !syntax.KindOf(n).IsFunctionLike() {
			return true
		}

		name := w.FunctionName(n)
		if !p.selected[name] || !mt.IsComponentFunction(n, name) {
			return true
		}

		if ignore.Ignores(string(m.CodemodProfiler), doc.Line(n)) {
			return true
		}

		for _, jsx := range engine.JSXReturns(doc, n) {
			if isWrappedIn(doc, jsx, tag) || ignore.Ignores(string(m.CodemodProfiler), doc.Line(jsx)) {
				continue
			}

			open := fmt.Sprintf("<%s id=%s onRender={%s}>", tag, engine.Quote(name), OnRenderCallback)
			ed.Wrap(jsx, open, "</"+tag+">")
			ed.AddSite(m.Site{Type: m.CodemodProfiler, Line: doc.Line(jsx), Label: name})
		}

		return true
	})

	if len(ed.Sites()) == 0 {
		return ed
	}

	if !imported {
		ed.AddImport(fmt.Sprintf("import { %s } from %s;", tag, engine.Quote(p.cfg.Module)))
	}

	if !declaresTopLevel(doc, OnRenderCallback) {
		ed.Hoist(fmt.Sprintf("const %s = (id, phase, actualDuration) => %s",
			OnRenderCallback,
			engine.CallStatement(p.cfg.LogFunction, engine.Quote(LogPrefix+" profiler"), "id", "phase", "actualDuration"),
		))
	}

	return ed
}

func isWrappedIn(doc *syntax.Document, jsx *sitter.Node, tag string) bool {
	if syntax.KindOf(jsx) != syntax.KindJSXElement {
		return false
	}

	return engine.JSXTagText(doc, syntax.Field(jsx, "open_tag")) == tag ||
		engine.JSXTagText(doc, syntax.FirstNamedChild(jsx)) == tag
}

func declaresTopLevel(doc *syntax.Document, name string) bool {
	for _, stmt := range syntax.NamedChildren(doc.Root) {
		if syntax.KindOf(stmt) != syntax.KindLexicalDeclaration {
			continue
		}

		for _, decl := range syntax.NamedChildren(stmt) {
			if doc.Text(syntax.Field(decl, "name")) == name {
				return true
			}
		}
	}

	return false
}
