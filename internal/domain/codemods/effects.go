package codemods

import (
	"fmt"
	"log/slog"
	"regexp"
	"strconv"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/mouse-blink/hooklens/internal/config"
	"github.com/mouse-blink/hooklens/internal/engine"
	m "github.com/mouse-blink/hooklens/internal/model"
	"github.com/mouse-blink/hooklens/internal/syntax"
)

// EffectCounterPrefix names the hoisted per-effect run counters.
const EffectCounterPrefix = "__hooklensEffect"

var effectCounterPattern = regexp.MustCompile(`^` + EffectCounterPrefix + `(\d+)$`)

// EffectLogger counts and logs every run of a useEffect callback. Each
// effect gets its own module-level counter; numbering continues after the
// counters a previous run left in the file.
type EffectLogger struct {
	cfg config.Config
}

// NewEffectLogger creates an EffectLogger.
func NewEffectLogger(cfg config.Config) *EffectLogger {
	return &EffectLogger{cfg: cfg}
}

// Type implements Codemod.
func (e *EffectLogger) Type() m.CodemodType {
	return m.CodemodEffectLog
}

// Plan queues the counters and logs for doc.
func (e *EffectLogger) Plan(doc *syntax.Document) *engine.Editor {
	ed := engine.NewEditor(doc)
	mt := engine.NewMatcher(doc, e.cfg.Module)
	next := nextEffectCounter(doc)
	ignore := BuildIgnoreIndex(doc)

	syntax.Walk(doc, func(w *syntax.Walker, n *sitter.Node) bool {
		if !mt.IsHookCall(n, e.cfg.EffectHook) || ignore.Ignores(string(m.CodemodEffectLog), doc.Line(n)) {
			return true
		}

		args := engine.HookArguments(n)
		if len(args) == 0 {
			return true
		}

		callback := syntax.Unwrap(args[0])
		if !syntax.KindOf(callback).IsFunctionLike() {
			slog.Debug("effect callback is not a function literal", "file", doc.Path, "line", doc.Line(n))
			return true
		}

		if hasEffectCounter(doc, callback) {
			return true
		}

		counter := EffectCounterPrefix + strconv.Itoa(next)
		label := fmt.Sprintf("%s %s effect #%d run", LogPrefix, engine.ComponentOrOwner(w.Frames()), next)
		next++

		ed.PrependToBody(callback,
			counter+"++;",
			engine.CallStatement(e.cfg.LogFunction, engine.Quote(label), counter),
		)
		ed.Hoist("let " + counter + " = 0;")
		ed.AddSite(m.Site{Type: m.CodemodEffectLog, Line: doc.Line(n), Label: label})

		return true
	})

	return ed
}

// nextEffectCounter returns the index following the highest counter
// declared at the top level of doc.
func nextEffectCounter(doc *syntax.Document) int {
	next := 0

	for _, stmt := range syntax.NamedChildren(doc.Root) {
		if syntax.KindOf(stmt) != syntax.KindLexicalDeclaration {
			continue
		}

		for _, decl := range syntax.NamedChildren(stmt) {
			name := syntax.Field(decl, "name")
			if syntax.KindOf(name) != syntax.KindIdentifier {
				continue
			}

			match := effectCounterPattern.FindStringSubmatch(doc.Text(name))
			if match == nil {
				continue
			}

			if idx, err := strconv.Atoi(match[1]); err == nil && idx >= next {
				next = idx + 1
			}
		}
	}

	return next
}

// hasEffectCounter reports whether the callback body already starts with a
// counter increment.
func hasEffectCounter(doc *syntax.Document, callback *sitter.Node) bool {
	body := syntax.Field(callback, "body")
	if syntax.KindOf(body) != syntax.KindStatementBlock {
		return false
	}

	first := syntax.FirstNamedChild(body)
	if syntax.KindOf(first) != syntax.KindExpressionStatement {
		return false
	}

	update := syntax.FirstNamedChild(first)
	if syntax.KindOf(update) != syntax.KindUpdate {
		return false
	}

	arg := syntax.Field(update, "argument")

	return effectCounterPattern.MatchString(doc.Text(arg))
}
