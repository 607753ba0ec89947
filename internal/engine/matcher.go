// Package engine holds the pattern matching, classification, scope and
// rewriting primitives shared by every hooklens tool.
package engine

import (
	sitter "github.com/smacker/go-tree-sitter"

	"github.com/mouse-blink/hooklens/internal/syntax"
)

// Binding is a `const [state, setState] = useState(...)` declaration.
type Binding struct {
	State       string
	Setter      string
	Declarator  *sitter.Node
	Call        *sitter.Node
	Initializer *sitter.Node
}

// Bindings indexes hook bindings of one file by setter name.
type Bindings map[string]Binding

// Matcher recognizes hook calls and component functions in one document.
// Hook calls only match when the callee resolves to an import of the
// configured module.
type Matcher struct {
	doc     *syntax.Document
	module  string
	imports syntax.Imports
}

// NewMatcher creates a Matcher for doc, resolving hooks against module.
func NewMatcher(doc *syntax.Document, module string) *Matcher {
	return &Matcher{
		doc:     doc,
		module:  module,
		imports: syntax.CollectImports(doc),
	}
}

// Imports returns the imports of the matched document.
func (mt *Matcher) Imports() syntax.Imports {
	return mt.imports
}

// IsHookCall reports whether call invokes hook, either through a named
// (possibly aliased) import or as a member of the module's default or
// namespace import.
func (mt *Matcher) IsHookCall(call *sitter.Node, hook string) bool {
	if syntax.KindOf(call) != syntax.KindCall {
		return false
	}

	callee := syntax.Unwrap(syntax.Field(call, "function"))

	switch syntax.KindOf(callee) {
	case syntax.KindIdentifier:
		return mt.imports.Resolves(mt.doc.Text(callee), mt.module, hook)

	case syntax.KindMember:
		object := syntax.Field(callee, "object")
		if syntax.KindOf(object) != syntax.KindIdentifier {
			return false
		}

		return mt.imports.IsModuleObject(mt.doc.Text(object), mt.module) &&
			mt.doc.PropertyName(syntax.Field(callee, "property")) == hook
	}

	return false
}

// HookArguments returns the arguments of a call, skipping comments.
func HookArguments(call *sitter.Node) []*sitter.Node {
	return syntax.NamedChildren(syntax.Field(call, "arguments"))
}

// HookBinding matches a variable declarator whose value is a call to hook
// and whose name is an array pattern. Either element may be missing.
func (mt *Matcher) HookBinding(declarator *sitter.Node, hook string) (Binding, bool) {
	if syntax.KindOf(declarator) != syntax.KindVariableDeclarator {
		return Binding{}, false
	}

	call := syntax.Unwrap(syntax.Field(declarator, "value"))
	if !mt.IsHookCall(call, hook) {
		return Binding{}, false
	}

	pattern := syntax.Field(declarator, "name")
	if syntax.KindOf(pattern) != syntax.KindArrayPattern {
		return Binding{}, false
	}

	names := mt.patternElements(pattern)
	b := Binding{Declarator: declarator, Call: call}

	if len(names) > 0 {
		b.State = names[0]
	}

	if len(names) > 1 {
		b.Setter = names[1]
	}

	if args := HookArguments(call); len(args) > 0 {
		b.Initializer = args[0]
	}

	return b, true
}

// patternElements returns the identifier bound at each position of an
// array pattern. Holes and nested patterns yield empty names.
func (mt *Matcher) patternElements(pattern *sitter.Node) []string {
	names := []string{""}

	for i := 0; i < int(pattern.ChildCount()); i++ {
		child := pattern.Child(i)
		if child == nil {
			continue
		}

		switch child.Type() {
		case ",":
			names = append(names, "")
		case "identifier":
			names[len(names)-1] = mt.doc.Text(child)
		case "assignment_pattern":
			if left := syntax.Field(child, "left"); syntax.KindOf(left) == syntax.KindIdentifier {
				names[len(names)-1] = mt.doc.Text(left)
			}
		}
	}

	return names
}

// CollectBindings gathers every binding of hook in the document that has a
// setter.
func (mt *Matcher) CollectBindings(hook string) Bindings {
	bindings := make(Bindings)

	syntax.Walk(mt.doc, func(_ *syntax.Walker, n *sitter.Node) bool {
		if b, ok := mt.HookBinding(n, hook); ok && b.Setter != "" {
			bindings[b.Setter] = b
		}

		return true
	})

	return bindings
}

// SetterCall reports whether call invokes one of the known setters
// directly by name.
func (mt *Matcher) SetterCall(call *sitter.Node, bindings Bindings) (Binding, bool) {
	if syntax.KindOf(call) != syntax.KindCall {
		return Binding{}, false
	}

	callee := syntax.Unwrap(syntax.Field(call, "function"))
	if syntax.KindOf(callee) != syntax.KindIdentifier {
		return Binding{}, false
	}

	b, ok := bindings[mt.doc.Text(callee)]

	return b, ok
}

// IsComponentFunction reports whether fn, resolved to name, is a React
// component: a capitalized function that returns JSX from its own body.
func (mt *Matcher) IsComponentFunction(fn *sitter.Node, name string) bool {
	return IsComponentName(name) && len(JSXReturns(mt.doc, fn)) > 0
}

// JSXReturns returns the JSX nodes fn can return. Nested functions and
// classes are not searched. Parentheses, conditionals and logical
// expressions around the returned value are looked through.
func JSXReturns(doc *syntax.Document, fn *sitter.Node) []*sitter.Node {
	body := syntax.Field(fn, "body")
	if body == nil {
		return nil
	}

	if syntax.KindOf(body) != syntax.KindStatementBlock {
		return jsxValues(body)
	}

	var found []*sitter.Node

	syntax.WalkNode(doc, body, func(_ *syntax.Walker, n *sitter.Node) bool {
		kind := syntax.KindOf(n)
		if kind.IsFunctionLike() || kind == syntax.KindClass {
			return false
		}

		if kind == syntax.KindReturn {
			found = append(found, jsxValues(syntax.FirstNamedChild(n))...)
			return false
		}

		return true
	})

	return found
}

func jsxValues(expr *sitter.Node) []*sitter.Node {
	e := syntax.Unwrap(expr)

	switch syntax.KindOf(e) {
	case syntax.KindJSXElement, syntax.KindJSXSelfClosing, syntax.KindJSXFragment:
		return []*sitter.Node{e}

	case syntax.KindTernary:
		return append(jsxValues(syntax.Field(e, "consequence")), jsxValues(syntax.Field(e, "alternative"))...)

	case syntax.KindBinary:
		return append(jsxValues(syntax.Field(e, "left")), jsxValues(syntax.Field(e, "right"))...)
	}

	return nil
}

// JSXTagName returns the element name of an opening or self-closing JSX
// element when it is a plain identifier.
func JSXTagName(doc *syntax.Document, el *sitter.Node) string {
	if el == nil {
		return ""
	}

	switch el.Type() {
	case "jsx_opening_element", "jsx_self_closing_element":
	default:
		return ""
	}

	name := syntax.Field(el, "name")
	if name == nil || name.Type() != "identifier" {
		return ""
	}

	return doc.Text(name)
}

// JSXTagText returns the source text of the tag name of an opening or
// self-closing element, member expressions included.
func JSXTagText(doc *syntax.Document, el *sitter.Node) string {
	if el == nil {
		return ""
	}

	switch el.Type() {
	case "jsx_opening_element", "jsx_self_closing_element":
		return doc.Text(syntax.Field(el, "name"))
	}

	return ""
}

// JSXChildReference returns the component rendered by el when its tag is
// a capitalized identifier. imported reports whether the identifier is a
// named or default import, which is what distinguishes components of other
// files from ones declared in the same file.
func (mt *Matcher) JSXChildReference(el *sitter.Node) (name string, imported bool, ok bool) {
	name = JSXTagName(mt.doc, el)
	if !IsComponentName(name) {
		return "", false, false
	}

	return name, mt.imports.IsBindingImport(name), true
}
