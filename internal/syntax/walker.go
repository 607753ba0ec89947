package syntax

import sitter "github.com/smacker/go-tree-sitter"

// Frame is one enclosing function on the walker's scope stack.
type Frame struct {
	Node *sitter.Node
	// Name is empty for anonymous functions.
	Name string
}

// VisitFunc is called for every named node in pre-order. Returning false
// skips the node's children.
type VisitFunc func(w *Walker, n *sitter.Node) bool

// Walker drives a depth-first traversal and maintains two transient stacks:
// the path of ancestors of the current node and the frames of the enclosing
// functions. Both are rebuilt by every walk; nodes are never asked for their
// parent.
type Walker struct {
	doc    *Document
	path   []*sitter.Node
	frames []Frame
}

// Walk traverses the whole document.
func Walk(doc *Document, fn VisitFunc) {
	WalkNode(doc, doc.Root, fn)
}

// WalkNode traverses the subtree rooted at root. The scope stack starts
// empty, so frames only contain functions inside root.
func WalkNode(doc *Document, root *sitter.Node, fn VisitFunc) {
	if root == nil {
		return
	}

	w := &Walker{doc: doc}
	w.visit(root, fn)
}

func (w *Walker) visit(n *sitter.Node, fn VisitFunc) {
	if !fn(w, n) {
		return
	}

	pushed := false
	if KindOf(n).IsFunctionLike() {
		w.frames = append(w.frames, Frame{Node: n, Name: w.FunctionName(n)})
		pushed = true
	}

	w.path = append(w.path, n)

	count := int(n.NamedChildCount())
	for i := 0; i < count; i++ {
		if child := n.NamedChild(i); child != nil {
			w.visit(child, fn)
		}
	}

	w.path = w.path[:len(w.path)-1]

	if pushed {
		w.frames = w.frames[:len(w.frames)-1]
	}
}

// Document returns the document being walked.
func (w *Walker) Document() *Document {
	return w.doc
}

// Parent returns the parent of the node currently visited.
func (w *Walker) Parent() *sitter.Node {
	if len(w.path) == 0 {
		return nil
	}

	return w.path[len(w.path)-1]
}

// Ancestors returns the ancestors of the current node, outermost first. The
// slice is only valid during the callback.
func (w *Walker) Ancestors() []*sitter.Node {
	return w.path
}

// Frames returns the functions enclosing the current node, outermost first.
// When the current node is itself a function it is not included. The slice
// is only valid during the callback.
func (w *Walker) Frames() []Frame {
	return w.frames
}

// FunctionName resolves the name of fn, which must be the node currently
// visited. A function is named when it carries its own identifier, when it
// is the value of a variable declarator with an identifier on the left, the
// value of a named object property or class field, or the right-hand side
// of an assignment. memo, forwardRef and useCallback wrappers are looked
// through.
func (w *Walker) FunctionName(fn *sitter.Node) string {
	if name := Field(fn, "name"); name != nil {
		return w.doc.PropertyName(name)
	}

	child := fn

	for i := len(w.path) - 1; i >= 0; i-- {
		p := w.path[i]

		switch p.Type() {
		case "parenthesized_expression", "as_expression", "satisfies_expression", "non_null_expression":
			child = p
			continue

		case "arguments":
			if i == 0 || !isNameTransparentCall(w.doc, w.path[i-1]) {
				return ""
			}

			i--
			child = w.path[i]

			continue

		case "variable_declarator":
			if !SameNode(Field(p, "value"), child) {
				return ""
			}

			if name := Field(p, "name"); KindOf(name) == KindIdentifier {
				return w.doc.Text(name)
			}

			return ""

		case "pair":
			if !SameNode(Field(p, "value"), child) {
				return ""
			}

			return w.doc.PropertyName(Field(p, "key"))

		case "field_definition", "public_field_definition":
			if !SameNode(Field(p, "value"), child) {
				return ""
			}

			key := Field(p, "property")
			if key == nil {
				key = Field(p, "name")
			}

			return w.doc.PropertyName(key)

		case "assignment_expression":
			if !SameNode(Field(p, "right"), child) {
				return ""
			}

			left := Field(p, "left")
			switch KindOf(left) {
			case KindIdentifier:
				return w.doc.Text(left)
			case KindMember:
				return w.doc.PropertyName(Field(left, "property"))
			}

			return ""

		default:
			return ""
		}
	}

	return ""
}

var nameTransparentCallees = map[string]bool{
	"memo":              true,
	"forwardRef":        true,
	"useCallback":       true,
	"React.memo":        true,
	"React.forwardRef":  true,
	"React.useCallback": true,
}

func isNameTransparentCall(doc *Document, n *sitter.Node) bool {
	if KindOf(n) != KindCall {
		return false
	}

	return nameTransparentCallees[doc.Text(Field(n, "function"))]
}

// PropertyName returns the name carried by an identifier, property key or
// string key. Computed keys have no static name.
func (d *Document) PropertyName(n *sitter.Node) string {
	if n == nil {
		return ""
	}

	switch n.Type() {
	case "identifier", "property_identifier", "private_property_identifier",
		"shorthand_property_identifier", "type_identifier", "number":
		return d.Text(n)
	case "string":
		return d.StringValue(n)
	}

	return ""
}
