package syntax

import (
	"strings"

	sitter "github.com/smacker/go-tree-sitter"

	m "github.com/mouse-blink/hooklens/internal/model"
)

// Document is one parsed source file. It owns the tree-sitter tree and must
// be closed when the file has been processed.
type Document struct {
	Path     string
	Language m.Language
	Content  []byte
	Root     *sitter.Node

	tree *sitter.Tree
}

// Close releases the underlying tree.
func (d *Document) Close() {
	if d.tree != nil {
		d.tree.Close()
		d.tree = nil
	}
}

// Text returns the source text covered by n.
func (d *Document) Text(n *sitter.Node) string {
	if n == nil {
		return ""
	}

	return string(d.Content[n.StartByte():n.EndByte()])
}

// Line returns the 1-based line on which n starts.
func (d *Document) Line(n *sitter.Node) int {
	return int(n.StartPoint().Row) + 1
}

// Indent returns the leading whitespace of the line containing offset.
func (d *Document) Indent(offset uint32) string {
	start := int(offset)
	for start > 0 && d.Content[start-1] != '\n' {
		start--
	}

	end := start
	for end < len(d.Content) && (d.Content[end] == ' ' || d.Content[end] == '\t') {
		end++
	}

	return string(d.Content[start:end])
}

// IndentUnit guesses the indentation step used by the file: a tab when any
// line is tab-indented, otherwise two spaces.
func (d *Document) IndentUnit() string {
	for _, line := range strings.Split(string(d.Content), "\n") {
		if strings.HasPrefix(line, "\t") {
			return "\t"
		}

		if strings.HasPrefix(line, "    ") && !strings.HasPrefix(line, "     ") {
			return "    "
		}

		if strings.HasPrefix(line, "  ") {
			return "  "
		}
	}

	return "  "
}

// Field returns the child of n stored under the given field name.
func Field(n *sitter.Node, name string) *sitter.Node {
	if n == nil {
		return nil
	}

	return n.ChildByFieldName(name)
}

// NamedChildren returns the named children of n, skipping comments.
func NamedChildren(n *sitter.Node) []*sitter.Node {
	if n == nil {
		return nil
	}

	count := int(n.NamedChildCount())
	children := make([]*sitter.Node, 0, count)

	for i := 0; i < count; i++ {
		child := n.NamedChild(i)
		if child == nil || KindOf(child) == KindComment {
			continue
		}

		children = append(children, child)
	}

	return children
}

// FirstNamedChild returns the first non-comment named child of n.
func FirstNamedChild(n *sitter.Node) *sitter.Node {
	children := NamedChildren(n)
	if len(children) == 0 {
		return nil
	}

	return children[0]
}

// Unwrap strips parentheses and TypeScript-only wrappers (as, satisfies,
// non-null assertions) around an expression.
func Unwrap(n *sitter.Node) *sitter.Node {
	for n != nil {
		switch KindOf(n) {
		case KindParenthesized, KindTypeWrapper:
			inner := FirstNamedChild(n)
			if inner == nil {
				return n
			}

			n = inner
		default:
			return n
		}
	}

	return n
}

// SameNode reports whether a and b denote the same syntax node.
func SameNode(a, b *sitter.Node) bool {
	if a == nil || b == nil {
		return a == b
	}

	return a.StartByte() == b.StartByte() && a.EndByte() == b.EndByte() && a.Type() == b.Type()
}

// StringValue returns the contents of a string literal without quotes.
func (d *Document) StringValue(n *sitter.Node) string {
	if n == nil {
		return ""
	}

	var b strings.Builder

	count := int(n.NamedChildCount())
	for i := 0; i < count; i++ {
		child := n.NamedChild(i)
		switch child.Type() {
		case "string_fragment", "escape_sequence":
			b.WriteString(d.Text(child))
		}
	}

	if b.Len() > 0 || count > 0 {
		return b.String()
	}

	text := d.Text(n)
	if len(text) >= 2 {
		return text[1 : len(text)-1]
	}

	return text
}
