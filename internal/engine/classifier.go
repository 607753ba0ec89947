package engine

import (
	"strconv"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/mouse-blink/hooklens/internal/config"
	m "github.com/mouse-blink/hooklens/internal/model"
	"github.com/mouse-blink/hooklens/internal/syntax"
)

// Classifier assigns a complexity class to useState initializers. It only
// looks at the shape of the expression.
type Classifier struct {
	unlisted config.UnlistedPolicy
}

// NewClassifier creates a Classifier. policy decides whether shapes that
// are neither complex nor trivial are reported.
func NewClassifier(policy config.UnlistedPolicy) Classifier {
	return Classifier{unlisted: policy}
}

// Classify returns the class of expr and whether it should be reported.
// A missing initializer is trivial.
func (c Classifier) Classify(doc *syntax.Document, expr *sitter.Node) (m.ComplexityClass, bool) {
	e := syntax.Unwrap(expr)
	if e == nil {
		return m.ClassTrivial, false
	}

	kind := syntax.KindOf(e)

	switch {
	case kind == syntax.KindFunction || kind == syntax.KindArrow:
		return m.ClassFunctionInit, true
	case kind == syntax.KindTernary:
		return m.ClassTernary, true
	case kind == syntax.KindBinary && isLogicalOperator(doc, e):
		return m.ClassLogical, true
	case kind == syntax.KindCall:
		return m.ClassCall, true
	case kind == syntax.KindObject:
		if len(syntax.NamedChildren(e)) > 0 {
			return m.ClassComplexObject, true
		}

		return m.ClassEmpty, false
	case kind == syntax.KindArray:
		if len(syntax.NamedChildren(e)) > 0 {
			return m.ClassNonEmptyArray, true
		}

		return m.ClassEmpty, false
	case kind == syntax.KindBinary:
		return m.ClassBinary, true
	case isTrivial(doc, e, kind):
		return m.ClassTrivial, false
	}

	if c.unlisted == config.UnlistedReport {
		return m.ClassOther, true
	}

	return m.ClassOther, false
}

func isLogicalOperator(doc *syntax.Document, n *sitter.Node) bool {
	switch operatorOf(doc, n) {
	case "&&", "||", "??":
		return true
	}

	return false
}

func operatorOf(doc *syntax.Document, n *sitter.Node) string {
	if op := syntax.Field(n, "operator"); op != nil {
		return op.Type()
	}

	// Older grammars do not expose the operator field: the operator is the
	// only anonymous child between the operands.
	for i := 0; i < int(n.ChildCount()); i++ {
		child := n.Child(i)
		if child != nil && !child.IsNamed() {
			return doc.Text(child)
		}
	}

	return ""
}

func isTrivial(doc *syntax.Document, n *sitter.Node, kind syntax.Kind) bool {
	switch kind {
	case syntax.KindTrue, syntax.KindFalse, syntax.KindNull, syntax.KindUndefined:
		return true
	case syntax.KindIdentifier:
		return doc.Text(n) == "undefined"
	case syntax.KindString:
		return doc.StringValue(n) == ""
	case syntax.KindNumber:
		return isZeroLiteral(doc.Text(n))
	}

	return false
}

func isZeroLiteral(text string) bool {
	s := strings.ReplaceAll(text, "_", "")
	s = strings.TrimSuffix(s, "n")

	if v, err := strconv.ParseInt(s, 0, 64); err == nil {
		return v == 0
	}

	if v, err := strconv.ParseFloat(s, 64); err == nil {
		return v == 0
	}

	return false
}
