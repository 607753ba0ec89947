package engine

import (
	"context"
	"testing"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/stretchr/testify/require"

	"github.com/mouse-blink/hooklens/internal/syntax"
)

func parse(t *testing.T, path, src string) *syntax.Document {
	t.Helper()

	doc, err := syntax.NewParser().Parse(context.Background(), path, []byte(src))
	require.NoError(t, err)
	t.Cleanup(doc.Close)

	return doc
}

// anchorOfCall returns the anchor of the first call whose callee text is
// callee.
func anchorOfCall(t *testing.T, doc *syntax.Document, callee string) (Anchor, bool) {
	t.Helper()

	var (
		anchor Anchor
		found  bool
		seen   bool
	)

	syntax.Walk(doc, func(w *syntax.Walker, n *sitter.Node) bool {
		if seen || syntax.KindOf(n) != syntax.KindCall || doc.Text(syntax.Field(n, "function")) != callee {
			return true
		}

		seen = true
		anchor, found = FindAnchor(w.Ancestors(), n)

		return true
	})

	require.True(t, seen, "no call to %s", callee)

	return anchor, found
}

func firstOfType(doc *syntax.Document, typ string) *sitter.Node {
	var found *sitter.Node

	syntax.Walk(doc, func(_ *syntax.Walker, n *sitter.Node) bool {
		if found == nil && n.Type() == typ {
			found = n
		}

		return found == nil
	})

	return found
}
