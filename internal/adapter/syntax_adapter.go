package adapter

import (
	"context"

	m "github.com/mouse-blink/hooklens/internal/model"
	"github.com/mouse-blink/hooklens/internal/syntax"
)

// SyntaxAdapter encapsulates tree-sitter parsing so the domain layer can
// focus on matching and rewriting while delegating grammar details to an
// infrastructure component.
type SyntaxAdapter interface {
	// Parse builds a syntax tree for path. The caller closes the document.
	Parse(ctx context.Context, path m.Path, content []byte) (*syntax.Document, error)
}

// TreeSitterAdapter provides a concrete SyntaxAdapter backed by tree-sitter.
type TreeSitterAdapter struct {
	parser *syntax.Parser
}

// NewTreeSitterAdapter constructs a TreeSitterAdapter.
func NewTreeSitterAdapter(opts ...syntax.ParserOption) *TreeSitterAdapter {
	return &TreeSitterAdapter{parser: syntax.NewParser(opts...)}
}

// Parse builds a syntax tree for the provided path/source pair.
func (a *TreeSitterAdapter) Parse(ctx context.Context, path m.Path, content []byte) (*syntax.Document, error) {
	return a.parser.Parse(ctx, string(path), content)
}
