// Package syntax wraps tree-sitter for JavaScript, TypeScript and TSX and
// exposes the small node model the engine consumes.
package syntax

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"unicode/utf8"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/javascript"
	"github.com/smacker/go-tree-sitter/typescript/tsx"
	"github.com/smacker/go-tree-sitter/typescript/typescript"

	m "github.com/mouse-blink/hooklens/internal/model"
)

var (
	// ErrSyntax is returned when the source contains syntax errors.
	ErrSyntax = errors.New("syntax error")
	// ErrUnsupportedLanguage is returned for extensions without a grammar.
	ErrUnsupportedLanguage = errors.New("unsupported language")
	// ErrFileTooLarge is returned when the source exceeds the size limit.
	ErrFileTooLarge = errors.New("file too large")
	// ErrInvalidContent is returned for sources that are not valid UTF-8.
	ErrInvalidContent = errors.New("invalid UTF-8 content")
)

const defaultMaxFileSize = 2 * 1024 * 1024

// grammars maps each supported language to its tree-sitter grammar loader.
var grammars = map[m.Language]func() *sitter.Language{
	m.LanguageJavaScript: javascript.GetLanguage,
	m.LanguageTypeScript: typescript.GetLanguage,
	m.LanguageTSX:        tsx.GetLanguage,
}

// LanguageFor returns the grammar to use for path based on its extension.
func LanguageFor(path string) (m.Language, bool) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".js", ".jsx", ".mjs", ".cjs":
		return m.LanguageJavaScript, true
	case ".ts", ".mts", ".cts":
		return m.LanguageTypeScript, true
	case ".tsx":
		return m.LanguageTSX, true
	}

	return "", false
}

// MissingGrammars returns the languages whose grammar could not be loaded.
func MissingGrammars() []string {
	var missing []string

	for _, lang := range []m.Language{m.LanguageJavaScript, m.LanguageTypeScript, m.LanguageTSX} {
		load, ok := grammars[lang]
		if !ok || load() == nil {
			missing = append(missing, "tree-sitter-"+string(lang))
		}
	}

	return missing
}

// ParserOption configures a Parser.
type ParserOption func(*Parser)

// WithMaxFileSize limits the size of sources the parser accepts.
func WithMaxFileSize(size int) ParserOption {
	return func(p *Parser) {
		if size > 0 {
			p.maxFileSize = size
		}
	}
}

// Parser turns source text into a Document. Each Parse call creates its own
// tree-sitter parser, so a Parser may be shared.
type Parser struct {
	maxFileSize int
}

// NewParser creates a Parser with the given options.
func NewParser(opts ...ParserOption) *Parser {
	p := &Parser{maxFileSize: defaultMaxFileSize}
	for _, opt := range opts {
		opt(p)
	}

	return p
}

// Parse parses content as the language implied by path. A tree containing
// error or missing nodes is reported as ErrSyntax so the caller can skip the
// file; the returned Document is nil in that case.
func (p *Parser) Parse(ctx context.Context, path string, content []byte) (*Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("parse %s canceled: %w", path, err)
	}

	lang, ok := LanguageFor(path)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedLanguage, filepath.Ext(path))
	}

	if len(content) > p.maxFileSize {
		return nil, fmt.Errorf("%w: %d bytes", ErrFileTooLarge, len(content))
	}

	if !utf8.Valid(content) {
		return nil, ErrInvalidContent
	}

	parser := sitter.NewParser()
	defer parser.Close()

	parser.SetLanguage(grammars[lang]())

	tree, err := parser.ParseCtx(ctx, nil, content)
	if err != nil {
		return nil, fmt.Errorf("tree-sitter parse failed: %w", err)
	}

	root := tree.RootNode()
	if root.HasError() {
		line := firstErrorLine(root)
		tree.Close()

		return nil, fmt.Errorf("%w near line %d", ErrSyntax, line)
	}

	return &Document{
		Path:     path,
		Language: lang,
		Content:  content,
		Root:     root,
		tree:     tree,
	}, nil
}

// firstErrorLine returns the 1-based line of the first error or missing node.
func firstErrorLine(n *sitter.Node) int {
	if n.Type() == "ERROR" || n.IsMissing() {
		return int(n.StartPoint().Row) + 1
	}

	for i := 0; i < int(n.ChildCount()); i++ {
		child := n.Child(i)
		if child != nil && (child.HasError() || child.IsMissing()) {
			return firstErrorLine(child)
		}
	}

	return int(n.StartPoint().Row) + 1
}
