package codemods

import (
	"strings"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/mouse-blink/hooklens/internal/syntax"
)

const ignoreDirective = "hooklens:ignore"

// StatesTool is the directive name of the useState analysis. Rewrites use
// their codemod type.
const StatesTool = "states"

type ignoreRule struct {
	all   bool
	names map[string]struct{}
}

func (r ignoreRule) ignores(tool string) bool {
	if r.all {
		return true
	}

	_, ok := r.names[strings.ToLower(tool)]

	return ok
}

func mergeIgnoreRule(dst *ignoreRule, src ignoreRule) {
	if src.all {
		dst.all = true
		dst.names = nil

		return
	}

	if dst.all || len(src.names) == 0 {
		return
	}

	if dst.names == nil {
		dst.names = make(map[string]struct{}, len(src.names))
	}

	for name := range src.names {
		dst.names[name] = struct{}{}
	}
}

// parseIgnoreDirective reads "// hooklens:ignore" or
// "/* hooklens:ignore setter-log, trace */". Without names every tool is
// ignored.
func parseIgnoreDirective(commentText string) (ignoreRule, bool) {
	s := strings.TrimSpace(commentText)
	if strings.HasPrefix(s, "//") {
		s = strings.TrimSpace(strings.TrimPrefix(s, "//"))
	} else if strings.HasPrefix(s, "/*") {
		s = strings.TrimSpace(strings.TrimPrefix(s, "/*"))
		s = strings.TrimSpace(strings.TrimSuffix(s, "*/"))
	}

	if !strings.HasPrefix(s, ignoreDirective) {
		return ignoreRule{}, false
	}

	rest := strings.TrimSpace(strings.TrimPrefix(s, ignoreDirective))
	if rest == "" {
		return ignoreRule{all: true}, true
	}

	parts := strings.Split(rest, ",")
	rule := ignoreRule{names: make(map[string]struct{}, len(parts))}

	for _, part := range parts {
		name := strings.ToLower(strings.TrimSpace(part))
		if name == "" {
			continue
		}

		rule.names[name] = struct{}{}
	}

	if len(rule.names) == 0 {
		return ignoreRule{all: true}, true
	}

	return rule, true
}

// IgnoreIndex holds the ignore directives of one file. Directives in the
// comments that precede the first statement apply to the whole file. Any
// other directive applies to its own line, or to the next line when the
// comment starts its line.
type IgnoreIndex struct {
	file ignoreRule
	line map[int]ignoreRule
}

// BuildIgnoreIndex collects the directives of doc.
func BuildIgnoreIndex(doc *syntax.Document) IgnoreIndex {
	index := IgnoreIndex{line: make(map[int]ignoreRule)}
	header := headerComments(doc)

	syntax.Walk(doc, func(_ *syntax.Walker, n *sitter.Node) bool {
		if syntax.KindOf(n) != syntax.KindComment {
			return true
		}

		rule, ok := parseIgnoreDirective(doc.Text(n))
		if !ok {
			return false
		}

		if header[n.StartByte()] {
			mergeIgnoreRule(&index.file, rule)
			return false
		}

		target := doc.Line(n)
		if isLeadingComment(doc.Content, n.StartByte()) {
			target++
		}

		current := index.line[target]
		mergeIgnoreRule(&current, rule)
		index.line[target] = current

		return false
	})

	return index
}

// Ignores reports whether tool must skip a site starting on line.
func (ix IgnoreIndex) Ignores(tool string, line int) bool {
	if ix.file.ignores(tool) {
		return true
	}

	rule, ok := ix.line[line]

	return ok && rule.ignores(tool)
}

// IgnoresFile reports whether tool must skip the whole file.
func (ix IgnoreIndex) IgnoresFile(tool string) bool {
	return ix.file.ignores(tool)
}

func headerComments(doc *syntax.Document) map[uint32]bool {
	header := make(map[uint32]bool)

	count := int(doc.Root.NamedChildCount())
	for i := 0; i < count; i++ {
		child := doc.Root.NamedChild(i)
		if child == nil {
			continue
		}

		switch child.Type() {
		case "comment":
			header[child.StartByte()] = true
		case "hash_bang_line":
		default:
			return header
		}
	}

	return header
}

// isLeadingComment reports whether only whitespace, or the brace of a JSX
// expression container, precedes offset on its line.
func isLeadingComment(content []byte, offset uint32) bool {
	for i := int(offset) - 1; i >= 0; i-- {
		switch content[i] {
		case '\n':
			return true
		case ' ', '\t', '\r', '{':
		default:
			return false
		}
	}

	return true
}
