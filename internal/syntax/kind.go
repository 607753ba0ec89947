package syntax

import sitter "github.com/smacker/go-tree-sitter"

// Kind is the closed set of node shapes the engine reasons about. Every
// tree-sitter node maps to exactly one Kind; node types the engine never
// inspects map to KindOther.
type Kind int

const (
	KindOther Kind = iota
	KindProgram
	KindImport
	KindExport
	KindStatementBlock
	KindExpressionStatement
	KindReturn
	KindLexicalDeclaration
	KindVariableDeclarator
	KindArrayPattern
	KindObjectPattern
	KindCall
	KindArguments
	KindFunction
	KindArrow
	KindMethod
	KindClass
	KindPair
	KindAssignment
	KindIdentifier
	KindMember
	KindParenthesized
	KindTernary
	KindBinary
	KindUnary
	KindUpdate
	KindNew
	KindObject
	KindArray
	KindString
	KindTemplate
	KindNumber
	KindTrue
	KindFalse
	KindNull
	KindUndefined
	KindTypeWrapper
	KindJSXElement
	KindJSXSelfClosing
	KindJSXFragment
	KindJSXOpening
	KindComment
)

var kindByType = map[string]Kind{
	"program":                        KindProgram,
	"import_statement":               KindImport,
	"export_statement":               KindExport,
	"statement_block":                KindStatementBlock,
	"expression_statement":           KindExpressionStatement,
	"return_statement":               KindReturn,
	"lexical_declaration":            KindLexicalDeclaration,
	"variable_declaration":           KindLexicalDeclaration,
	"variable_declarator":            KindVariableDeclarator,
	"array_pattern":                  KindArrayPattern,
	"object_pattern":                 KindObjectPattern,
	"call_expression":                KindCall,
	"arguments":                      KindArguments,
	"function_declaration":           KindFunction,
	"generator_function_declaration": KindFunction,
	"function_expression":            KindFunction,
	"function":                       KindFunction,
	"generator_function":             KindFunction,
	"arrow_function":                 KindArrow,
	"method_definition":              KindMethod,
	"class_declaration":              KindClass,
	"class":                          KindClass,
	"pair":                           KindPair,
	"assignment_expression":          KindAssignment,
	"identifier":                     KindIdentifier,
	"member_expression":              KindMember,
	"parenthesized_expression":       KindParenthesized,
	"ternary_expression":             KindTernary,
	"binary_expression":              KindBinary,
	"unary_expression":               KindUnary,
	"update_expression":              KindUpdate,
	"new_expression":                 KindNew,
	"object":                         KindObject,
	"array":                          KindArray,
	"string":                         KindString,
	"template_string":                KindTemplate,
	"number":                         KindNumber,
	"true":                           KindTrue,
	"false":                          KindFalse,
	"null":                           KindNull,
	"undefined":                      KindUndefined,
	"as_expression":                  KindTypeWrapper,
	"satisfies_expression":           KindTypeWrapper,
	"non_null_expression":            KindTypeWrapper,
	"type_assertion":                 KindTypeWrapper,
	"jsx_element":                    KindJSXElement,
	"jsx_self_closing_element":       KindJSXSelfClosing,
	"jsx_fragment":                   KindJSXFragment,
	"jsx_opening_element":            KindJSXOpening,
	"comment":                        KindComment,
}

// KindOf classifies a tree-sitter node.
func KindOf(n *sitter.Node) Kind {
	if n == nil || !n.IsNamed() {
		return KindOther
	}

	if k, ok := kindByType[n.Type()]; ok {
		return k
	}

	return KindOther
}

// IsFunctionLike reports whether k opens a new function scope.
func (k Kind) IsFunctionLike() bool {
	return k == KindFunction || k == KindArrow || k == KindMethod
}

// IsJSX reports whether k is a JSX element or fragment.
func (k Kind) IsJSX() bool {
	return k == KindJSXElement || k == KindJSXSelfClosing || k == KindJSXFragment
}

// IsStatementContainer reports whether statements can be inserted directly
// between the children of a node of kind k.
func IsStatementContainer(n *sitter.Node) bool {
	switch n.Type() {
	case "program", "statement_block", "switch_case", "switch_default", "class_static_block":
		return true
	}

	return false
}

// IsStatement reports whether n is a statement node.
func IsStatement(n *sitter.Node) bool {
	if n == nil {
		return false
	}

	switch n.Type() {
	case "expression_statement", "return_statement", "lexical_declaration", "variable_declaration",
		"if_statement", "for_statement", "for_in_statement", "while_statement", "do_statement",
		"try_statement", "throw_statement", "switch_statement", "break_statement",
		"continue_statement", "labeled_statement", "statement_block", "empty_statement",
		"function_declaration", "generator_function_declaration", "class_declaration",
		"export_statement", "import_statement", "debugger_statement":
		return true
	}

	return false
}
