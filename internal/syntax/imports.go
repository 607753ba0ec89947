package syntax

import sitter "github.com/smacker/go-tree-sitter"

// ImportKind tells how a local name was bound by an import.
type ImportKind int

const (
	ImportNamed ImportKind = iota
	ImportDefault
	ImportNamespace
)

// Import is one local binding created by an import statement or a
// top-level CommonJS require.
type Import struct {
	Local    string
	Imported string // exported name for named imports, empty otherwise
	Module   string
	Kind     ImportKind
	Require  bool
}

// Imports indexes a file's imports by local name.
type Imports map[string]Import

// CollectImports reads the top-level import statements of doc, plus
// `const { a } = require("m")` and `const m = require("m")` declarations.
func CollectImports(doc *Document) Imports {
	imports := make(Imports)

	for _, stmt := range NamedChildren(doc.Root) {
		switch KindOf(stmt) {
		case KindImport:
			collectImportStatement(doc, stmt, imports)
		case KindLexicalDeclaration:
			collectRequire(doc, stmt, imports)
		}
	}

	return imports
}

func collectImportStatement(doc *Document, stmt *sitter.Node, imports Imports) {
	module := doc.StringValue(Field(stmt, "source"))
	if module == "" {
		return
	}

	for _, child := range NamedChildren(stmt) {
		if child.Type() != "import_clause" {
			continue
		}

		for _, part := range NamedChildren(child) {
			switch part.Type() {
			case "identifier":
				name := doc.Text(part)
				imports[name] = Import{Local: name, Module: module, Kind: ImportDefault}

			case "namespace_import":
				if id := FirstNamedChild(part); id != nil {
					name := doc.Text(id)
					imports[name] = Import{Local: name, Module: module, Kind: ImportNamespace}
				}

			case "named_imports":
				for _, spec := range NamedChildren(part) {
					if spec.Type() != "import_specifier" {
						continue
					}

					imported := doc.PropertyName(Field(spec, "name"))
					local := imported

					if alias := Field(spec, "alias"); alias != nil {
						local = doc.Text(alias)
					}

					if local == "" {
						continue
					}

					kind := ImportNamed
					if imported == "default" {
						kind = ImportDefault
					}

					imports[local] = Import{Local: local, Imported: imported, Module: module, Kind: kind}
				}
			}
		}
	}
}

func collectRequire(doc *Document, decl *sitter.Node, imports Imports) {
	for _, declarator := range NamedChildren(decl) {
		if KindOf(declarator) != KindVariableDeclarator {
			continue
		}

		module, ok := requireSource(doc, Unwrap(Field(declarator, "value")))
		if !ok {
			continue
		}

		name := Field(declarator, "name")

		switch KindOf(name) {
		case KindIdentifier:
			local := doc.Text(name)
			imports[local] = Import{Local: local, Module: module, Kind: ImportNamespace, Require: true}

		case KindObjectPattern:
			for _, prop := range NamedChildren(name) {
				switch prop.Type() {
				case "shorthand_property_identifier_pattern":
					local := doc.Text(prop)
					imports[local] = Import{Local: local, Imported: local, Module: module, Kind: ImportNamed, Require: true}

				case "pair_pattern":
					imported := doc.PropertyName(Field(prop, "key"))
					value := Field(prop, "value")

					if KindOf(value) == KindIdentifier && imported != "" {
						local := doc.Text(value)
						imports[local] = Import{Local: local, Imported: imported, Module: module, Kind: ImportNamed, Require: true}
					}
				}
			}
		}
	}
}

func requireSource(doc *Document, n *sitter.Node) (string, bool) {
	if KindOf(n) != KindCall || doc.Text(Field(n, "function")) != "require" {
		return "", false
	}

	args := NamedChildren(Field(n, "arguments"))
	if len(args) != 1 || KindOf(args[0]) != KindString {
		return "", false
	}

	return doc.StringValue(args[0]), true
}

// Resolves reports whether local is bound to the export named imported of
// module.
func (im Imports) Resolves(local, module, imported string) bool {
	imp, ok := im[local]

	return ok && imp.Kind == ImportNamed && imp.Module == module && imp.Imported == imported
}

// IsModuleObject reports whether local is the default or namespace binding
// of module, as in `import React from "react"`.
func (im Imports) IsModuleObject(local, module string) bool {
	imp, ok := im[local]

	return ok && imp.Module == module && (imp.Kind == ImportDefault || imp.Kind == ImportNamespace)
}

// ModuleObject returns the default or namespace binding of module. When
// there are several, the first name in lexical order wins.
func (im Imports) ModuleObject(module string) (string, bool) {
	var found string

	for local := range im {
		if im.IsModuleObject(local, module) && (found == "" || local < found) {
			found = local
		}
	}

	return found, found != ""
}

// LocalFor returns the local name bound to the export imported of module.
func (im Imports) LocalFor(module, imported string) (string, bool) {
	for local, imp := range im {
		if imp.Kind == ImportNamed && imp.Module == module && imp.Imported == imported {
			return local, true
		}
	}

	return "", false
}

// IsBindingImport reports whether local is a named or default binding of an
// import statement. Namespace imports and require calls do not count.
func (im Imports) IsBindingImport(local string) bool {
	imp, ok := im[local]

	return ok && !imp.Require && (imp.Kind == ImportNamed || imp.Kind == ImportDefault)
}
