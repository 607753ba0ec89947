package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/mouse-blink/hooklens/internal/model"
)

func insertBeforeCall(t *testing.T, src, callee string, lines ...string) string {
	t.Helper()

	doc := parse(t, "a.jsx", src)
	anchor, ok := anchorOfCall(t, doc, callee)
	require.True(t, ok)

	ed := NewEditor(doc)
	ed.InsertBefore(anchor, lines...)

	return string(ed.Apply())
}

func TestEditor_InsertBefore(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{
			name: "statement in block",
			src:  "function A() {\n  setX(1);\n}\n",
			want: "function A() {\n  log();\n  setX(1);\n}\n",
		},
		{
			name: "if without braces",
			src:  "if (a) setX(1);\n",
			want: "if (a) { log(); setX(1); }\n",
		},
		{
			name: "else branch",
			src:  "if (a) {} else setX(1);\n",
			want: "if (a) {} else { log(); setX(1); }\n",
		},
		{
			name: "expression bodied arrow",
			src:  "const f = () => setX(1);\n",
			want: "const f = () => { log(); return setX(1); };\n",
		},
		{
			name: "statement sharing a line",
			src:  "a(); setX(1);\n",
			want: "a(); log(); setX(1);\n",
		},
		{
			name: "loop initializer",
			src:  "function A() {\n\tfor (let i = setX(0); i < 1; i++) {}\n}\n",
			want: "function A() {\n\tlog();\n\tfor (let i = setX(0); i < 1; i++) {}\n}\n",
		},
		{
			name: "exported declaration",
			src:  "export const v = setX(1);\n",
			want: "log();\nexport const v = setX(1);\n",
		},
		{
			name: "return value",
			src:  "function A() {\n  return cond && setX(1);\n}\n",
			want: "function A() {\n  log();\n  return cond && setX(1);\n}\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, insertBeforeCall(t, tt.src, "setX", "log();"))
		})
	}
}

func TestEditor_InsertBeforeKeepsOrder(t *testing.T) {
	src := "function A() {\n  run(setX(1), setY(2));\n}\n"
	doc := parse(t, "a.js", src)

	ed := NewEditor(doc)

	for _, callee := range []string{"setX", "setY"} {
		anchor, ok := anchorOfCall(t, doc, callee)
		require.True(t, ok)
		ed.InsertBefore(anchor, CallStatement("log", Quote(callee)))
	}

	assert.Equal(t, "function A() {\n  log(\"setX\");\n  log(\"setY\");\n  run(setX(1), setY(2));\n}\n", string(ed.Apply()))
}

func TestFindAnchor_NoAnchor(t *testing.T) {
	tests := []string{
		"class K { v = setX(1); }\n",
		"function f(a = setX(1)) {}\n",
	}

	for _, src := range tests {
		doc := parse(t, "a.js", src)
		_, ok := anchorOfCall(t, doc, "setX")
		assert.False(t, ok, src)
	}
}

func TestEditor_PrependToBody(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{
			name: "block body",
			src:  "function f() {\n  work();\n}\n",
			want: "function f() {\n  a();\n  b();\n  work();\n}\n",
		},
		{
			name: "empty block",
			src:  "function f() {}\n",
			want: "function f() { a(); b(); }\n",
		},
		{
			name: "empty multi-line block",
			src:  "function f() {\n}\n",
			want: "function f() {\n  a();\n  b();\n}\n",
		},
		{
			name: "expression body",
			src:  "const f = () => work();\n",
			want: "const f = () => { a(); b(); return work(); };\n",
		},
		{
			name: "body on the brace line",
			src:  "const f = () => { work(); };\n",
			want: "const f = () => { a(); b(); work(); };\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := parse(t, "a.js", tt.src)
			fn := firstOfType(doc, "function_declaration")
			if fn == nil {
				fn = firstOfType(doc, "arrow_function")
			}
			require.NotNil(t, fn)

			ed := NewEditor(doc)
			ed.PrependToBody(fn, "a();")
			ed.PrependToBody(fn, "b();")

			assert.Equal(t, tt.want, string(ed.Apply()))
		})
	}
}

func TestEditor_Hoist(t *testing.T) {
	t.Run("after directives and imports", func(t *testing.T) {
		src := "'use client';\nimport a from 'a';\n\nfoo();\n"
		doc := parse(t, "a.js", src)

		ed := NewEditor(doc)
		ed.Hoist("let c = 0;")
		ed.Hoist("let c = 0;")
		ed.AddImport(`import { P } from "react";`)

		assert.Equal(t, "'use client';\nimport a from 'a';\nimport { P } from \"react\";\nlet c = 0;\n\nfoo();\n", string(ed.Apply()))
	})

	t.Run("without imports", func(t *testing.T) {
		doc := parse(t, "a.js", "foo();\n")

		ed := NewEditor(doc)
		ed.Hoist("let c = 0;")

		assert.Equal(t, "let c = 0;\nfoo();\n", string(ed.Apply()))
	})

	t.Run("before a statement edit at the same offset", func(t *testing.T) {
		doc := parse(t, "a.js", "setX(1);\n")
		anchor, ok := anchorOfCall(t, doc, "setX")
		require.True(t, ok)

		ed := NewEditor(doc)
		ed.InsertBefore(anchor, "log();")
		ed.Hoist("let c = 0;")

		assert.Equal(t, "let c = 0;\nlog();\nsetX(1);\n", string(ed.Apply()))
	})
}

func TestEditor_Wrap(t *testing.T) {
	doc := parse(t, "a.jsx", "const A = () => <div />;\n")
	el := firstOfType(doc, "jsx_self_closing_element")
	require.NotNil(t, el)

	ed := NewEditor(doc)
	ed.Wrap(el, "<P>", "</P>")

	assert.Equal(t, "const A = () => <P><div /></P>;\n", string(ed.Apply()))
}

func TestEditor_NestedWrapAndBody(t *testing.T) {
	doc := parse(t, "a.js", "const f = () => g();\n")
	fn := firstOfType(doc, "arrow_function")
	call := firstOfType(doc, "call_expression")

	ed := NewEditor(doc)
	ed.PrependToBody(fn, "a();")
	ed.Wrap(call, "(", ")")

	assert.Equal(t, "const f = () => { a(); return (g()); };\n", string(ed.Apply()))
}

func TestEditor_EmptyPlan(t *testing.T) {
	src := "const a = 1;\n"
	doc := parse(t, "a.js", src)

	ed := NewEditor(doc)
	assert.True(t, ed.Empty())
	assert.Equal(t, src, string(ed.Apply()))
	assert.Empty(t, ed.Sites())

	ed.AddSite(m.Site{Type: m.CodemodSetterLog, Line: 1, Label: "x"})
	assert.Len(t, ed.Sites(), 1)
}

func TestPrecedingCallLabels(t *testing.T) {
	src := "function A() {\n  other();\n  console.log(\"first\", 1);\n  console.log(\"second\");\n  setX(1);\n}\n"
	doc := parse(t, "a.js", src)

	anchor, ok := anchorOfCall(t, doc, "setX")
	require.True(t, ok)

	assert.Equal(t, []string{"second", "first"}, PrecedingCallLabels(doc, anchor, "console.log"))
	assert.Empty(t, PrecedingCallLabels(doc, Anchor{}, "console.log"))
}

func TestEditor_Queued(t *testing.T) {
	doc := parse(t, "a.js", "function A() {\n  setX(1);\n}\nconst f = () => setY(2);\n")

	stmt, ok := anchorOfCall(t, doc, "setX")
	require.True(t, ok)

	arrow, ok := anchorOfCall(t, doc, "setY")
	require.True(t, ok)

	ed := NewEditor(doc)
	assert.Empty(t, ed.Queued(stmt))
	assert.Empty(t, ed.Queued(Anchor{}))

	ed.InsertBefore(stmt, "a();", "b();")
	ed.InsertBefore(arrow, "c();")

	assert.Equal(t, []string{"a();", "b();"}, ed.Queued(stmt))
	assert.Equal(t, []string{"c();"}, ed.Queued(arrow))
}

func TestHoistOffset(t *testing.T) {
	doc := parse(t, "a.js", "#!/usr/bin/env node\n// note\nimport a from 'a';\nrun();\nimport b from 'b';\n")

	offset, found := HoistOffset(doc)
	require.True(t, found)
	assert.Equal(t, "import a from 'a';", string(doc.Content[offset-18:offset]))

	doc = parse(t, "b.js", "run();\n")
	_, found = HoistOffset(doc)
	assert.False(t, found)
}

func TestQuote(t *testing.T) {
	assert.Equal(t, `"a \"b\" <c>"`, Quote(`a "b" <c>`))
	assert.Equal(t, `"line\nbreak"`, Quote("line\nbreak"))
	assert.Equal(t, `log("x", 1);`, CallStatement("log", Quote("x"), "1"))
}
