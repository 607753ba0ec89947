package engine

import (
	"testing"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mouse-blink/hooklens/internal/syntax"
)

func hookCallees(t *testing.T, path, src, hook string) []string {
	t.Helper()

	doc := parse(t, path, src)
	mt := NewMatcher(doc, "react")

	var callees []string

	syntax.Walk(doc, func(_ *syntax.Walker, n *sitter.Node) bool {
		if mt.IsHookCall(n, hook) {
			callees = append(callees, doc.Text(syntax.Field(n, "function")))
		}

		return true
	})

	return callees
}

func TestMatcher_IsHookCall(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want []string
	}{
		{
			name: "named import",
			src:  "import { useState } from 'react';\nuseState(1);\n",
			want: []string{"useState"},
		},
		{
			name: "aliased import",
			src:  "import { useState as useLocal } from 'react';\nuseLocal(1);\nuseState(2);\n",
			want: []string{"useLocal"},
		},
		{
			name: "default import member",
			src:  "import React from 'react';\nReact.useState(1);\nOther.useState(2);\n",
			want: []string{"React.useState"},
		},
		{
			name: "namespace import member",
			src:  "import * as R from 'react';\nR.useState(1);\n",
			want: []string{"R.useState"},
		},
		{
			name: "commonjs require",
			src:  "const { useState } = require('react');\nuseState(1);\n",
			want: []string{"useState"},
		},
		{
			name: "local function with the hook name",
			src:  "function useState(v) { return [v, () => {}]; }\nuseState(1);\n",
			want: nil,
		},
		{
			name: "import from another module",
			src:  "import { useState } from 'preact/hooks';\nuseState(1);\n",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, hookCallees(t, "a.js", tt.src, "useState"))
		})
	}
}

func TestMatcher_HookBinding(t *testing.T) {
	src := `import { useState } from 'react';
function C() {
  const [count, setCount] = useState(0);
  const [, setOnly] = useState(1);
  const [stateOnly] = useState(2);
  const [withDefault = 1, setWithDefault] = useState();
  const pair = useState(3);
  return null;
}
`
	doc := parse(t, "c.jsx", src)
	mt := NewMatcher(doc, "react")

	var bindings []Binding

	syntax.Walk(doc, func(_ *syntax.Walker, n *sitter.Node) bool {
		if b, ok := mt.HookBinding(n, "useState"); ok {
			bindings = append(bindings, b)
		}

		return true
	})

	require.Len(t, bindings, 4)
	assert.Equal(t, "count", bindings[0].State)
	assert.Equal(t, "setCount", bindings[0].Setter)
	assert.Equal(t, "0", doc.Text(bindings[0].Initializer))
	assert.Equal(t, "", bindings[1].State)
	assert.Equal(t, "setOnly", bindings[1].Setter)
	assert.Equal(t, "stateOnly", bindings[2].State)
	assert.Equal(t, "", bindings[2].Setter)
	assert.Equal(t, "withDefault", bindings[3].State)
	assert.Equal(t, "setWithDefault", bindings[3].Setter)
	assert.Nil(t, bindings[3].Initializer)

	collected := mt.CollectBindings("useState")
	assert.Len(t, collected, 3)
	assert.Contains(t, collected, "setOnly")
}

func TestMatcher_SetterCall(t *testing.T) {
	src := `import { useState } from 'react';
function C() {
  const [v, setV] = useState(0);
  setV(1);
  other(2);
  obj.setV(3);
  return null;
}
`
	doc := parse(t, "c.jsx", src)
	mt := NewMatcher(doc, "react")
	bindings := mt.CollectBindings("useState")

	var setters []string

	syntax.Walk(doc, func(_ *syntax.Walker, n *sitter.Node) bool {
		if b, ok := mt.SetterCall(n, bindings); ok {
			setters = append(setters, b.Setter+":"+doc.Text(n))
		}

		return true
	})

	assert.Equal(t, []string{"setV:setV(1)"}, setters)
}

func TestMatcher_IsComponentFunction(t *testing.T) {
	src := `import { memo } from 'react';
function App() { return <div />; }
const Button = () => <button />;
function helper() { return <div />; }
function Outer() {
  const render = () => <div />;
  return null;
}
const Memo = memo(() => (flag ? <A /> : null));
function Cond() { return flag && <span />; }
function Fragment() {
  if (x) {
    return <>x</>;
  }
  return null;
}
`
	doc := parse(t, "app.jsx", src)
	mt := NewMatcher(doc, "react")

	got := map[string]bool{}

	syntax.Walk(doc, func(w *syntax.Walker, n *sitter.Node) bool {
		if syntax.KindOf(n).IsFunctionLike() {
			name := w.FunctionName(n)
			if name != "" {
				got[name] = mt.IsComponentFunction(n, name)
			}
		}

		return true
	})

	assert.Equal(t, map[string]bool{
		"App":      true,
		"Button":   true,
		"helper":   false,
		"Outer":    false,
		"render":   false,
		"Memo":     true,
		"Cond":     true,
		"Fragment": true,
	}, got)
}

func TestMatcher_JSXChildReference(t *testing.T) {
	src := `import Child from './Child';
import { Card } from './Card';
import * as Kit from './kit';
const { Legacy } = require('./legacy');
function App() {
  return (
    <div>
      <Child />
      <Card title="x">text</Card>
      <Local />
      <Legacy />
      <Kit.Button />
    </div>
  );
}
`
	doc := parse(t, "app.jsx", src)
	mt := NewMatcher(doc, "react")

	type ref struct {
		name     string
		imported bool
	}

	var refs []ref

	syntax.Walk(doc, func(_ *syntax.Walker, n *sitter.Node) bool {
		if name, imported, ok := mt.JSXChildReference(n); ok {
			refs = append(refs, ref{name, imported})
		}

		return true
	})

	assert.Equal(t, []ref{{"Child", true}, {"Card", true}, {"Local", false}, {"Legacy", false}}, refs)
}
