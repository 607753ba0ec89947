package codemods

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/mouse-blink/hooklens/internal/model"
)

func analyze(t *testing.T, src string) []m.Finding {
	t.Helper()

	return NewStateAnalyzer(testConfig()).Analyze(parseDoc(t, "counter.jsx", src), testFile("counter.jsx"))
}

func counterWith(init string) string {
	return "import { useState } from 'react';\n" +
		"export function Counter() {\n" +
		"  const [value, setValue] = useState(" + init + ");\n" +
		"  return <span>{value}</span>;\n" +
		"}\n"
}

func TestStateAnalyzer_TrivialInitializers(t *testing.T) {
	for _, init := range []string{"false", "''", "0", "null", "undefined", "{}", "[]"} {
		t.Run(init, func(t *testing.T) {
			assert.Empty(t, analyze(t, counterWith(init)))
		})
	}
}

func TestStateAnalyzer_ComplexInitializers(t *testing.T) {
	tests := []struct {
		init string
		want m.ComplexityClass
	}{
		{"() => x()", m.ClassFunctionInit},
		{"a ? b : c", m.ClassTernary},
		{"a && b", m.ClassLogical},
		{"load()", m.ClassCall},
		{"{a: 1}", m.ClassComplexObject},
		{"[1]", m.ClassNonEmptyArray},
		{"a * 2", m.ClassBinary},
	}

	for _, tt := range tests {
		t.Run(tt.init, func(t *testing.T) {
			findings := analyze(t, counterWith(tt.init))
			require.Len(t, findings, 1)

			assert.Equal(t, m.Finding{
				Component: "Counter",
				Variable:  "value",
				File:      "src/counter.jsx",
				Line:      3,
				Class:     tt.want,
				Snippet:   tt.init,
			}, findings[0])
		})
	}
}

func TestStateAnalyzer_LocalHookIgnored(t *testing.T) {
	src := `function useState(v) {
  return [v, () => {}];
}

export function Counter() {
  const [value, setValue] = useState(() => compute());
  return <span>{value}</span>;
}
`
	assert.Empty(t, analyze(t, src))
}

func TestStateAnalyzer_ScopeAndNaming(t *testing.T) {
	src := `import React from 'react';

export const Panel = React.memo(function () {
  function helper() {
    const [, setOpen] = React.useState(isOpen(
      props
    ));
  }
  return <div />;
});

const [loose] = React.useState([1, 2]);
`
	findings := analyze(t, src)
	require.Len(t, findings, 2)

	assert.Equal(t, "helper", findings[0].Component)
	assert.Equal(t, "setOpen", findings[0].Variable)
	assert.Equal(t, "isOpen( props )", findings[0].Snippet)
	assert.Equal(t, m.ClassCall, findings[0].Class)

	assert.Equal(t, "global", findings[1].Component)
	assert.Equal(t, "loose", findings[1].Variable)
	assert.Equal(t, 12, findings[1].Line)
}

func TestStateAnalyzer_CustomHookOwner(t *testing.T) {
	src := `import { useState } from 'react';

export function useCounter() {
  const [count, setCount] = useState(() => 0);
  return [count, setCount];
}

export function Counter() {
  const [step] = useState(steps.length > 1 ? 2 : 1);
  const items = list.map((item) => {
    const [open] = useState({ id: item.id });
    return open;
  });
  return <p>{items}</p>;
}
`
	findings := analyze(t, src)
	require.Len(t, findings, 3)

	assert.Equal(t, "useCounter", findings[0].Component)
	assert.Equal(t, "count", findings[0].Variable)
	assert.Equal(t, "Counter", findings[1].Component)
	assert.Equal(t, "Counter", findings[2].Component)
}

func TestSnippet(t *testing.T) {
	assert.Equal(t, "a ? b : c", Snippet("a\n  ? b\n  : c"))
}
