package codemods

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const clockSource = `import { useEffect } from 'react';

function Clock() {
  useEffect(() => {
    tick();
  }, []);
  useEffect(() => subscribe(), []);
  return <div />;
}
`

const clockLogged = `import { useEffect } from 'react';
let __hooklensEffect0 = 0;
let __hooklensEffect1 = 0;

function Clock() {
  useEffect(() => {
    __hooklensEffect0++;
    console.log("[hooklens] Clock effect #0 run", __hooklensEffect0);
    tick();
  }, []);
  useEffect(() => { __hooklensEffect1++; console.log("[hooklens] Clock effect #1 run", __hooklensEffect1); return subscribe(); }, []);
  return <div />;
}
`

func TestEffectLogger_Plan(t *testing.T) {
	out, sites := rewrite(t, NewEffectLogger(testConfig()), "clock.jsx", clockSource)

	assert.Equal(t, clockLogged, out)
	require.Len(t, sites, 2)
	assert.Equal(t, "[hooklens] Clock effect #0 run", sites[0].Label)
	assert.Equal(t, "[hooklens] Clock effect #1 run", sites[1].Label)
}

func TestEffectLogger_CountersAreSequential(t *testing.T) {
	src := "import React from 'react';\n"
	for i := 0; i < 5; i++ {
		src += "function C" + string(rune('A'+i)) + "() { React.useEffect(function () { run(); }); return <i />; }\n"
	}

	out, sites := rewrite(t, NewEffectLogger(testConfig()), "many.jsx", src)
	require.Len(t, sites, 5)

	for i := 0; i < 5; i++ {
		counter := EffectCounterPrefix + string(rune('0'+i))
		assert.Contains(t, out, "let "+counter+" = 0;")
		assert.Contains(t, out, counter+"++;")
	}
}

func TestEffectLogger_RerunContinuesNumbering(t *testing.T) {
	logger := NewEffectLogger(testConfig())

	once, _ := rewrite(t, logger, "clock.jsx", clockSource)

	twice, sites := rewrite(t, logger, "clock.jsx", once)
	assert.Empty(t, sites)
	assert.Equal(t, once, twice)

	extended := once + "function Timer() {\n  useEffect(() => {\n    start();\n  });\n  return null;\n}\n"
	out, sites := rewrite(t, logger, "clock.jsx", extended)

	require.Len(t, sites, 1)
	assert.Contains(t, out, "let __hooklensEffect2 = 0;")
	assert.Contains(t, out, "console.log(\"[hooklens] Timer effect #2 run\", __hooklensEffect2);")
}

func TestEffectLogger_SkipsNonLiteralCallbacks(t *testing.T) {
	src := "import { useEffect } from 'react';\nfunction C() { useEffect(handler); return null; }\n"

	ed := NewEffectLogger(testConfig()).Plan(parseDoc(t, "c.jsx", src))
	assert.True(t, ed.Empty())
}
