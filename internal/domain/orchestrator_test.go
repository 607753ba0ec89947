package domain

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mouse-blink/hooklens/internal/adapter"
	adaptermocks "github.com/mouse-blink/hooklens/internal/adapter/mocks"
	"github.com/mouse-blink/hooklens/internal/config"
	"github.com/mouse-blink/hooklens/internal/domain/codemods"
	"github.com/mouse-blink/hooklens/internal/engine"
	m "github.com/mouse-blink/hooklens/internal/model"
	"github.com/mouse-blink/hooklens/internal/syntax"
)

const appSource = `import { useState } from 'react';

function App() {
  const [n, setN] = useState(0);
  function reset() {
    setN(0);
  }
  return <div />;
}
`

const appLogged = `import { useState } from 'react';

function App() {
  const [n, setN] = useState(0);
  function reset() {
    console.log("[hooklens] App.setN", "0");
    setN(0);
  }
  return <div />;
}
`

var appFile = m.File{Path: "/project/src/App.jsx", ShortPath: "src/App.jsx"}

// brokenCodemod queues an insertion that cannot parse.
type brokenCodemod struct{}

func (brokenCodemod) Type() m.CodemodType { return m.CodemodSetterLog }

func (brokenCodemod) Plan(doc *syntax.Document) *engine.Editor {
	ed := engine.NewEditor(doc)
	ed.Hoist("let = ;")
	ed.AddSite(m.Site{Type: m.CodemodSetterLog, Line: 1})

	return ed
}

func newTestOrchestrator(t *testing.T) (Orchestrator, *adaptermocks.MockSourceFSAdapter) {
	t.Helper()

	fsAdapter := adaptermocks.NewMockSourceFSAdapter(t)

	return NewOrchestrator(fsAdapter, adapter.NewTreeSitterAdapter()), fsAdapter
}

func TestOrchestrator_Rewrite_WritesFile(t *testing.T) {
	orch, fsAdapter := newTestOrchestrator(t)

	fsAdapter.EXPECT().ReadFile(appFile.Path).Return([]byte(appSource), nil)
	fsAdapter.EXPECT().WriteFile(appFile.Path, []byte(appLogged)).Return(nil)

	result := orch.Rewrite(context.Background(), appFile, codemods.NewSetterLogger(config.Default()), false)

	require.NoError(t, result.Err)
	assert.True(t, result.Written)
	assert.Empty(t, result.Diff)
	require.Len(t, result.Sites, 1)
	assert.Equal(t, 6, result.Sites[0].Line)
}

func TestOrchestrator_Rewrite_NoSitesNoWrite(t *testing.T) {
	orch, fsAdapter := newTestOrchestrator(t)

	fsAdapter.EXPECT().ReadFile(appFile.Path).Return([]byte("export const x = 1;\n"), nil)

	result := orch.Rewrite(context.Background(), appFile, codemods.NewSetterLogger(config.Default()), false)

	require.NoError(t, result.Err)
	assert.False(t, result.Written)
	assert.Empty(t, result.Sites)
	fsAdapter.AssertNotCalled(t, "WriteFile", mock.Anything, mock.Anything)
}

func TestOrchestrator_Rewrite_DryRun(t *testing.T) {
	orch, fsAdapter := newTestOrchestrator(t)

	fsAdapter.EXPECT().ReadFile(appFile.Path).Return([]byte(appSource), nil)

	result := orch.Rewrite(context.Background(), appFile, codemods.NewSetterLogger(config.Default()), true)

	require.NoError(t, result.Err)
	assert.False(t, result.Written)
	assert.Contains(t, result.Diff, "--- a/src/App.jsx")
	assert.Contains(t, result.Diff, "+++ b/src/App.jsx")
	assert.Contains(t, result.Diff, "+    console.log(\"[hooklens] App.setN\", \"0\");")
	fsAdapter.AssertNotCalled(t, "WriteFile", mock.Anything, mock.Anything)
}

func TestOrchestrator_Rewrite_ReadError(t *testing.T) {
	orch, fsAdapter := newTestOrchestrator(t)

	fsAdapter.EXPECT().ReadFile(appFile.Path).Return(nil, errors.New("permission denied"))

	result := orch.Rewrite(context.Background(), appFile, codemods.NewSetterLogger(config.Default()), false)

	require.Error(t, result.Err)
	assert.Contains(t, result.Err.Error(), "permission denied")
	assert.False(t, result.Written)
}

func TestOrchestrator_Rewrite_SyntaxError(t *testing.T) {
	orch, fsAdapter := newTestOrchestrator(t)

	fsAdapter.EXPECT().ReadFile(appFile.Path).Return([]byte("function (\n"), nil)

	result := orch.Rewrite(context.Background(), appFile, codemods.NewSetterLogger(config.Default()), false)

	require.ErrorIs(t, result.Err, syntax.ErrSyntax)
	assert.Contains(t, result.Err.Error(), "src/App.jsx")
}

func TestOrchestrator_Rewrite_InvalidOutputNotWritten(t *testing.T) {
	orch, fsAdapter := newTestOrchestrator(t)

	fsAdapter.EXPECT().ReadFile(appFile.Path).Return([]byte(appSource), nil)

	result := orch.Rewrite(context.Background(), appFile, brokenCodemod{}, false)

	require.ErrorIs(t, result.Err, ErrRewriteInvalid)
	assert.False(t, result.Written)
	assert.Empty(t, result.Sites)
	fsAdapter.AssertNotCalled(t, "WriteFile", mock.Anything, mock.Anything)
}

func TestOrchestrator_Rewrite_WriteError(t *testing.T) {
	orch, fsAdapter := newTestOrchestrator(t)

	fsAdapter.EXPECT().ReadFile(appFile.Path).Return([]byte(appSource), nil)
	fsAdapter.EXPECT().WriteFile(appFile.Path, mock.Anything).Return(errors.New("disk full"))

	result := orch.Rewrite(context.Background(), appFile, codemods.NewSetterLogger(config.Default()), false)

	require.Error(t, result.Err)
	assert.Contains(t, result.Err.Error(), "disk full")
	assert.False(t, result.Written)
}

func TestOrchestrator_Inspect(t *testing.T) {
	orch, fsAdapter := newTestOrchestrator(t)

	fsAdapter.EXPECT().ReadFile(appFile.Path).Return([]byte(appSource), nil)

	var visited string

	err := orch.Inspect(context.Background(), appFile, func(doc *syntax.Document) {
		visited = string(doc.Content)
	})

	require.NoError(t, err)
	assert.Equal(t, appSource, visited)
}

func TestOrchestrator_Inspect_CanceledContext(t *testing.T) {
	orch, fsAdapter := newTestOrchestrator(t)

	fsAdapter.EXPECT().ReadFile(appFile.Path).Return([]byte(appSource), nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := orch.Inspect(ctx, appFile, func(*syntax.Document) { t.Fatal("visit called") })

	require.ErrorIs(t, err, context.Canceled)
}
