package domain

import (
	"context"
	"errors"
	"fmt"

	"github.com/pmezard/go-difflib/difflib"

	"github.com/mouse-blink/hooklens/internal/adapter"
	"github.com/mouse-blink/hooklens/internal/engine"
	m "github.com/mouse-blink/hooklens/internal/model"
	"github.com/mouse-blink/hooklens/internal/syntax"
)

// ErrRewriteInvalid is returned when the rewritten source no longer parses.
// The file is left untouched.
var ErrRewriteInvalid = errors.New("rewritten source does not parse")

// Codemod plans the insertions for one parsed file.
type Codemod interface {
	Type() m.CodemodType
	Plan(doc *syntax.Document) *engine.Editor
}

// Orchestrator runs one file through a read-only visit or a full rewrite:
// read, parse, plan, apply, verify, then write or diff.
type Orchestrator interface {
	Inspect(ctx context.Context, file m.File, visit func(doc *syntax.Document)) error
	Rewrite(ctx context.Context, file m.File, codemod Codemod, dryRun bool) m.FileResult
}

type orchestrator struct {
	fsAdapter     adapter.SourceFSAdapter
	syntaxAdapter adapter.SyntaxAdapter
}

// NewOrchestrator constructs an Orchestrator backed by the provided
// filesystem and parser adapters.
func NewOrchestrator(fsAdapter adapter.SourceFSAdapter, syntaxAdapter adapter.SyntaxAdapter) Orchestrator {
	return &orchestrator{
		fsAdapter:     fsAdapter,
		syntaxAdapter: syntaxAdapter,
	}
}

// Inspect parses file and hands the document to visit.
func (o *orchestrator) Inspect(ctx context.Context, file m.File, visit func(doc *syntax.Document)) error {
	doc, err := o.load(ctx, file)
	if err != nil {
		return err
	}
	defer doc.Close()

	visit(doc)

	return nil
}

// Rewrite applies codemod to file. Files without sites are never written.
func (o *orchestrator) Rewrite(ctx context.Context, file m.File, codemod Codemod, dryRun bool) m.FileResult {
	result := m.FileResult{File: file}

	doc, err := o.load(ctx, file)
	if err != nil {
		result.Err = err
		return result
	}
	defer doc.Close()

	ed := codemod.Plan(doc)
	if ed.Empty() || len(ed.Sites()) == 0 {
		return result
	}

	out := ed.Apply()

	if err := o.verify(ctx, file, out); err != nil {
		result.Err = err
		return result
	}

	result.Sites = ed.Sites()

	if dryRun {
		diff, err := unifiedDiff(file.ShortPath, doc.Content, out)
		if err != nil {
			result.Err = fmt.Errorf("diff %s: %w", file.ShortPath, err)
			return result
		}

		result.Diff = diff

		return result
	}

	if err := o.fsAdapter.WriteFile(file.Path, out); err != nil {
		result.Err = fmt.Errorf("failed to write %s: %w", file.ShortPath, err)
		return result
	}

	result.Written = true

	return result
}

func (o *orchestrator) load(ctx context.Context, file m.File) (*syntax.Document, error) {
	content, err := o.fsAdapter.ReadFile(file.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", file.ShortPath, err)
	}

	doc, err := o.syntaxAdapter.Parse(ctx, file.Path, content)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", file.ShortPath, err)
	}

	return doc, nil
}

func (o *orchestrator) verify(ctx context.Context, file m.File, content []byte) error {
	doc, err := o.syntaxAdapter.Parse(ctx, file.Path, content)
	if err != nil {
		return fmt.Errorf("%s: %w: %w", file.ShortPath, ErrRewriteInvalid, err)
	}

	doc.Close()

	return nil
}

func unifiedDiff(path m.Path, before, after []byte) (string, error) {
	return difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(string(before)),
		B:        difflib.SplitLines(string(after)),
		FromFile: "a/" + string(path),
		ToFile:   "b/" + string(path),
		Context:  3,
	})
}
