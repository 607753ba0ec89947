// Package domain runs the hooklens tools over a file tree: discovery,
// per-file analysis or rewrite, selection and reporting.
package domain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/mouse-blink/hooklens/internal/adapter"
	"github.com/mouse-blink/hooklens/internal/config"
	"github.com/mouse-blink/hooklens/internal/controller"
	"github.com/mouse-blink/hooklens/internal/domain/codemods"
	m "github.com/mouse-blink/hooklens/internal/model"
	"github.com/mouse-blink/hooklens/internal/syntax"
)

// RewriteArgs are shared by every rewriting tool.
type RewriteArgs struct {
	Root   m.Path
	DryRun bool
}

// StatesArgs configure the useState analysis.
type StatesArgs struct {
	Root m.Path
	// Output optionally receives the report as JSON.
	Output m.Path
}

// ProfileArgs configure the hierarchy scan and the Profiler rewrite.
type ProfileArgs struct {
	RewriteArgs
	Select       []string
	All          bool
	IncludeLocal bool
	TreeOnly     bool
	Output       m.Path
}

// TraceArgs configure the function scan and the trace rewrite.
type TraceArgs struct {
	RewriteArgs
	Select   []string
	All      bool
	Mode     codemods.TraceMode
	ListOnly bool
	Output   m.Path
}

// ViewArgs point at a report written by States.
type ViewArgs struct {
	Report m.Path
}

// Workflow defines the hooklens operations.
type Workflow interface {
	States(ctx context.Context, args StatesArgs) (m.AnalysisReport, error)
	View(args ViewArgs) (m.AnalysisReport, error)
	LogSetters(ctx context.Context, args RewriteArgs) (m.RunSummary, error)
	LogEffects(ctx context.Context, args RewriteArgs) (m.RunSummary, error)
	Profile(ctx context.Context, args ProfileArgs) (m.RunSummary, error)
	Trace(ctx context.Context, args TraceArgs) (m.RunSummary, error)
}

type workflow struct {
	cfg         config.Config
	fsAdapter   adapter.SourceFSAdapter
	reportStore adapter.ReportStore
	ui          controller.UI
	orch        Orchestrator
}

// NewWorkflow creates a new Workflow instance with the provided adapters.
func NewWorkflow(
	cfg config.Config,
	fsAdapter adapter.SourceFSAdapter,
	syntaxAdapter adapter.SyntaxAdapter,
	reportStore adapter.ReportStore,
	ui controller.UI,
) Workflow {
	return &workflow{
		cfg:         cfg,
		fsAdapter:   fsAdapter,
		reportStore: reportStore,
		ui:          ui,
		orch:        NewOrchestrator(fsAdapter, syntaxAdapter),
	}
}

// States reports the complex useState initializers under args.Root.
func (w *workflow) States(ctx context.Context, args StatesArgs) (m.AnalysisReport, error) {
	var report m.AnalysisReport

	files, err := w.discover(args.Root, false)
	if err != nil {
		return report, err
	}

	analyzer := codemods.NewStateAnalyzer(w.cfg)

	for _, file := range files {
		if err := ctx.Err(); err != nil {
			return report, err
		}

		err := w.orch.Inspect(ctx, file, func(doc *syntax.Document) {
			report.Findings = append(report.Findings, analyzer.Analyze(doc, file)...)
		})
		if err != nil {
			slog.Warn("file skipped", "path", file.ShortPath, "error", err)
		}

		report.Summary.Add(m.FileResult{File: file, Err: err})
	}

	report.Summary.Findings = len(report.Findings)
	report.Counts = m.CountByClass(report.Findings)

	if err := w.save(args.Output, report); err != nil {
		return report, err
	}

	return report, w.ui.DisplayFindings(report)
}

// View displays a report saved by an earlier States run.
func (w *workflow) View(args ViewArgs) (m.AnalysisReport, error) {
	var report m.AnalysisReport

	if err := w.reportStore.LoadReport(args.Report, &report); err != nil {
		return report, fmt.Errorf("failed to load report: %w", err)
	}

	if report.Counts == nil {
		report.Counts = m.CountByClass(report.Findings)
	}

	return report, w.ui.DisplayFindings(report)
}

// LogSetters inserts a log before every useState setter call.
func (w *workflow) LogSetters(ctx context.Context, args RewriteArgs) (m.RunSummary, error) {
	files, err := w.discover(args.Root, true)
	if err != nil {
		return m.RunSummary{}, err
	}

	return w.rewrite(ctx, files, codemods.NewSetterLogger(w.cfg), args.DryRun)
}

// LogEffects counts and logs every useEffect callback run.
func (w *workflow) LogEffects(ctx context.Context, args RewriteArgs) (m.RunSummary, error) {
	files, err := w.discover(args.Root, true)
	if err != nil {
		return m.RunSummary{}, err
	}

	return w.rewrite(ctx, files, codemods.NewEffectLogger(w.cfg), args.DryRun)
}

// Profile builds the component hierarchy, shows it, and wraps the selected
// components in a Profiler. The scan pass completes before any file is
// rewritten.
func (w *workflow) Profile(ctx context.Context, args ProfileArgs) (m.RunSummary, error) {
	files, err := w.discover(args.Root, true)
	if err != nil {
		return m.RunSummary{}, err
	}

	graph := m.NewComponentGraph()
	scanner := codemods.NewComponentScanner(w.cfg, graph, args.IncludeLocal)

	if err := w.scan(ctx, files, func(doc *syntax.Document, file m.File) { scanner.Scan(doc, file) }); err != nil {
		return m.RunSummary{}, err
	}

	if err := w.save(args.Output, graph.Components()); err != nil {
		return m.RunSummary{}, err
	}

	if err := w.ui.DisplayHierarchy(graph); err != nil {
		return m.RunSummary{}, err
	}

	if args.TreeOnly {
		return m.RunSummary{}, nil
	}

	names, err := w.resolveSelection("Components to profile", args.Select, args.All, graph.Groups())
	if err != nil {
		return m.RunSummary{}, err
	}

	if len(names) == 0 {
		return w.nothingSelected()
	}

	return w.rewrite(ctx, files, codemods.NewProfiler(w.cfg, codemods.NewSelection(names...)), args.DryRun)
}

// Trace catalogs the declared functions and logs calls to, or entries
// into, the selected ones. The scan pass completes before any file is
// rewritten.
func (w *workflow) Trace(ctx context.Context, args TraceArgs) (m.RunSummary, error) {
	files, err := w.discover(args.Root, true)
	if err != nil {
		return m.RunSummary{}, err
	}

	catalog := m.NewFunctionCatalog()
	scanner := codemods.NewFunctionScanner(catalog)

	if err := w.scan(ctx, files, func(doc *syntax.Document, file m.File) { scanner.Scan(doc, file) }); err != nil {
		return m.RunSummary{}, err
	}

	if err := w.save(args.Output, catalog.Entries()); err != nil {
		return m.RunSummary{}, err
	}

	if args.ListOnly {
		return m.RunSummary{}, w.ui.DisplayCatalog(catalog)
	}

	names, err := w.resolveSelection("Functions to trace", args.Select, args.All, catalog.Groups())
	if err != nil {
		return m.RunSummary{}, err
	}

	if len(names) == 0 {
		return w.nothingSelected()
	}

	return w.rewrite(ctx, files, codemods.NewTracer(w.cfg, codemods.NewSelection(names...), args.Mode), args.DryRun)
}

func (w *workflow) discover(root m.Path, rewriting bool) ([]m.File, error) {
	files, err := w.fsAdapter.Discover(root, adapter.DiscoveryRules{
		Extensions:  w.cfg.Extensions,
		SkipDirs:    w.cfg.SkipDirs,
		TestDir:     w.cfg.TestDir,
		SkipTestDir: rewriting,
	})
	if err != nil {
		return nil, err
	}

	slog.Debug("files discovered", "root", root, "count", len(files))

	return files, nil
}

func (w *workflow) scan(ctx context.Context, files []m.File, visit func(doc *syntax.Document, file m.File)) error {
	for _, file := range files {
		if err := ctx.Err(); err != nil {
			return err
		}

		err := w.orch.Inspect(ctx, file, func(doc *syntax.Document) { visit(doc, file) })
		if err != nil {
			slog.Warn("file skipped", "path", file.ShortPath, "error", err)
		}
	}

	return nil
}

func (w *workflow) rewrite(ctx context.Context, files []m.File, codemod Codemod, dryRun bool) (m.RunSummary, error) {
	var summary m.RunSummary

	for _, file := range files {
		if err := ctx.Err(); err != nil {
			return summary, err
		}

		result := w.orch.Rewrite(ctx, file, codemod, dryRun)
		summary.Add(result)

		if result.Err != nil {
			slog.Warn("file skipped", "path", file.ShortPath, "codemod", codemod.Type(), "error", result.Err)
		}

		if result.Err != nil || len(result.Sites) > 0 {
			if err := w.ui.DisplayFileResult(result); err != nil {
				return summary, err
			}
		}
	}

	return summary, w.ui.DisplaySummary(summary)
}

// resolveSelection returns the names to act on: every offered name with
// all, the known names of selected, or the operator's pick.
func (w *workflow) resolveSelection(title string, selected []string, all bool, groups []m.SelectionGroup) ([]string, error) {
	var offered []string

	known := make(map[string]bool)

	for _, g := range groups {
		for _, item := range g.Items {
			if !known[item.Name] {
				known[item.Name] = true
				offered = append(offered, item.Name)
			}
		}
	}

	switch {
	case all:
		return offered, nil
	case len(selected) > 0:
		var names []string

		for _, name := range selected {
			name = strings.TrimSpace(name)
			if name == "" {
				continue
			}

			if !known[name] {
				slog.Warn("unknown name ignored", "name", name)
				continue
			}

			names = append(names, name)
		}

		return names, nil
	case len(offered) == 0:
		return nil, nil
	}

	names, err := w.ui.Select(title, groups)
	if errors.Is(err, controller.ErrSelectionCanceled) {
		slog.Info("selection canceled")
		return nil, nil
	}

	return names, err
}

func (w *workflow) nothingSelected() (m.RunSummary, error) {
	slog.Info("nothing selected, no file changed")

	var summary m.RunSummary

	return summary, w.ui.DisplaySummary(summary)
}

func (w *workflow) save(path m.Path, report any) error {
	if path == "" {
		return nil
	}

	if err := w.reportStore.SaveReport(path, report); err != nil {
		return fmt.Errorf("failed to save report: %w", err)
	}

	slog.Debug("report saved", "path", path)

	return nil
}
