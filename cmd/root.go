// Package cmd provides the root command and CLI setup for hooklens.
package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/mouse-blink/hooklens/internal/adapter"
	"github.com/mouse-blink/hooklens/internal/config"
	"github.com/mouse-blink/hooklens/internal/controller"
	"github.com/mouse-blink/hooklens/internal/domain"
	"github.com/mouse-blink/hooklens/internal/syntax"
)

const installHint = "go install github.com/mouse-blink/hooklens@latest"

var fsAdapter adapter.SourceFSAdapter
var reportStore adapter.ReportStore
var workflow domain.Workflow

var configFlag string
var verboseFlag bool
var jsonFlag bool

func init() {
	fsAdapter = adapter.NewLocalSourceFSAdapter()
	reportStore = adapter.NewReportStore()
}

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hooklens",
		Short: "Analyse and instrument React hooks",
		Long: `hooklens parses the .js, .jsx, .ts and .tsx files of a React project and
either reports on them or inserts logging code in place.

  states        report useState initializers evaluated on every render
  log-setters   log every useState setter call
  log-effects   count and log every useEffect run
  profile       show the component tree and wrap components in a Profiler
  trace         log calls to, or entries into, chosen functions

Rewrites only touch files where something matched and keep every other byte.
Use --dry-run to print a diff instead of writing.`,
		SilenceUsage:      true,
		PersistentPreRunE: setup,
	}
	cmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "configuration file (default "+config.DefaultFileName+" when present)")
	cmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "log debug details to stderr")
	cmd.PersistentFlags().BoolVar(&jsonFlag, "json", false, "write results as JSON")

	return cmd
}

// setup configures logging, loads the configuration, checks the grammars
// and wires the workflow unless one was injected.
func setup(cmd *cobra.Command, _ []string) error {
	level := slog.LevelInfo
	if verboseFlag {
		level = slog.LevelDebug
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})))

	cfg, err := config.Load(configFlag)
	if err != nil {
		return err
	}

	if missing := syntax.MissingGrammars(); len(missing) > 0 {
		return fmt.Errorf("missing grammars: %s; reinstall with: %s", strings.Join(missing, ", "), installHint)
	}

	if workflow != nil {
		return nil
	}

	ui := controller.NewUI(cmd, controller.IsTTY(cmd.OutOrStdout()), jsonFlag)
	workflow = domain.NewWorkflow(
		cfg,
		fsAdapter,
		adapter.NewTreeSitterAdapter(syntax.WithMaxFileSize(cfg.MaxFileSize)),
		reportStore,
		ui,
	)

	return nil
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
