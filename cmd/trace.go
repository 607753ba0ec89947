package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/hooklens/internal/domain"
	"github.com/mouse-blink/hooklens/internal/domain/codemods"
	m "github.com/mouse-blink/hooklens/internal/model"
)

var traceDryRunFlag bool
var traceSelectFlags []string
var traceAllFlag bool
var traceModeFlag string
var traceListFlag bool
var traceOutputFlag string

// traceCmd represents the trace command.
var traceCmd = newTraceCmd()

func newTraceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "trace <path>",
		Short: "Log calls to chosen functions",
		Long: `Catalog every named function, grouped as handlers (handle*, on*), hooks
(use*) and utilities, then log each call to the chosen ones (--mode calls)
or each entry into them (--mode entry). Functions are chosen with --select,
--all, or interactively on a terminal.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			mode, err := codemods.ParseTraceMode(traceModeFlag)
			if err != nil {
				return err
			}

			_, err = workflow.Trace(cmd.Context(), domain.TraceArgs{
				RewriteArgs: domain.RewriteArgs{
					Root:   m.Path(args[0]),
					DryRun: traceDryRunFlag,
				},
				Select:   traceSelectFlags,
				All:      traceAllFlag,
				Mode:     mode,
				ListOnly: traceListFlag,
				Output:   m.Path(traceOutputFlag),
			})

			return err
		},
	}
	cmd.Flags().BoolVarP(&traceDryRunFlag, "dry-run", "n", false, "print a unified diff instead of writing files")
	cmd.Flags().StringSliceVarP(&traceSelectFlags, "select", "s", nil, "functions to trace, comma separated")
	cmd.Flags().BoolVarP(&traceAllFlag, "all", "a", false, "trace every function")
	cmd.Flags().StringVarP(&traceModeFlag, "mode", "m", string(codemods.TraceCalls), "calls: log at call sites, entry: log at function entry")
	cmd.Flags().BoolVarP(&traceListFlag, "list", "l", false, "list the cataloged functions and stop")
	cmd.Flags().StringVarP(&traceOutputFlag, "output", "o", "", "also save the catalog as JSON to this file")
	cmd.MarkFlagsMutuallyExclusive("select", "all", "list")

	return cmd
}

func init() {
	rootCmd.AddCommand(traceCmd)
}
