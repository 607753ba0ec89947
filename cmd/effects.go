package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/hooklens/internal/domain"
	m "github.com/mouse-blink/hooklens/internal/model"
)

var effectsDryRunFlag bool

// effectsCmd represents the log-effects command.
var effectsCmd = newEffectsCmd()

func newEffectsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "log-effects <path>",
		Short: "Count and log every useEffect run",
		Long: `Give every useEffect callback a module-level run counter and log the
component, the effect number and the counter on each run. Counters are
numbered per file and continue after the ones a previous run added.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := workflow.LogEffects(cmd.Context(), domain.RewriteArgs{
				Root:   m.Path(args[0]),
				DryRun: effectsDryRunFlag,
			})

			return err
		},
	}
	cmd.Flags().BoolVarP(&effectsDryRunFlag, "dry-run", "n", false, "print a unified diff instead of writing files")

	return cmd
}

func init() {
	rootCmd.AddCommand(effectsCmd)
}
