package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/hooklens/internal/domain"
	m "github.com/mouse-blink/hooklens/internal/model"
)

var settersDryRunFlag bool

// settersCmd represents the log-setters command.
var settersCmd = newSettersCmd()

func newSettersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "log-setters <path>",
		Short: "Log every useState setter call",
		Long: `Insert a console.log before every call to a setter destructured from
useState, naming the component, the setter and the argument source.
Running it again adds nothing.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := workflow.LogSetters(cmd.Context(), domain.RewriteArgs{
				Root:   m.Path(args[0]),
				DryRun: settersDryRunFlag,
			})

			return err
		},
	}
	cmd.Flags().BoolVarP(&settersDryRunFlag, "dry-run", "n", false, "print a unified diff instead of writing files")

	return cmd
}

func init() {
	rootCmd.AddCommand(settersCmd)
}
