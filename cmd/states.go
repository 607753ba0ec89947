package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/hooklens/internal/domain"
	m "github.com/mouse-blink/hooklens/internal/model"
)

var statesOutputFlag string

// statesCmd represents the states command.
var statesCmd = newStatesCmd()

func newStatesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "states <path>",
		Short: "Report complex useState initializers",
		Long: `Report useState calls whose initial value is recomputed on every render:
function literals, ternaries, logical expressions, calls, non-empty object
and array literals and binary expressions. Empty literals, booleans, zero,
null and undefined are never reported.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := workflow.States(cmd.Context(), domain.StatesArgs{
				Root:   m.Path(args[0]),
				Output: m.Path(statesOutputFlag),
			})

			return err
		},
	}
	cmd.Flags().StringVarP(&statesOutputFlag, "output", "o", "", "also save the report as JSON to this file")

	return cmd
}

func init() {
	rootCmd.AddCommand(statesCmd)
}
