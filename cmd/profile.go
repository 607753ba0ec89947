package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/hooklens/internal/domain"
	m "github.com/mouse-blink/hooklens/internal/model"
)

var profileDryRunFlag bool
var profileSelectFlags []string
var profileAllFlag bool
var profileIncludeLocalFlag bool
var profileTreeOnlyFlag bool
var profileOutputFlag string

// profileCmd represents the profile command.
var profileCmd = newProfileCmd()

func newProfileCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile <path>",
		Short: "Show the component tree and add Profiler wrappers",
		Long: `Scan every component, print the tree of components and the imported
components they render, then wrap the JSX returned by the chosen components
in a <Profiler> that logs each commit. Components are chosen with --select,
--all, or interactively on a terminal.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := workflow.Profile(cmd.Context(), domain.ProfileArgs{
				RewriteArgs: domain.RewriteArgs{
					Root:   m.Path(args[0]),
					DryRun: profileDryRunFlag,
				},
				Select:       profileSelectFlags,
				All:          profileAllFlag,
				IncludeLocal: profileIncludeLocalFlag,
				TreeOnly:     profileTreeOnlyFlag,
				Output:       m.Path(profileOutputFlag),
			})

			return err
		},
	}
	cmd.Flags().BoolVarP(&profileDryRunFlag, "dry-run", "n", false, "print a unified diff instead of writing files")
	cmd.Flags().StringSliceVarP(&profileSelectFlags, "select", "s", nil, "components to wrap, comma separated")
	cmd.Flags().BoolVarP(&profileAllFlag, "all", "a", false, "wrap every component")
	cmd.Flags().BoolVar(&profileIncludeLocalFlag, "include-local", false, "count components declared in the same file as children")
	cmd.Flags().BoolVar(&profileTreeOnlyFlag, "tree-only", false, "print the tree and stop")
	cmd.Flags().StringVarP(&profileOutputFlag, "output", "o", "", "also save the components as JSON to this file")
	cmd.MarkFlagsMutuallyExclusive("select", "all", "tree-only")

	return cmd
}

func init() {
	rootCmd.AddCommand(profileCmd)
}
