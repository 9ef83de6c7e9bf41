package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/predex/internal/app"
)

func (c *CLI) newCleanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clean",
		Short: "Clean the record store and generated dex files",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			output, _ := cmd.Flags().GetBool("output")
			all, _ := cmd.Flags().GetBool("all")

			var opts app.CleanOptions
			switch {
			case all:
				opts.Store = true
				opts.Output = true
			case output:
				opts.Output = true
			default:
				opts.Store = true
			}

			return c.app.Clean(cmd.Context(), opts)
		},
	}

	cmd.Flags().Bool("output", false, "Remove the generated dex files instead of the record store")
	cmd.Flags().BoolP("all", "a", false, "Remove the record store and the generated dex files")

	return cmd
}
