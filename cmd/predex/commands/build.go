package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/predex/internal/app"
)

func (c *CLI) newBuildCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build",
		Short: "Pre-dex every library in the workspace",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			noCache, _ := cmd.Flags().GetBool("no-cache")
			jobs, _ := cmd.Flags().GetInt("jobs")
			outputMode, _ := cmd.Flags().GetString("output-mode")
			ci, _ := cmd.Flags().GetBool("ci")

			if ci {
				outputMode = "linear"
			}

			return c.app.Build(cmd.Context(), app.BuildOptions{
				NoCache:     noCache,
				Parallelism: jobs,
				OutputMode:  outputMode,
			})
		},
	}
	cmd.Flags().BoolP("no-cache", "n", false, "Ignore recorded fingerprints and translate every library")
	cmd.Flags().IntP("jobs", "j", 0, "Maximum number of libraries translated at once (default: number of CPUs)")
	cmd.Flags().StringP("output-mode", "o", "auto", "Output mode: auto, tui, or linear")
	cmd.Flags().Bool("ci", false, "Use linear output mode (shorthand for --output-mode=linear)")
	return cmd
}
