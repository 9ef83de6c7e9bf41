// Package commands implements the CLI commands for predex.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/predex/internal/app"
	"go.trai.ch/predex/internal/build"
)

// CLI represents the command line interface for predex.
type CLI struct {
	app        Application
	rootCmd    *cobra.Command
	setJSONLog func(enable bool)
}

// Application represents the application logic interface.
type Application interface {
	Build(ctx context.Context, opts app.BuildOptions) error
	Plan(ctx context.Context, w io.Writer) error
	Clean(ctx context.Context, opts app.CleanOptions) error
}

// Option configures a CLI.
type Option func(*CLI)

// WithJSONLogSwitch registers the function called with the value of the
// --json-logs flag before any command runs. It is not called when the flag
// is absent.
func WithJSONLogSwitch(fn func(enable bool)) Option {
	return func(c *CLI) {
		c.setJSONLog = fn
	}
}

// New creates a new CLI instance with the given app.
func New(a Application, opts ...Option) *CLI {
	rootCmd := &cobra.Command{
		Use:           "predex",
		Short:         "Pre-dex compiled Java libraries for incremental Android builds",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	rootCmd.PersistentFlags().Bool("json-logs", false, "Write log messages as JSON")

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}
	for _, opt := range opts {
		opt(c)
	}

	rootCmd.PersistentPreRun = func(cmd *cobra.Command, _ []string) {
		// Without the flag the logger keeps the format it was built with.
		if c.setJSONLog == nil || !cmd.Flags().Changed("json-logs") {
			return
		}
		jsonLogs, _ := cmd.Flags().GetBool("json-logs")
		c.setJSONLog(jsonLogs)
	}

	rootCmd.AddCommand(c.newBuildCmd())
	rootCmd.AddCommand(c.newPlanCmd())
	rootCmd.AddCommand(c.newCleanCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}
