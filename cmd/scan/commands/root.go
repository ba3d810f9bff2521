// Package commands implements the CLI commands for scan.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/scan/internal/app"
	"go.trai.ch/scan/internal/build"
	"go.trai.ch/scan/internal/core/domain"
)

// CLI represents the command line interface for scan.
type CLI struct {
	app     Application
	rootCmd *cobra.Command

	dir      string
	jsonLogs bool
}

// Application represents the application logic interface.
type Application interface {
	Generate(ctx context.Context, req app.Request) (*app.Result, error)
	Paths(ctx context.Context, req app.Request) (*app.Paths, error)
	Options(ctx context.Context, req app.Request) (*domain.Options, error)
	SetJSONLogs(enable bool)
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	rootCmd := &cobra.Command{
		Use:           "scan",
		Short:         "Generate the xcodebuild command that runs your tests",
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

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.PersistentFlags().StringVarP(&c.dir, "dir", "C", "", "Run as if scan was started in this directory")
	rootCmd.PersistentFlags().BoolVar(&c.jsonLogs, "json-logs", false, "Write log messages as JSON")
	rootCmd.PersistentPreRun = func(_ *cobra.Command, _ []string) {
		if c.jsonLogs {
			c.app.SetJSONLogs(true)
		}
	}

	rootCmd.AddCommand(c.newCommandCmd())
	rootCmd.AddCommand(c.newPathsCmd())
	rootCmd.AddCommand(c.newConfigCmd())
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

func (c *CLI) request(cmd *cobra.Command) (app.Request, error) {
	overrides, err := overridesFrom(cmd)
	if err != nil {
		return app.Request{}, err
	}
	return app.Request{Dir: c.dir, Overrides: overrides}, nil
}
