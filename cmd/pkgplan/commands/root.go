// Package commands implements the CLI commands for pkgplan.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/pkgplan/internal/app"
	"go.trai.ch/pkgplan/internal/build"
	"go.trai.ch/pkgplan/internal/core/domain"
)

// CLI represents the command line interface for pkgplan.
type CLI struct {
	app     Application
	rootCmd *cobra.Command
	global  app.Options
	verbose bool
}

// Application represents the application logic interface.
type Application interface {
	Resolve(ctx context.Context, opts app.ResolveOptions) (*domain.Resolution, error)
	Plan(ctx context.Context, token string, opts app.PlanOptions) (*domain.Resolution, error)
	ListCatalog(ctx context.Context, opts app.CatalogOptions) ([]app.CatalogEntry, error)
	SetVerbose(verbose bool)
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	rootCmd := &cobra.Command{
		Use:           "pkgplan",
		Short:         "Plan package installations, removals and upgrades",
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

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&c.global.ConfigPath, "config", "c", "", "Path to the settings file (default: nearest "+domain.SettingsFileName+")")
	flags.StringVar(&c.global.CatalogPath, "catalog", "", "Catalog manifest file or directory, overrides the settings file")
	flags.BoolVarP(&c.verbose, "verbose", "v", false, "Show debug output")

	rootCmd.PersistentPreRun = func(_ *cobra.Command, _ []string) {
		c.app.SetVerbose(c.verbose)
	}

	rootCmd.AddCommand(c.newResolveCmd())
	rootCmd.AddCommand(c.newPlanCmd())
	rootCmd.AddCommand(c.newCatalogCmd())
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
