package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/pkgplan/internal/app"
	"go.trai.ch/pkgplan/internal/core/domain"
)

func (c *CLI) newResolveCmd() *cobra.Command {
	var (
		opts   app.ResolveOptions
		asJSON bool
	)
	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Compute the plan for a set of install, remove and upgrade requests",
		Example: "  pkgplan resolve --install pkg-cmf-5.5.0 --platform cap-5.5\n" +
			"  pkgplan resolve --remove pkg-dm --upgrade pkg-browser",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts.Options = c.global
			res, err := c.app.Resolve(cmd.Context(), opts)
			if err != nil {
				return err
			}
			return c.report(cmd, res, asJSON)
		},
	}
	flags := cmd.Flags()
	flags.StringArrayVarP(&opts.Install, "install", "i", nil, "Package to install, as NAME or NAME-VERSION (repeatable)")
	flags.StringArrayVarP(&opts.Remove, "remove", "r", nil, "Package to remove, as NAME or NAME-VERSION (repeatable)")
	flags.StringArrayVarP(&opts.Upgrade, "upgrade", "u", nil, "Package to upgrade, as NAME or NAME-VERSION (repeatable)")
	flags.StringVarP(&opts.Platform, "platform", "p", "", "Target platform, overrides the settings file")
	flags.BoolVar(&opts.Snapshot, "snapshot", false, "Allow snapshot versions")
	flags.BoolVar(&opts.NoKeep, "no-keep", false, "Remove installed packages the plan does not need")
	flags.StringVar(&opts.Strategy, "strategy", "", "Solver strategy: "+string(domain.StrategyExact)+" or "+string(domain.StrategyGreedy))
	flags.DurationVar(&opts.Timeout, "timeout", 0, "Search time limit, overrides the settings file")
	flags.BoolVar(&opts.NoCache, "no-cache", false, "Bypass the solution cache")
	flags.BoolVar(&asJSON, "json", false, "Print the plan as JSON")
	return cmd
}

func (c *CLI) newPlanCmd() *cobra.Command {
	var (
		opts   app.PlanOptions
		asJSON bool
	)
	cmd := &cobra.Command{
		Use:   "plan TOKEN",
		Short: "Install a package, or upgrade it when a version is already available locally",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Options = c.global
			res, err := c.app.Plan(cmd.Context(), args[0], opts)
			if err != nil {
				return err
			}
			return c.report(cmd, res, asJSON)
		},
	}
	cmd.Flags().StringVarP(&opts.Platform, "platform", "p", "", "Target platform, overrides the settings file")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the plan as JSON")
	return cmd
}

// report prints res and returns its unsatisfiable cause, if any.
func (c *CLI) report(cmd *cobra.Command, res *domain.Resolution, asJSON bool) error {
	var err error
	if asJSON {
		err = renderJSON(cmd.OutOrStdout(), res)
	} else {
		err = renderText(cmd.OutOrStdout(), res)
	}
	if err != nil {
		return err
	}
	return res.Err()
}
