package commands

import (
	"encoding/json"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"go.trai.ch/pkgplan/internal/app"
)

func (c *CLI) newCatalogCmd() *cobra.Command {
	var (
		opts   app.CatalogOptions
		asJSON bool
	)
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "List the packages of the catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts.Options = c.global
			entries, err := c.app.ListCatalog(cmd.Context(), opts)
			if err != nil {
				return err
			}

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(entries)
			}

			renderCatalog(cmd.OutOrStdout(), entries)
			return nil
		},
	}
	cmd.Flags().BoolVar(&opts.InstalledOnly, "installed", false, "List installed packages only")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the catalog as JSON")
	return cmd
}

func renderCatalog(w io.Writer, entries []app.CatalogEntry) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{"Package", "Versions", "Installed", "Local"})
	for _, e := range entries {
		t.AppendRow(table.Row{e.ID, strings.Join(e.Versions, ", "), orDash(e.Installed), orDash(strings.Join(e.Local, ", "))})
	}
	style := table.StyleLight
	style.Options.DrawBorder = false
	t.SetStyle(style)
	t.Render()
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
