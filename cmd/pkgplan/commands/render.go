package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"go.trai.ch/pkgplan/internal/core/domain"
	"go.trai.ch/pkgplan/internal/ui/output"
	"go.trai.ch/pkgplan/internal/ui/style"
)

func newRenderer(w io.Writer) *lipgloss.Renderer {
	r := lipgloss.NewRenderer(w)
	r.SetColorProfile(output.ColorProfile(w))
	return r
}

func renderText(w io.Writer, res *domain.Resolution) error {
	styles := style.NewStyles(newRenderer(w))
	var b strings.Builder

	if !res.IsValidated() {
		b.WriteString(styles.Failure.Render(style.Cross+" "+res.Explanation) + "\n")
		_, err := io.WriteString(w, b.String())
		return err
	}

	title := "Dependency resolution"
	if !res.IsOptimal() {
		title += " (solution might not be optimal)"
	}
	b.WriteString(styles.Heading.Render(title) + "\n")

	section := func(name string, part map[domain.PackageID]domain.Version, icon string, st lipgloss.Style) {
		if len(part) == 0 {
			return
		}
		fmt.Fprintf(&b, "  %s:\n", name)
		for _, id := range domain.SortedIDs(part) {
			line := fmt.Sprintf("%s %s %s", icon, id, part[id])
			if prev, ok := res.PreviousVersions[id]; ok {
				line = fmt.Sprintf("%s %s %s -> %s", icon, id, prev, part[id])
			}
			b.WriteString("    " + st.Render(line) + "\n")
		}
	}
	section("Packages to download", res.NewDownloads, style.Plus, styles.Added)
	section("Local packages to install", res.LocalInstalls, style.Plus, styles.Added)
	section("Local packages to upgrade", res.Upgrades, style.Arrow, styles.Changed)
	section("Local packages to remove", res.Removals, style.Minus, styles.Removed)
	section("Unchanged packages", res.Unchanged, style.Dot, styles.Unchanged)

	if res.IsEmpty() {
		b.WriteString("  " + styles.Unchanged.Render(style.Check+" Nothing to do.") + "\n")
	}
	if len(res.InstallOrder) > 0 {
		fmt.Fprintf(&b, "  Install order: %s\n", joinIDs(res.InstallOrder))
	}
	if len(res.RemoveOrder) > 0 {
		fmt.Fprintf(&b, "  Remove order: %s\n", joinIDs(res.RemoveOrder))
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func joinIDs(ids []domain.PackageID) string {
	names := make([]string, len(ids))
	for i, id := range ids {
		names[i] = id.String()
	}
	return strings.Join(names, ", ")
}

// resolutionJSON is the machine readable form of a resolution.
type resolutionJSON struct {
	Validated        bool              `json:"validated"`
	Optimal          bool              `json:"optimal"`
	NewDownloads     map[string]string `json:"newDownloads"`
	LocalInstalls    map[string]string `json:"localInstalls"`
	Upgrades         map[string]string `json:"upgrades"`
	Removals         map[string]string `json:"removals"`
	Unchanged        map[string]string `json:"unchanged"`
	PreviousVersions map[string]string `json:"previousVersions,omitempty"`
	InstallOrder     []string          `json:"installOrder"`
	RemoveOrder      []string          `json:"removeOrder"`
	ConflictingGoals []string          `json:"conflictingGoals,omitempty"`
	Explanation      string            `json:"explanation,omitempty"`
}

func renderJSON(w io.Writer, res *domain.Resolution) error {
	out := resolutionJSON{
		Validated:     res.IsValidated(),
		Optimal:       res.IsOptimal(),
		NewDownloads:  versionMap(res.NewDownloads),
		LocalInstalls: versionMap(res.LocalInstalls),
		Upgrades:      versionMap(res.Upgrades),
		Removals:      versionMap(res.Removals),
		Unchanged:     versionMap(res.Unchanged),
		InstallOrder:  idList(res.InstallOrder),
		RemoveOrder:   idList(res.RemoveOrder),
		Explanation:   res.Explanation,
	}
	if len(res.PreviousVersions) > 0 {
		out.PreviousVersions = versionMap(res.PreviousVersions)
	}
	for _, g := range res.ConflictingGoals {
		out.ConflictingGoals = append(out.ConflictingGoals, g.String())
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func versionMap(part map[domain.PackageID]domain.Version) map[string]string {
	out := make(map[string]string, len(part))
	for id, v := range part {
		out[id.String()] = v.String()
	}
	return out
}

func idList(ids []domain.PackageID) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = id.String()
	}
	return out
}
