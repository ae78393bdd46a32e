// Package style provides shared UI styling primitives including brand colors
// and icons for consistent visual presentation across the CLI.
package style

import "github.com/charmbracelet/lipgloss"

// Brand Colors.
var (
	Iris   = lipgloss.Color("#8B5CF6")
	Slate  = lipgloss.Color("#667085")
	Green  = lipgloss.Color("#22A06B")
	Red    = lipgloss.Color("#D93025")
	Yellow = lipgloss.Color("#F59E0B")
)

// Icons.
const (
	Check   = "✓"
	Cross   = "✗"
	Warning = "!"
	Plus    = "+"
	Minus   = "-"
	Arrow   = "↑"
	Dot     = "●"
	Circle  = "○"
)

// Styles are the text styles used to render plans.
type Styles struct {
	Heading   lipgloss.Style
	Added     lipgloss.Style
	Removed   lipgloss.Style
	Changed   lipgloss.Style
	Unchanged lipgloss.Style
	Failure   lipgloss.Style
}

// NewStyles creates the plan styles bound to renderer r.
func NewStyles(r *lipgloss.Renderer) Styles {
	return Styles{
		Heading:   r.NewStyle().Bold(true).Foreground(Iris),
		Added:     r.NewStyle().Foreground(Green),
		Removed:   r.NewStyle().Foreground(Red),
		Changed:   r.NewStyle().Foreground(Yellow),
		Unchanged: r.NewStyle().Foreground(Slate),
		Failure:   r.NewStyle().Bold(true).Foreground(Red),
	}
}
