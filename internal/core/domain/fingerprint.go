package domain

import (
	"strconv"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// Fingerprint returns a deterministic digest of everything the solver reads from p.
// Two problems with the same fingerprint have the same optimal solutions.
func (p *Problem) Fingerprint() string {
	h := xxhash.New()
	var b strings.Builder

	for _, id := range p.Universe.IDs() {
		for _, d := range p.Universe.Versions(id) {
			b.WriteString("d:")
			b.WriteString(d.Key())
			for _, c := range d.Dependencies {
				b.WriteString("|+")
				b.WriteString(c.String())
			}
			for _, c := range d.Conflicts {
				b.WriteString("|!")
				b.WriteString(c.String())
			}
			b.WriteString("|")
			b.WriteString(strings.Join(d.Platforms, ","))
			b.WriteString("|")
			b.WriteString(strconv.FormatBool(d.IsSnapshot()))
			b.WriteString(";")
		}
	}
	for _, g := range p.Hard {
		writeGoal(&b, g)
	}
	for _, g := range p.Soft {
		writeGoal(&b, g)
	}
	for _, id := range SortedIDs(p.Installed) {
		b.WriteString("i:")
		b.WriteString(FormatToken(id, p.Installed[id]))
		b.WriteString(";")
	}

	_, _ = h.WriteString(b.String())
	return strconv.FormatUint(h.Sum64(), 16)
}

func writeGoal(b *strings.Builder, g Goal) {
	b.WriteString("g:")
	b.WriteString(g.Kind.String())
	b.WriteString("|")
	b.WriteString(g.Package.String())
	b.WriteString("|")
	b.WriteString(g.Range.String())
	b.WriteString("|")
	b.WriteString(g.Version.String())
	b.WriteString(";")
}
