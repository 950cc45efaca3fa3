package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// SummaryRow is one metadata type of a generated descriptor.
type SummaryRow struct {
	Type    string
	Members []string
}

// RenderSummary formats a descriptor overview: one line per type with its
// member count, and the members themselves when verbose is set.
func RenderSummary(title string, rows []SummaryRow, verbose bool) string {
	var b strings.Builder
	b.WriteString(TitleStyle.Render(title))
	b.WriteString("\n")

	if len(rows) == 0 {
		b.WriteString(MemberStyle.Render("no deployable changes"))
		b.WriteString("\n")
		return b.String()
	}

	width := 0
	for _, r := range rows {
		width = max(width, lipgloss.Width(r.Type))
	}

	total := 0
	for _, r := range rows {
		total += len(r.Members)
		name := TypeStyle.Width(width).Render(r.Type)
		count := CountStyle.Width(6).Render(fmt.Sprintf("%d", len(r.Members)))
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, SymbolBullet+" ", name, count))
		b.WriteString("\n")
		if verbose {
			for _, m := range r.Members {
				b.WriteString(MemberStyle.Render(m))
				b.WriteString("\n")
			}
		}
	}

	b.WriteString(SuccessStyle.Render(fmt.Sprintf("%s %d members in %d types", SymbolCheck, total, len(rows))))
	b.WriteString("\n")
	return b.String()
}
