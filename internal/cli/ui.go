package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/stocktutor/stocktutor/internal/symbols"
)

// UI styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#10B981")).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#10B981")).
			Padding(0, 2)

	warnStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#F59E0B"))

	hintStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#9CA3AF"))

	metaStyle = lipgloss.NewStyle().
			Faint(true).
			Foreground(lipgloss.Color("#94A3B8"))

	errStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#EF4444"))

	fallbackStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("#F59E0B")).
			Padding(0, 1)

	marketHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("#3B82F6"))
)

// renderAnswer renders the model's markdown answer for the terminal,
// falling back to the raw text when rendering fails.
func renderAnswer(markdown string) string {
	out, err := glamour.Render(markdown, "dark")
	if err != nil {
		return markdown
	}
	return strings.TrimRight(out, "\n")
}

// renderCompanies lays out the two market groups side by side, rank
// ordered, fifty entries each.
func renderCompanies() string {
	groups := symbols.Grouped()
	columns := make([]string, 0, len(groups))
	for _, g := range groups {
		var b strings.Builder
		b.WriteString(marketHeaderStyle.Render(fmt.Sprintf("%s (%d)", g.Market, len(g.Companies))))
		b.WriteString("\n")
		for _, c := range g.Companies {
			fmt.Fprintf(&b, "%3d. %-14s %s\n", c.Rank, c.Ticker, c.Name)
		}
		columns = append(columns, lipgloss.NewStyle().PaddingRight(4).Render(b.String()))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, columns...)
}
