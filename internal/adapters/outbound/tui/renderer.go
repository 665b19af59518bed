package tui

import (
	"fmt"
	"strings"

	"github.com/abdidvp/taxkraft/internal/domain"
	"github.com/charmbracelet/lipgloss"
	"github.com/fatih/camelcase"
)

// ── Ledger palette ──
var (
	accent  = lipgloss.Color("#D97706") // amber
	fg      = lipgloss.Color("#E8E6E3") // warm light gray
	dim     = lipgloss.Color("#6B7280") // muted gray
	faint   = lipgloss.Color("#3F3F46") // very dim
	success = lipgloss.Color("#22C55E") // green
	danger  = lipgloss.Color("#EF4444") // red
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accent).
			Align(lipgloss.Center)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(1, 4).
			Align(lipgloss.Center).
			Width(48)

	dimStyle      = lipgloss.NewStyle().Foreground(dim)
	faintStyle    = lipgloss.NewStyle().Foreground(faint)
	passStyle     = lipgloss.NewStyle().Foreground(success)
	failStyle     = lipgloss.NewStyle().Foreground(danger)
	amountStyle   = lipgloss.NewStyle().Bold(true).Foreground(success)
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(fg)
	nameStyle     = lipgloss.NewStyle().Bold(true).Foreground(fg)
	separatorLine = faintStyle.Render(strings.Repeat("─", 50))
)

// Label turns a strategy identifier into a display name:
// "USTaxStrategy" -> "US Tax Strategy". Names that already carry
// separators are returned unchanged.
func Label(name string) string {
	if name == "" || strings.ContainsAny(name, " -_.") {
		return name
	}
	return strings.Join(camelcase.Split(name), " ")
}

func RenderReceipt(r *domain.Receipt) string {
	var b strings.Builder

	title := headerStyle.Render("taxkraft")
	subtitle := dimStyle.Render("Tax Receipt")
	amount := amountStyle.Render(r.Tax.String())

	b.WriteString(boxStyle.Render(title + "\n" + subtitle + "\n\n" + amount))
	b.WriteString("\n\n")

	writeField(&b, "Country", r.Country)
	writeField(&b, "Strategy", Label(r.Strategy))
	if r.Revision != "" {
		writeField(&b, "Revision", shortHash(r.Revision))
	}
	if r.Timestamp != "" {
		writeField(&b, "Time", r.Timestamp)
	}
	if r.ID != "" {
		writeField(&b, "Receipt", faintStyle.Render(r.ID))
	}
	b.WriteString("\n")
	return b.String()
}

// RenderUnresolved explains why an order could not be taxed.
func RenderUnresolved(country string, err error) string {
	var b strings.Builder
	b.WriteString("\n")
	fmt.Fprintf(&b, "  %s  %s\n", failStyle.Render("✗"), titleStyle.Render(fmt.Sprintf("No tax strategy for %q", country)))
	fmt.Fprintf(&b, "     %s\n\n", dimStyle.Render(err.Error()))
	return b.String()
}

func RenderStrategies(infos []domain.StrategyInfo) string {
	if len(infos) == 0 {
		return "  " + dimStyle.Render("No strategies registered.") + "\n"
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString("  " + titleStyle.Render("Tax Strategies") + "  " + dimStyle.Render("(first match wins)") + "\n")
	b.WriteString("  " + separatorLine + "\n\n")

	for _, info := range infos {
		renderStrategyLine(&b, info)
	}
	b.WriteString("\n")
	return b.String()
}

func RenderResolution(country string, info *domain.StrategyInfo) string {
	var b strings.Builder
	b.WriteString("\n")
	fmt.Fprintf(&b, "  %s  %s %s\n\n",
		passStyle.Render("✓"),
		titleStyle.Render(country),
		dimStyle.Render("resolves to"),
	)
	renderStrategyLine(&b, *info)
	b.WriteString("\n")
	return b.String()
}

func RenderHistory(receipts []domain.Receipt) string {
	if len(receipts) == 0 {
		return "  " + dimStyle.Render("No receipts recorded.") + "\n"
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString("  " + titleStyle.Render("Receipt Ledger") + "\n")
	b.WriteString("  " + separatorLine + "\n\n")

	for _, r := range receipts {
		hash := shortHash(r.Revision)
		if hash == "" {
			hash = "·······"
		}
		day := r.Timestamp
		if len(day) > 10 {
			day = day[:10]
		}

		fmt.Fprintf(&b, "  %s  %s  %s  %s  %s\n",
			dimStyle.Render(padRight(day, 10)),
			faintStyle.Render(hash),
			nameStyle.Render(padRight(r.Country, 4)),
			amountStyle.Render(padLeft(r.Tax.String(), 8)),
			dimStyle.Render(Label(r.Strategy)),
		)
	}

	b.WriteString("\n")
	fmt.Fprintf(&b, "  %s %s  %s\n",
		titleStyle.Render("Total"),
		dimStyle.Render(fmt.Sprintf("(%d receipts)", len(receipts))),
		amountStyle.Render(domain.TotalTax(receipts).String()),
	)
	return b.String()
}

func renderStrategyLine(b *strings.Builder, info domain.StrategyInfo) {
	countries := strings.Join(info.Countries, ", ")
	if countries == "" {
		countries = "-"
	}
	fmt.Fprintf(b, "  %s %s  %s  %s\n",
		faintStyle.Render(fmt.Sprintf("%2d.", info.Position)),
		nameStyle.Render(padRight(Label(info.Name), 22)),
		dimStyle.Render(padRight(countries, 12)),
		amountStyle.Render(info.Amount.String()),
	)
}

func writeField(b *strings.Builder, name, value string) {
	fmt.Fprintf(b, "  %s %s\n", dimStyle.Render(padRight(name, 10)), value)
}

func shortHash(hash string) string {
	if len(hash) > 7 {
		return hash[:7]
	}
	return hash
}

func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}

func padLeft(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return strings.Repeat(" ", width-len(s)) + s
}
