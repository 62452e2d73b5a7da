package tui

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/runway/internal/cli"
	"github.com/theirongolddev/runway/internal/tui/components"
	"github.com/theirongolddev/runway/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func (a App) renderMonthlyTab(width int) string {
	t := theme.Active
	cur := a.cfg.Display.Currency

	if len(a.report.Monthly) == 0 {
		hint := lipgloss.NewStyle().Foreground(t.TextMuted)
		return hint.Render(" No transactions yet.")
	}

	inner := components.CardInnerWidth(width)

	rows := make([]components.HBarRow, 0, len(a.report.Monthly))
	for _, m := range a.report.Monthly {
		rows = append(rows, components.HBarRow{
			Label:  cli.FormatMonth(m.Month),
			Value:  m.Net,
			Legend: cli.FormatSignedMoney(m.Net, cur),
		})
	}
	chart := components.ContentCard("Net by month", components.HBarChart(rows, inner), width)

	headStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Bold(true)
	monthStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	inStyle := lipgloss.NewStyle().Foreground(t.Green)
	outStyle := lipgloss.NewStyle().Foreground(t.Red)

	var b strings.Builder
	b.WriteString(headStyle.Render(fmt.Sprintf("%-9s %16s %16s %16s", "Month", "Inflow", "Outflow", "Net")))
	for _, m := range a.report.Monthly {
		netStyle := inStyle
		if m.Net < 0 {
			netStyle = outStyle
		}
		b.WriteString("\n")
		b.WriteString(monthStyle.Render(fmt.Sprintf("%-9s", cli.FormatMonth(m.Month))))
		b.WriteString(inStyle.Render(fmt.Sprintf("%16s", cli.FormatMoney(m.Inflow, cur))))
		b.WriteString(outStyle.Render(fmt.Sprintf("%16s", cli.FormatMoney(m.Outflow, cur))))
		b.WriteString(netStyle.Render(fmt.Sprintf("%16s", cli.FormatSignedMoney(m.Net, cur))))
	}
	table := components.ContentCard("Flows", b.String(), width)

	return lipgloss.JoinVertical(lipgloss.Left, chart, table)
}
