package tui

import (
	"github.com/theirongolddev/runway/internal/cli"
	"github.com/theirongolddev/runway/internal/tui/components"
	"github.com/theirongolddev/runway/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func (a App) renderCategoriesTab(width int) string {
	t := theme.Active
	cur := a.cfg.Display.Currency

	if len(a.report.Categories) == 0 {
		hint := lipgloss.NewStyle().Foreground(t.TextMuted)
		return hint.Render(" No transactions yet.")
	}

	// Biggest spenders first in the chart, so the list reads top-down.
	rows := make([]components.HBarRow, 0, len(a.report.Categories))
	for _, c := range a.report.Categories {
		label := c.Category
		if label == "" {
			label = "(none)"
		}
		rows = append(rows, components.HBarRow{
			Label:  label,
			Value:  c.Net,
			Legend: cli.FormatSignedMoney(c.Net, cur),
		})
	}

	chart := components.HBarChart(rows, components.CardInnerWidth(width))
	return components.ContentCard("Net by category", chart, width)
}
