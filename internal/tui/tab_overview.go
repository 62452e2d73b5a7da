package tui

import (
	"fmt"

	"github.com/theirongolddev/runway/internal/cli"
	"github.com/theirongolddev/runway/internal/tui/components"
	"github.com/theirongolddev/runway/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func (a App) renderOverviewTab(width int) string {
	t := theme.Active
	cur := a.cfg.Display.Currency

	if len(a.snapshot) == 0 && a.initial == 0 {
		hint := lipgloss.NewStyle().Foreground(t.TextMuted)
		return hint.Render(" Ledger is empty. Add transactions with 'runway add' or import a CSV.")
	}

	k := a.report.KPIs

	balanceColor := t.Green
	if k.CurrentBalance < 0 {
		balanceColor = t.Red
	}
	netColor := t.Green
	if k.Net30d < 0 {
		netColor = t.Red
	}
	burnColor := t.TextPrimary
	if k.AvgDailyBurn < 0 {
		burnColor = t.Red
	}
	runwayColor := t.TextPrimary
	if k.RunwayDays != nil && *k.RunwayDays < 60 {
		runwayColor = t.Yellow
	}

	cards := components.MetricCardRow([]components.Metric{
		{Label: "Balance", Value: cli.FormatMoney(k.CurrentBalance, cur), Color: balanceColor},
		{Label: "Net 30d", Value: cli.FormatSignedMoney(k.Net30d, cur), Color: netColor},
		{Label: "Avg daily", Value: cli.FormatSignedMoney(k.AvgDailyBurn, cur), Sub: "per day", Color: burnColor},
		{Label: "Runway", Value: cli.FormatRunway(k.RunwayDays), Color: runwayColor},
	}, width)

	var sections []string
	sections = append(sections, cards)

	if len(a.report.Timeseries) > 0 {
		inner := components.CardInnerWidth(width)
		values := make([]float64, 0, len(a.report.Timeseries))
		for _, p := range a.report.Timeseries {
			values = append(values, p.Balance)
		}
		if len(values) > inner {
			values = values[len(values)-inner:]
		}
		first := a.report.Timeseries[0].Date
		last := a.report.Timeseries[len(a.report.Timeseries)-1].Date
		body := components.Sparkline(values, t.Accent) + "\n" +
			lipgloss.NewStyle().Foreground(t.TextDim).Render(
				fmt.Sprintf("%s .. %s", cli.FormatDate(first), cli.FormatDate(last)))
		sections = append(sections, components.ContentCard("Balance", body, width))
	}

	if len(a.report.Monthly) > 0 {
		months := a.report.Monthly
		// Last six months keep the overview compact.
		if len(months) > 6 {
			months = months[len(months)-6:]
		}
		rows := make([]components.HBarRow, 0, len(months))
		for _, m := range months {
			rows = append(rows, components.HBarRow{
				Label:  cli.FormatMonth(m.Month),
				Value:  m.Net,
				Legend: cli.FormatSignedMoney(m.Net, cur),
			})
		}
		chart := components.HBarChart(rows, components.CardInnerWidth(width))
		sections = append(sections, components.ContentCard("Monthly net", chart, width))
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}
