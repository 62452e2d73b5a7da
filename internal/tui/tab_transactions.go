package tui

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/runway/internal/cli"
	"github.com/theirongolddev/runway/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

const txPageSize = 18

func (a App) renderTransactionsTab(width int) string {
	t := theme.Active
	cur := a.cfg.Display.Currency

	if len(a.snapshot) == 0 {
		hint := lipgloss.NewStyle().Foreground(t.TextMuted)
		return hint.Render(" No transactions yet.")
	}

	// Newest first without disturbing the ledger snapshot order.
	total := len(a.snapshot)
	page := txPageSize
	if a.height > 0 && a.height-10 < page {
		page = a.height - 10
	}
	if page < 3 {
		page = 3
	}

	start := a.txCursor - page/2
	if start > total-page {
		start = total - page
	}
	if start < 0 {
		start = 0
	}
	end := start + page
	if end > total {
		end = total
	}

	dateStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	descStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	catStyle := lipgloss.NewStyle().Foreground(t.TextDim)
	posStyle := lipgloss.NewStyle().Foreground(t.Green)
	negStyle := lipgloss.NewStyle().Foreground(t.Red)
	cursorStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)

	descW := width - 46
	if descW < 12 {
		descW = 12
	}

	var b strings.Builder
	for i := start; i < end; i++ {
		// Cursor index counts from the newest entry.
		tx := a.snapshot[total-1-i]

		marker := "  "
		if i == a.txCursor {
			marker = cursorStyle.Render("> ")
		}

		desc := tx.Description
		if len(desc) > descW {
			desc = desc[:descW-1] + "…"
		}

		amtStyle := posStyle
		if tx.Amount < 0 {
			amtStyle = negStyle
		}
		amt := cli.FormatSignedMoney(tx.Amount, cur)

		line := fmt.Sprintf("%s%s  %s%s  %s%s  %s%s",
			marker,
			dateStyle.Render(cli.FormatDate(tx.Date)),
			descStyle.Render(desc),
			strings.Repeat(" ", descW-lipgloss.Width(desc)),
			catStyle.Render(tx.Category),
			strings.Repeat(" ", max(0, 14-lipgloss.Width(tx.Category))),
			strings.Repeat(" ", max(0, 14-lipgloss.Width(amt))),
			amtStyle.Render(amt))

		b.WriteString(line)
		if i < end-1 {
			b.WriteString("\n")
		}
	}

	footer := lipgloss.NewStyle().Foreground(t.TextDim).Render(
		fmt.Sprintf("\n %d-%d of %d  [j/k]scroll", start+1, end, total))

	return b.String() + footer
}
