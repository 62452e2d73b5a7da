package components

import (
	"strings"

	"github.com/theirongolddev/runway/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// Sparkline renders a unicode sparkline. Values are normalized between the
// series min and max so balance curves that dip below zero still render.
func Sparkline(values []float64, color lipgloss.Color) string {
	if len(values) == 0 {
		return ""
	}

	blocks := []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

	low, high := values[0], values[0]
	for _, v := range values[1:] {
		if v < low {
			low = v
		}
		if v > high {
			high = v
		}
	}
	span := high - low
	if span == 0 {
		span = 1
	}

	style := lipgloss.NewStyle().Foreground(color)

	var buf strings.Builder
	buf.Grow(len(values) * 4) // UTF-8 block chars are up to 3 bytes
	for _, v := range values {
		idx := int((v - low) / span * float64(len(blocks)-1))
		if idx >= len(blocks) {
			idx = len(blocks) - 1
		}
		if idx < 0 {
			idx = 0
		}
		buf.WriteRune(blocks[idx])
	}

	return style.Render(buf.String())
}

// HBarRow is one labeled entry in a horizontal bar chart.
type HBarRow struct {
	Label  string
	Value  float64
	Legend string // rendered after the bar, e.g. the formatted amount
}

// HBarChart renders signed values as horizontal bars: positive bars grow
// green to the right, negative bars red. width is the total chart width.
func HBarChart(rows []HBarRow, width int) string {
	if len(rows) == 0 {
		return ""
	}
	t := theme.Active

	labelW := 0
	legendW := 0
	maxAbs := 0.0
	for _, r := range rows {
		if w := lipgloss.Width(r.Label); w > labelW {
			labelW = w
		}
		if w := lipgloss.Width(r.Legend); w > legendW {
			legendW = w
		}
		abs := r.Value
		if abs < 0 {
			abs = -abs
		}
		if abs > maxAbs {
			maxAbs = abs
		}
	}
	if maxAbs == 0 {
		maxAbs = 1
	}

	barW := width - labelW - legendW - 4
	if barW < 5 {
		barW = 5
	}

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	legendStyle := lipgloss.NewStyle().Foreground(t.TextDim)
	posStyle := lipgloss.NewStyle().Foreground(t.Green)
	negStyle := lipgloss.NewStyle().Foreground(t.Red)

	var b strings.Builder
	for i, r := range rows {
		if i > 0 {
			b.WriteString("\n")
		}

		abs := r.Value
		style := posStyle
		if abs < 0 {
			abs = -abs
			style = negStyle
		}
		n := int(abs / maxAbs * float64(barW))
		if n == 0 && r.Value != 0 {
			n = 1
		}

		pad := labelW - lipgloss.Width(r.Label)
		b.WriteString(labelStyle.Render(r.Label))
		b.WriteString(strings.Repeat(" ", pad+1))
		b.WriteString(style.Render(strings.Repeat("█", n)))
		b.WriteString(strings.Repeat(" ", barW-n+1))
		b.WriteString(legendStyle.Render(r.Legend))
	}
	return b.String()
}
