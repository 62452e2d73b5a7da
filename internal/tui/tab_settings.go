package tui

import (
	"fmt"
	"strconv"

	"github.com/theirongolddev/runway/internal/cli"
	"github.com/theirongolddev/runway/internal/tui/components"
	"github.com/theirongolddev/runway/internal/tui/theme"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type settingsState struct {
	editing  bool
	input    textinput.Model
	saved    bool
	saveErr  error
	parseErr error
}

func newSettingsState() settingsState {
	ti := textinput.New()
	ti.Placeholder = "0.00"
	ti.CharLimit = 20
	ti.Width = 20
	return settingsState{input: ti}
}

func (a App) settingsStartEdit() (tea.Model, tea.Cmd) {
	a.settings.editing = true
	a.settings.saved = false
	a.settings.saveErr = nil
	a.settings.parseErr = nil
	a.settings.input.SetValue(strconv.FormatFloat(a.initial, 'f', -1, 64))
	a.settings.input.CursorEnd()
	return a, a.settings.input.Focus()
}

func (a App) updateSettingsInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		a.settings.editing = false
		a.settings.input.Blur()
		return a, nil

	case "enter":
		value, err := strconv.ParseFloat(a.settings.input.Value(), 64)
		if err != nil {
			a.settings.parseErr = fmt.Errorf("not a number: %q", a.settings.input.Value())
			return a, nil
		}
		a.settings.parseErr = nil
		a.settings.input.Blur()
		return a, saveBalanceCmd(a.ledgerPath, value)
	}

	var cmd tea.Cmd
	a.settings.input, cmd = a.settings.input.Update(msg)
	return a, cmd
}

func (a App) renderSettingsTab(width int) string {
	t := theme.Active
	cur := a.cfg.Display.Currency

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim)
	okStyle := lipgloss.NewStyle().Foreground(t.Green)
	errStyle := lipgloss.NewStyle().Foreground(t.Red)

	var balance string
	if a.settings.editing {
		balance = a.settings.input.View()
		if a.settings.parseErr != nil {
			balance += "  " + errStyle.Render(a.settings.parseErr.Error())
		} else {
			balance += "  " + dimStyle.Render("[enter]save [esc]cancel")
		}
	} else {
		balance = valueStyle.Render(cli.FormatMoney(a.initial, cur)) +
			"  " + dimStyle.Render("[enter]edit")
		if a.settings.saved {
			balance += "  " + okStyle.Render("saved")
		}
		if a.settings.saveErr != nil {
			balance += "  " + errStyle.Render(a.settings.saveErr.Error())
		}
	}

	body := labelStyle.Render("Initial balance") + "\n" + balance + "\n\n" +
		labelStyle.Render("Ledger") + "\n" + valueStyle.Render(a.ledgerPath) + "\n\n" +
		labelStyle.Render("Currency") + "\n" + valueStyle.Render(cur) + "\n\n" +
		labelStyle.Render("Theme") + "\n" + valueStyle.Render(theme.Active.Name)

	return components.ContentCard("Settings", body, width)
}
