// Package tui provides the interactive Bubble Tea dashboard for runway.
package tui

import (
	"fmt"
	"time"

	"github.com/theirongolddev/runway/internal/analytics"
	"github.com/theirongolddev/runway/internal/config"
	"github.com/theirongolddev/runway/internal/model"
	"github.com/theirongolddev/runway/internal/store"
	"github.com/theirongolddev/runway/internal/tui/components"
	"github.com/theirongolddev/runway/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// dataLoadedMsg is sent when the ledger snapshot has been read.
type dataLoadedMsg struct {
	snapshot []model.Transaction
	initial  float64
	err      error
}

// balanceSavedMsg is sent after writing a new initial balance.
type balanceSavedMsg struct {
	err error
}

// App is the root Bubble Tea model.
type App struct {
	ledgerPath string
	cfg        config.Config
	today      time.Time

	// Data
	snapshot []model.Transaction
	initial  float64
	report   model.Report
	loaded   bool
	loadErr  error

	// UI state
	width     int
	height    int
	activeTab int

	// Per-tab state
	txCursor int
	settings settingsState
}

const minTerminalWidth = 60

// NewApp creates the TUI model. "today" is captured once by the caller so
// every recompute during the session reports against the same date.
func NewApp(ledgerPath string, cfg config.Config, today time.Time) App {
	return App{
		ledgerPath: ledgerPath,
		cfg:        cfg,
		today:      today,
		settings:   newSettingsState(),
	}
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return loadDataCmd(a.ledgerPath)
}

func loadDataCmd(path string) tea.Cmd {
	return func() tea.Msg {
		s, err := store.Open(path)
		if err != nil {
			return dataLoadedMsg{err: err}
		}
		defer func() { _ = s.Close() }()

		snapshot, err := s.Snapshot()
		if err != nil {
			return dataLoadedMsg{err: err}
		}
		initial, err := s.InitialBalance()
		if err != nil {
			return dataLoadedMsg{err: err}
		}
		return dataLoadedMsg{snapshot: snapshot, initial: initial}
	}
}

func saveBalanceCmd(path string, value float64) tea.Cmd {
	return func() tea.Msg {
		s, err := store.Open(path)
		if err != nil {
			return balanceSavedMsg{err: err}
		}
		defer func() { _ = s.Close() }()
		return balanceSavedMsg{err: s.SetInitialBalance(value)}
	}
}

func (a *App) recompute() {
	report, err := analytics.BuildReport(a.snapshot, a.initial, a.today)
	if err != nil {
		a.loadErr = err
		return
	}
	a.loadErr = nil
	a.report = report

	if a.txCursor >= len(a.snapshot) {
		a.txCursor = len(a.snapshot) - 1
	}
	if a.txCursor < 0 {
		a.txCursor = 0
	}
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case dataLoadedMsg:
		a.loaded = true
		if msg.err != nil {
			a.loadErr = msg.err
			return a, nil
		}
		a.snapshot = msg.snapshot
		a.initial = msg.initial
		a.recompute()
		return a, nil

	case balanceSavedMsg:
		a.settings.editing = false
		a.settings.saveErr = msg.err
		a.settings.saved = msg.err == nil
		if msg.err != nil {
			return a, nil
		}
		return a, loadDataCmd(a.ledgerPath)

	case tea.KeyMsg:
		return a.handleKey(msg)
	}

	return a, nil
}

func (a App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	if key == "ctrl+c" {
		return a, tea.Quit
	}
	if !a.loaded {
		return a, nil
	}

	// Settings editing intercepts everything but ctrl+c
	if a.activeTab == tabSettings && a.settings.editing {
		return a.updateSettingsInput(msg)
	}

	switch key {
	case "q":
		return a, tea.Quit

	case "r":
		return a, loadDataCmd(a.ledgerPath)

	case "tab", "l", "right":
		a.activeTab = (a.activeTab + 1) % len(components.Tabs)
		return a, nil

	case "shift+tab", "h", "left":
		a.activeTab = (a.activeTab + len(components.Tabs) - 1) % len(components.Tabs)
		return a, nil

	case "j", "down":
		if a.activeTab == tabTransactions && a.txCursor < len(a.snapshot)-1 {
			a.txCursor++
		}
		return a, nil

	case "k", "up":
		if a.activeTab == tabTransactions && a.txCursor > 0 {
			a.txCursor--
		}
		return a, nil

	case "enter":
		if a.activeTab == tabSettings {
			return a.settingsStartEdit()
		}
		return a, nil
	}

	if len(key) == 1 {
		if idx := components.TabIdxByKey(rune(key[0])); idx >= 0 {
			a.activeTab = idx
		}
	}
	return a, nil
}

// View implements tea.Model.
func (a App) View() string {
	t := theme.Active

	if a.width > 0 && a.width < minTerminalWidth {
		return fmt.Sprintf("\n  Terminal too narrow (%d cols, need %d).\n", a.width, minTerminalWidth)
	}
	if !a.loaded {
		return "\n  Loading ledger...\n"
	}
	if a.loadErr != nil {
		errStyle := lipgloss.NewStyle().Foreground(t.Red)
		return "\n  " + errStyle.Render(a.loadErr.Error()) + "\n\n  [q]uit\n"
	}

	cw := a.width
	if cw <= 0 {
		cw = 100
	}

	header := lipgloss.NewStyle().
		Foreground(t.TextPrimary).
		Bold(true).
		Render(" runway — " + a.today.Format(model.DateLayout))

	var content string
	switch a.activeTab {
	case tabOverview:
		content = a.renderOverviewTab(cw)
	case tabTransactions:
		content = a.renderTransactionsTab(cw)
	case tabMonthly:
		content = a.renderMonthlyTab(cw)
	case tabCategories:
		content = a.renderCategoriesTab(cw)
	case tabSettings:
		content = a.renderSettingsTab(cw)
	}

	right := fmt.Sprintf("%d transactions", len(a.snapshot))
	statusBar := components.RenderStatusBar(cw, right)

	return header + "\n" +
		components.RenderTabBar(a.activeTab) + "\n\n" +
		content + "\n" +
		statusBar
}

// Tab indices, matching components.Tabs order.
const (
	tabOverview = iota
	tabTransactions
	tabMonthly
	tabCategories
	tabSettings
)
