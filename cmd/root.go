// Package cmd implements the runway CLI commands.
package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/theirongolddev/runway/internal/config"
	"github.com/theirongolddev/runway/internal/model"
	"github.com/theirongolddev/runway/internal/store"

	"github.com/spf13/cobra"
)

var (
	flagDB    string
	flagToday string
	flagQuiet bool
)

var rootCmd = &cobra.Command{
	Use:   "runway",
	Short: "Treasury ledger and liquidity dashboard",
	Long:  "Track signed cash movements and derive balance, net flow, burn rate, and runway.",
	RunE:  runDashboard,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagDB, "db", "", "Ledger database path (default: config, then XDG data dir)")
	rootCmd.PersistentFlags().StringVar(&flagToday, "today", "", "Override the reference date (YYYY-MM-DD)")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Suppress informational output")
}

// ledgerData is everything one reporting pass needs: the snapshot, the
// initial balance, the config, and a single captured "today".
type ledgerData struct {
	Snapshot       []model.Transaction
	InitialBalance float64
	Config         config.Config
	Today          time.Time
}

// openStore resolves the ledger path and opens the database.
func openStore() (*store.Store, config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, cfg, err
	}
	s, err := store.Open(config.LedgerPath(flagDB, cfg))
	if err != nil {
		return nil, cfg, err
	}
	return s, cfg, nil
}

// loadLedger is the shared data loading path used by the reporting commands.
// The snapshot and "today" are captured once so every component of a report
// sees the same data and the same reference date.
func loadLedger() (ledgerData, error) {
	s, cfg, err := openStore()
	if err != nil {
		return ledgerData{}, err
	}
	defer func() { _ = s.Close() }()

	snapshot, err := s.Snapshot()
	if err != nil {
		return ledgerData{}, err
	}
	initial, err := s.InitialBalance()
	if err != nil {
		return ledgerData{}, err
	}
	today, err := resolveToday()
	if err != nil {
		return ledgerData{}, err
	}

	return ledgerData{
		Snapshot:       snapshot,
		InitialBalance: initial,
		Config:         cfg,
		Today:          today,
	}, nil
}

// resolveToday returns the reference date: the --today override if given,
// otherwise the current local date.
func resolveToday() (time.Time, error) {
	if flagToday == "" {
		return model.Day(time.Now()), nil
	}
	d, err := time.Parse(model.DateLayout, flagToday)
	if err != nil {
		return time.Time{}, fmt.Errorf("bad --today value %q (want YYYY-MM-DD): %w", flagToday, err)
	}
	return d, nil
}

func parseDateFlag(name, value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}
	d, err := time.Parse(model.DateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("bad --%s value %q (want YYYY-MM-DD): %w", name, value, err)
	}
	return d, nil
}

func infof(format string, args ...any) {
	if flagQuiet {
		return
	}
	fmt.Fprintf(os.Stderr, format, args...)
}
