package cmd

import (
	"fmt"
	"strconv"

	"github.com/theirongolddev/runway/internal/cli"

	"github.com/spf13/cobra"
)

var balanceSet string

var balanceCmd = &cobra.Command{
	Use:   "balance",
	Short: "Show or set the initial balance",
	RunE:  runBalance,
}

func init() {
	balanceCmd.Flags().StringVar(&balanceSet, "set", "", "New initial balance")
	rootCmd.AddCommand(balanceCmd)
}

func runBalance(_ *cobra.Command, _ []string) error {
	s, cfg, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()

	if balanceSet != "" {
		value, err := strconv.ParseFloat(balanceSet, 64)
		if err != nil {
			return fmt.Errorf("bad --set value %q: %w", balanceSet, err)
		}
		if err := s.SetInitialBalance(value); err != nil {
			return err
		}
		infof("  Initial balance set to %s\n", cli.FormatMoney(value, cfg.Display.Currency))
		return nil
	}

	balance, err := s.InitialBalance()
	if err != nil {
		return err
	}
	fmt.Printf("%s\n", cli.FormatMoney(balance, cfg.Display.Currency))
	return nil
}
