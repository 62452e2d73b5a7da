package cmd

import (
	"fmt"

	"github.com/theirongolddev/runway/internal/analytics"
	"github.com/theirongolddev/runway/internal/cli"

	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Balance over time, one row per ledger date",
	RunE:  runHistory,
}

func init() {
	rootCmd.AddCommand(historyCmd)
}

func runHistory(_ *cobra.Command, _ []string) error {
	data, err := loadLedger()
	if err != nil {
		return err
	}

	points, err := analytics.BalanceTimeseries(data.Snapshot, data.InitialBalance)
	if err != nil {
		return err
	}
	if len(points) == 0 {
		fmt.Println("\n  No transactions yet.")
		return nil
	}
	cur := data.Config.Display.Currency

	values := make([]float64, len(points))
	rows := make([][]string, 0, len(points))
	for i, p := range points {
		values[i] = p.Balance
		rows = append(rows, []string{
			cli.FormatDate(p.Date),
			cli.Amount(cli.FormatMoney(p.Balance, cur), p.Balance),
		})
	}

	fmt.Println()
	fmt.Printf("  %s\n\n", cli.RenderSparkline(values))
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "Balance history",
		Headers: []string{"Date", "Balance"},
		Rows:    rows,
	}))
	return nil
}
