package cmd

import (
	"fmt"

	"github.com/theirongolddev/runway/internal/analytics"
	"github.com/theirongolddev/runway/internal/cli"

	"github.com/spf13/cobra"
)

var monthlyCmd = &cobra.Command{
	Use:   "monthly",
	Short: "Monthly inflow/outflow/net table",
	RunE:  runMonthly,
}

func init() {
	rootCmd.AddCommand(monthlyCmd)
}

func runMonthly(_ *cobra.Command, _ []string) error {
	data, err := loadLedger()
	if err != nil {
		return err
	}

	flows, err := analytics.MonthlyFlows(data.Snapshot)
	if err != nil {
		return err
	}
	if len(flows) == 0 {
		fmt.Println("\n  No transactions yet.")
		return nil
	}
	cur := data.Config.Display.Currency

	rows := make([][]string, 0, len(flows))
	for _, mf := range flows {
		rows = append(rows, []string{
			cli.FormatMonth(mf.Month),
			cli.Amount(cli.FormatMoney(mf.Inflow, cur), mf.Inflow),
			cli.Amount(cli.FormatMoney(mf.Outflow, cur), mf.Outflow),
			cli.Amount(cli.FormatSignedMoney(mf.Net, cur), mf.Net),
		})
	}

	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "Monthly flows",
		Headers: []string{"Month", "Inflow", "Outflow", "Net"},
		Rows:    rows,
	}))
	return nil
}
