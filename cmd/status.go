package cmd

import (
	"fmt"

	"github.com/theirongolddev/runway/internal/analytics"
	"github.com/theirongolddev/runway/internal/cli"

	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "One-line liquidity summary",
	RunE:  runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(_ *cobra.Command, _ []string) error {
	data, err := loadLedger()
	if err != nil {
		return err
	}

	kpis, err := analytics.ComputeKPIs(data.Snapshot, data.InitialBalance, data.Today)
	if err != nil {
		return err
	}
	cur := data.Config.Display.Currency

	fmt.Printf("balance %s | net 30d %s | burn %s/day | runway %s\n",
		cli.FormatMoney(kpis.CurrentBalance, cur),
		cli.FormatSignedMoney(kpis.Net30d, cur),
		cli.FormatSignedMoney(kpis.AvgDailyBurn, cur),
		cli.FormatRunway(kpis.RunwayDays),
	)
	return nil
}
