package cmd

import (
	"fmt"

	"github.com/theirongolddev/runway/internal/analytics"
	"github.com/theirongolddev/runway/internal/cli"

	"github.com/spf13/cobra"
)

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Full report: KPIs, balance history, monthly flows, categories",
	RunE:  runDashboard,
}

func init() {
	rootCmd.AddCommand(dashboardCmd)
}

func runDashboard(_ *cobra.Command, _ []string) error {
	data, err := loadLedger()
	if err != nil {
		return err
	}

	report, err := analytics.BuildReport(data.Snapshot, data.InitialBalance, data.Today)
	if err != nil {
		return err
	}
	cur := data.Config.Display.Currency

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("TREASURY  %s", cli.FormatDate(report.Today))))
	fmt.Println()

	kpis := report.KPIs
	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Indicator", "Value"},
		Rows: [][]string{
			{"Current balance", cli.Amount(cli.FormatMoney(kpis.CurrentBalance, cur), kpis.CurrentBalance)},
			{"Net 30 days", cli.Amount(cli.FormatSignedMoney(kpis.Net30d, cur), kpis.Net30d)},
			{"Avg daily burn", cli.Amount(cli.FormatSignedMoney(kpis.AvgDailyBurn, cur), kpis.AvgDailyBurn)},
			{"Runway", cli.FormatRunway(kpis.RunwayDays)},
		},
	}))

	if len(report.Timeseries) == 0 {
		fmt.Println("\n  Ledger is empty. Add transactions with `runway add`.")
		return nil
	}

	// Balance curve
	values := make([]float64, len(report.Timeseries))
	for i, p := range report.Timeseries {
		values[i] = p.Balance
	}
	fmt.Println()
	fmt.Printf("  Balance  %s .. %s\n",
		cli.FormatDate(report.Timeseries[0].Date),
		cli.FormatDate(report.Timeseries[len(report.Timeseries)-1].Date))
	fmt.Printf("  %s\n", cli.RenderSparkline(values))

	// Monthly flows
	monthRows := make([][]string, 0, len(report.Monthly))
	for _, mf := range report.Monthly {
		monthRows = append(monthRows, []string{
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
		Rows:    monthRows,
	}))

	// Category breakdown
	catRows := make([][]string, 0, len(report.Categories))
	for _, c := range report.Categories {
		catRows = append(catRows, []string{
			c.Category,
			cli.Amount(cli.FormatSignedMoney(c.Net, cur), c.Net),
		})
	}
	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "Categories (net)",
		Headers: []string{"Category", "Net"},
		Rows:    catRows,
	}))

	return nil
}
