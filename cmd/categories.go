package cmd

import (
	"fmt"

	"github.com/theirongolddev/runway/internal/analytics"
	"github.com/theirongolddev/runway/internal/cli"

	"github.com/spf13/cobra"
)

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "Net amount per category, cost centers first",
	RunE:  runCategories,
}

func init() {
	rootCmd.AddCommand(categoriesCmd)
}

func runCategories(_ *cobra.Command, _ []string) error {
	data, err := loadLedger()
	if err != nil {
		return err
	}

	breakdown, err := analytics.CategoryBreakdown(data.Snapshot)
	if err != nil {
		return err
	}
	if len(breakdown) == 0 {
		fmt.Println("\n  No transactions yet.")
		return nil
	}
	cur := data.Config.Display.Currency

	rows := make([][]string, 0, len(breakdown))
	for _, c := range breakdown {
		rows = append(rows, []string{
			c.Category,
			cli.Amount(cli.FormatSignedMoney(c.Net, cur), c.Net),
		})
	}

	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "Categories (net)",
		Headers: []string{"Category", "Net"},
		Rows:    rows,
	}))
	return nil
}
