package cmd

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/theirongolddev/runway/internal/analytics"
	"github.com/theirongolddev/runway/internal/cli"

	"github.com/spf13/cobra"
)

var (
	listFrom       string
	listTo         string
	listDays       int
	listCategories []string
	listSearch     string
	listAccount    string
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List transactions, newest first",
	RunE:  runList,
}

func init() {
	listCmd.Flags().StringVar(&listFrom, "from", "", "Earliest date to include (YYYY-MM-DD)")
	listCmd.Flags().StringVar(&listTo, "to", "", "Latest date to include (YYYY-MM-DD)")
	listCmd.Flags().IntVar(&listDays, "days", -1, "Trailing window in days (default from config, 0 = all)")
	listCmd.Flags().StringArrayVarP(&listCategories, "category", "c", nil, "Filter to category (repeatable)")
	listCmd.Flags().StringVarP(&listSearch, "search", "s", "", "Filter by description substring")
	listCmd.Flags().StringVarP(&listAccount, "account", "a", "", "Filter by account")
	rootCmd.AddCommand(listCmd)
}

func runList(_ *cobra.Command, _ []string) error {
	data, err := loadLedger()
	if err != nil {
		return err
	}

	from, err := parseDateFlag("from", listFrom)
	if err != nil {
		return err
	}
	to, err := parseDateFlag("to", listTo)
	if err != nil {
		return err
	}

	// An explicit --from wins over the trailing window.
	days := listDays
	if days < 0 {
		days = data.Config.General.DefaultDays
	}
	if from.IsZero() && days > 0 {
		from = data.Today.AddDate(0, 0, -(days - 1))
	}

	txs := analytics.FilterByDateRange(data.Snapshot, from, to)
	txs = analytics.FilterByCategories(txs, listCategories)
	txs = analytics.FilterByText(txs, listSearch)
	txs = analytics.FilterByAccount(txs, listAccount)

	if len(txs) == 0 {
		fmt.Println("\n  No matching transactions.")
		return nil
	}
	cur := data.Config.Display.Currency

	// Newest first for reading; the snapshot itself stays ascending.
	display := make([]int, len(txs))
	for i := range display {
		display[i] = i
	}
	sort.Slice(display, func(i, j int) bool {
		a, b := txs[display[i]], txs[display[j]]
		if !a.Date.Equal(b.Date) {
			return a.Date.After(b.Date)
		}
		return a.ID > b.ID
	})

	rows := make([][]string, 0, len(txs))
	for _, idx := range display {
		tx := txs[idx]
		rows = append(rows, []string{
			cli.FormatDate(tx.Date),
			strconv.FormatInt(tx.ID, 10),
			tx.Description,
			tx.Category,
			tx.Account,
			cli.Amount(cli.FormatSignedMoney(tx.Amount, cur), tx.Amount),
		})
	}

	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Date", "ID", "Description", "Category", "Account", "Amount"},
		Rows:    rows,
	}))
	infof("  %d of %d transactions\n", len(txs), len(data.Snapshot))
	return nil
}
