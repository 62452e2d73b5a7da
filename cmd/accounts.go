package cmd

import (
	"fmt"
	"sort"

	"github.com/theirongolddev/runway/internal/cli"

	"github.com/spf13/cobra"
)

var accountsCmd = &cobra.Command{
	Use:   "accounts",
	Short: "Net amount and transaction count per account",
	RunE:  runAccounts,
}

func init() {
	rootCmd.AddCommand(accountsCmd)
}

// Accounts are a display grouping only; the analytics engine never looks at
// them, so the rollup lives here rather than in internal/analytics.
func runAccounts(_ *cobra.Command, _ []string) error {
	data, err := loadLedger()
	if err != nil {
		return err
	}
	if len(data.Snapshot) == 0 {
		fmt.Println("\n  No transactions yet.")
		return nil
	}
	cur := data.Config.Display.Currency

	type accountSummary struct {
		net   float64
		count int
	}
	byAccount := make(map[string]*accountSummary)
	for _, tx := range data.Snapshot {
		as, ok := byAccount[tx.Account]
		if !ok {
			as = &accountSummary{}
			byAccount[tx.Account] = as
		}
		as.net += tx.Amount
		as.count++
	}

	names := make([]string, 0, len(byAccount))
	for name := range byAccount {
		names = append(names, name)
	}
	sort.Strings(names)

	rows := make([][]string, 0, len(names))
	for _, name := range names {
		as := byAccount[name]
		rows = append(rows, []string{
			name,
			cli.FormatNumber(int64(as.count)),
			cli.Amount(cli.FormatSignedMoney(as.net, cur), as.net),
		})
	}

	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "Accounts",
		Headers: []string{"Account", "Transactions", "Net"},
		Rows:    rows,
	}))
	return nil
}
