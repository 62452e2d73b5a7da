package cmd

import (
	"strconv"

	"github.com/theirongolddev/runway/internal/cli"
	"github.com/theirongolddev/runway/internal/model"

	"github.com/spf13/cobra"
)

var editCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Edit a transaction by id (interactive form when no flags)",
	Args:  cobra.ExactArgs(1),
	RunE:  runEdit,
}

var (
	editDate        string
	editDescription string
	editCategory    string
	editAmount      string
	editAccount     string
)

func init() {
	editCmd.Flags().StringVar(&editDate, "date", "", "New date (YYYY-MM-DD)")
	editCmd.Flags().StringVarP(&editDescription, "desc", "d", "", "New description")
	editCmd.Flags().StringVarP(&editCategory, "category", "c", "", "New category")
	editCmd.Flags().StringVar(&editAmount, "amount", "", "New signed amount")
	editCmd.Flags().StringVarP(&editAccount, "account", "a", "", "New account")
	rootCmd.AddCommand(editCmd)
}

func runEdit(cmd *cobra.Command, args []string) error {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return err
	}

	s, cfg, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()

	existing, err := s.Get(id)
	if err != nil {
		return err
	}

	// Prefill from the stored row so a partial edit keeps the rest.
	if editDate == "" {
		editDate = existing.Date.Format(model.DateLayout)
	}
	if editDescription == "" {
		editDescription = existing.Description
	}
	if editCategory == "" {
		editCategory = existing.Category
	}
	if editAmount == "" {
		editAmount = strconv.FormatFloat(existing.Amount, 'f', -1, 64)
	}
	if editAccount == "" {
		editAccount = existing.Account
	}

	if cmd.Flags().NFlag() == 0 {
		if err := transactionForm("Edit transaction", &editDate, &editDescription, &editCategory, &editAmount, &editAccount); err != nil {
			return err
		}
	}

	tx, err := buildTransaction(editDate, editDescription, editCategory, editAmount, editAccount)
	if err != nil {
		return err
	}
	tx.ID = id

	if err := s.Update(tx); err != nil {
		return err
	}
	infof("  Updated transaction %d: %s %s\n",
		id, cli.FormatDate(tx.Date),
		cli.FormatSignedMoney(tx.Amount, cfg.Display.Currency))
	return nil
}
