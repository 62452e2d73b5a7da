package cmd

import (
	"fmt"
	"strconv"
	"time"

	"github.com/theirongolddev/runway/internal/cli"
	"github.com/theirongolddev/runway/internal/model"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

var (
	addDate        string
	addDescription string
	addCategory    string
	addAmount      string
	addAccount     string
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a transaction (interactive form when no --amount)",
	RunE:  runAdd,
}

func init() {
	addCmd.Flags().StringVar(&addDate, "date", "", "Transaction date (YYYY-MM-DD, default today)")
	addCmd.Flags().StringVarP(&addDescription, "desc", "d", "", "Description")
	addCmd.Flags().StringVarP(&addCategory, "category", "c", "", "Category (default \"Other\")")
	addCmd.Flags().StringVar(&addAmount, "amount", "", "Signed amount: positive = inflow, negative = outflow")
	addCmd.Flags().StringVarP(&addAccount, "account", "a", "", "Account (default \"Cash\")")
	rootCmd.AddCommand(addCmd)
}

func runAdd(_ *cobra.Command, _ []string) error {
	s, cfg, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()

	if addAmount == "" {
		if err := transactionForm("Add transaction", &addDate, &addDescription, &addCategory, &addAmount, &addAccount); err != nil {
			return err
		}
	}

	tx, err := buildTransaction(addDate, addDescription, addCategory, addAmount, addAccount)
	if err != nil {
		return err
	}

	inserted, err := s.Insert(tx)
	if err != nil {
		return err
	}
	infof("  Added transaction %d: %s %s\n",
		inserted.ID, cli.FormatDate(inserted.Date),
		cli.FormatSignedMoney(inserted.Amount, cfg.Display.Currency))
	return nil
}

// transactionForm collects the transaction fields interactively. The bound
// strings keep any values already supplied by flags as prefills.
func transactionForm(title string, date, desc, category, amount, account *string) error {
	if *date == "" {
		*date = time.Now().Format(model.DateLayout)
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title(title).
				Description("Date (YYYY-MM-DD)").
				Value(date).
				Validate(func(s string) error {
					_, err := time.Parse(model.DateLayout, s)
					return err
				}),
			huh.NewInput().
				Description("Description").
				Value(desc),
			huh.NewInput().
				Description("Category").
				Placeholder(model.DefaultCategory).
				Value(category),
			huh.NewInput().
				Description("Amount (positive = inflow, negative = outflow)").
				Value(amount).
				Validate(func(s string) error {
					_, err := strconv.ParseFloat(s, 64)
					return err
				}),
			huh.NewInput().
				Description("Account").
				Placeholder(model.DefaultAccount).
				Value(account),
		),
	)
	return form.Run()
}

func buildTransaction(date, desc, category, amount, account string) (model.Transaction, error) {
	if date == "" {
		date = time.Now().Format(model.DateLayout)
	}
	day, err := time.Parse(model.DateLayout, date)
	if err != nil {
		return model.Transaction{}, fmt.Errorf("bad date %q (want YYYY-MM-DD): %w", date, err)
	}
	value, err := strconv.ParseFloat(amount, 64)
	if err != nil {
		return model.Transaction{}, fmt.Errorf("bad amount %q: %w", amount, err)
	}
	return model.Transaction{
		Date:        day,
		Description: desc,
		Category:    category,
		Amount:      value,
		Account:     account,
	}, nil
}
