package cmd

import (
	"fmt"
	"os"

	"github.com/theirongolddev/runway/internal/csvio"

	"github.com/spf13/cobra"
)

var importCmd = &cobra.Command{
	Use:   "import <file.csv>",
	Short: "Import transactions from CSV (all-or-nothing)",
	Long: "Import transactions from a CSV file with columns date, description, category,\n" +
		"amount, and optionally account. The whole file is parsed before anything is\n" +
		"written; a bad row aborts the import and the ledger is left untouched.",
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func init() {
	rootCmd.AddCommand(importCmd)
}

func runImport(_ *cobra.Command, args []string) error {
	f, err := os.Open(args[0])
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()

	txs, err := csvio.Parse(f)
	if err != nil {
		return fmt.Errorf("import %s: %w", args[0], err)
	}
	if len(txs) == 0 {
		infof("  Nothing to import.\n")
		return nil
	}

	s, _, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()

	if err := s.InsertBatch(txs); err != nil {
		return fmt.Errorf("import %s: %w", args[0], err)
	}
	infof("  Imported %d transactions.\n", len(txs))
	return nil
}
