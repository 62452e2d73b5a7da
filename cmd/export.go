package cmd

import (
	"io"
	"os"

	"github.com/theirongolddev/runway/internal/csvio"

	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export [file.csv]",
	Short: "Export the full ledger as CSV (stdout when no file)",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)
}

func runExport(_ *cobra.Command, args []string) error {
	s, _, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()

	snapshot, err := s.Snapshot()
	if err != nil {
		return err
	}

	var w io.Writer = os.Stdout
	if len(args) == 1 {
		f, err := os.Create(args[0])
		if err != nil {
			return err
		}
		defer func() { _ = f.Close() }()
		w = f
	}

	if err := csvio.Export(w, snapshot); err != nil {
		return err
	}
	if len(args) == 1 {
		infof("  Exported %d transactions to %s\n", len(snapshot), args[0])
	}
	return nil
}
