package csvio

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/theirongolddev/runway/internal/model"
)

var exportHeader = []string{"id", "t_date", "description", "category", "amount", "account", "created_at"}

// Export writes the full transaction table, one row per transaction, in the
// order given (the store's native (date, id) order).
func Export(w io.Writer, txs []model.Transaction) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(exportHeader); err != nil {
		return err
	}
	for _, tx := range txs {
		created := ""
		if !tx.CreatedAt.IsZero() {
			created = tx.CreatedAt.Format("2006-01-02 15:04:05")
		}
		record := []string{
			strconv.FormatInt(tx.ID, 10),
			tx.Date.Format(model.DateLayout),
			tx.Description,
			tx.Category,
			strconv.FormatFloat(tx.Amount, 'f', -1, 64),
			tx.Account,
			created,
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
