// Package csvio reads and writes the tabular transaction exchange format.
package csvio

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/theirongolddev/runway/internal/model"
)

// Column names matched case-insensitively in the header row.
var requiredColumns = []string{"date", "description", "category", "amount"}

// dateLayouts accepted for the date column, tried in order.
var dateLayouts = []string{
	model.DateLayout,
	"2006-01-02T15:04:05",
	time.RFC3339,
}

// Parse reads a full CSV file into transactions. The first bad row aborts
// the parse with a row-numbered error, so a caller persisting the result
// commits either the whole file or nothing.
func Parse(r io.Reader) ([]model.Transaction, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("empty file")
	}
	if err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}

	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.ToLower(strings.TrimSpace(name))] = i
	}
	// Exported files carry the store's column name.
	if _, ok := cols["date"]; !ok {
		if i, ok := cols["t_date"]; ok {
			cols["date"] = i
		}
	}
	for _, name := range requiredColumns {
		if _, ok := cols[name]; !ok {
			return nil, fmt.Errorf("missing required column %q (need date, description, category, amount)", name)
		}
	}

	var txs []model.Transaction
	for row := 1; ; row++ {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", row, err)
		}

		tx, err := parseRow(record, cols)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", row, err)
		}
		txs = append(txs, tx)
	}
	return txs, nil
}

func parseRow(record []string, cols map[string]int) (model.Transaction, error) {
	field := func(name string) string {
		i, ok := cols[name]
		if !ok || i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	day, err := parseDate(field("date"))
	if err != nil {
		return model.Transaction{}, err
	}

	amountStr := field("amount")
	amount, err := strconv.ParseFloat(amountStr, 64)
	if err != nil {
		return model.Transaction{}, fmt.Errorf("bad amount %q", amountStr)
	}
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return model.Transaction{}, fmt.Errorf("non-finite amount %q", amountStr)
	}

	category := field("category")
	if category == "" {
		category = model.DefaultCategory
	}
	account := field("account")
	if account == "" {
		account = model.DefaultAccount
	}

	return model.Transaction{
		Date:        day,
		Description: field("description"),
		Category:    category,
		Amount:      amount,
		Account:     account,
	}, nil
}

func parseDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, fmt.Errorf("missing date")
	}
	for _, layout := range dateLayouts {
		if d, err := time.Parse(layout, s); err == nil {
			return model.Day(d), nil
		}
	}
	return time.Time{}, fmt.Errorf("bad date %q (want YYYY-MM-DD)", s)
}
