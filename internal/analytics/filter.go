package analytics

import (
	"strings"
	"time"

	"github.com/theirongolddev/runway/internal/model"
)

// FilterByDateRange returns transactions with from <= date <= to. A zero
// bound leaves that side open.
func FilterByDateRange(txs []model.Transaction, from, to time.Time) []model.Transaction {
	if from.IsZero() && to.IsZero() {
		return txs
	}
	var result []model.Transaction
	for _, tx := range txs {
		if !from.IsZero() && tx.Date.Before(from) {
			continue
		}
		if !to.IsZero() && tx.Date.After(to) {
			continue
		}
		result = append(result, tx)
	}
	return result
}

// FilterByCategories keeps transactions whose category matches any of the
// given labels exactly.
func FilterByCategories(txs []model.Transaction, categories []string) []model.Transaction {
	if len(categories) == 0 {
		return txs
	}
	wanted := make(map[string]struct{}, len(categories))
	for _, c := range categories {
		wanted[c] = struct{}{}
	}
	var result []model.Transaction
	for _, tx := range txs {
		if _, ok := wanted[tx.Category]; ok {
			result = append(result, tx)
		}
	}
	return result
}

// FilterByText keeps transactions whose description contains the query
// (case-insensitive substring).
func FilterByText(txs []model.Transaction, query string) []model.Transaction {
	if query == "" {
		return txs
	}
	var result []model.Transaction
	for _, tx := range txs {
		if containsIgnoreCase(tx.Description, query) {
			result = append(result, tx)
		}
	}
	return result
}

// FilterByAccount keeps transactions whose account label contains the query
// (case-insensitive substring).
func FilterByAccount(txs []model.Transaction, account string) []model.Transaction {
	if account == "" {
		return txs
	}
	var result []model.Transaction
	for _, tx := range txs {
		if containsIgnoreCase(tx.Account, account) {
			result = append(result, tx)
		}
	}
	return result
}

func containsIgnoreCase(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
