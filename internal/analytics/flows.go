package analytics

import (
	"sort"
	"time"

	"github.com/theirongolddev/runway/internal/model"
)

// MonthlyFlows buckets the snapshot by calendar month, ascending. Inflow is
// the sum of positive amounts in the month, Outflow the sum of negative
// amounts, Net their total. Months absent from the ledger are omitted.
func MonthlyFlows(snapshot []model.Transaction) ([]model.MonthlyFlow, error) {
	if err := validateSnapshot(snapshot); err != nil {
		return nil, err
	}
	if len(snapshot) == 0 {
		return nil, nil
	}

	byMonth := make(map[time.Time]*model.MonthlyFlow)
	for _, tx := range snapshot {
		month := model.MonthOf(tx.Date)
		mf, ok := byMonth[month]
		if !ok {
			mf = &model.MonthlyFlow{Month: month}
			byMonth[month] = mf
		}
		switch {
		case tx.Amount > 0:
			mf.Inflow += tx.Amount
		case tx.Amount < 0:
			mf.Outflow += tx.Amount
		}
		mf.Net += tx.Amount
	}

	flows := make([]model.MonthlyFlow, 0, len(byMonth))
	for _, mf := range byMonth {
		flows = append(flows, *mf)
	}
	sort.Slice(flows, func(i, j int) bool {
		return flows[i].Month.Before(flows[j].Month)
	})
	return flows, nil
}

// CategoryBreakdown sums net amounts per category label, ordered ascending
// by net so the heaviest cost centers come first. Labels are grouped as-is;
// the ingestion boundary is responsible for defaulting blanks to "Other".
func CategoryBreakdown(snapshot []model.Transaction) ([]model.CategoryNet, error) {
	if err := validateSnapshot(snapshot); err != nil {
		return nil, err
	}
	if len(snapshot) == 0 {
		return nil, nil
	}

	byCategory := make(map[string]float64)
	for _, tx := range snapshot {
		byCategory[tx.Category] += tx.Amount
	}

	breakdown := make([]model.CategoryNet, 0, len(byCategory))
	for category, net := range byCategory {
		breakdown = append(breakdown, model.CategoryNet{Category: category, Net: net})
	}
	sort.Slice(breakdown, func(i, j int) bool {
		if breakdown[i].Net != breakdown[j].Net {
			return breakdown[i].Net < breakdown[j].Net
		}
		return breakdown[i].Category < breakdown[j].Category
	})
	return breakdown, nil
}
