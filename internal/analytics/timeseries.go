package analytics

import (
	"github.com/theirongolddev/runway/internal/model"
)

// BalanceTimeseries returns the cumulative balance at each distinct ledger
// date, ascending. When several transactions share a date only the final
// cumulative value for that date is kept.
func BalanceTimeseries(snapshot []model.Transaction, initialBalance float64) ([]model.BalancePoint, error) {
	if err := validateSnapshot(snapshot); err != nil {
		return nil, err
	}
	if len(snapshot) == 0 {
		return nil, nil
	}

	// Work on a sorted copy; the snapshot itself is never reordered.
	ordered := make([]model.Transaction, len(snapshot))
	copy(ordered, snapshot)
	model.SortSnapshot(ordered)

	points := make([]model.BalancePoint, 0, len(ordered))
	running := initialBalance
	for _, tx := range ordered {
		running += tx.Amount
		if n := len(points); n > 0 && points[n-1].Date.Equal(tx.Date) {
			points[n-1].Balance = running
			continue
		}
		points = append(points, model.BalancePoint{Date: tx.Date, Balance: running})
	}
	return points, nil
}
