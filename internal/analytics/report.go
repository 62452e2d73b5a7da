package analytics

import (
	"time"

	"github.com/theirongolddev/runway/internal/model"
)

// BuildReport runs all four components against one snapshot and one "today",
// which is captured once so the whole report shares a consistent reference.
func BuildReport(snapshot []model.Transaction, initialBalance float64, today time.Time) (model.Report, error) {
	kpis, err := ComputeKPIs(snapshot, initialBalance, today)
	if err != nil {
		return model.Report{}, err
	}
	ts, err := BalanceTimeseries(snapshot, initialBalance)
	if err != nil {
		return model.Report{}, err
	}
	monthly, err := MonthlyFlows(snapshot)
	if err != nil {
		return model.Report{}, err
	}
	categories, err := CategoryBreakdown(snapshot)
	if err != nil {
		return model.Report{}, err
	}
	return model.Report{
		Today:      model.Day(today),
		KPIs:       kpis,
		Timeseries: ts,
		Monthly:    monthly,
		Categories: categories,
	}, nil
}
