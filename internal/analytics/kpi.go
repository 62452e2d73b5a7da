package analytics

import (
	"time"

	"github.com/theirongolddev/runway/internal/model"
)

// kpiWindowDays is the trailing window for the short-term KPIs.
const kpiWindowDays = 30

// ComputeKPIs derives the headline indicators from a snapshot and the
// configured initial balance. The caller supplies "today" so a whole
// reporting pass shares one reference date.
//
// The burn period is the trailing 30-day window when it contains any
// records; otherwise the full ledger span, floored at 30 days so an old
// sparse ledger does not produce a spuriously steep burn.
func ComputeKPIs(snapshot []model.Transaction, initialBalance float64, today time.Time) (model.KPISet, error) {
	if err := validateSnapshot(snapshot); err != nil {
		return model.KPISet{}, err
	}

	kpis := model.KPISet{CurrentBalance: initialBalance}
	if len(snapshot) == 0 {
		return kpis, nil
	}

	day := model.Day(today)
	cutoff := day.AddDate(0, 0, -kpiWindowDays)

	var total, net30 float64
	minDate, maxDate := snapshot[0].Date, snapshot[0].Date
	recentMin := time.Time{}
	var recentSum float64
	anyRecent := false

	for _, tx := range snapshot {
		total += tx.Amount
		if tx.Date.Before(minDate) {
			minDate = tx.Date
		}
		if tx.Date.After(maxDate) {
			maxDate = tx.Date
		}
		if !tx.Date.Before(cutoff) {
			net30 += tx.Amount
			recentSum += tx.Amount
			if !anyRecent || tx.Date.Before(recentMin) {
				recentMin = tx.Date
			}
			anyRecent = true
		}
	}

	kpis.CurrentBalance = initialBalance + total
	kpis.Net30d = net30

	var periodSum float64
	var days int
	if anyRecent {
		start := recentMin
		if start.Before(cutoff) {
			start = cutoff
		}
		days = daysBetween(start, day) + 1
		periodSum = recentSum
	} else {
		days = daysBetween(minDate, maxDate) + 1
		if days < kpiWindowDays {
			days = kpiWindowDays
		}
		periodSum = total
	}
	if days < 1 {
		days = 1
	}
	kpis.AvgDailyBurn = periodSum / float64(days)

	if kpis.AvgDailyBurn < 0 {
		runway := 0
		if kpis.CurrentBalance > 0 {
			runway = int(kpis.CurrentBalance / -kpis.AvgDailyBurn)
		}
		kpis.RunwayDays = &runway
	}

	return kpis, nil
}

// daysBetween counts whole days from a to b. Both are midnight UTC dates.
func daysBetween(a, b time.Time) int {
	return int(b.Sub(a) / (24 * time.Hour))
}
