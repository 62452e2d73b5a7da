// Package model defines domain types for the runway ledger and its reports.
package model

import (
	"sort"
	"time"
)

// DateLayout is the calendar-date format used throughout: in the store,
// in CSV files, and on the command line.
const DateLayout = "2006-01-02"

// Default labels applied at the ingestion boundary when a field is blank.
const (
	DefaultCategory = "Other"
	DefaultAccount  = "Cash"
)

// Transaction is one signed cash movement. Amount > 0 is an inflow,
// Amount < 0 an outflow. Date carries no time component (midnight UTC).
type Transaction struct {
	ID          int64
	Date        time.Time
	Description string
	Category    string
	Amount      float64
	Account     string
	CreatedAt   time.Time
}

// Day truncates t to a calendar date at midnight UTC.
func Day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// MonthOf returns the first day of t's calendar month at midnight UTC.
func MonthOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}

// SortSnapshot orders transactions by (date, id) ascending, the canonical
// snapshot order every analytics component assumes.
func SortSnapshot(txs []Transaction) {
	sort.SliceStable(txs, func(i, j int) bool {
		if !txs[i].Date.Equal(txs[j].Date) {
			return txs[i].Date.Before(txs[j].Date)
		}
		return txs[i].ID < txs[j].ID
	})
}
