package model

import "time"

// KPISet holds the headline liquidity indicators for one reporting pass.
type KPISet struct {
	CurrentBalance float64
	Net30d         float64
	AvgDailyBurn   float64
	RunwayDays     *int // nil when the balance is stable or growing
}

// BalancePoint is the cumulative balance at the end of one ledger date.
type BalancePoint struct {
	Date    time.Time
	Balance float64
}

// MonthlyFlow holds inflow/outflow/net for one calendar month.
// Month is the first day of the month; Outflow is <= 0.
type MonthlyFlow struct {
	Month   time.Time
	Inflow  float64
	Outflow float64
	Net     float64
}

// CategoryNet is the net amount for one category label.
type CategoryNet struct {
	Category string
	Net      float64
}

// Report bundles the four analytics outputs computed against a single
// snapshot and a single "today".
type Report struct {
	Today      time.Time
	KPIs       KPISet
	Timeseries []BalancePoint
	Monthly    []MonthlyFlow
	Categories []CategoryNet
}
