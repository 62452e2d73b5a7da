package analytics

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theirongolddev/runway/internal/model"
)

func date(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse(model.DateLayout, s)
	require.NoError(t, err)
	return d
}

func tx(id int64, day time.Time, desc, category string, amount float64) model.Transaction {
	return model.Transaction{
		ID:          id,
		Date:        day,
		Description: desc,
		Category:    category,
		Amount:      amount,
		Account:     model.DefaultAccount,
	}
}

func sampleLedger(t *testing.T) []model.Transaction {
	t.Helper()
	return []model.Transaction{
		tx(1, date(t, "2024-01-05"), "Rent", "Housing", -500),
		tx(2, date(t, "2024-01-10"), "Salary", "Income", 2000),
		tx(3, date(t, "2024-01-20"), "Groceries", "Food", -200),
	}
}

func TestComputeKPIs_EmptySnapshot(t *testing.T) {
	kpis, err := ComputeKPIs(nil, 1000, date(t, "2024-01-25"))
	require.NoError(t, err)

	assert.Equal(t, 1000.0, kpis.CurrentBalance)
	assert.Equal(t, 0.0, kpis.Net30d)
	assert.Equal(t, 0.0, kpis.AvgDailyBurn)
	assert.Nil(t, kpis.RunwayDays)
}

func TestComputeKPIs_RecentActivity(t *testing.T) {
	kpis, err := ComputeKPIs(sampleLedger(t), 1000, date(t, "2024-01-25"))
	require.NoError(t, err)

	assert.Equal(t, 2300.0, kpis.CurrentBalance)
	assert.Equal(t, 1300.0, kpis.Net30d)
	// Period runs from the earliest in-window record (Jan 5) to today
	// inclusive: 21 days.
	assert.InDelta(t, 1300.0/21, kpis.AvgDailyBurn, 1e-9)
	assert.Nil(t, kpis.RunwayDays, "growing balance has no runway")
}

func TestComputeKPIs_RunwayWhenBurning(t *testing.T) {
	snapshot := []model.Transaction{
		tx(1, date(t, "2024-01-10"), "Rent", "Housing", -500),
		tx(2, date(t, "2024-01-20"), "Groceries", "Food", -200),
	}
	kpis, err := ComputeKPIs(snapshot, 1000, date(t, "2024-01-25"))
	require.NoError(t, err)

	assert.Equal(t, 300.0, kpis.CurrentBalance)
	assert.Equal(t, -700.0, kpis.Net30d)
	// 16-day period, -700 total.
	assert.InDelta(t, -700.0/16, kpis.AvgDailyBurn, 1e-9)
	require.NotNil(t, kpis.RunwayDays)
	// 300 / 43.75 = 6.857..., truncated.
	assert.Equal(t, 6, *kpis.RunwayDays)
}

func TestComputeKPIs_RunwayZeroWhenBalanceExhausted(t *testing.T) {
	snapshot := []model.Transaction{
		tx(1, date(t, "2024-01-10"), "Rent", "Housing", -500),
	}
	kpis, err := ComputeKPIs(snapshot, 100, date(t, "2024-01-25"))
	require.NoError(t, err)

	assert.Equal(t, -400.0, kpis.CurrentBalance)
	require.NotNil(t, kpis.RunwayDays)
	assert.Equal(t, 0, *kpis.RunwayDays)
}

func TestComputeKPIs_FallbackFloorsShortSpans(t *testing.T) {
	// All records are far older than the 30-day window and span only 10
	// days; the fallback floors the period at 30 days.
	snapshot := []model.Transaction{
		tx(1, date(t, "2024-01-01"), "Rent", "Housing", -100),
		tx(2, date(t, "2024-01-10"), "Groceries", "Food", -200),
	}
	kpis, err := ComputeKPIs(snapshot, 1000, date(t, "2024-06-01"))
	require.NoError(t, err)

	assert.Equal(t, 0.0, kpis.Net30d)
	assert.InDelta(t, -300.0/30, kpis.AvgDailyBurn, 1e-9)
	require.NotNil(t, kpis.RunwayDays)
	assert.Equal(t, 70, *kpis.RunwayDays)
}

func TestComputeKPIs_FallbackFloorAppliesToLongSpansUntouched(t *testing.T) {
	snapshot := []model.Transaction{
		tx(1, date(t, "2023-01-01"), "Rent", "Housing", -600),
		tx(2, date(t, "2023-03-01"), "Rent", "Housing", -600),
	}
	// Span is 60 days -> 60 used, no flooring.
	kpis, err := ComputeKPIs(snapshot, 5000, date(t, "2024-06-01"))
	require.NoError(t, err)
	assert.InDelta(t, -1200.0/60, kpis.AvgDailyBurn, 1e-9)
}

func TestComputeKPIs_RejectsNonFiniteAmount(t *testing.T) {
	snapshot := []model.Transaction{
		tx(1, date(t, "2024-01-05"), "bad", "Other", math.NaN()),
	}
	_, err := ComputeKPIs(snapshot, 0, date(t, "2024-01-25"))
	require.ErrorIs(t, err, ErrInvalidRecord)
}

func TestComputeKPIs_RejectsZeroDate(t *testing.T) {
	snapshot := []model.Transaction{
		{ID: 1, Amount: 10},
	}
	_, err := ComputeKPIs(snapshot, 0, date(t, "2024-01-25"))
	require.ErrorIs(t, err, ErrInvalidRecord)
}

func TestComputeKPIs_Idempotent(t *testing.T) {
	snapshot := sampleLedger(t)
	first, err := ComputeKPIs(snapshot, 1000, date(t, "2024-01-25"))
	require.NoError(t, err)
	second, err := ComputeKPIs(snapshot, 1000, date(t, "2024-01-25"))
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
