package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theirongolddev/runway/internal/model"
)

func TestBalanceTimeseries_CumulativePerDate(t *testing.T) {
	points, err := BalanceTimeseries(sampleLedger(t), 1000)
	require.NoError(t, err)

	require.Len(t, points, 3)
	assert.Equal(t, date(t, "2024-01-05"), points[0].Date)
	assert.Equal(t, 500.0, points[0].Balance)
	assert.Equal(t, 2500.0, points[1].Balance)
	assert.Equal(t, 2300.0, points[2].Balance)
}

func TestBalanceTimeseries_CollapsesSameDate(t *testing.T) {
	snapshot := []model.Transaction{
		tx(1, date(t, "2024-02-01"), "a", "Other", 100),
		tx(2, date(t, "2024-02-01"), "b", "Other", -30),
		tx(3, date(t, "2024-02-03"), "c", "Other", 10),
	}
	points, err := BalanceTimeseries(snapshot, 0)
	require.NoError(t, err)

	require.Len(t, points, 2)
	assert.Equal(t, 70.0, points[0].Balance, "same-date entries keep only the final cumulative value")
	assert.Equal(t, 80.0, points[1].Balance)
}

func TestBalanceTimeseries_OrdersUnsortedInput(t *testing.T) {
	snapshot := []model.Transaction{
		tx(2, date(t, "2024-03-10"), "later", "Other", -50),
		tx(1, date(t, "2024-03-01"), "earlier", "Other", 200),
	}
	points, err := BalanceTimeseries(snapshot, 0)
	require.NoError(t, err)

	require.Len(t, points, 2)
	assert.Equal(t, date(t, "2024-03-01"), points[0].Date)
	assert.Equal(t, 200.0, points[0].Balance)
	assert.Equal(t, 150.0, points[1].Balance)

	// Input order untouched.
	assert.Equal(t, int64(2), snapshot[0].ID)
}

func TestBalanceTimeseries_LatestPointEqualsCurrentBalance(t *testing.T) {
	snapshot := sampleLedger(t)
	points, err := BalanceTimeseries(snapshot, 1000)
	require.NoError(t, err)
	kpis, err := ComputeKPIs(snapshot, 1000, date(t, "2024-01-25"))
	require.NoError(t, err)

	assert.Equal(t, kpis.CurrentBalance, points[len(points)-1].Balance)
}

func TestBalanceTimeseries_Empty(t *testing.T) {
	points, err := BalanceTimeseries(nil, 500)
	require.NoError(t, err)
	assert.Empty(t, points)
}
