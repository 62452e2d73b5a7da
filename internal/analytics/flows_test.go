package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theirongolddev/runway/internal/model"
)

func TestMonthlyFlows_BucketsByCalendarMonth(t *testing.T) {
	flows, err := MonthlyFlows(sampleLedger(t))
	require.NoError(t, err)

	require.Len(t, flows, 1)
	assert.Equal(t, date(t, "2024-01-01"), flows[0].Month)
	assert.Equal(t, 2000.0, flows[0].Inflow)
	assert.Equal(t, -700.0, flows[0].Outflow)
	assert.Equal(t, 1300.0, flows[0].Net)
}

func TestMonthlyFlows_AscendingAndZeroSides(t *testing.T) {
	snapshot := []model.Transaction{
		tx(1, date(t, "2024-03-15"), "salary", "Income", 1500),
		tx(2, date(t, "2024-01-02"), "rent", "Housing", -800),
		tx(3, date(t, "2024-01-20"), "rent", "Housing", -100),
	}
	flows, err := MonthlyFlows(snapshot)
	require.NoError(t, err)

	require.Len(t, flows, 2)
	assert.Equal(t, date(t, "2024-01-01"), flows[0].Month)
	assert.Equal(t, 0.0, flows[0].Inflow, "month without inflows reports zero")
	assert.Equal(t, -900.0, flows[0].Outflow)
	assert.Equal(t, date(t, "2024-03-01"), flows[1].Month)
	assert.Equal(t, 0.0, flows[1].Outflow)
	assert.Equal(t, 1500.0, flows[1].Net)
}

func TestMonthlyFlows_Empty(t *testing.T) {
	flows, err := MonthlyFlows(nil)
	require.NoError(t, err)
	assert.Empty(t, flows)
}

func TestCategoryBreakdown_AscendingByNet(t *testing.T) {
	breakdown, err := CategoryBreakdown(sampleLedger(t))
	require.NoError(t, err)

	require.Len(t, breakdown, 3)
	assert.Equal(t, model.CategoryNet{Category: "Housing", Net: -500}, breakdown[0])
	assert.Equal(t, model.CategoryNet{Category: "Food", Net: -200}, breakdown[1])
	assert.Equal(t, model.CategoryNet{Category: "Income", Net: 2000}, breakdown[2])
}

func TestCategoryBreakdown_TiesBreakByName(t *testing.T) {
	snapshot := []model.Transaction{
		tx(1, date(t, "2024-01-05"), "", "Zeta", -50),
		tx(2, date(t, "2024-01-06"), "", "Alpha", -50),
	}
	breakdown, err := CategoryBreakdown(snapshot)
	require.NoError(t, err)

	require.Len(t, breakdown, 2)
	assert.Equal(t, "Alpha", breakdown[0].Category)
	assert.Equal(t, "Zeta", breakdown[1].Category)
}

func TestCategoryBreakdown_EmptyLabelIsItsOwnGroup(t *testing.T) {
	snapshot := []model.Transaction{
		tx(1, date(t, "2024-01-05"), "", "", -10),
		tx(2, date(t, "2024-01-06"), "", "Food", -20),
	}
	breakdown, err := CategoryBreakdown(snapshot)
	require.NoError(t, err)

	require.Len(t, breakdown, 2)
	assert.Equal(t, "Food", breakdown[0].Category)
	assert.Equal(t, "", breakdown[1].Category)
}

// Conservation: monthly nets, category nets, and the raw amounts all sum to
// the same total.
func TestAggregationConservation(t *testing.T) {
	snapshot := []model.Transaction{
		tx(1, date(t, "2024-01-05"), "rent", "Housing", -500),
		tx(2, date(t, "2024-02-10"), "salary", "Income", 2000),
		tx(3, date(t, "2024-02-20"), "food", "Food", -200),
		tx(4, date(t, "2024-03-01"), "misc", "", -75.5),
	}

	var total float64
	for _, x := range snapshot {
		total += x.Amount
	}

	flows, err := MonthlyFlows(snapshot)
	require.NoError(t, err)
	var monthlyTotal float64
	for _, f := range flows {
		monthlyTotal += f.Net
		assert.InDelta(t, f.Net, f.Inflow+f.Outflow, 1e-9)
	}

	breakdown, err := CategoryBreakdown(snapshot)
	require.NoError(t, err)
	var categoryTotal float64
	for _, c := range breakdown {
		categoryTotal += c.Net
	}

	assert.InDelta(t, total, monthlyTotal, 1e-9)
	assert.InDelta(t, total, categoryTotal, 1e-9)
}

func TestFilters(t *testing.T) {
	snapshot := []model.Transaction{
		tx(1, date(t, "2024-01-05"), "Monthly rent", "Housing", -500),
		tx(2, date(t, "2024-01-10"), "Salary", "Income", 2000),
		tx(3, date(t, "2024-02-20"), "Groceries", "Food", -200),
	}

	ranged := FilterByDateRange(snapshot, date(t, "2024-01-06"), date(t, "2024-02-01"))
	require.Len(t, ranged, 1)
	assert.Equal(t, int64(2), ranged[0].ID)

	open := FilterByDateRange(snapshot, date(t, "2024-01-10"), time.Time{})
	assert.Len(t, open, 2)

	cats := FilterByCategories(snapshot, []string{"Housing", "Food"})
	assert.Len(t, cats, 2)

	text := FilterByText(snapshot, "rent")
	require.Len(t, text, 1)
	assert.Equal(t, int64(1), text[0].ID)
}
