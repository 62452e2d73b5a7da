package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDayTruncates(t *testing.T) {
	in := time.Date(2024, 1, 25, 15, 42, 7, 123, time.Local)
	got := Day(in)

	assert.Equal(t, time.Date(2024, 1, 25, 0, 0, 0, 0, time.UTC), got)
}

func TestMonthOf(t *testing.T) {
	in := time.Date(2024, 2, 29, 10, 0, 0, 0, time.UTC)

	assert.Equal(t, time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), MonthOf(in))
}

func TestSortSnapshotByDateThenID(t *testing.T) {
	d1 := time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)
	d2 := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)

	txs := []Transaction{
		{ID: 3, Date: d2},
		{ID: 2, Date: d1},
		{ID: 1, Date: d1},
	}
	SortSnapshot(txs)

	assert.Equal(t, []int64{1, 2, 3}, []int64{txs[0].ID, txs[1].ID, txs[2].ID})
	assert.Equal(t, d1, txs[0].Date)
	assert.Equal(t, d2, txs[2].Date)
}
