package store

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theirongolddev/runway/internal/model"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "ledger.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func day(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse(model.DateLayout, s)
	require.NoError(t, err)
	return d
}

func TestInsertAndSnapshotOrder(t *testing.T) {
	s := testStore(t)

	_, err := s.Insert(model.Transaction{Date: day(t, "2024-01-10"), Description: "salary", Category: "Income", Amount: 2000, Account: "Bank"})
	require.NoError(t, err)
	_, err = s.Insert(model.Transaction{Date: day(t, "2024-01-05"), Description: "rent", Category: "Housing", Amount: -500})
	require.NoError(t, err)
	_, err = s.Insert(model.Transaction{Date: day(t, "2024-01-05"), Description: "coffee", Category: "Food", Amount: -4.5})
	require.NoError(t, err)

	snapshot, err := s.Snapshot()
	require.NoError(t, err)
	require.Len(t, snapshot, 3)

	// Ordered by (t_date, id): the two Jan 5 rows first, in insertion order.
	assert.Equal(t, "rent", snapshot[0].Description)
	assert.Equal(t, "coffee", snapshot[1].Description)
	assert.Equal(t, "salary", snapshot[2].Description)
	assert.True(t, snapshot[0].ID < snapshot[1].ID)
}

func TestInsertAppliesDefaults(t *testing.T) {
	s := testStore(t)

	inserted, err := s.Insert(model.Transaction{Date: day(t, "2024-01-05"), Amount: -10})
	require.NoError(t, err)
	assert.Equal(t, model.DefaultCategory, inserted.Category)
	assert.Equal(t, model.DefaultAccount, inserted.Account)

	got, err := s.Get(inserted.ID)
	require.NoError(t, err)
	assert.Equal(t, "Other", got.Category)
	assert.Equal(t, "Cash", got.Account)
}

func TestUpdateAndDelete(t *testing.T) {
	s := testStore(t)

	inserted, err := s.Insert(model.Transaction{Date: day(t, "2024-01-05"), Description: "rent", Category: "Housing", Amount: -500})
	require.NoError(t, err)

	inserted.Amount = -550
	inserted.Description = "rent (increase)"
	require.NoError(t, s.Update(inserted))

	got, err := s.Get(inserted.ID)
	require.NoError(t, err)
	assert.Equal(t, -550.0, got.Amount)
	assert.Equal(t, "rent (increase)", got.Description)

	require.NoError(t, s.Delete(inserted.ID))
	_, err = s.Get(inserted.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateMissingID(t *testing.T) {
	s := testStore(t)
	err := s.Update(model.Transaction{ID: 99, Date: day(t, "2024-01-05"), Amount: 1})
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, s.Delete(99), ErrNotFound)
}

func TestInsertBatchAtomic(t *testing.T) {
	s := testStore(t)

	batch := []model.Transaction{
		{Date: day(t, "2024-01-05"), Description: "a", Amount: 1},
		{Date: day(t, "2024-01-06"), Description: "b", Amount: 2},
		{Date: day(t, "2024-01-07"), Description: "c", Amount: 3},
	}
	require.NoError(t, s.InsertBatch(batch))

	snapshot, err := s.Snapshot()
	require.NoError(t, err)
	assert.Len(t, snapshot, 3)
}

func TestInitialBalanceDefaultAndSet(t *testing.T) {
	s := testStore(t)

	bal, err := s.InitialBalance()
	require.NoError(t, err)
	assert.Equal(t, 0.0, bal)

	require.NoError(t, s.SetInitialBalance(1234.56))
	bal, err = s.InitialBalance()
	require.NoError(t, err)
	assert.Equal(t, 1234.56, bal)

	// Overwrite
	require.NoError(t, s.SetInitialBalance(-20))
	bal, err = s.InitialBalance()
	require.NoError(t, err)
	assert.Equal(t, -20.0, bal)
}

func TestOpenIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ledger.db")
	s, err := Open(path)
	require.NoError(t, err)
	_, err = s.Insert(model.Transaction{Date: day(t, "2024-01-05"), Amount: -10})
	require.NoError(t, err)
	require.NoError(t, s.SetInitialBalance(50))
	require.NoError(t, s.Close())

	s2, err := Open(path)
	require.NoError(t, err)
	defer func() { _ = s2.Close() }()

	snapshot, err := s2.Snapshot()
	require.NoError(t, err)
	assert.Len(t, snapshot, 1)
	bal, err := s2.InitialBalance()
	require.NoError(t, err)
	assert.Equal(t, 50.0, bal)
}
