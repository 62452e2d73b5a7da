// Package store provides the SQLite-backed ledger and settings repository.
package store

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/theirongolddev/runway/internal/model"

	_ "modernc.org/sqlite" // register sqlite driver
)

// ErrNotFound is returned when an id does not match any transaction.
var ErrNotFound = errors.New("transaction not found")

const initialBalanceKey = "initial_balance"

// Store wraps the ledger database. The path is injected by the caller;
// nothing in this package holds process-wide state.
type Store struct {
	db *sql.DB
}

// Open opens or creates the ledger database at the given path.
func Open(dbPath string) (*Store, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating ledger dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=synchronous(normal)&_pragma=foreign_keys(on)")
	if err != nil {
		return nil, fmt.Errorf("opening ledger db: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the ledger database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Insert adds a transaction and returns it with the assigned id. Blank
// category and account fall back to the ingestion defaults.
func (s *Store) Insert(tx model.Transaction) (model.Transaction, error) {
	applyDefaults(&tx)

	res, err := s.db.Exec(
		`INSERT INTO transactions(t_date, description, category, amount, account)
		 VALUES (?, ?, ?, ?, ?)`,
		tx.Date.Format(model.DateLayout), tx.Description, tx.Category, tx.Amount, tx.Account,
	)
	if err != nil {
		return model.Transaction{}, fmt.Errorf("inserting transaction: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return model.Transaction{}, err
	}
	tx.ID = id
	return tx, nil
}

// InsertBatch adds all transactions in a single database transaction.
// Either every row is committed or none is.
func (s *Store) InsertBatch(txs []model.Transaction) error {
	dbTx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = dbTx.Rollback() }()

	stmt, err := dbTx.Prepare(
		`INSERT INTO transactions(t_date, description, category, amount, account)
		 VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer func() { _ = stmt.Close() }()

	for _, tx := range txs {
		applyDefaults(&tx)
		if _, err := stmt.Exec(
			tx.Date.Format(model.DateLayout), tx.Description, tx.Category, tx.Amount, tx.Account,
		); err != nil {
			return fmt.Errorf("inserting batch row: %w", err)
		}
	}
	return dbTx.Commit()
}

// Update rewrites the transaction with the given id.
func (s *Store) Update(tx model.Transaction) error {
	applyDefaults(&tx)

	res, err := s.db.Exec(
		`UPDATE transactions SET t_date=?, description=?, category=?, amount=?, account=? WHERE id=?`,
		tx.Date.Format(model.DateLayout), tx.Description, tx.Category, tx.Amount, tx.Account, tx.ID,
	)
	if err != nil {
		return fmt.Errorf("updating transaction %d: %w", tx.ID, err)
	}
	return checkAffected(res, tx.ID)
}

// Delete removes the transaction with the given id.
func (s *Store) Delete(id int64) error {
	res, err := s.db.Exec(`DELETE FROM transactions WHERE id=?`, id)
	if err != nil {
		return fmt.Errorf("deleting transaction %d: %w", id, err)
	}
	return checkAffected(res, id)
}

// Get returns one transaction by id.
func (s *Store) Get(id int64) (model.Transaction, error) {
	row := s.db.QueryRow(
		`SELECT id, t_date, description, category, amount, account, created_at
		 FROM transactions WHERE id=?`, id)
	tx, err := scanTransaction(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Transaction{}, fmt.Errorf("transaction %d: %w", id, ErrNotFound)
	}
	return tx, err
}

// Snapshot returns every transaction ordered by (t_date, id) ascending,
// the canonical order the analytics engine consumes.
func (s *Store) Snapshot() ([]model.Transaction, error) {
	rows, err := s.db.Query(
		`SELECT id, t_date, description, category, amount, account, created_at
		 FROM transactions ORDER BY t_date ASC, id ASC`)
	if err != nil {
		return nil, fmt.Errorf("loading snapshot: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var txs []model.Transaction
	for rows.Next() {
		tx, err := scanTransaction(rows.Scan)
		if err != nil {
			return nil, err
		}
		txs = append(txs, tx)
	}
	return txs, rows.Err()
}

// InitialBalance reads the configured starting balance, defaulting to 0.
func (s *Store) InitialBalance() (float64, error) {
	var value sql.NullString
	err := s.db.QueryRow(`SELECT value FROM settings WHERE key=?`, initialBalanceKey).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) || (err == nil && !value.Valid) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("reading initial balance: %w", err)
	}
	bal, err := strconv.ParseFloat(value.String, 64)
	if err != nil {
		return 0, fmt.Errorf("parsing initial balance %q: %w", value.String, err)
	}
	return bal, nil
}

// SetInitialBalance stores the starting balance.
func (s *Store) SetInitialBalance(v float64) error {
	_, err := s.db.Exec(`REPLACE INTO settings(key, value) VALUES(?, ?)`,
		initialBalanceKey, strconv.FormatFloat(v, 'f', -1, 64))
	if err != nil {
		return fmt.Errorf("saving initial balance: %w", err)
	}
	return nil
}

func applyDefaults(tx *model.Transaction) {
	if tx.Category == "" {
		tx.Category = model.DefaultCategory
	}
	if tx.Account == "" {
		tx.Account = model.DefaultAccount
	}
}

func checkAffected(res sql.Result, id int64) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("transaction %d: %w", id, ErrNotFound)
	}
	return nil
}

func scanTransaction(scan func(...any) error) (model.Transaction, error) {
	var tx model.Transaction
	var dateStr string
	var desc, category, account, createdAt sql.NullString

	if err := scan(&tx.ID, &dateStr, &desc, &category, &tx.Amount, &account, &createdAt); err != nil {
		return model.Transaction{}, err
	}

	d, err := time.Parse(model.DateLayout, dateStr)
	if err != nil {
		return model.Transaction{}, fmt.Errorf("parsing date %q for transaction %d: %w", dateStr, tx.ID, err)
	}
	tx.Date = d
	tx.Description = desc.String
	tx.Category = category.String
	tx.Account = account.String
	if createdAt.Valid {
		// SQLite CURRENT_TIMESTAMP format
		if ts, err := time.Parse("2006-01-02 15:04:05", createdAt.String); err == nil {
			tx.CreatedAt = ts
		}
	}
	return tx, nil
}
