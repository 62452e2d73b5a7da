// Package analytics computes liquidity indicators from a ledger snapshot:
// headline KPIs, the balance time series, monthly flow buckets, and the
// per-category breakdown. Every function is a pure transform over an
// immutable snapshot plus an explicit reference date supplied by the caller.
package analytics

import (
	"errors"
	"fmt"
	"math"

	"github.com/theirongolddev/runway/internal/model"
)

// ErrInvalidRecord marks a semantically invalid transaction (non-finite
// amount or missing date). Well-formed records never produce errors.
var ErrInvalidRecord = errors.New("invalid transaction record")

func validateSnapshot(snapshot []model.Transaction) error {
	for _, tx := range snapshot {
		if tx.Date.IsZero() {
			return fmt.Errorf("transaction %d has no date: %w", tx.ID, ErrInvalidRecord)
		}
		if math.IsNaN(tx.Amount) || math.IsInf(tx.Amount, 0) {
			return fmt.Errorf("transaction %d has non-finite amount: %w", tx.ID, ErrInvalidRecord)
		}
	}
	return nil
}
