package queries

import (
	"context"

	"github.com/google/uuid"
)

// LedgerQueries is the read-only reporting surface over the stock movement
// ledger. There is no write counterpart here: entries are appended by the
// reservation manager inside its critical sections.
type LedgerQueries interface {
	// MovementsByVariant lists ledger entries for a variant, newest first,
	// optionally scoped by warehouse, type and date range.
	MovementsByVariant(ctx context.Context, variantID uuid.UUID, filter LedgerFilter) ([]*MovementView, string, error)
	// Summary aggregates a variant's ledger into totals in/out and breakdowns
	// by type and actor.
	Summary(ctx context.Context, variantID uuid.UUID, filter LedgerFilter) (*MovementSummary, error)
}
