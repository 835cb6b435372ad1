package readstore

import (
	"context"
	"fmt"
	"strings"
	"time"

	"checkout-core/internal/infra"
	"checkout-core/internal/infra/db"
	"checkout-core/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// LedgerReadStore serves the reporting queries over stock_movements. It reads
// through the pool with no transaction: the ledger is append-only so a plain
// snapshot read is always consistent.
type LedgerReadStore struct {
	db db.DBTX
}

func NewLedgerReadStore(dbtx db.DBTX) *LedgerReadStore {
	return &LedgerReadStore{db: dbtx}
}

var _ queries.LedgerQueries = (*LedgerReadStore)(nil)

const movementColumns = `id, variant_id, warehouse_id, type, quantity,
	quantity_before, quantity_after, reserved_before, reserved_after,
	available_before, available_after, reference_type, reference_id,
	reason, actor, occurred_at`

func (s *LedgerReadStore) MovementsByVariant(ctx context.Context, variantID uuid.UUID, filter queries.LedgerFilter) ([]*queries.MovementView, string, error) {
	limit := queries.ValidateLimit(filter.Limit)

	where := []string{"variant_id = $1"}
	args := []any{variantID}

	addArg := func(clause string, v any) {
		args = append(args, v)
		where = append(where, fmt.Sprintf(clause, len(args)))
	}

	if filter.WarehouseID != nil {
		addArg("warehouse_id = $%d", *filter.WarehouseID)
	}
	if filter.Type != nil {
		addArg("type = $%d", *filter.Type)
	}
	if filter.From != nil {
		addArg("occurred_at >= $%d", *filter.From)
	}
	if filter.To != nil {
		addArg("occurred_at < $%d", *filter.To)
	}
	if filter.After != "" {
		afterTime, afterID, err := queries.DecodeAfterCursor(filter.After)
		if err != nil {
			return nil, "", infra.WrapRepoErr(infra.KindDBFailure, "invalid pagination cursor", err)
		}
		args = append(args, afterTime, afterID)
		where = append(where, fmt.Sprintf("(occurred_at, id) < ($%d, $%d)", len(args)-1, len(args)))
	}

	// Fetch one extra row to detect whether another page exists.
	args = append(args, limit+1)
	query := fmt.Sprintf(`
		SELECT %s
		FROM stock_movements
		WHERE %s
		ORDER BY occurred_at DESC, id DESC
		LIMIT $%d`, movementColumns, strings.Join(where, " AND "), len(args))

	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		return nil, "", infra.WrapRepoErr(infra.KindDBFailure, "failed to list stock movements", err)
	}
	defer rows.Close()

	var views []*queries.MovementView
	for rows.Next() {
		view, err := scanMovement(rows)
		if err != nil {
			return nil, "", infra.WrapRepoErr(infra.KindDBFailure, "failed to scan stock movement", err)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, "", infra.WrapRepoErr(infra.KindDBFailure, "failed to iterate stock movements", err)
	}

	nextCursor := ""
	if len(views) > limit {
		views = views[:limit]
		last := views[len(views)-1]
		nextCursor = queries.EncodeAfterCursor(last.OccurredAt, last.ID)
	}
	return views, nextCursor, nil
}

func (s *LedgerReadStore) Summary(ctx context.Context, variantID uuid.UUID, filter queries.LedgerFilter) (*queries.MovementSummary, error) {
	where := []string{"variant_id = $1"}
	args := []any{variantID}

	addArg := func(clause string, v any) {
		args = append(args, v)
		where = append(where, fmt.Sprintf(clause, len(args)))
	}

	if filter.WarehouseID != nil {
		addArg("warehouse_id = $%d", *filter.WarehouseID)
	}
	if filter.From != nil {
		addArg("occurred_at >= $%d", *filter.From)
	}
	if filter.To != nil {
		addArg("occurred_at < $%d", *filter.To)
	}

	query := fmt.Sprintf(`
		SELECT type, actor, quantity
		FROM stock_movements
		WHERE %s`, strings.Join(where, " AND "))

	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to summarize stock movements", err)
	}
	defer rows.Close()

	summary := &queries.MovementSummary{
		VariantID: variantID,
		ByType:    map[string]int64{},
		ByActor:   map[string]int64{},
	}
	for rows.Next() {
		var (
			typ, actor string
			quantity   int64
		)
		if err := rows.Scan(&typ, &actor, &quantity); err != nil {
			return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to scan movement summary row", err)
		}

		if quantity > 0 {
			summary.TotalIn += quantity
		} else {
			summary.TotalOut += -quantity
		}
		summary.Net += quantity
		summary.ByType[typ] += quantity
		summary.ByActor[actor] += quantity
		summary.Count++
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to iterate movement summary", err)
	}
	return summary, nil
}

func scanMovement(row pgx.Row) (*queries.MovementView, error) {
	var (
		v          queries.MovementView
		refType    string
		refID      *uuid.UUID
		occurredAt time.Time
	)
	if err := row.Scan(&v.ID, &v.VariantID, &v.WarehouseID, &v.Type, &v.Quantity,
		&v.QuantityBefore, &v.QuantityAfter, &v.ReservedBefore, &v.ReservedAfter,
		&v.AvailableBefore, &v.AvailableAfter, &refType, &refID,
		&v.Reason, &v.Actor, &occurredAt); err != nil {
		return nil, err
	}
	v.ReferenceType = refType
	v.ReferenceID = refID
	v.OccurredAt = occurredAt
	return &v, nil
}
