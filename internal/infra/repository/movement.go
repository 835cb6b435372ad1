package repository

import (
	"context"

	"checkout-core/internal/domain/inventory"
	"checkout-core/internal/infra"
	"checkout-core/internal/infra/db"

	"github.com/google/uuid"
)

// MovementRepository writes ledger entries. There is deliberately no update or
// delete method; corrections happen by appending a correction movement.
type MovementRepository struct {
	db db.DBTX
}

func NewMovementRepository(dbtx db.DBTX) *MovementRepository {
	return &MovementRepository{db: dbtx}
}

func (r *MovementRepository) Append(ctx context.Context, m *inventory.Movement) error {
	var refID *uuid.UUID
	if !m.Reference.IsZero() {
		id := m.Reference.ID
		refID = &id
	}

	_, err := r.db.Exec(ctx, `
		INSERT INTO stock_movements
			(id, variant_id, warehouse_id, type, quantity,
			 quantity_before, quantity_after, reserved_before, reserved_after,
			 available_before, available_after,
			 reference_type, reference_id, reason, actor, occurred_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`,
		m.ID, m.VariantID, m.WarehouseID, m.Type.String(), m.Quantity,
		m.QuantityBefore, m.QuantityAfter, m.ReservedBefore, m.ReservedAfter,
		m.AvailableBefore, m.AvailableAfter,
		string(m.Reference.Type), refID, m.Reason, m.Actor, m.OccurredAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return infra.WrapRepoErr(infra.KindDuplicateKey, "movement already recorded", err)
		}
		return infra.WrapRepoErr(infra.KindDBFailure, "failed to append stock movement", err)
	}
	return nil
}
