package repository

import (
	"context"
	"errors"

	"checkout-core/internal/domain/inventory"
	"checkout-core/internal/infra"
	"checkout-core/internal/infra/db"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type InventoryRepository struct {
	db db.DBTX
}

func NewInventoryRepository(dbtx db.DBTX) *InventoryRepository {
	return &InventoryRepository{db: dbtx}
}

// FindForUpdate takes the row-level exclusive lock along with the read, so two
// transactions racing on the same (variant, warehouse) pair serialize here.
func (r *InventoryRepository) FindForUpdate(ctx context.Context, variantID, warehouseID uuid.UUID) (*inventory.Level, error) {
	row := r.db.QueryRow(ctx, `
		SELECT variant_id, warehouse_id, quantity, reserved, incoming, damaged,
			preorder, backorder_limit, safety_stock
		FROM inventory_levels
		WHERE variant_id = $1 AND warehouse_id = $2
		FOR UPDATE`, variantID, warehouseID)

	var (
		vID, wID                                                        uuid.UUID
		quantity, reserved, incoming, damaged, preorder, backorderLimit int64
		safetyStock                                                     int64
	)
	if err := row.Scan(&vID, &wID, &quantity, &reserved, &incoming, &damaged,
		&preorder, &backorderLimit, &safetyStock); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr(infra.KindNotFound, "inventory level not found", err)
		}
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to lock inventory level", err)
	}

	return inventory.ReconstructLevel(vID, wID, quantity, reserved, incoming, damaged,
		preorder, backorderLimit, safetyStock), nil
}

func (r *InventoryRepository) Save(ctx context.Context, level *inventory.Level) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE inventory_levels
		SET quantity = $3, reserved = $4, incoming = $5, damaged = $6,
			preorder = $7, updated_at = now()
		WHERE variant_id = $1 AND warehouse_id = $2`,
		level.VariantID(), level.WarehouseID(),
		level.Quantity(), level.Reserved(), level.Incoming(), level.Damaged(),
		level.Preorder(),
	)
	if err != nil {
		return infra.WrapRepoErr(infra.KindDBFailure, "failed to save inventory level", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr(infra.KindNotFound, "inventory level not found", pgx.ErrNoRows)
	}
	return nil
}
