package repository

import (
	"context"
	"errors"
	"time"

	"checkout-core/internal/domain/inventory"
	"checkout-core/internal/infra"
	"checkout-core/internal/infra/db"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type ReservationRepository struct {
	db db.DBTX
}

func NewReservationRepository(dbtx db.DBTX) *ReservationRepository {
	return &ReservationRepository{db: dbtx}
}

const reservationColumns = `id, variant_id, warehouse_id, requested_qty, reserved_qty, status,
	reference_type, reference_id, lock_token, lock_expires_at, expires_at,
	released, override_reason, created_at, updated_at`

func (r *ReservationRepository) Create(ctx context.Context, res *inventory.Reservation) error {
	ref := res.Ref()
	var refID *uuid.UUID
	if !ref.IsZero() {
		id := ref.ID
		refID = &id
	}

	_, err := r.db.Exec(ctx, `
		INSERT INTO stock_reservations
			(id, variant_id, warehouse_id, requested_qty, reserved_qty, status,
			 reference_type, reference_id, lock_token, lock_expires_at, expires_at,
			 released, override_reason)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
		res.ID(), res.VariantID(), res.WarehouseID(),
		res.RequestedQty(), res.ReservedQty(), res.Status().String(),
		string(ref.Type), refID, res.LockToken(), res.LockExpiresAt(), res.ExpiresAt(),
		res.Released(), res.OverrideReason(),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return infra.WrapRepoErr(infra.KindDuplicateKey, "reservation already exists", err)
		}
		if isForeignKeyViolation(err) {
			return infra.WrapRepoErr(infra.KindForeignKeyViolated, "reservation references missing row", err)
		}
		return infra.WrapRepoErr(infra.KindDBFailure, "failed to create reservation", err)
	}
	return nil
}

func (r *ReservationRepository) Update(ctx context.Context, res *inventory.Reservation) error {
	ref := res.Ref()
	var refID *uuid.UUID
	if !ref.IsZero() {
		id := ref.ID
		refID = &id
	}

	tag, err := r.db.Exec(ctx, `
		UPDATE stock_reservations
		SET reserved_qty = $2, status = $3, reference_type = $4, reference_id = $5,
			lock_token = $6, lock_expires_at = $7, expires_at = $8,
			released = $9, updated_at = now()
		WHERE id = $1`,
		res.ID(), res.ReservedQty(), res.Status().String(),
		string(ref.Type), refID,
		res.LockToken(), res.LockExpiresAt(), res.ExpiresAt(),
		res.Released(),
	)
	if err != nil {
		return infra.WrapRepoErr(infra.KindDBFailure, "failed to update reservation", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr(infra.KindNotFound, "reservation not found", pgx.ErrNoRows)
	}
	return nil
}

func (r *ReservationRepository) FindByID(ctx context.Context, id uuid.UUID) (*inventory.Reservation, error) {
	row := r.db.QueryRow(ctx, `
		SELECT `+reservationColumns+`
		FROM stock_reservations
		WHERE id = $1`, id)

	res, err := scanReservation(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr(infra.KindNotFound, "reservation not found", err)
		}
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to find reservation", err)
	}
	return res, nil
}

func (r *ReservationRepository) FindByReference(ctx context.Context, ref inventory.Reference) ([]*inventory.Reservation, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+reservationColumns+`
		FROM stock_reservations
		WHERE reference_type = $1 AND reference_id = $2
		ORDER BY created_at ASC`,
		string(ref.Type), ref.ID)
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to find reservations by reference", err)
	}
	defer rows.Close()

	return collectReservations(rows)
}

func (r *ReservationRepository) FindExpiredCart(ctx context.Context, now time.Time, limit int32) ([]*inventory.Reservation, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+reservationColumns+`
		FROM stock_reservations
		WHERE status = 'cart'
		  AND released = false
		  AND expires_at IS NOT NULL
		  AND expires_at <= $1
		ORDER BY expires_at ASC
		LIMIT $2`, now, limit)
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to list expired reservations", err)
	}
	defer rows.Close()

	return collectReservations(rows)
}

func collectReservations(rows pgx.Rows) ([]*inventory.Reservation, error) {
	var out []*inventory.Reservation
	for rows.Next() {
		res, err := scanReservation(rows)
		if err != nil {
			return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to scan reservation", err)
		}
		out = append(out, res)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to iterate reservations", err)
	}
	return out, nil
}

func scanReservation(row pgx.Row) (*inventory.Reservation, error) {
	var (
		id, variantID, warehouseID uuid.UUID
		requested, reserved        int64
		status, refType            string
		refID                      *uuid.UUID
		lockToken                  string
		lockExpiresAt, expiresAt   *time.Time
		released                   bool
		overrideReason             string
		createdAt, updatedAt       time.Time
	)
	if err := row.Scan(&id, &variantID, &warehouseID, &requested, &reserved, &status,
		&refType, &refID, &lockToken, &lockExpiresAt, &expiresAt,
		&released, &overrideReason, &createdAt, &updatedAt); err != nil {
		return nil, err
	}

	ref := inventory.Reference{Type: inventory.RefType(refType)}
	if refID != nil {
		ref.ID = *refID
	}

	return inventory.ReconstructReservation(
		id, variantID, warehouseID,
		requested, reserved,
		inventory.ReservationStatus(status),
		ref,
		lockToken, lockExpiresAt, expiresAt,
		released, overrideReason,
		createdAt, updatedAt,
	), nil
}
