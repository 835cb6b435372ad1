package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"checkout-core/internal/domain/checkout"
	"checkout-core/internal/infra"
	"checkout-core/internal/infra/db"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type CheckoutLockRepository struct {
	db db.DBTX
}

func NewCheckoutLockRepository(dbtx db.DBTX) *CheckoutLockRepository {
	return &CheckoutLockRepository{db: dbtx}
}

const checkoutLockColumns = `id, cart_id, user_id, state, phase, locked_at, expires_at, metadata, created_at, updated_at`

func (r *CheckoutLockRepository) Create(ctx context.Context, lock *checkout.Lock) error {
	metadata, err := json.Marshal(lock.Metadata())
	if err != nil {
		return infra.WrapRepoErr(infra.KindDBFailure, "failed to encode lock metadata", err)
	}

	_, err = r.db.Exec(ctx, `
		INSERT INTO checkout_locks (id, cart_id, user_id, state, phase, locked_at, expires_at, metadata)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		lock.ID(), lock.CartID(), lock.UserID(),
		lock.State().String(), lock.CurrentPhase().String(),
		lock.LockedAt(), lock.ExpiresAt(), metadata,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return infra.WrapRepoErr(infra.KindDuplicateKey, "checkout lock already exists", err)
		}
		return infra.WrapRepoErr(infra.KindDBFailure, "failed to create checkout lock", err)
	}
	return nil
}

func (r *CheckoutLockRepository) Update(ctx context.Context, lock *checkout.Lock) error {
	metadata, err := json.Marshal(lock.Metadata())
	if err != nil {
		return infra.WrapRepoErr(infra.KindDBFailure, "failed to encode lock metadata", err)
	}

	tag, err := r.db.Exec(ctx, `
		UPDATE checkout_locks
		SET state = $2, phase = $3, expires_at = $4, metadata = $5, updated_at = now()
		WHERE id = $1`,
		lock.ID(), lock.State().String(), lock.CurrentPhase().String(),
		lock.ExpiresAt(), metadata,
	)
	if err != nil {
		return infra.WrapRepoErr(infra.KindDBFailure, "failed to update checkout lock", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr(infra.KindNotFound, "checkout lock not found", pgx.ErrNoRows)
	}
	return nil
}

func (r *CheckoutLockRepository) FindByID(ctx context.Context, id uuid.UUID) (*checkout.Lock, error) {
	row := r.db.QueryRow(ctx, `
		SELECT `+checkoutLockColumns+`
		FROM checkout_locks
		WHERE id = $1`, id)

	lock, err := scanCheckoutLock(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr(infra.KindNotFound, "checkout lock not found", err)
		}
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to find checkout lock", err)
	}
	return lock, nil
}

func (r *CheckoutLockRepository) FindActiveByCart(ctx context.Context, cartID, userID uuid.UUID, now time.Time) (*checkout.Lock, error) {
	row := r.db.QueryRow(ctx, `
		SELECT `+checkoutLockColumns+`
		FROM checkout_locks
		WHERE cart_id = $1
		  AND user_id = $2
		  AND state NOT IN ('completed', 'failed')
		  AND expires_at > $3
		ORDER BY created_at DESC
		LIMIT 1`, cartID, userID, now)

	lock, err := scanCheckoutLock(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr(infra.KindNotFound, "no active checkout lock for cart", err)
		}
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to find active checkout lock", err)
	}
	return lock, nil
}

func (r *CheckoutLockRepository) FindExpiredActive(ctx context.Context, now time.Time, limit int32) ([]*checkout.Lock, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+checkoutLockColumns+`
		FROM checkout_locks
		WHERE state NOT IN ('completed', 'failed')
		  AND expires_at <= $1
		ORDER BY expires_at ASC
		LIMIT $2`, now, limit)
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to list expired checkout locks", err)
	}
	defer rows.Close()

	var locks []*checkout.Lock
	for rows.Next() {
		lock, err := scanCheckoutLock(rows)
		if err != nil {
			return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to scan checkout lock", err)
		}
		locks = append(locks, lock)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to iterate checkout locks", err)
	}
	return locks, nil
}

func scanCheckoutLock(row pgx.Row) (*checkout.Lock, error) {
	var (
		id, cartID, userID   uuid.UUID
		state, phase         string
		lockedAt, expiresAt  time.Time
		metadataRaw          []byte
		createdAt, updatedAt time.Time
	)
	if err := row.Scan(&id, &cartID, &userID, &state, &phase,
		&lockedAt, &expiresAt, &metadataRaw, &createdAt, &updatedAt); err != nil {
		return nil, err
	}

	metadata := map[string]string{}
	if len(metadataRaw) > 0 {
		if err := json.Unmarshal(metadataRaw, &metadata); err != nil {
			return nil, err
		}
	}

	return checkout.ReconstructLock(
		id, cartID, userID,
		checkout.State(state), checkout.Phase(phase),
		lockedAt, expiresAt,
		metadata,
		createdAt, updatedAt,
	), nil
}
