package checkout

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidTTL      = errors.New("lock ttl must be positive")
	ErrLockTerminal    = errors.New("lock is in a terminal state")
	ErrLockExpired     = errors.New("lock has expired")
	ErrPhaseOrder      = errors.New("phase would move backwards")
	ErrUnknownPhase    = errors.New("unknown phase")
	ErrMissingCart     = errors.New("cart reference required")
	ErrMissingOwner    = errors.New("owning user required")
	ErrAlreadyComplete = errors.New("lock already completed")
)

// Lock is the durable record of one checkout attempt on one cart. It is owned
// and mutated only by the saga that created it.
type Lock struct {
	id        uuid.UUID
	cartID    uuid.UUID
	userID    uuid.UUID
	state     State
	phase     Phase // last entered phase, empty while pending
	lockedAt  time.Time
	expiresAt time.Time
	metadata  map[string]string
	createdAt time.Time
	updatedAt time.Time
}

// NewLock creates a pending lock. The requested TTL is clamped to maxTTL; a
// non-positive TTL is an error, defaulting is the caller's concern.
func NewLock(cartID, userID uuid.UUID, now time.Time, ttl, maxTTL time.Duration) (*Lock, error) {
	if cartID == uuid.Nil {
		return nil, ErrMissingCart
	}
	if userID == uuid.Nil {
		return nil, ErrMissingOwner
	}
	if ttl <= 0 {
		return nil, ErrInvalidTTL
	}
	if ttl > maxTTL {
		ttl = maxTTL
	}

	return &Lock{
		id:        uuid.New(),
		cartID:    cartID,
		userID:    userID,
		state:     StatePending,
		lockedAt:  now,
		expiresAt: now.Add(ttl),
		metadata:  map[string]string{},
	}, nil
}

func ReconstructLock(
	id, cartID, userID uuid.UUID,
	state State,
	phase Phase,
	lockedAt, expiresAt time.Time,
	metadata map[string]string,
	createdAt, updatedAt time.Time,
) *Lock {
	if metadata == nil {
		metadata = map[string]string{}
	}
	return &Lock{
		id:        id,
		cartID:    cartID,
		userID:    userID,
		state:     state,
		phase:     phase,
		lockedAt:  lockedAt,
		expiresAt: expiresAt,
		metadata:  metadata,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

// EnterPhase advances the lock into p. Phases are monotonically non-decreasing
// within one run; re-entering the current phase is rejected as a backwards move.
func (l *Lock) EnterPhase(p Phase, now time.Time) error {
	if !p.Valid() {
		return ErrUnknownPhase
	}
	if l.state.Terminal() {
		return ErrLockTerminal
	}
	if !l.IsActive(now) {
		return ErrLockExpired
	}
	if l.phase != "" && p.Index() <= l.phase.Index() {
		return ErrPhaseOrder
	}

	l.phase = p
	l.state = PhaseState(p)
	return nil
}

func (l *Lock) Complete() error {
	if l.state.Terminal() {
		return ErrLockTerminal
	}
	l.state = StateCompleted
	return nil
}

// Fail moves the lock to the failed state recording the phase that broke and
// the error detail. Failing an already-failed lock is a no-op; a completed
// lock can never fail.
func (l *Lock) Fail(at Phase, reason string) error {
	if l.state == StateCompleted {
		return ErrAlreadyComplete
	}
	if l.state == StateFailed {
		return nil
	}
	l.state = StateFailed
	l.metadata[MetaFailedPhase] = at.String()
	l.metadata[MetaFailureReason] = reason
	return nil
}

// IsActive reports whether the lock still owns its checkout attempt: neither
// terminal nor past its TTL.
func (l *Lock) IsActive(now time.Time) bool {
	return !l.state.Terminal() && now.Before(l.expiresAt)
}

func (l *Lock) Expired(now time.Time) bool {
	return !now.Before(l.expiresAt)
}

func (l *Lock) SetMetadata(key, value string) {
	l.metadata[key] = value
}

func (l *Lock) MetadataValue(key string) (string, bool) {
	v, ok := l.metadata[key]
	return v, ok
}

func (l *Lock) ID() uuid.UUID              { return l.id }
func (l *Lock) CartID() uuid.UUID          { return l.cartID }
func (l *Lock) UserID() uuid.UUID          { return l.userID }
func (l *Lock) State() State               { return l.state }
func (l *Lock) CurrentPhase() Phase        { return l.phase }
func (l *Lock) LockedAt() time.Time        { return l.lockedAt }
func (l *Lock) ExpiresAt() time.Time       { return l.expiresAt }
func (l *Lock) CreatedAt() time.Time       { return l.createdAt }
func (l *Lock) UpdatedAt() time.Time       { return l.updatedAt }
func (l *Lock) Metadata() map[string]string {
	out := make(map[string]string, len(l.metadata))
	for k, v := range l.metadata {
		out[k] = v
	}
	return out
}
