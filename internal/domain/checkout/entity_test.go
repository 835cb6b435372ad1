//go:build unit

package checkout_test

import (
	"testing"
	"time"

	"checkout-core/internal/domain/checkout"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLock(t *testing.T, now time.Time) *checkout.Lock {
	t.Helper()
	lock, err := checkout.NewLock(uuid.New(), uuid.New(), now, 10*time.Minute, 15*time.Minute)
	require.NoError(t, err)
	return lock
}

func TestNewLock(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("basic success case", func(t *testing.T) {
		lock := newLock(t, now)

		assert.NotEqual(t, uuid.Nil, lock.ID())
		assert.Equal(t, checkout.StatePending, lock.State())
		assert.Equal(t, checkout.Phase(""), lock.CurrentPhase())
		assert.Equal(t, now.Add(10*time.Minute), lock.ExpiresAt())
		assert.True(t, lock.IsActive(now))
	})

	t.Run("ttl is clamped to max", func(t *testing.T) {
		lock, err := checkout.NewLock(uuid.New(), uuid.New(), now, time.Hour, 15*time.Minute)
		require.NoError(t, err)
		assert.Equal(t, now.Add(15*time.Minute), lock.ExpiresAt())
	})

	t.Run("validation failures", func(t *testing.T) {
		testCases := []struct {
			name   string
			cartID uuid.UUID
			userID uuid.UUID
			ttl    time.Duration
			errIs  error
		}{
			{"missing cart", uuid.Nil, uuid.New(), time.Minute, checkout.ErrMissingCart},
			{"missing owner", uuid.New(), uuid.Nil, time.Minute, checkout.ErrMissingOwner},
			{"zero ttl", uuid.New(), uuid.New(), 0, checkout.ErrInvalidTTL},
			{"negative ttl", uuid.New(), uuid.New(), -time.Minute, checkout.ErrInvalidTTL},
		}
		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := checkout.NewLock(tc.cartID, tc.userID, now, tc.ttl, 15*time.Minute)
				assert.ErrorIs(t, err, tc.errIs)
			})
		}
	})
}

func TestLock_EnterPhase(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("walks every phase in order", func(t *testing.T) {
		lock := newLock(t, now)

		for _, p := range checkout.Phases {
			require.NoError(t, lock.EnterPhase(p, now))
			assert.Equal(t, p, lock.CurrentPhase())
			assert.Equal(t, checkout.PhaseState(p), lock.State())
		}
	})

	t.Run("rejects a backwards move", func(t *testing.T) {
		lock := newLock(t, now)
		require.NoError(t, lock.EnterPhase(checkout.PhasePriceLock, now))

		err := lock.EnterPhase(checkout.PhaseCartValidation, now)
		assert.ErrorIs(t, err, checkout.ErrPhaseOrder)
	})

	t.Run("rejects re-entering the current phase", func(t *testing.T) {
		lock := newLock(t, now)
		require.NoError(t, lock.EnterPhase(checkout.PhaseCartValidation, now))

		err := lock.EnterPhase(checkout.PhaseCartValidation, now)
		assert.ErrorIs(t, err, checkout.ErrPhaseOrder)
	})

	t.Run("allows skipping ahead", func(t *testing.T) {
		lock := newLock(t, now)
		require.NoError(t, lock.EnterPhase(checkout.PhaseCartValidation, now))
		assert.NoError(t, lock.EnterPhase(checkout.PhasePaymentCapture, now))
	})

	t.Run("rejects unknown phase", func(t *testing.T) {
		lock := newLock(t, now)
		err := lock.EnterPhase(checkout.Phase("shipping"), now)
		assert.ErrorIs(t, err, checkout.ErrUnknownPhase)
	})

	t.Run("rejects expired lock", func(t *testing.T) {
		lock := newLock(t, now)
		later := now.Add(11 * time.Minute)
		err := lock.EnterPhase(checkout.PhaseCartValidation, later)
		assert.ErrorIs(t, err, checkout.ErrLockExpired)
	})

	t.Run("rejects terminal lock", func(t *testing.T) {
		lock := newLock(t, now)
		require.NoError(t, lock.Complete())
		err := lock.EnterPhase(checkout.PhaseCartValidation, now)
		assert.ErrorIs(t, err, checkout.ErrLockTerminal)
	})
}

func TestLock_Fail(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("records failed phase and reason", func(t *testing.T) {
		lock := newLock(t, now)
		require.NoError(t, lock.EnterPhase(checkout.PhasePaymentCapture, now))

		require.NoError(t, lock.Fail(checkout.PhasePaymentCapture, "capture timed out"))
		assert.Equal(t, checkout.StateFailed, lock.State())

		phase, ok := lock.MetadataValue(checkout.MetaFailedPhase)
		require.True(t, ok)
		assert.Equal(t, "payment_capture", phase)

		reason, ok := lock.MetadataValue(checkout.MetaFailureReason)
		require.True(t, ok)
		assert.Equal(t, "capture timed out", reason)
	})

	t.Run("failing twice is a no-op", func(t *testing.T) {
		lock := newLock(t, now)
		require.NoError(t, lock.Fail(checkout.PhaseCartValidation, "first"))
		require.NoError(t, lock.Fail(checkout.PhasePriceLock, "second"))

		phase, _ := lock.MetadataValue(checkout.MetaFailedPhase)
		assert.Equal(t, "cart_validation", phase)
	})

	t.Run("completed lock cannot fail", func(t *testing.T) {
		lock := newLock(t, now)
		require.NoError(t, lock.Complete())
		err := lock.Fail(checkout.PhaseStockCommit, "late failure")
		assert.ErrorIs(t, err, checkout.ErrAlreadyComplete)
	})
}

func TestLock_Expiry(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	lock := newLock(t, now)

	assert.False(t, lock.Expired(now))
	assert.False(t, lock.Expired(now.Add(10*time.Minute-time.Second)))
	assert.True(t, lock.Expired(now.Add(10*time.Minute)))
	assert.False(t, lock.IsActive(now.Add(10*time.Minute)))
}

func TestLock_Metadata(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	lock := newLock(t, now)

	lock.SetMetadata(checkout.MetaOrderID, "abc")
	v, ok := lock.MetadataValue(checkout.MetaOrderID)
	require.True(t, ok)
	assert.Equal(t, "abc", v)

	// Metadata() returns a copy, not the backing map.
	lock.Metadata()[checkout.MetaOrderID] = "mutated"
	v, _ = lock.MetadataValue(checkout.MetaOrderID)
	assert.Equal(t, "abc", v)
}
