package shared

import (
	"context"
	"errors"
	"time"
)

// ErrLockNotAcquired means the mutex could not be obtained within its wait
// window. Callers surface this as a retryable condition, never as a silent
// skip.
var ErrLockNotAcquired = errors.New("lock not acquired within wait window")

// StockLocker serializes stock claims per (variant, warehouse) key. Acquire
// blocks up to wait for a concurrent holder to finish; the returned handle
// must be released on every exit path.
type StockLocker interface {
	Acquire(ctx context.Context, key string, ttl, wait time.Duration) (LockHandle, error)
}

type LockHandle interface {
	// Token identifies this acquisition; releases are token-checked so an
	// expired holder cannot free a later holder's lock.
	Token() string
	ExpiresAt() time.Time
	Release(ctx context.Context) error
}
