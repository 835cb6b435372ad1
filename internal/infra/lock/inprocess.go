package lock

import (
	"context"
	"sync"
	"time"

	"checkout-core/internal/usecase/shared"

	"github.com/google/uuid"
)

// InProcessLocker is the single-node stock mutex: one keyed mutex table inside
// the process. Entries are reference-counted and dropped once the last waiter
// leaves, so the table does not grow with the key space.
type InProcessLocker struct {
	mu      sync.Mutex
	entries map[string]*lockEntry
}

type lockEntry struct {
	ch   chan struct{} // capacity 1; holding the slot means holding the lock
	refs int
}

func NewInProcessLocker() *InProcessLocker {
	return &InProcessLocker{entries: map[string]*lockEntry{}}
}

var _ shared.StockLocker = (*InProcessLocker)(nil)

func (l *InProcessLocker) Acquire(ctx context.Context, key string, ttl, wait time.Duration) (shared.LockHandle, error) {
	entry := l.ref(key)

	select {
	case entry.ch <- struct{}{}:
	case <-ctx.Done():
		l.unref(key)
		return nil, ctx.Err()
	case <-time.After(wait):
		l.unref(key)
		return nil, shared.ErrLockNotAcquired
	}

	return &inProcessHandle{
		locker:    l,
		key:       key,
		entry:     entry,
		token:     uuid.NewString(),
		expiresAt: time.Now().Add(ttl),
	}, nil
}

func (l *InProcessLocker) ref(key string) *lockEntry {
	l.mu.Lock()
	defer l.mu.Unlock()

	entry, ok := l.entries[key]
	if !ok {
		entry = &lockEntry{ch: make(chan struct{}, 1)}
		l.entries[key] = entry
	}
	entry.refs++
	return entry
}

func (l *InProcessLocker) unref(key string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	entry, ok := l.entries[key]
	if !ok {
		return
	}
	entry.refs--
	if entry.refs == 0 {
		delete(l.entries, key)
	}
}

type inProcessHandle struct {
	locker    *InProcessLocker
	key       string
	entry     *lockEntry
	token     string
	expiresAt time.Time
	released  sync.Once
}

func (h *inProcessHandle) Token() string        { return h.token }
func (h *inProcessHandle) ExpiresAt() time.Time { return h.expiresAt }

func (h *inProcessHandle) Release(_ context.Context) error {
	h.released.Do(func() {
		<-h.entry.ch
		h.locker.unref(h.key)
	})
	return nil
}
