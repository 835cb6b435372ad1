package lock

import (
	"context"
	"time"

	"checkout-core/internal/pkg/errs"
	"checkout-core/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// releaseScript deletes the key only while this acquisition still owns it, so
// a holder whose TTL lapsed cannot free the next holder's lock.
var releaseScript = redis.NewScript(`
	if redis.call("GET", KEYS[1]) == ARGV[1] then
		return redis.call("DEL", KEYS[1])
	end
	return 0
`)

const acquirePollInterval = 50 * time.Millisecond

// RedisLocker implements the per-key stock mutex on Redis SET NX PX. One
// instance is shared by every process touching the same inventory, which makes
// it the production locker; the in-process variant covers tests and
// single-node deployments.
type RedisLocker struct {
	client redis.UniversalClient
}

func NewRedisLocker(client redis.UniversalClient) *RedisLocker {
	return &RedisLocker{client: client}
}

var _ shared.StockLocker = (*RedisLocker)(nil)

func (l *RedisLocker) Acquire(ctx context.Context, key string, ttl, wait time.Duration) (shared.LockHandle, error) {
	token := uuid.NewString()
	deadline := time.Now().Add(wait)

	for {
		ok, err := l.client.SetNX(ctx, key, token, ttl).Result()
		if err != nil {
			return nil, errs.Wrap(err, "redis lock acquire failed")
		}
		if ok {
			return &redisHandle{
				client:    l.client,
				key:       key,
				token:     token,
				expiresAt: time.Now().Add(ttl),
			}, nil
		}

		if !time.Now().Add(acquirePollInterval).Before(deadline) {
			return nil, shared.ErrLockNotAcquired
		}
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(acquirePollInterval):
		}
	}
}

type redisHandle struct {
	client    redis.UniversalClient
	key       string
	token     string
	expiresAt time.Time
}

func (h *redisHandle) Token() string        { return h.token }
func (h *redisHandle) ExpiresAt() time.Time { return h.expiresAt }

func (h *redisHandle) Release(ctx context.Context) error {
	if err := releaseScript.Run(ctx, h.client, []string{h.key}, h.token).Err(); err != nil {
		return errs.Wrap(err, "redis lock release failed")
	}
	return nil
}
