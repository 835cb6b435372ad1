package bootstrap

import (
	"context"
	"log/slog"

	"checkout-core/internal/infra/lock"
	"checkout-core/internal/pkg/config"
	"checkout-core/internal/usecase/shared"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var LockerModule = fx.Module("locker",
	fx.Provide(
		NewStockLocker,
	),
)

// NewStockLocker picks Redis when configured, otherwise the in-process mutex.
// The in-process locker only serializes within one node; multi-node
// deployments must configure Redis.
func NewStockLocker(lc fx.Lifecycle, cfg config.Config) (shared.StockLocker, error) {
	if cfg.Redis.Addr == "" {
		slog.Warn("no redis configured, using in-process stock locker")
		return lock.NewInProcessLocker(), nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return client.Ping(ctx).Err()
		},
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	return lock.NewRedisLocker(client), nil
}
