package bootstrap

import (
	"context"
	"log/slog"

	"checkout-core/internal/infra/events"
	"checkout-core/internal/pkg/config"
	"checkout-core/internal/usecase/commands"

	"go.uber.org/fx"
)

var EventsModule = fx.Module("events",
	fx.Provide(
		NewSignalEmitter,
	),
)

// NewSignalEmitter publishes to Kafka when brokers are configured and falls
// back to the structured log otherwise.
func NewSignalEmitter(lc fx.Lifecycle, cfg config.Config) commands.SignalEmitter {
	if len(cfg.Kafka.Brokers) == 0 || cfg.Kafka.Brokers[0] == "" {
		slog.Warn("no kafka brokers configured, signals go to the log")
		return events.NewLogEmitter()
	}

	emitter := events.NewKafkaEmitter(cfg.Kafka)
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return emitter.Close()
		},
	})
	return emitter
}
