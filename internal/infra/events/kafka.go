package events

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"checkout-core/internal/pkg/config"
	"checkout-core/internal/usecase/commands"

	"github.com/segmentio/kafka-go"
)

// KafkaEmitter publishes lifecycle signals to a single topic keyed by signal
// name. Delivery is fire-and-forget: emission happens after the state change
// committed, so a lost signal never loses state, and a slow broker never
// blocks a checkout.
type KafkaEmitter struct {
	writer *kafka.Writer
}

func NewKafkaEmitter(cfg config.KafkaConfig) *KafkaEmitter {
	return &KafkaEmitter{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(cfg.Brokers...),
			Topic:        cfg.Topic,
			Balancer:     &kafka.Hash{},
			BatchTimeout: 50 * time.Millisecond,
			Async:        true,
			Completion: func(messages []kafka.Message, err error) {
				if err != nil {
					slog.Warn("signal delivery failed", "count", len(messages), "error", err.Error())
				}
			},
		},
	}
}

var _ commands.SignalEmitter = (*KafkaEmitter)(nil)

func (e *KafkaEmitter) Emit(ctx context.Context, sig commands.Signal) {
	payload, err := json.Marshal(sig)
	if err != nil {
		slog.Warn("failed to encode signal", "signal", sig.Name, "error", err.Error())
		return
	}

	err = e.writer.WriteMessages(context.WithoutCancel(ctx), kafka.Message{
		Key:   []byte(sig.Name),
		Value: payload,
		Time:  sig.At,
	})
	if err != nil {
		slog.Warn("failed to emit signal", "signal", sig.Name, "error", err.Error())
	}
}

func (e *KafkaEmitter) Close() error {
	return e.writer.Close()
}
