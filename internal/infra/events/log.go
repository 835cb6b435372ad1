package events

import (
	"context"
	"log/slog"

	"checkout-core/internal/usecase/commands"
)

// LogEmitter writes signals to the structured log. It is the fallback when no
// broker is configured, and the default in tests.
type LogEmitter struct{}

func NewLogEmitter() *LogEmitter {
	return &LogEmitter{}
}

var _ commands.SignalEmitter = (*LogEmitter)(nil)

func (e *LogEmitter) Emit(_ context.Context, sig commands.Signal) {
	slog.Info("signal", "name", sig.Name, "at", sig.At, "fields", sig.Fields)
}
