package worker

import (
	"context"
	"log/slog"

	"checkout-core/internal/pkg/clock"
	"checkout-core/internal/pkg/config"
	"checkout-core/internal/usecase/commands"
)

// Sweeper periodically reclaims abandoned checkout state: expired cart
// reservations and expired in-flight checkout locks. It is the safety net
// behind saga rollback; anything rollback already released is a no-op here.
type Sweeper struct {
	stock    commands.StockCommands
	checkout commands.CheckoutCommands
	cfg      config.CheckoutConfig
	clock    clock.Clock

	cancel context.CancelFunc
	done   chan struct{}
}

func NewSweeper(
	stock commands.StockCommands,
	checkout commands.CheckoutCommands,
	cfg config.CheckoutConfig,
	clk clock.Clock,
) *Sweeper {
	return &Sweeper{
		stock:    stock,
		checkout: checkout,
		cfg:      cfg,
		clock:    clk,
	}
}

func (s *Sweeper) Start(ctx context.Context) {
	ctx, s.cancel = context.WithCancel(context.WithoutCancel(ctx))
	s.done = make(chan struct{})

	go func() {
		defer close(s.done)
		for {
			select {
			case <-ctx.Done():
				return
			case <-s.clock.After(s.cfg.SweepInterval):
				s.sweep(ctx)
			}
		}
	}()
}

func (s *Sweeper) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
}

func (s *Sweeper) sweep(ctx context.Context) {
	released, err := s.stock.ReleaseExpired(ctx, s.cfg.SweepBatchSize)
	if err != nil {
		slog.Error("reservation sweep failed", "error", err.Error())
	} else if released > 0 {
		slog.Info("released expired reservations", "count", released)
	}

	reclaimed, err := s.checkout.ReclaimExpiredLocks(ctx, s.cfg.LockReclaimBatch)
	if err != nil {
		slog.Error("checkout lock sweep failed", "error", err.Error())
	} else if reclaimed > 0 {
		slog.Info("reclaimed expired checkout locks", "count", reclaimed)
	}
}
