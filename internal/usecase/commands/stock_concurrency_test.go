//go:build unit

package commands_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"checkout-core/internal/domain/inventory"
	"checkout-core/internal/infra/lock"
	"checkout-core/internal/pkg/clock"
	"checkout-core/internal/pkg/config"
	"checkout-core/internal/usecase/commands"
	"checkout-core/internal/usecase/queries"
	"checkout-core/internal/usecase/shared"
	commandsmock "checkout-core/tests/mock/commands"
	sharedmock "checkout-core/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// TestReserve_ConcurrentClaimsNeverOversell drives many goroutines through
// Reserve against a single inventory row, with the real in-process mutex in
// place of the repository's row lock. The summed grants must never exceed
// what was on hand, whatever the interleaving. Run with -race.
func TestReserve_ConcurrentClaimsNeverOversell(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uow := sharedmock.NewMockUnitOfWork(ctrl)
	tx := sharedmock.NewMockTx(ctrl)
	reservations := sharedmock.NewMockReservationRepository(ctrl)
	levels := sharedmock.NewMockInventoryRepository(ctrl)
	movements := sharedmock.NewMockMovementRepository(ctrl)
	selector := commandsmock.NewMockWarehouseSelector(ctrl)
	emitter := commandsmock.NewMockSignalEmitter(ctrl)

	variantID := uuid.New()
	warehouseID := uuid.New()

	// One shared row. It is only touched inside the stock mutex the code
	// under test acquires, so any unlocked access trips the race detector.
	level := inventory.ReconstructLevel(variantID, warehouseID, 10, 0, 0, 0, 0, 0, 0)

	uow.EXPECT().Within(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, tx)
		},
	).AnyTimes()
	tx.EXPECT().Reservations().Return(reservations).AnyTimes()
	tx.EXPECT().Inventory().Return(levels).AnyTimes()
	tx.EXPECT().Movements().Return(movements).AnyTimes()
	emitter.EXPECT().Emit(gomock.Any(), gomock.Any()).AnyTimes()

	levels.EXPECT().FindForUpdate(gomock.Any(), variantID, warehouseID).Return(level, nil).AnyTimes()
	levels.EXPECT().Save(gomock.Any(), level).Return(nil).AnyTimes()
	reservations.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	movements.EXPECT().Append(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	svc := commands.NewStockCommands(
		uow, lock.NewInProcessLocker(), selector, emitter,
		config.CheckoutConfig{
			ReservationTTL: 30 * time.Minute,
			StockMutexTTL:  10 * time.Second,
			StockMutexWait: 5 * time.Second,
		},
		clock.NewMockClock(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)),
	)

	const workers = 8
	const perWorker = 3

	var wg sync.WaitGroup
	grants := make(chan *queries.ReservationView, workers)
	rejections := make(chan error, workers)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			view, err := svc.Reserve(context.Background(), commands.ReserveParams{
				VariantID:   variantID,
				Quantity:    perWorker,
				Reference:   inventory.CheckoutReference(uuid.New()),
				WarehouseID: &warehouseID,
				Actor:       "load-test",
			})
			if err != nil {
				rejections <- err
				return
			}
			grants <- view
		}()
	}
	wg.Wait()
	close(grants)
	close(rejections)

	var granted int64
	for view := range grants {
		require.LessOrEqual(t, view.ReservedQty, view.RequestedQty)
		granted += view.ReservedQty
	}
	// latecomers find the row empty and are rejected, not overdrawn
	for err := range rejections {
		require.ErrorIs(t, err, commands.ErrInsufficientStock)
	}

	require.Equal(t, int64(10), granted)
	require.Equal(t, int64(10), level.Reserved())
	require.Zero(t, level.Available())
	require.LessOrEqual(t, level.Reserved(), level.Quantity())
}
