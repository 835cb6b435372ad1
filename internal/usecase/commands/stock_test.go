//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"checkout-core/internal/domain/inventory"
	"checkout-core/internal/infra"
	"checkout-core/internal/pkg/clock"
	"checkout-core/internal/pkg/config"
	"checkout-core/internal/pkg/errs"
	"checkout-core/internal/usecase/commands"
	"checkout-core/internal/usecase/shared"
	commandsmock "checkout-core/tests/mock/commands"
	sharedmock "checkout-core/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type StockCommandsTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	uow          *sharedmock.MockUnitOfWork
	tx           *sharedmock.MockTx
	reservations *sharedmock.MockReservationRepository
	levels       *sharedmock.MockInventoryRepository
	movements    *sharedmock.MockMovementRepository
	locker       *sharedmock.MockStockLocker
	handle       *sharedmock.MockLockHandle
	selector     *commandsmock.MockWarehouseSelector
	emitter      *commandsmock.MockSignalEmitter
	clock        *clock.MockClock
	svc          commands.StockCommands

	variantID uuid.UUID
}

func TestStockCommandsSuite(t *testing.T) {
	suite.Run(t, new(StockCommandsTestSuite))
}

func (s *StockCommandsTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.uow = sharedmock.NewMockUnitOfWork(s.ctrl)
	s.tx = sharedmock.NewMockTx(s.ctrl)
	s.reservations = sharedmock.NewMockReservationRepository(s.ctrl)
	s.levels = sharedmock.NewMockInventoryRepository(s.ctrl)
	s.movements = sharedmock.NewMockMovementRepository(s.ctrl)
	s.locker = sharedmock.NewMockStockLocker(s.ctrl)
	s.handle = sharedmock.NewMockLockHandle(s.ctrl)
	s.selector = commandsmock.NewMockWarehouseSelector(s.ctrl)
	s.emitter = commandsmock.NewMockSignalEmitter(s.ctrl)
	s.clock = clock.NewMockClock(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))

	s.uow.EXPECT().Within(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, s.tx)
		},
	).AnyTimes()
	s.tx.EXPECT().Reservations().Return(s.reservations).AnyTimes()
	s.tx.EXPECT().Inventory().Return(s.levels).AnyTimes()
	s.tx.EXPECT().Movements().Return(s.movements).AnyTimes()
	s.emitter.EXPECT().Emit(gomock.Any(), gomock.Any()).AnyTimes()

	s.handle.EXPECT().Token().Return("mutex-token").AnyTimes()
	s.handle.EXPECT().ExpiresAt().Return(s.clock.Now().Add(10 * time.Second)).AnyTimes()
	s.handle.EXPECT().Release(gomock.Any()).Return(nil).AnyTimes()

	s.svc = commands.NewStockCommands(
		s.uow, s.locker, s.selector, s.emitter,
		config.CheckoutConfig{
			ReservationTTL: 30 * time.Minute,
			StockMutexTTL:  10 * time.Second,
			StockMutexWait: 3 * time.Second,
		},
		s.clock,
	)

	s.variantID = uuid.New()
}

func (s *StockCommandsTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *StockCommandsTestSuite) expectAcquire(warehouseID uuid.UUID) {
	s.locker.EXPECT().
		Acquire(gomock.Any(), "stock:"+s.variantID.String()+":"+warehouseID.String(),
			10*time.Second, 3*time.Second).
		Return(s.handle, nil)
}

func (s *StockCommandsTestSuite) level(warehouseID uuid.UUID, quantity, reserved int64) *inventory.Level {
	return inventory.ReconstructLevel(s.variantID, warehouseID, quantity, reserved, 0, 0, 0, 0, 0)
}

func (s *StockCommandsTestSuite) reserveParams(quantity int64) commands.ReserveParams {
	return commands.ReserveParams{
		VariantID: s.variantID,
		Quantity:  quantity,
		Reference: inventory.CheckoutReference(uuid.New()),
		Actor:     "user-1",
	}
}

// ================================================================================
// Reserve
// ================================================================================

func (s *StockCommandsTestSuite) TestReserve_FullClaimAtFirstWarehouse() {
	warehouseID := uuid.New()
	s.selector.EXPECT().RankWarehouses(gomock.Any(), s.variantID, int64(3)).
		Return([]uuid.UUID{warehouseID}, nil)
	s.expectAcquire(warehouseID)

	level := s.level(warehouseID, 10, 2)
	s.levels.EXPECT().FindForUpdate(gomock.Any(), s.variantID, warehouseID).Return(level, nil)
	s.reservations.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
	s.levels.EXPECT().Save(gomock.Any(), level).Return(nil)
	s.movements.EXPECT().Append(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, m *inventory.Movement) error {
			s.Equal(inventory.MovementReservation, m.Type)
			s.Equal(int64(-3), m.Quantity)
			s.Equal(int64(8), m.AvailableBefore)
			s.Equal(int64(5), m.AvailableAfter)
			return nil
		},
	)

	view, err := s.svc.Reserve(context.Background(), s.reserveParams(3))
	s.Require().NoError(err)
	s.Equal(int64(3), view.RequestedQty)
	s.Equal(int64(3), view.ReservedQty)
	s.Equal(warehouseID, view.WarehouseID)
	// the claim reduced available but left on-hand quantity alone
	s.Equal(int64(5), level.Available())
	s.Equal(int64(10), level.Quantity())
}

func (s *StockCommandsTestSuite) TestReserve_PartialClaimIsCappedNotErrored() {
	warehouseID := uuid.New()
	s.selector.EXPECT().RankWarehouses(gomock.Any(), s.variantID, int64(5)).
		Return([]uuid.UUID{warehouseID}, nil)
	s.expectAcquire(warehouseID)

	s.levels.EXPECT().FindForUpdate(gomock.Any(), s.variantID, warehouseID).
		Return(s.level(warehouseID, 2, 0), nil)
	s.reservations.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
	s.levels.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)
	s.movements.EXPECT().Append(gomock.Any(), gomock.Any()).Return(nil)

	view, err := s.svc.Reserve(context.Background(), s.reserveParams(5))
	s.Require().NoError(err)
	s.Equal(int64(5), view.RequestedQty)
	s.Equal(int64(2), view.ReservedQty)
}

func (s *StockCommandsTestSuite) TestReserve_FallsBackToNextWarehouse() {
	emptyWH := uuid.New()
	stockedWH := uuid.New()
	s.selector.EXPECT().RankWarehouses(gomock.Any(), s.variantID, int64(2)).
		Return([]uuid.UUID{emptyWH, stockedWH}, nil)

	s.expectAcquire(emptyWH)
	s.levels.EXPECT().FindForUpdate(gomock.Any(), s.variantID, emptyWH).
		Return(s.level(emptyWH, 3, 3), nil)

	s.expectAcquire(stockedWH)
	s.levels.EXPECT().FindForUpdate(gomock.Any(), s.variantID, stockedWH).
		Return(s.level(stockedWH, 10, 0), nil)
	s.reservations.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
	s.levels.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)
	s.movements.EXPECT().Append(gomock.Any(), gomock.Any()).Return(nil)

	view, err := s.svc.Reserve(context.Background(), s.reserveParams(2))
	s.Require().NoError(err)
	s.Equal(stockedWH, view.WarehouseID)
	s.Equal(int64(2), view.ReservedQty)
}

func (s *StockCommandsTestSuite) TestReserve_AllWarehousesExhausted() {
	warehouseID := uuid.New()
	s.selector.EXPECT().RankWarehouses(gomock.Any(), s.variantID, int64(2)).
		Return([]uuid.UUID{warehouseID}, nil)
	s.expectAcquire(warehouseID)
	s.levels.EXPECT().FindForUpdate(gomock.Any(), s.variantID, warehouseID).
		Return(s.level(warehouseID, 0, 0), nil)

	_, err := s.svc.Reserve(context.Background(), s.reserveParams(2))
	s.ErrorIs(err, commands.ErrInsufficientStock)
}

func (s *StockCommandsTestSuite) TestReserve_PinnedWarehouseSkipsSelector() {
	warehouseID := uuid.New()
	// no RankWarehouses expectation: the pin decides
	s.expectAcquire(warehouseID)
	s.levels.EXPECT().FindForUpdate(gomock.Any(), s.variantID, warehouseID).
		Return(s.level(warehouseID, 5, 0), nil)
	s.reservations.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
	s.levels.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)
	s.movements.EXPECT().Append(gomock.Any(), gomock.Any()).Return(nil)

	p := s.reserveParams(1)
	p.WarehouseID = &warehouseID
	view, err := s.svc.Reserve(context.Background(), p)
	s.Require().NoError(err)
	s.Equal(warehouseID, view.WarehouseID)
}

func (s *StockCommandsTestSuite) TestReserve_SelectorFailure() {
	s.selector.EXPECT().RankWarehouses(gomock.Any(), s.variantID, int64(2)).
		Return(nil, errs.New("ranking service unavailable"))

	_, err := s.svc.Reserve(context.Background(), s.reserveParams(2))
	s.ErrorIs(err, commands.ErrWarehouseSelection)
}

func (s *StockCommandsTestSuite) TestReserve_NoCandidates() {
	s.selector.EXPECT().RankWarehouses(gomock.Any(), s.variantID, int64(2)).
		Return([]uuid.UUID{}, nil)

	_, err := s.svc.Reserve(context.Background(), s.reserveParams(2))
	s.ErrorIs(err, commands.ErrInsufficientStock)
}

func (s *StockCommandsTestSuite) TestReserve_NonPositiveQuantity() {
	_, err := s.svc.Reserve(context.Background(), s.reserveParams(0))
	s.ErrorIs(err, commands.ErrInvalidAdjustment)
}

func (s *StockCommandsTestSuite) TestReserve_LockContention() {
	warehouseID := uuid.New()
	s.selector.EXPECT().RankWarehouses(gomock.Any(), s.variantID, int64(2)).
		Return([]uuid.UUID{warehouseID}, nil)
	s.locker.EXPECT().Acquire(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, shared.ErrLockNotAcquired)

	_, err := s.svc.Reserve(context.Background(), s.reserveParams(2))
	s.ErrorIs(err, commands.ErrLockContention)
}

// ================================================================================
// Release
// ================================================================================

func (s *StockCommandsTestSuite) cartReservation(warehouseID uuid.UUID, requested, reserved int64) *inventory.Reservation {
	res, err := inventory.NewCartReservation(
		s.variantID, warehouseID,
		requested, reserved,
		inventory.CheckoutReference(uuid.New()),
		"mutex-token", s.clock.Now().Add(10*time.Second),
		s.clock.Now(), 30*time.Minute,
	)
	s.Require().NoError(err)
	return res
}

func (s *StockCommandsTestSuite) TestRelease_ReturnsClaimToAvailable() {
	warehouseID := uuid.New()
	res := s.cartReservation(warehouseID, 3, 3)

	s.reservations.EXPECT().FindByID(gomock.Any(), res.ID()).Return(res, nil).Times(2)
	s.expectAcquire(warehouseID)

	level := s.level(warehouseID, 10, 5)
	s.levels.EXPECT().FindForUpdate(gomock.Any(), s.variantID, warehouseID).Return(level, nil)
	s.reservations.EXPECT().Update(gomock.Any(), res).Return(nil)
	s.levels.EXPECT().Save(gomock.Any(), level).Return(nil)
	s.movements.EXPECT().Append(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, m *inventory.Movement) error {
			s.Equal(inventory.MovementRelease, m.Type)
			s.Equal(int64(3), m.Quantity)
			return nil
		},
	)

	released, err := s.svc.Release(context.Background(), res.ID(), "checkout rolled back", "system")
	s.Require().NoError(err)
	s.True(released)
	s.Equal(int64(8), level.Available())
	s.Equal(int64(10), level.Quantity())
}

func (s *StockCommandsTestSuite) TestRelease_SecondCallIsNoOp() {
	warehouseID := uuid.New()
	res := s.cartReservation(warehouseID, 3, 3)
	s.Require().True(res.Release())

	// the pre-check short-circuits without touching the locker
	s.reservations.EXPECT().FindByID(gomock.Any(), res.ID()).Return(res, nil)

	released, err := s.svc.Release(context.Background(), res.ID(), "again", "system")
	s.Require().NoError(err)
	s.False(released)
}

func (s *StockCommandsTestSuite) TestRelease_UnknownReservation() {
	id := uuid.New()
	s.reservations.EXPECT().FindByID(gomock.Any(), id).
		Return(nil, infra.WrapRepoErr(infra.KindNotFound, "reservation not found", nil))

	_, err := s.svc.Release(context.Background(), id, "cleanup", "system")
	s.ErrorIs(err, commands.ErrReservationNotFound)
}

// ================================================================================
// Confirm
// ================================================================================

func (s *StockCommandsTestSuite) TestConfirm_RepointsReservationAtOrder() {
	warehouseID := uuid.New()
	orderID := uuid.New()
	res := s.cartReservation(warehouseID, 2, 2)

	s.reservations.EXPECT().FindByID(gomock.Any(), res.ID()).Return(res, nil).Times(2)
	s.expectAcquire(warehouseID)
	s.reservations.EXPECT().Update(gomock.Any(), res).Return(nil)

	err := s.svc.Confirm(context.Background(), res.ID(), orderID)
	s.Require().NoError(err)
	s.Equal(inventory.ReservationStatusOrderConfirmed, res.Status())
	s.Equal(inventory.OrderReference(orderID), res.Ref())
	s.Nil(res.ExpiresAt())
}

func (s *StockCommandsTestSuite) TestConfirm_AlreadyConfirmed() {
	warehouseID := uuid.New()
	res := s.cartReservation(warehouseID, 2, 2)
	s.Require().NoError(res.Confirm(uuid.New()))

	s.reservations.EXPECT().FindByID(gomock.Any(), res.ID()).Return(res, nil).Times(2)
	s.expectAcquire(warehouseID)

	err := s.svc.Confirm(context.Background(), res.ID(), uuid.New())
	s.ErrorIs(err, commands.ErrReservationImmutable)
}

// ================================================================================
// CompletePartial
// ================================================================================

func (s *StockCommandsTestSuite) TestCompletePartial_FillsShortfall() {
	warehouseID := uuid.New()
	res := s.cartReservation(warehouseID, 5, 2)

	s.reservations.EXPECT().FindByID(gomock.Any(), res.ID()).Return(res, nil).Times(2)
	s.expectAcquire(warehouseID)

	level := s.level(warehouseID, 10, 2)
	s.levels.EXPECT().FindForUpdate(gomock.Any(), s.variantID, warehouseID).Return(level, nil)
	s.reservations.EXPECT().Update(gomock.Any(), res).Return(nil)
	s.levels.EXPECT().Save(gomock.Any(), level).Return(nil)
	s.movements.EXPECT().Append(gomock.Any(), gomock.Any()).Return(nil)

	view, err := s.svc.CompletePartial(context.Background(), res.ID(), 3, "ops")
	s.Require().NoError(err)
	s.Equal(int64(5), view.ReservedQty)
}

func (s *StockCommandsTestSuite) TestCompletePartial_GrowthCappedByAvailable() {
	warehouseID := uuid.New()
	res := s.cartReservation(warehouseID, 5, 2)

	s.reservations.EXPECT().FindByID(gomock.Any(), res.ID()).Return(res, nil).Times(2)
	s.expectAcquire(warehouseID)

	// only one unit is free
	level := s.level(warehouseID, 3, 2)
	s.levels.EXPECT().FindForUpdate(gomock.Any(), s.variantID, warehouseID).Return(level, nil)
	s.reservations.EXPECT().Update(gomock.Any(), res).Return(nil)
	s.levels.EXPECT().Save(gomock.Any(), level).Return(nil)
	s.movements.EXPECT().Append(gomock.Any(), gomock.Any()).Return(nil)

	view, err := s.svc.CompletePartial(context.Background(), res.ID(), 3, "ops")
	s.Require().NoError(err)
	s.Equal(int64(3), view.ReservedQty)
}

func (s *StockCommandsTestSuite) TestCompletePartial_AlreadySatisfied() {
	res := s.cartReservation(uuid.New(), 2, 2)
	s.reservations.EXPECT().FindByID(gomock.Any(), res.ID()).Return(res, nil)

	_, err := s.svc.CompletePartial(context.Background(), res.ID(), 1, "ops")
	s.ErrorIs(err, commands.ErrReservationImmutable)
}

// ================================================================================
// CreateManual
// ================================================================================

func (s *StockCommandsTestSuite) TestCreateManual_OverrideMayGoNegative() {
	warehouseID := uuid.New()
	s.expectAcquire(warehouseID)

	level := s.level(warehouseID, 2, 0)
	s.levels.EXPECT().FindForUpdate(gomock.Any(), s.variantID, warehouseID).Return(level, nil)
	s.reservations.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
	s.levels.EXPECT().Save(gomock.Any(), level).Return(nil)
	s.movements.EXPECT().Append(gomock.Any(), gomock.Any()).Return(nil)

	view, err := s.svc.CreateManual(context.Background(), commands.ManualReservationParams{
		VariantID:   s.variantID,
		WarehouseID: warehouseID,
		Quantity:    5,
		Reason:      "flash sale hold",
		Actor:       "ops",
	})
	s.Require().NoError(err)
	s.Equal(int64(5), view.ReservedQty)
	s.Nil(view.ExpiresAt)
	s.Equal("flash sale hold", view.OverrideReason)
	s.Equal(int64(-3), level.Available())
}

func (s *StockCommandsTestSuite) TestCreateManual_RequiresReason() {
	warehouseID := uuid.New()
	s.expectAcquire(warehouseID)
	s.levels.EXPECT().FindForUpdate(gomock.Any(), s.variantID, warehouseID).
		Return(s.level(warehouseID, 10, 0), nil)

	_, err := s.svc.CreateManual(context.Background(), commands.ManualReservationParams{
		VariantID:   s.variantID,
		WarehouseID: warehouseID,
		Quantity:    1,
		Actor:       "ops",
	})
	s.ErrorIs(err, commands.ErrInvalidAdjustment)
}

// ================================================================================
// Adjust
// ================================================================================

func (s *StockCommandsTestSuite) TestAdjust_CorrectionTargetsExplicitQuantity() {
	warehouseID := uuid.New()
	s.expectAcquire(warehouseID)

	level := s.level(warehouseID, 10, 0)
	s.levels.EXPECT().FindForUpdate(gomock.Any(), s.variantID, warehouseID).Return(level, nil)
	s.levels.EXPECT().Save(gomock.Any(), level).Return(nil)
	s.movements.EXPECT().Append(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, m *inventory.Movement) error {
			s.Equal(inventory.MovementCorrection, m.Type)
			s.Equal(int64(-3), m.Quantity)
			return nil
		},
	)

	target := int64(7)
	err := s.svc.Adjust(context.Background(), commands.AdjustParams{
		VariantID:   s.variantID,
		WarehouseID: warehouseID,
		Type:        inventory.MovementCorrection,
		Target:      &target,
		Reason:      "cycle count",
		Actor:       "ops",
	})
	s.Require().NoError(err)
	s.Equal(int64(7), level.Quantity())
}

func (s *StockCommandsTestSuite) TestAdjust_DamageLeavesQuantityButShrinksAvailable() {
	warehouseID := uuid.New()
	s.expectAcquire(warehouseID)

	level := s.level(warehouseID, 10, 0)
	s.levels.EXPECT().FindForUpdate(gomock.Any(), s.variantID, warehouseID).Return(level, nil)
	s.levels.EXPECT().Save(gomock.Any(), level).Return(nil)
	s.movements.EXPECT().Append(gomock.Any(), gomock.Any()).Return(nil)

	err := s.svc.Adjust(context.Background(), commands.AdjustParams{
		VariantID:   s.variantID,
		WarehouseID: warehouseID,
		Type:        inventory.MovementDamage,
		Quantity:    -2,
		Reason:      "dropped pallet",
		Actor:       "ops",
	})
	s.Require().NoError(err)
	s.Equal(int64(10), level.Quantity())
	s.Equal(int64(8), level.Available())
}

func (s *StockCommandsTestSuite) TestAdjust_RejectsUnknownType() {
	warehouseID := uuid.New()
	s.expectAcquire(warehouseID)
	s.levels.EXPECT().FindForUpdate(gomock.Any(), s.variantID, warehouseID).
		Return(s.level(warehouseID, 10, 0), nil)

	err := s.svc.Adjust(context.Background(), commands.AdjustParams{
		VariantID:   s.variantID,
		WarehouseID: warehouseID,
		Type:        inventory.MovementSale,
		Quantity:    -1,
		Actor:       "ops",
	})
	s.ErrorIs(err, commands.ErrInvalidAdjustment)
}

// ================================================================================
// Transfer
// ================================================================================

func (s *StockCommandsTestSuite) TestTransfer_MovesOnHandBetweenWarehouses() {
	fromWH := uuid.New()
	toWH := uuid.New()

	s.locker.EXPECT().Acquire(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(s.handle, nil).Times(2)

	from := s.level(fromWH, 10, 2)
	to := s.level(toWH, 1, 0)
	s.levels.EXPECT().FindForUpdate(gomock.Any(), s.variantID, fromWH).Return(from, nil)
	s.levels.EXPECT().FindForUpdate(gomock.Any(), s.variantID, toWH).Return(to, nil)
	s.levels.EXPECT().Save(gomock.Any(), from).Return(nil)
	s.levels.EXPECT().Save(gomock.Any(), to).Return(nil)
	s.movements.EXPECT().Append(gomock.Any(), gomock.Any()).Return(nil).Times(2)

	err := s.svc.Transfer(context.Background(), commands.TransferParams{
		VariantID:     s.variantID,
		FromWarehouse: fromWH,
		ToWarehouse:   toWH,
		Quantity:      4,
		Reason:        "rebalance",
		Actor:         "ops",
	})
	s.Require().NoError(err)
	s.Equal(int64(6), from.Quantity())
	s.Equal(int64(5), to.Quantity())
}

func (s *StockCommandsTestSuite) TestTransfer_RequiresAvailableAtSource() {
	fromWH := uuid.New()
	toWH := uuid.New()

	s.locker.EXPECT().Acquire(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(s.handle, nil).Times(2)
	s.levels.EXPECT().FindForUpdate(gomock.Any(), s.variantID, fromWH).
		Return(s.level(fromWH, 5, 4), nil)
	s.levels.EXPECT().FindForUpdate(gomock.Any(), s.variantID, toWH).
		Return(s.level(toWH, 0, 0), nil)

	err := s.svc.Transfer(context.Background(), commands.TransferParams{
		VariantID:     s.variantID,
		FromWarehouse: fromWH,
		ToWarehouse:   toWH,
		Quantity:      3,
		Actor:         "ops",
	})
	s.ErrorIs(err, commands.ErrTransferUnavailable)
}

func (s *StockCommandsTestSuite) TestTransfer_SameWarehouseRejected() {
	warehouseID := uuid.New()
	err := s.svc.Transfer(context.Background(), commands.TransferParams{
		VariantID:     s.variantID,
		FromWarehouse: warehouseID,
		ToWarehouse:   warehouseID,
		Quantity:      1,
	})
	s.ErrorIs(err, commands.ErrSameWarehouseTransfer)
}

// ================================================================================
// ReleaseExpired
// ================================================================================

func (s *StockCommandsTestSuite) TestReleaseExpired_SkipsFailuresAndCounts() {
	warehouseID := uuid.New()
	first := s.cartReservation(warehouseID, 2, 2)
	second := s.cartReservation(warehouseID, 1, 1)

	s.reservations.EXPECT().FindExpiredCart(gomock.Any(), s.clock.Now(), int32(50)).
		Return([]*inventory.Reservation{first, second}, nil)

	// first releases cleanly
	s.reservations.EXPECT().FindByID(gomock.Any(), first.ID()).Return(first, nil).Times(2)
	s.expectAcquire(warehouseID)
	level := s.level(warehouseID, 10, 3)
	s.levels.EXPECT().FindForUpdate(gomock.Any(), s.variantID, warehouseID).Return(level, nil)
	s.reservations.EXPECT().Update(gomock.Any(), first).Return(nil)
	s.levels.EXPECT().Save(gomock.Any(), level).Return(nil)
	s.movements.EXPECT().Append(gomock.Any(), gomock.Any()).Return(nil)

	// second hits mutex contention and is skipped
	s.reservations.EXPECT().FindByID(gomock.Any(), second.ID()).Return(second, nil)
	s.locker.EXPECT().Acquire(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, shared.ErrLockNotAcquired)

	released, err := s.svc.ReleaseExpired(context.Background(), 50)
	s.Require().NoError(err)
	s.Equal(1, released)
}
