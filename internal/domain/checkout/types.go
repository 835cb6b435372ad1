package checkout

// Phase is one step of the checkout pipeline. Phases are strictly ordered and
// a lock may only move forward through them.
type Phase string

const (
	PhaseCartValidation       Phase = "cart_validation"
	PhaseInventoryReservation Phase = "inventory_reservation"
	PhasePriceLock            Phase = "price_lock"
	PhasePaymentAuthorization Phase = "payment_authorization"
	PhaseOrderCreation        Phase = "order_creation"
	PhasePaymentCapture       Phase = "payment_capture"
	PhaseStockCommit          Phase = "stock_commit"
)

// Phases in execution order.
var Phases = []Phase{
	PhaseCartValidation,
	PhaseInventoryReservation,
	PhasePriceLock,
	PhasePaymentAuthorization,
	PhaseOrderCreation,
	PhasePaymentCapture,
	PhaseStockCommit,
}

var phaseIndex = func() map[Phase]int {
	m := make(map[Phase]int, len(Phases))
	for i, p := range Phases {
		m[p] = i
	}
	return m
}()

func (p Phase) Index() int {
	i, ok := phaseIndex[p]
	if !ok {
		return -1
	}
	return i
}

func (p Phase) Valid() bool {
	_, ok := phaseIndex[p]
	return ok
}

func (p Phase) String() string {
	return string(p)
}

type State string

const (
	StatePending   State = "pending"
	StateCompleted State = "completed"
	StateFailed    State = "failed"
)

// PhaseState mirrors the last-entered phase while the lock is running.
func PhaseState(p Phase) State {
	return State(p)
}

func (s State) Terminal() bool {
	return s == StateCompleted || s == StateFailed
}

func (s State) String() string {
	return string(s)
}

// Metadata keys written by the saga during a run.
const (
	MetaAuthorizationID     = "authorization_id"
	MetaCaptureID           = "capture_id"
	MetaOrderID             = "order_id"
	MetaFailedPhase         = "failed_phase"
	MetaFailureReason       = "failure_reason"
	MetaNeedsReconciliation = "needs_reconciliation"
	MetaReclaimReason       = "reclaim_reason"
)
