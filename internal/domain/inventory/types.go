package inventory

import "github.com/google/uuid"

type ReservationStatus string

const (
	ReservationStatusCart           ReservationStatus = "cart"
	ReservationStatusOrderConfirmed ReservationStatus = "order_confirmed"
	ReservationStatusManual         ReservationStatus = "manual"
	ReservationStatusReleased       ReservationStatus = "released"
)

func (s ReservationStatus) String() string {
	return string(s)
}

type MovementType string

const (
	MovementSale        MovementType = "sale"
	MovementReturn      MovementType = "return"
	MovementAdjustment  MovementType = "manual_adjustment"
	MovementImport      MovementType = "import"
	MovementDamage      MovementType = "damage"
	MovementTransfer    MovementType = "transfer"
	MovementCorrection  MovementType = "correction"
	MovementReservation MovementType = "reservation"
	MovementRelease     MovementType = "release"
)

func (t MovementType) Valid() bool {
	switch t {
	case MovementSale, MovementReturn, MovementAdjustment, MovementImport,
		MovementDamage, MovementTransfer, MovementCorrection,
		MovementReservation, MovementRelease:
		return true
	}
	return false
}

func (t MovementType) String() string {
	return string(t)
}

type RefType string

const (
	RefNone     RefType = ""
	RefCart     RefType = "cart"
	RefCheckout RefType = "checkout_lock"
	RefOrder    RefType = "order"
	RefManual   RefType = "manual"
)

// Reference points a reservation or a ledger entry back at whatever caused it.
type Reference struct {
	Type RefType
	ID   uuid.UUID
}

func NoReference() Reference {
	return Reference{Type: RefNone}
}

func CheckoutReference(lockID uuid.UUID) Reference {
	return Reference{Type: RefCheckout, ID: lockID}
}

func OrderReference(orderID uuid.UUID) Reference {
	return Reference{Type: RefOrder, ID: orderID}
}

func ManualReference(id uuid.UUID) Reference {
	return Reference{Type: RefManual, ID: id}
}

func (r Reference) IsZero() bool {
	return r.Type == RefNone
}
