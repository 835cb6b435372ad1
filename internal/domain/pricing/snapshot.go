package pricing

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrMissingCheckout = errors.New("checkout lock reference required")
	ErrMissingCurrency = errors.New("currency required")
	ErrNegativeAmount  = errors.New("amounts cannot be negative")
	ErrZeroTotal       = errors.New("cart total must be positive")
)

// Snapshot is an immutable point-in-time copy of computed totals tagged to one
// checkout attempt. One cart-level snapshot plus one per cart line is written
// when prices lock; later cart mutation never alters them.
type Snapshot struct {
	id             uuid.UUID
	checkoutLockID uuid.UUID
	cartLineID     *uuid.UUID // nil for the cart-level snapshot
	subtotalCents  int64
	discountCents  int64
	taxCents       int64
	totalCents     int64
	discounts      map[string]int64 // breakdown by discount rule
	taxes          map[string]int64 // breakdown by tax rate/zone
	currency       string
	exchangeRate   float64
	couponCode     *string
	frozenAt       time.Time
}

type Totals struct {
	SubtotalCents int64
	DiscountCents int64
	TaxCents      int64
	TotalCents    int64
	Discounts     map[string]int64
	Taxes         map[string]int64
	Currency      string
	ExchangeRate  float64
	CouponCode    *string
}

// NewCartSnapshot freezes the cart-level totals. A zero total is rejected:
// payment authorization needs a chargeable amount.
func NewCartSnapshot(checkoutLockID uuid.UUID, t Totals, frozenAt time.Time) (*Snapshot, error) {
	if err := validateTotals(checkoutLockID, t); err != nil {
		return nil, err
	}
	if t.TotalCents == 0 {
		return nil, ErrZeroTotal
	}
	return newSnapshot(checkoutLockID, nil, t, frozenAt), nil
}

// NewLineSnapshot freezes one cart line's totals. Zero-total lines are legal
// (fully discounted items).
func NewLineSnapshot(checkoutLockID, cartLineID uuid.UUID, t Totals, frozenAt time.Time) (*Snapshot, error) {
	if err := validateTotals(checkoutLockID, t); err != nil {
		return nil, err
	}
	line := cartLineID
	return newSnapshot(checkoutLockID, &line, t, frozenAt), nil
}

func validateTotals(checkoutLockID uuid.UUID, t Totals) error {
	if checkoutLockID == uuid.Nil {
		return ErrMissingCheckout
	}
	if t.Currency == "" {
		return ErrMissingCurrency
	}
	if t.SubtotalCents < 0 || t.DiscountCents < 0 || t.TaxCents < 0 || t.TotalCents < 0 {
		return ErrNegativeAmount
	}
	return nil
}

func newSnapshot(checkoutLockID uuid.UUID, cartLineID *uuid.UUID, t Totals, frozenAt time.Time) *Snapshot {
	rate := t.ExchangeRate
	if rate == 0 {
		rate = 1
	}
	return &Snapshot{
		id:             uuid.New(),
		checkoutLockID: checkoutLockID,
		cartLineID:     cartLineID,
		subtotalCents:  t.SubtotalCents,
		discountCents:  t.DiscountCents,
		taxCents:       t.TaxCents,
		totalCents:     t.TotalCents,
		discounts:      t.Discounts,
		taxes:          t.Taxes,
		currency:       t.Currency,
		exchangeRate:   rate,
		couponCode:     t.CouponCode,
		frozenAt:       frozenAt,
	}
}

func ReconstructSnapshot(
	id, checkoutLockID uuid.UUID,
	cartLineID *uuid.UUID,
	t Totals,
	frozenAt time.Time,
) *Snapshot {
	s := newSnapshot(checkoutLockID, cartLineID, t, frozenAt)
	s.id = id
	return s
}

func (s *Snapshot) IsCartLevel() bool { return s.cartLineID == nil }

func (s *Snapshot) ID() uuid.UUID             { return s.id }
func (s *Snapshot) CheckoutLockID() uuid.UUID { return s.checkoutLockID }
func (s *Snapshot) CartLineID() *uuid.UUID    { return s.cartLineID }
func (s *Snapshot) SubtotalCents() int64      { return s.subtotalCents }
func (s *Snapshot) DiscountCents() int64      { return s.discountCents }
func (s *Snapshot) TaxCents() int64           { return s.taxCents }
func (s *Snapshot) TotalCents() int64         { return s.totalCents }
func (s *Snapshot) Currency() string          { return s.currency }
func (s *Snapshot) ExchangeRate() float64     { return s.exchangeRate }
func (s *Snapshot) CouponCode() *string       { return s.couponCode }
func (s *Snapshot) FrozenAt() time.Time       { return s.frozenAt }

func (s *Snapshot) DiscountBreakdown() map[string]int64 { return copyBreakdown(s.discounts) }
func (s *Snapshot) TaxBreakdown() map[string]int64      { return copyBreakdown(s.taxes) }

func copyBreakdown(in map[string]int64) map[string]int64 {
	if in == nil {
		return nil
	}
	out := make(map[string]int64, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}
