//go:build unit

package pricing_test

import (
	"testing"
	"time"

	"checkout-core/internal/domain/pricing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validTotals() pricing.Totals {
	return pricing.Totals{
		SubtotalCents: 5000,
		DiscountCents: 500,
		TaxCents:      450,
		TotalCents:    4950,
		Discounts:     map[string]int64{"SUMMER10": 500},
		Taxes:         map[string]int64{"vat_20": 450},
		Currency:      "EUR",
		ExchangeRate:  1,
	}
}

func TestNewCartSnapshot(t *testing.T) {
	frozenAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("basic success case", func(t *testing.T) {
		snap, err := pricing.NewCartSnapshot(uuid.New(), validTotals(), frozenAt)
		require.NoError(t, err)

		assert.True(t, snap.IsCartLevel())
		assert.Nil(t, snap.CartLineID())
		assert.Equal(t, int64(4950), snap.TotalCents())
		assert.Equal(t, "EUR", snap.Currency())
		assert.Equal(t, frozenAt, snap.FrozenAt())
	})

	t.Run("zero cart total is unpayable", func(t *testing.T) {
		totals := validTotals()
		totals.TotalCents = 0
		_, err := pricing.NewCartSnapshot(uuid.New(), totals, frozenAt)
		assert.ErrorIs(t, err, pricing.ErrZeroTotal)
	})

	t.Run("validation failures", func(t *testing.T) {
		testCases := []struct {
			name   string
			lockID uuid.UUID
			mutate func(*pricing.Totals)
			errIs  error
		}{
			{
				name:   "missing checkout lock",
				lockID: uuid.Nil,
				mutate: func(*pricing.Totals) {},
				errIs:  pricing.ErrMissingCheckout,
			},
			{
				name:   "missing currency",
				lockID: uuid.New(),
				mutate: func(tt *pricing.Totals) { tt.Currency = "" },
				errIs:  pricing.ErrMissingCurrency,
			},
			{
				name:   "negative amount",
				lockID: uuid.New(),
				mutate: func(tt *pricing.Totals) { tt.DiscountCents = -1 },
				errIs:  pricing.ErrNegativeAmount,
			},
		}
		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				totals := validTotals()
				tc.mutate(&totals)
				_, err := pricing.NewCartSnapshot(tc.lockID, totals, frozenAt)
				assert.ErrorIs(t, err, tc.errIs)
			})
		}
	})
}

func TestNewLineSnapshot(t *testing.T) {
	frozenAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("tags the cart line", func(t *testing.T) {
		lineID := uuid.New()
		snap, err := pricing.NewLineSnapshot(uuid.New(), lineID, validTotals(), frozenAt)
		require.NoError(t, err)

		assert.False(t, snap.IsCartLevel())
		require.NotNil(t, snap.CartLineID())
		assert.Equal(t, lineID, *snap.CartLineID())
	})

	t.Run("zero-total lines are legal", func(t *testing.T) {
		totals := validTotals()
		totals.SubtotalCents = 0
		totals.TotalCents = 0
		_, err := pricing.NewLineSnapshot(uuid.New(), uuid.New(), totals, frozenAt)
		assert.NoError(t, err)
	})
}

func TestSnapshot_Breakdowns(t *testing.T) {
	frozenAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	snap, err := pricing.NewCartSnapshot(uuid.New(), validTotals(), frozenAt)
	require.NoError(t, err)

	// breakdowns come back as copies
	snap.DiscountBreakdown()["SUMMER10"] = 9999
	assert.Equal(t, int64(500), snap.DiscountBreakdown()["SUMMER10"])

	snap.TaxBreakdown()["vat_20"] = 9999
	assert.Equal(t, int64(450), snap.TaxBreakdown()["vat_20"])

	if diff := cmp.Diff(validTotals().Discounts, snap.DiscountBreakdown()); diff != "" {
		t.Errorf("discount breakdown mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(validTotals().Taxes, snap.TaxBreakdown()); diff != "" {
		t.Errorf("tax breakdown mismatch (-want +got):\n%s", diff)
	}
}
