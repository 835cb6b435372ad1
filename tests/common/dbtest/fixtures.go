//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

type CartLineFixture struct {
	VariantID      uuid.UUID
	Quantity       int64
	UnitPriceCents int64
	StockTracked   bool
}

// CreateTestCart inserts an active cart with lines and both addresses set.
func CreateTestCart(t *testing.T, db DBLike, userID uuid.UUID, currency string, lines ...CartLineFixture) uuid.UUID {
	t.Helper()

	cartID := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx, `
		INSERT INTO carts (id, user_id, status, currency, shipping_address, billing_address)
		VALUES ($1, $2, 'active', $3, '{"line1":"1 Test St"}', '{"line1":"1 Test St"}')`,
		cartID, userID, currency)
	require.NoError(t, err)

	for _, line := range lines {
		_, err = db.Exec(ctx, `
			INSERT INTO cart_lines (id, cart_id, variant_id, quantity, unit_price_cents, stock_tracked)
			VALUES ($1, $2, $3, $4, $5, $6)`,
			uuid.New(), cartID, line.VariantID, line.Quantity, line.UnitPriceCents, line.StockTracked)
		require.NoError(t, err)
	}

	return cartID
}

// SeedInventoryLevel upserts a stock level row for a variant at a warehouse.
func SeedInventoryLevel(t *testing.T, db DBLike, variantID, warehouseID uuid.UUID, quantity, reserved int64) {
	t.Helper()

	ctx := context.Background()
	_, err := db.Exec(ctx, `
		INSERT INTO inventory_levels (variant_id, warehouse_id, quantity, reserved)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (variant_id, warehouse_id)
		DO UPDATE SET quantity = $3, reserved = $4, updated_at = now()`,
		variantID, warehouseID, quantity, reserved)
	require.NoError(t, err)
}

func CountMovements(t *testing.T, db DBLike, variantID uuid.UUID, movementType string) int {
	t.Helper()

	var count int
	err := db.QueryRow(context.Background(),
		"SELECT count(*) FROM stock_movements WHERE variant_id = $1 AND type = $2",
		variantID, movementType).Scan(&count)
	require.NoError(t, err)
	return count
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables between tests
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return nil
}
