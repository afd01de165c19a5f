package main

import (
	"database/sql"
	"fmt"
	"log"
	"time"

	"github.com/EyobKifle/Sarahs-ShortCake-sub001/internal/types"
	"github.com/urfave/cli/v2"
)

const schemaDDL = `
CREATE TABLE IF NOT EXISTS customers (
	id TEXT PRIMARY KEY,
	name TEXT NOT NULL,
	email TEXT NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS products (
	id TEXT PRIMARY KEY,
	name TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS orders (
	id TEXT PRIMARY KEY,
	created_at TIMESTAMPTZ NOT NULL,
	status TEXT NOT NULL,
	payload JSONB NOT NULL DEFAULT '{}'::jsonb
);
CREATE INDEX IF NOT EXISTS idx_orders_created_at ON orders (created_at);

CREATE TABLE IF NOT EXISTS inventory_items (
	id TEXT PRIMARY KEY,
	name TEXT NOT NULL,
	category TEXT NOT NULL DEFAULT '',
	quantity DOUBLE PRECISION NOT NULL DEFAULT 0,
	threshold DOUBLE PRECISION NOT NULL DEFAULT 0,
	cost_per_unit DOUBLE PRECISION NOT NULL DEFAULT 0,
	unit TEXT NOT NULL DEFAULT '',
	updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS reviews (
	id TEXT PRIMARY KEY,
	order_id TEXT NOT NULL,
	rating DOUBLE PRECISION NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
CREATE INDEX IF NOT EXISTS idx_reviews_created_at ON reviews (created_at);
`

func createSchema(c *cli.Context) error {
	db, ok := c.Context.Value(types.DBKey).(*sql.DB)
	if !ok {
		return fmt.Errorf("database connection not found in context")
	}

	if _, err := db.ExecContext(c.Context, schemaDDL); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	log.Println("schema created")
	return nil
}

// Payloads deliberately vary in shape: different amount fields, string
// amounts, nested payment blocks, and one order with no items. The report
// engine has to cope with all of them in production, so the sample data
// exercises the same spread.
func sampleOrders(now time.Time) []struct {
	id      string
	at      time.Time
	status  string
	payload string
} {
	day := 24 * time.Hour
	return []struct {
		id      string
		at      time.Time
		status  string
		payload string
	}{
		{
			id: "ord-1001", at: now.Add(-2 * time.Hour), status: "completed",
			payload: `{"customerRef":"cust-1","customerName":"Mara Jensen","paymentMethod":"card",
				"total":54.00,
				"items":[{"productId":"red-velvet","quantity":2,"price":18.00},
				         {"productId":"lemon-tart","quantity":2,"price":9.00}]}`,
		},
		{
			id: "ord-1002", at: now.Add(-1 * day), status: "delivered",
			payload: `{"customerName":"Walk-in","paymentMethod":"cash",
				"totalAmount":"23.50",
				"items":[{"productId":"eclair","name":"Eclair","quantity":1,"unitPrice":"23.50"}]}`,
		},
		{
			id: "ord-1003", at: now.Add(-3 * day), status: "completed",
			payload: `{"customerRef":"cust-2","customerName":"Jonas Park","paymentMethod":"card",
				"payment":{"method":"card","amount":"$41.25"},
				"items":[{"productId":"carrot-cake","quantity":3,"price":13.75}]}`,
		},
		{
			id: "ord-1004", at: now.Add(-5 * day), status: "pending",
			payload: `{"customerName":"Ada Osei","paymentMethod":"transfer",
				"subtotal":30.00,"tax":2.40,"deliveryFee":5.00,
				"items":[{"productId":"sourdough-loaf","quantity":2,"price":15.00}]}`,
		},
		{
			id: "ord-1005", at: now.Add(-8 * day), status: "completed",
			payload: `{"customerRef":"cust-1","customerName":"Mara Jensen","paymentMethod":"card",
				"items":[{"productId":"red-velvet","quantity":1,"price":"18"},
				         {"productId":"croissant","quantity":6,"price":"3.50 each"}]}`,
		},
		{
			id: "ord-1006", at: now.Add(-12 * day), status: "cancelled",
			payload: `{"customerName":"Lee Wong","paymentMethod":"card","total":99.00,
				"items":[{"productId":"wedding-tier","quantity":1,"price":99.00}]}`,
		},
		{
			id: "ord-1007", at: now.Add(-20 * day), status: "confirmed",
			payload: `{"customerRef":"cust-3","customerName":"Priya Nair","paymentMethod":"cash","total":"12.00"}`,
		},
	}
}

func seedSampleData(c *cli.Context) error {
	db, ok := c.Context.Value(types.DBKey).(*sql.DB)
	if !ok {
		return fmt.Errorf("database connection not found in context")
	}

	now := time.Now()
	ctx := c.Context

	customers := []struct {
		id, name, email string
		at              time.Time
	}{
		{"cust-1", "Mara Jensen", "mara@example.com", now.AddDate(0, -3, 0)},
		{"cust-2", "Jonas Park", "jonas@example.com", now.AddDate(0, -1, 0)},
		{"cust-3", "Priya Nair", "priya@example.com", now.AddDate(0, 0, -10)},
	}
	for _, cu := range customers {
		if _, err := db.ExecContext(ctx, `
			INSERT INTO customers (id, name, email, created_at)
			VALUES ($1, $2, $3, $4)
			ON CONFLICT (id) DO NOTHING
		`, cu.id, cu.name, cu.email, cu.at); err != nil {
			return fmt.Errorf("failed to insert customer %s: %w", cu.id, err)
		}
	}

	products := [][2]string{
		{"red-velvet", "Red Velvet Cake"},
		{"lemon-tart", "Lemon Tart"},
		{"eclair", "Chocolate Eclair"},
		{"carrot-cake", "Carrot Cake"},
		{"sourdough-loaf", "Sourdough Loaf"},
		{"croissant", "Butter Croissant"},
		{"wedding-tier", "Wedding Tier Cake"},
	}
	for _, p := range products {
		if _, err := db.ExecContext(ctx, `
			INSERT INTO products (id, name)
			VALUES ($1, $2)
			ON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name
		`, p[0], p[1]); err != nil {
			return fmt.Errorf("failed to insert product %s: %w", p[0], err)
		}
	}

	for _, o := range sampleOrders(now) {
		if _, err := db.ExecContext(ctx, `
			INSERT INTO orders (id, created_at, status, payload)
			VALUES ($1, $2, $3, $4::jsonb)
			ON CONFLICT (id) DO NOTHING
		`, o.id, o.at, o.status, o.payload); err != nil {
			return fmt.Errorf("failed to insert order %s: %w", o.id, err)
		}
	}

	inventory := []struct {
		id, name, category   string
		qty, threshold, cost float64
		unit                 string
	}{
		{"flour", "All-Purpose Flour", "dry goods", 42, 20, 1.10, "kg"},
		{"butter", "Unsalted Butter", "dairy", 8, 12, 6.50, "kg"},
		{"eggs", "Free-Range Eggs", "dairy", 0, 60, 0.35, "pc"},
		{"sugar", "Caster Sugar", "dry goods", 25, 10, 1.80, "kg"},
		{"cocoa", "Dutch Cocoa", "dry goods", 3, 5, 12.00, "kg"},
	}
	for _, item := range inventory {
		if _, err := db.ExecContext(ctx, `
			INSERT INTO inventory_items (id, name, category, quantity, threshold, cost_per_unit, unit, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, NOW())
			ON CONFLICT (id) DO UPDATE SET
				quantity = EXCLUDED.quantity,
				threshold = EXCLUDED.threshold,
				cost_per_unit = EXCLUDED.cost_per_unit,
				updated_at = NOW()
		`, item.id, item.name, item.category, item.qty, item.threshold, item.cost, item.unit); err != nil {
			return fmt.Errorf("failed to insert inventory item %s: %w", item.id, err)
		}
	}

	reviews := []struct {
		id, orderID string
		rating      float64
		at          time.Time
	}{
		{"rev-1", "ord-1001", 5, now.Add(-1 * time.Hour)},
		{"rev-2", "ord-1003", 4, now.AddDate(0, 0, -2)},
		{"rev-3", "ord-1005", 4.5, now.AddDate(0, 0, -7)},
	}
	for _, r := range reviews {
		if _, err := db.ExecContext(ctx, `
			INSERT INTO reviews (id, order_id, rating, created_at)
			VALUES ($1, $2, $3, $4)
			ON CONFLICT (id) DO NOTHING
		`, r.id, r.orderID, r.rating, r.at); err != nil {
			return fmt.Errorf("failed to insert review %s: %w", r.id, err)
		}
	}

	log.Println("sample data seeded")
	return nil
}
