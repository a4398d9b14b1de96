// cmd/seed/main.go
package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"
)

type ctxKey string

const dbKey ctxKey = "db"

func newDBURLFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:     "db-url",
		Usage:    "Database connection string",
		Required: true,
		EnvVars:  []string{"DATABASE_URL"},
	}
}

func initDB(c *cli.Context) error {
	db, err := sql.Open("pgx", c.String("db-url"))
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return fmt.Errorf("failed to ping database: %w", err)
	}

	c.Context = context.WithValue(c.Context, dbKey, db)
	return nil
}

func closeDB(c *cli.Context) error {
	if db, ok := c.Context.Value(dbKey).(*sql.DB); ok && db != nil {
		return db.Close()
	}
	return nil
}

func main() {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("warning: could not load .env file: %v", err)
	}

	app := &cli.App{
		Name:  "seed",
		Usage: "Create the schema and seed demo inventory data",
		Commands: []*cli.Command{
			{
				Name:   "schema",
				Usage:  "Create the inventory and sales_history tables",
				Flags:  []cli.Flag{newDBURLFlag()},
				Before: initDB,
				After:  closeDB,
				Action: runSchema,
			},
			{
				Name:  "demo",
				Usage: "Insert a demo tenant with sample products and transactions",
				Flags: []cli.Flag{
					newDBURLFlag(),
					&cli.Int64Flag{
						Name:  "user-id",
						Usage: "Tenant id to seed",
						Value: 1001,
					},
				},
				Before: initDB,
				After:  closeDB,
				Action: runDemo,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func runSchema(c *cli.Context) error {
	db := c.Context.Value(dbKey).(*sql.DB)

	ddl := `
		CREATE TABLE IF NOT EXISTS inventory (
			product_id            BIGSERIAL PRIMARY KEY,
			user_id               BIGINT NOT NULL,
			product_name          TEXT NOT NULL,
			current_stock         DOUBLE PRECISION NOT NULL DEFAULT 0,
			safety_stock_level    DOUBLE PRECISION NOT NULL DEFAULT 0,
			forecasted_demand     DOUBLE PRECISION NOT NULL DEFAULT 0,
			lead_time_days        INTEGER NOT NULL DEFAULT 0,
			annual_demand         DOUBLE PRECISION NOT NULL DEFAULT 0,
			order_cost_fixed      DOUBLE PRECISION,
			holding_cost_per_unit DOUBLE PRECISION NOT NULL DEFAULT 0,
			expiry_date           DATE NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_inventory_user ON inventory (user_id);

		CREATE TABLE IF NOT EXISTS sales_history (
			id            BIGSERIAL PRIMARY KEY,
			product_id    BIGINT NOT NULL,
			user_id       BIGINT NOT NULL,
			sale_date     DATE NOT NULL,
			quantity_sold DOUBLE PRECISION NOT NULL,
			revenue       DOUBLE PRECISION NOT NULL,
			profit        DOUBLE PRECISION NOT NULL,
			type          TEXT NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_sales_history_user ON sales_history (user_id);
		CREATE INDEX IF NOT EXISTS idx_sales_history_product ON sales_history (user_id, product_id);
	`

	if _, err := db.ExecContext(c.Context, ddl); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	log.Println("schema created")
	return nil
}

type demoProduct struct {
	name        string
	stock       float64
	safety      float64
	forecast    float64
	leadTime    int
	annual      float64
	orderCost   float64
	holdingCost float64
	expiryDays  int
}

var demoProducts = []demoProduct{
	{"Paracetamol 500mg", 5, 10, 20, 7, 240, 50, 2, 20},
	{"Vitamin C 1000mg", 40, 15, 30, 5, 360, 30, 1.5, 90},
	{"Cough Syrup 100ml", 18, 12, 25, 10, 180, 80, 3, 45},
	{"Hand Sanitizer 250ml", 120, 20, 35, 4, 500, 25, 1, 365},
	{"Surgical Masks (50pk)", 8, 16, 24, 6, 300, 40, 2.5, 180},
}

func runDemo(c *cli.Context) error {
	db := c.Context.Value(dbKey).(*sql.DB)
	userID := c.Int64("user-id")

	tx, err := db.BeginTx(c.Context, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	now := time.Now()
	for _, p := range demoProducts {
		var productID int64
		err := tx.QueryRowContext(c.Context, `
			INSERT INTO inventory (
				user_id, product_name, current_stock, safety_stock_level,
				forecasted_demand, lead_time_days, annual_demand,
				order_cost_fixed, holding_cost_per_unit, expiry_date
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
			RETURNING product_id
		`, userID, p.name, p.stock, p.safety, p.forecast, p.leadTime,
			p.annual, p.orderCost, p.holdingCost, now.AddDate(0, 0, p.expiryDays)).Scan(&productID)
		if err != nil {
			return fmt.Errorf("failed to insert product %q: %w", p.name, err)
		}

		// A few weeks of history per product: sales at the derived
		// selling price, one restock purchase.
		mrp := p.orderCost * 1.5
		for week := 0; week < 4; week++ {
			qty := float64(2 + week)
			date := now.AddDate(0, 0, -7*week)
			_, err = tx.ExecContext(c.Context, `
				INSERT INTO sales_history (product_id, user_id, sale_date, quantity_sold, revenue, profit, type)
				VALUES ($1, $2, $3, $4, $5, $6, 'sale')
			`, productID, userID, date, qty, qty*mrp, qty*(mrp-p.orderCost))
			if err != nil {
				return fmt.Errorf("failed to insert sale for %q: %w", p.name, err)
			}
		}

		restockQty := p.forecast
		_, err = tx.ExecContext(c.Context, `
			INSERT INTO sales_history (product_id, user_id, sale_date, quantity_sold, revenue, profit, type)
			VALUES ($1, $2, $3, $4, $5, 0, 'purchase')
		`, productID, userID, now.AddDate(0, 0, -14), restockQty, -(restockQty * p.orderCost))
		if err != nil {
			return fmt.Errorf("failed to insert purchase for %q: %w", p.name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit seed: %w", err)
	}

	log.Printf("seeded %d products for tenant %d", len(demoProducts), userID)
	return nil
}
