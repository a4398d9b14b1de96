// internal/repository/postgres/inventory_repository.go
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/stockwise/backend-go/internal/domain"
)

type inventoryRepository struct {
	db *DB
}

func NewInventoryRepository(db *DB) *inventoryRepository {
	return &inventoryRepository{db: db}
}

// inventoryColumns selects every item field plus the derived selling
// price: mrp = COALESCE(order_cost_fixed, 0) * 1.5.
const inventoryColumns = `
	product_id, user_id, product_name, current_stock, safety_stock_level,
	forecasted_demand, lead_time_days, annual_demand,
	COALESCE(order_cost_fixed, 0) AS order_cost_fixed,
	holding_cost_per_unit, expiry_date,
	COALESCE(order_cost_fixed, 0) * 1.5 AS mrp
`

func (r *inventoryRepository) FetchInventory(ctx context.Context, userID int64) ([]domain.InventoryItem, error) {
	query := `
		SELECT ` + inventoryColumns + `
		FROM inventory
		WHERE user_id = $1
		ORDER BY product_id
	`

	items := make([]domain.InventoryItem, 0)
	if err := r.db.SelectContext(ctx, &items, query, userID); err != nil {
		return nil, fmt.Errorf("failed to fetch inventory: %w", err)
	}

	return items, nil
}

func (r *inventoryRepository) GetItem(ctx context.Context, userID, productID int64) (*domain.InventoryItem, error) {
	query := `
		SELECT ` + inventoryColumns + `
		FROM inventory
		WHERE user_id = $1 AND product_id = $2
	`

	var item domain.InventoryItem
	if err := r.db.GetContext(ctx, &item, query, userID, productID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: product %d", domain.ErrNotFound, productID)
		}
		return nil, fmt.Errorf("failed to get product %d: %w", productID, err)
	}

	return &item, nil
}

func (r *inventoryRepository) InsertProduct(ctx context.Context, item *domain.InventoryItem) error {
	query := `
		INSERT INTO inventory (
			user_id, product_name, current_stock, safety_stock_level,
			forecasted_demand, lead_time_days, annual_demand,
			order_cost_fixed, holding_cost_per_unit, expiry_date
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING product_id
	`

	err := r.db.QueryRowContext(ctx, query,
		item.UserID,
		item.ProductName,
		item.CurrentStock,
		item.SafetyStockLevel,
		item.ForecastedDemand,
		item.LeadTimeDays,
		item.AnnualDemand,
		item.OrderCostFixed,
		item.HoldingCostPerUnit,
		item.ExpiryDate,
	).Scan(&item.ProductID)
	if err != nil {
		return fmt.Errorf("%w: insert product: %v", domain.ErrWrite, err)
	}

	return nil
}

func (r *inventoryRepository) ApplyStockDelta(ctx context.Context, userID, productID int64, delta float64, purchase *domain.TransactionRecord) error {
	return r.db.WithTx(ctx, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx,
			`UPDATE inventory SET current_stock = current_stock + $1 WHERE user_id = $2 AND product_id = $3`,
			delta, userID, productID)
		if err != nil {
			return fmt.Errorf("%w: adjust stock for product %d: %v", domain.ErrWrite, productID, err)
		}

		affected, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("%w: adjust stock for product %d: %v", domain.ErrWrite, productID, err)
		}
		if affected == 0 {
			return fmt.Errorf("%w: product %d", domain.ErrNotFound, productID)
		}

		if purchase != nil {
			if err := insertTransaction(ctx, tx, purchase); err != nil {
				return err
			}
		}

		return nil
	})
}

func (r *inventoryRepository) DeleteProduct(ctx context.Context, userID, productID int64) error {
	return r.db.WithTx(ctx, func(tx *sql.Tx) error {
		var exists bool
		err := tx.QueryRowContext(ctx,
			`SELECT EXISTS (SELECT 1 FROM inventory WHERE user_id = $1 AND product_id = $2)`,
			userID, productID).Scan(&exists)
		if err != nil {
			return fmt.Errorf("%w: check product %d: %v", domain.ErrWrite, productID, err)
		}
		if !exists {
			return fmt.Errorf("%w: product %d", domain.ErrNotFound, productID)
		}

		// History goes first so a failure leaves both tables intact
		// after rollback, never a product without its records.
		if _, err := tx.ExecContext(ctx,
			`DELETE FROM sales_history WHERE user_id = $1 AND product_id = $2`,
			userID, productID); err != nil {
			return fmt.Errorf("%w: delete history for product %d: %v", domain.ErrWrite, productID, err)
		}

		if _, err := tx.ExecContext(ctx,
			`DELETE FROM inventory WHERE user_id = $1 AND product_id = $2`,
			userID, productID); err != nil {
			return fmt.Errorf("%w: delete product %d: %v", domain.ErrWrite, productID, err)
		}

		return nil
	})
}
