// internal/repository/inventory_repository.go
package repository

import (
	"context"

	"github.com/stockwise/backend-go/internal/domain"
)

// InventoryRepository is the data-access boundary for inventory rows.
// Every method is scoped to one tenant; implementations must never
// return or touch another tenant's rows.
//
// ApplyStockDelta and DeleteProduct are multi-step mutations and must
// commit atomically: a stock increment and its purchase-history row
// go together, and a product's history is removed with the product or
// not at all.
type InventoryRepository interface {
	FetchInventory(ctx context.Context, userID int64) ([]domain.InventoryItem, error)
	GetItem(ctx context.Context, userID, productID int64) (*domain.InventoryItem, error)
	InsertProduct(ctx context.Context, item *domain.InventoryItem) error
	// ApplyStockDelta adjusts current_stock by delta; when purchase is
	// non-nil it is inserted in the same transaction.
	ApplyStockDelta(ctx context.Context, userID, productID int64, delta float64, purchase *domain.TransactionRecord) error
	DeleteProduct(ctx context.Context, userID, productID int64) error
}
