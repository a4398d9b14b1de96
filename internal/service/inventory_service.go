// internal/service/inventory_service.go
package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/stockwise/backend-go/internal/cache"
	"github.com/stockwise/backend-go/internal/domain"
	"github.com/stockwise/backend-go/internal/engine"
	"github.com/stockwise/backend-go/internal/repository"
	"github.com/stockwise/backend-go/internal/storage"
)

// UpdateStockInput carries a manual stock adjustment. ProductID and
// QuantityChange are pointers so a missing field can be told apart
// from a zero value.
type UpdateStockInput struct {
	ProductID      *int64   `json:"product_id"`
	QuantityChange *float64 `json:"quantity_change"`
	TotalCost      float64  `json:"total_cost"`
}

// InventoryService orchestrates the decision engine over the
// data-access boundary. It holds no per-tenant state: the tenant id
// is threaded through every call.
type InventoryService struct {
	inventory    repository.InventoryRepository
	transactions repository.TransactionRepository
	summaryCache cache.SummaryCache
	archive      storage.ObjectStorage
	archivePath  string
}

func NewInventoryService(
	inventory repository.InventoryRepository,
	transactions repository.TransactionRepository,
	summaryCache cache.SummaryCache,
	archive storage.ObjectStorage,
	archivePath string,
) *InventoryService {
	if summaryCache == nil {
		summaryCache = cache.NewNoopSummaryCache()
	}
	return &InventoryService{
		inventory:    inventory,
		transactions: transactions,
		summaryCache: summaryCache,
		archive:      archive,
		archivePath:  archivePath,
	}
}

// GetInventory returns the tenant's inventory snapshot with derived
// selling prices.
func (s *InventoryService) GetInventory(ctx context.Context, userID int64) ([]domain.InventoryItem, error) {
	return s.inventory.FetchInventory(ctx, userID)
}

// GetReplenishmentAdvice classifies every item in the tenant's
// inventory. All three states are returned; OPTIMAL decisions carry
// no action text.
func (s *InventoryService) GetReplenishmentAdvice(ctx context.Context, userID int64) ([]domain.ReplenishmentDecision, error) {
	items, err := s.inventory.FetchInventory(ctx, userID)
	if err != nil {
		return nil, err
	}

	return engine.ClassifyAll(items)
}

// GeneratePurchaseOrder builds the draft order for every item
// requiring action.
func (s *InventoryService) GeneratePurchaseOrder(ctx context.Context, userID int64) ([]domain.OrderLine, error) {
	items, err := s.inventory.FetchInventory(ctx, userID)
	if err != nil {
		return nil, err
	}

	return engine.BuildPurchaseOrder(items)
}

// ExportPurchaseOrder renders the draft order as CSV and uploads it
// to the configured object storage, returning the object key.
func (s *InventoryService) ExportPurchaseOrder(ctx context.Context, userID int64) (string, error) {
	if s.archive == nil {
		return "", fmt.Errorf("purchase order export: object storage not configured")
	}

	lines, err := s.GeneratePurchaseOrder(ctx, userID)
	if err != nil {
		return "", err
	}

	body, err := renderOrderCSV(lines)
	if err != nil {
		return "", err
	}

	key := fmt.Sprintf("%s/%d/%s-%s.csv",
		s.archivePath, userID, time.Now().Format("20060102"), uuid.NewString())
	if err := s.archive.Upload(ctx, key, body, "text/csv"); err != nil {
		return "", err
	}

	log.Info().Int64("user_id", userID).Str("key", key).Int("lines", len(lines)).
		Msg("purchase order exported")

	return key, nil
}

// GetExpiryAlerts returns items expiring within the window, most
// urgent first. Already-expired items appear with negative days.
func (s *InventoryService) GetExpiryAlerts(ctx context.Context, userID int64, windowDays int) ([]domain.ExpiryAlert, error) {
	items, err := s.inventory.FetchInventory(ctx, userID)
	if err != nil {
		return nil, err
	}

	return engine.ScanExpiry(items, time.Now(), windowDays), nil
}

// RecordSale computes revenue and profit from the product's derived
// price and persists the sale atomically with the stock decrement.
func (s *InventoryService) RecordSale(ctx context.Context, userID, productID int64, quantity float64) (*domain.SaleReceipt, error) {
	item, err := s.inventory.GetItem(ctx, userID, productID)
	if err != nil {
		return nil, err
	}

	revenue := quantity * item.MRP
	profit := quantity * (item.MRP - item.OrderCostFixed)

	record := &domain.TransactionRecord{
		ProductID:    productID,
		UserID:       userID,
		SaleDate:     time.Now(),
		QuantitySold: quantity,
		Revenue:      revenue,
		Profit:       profit,
		Type:         domain.TransactionSale,
	}
	if err := s.transactions.RecordSale(ctx, record); err != nil {
		return nil, err
	}

	s.invalidateSummaries(ctx, userID)

	return &domain.SaleReceipt{
		ProductID: productID,
		Quantity:  quantity,
		Revenue:   round2(revenue),
		Profit:    round2(profit),
	}, nil
}

// UpdateStock applies a signed stock adjustment. A positive delta is
// a purchase and lands in the history with negated cost as revenue,
// committed together with the stock update.
func (s *InventoryService) UpdateStock(ctx context.Context, userID int64, input UpdateStockInput) error {
	if input.ProductID == nil {
		return fmt.Errorf("%w: product_id is required", domain.ErrValidation)
	}
	if input.QuantityChange == nil {
		return fmt.Errorf("%w: quantity_change is required", domain.ErrValidation)
	}

	productID := *input.ProductID
	delta := *input.QuantityChange

	var purchase *domain.TransactionRecord
	if delta > 0 {
		item, err := s.inventory.GetItem(ctx, userID, productID)
		if err != nil {
			return err
		}

		revenue := -(delta * item.OrderCostFixed)
		if input.TotalCost > 0 {
			revenue = -input.TotalCost
		}

		purchase = &domain.TransactionRecord{
			ProductID:    productID,
			UserID:       userID,
			SaleDate:     time.Now(),
			QuantitySold: delta,
			Revenue:      revenue,
			Profit:       0,
			Type:         domain.TransactionPurchase,
		}
	}

	if err := s.inventory.ApplyStockDelta(ctx, userID, productID, delta, purchase); err != nil {
		return err
	}

	s.invalidateSummaries(ctx, userID)

	return nil
}

// AddProduct inserts a new inventory row for the tenant.
func (s *InventoryService) AddProduct(ctx context.Context, userID int64, item *domain.InventoryItem) error {
	if item.ProductName == "" {
		return fmt.Errorf("%w: product_name is required", domain.ErrValidation)
	}

	item.UserID = userID

	return s.inventory.InsertProduct(ctx, item)
}

// DeleteProduct removes the product and its entire transaction
// history in one transaction.
func (s *InventoryService) DeleteProduct(ctx context.Context, userID, productID int64) error {
	if err := s.inventory.DeleteProduct(ctx, userID, productID); err != nil {
		return err
	}

	s.invalidateSummaries(ctx, userID)

	return nil
}

func (s *InventoryService) invalidateSummaries(ctx context.Context, userID int64) {
	if err := s.summaryCache.InvalidateUser(ctx, userID); err != nil {
		log.Warn().Err(err).Int64("user_id", userID).Msg("summary cache invalidation failed")
	}
}

func renderOrderCSV(lines []domain.OrderLine) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	header := []string{"product_id", "product_name", "current_stock", "reorder_quantity", "eoq", "priority"}
	if err := writer.Write(header); err != nil {
		return nil, err
	}

	for _, line := range lines {
		record := []string{
			strconv.FormatInt(line.ProductID, 10),
			line.ProductName,
			strconv.FormatFloat(line.CurrentStock, 'f', -1, 64),
			strconv.FormatFloat(line.ReorderQuantity, 'f', -1, 64),
			strconv.Itoa(line.EOQ),
			string(line.Priority),
		}
		if err := writer.Write(record); err != nil {
			return nil, err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
