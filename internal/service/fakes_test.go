package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/stockwise/backend-go/internal/domain"
)

// In-memory stand-ins for the postgres repositories. They honor the
// same atomicity contracts: a failed step leaves the maps untouched.

type fakeInventoryRepo struct {
	items  map[int64]*domain.InventoryItem
	nextID int64
	txRepo *fakeTransactionRepo
}

func newFakeInventoryRepo(txRepo *fakeTransactionRepo) *fakeInventoryRepo {
	return &fakeInventoryRepo{
		items:  make(map[int64]*domain.InventoryItem),
		nextID: 1,
		txRepo: txRepo,
	}
}

func (r *fakeInventoryRepo) add(item domain.InventoryItem) int64 {
	item.ProductID = r.nextID
	item.MRP = item.OrderCostFixed * 1.5
	r.nextID++
	r.items[item.ProductID] = &item
	return item.ProductID
}

func (r *fakeInventoryRepo) FetchInventory(ctx context.Context, userID int64) ([]domain.InventoryItem, error) {
	out := make([]domain.InventoryItem, 0)
	for id := int64(1); id < r.nextID; id++ {
		if item, ok := r.items[id]; ok && item.UserID == userID {
			out = append(out, *item)
		}
	}
	return out, nil
}

func (r *fakeInventoryRepo) GetItem(ctx context.Context, userID, productID int64) (*domain.InventoryItem, error) {
	item, ok := r.items[productID]
	if !ok || item.UserID != userID {
		return nil, fmt.Errorf("%w: product %d", domain.ErrNotFound, productID)
	}
	copied := *item
	return &copied, nil
}

func (r *fakeInventoryRepo) InsertProduct(ctx context.Context, item *domain.InventoryItem) error {
	item.ProductID = r.add(*item)
	return nil
}

func (r *fakeInventoryRepo) ApplyStockDelta(ctx context.Context, userID, productID int64, delta float64, purchase *domain.TransactionRecord) error {
	item, ok := r.items[productID]
	if !ok || item.UserID != userID {
		return fmt.Errorf("%w: product %d", domain.ErrNotFound, productID)
	}
	item.CurrentStock += delta
	if purchase != nil {
		r.txRepo.append(*purchase)
	}
	return nil
}

func (r *fakeInventoryRepo) DeleteProduct(ctx context.Context, userID, productID int64) error {
	item, ok := r.items[productID]
	if !ok || item.UserID != userID {
		return fmt.Errorf("%w: product %d", domain.ErrNotFound, productID)
	}
	r.txRepo.deleteByProduct(userID, productID)
	delete(r.items, productID)
	return nil
}

type fakeTransactionRepo struct {
	records   []domain.TransactionRecord
	inventory *fakeInventoryRepo
	nextID    int64
}

func newFakeTransactionRepo() *fakeTransactionRepo {
	return &fakeTransactionRepo{nextID: 1}
}

func (r *fakeTransactionRepo) append(record domain.TransactionRecord) {
	record.ID = r.nextID
	r.nextID++
	r.records = append(r.records, record)
}

func (r *fakeTransactionRepo) deleteByProduct(userID, productID int64) {
	kept := r.records[:0]
	for _, rec := range r.records {
		if rec.UserID == userID && rec.ProductID == productID {
			continue
		}
		kept = append(kept, rec)
	}
	r.records = kept
}

func (r *fakeTransactionRepo) FetchTransactions(ctx context.Context, userID int64) ([]domain.TransactionRecord, error) {
	out := make([]domain.TransactionRecord, 0)
	for _, rec := range r.records {
		if rec.UserID == userID {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (r *fakeTransactionRepo) FetchSalesHistory(ctx context.Context, userID int64) ([]domain.SalesHistoryEntry, error) {
	out := make([]domain.SalesHistoryEntry, 0)
	for i := len(r.records) - 1; i >= 0; i-- {
		rec := r.records[i]
		if rec.UserID != userID {
			continue
		}
		entry := domain.SalesHistoryEntry{TransactionRecord: rec}
		if item, ok := r.inventory.items[rec.ProductID]; ok {
			entry.ProductName = item.ProductName
		}
		out = append(out, entry)
	}
	return out, nil
}

func (r *fakeTransactionRepo) RecordSale(ctx context.Context, record *domain.TransactionRecord) error {
	item, ok := r.inventory.items[record.ProductID]
	if !ok || item.UserID != record.UserID {
		return fmt.Errorf("%w: product %d", domain.ErrNotFound, record.ProductID)
	}
	r.append(*record)
	item.CurrentStock -= record.QuantitySold
	return nil
}

type fakeSummaryCache struct {
	store         map[string]domain.SalesSummary
	invalidations []int64
	getErr        error
	setErr        error
}

func newFakeSummaryCache() *fakeSummaryCache {
	return &fakeSummaryCache{store: make(map[string]domain.SalesSummary)}
}

func (c *fakeSummaryCache) key(userID int64, granularity string) string {
	return fmt.Sprintf("%d:%s", userID, granularity)
}

func (c *fakeSummaryCache) GetSummary(ctx context.Context, userID int64, granularity string) (domain.SalesSummary, bool, error) {
	if c.getErr != nil {
		return domain.SalesSummary{}, false, c.getErr
	}
	summary, ok := c.store[c.key(userID, granularity)]
	return summary, ok, nil
}

func (c *fakeSummaryCache) SetSummary(ctx context.Context, userID int64, granularity string, summary domain.SalesSummary) error {
	if c.setErr != nil {
		return c.setErr
	}
	c.store[c.key(userID, granularity)] = summary
	return nil
}

func (c *fakeSummaryCache) InvalidateUser(ctx context.Context, userID int64) error {
	c.invalidations = append(c.invalidations, userID)
	prefix := fmt.Sprintf("%d:", userID)
	for key := range c.store {
		if strings.HasPrefix(key, prefix) {
			delete(c.store, key)
		}
	}
	return nil
}

type fakeObjectStorage struct {
	uploads map[string][]byte
	types   map[string]string
}

func newFakeObjectStorage() *fakeObjectStorage {
	return &fakeObjectStorage{
		uploads: make(map[string][]byte),
		types:   make(map[string]string),
	}
}

func (s *fakeObjectStorage) Upload(ctx context.Context, key string, body []byte, contentType string) error {
	s.uploads[key] = body
	s.types[key] = contentType
	return nil
}

func newFixture() (*fakeInventoryRepo, *fakeTransactionRepo, *fakeSummaryCache) {
	txRepo := newFakeTransactionRepo()
	invRepo := newFakeInventoryRepo(txRepo)
	txRepo.inventory = invRepo
	return invRepo, txRepo, newFakeSummaryCache()
}
