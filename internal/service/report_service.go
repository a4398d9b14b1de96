// internal/service/report_service.go
package service

import (
	"context"

	"github.com/rs/zerolog/log"
	"github.com/stockwise/backend-go/internal/cache"
	"github.com/stockwise/backend-go/internal/domain"
	"github.com/stockwise/backend-go/internal/engine"
	"github.com/stockwise/backend-go/internal/repository"
)

// ReportService serves the aggregation side: financial summaries,
// movement rankings and the raw sales history.
type ReportService struct {
	inventory    repository.InventoryRepository
	transactions repository.TransactionRepository
	summaryCache cache.SummaryCache
}

func NewReportService(
	inventory repository.InventoryRepository,
	transactions repository.TransactionRepository,
	summaryCache cache.SummaryCache,
) *ReportService {
	if summaryCache == nil {
		summaryCache = cache.NewNoopSummaryCache()
	}
	return &ReportService{
		inventory:    inventory,
		transactions: transactions,
		summaryCache: summaryCache,
	}
}

// GetSalesSummary buckets the tenant's history by period. Results are
// cached per tenant and granularity; cache failures degrade to the
// repository, never to an error.
func (s *ReportService) GetSalesSummary(ctx context.Context, userID int64, period string) (domain.SalesSummary, error) {
	granularity := engine.ParseGranularity(period)

	if summary, ok, err := s.summaryCache.GetSummary(ctx, userID, string(granularity)); err == nil && ok {
		return summary, nil
	} else if err != nil {
		log.Warn().Err(err).Msg("sales summary: cache get failed")
	}

	records, err := s.transactions.FetchTransactions(ctx, userID)
	if err != nil {
		return domain.SalesSummary{}, err
	}

	summary := engine.SummarizeSales(records, granularity)

	if err := s.summaryCache.SetSummary(ctx, userID, string(granularity), summary); err != nil {
		log.Warn().Err(err).Msg("sales summary: cache set failed")
	}

	return summary, nil
}

// GetFastMovers ranks the tenant's products by total moved quantity.
func (s *ReportService) GetFastMovers(ctx context.Context, userID int64, topN int) ([]domain.ProductMovement, error) {
	records, items, err := s.fetchHistoryAndInventory(ctx, userID)
	if err != nil {
		return nil, err
	}

	return engine.FastMovers(records, items, topN), nil
}

// GetSlowMovers lists products at or below the movement threshold.
func (s *ReportService) GetSlowMovers(ctx context.Context, userID int64, threshold float64) ([]domain.ProductMovement, error) {
	if threshold <= 0 {
		threshold = engine.DefaultSlowMoverThreshold
	}

	records, items, err := s.fetchHistoryAndInventory(ctx, userID)
	if err != nil {
		return nil, err
	}

	return engine.SlowMovers(records, items, threshold), nil
}

// GetSalesHistory returns the full history joined to product names,
// newest first.
func (s *ReportService) GetSalesHistory(ctx context.Context, userID int64) ([]domain.SalesHistoryEntry, error) {
	return s.transactions.FetchSalesHistory(ctx, userID)
}

func (s *ReportService) fetchHistoryAndInventory(ctx context.Context, userID int64) ([]domain.TransactionRecord, []domain.InventoryItem, error) {
	records, err := s.transactions.FetchTransactions(ctx, userID)
	if err != nil {
		return nil, nil, err
	}

	items, err := s.inventory.FetchInventory(ctx, userID)
	if err != nil {
		return nil, nil, err
	}

	return records, items, nil
}
