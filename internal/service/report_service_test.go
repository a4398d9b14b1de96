package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stockwise/backend-go/internal/domain"
)

func seedHistory(txRepo *fakeTransactionRepo, productID int64) {
	march := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	txRepo.append(domain.TransactionRecord{
		ProductID: productID, UserID: testUserID, SaleDate: march,
		QuantitySold: 2, Revenue: 150, Profit: 50, Type: domain.TransactionSale,
	})
	txRepo.append(domain.TransactionRecord{
		ProductID: productID, UserID: testUserID, SaleDate: march.AddDate(0, 0, 2),
		QuantitySold: 10, Revenue: -500, Profit: 0, Type: domain.TransactionPurchase,
	})
}

func TestGetSalesSummaryEmptyHistory(t *testing.T) {
	invRepo, txRepo, summaryCache := newFixture()
	svc := NewReportService(invRepo, txRepo, summaryCache)

	summary, err := svc.GetSalesSummary(context.Background(), testUserID, "monthly")
	require.NoError(t, err)

	assert.NotNil(t, summary.GrossRevenue)
	assert.Empty(t, summary.GrossRevenue)
	assert.NotNil(t, summary.NetProfit)
	assert.Empty(t, summary.NetProfit)
}

func TestGetSalesSummaryComputesAndCaches(t *testing.T) {
	invRepo, txRepo, summaryCache := newFixture()
	productID := invRepo.add(paracetamol())
	seedHistory(txRepo, productID)
	svc := NewReportService(invRepo, txRepo, summaryCache)

	summary, err := svc.GetSalesSummary(context.Background(), testUserID, "monthly")
	require.NoError(t, err)

	assert.Equal(t, 150.0, summary.GrossRevenue["2026-03"])
	assert.Equal(t, 500.0, summary.OrderCost["2026-03"])
	assert.Equal(t, 50.0, summary.TotalProfit["2026-03"])

	cached, ok := summaryCache.store[summaryCache.key(testUserID, "monthly")]
	require.True(t, ok, "summary must be written through to the cache")
	assert.Equal(t, summary.GrossRevenue, cached.GrossRevenue)
}

func TestGetSalesSummaryServesCacheHit(t *testing.T) {
	invRepo, txRepo, summaryCache := newFixture()
	productID := invRepo.add(paracetamol())
	seedHistory(txRepo, productID)

	precomputed := domain.NewSalesSummary()
	precomputed.GrossRevenue["2026-03"] = 999
	summaryCache.store[summaryCache.key(testUserID, "monthly")] = precomputed

	svc := NewReportService(invRepo, txRepo, summaryCache)
	summary, err := svc.GetSalesSummary(context.Background(), testUserID, "monthly")
	require.NoError(t, err)

	assert.Equal(t, 999.0, summary.GrossRevenue["2026-03"])
}

func TestGetSalesSummaryCacheFailureDegrades(t *testing.T) {
	invRepo, txRepo, summaryCache := newFixture()
	productID := invRepo.add(paracetamol())
	seedHistory(txRepo, productID)
	summaryCache.getErr = errors.New("connection refused")
	summaryCache.setErr = errors.New("connection refused")

	svc := NewReportService(invRepo, txRepo, summaryCache)
	summary, err := svc.GetSalesSummary(context.Background(), testUserID, "monthly")
	require.NoError(t, err, "cache failure must not surface to the caller")
	assert.Equal(t, 150.0, summary.GrossRevenue["2026-03"])
}

func TestGetSalesSummaryUnknownPeriodBucketsMonthly(t *testing.T) {
	invRepo, txRepo, summaryCache := newFixture()
	productID := invRepo.add(paracetamol())
	seedHistory(txRepo, productID)
	svc := NewReportService(invRepo, txRepo, summaryCache)

	summary, err := svc.GetSalesSummary(context.Background(), testUserID, "quarterly")
	require.NoError(t, err)
	assert.Contains(t, summary.GrossRevenue, "2026-03")
}

func TestGetFastMovers(t *testing.T) {
	invRepo, txRepo, summaryCache := newFixture()
	fast := invRepo.add(paracetamol())
	slowItem := paracetamol()
	slowItem.ProductName = "Cough Syrup"
	slow := invRepo.add(slowItem)
	seedHistory(txRepo, fast)
	txRepo.append(domain.TransactionRecord{
		ProductID: slow, UserID: testUserID,
		SaleDate:     time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		QuantitySold: 1, Revenue: 75, Profit: 25, Type: domain.TransactionSale,
	})

	svc := NewReportService(invRepo, txRepo, summaryCache)
	movers, err := svc.GetFastMovers(context.Background(), testUserID, 1)
	require.NoError(t, err)

	require.Len(t, movers, 1)
	// Sale 2 + purchase 10 = 12 moved units for the fast product.
	assert.Equal(t, fast, movers[0].ProductID)
	assert.Equal(t, 12.0, movers[0].QuantitySold)
}

func TestGetSlowMoversDefaultThreshold(t *testing.T) {
	invRepo, txRepo, summaryCache := newFixture()
	fast := invRepo.add(paracetamol())
	slowItem := paracetamol()
	slowItem.ProductName = "Cough Syrup"
	slow := invRepo.add(slowItem)
	seedHistory(txRepo, fast) // 12 units: above the default 10
	txRepo.append(domain.TransactionRecord{
		ProductID: slow, UserID: testUserID,
		SaleDate:     time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		QuantitySold: 3, Revenue: 225, Profit: 75, Type: domain.TransactionSale,
	})

	svc := NewReportService(invRepo, txRepo, summaryCache)
	movers, err := svc.GetSlowMovers(context.Background(), testUserID, 0)
	require.NoError(t, err)

	require.Len(t, movers, 1)
	assert.Equal(t, slow, movers[0].ProductID)
	assert.Equal(t, "Cough Syrup", movers[0].ProductName)
}

func TestGetSalesHistoryNewestFirstWithNames(t *testing.T) {
	invRepo, txRepo, summaryCache := newFixture()
	productID := invRepo.add(paracetamol())
	seedHistory(txRepo, productID)

	svc := NewReportService(invRepo, txRepo, summaryCache)
	history, err := svc.GetSalesHistory(context.Background(), testUserID)
	require.NoError(t, err)

	require.Len(t, history, 2)
	assert.Equal(t, domain.TransactionPurchase, history[0].Type)
	assert.Equal(t, domain.TransactionSale, history[1].Type)
	assert.Equal(t, "Paracetamol 500mg", history[0].ProductName)
}

func TestReportsAreTenantScoped(t *testing.T) {
	invRepo, txRepo, summaryCache := newFixture()
	productID := invRepo.add(paracetamol())
	seedHistory(txRepo, productID)

	svc := NewReportService(invRepo, txRepo, summaryCache)
	const otherTenant int64 = 2002

	summary, err := svc.GetSalesSummary(context.Background(), otherTenant, "monthly")
	require.NoError(t, err)
	assert.Empty(t, summary.GrossRevenue)

	history, err := svc.GetSalesHistory(context.Background(), otherTenant)
	require.NoError(t, err)
	assert.Empty(t, history)
}
