// internal/engine/sales_summary.go
package engine

import (
	"math"

	"github.com/stockwise/backend-go/internal/domain"
)

// periodTotals accumulates the raw sums for one period label before
// the derived metrics are computed.
type periodTotals struct {
	grossRevenue    float64
	totalProfit     float64
	purchaseRevenue float64
}

// SummarizeSales buckets a tenant's transaction history by period and
// derives the five financial metrics per bucket.
//
// order_cost recovers a positive figure from the negatively stored
// purchase revenue. net_profit = gross - cost + profit re-adds profit
// on top of the margin; the double count matches the established
// reporting output and is kept as-is (flagged to stakeholders, see
// DESIGN.md).
func SummarizeSales(records []domain.TransactionRecord, granularity Granularity) domain.SalesSummary {
	summary := domain.NewSalesSummary()
	if len(records) == 0 {
		return summary
	}

	totals := make(map[string]*periodTotals)
	for _, rec := range records {
		label := granularity.Label(rec.SaleDate)
		bucket, ok := totals[label]
		if !ok {
			bucket = &periodTotals{}
			totals[label] = bucket
		}

		switch rec.Type {
		case domain.TransactionSale:
			bucket.grossRevenue += rec.Revenue
			bucket.totalProfit += rec.Profit
		case domain.TransactionPurchase:
			bucket.purchaseRevenue += rec.Revenue
		}
	}

	for label, bucket := range totals {
		orderCost := math.Abs(bucket.purchaseRevenue)

		summary.GrossRevenue[label] = bucket.grossRevenue
		summary.OrderCost[label] = orderCost
		summary.TotalProfit[label] = bucket.totalProfit
		summary.MarginOfRevenue[label] = bucket.grossRevenue - orderCost
		summary.NetProfit[label] = bucket.grossRevenue - orderCost + bucket.totalProfit
	}

	return summary
}
