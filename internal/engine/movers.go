// internal/engine/movers.go
package engine

import (
	"sort"

	"github.com/stockwise/backend-go/internal/domain"
)

const (
	// DefaultFastMoverLimit caps the fast-mover ranking.
	DefaultFastMoverLimit = 5
	// DefaultSlowMoverThreshold marks items whose total moved
	// quantity stays at or below it as slow.
	DefaultSlowMoverThreshold = 10
)

// sumByProduct totals quantity_sold per product across all
// transaction types — purchases contribute to the raw sum alongside
// sales — and inner-joins to the product name. Products without an
// inventory row are dropped.
func sumByProduct(records []domain.TransactionRecord, items []domain.InventoryItem) []domain.ProductMovement {
	names := make(map[int64]string, len(items))
	for _, item := range items {
		names[item.ProductID] = item.ProductName
	}

	sums := make(map[int64]float64)
	for _, rec := range records {
		sums[rec.ProductID] += rec.QuantitySold
	}

	movements := make([]domain.ProductMovement, 0, len(sums))
	for productID, qty := range sums {
		name, ok := names[productID]
		if !ok {
			continue
		}
		movements = append(movements, domain.ProductMovement{
			ProductID:    productID,
			ProductName:  name,
			QuantitySold: qty,
		})
	}

	return movements
}

// FastMovers returns the top-N products by total moved quantity,
// descending, ties broken by ascending product id so the ranking is
// deterministic. An empty history yields an empty slice.
func FastMovers(records []domain.TransactionRecord, items []domain.InventoryItem, topN int) []domain.ProductMovement {
	if topN <= 0 {
		topN = DefaultFastMoverLimit
	}

	movements := sumByProduct(records, items)
	sort.Slice(movements, func(i, j int) bool {
		if movements[i].QuantitySold != movements[j].QuantitySold {
			return movements[i].QuantitySold > movements[j].QuantitySold
		}
		return movements[i].ProductID < movements[j].ProductID
	})

	if len(movements) > topN {
		movements = movements[:topN]
	}

	return movements
}

// SlowMovers returns products whose total moved quantity is at or
// below the threshold, ordered by product id for a stable output.
// An empty history yields an empty slice.
func SlowMovers(records []domain.TransactionRecord, items []domain.InventoryItem, threshold float64) []domain.ProductMovement {
	movements := sumByProduct(records, items)

	slow := make([]domain.ProductMovement, 0, len(movements))
	for _, m := range movements {
		if m.QuantitySold <= threshold {
			slow = append(slow, m)
		}
	}

	sort.Slice(slow, func(i, j int) bool { return slow[i].ProductID < slow[j].ProductID })

	return slow
}
