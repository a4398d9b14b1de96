// internal/engine/purchase_order.go
package engine

import (
	"fmt"
	"math"
	"sort"

	"github.com/stockwise/backend-go/internal/domain"
)

// criticalBuffer is added on top of the safety-stock shortfall when a
// critical item is ordered, so the order clears the safety level with
// headroom instead of landing exactly on it.
const criticalBuffer = 10

// BuildPurchaseOrder turns an inventory snapshot into draft order
// lines. OPTIMAL items are excluded entirely; every other item
// appears exactly once.
//
// For CRITICAL_LOW items the quantity takes the larger of the two
// demand signals plus the fixed buffer, which intentionally exceeds
// the classifier's advisory reorder quantity. Lines are sorted by
// priority rank then product id so the output does not depend on the
// incoming row order.
func BuildPurchaseOrder(items []domain.InventoryItem) ([]domain.OrderLine, error) {
	lines := make([]domain.OrderLine, 0)

	for _, item := range items {
		var (
			qty      float64
			priority domain.OrderPriority
		)

		switch {
		case item.CurrentStock <= item.SafetyStockLevel:
			qty = math.Max(item.ForecastedDemand-item.CurrentStock,
				item.SafetyStockLevel-item.CurrentStock+criticalBuffer)
			priority = domain.PriorityMedium
			if item.CurrentStock <= item.SafetyStockLevel*0.5 {
				priority = domain.PriorityHigh
			}
		case item.CurrentStock < item.ForecastedDemand:
			qty = item.ForecastedDemand - item.CurrentStock
			priority = domain.PriorityLow
		default:
			continue
		}

		eoq, err := ItemEOQ(item)
		if err != nil {
			return nil, fmt.Errorf("purchase order for product %d: %w", item.ProductID, err)
		}

		lines = append(lines, domain.OrderLine{
			ProductID:       item.ProductID,
			ProductName:     item.ProductName,
			CurrentStock:    item.CurrentStock,
			ReorderQuantity: qty,
			EOQ:             eoq,
			Priority:        priority,
		})
	}

	sort.SliceStable(lines, func(i, j int) bool {
		if lines[i].Priority.Rank() != lines[j].Priority.Rank() {
			return lines[i].Priority.Rank() < lines[j].Priority.Rank()
		}
		return lines[i].ProductID < lines[j].ProductID
	})

	return lines, nil
}
