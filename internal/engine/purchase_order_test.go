package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stockwise/backend-go/internal/domain"
)

func orderInventory() []domain.InventoryItem {
	return []domain.InventoryItem{
		{
			// WARNING: above safety, below forecast.
			ProductID: 1, ProductName: "Vitamin C", CurrentStock: 18,
			SafetyStockLevel: 12, ForecastedDemand: 25,
			AnnualDemand: 360, OrderCostFixed: 30, HoldingCostPerUnit: 1.5,
		},
		{
			// CRITICAL_LOW with stock above half safety: MEDIUM.
			ProductID: 2, ProductName: "Cough Syrup", CurrentStock: 8,
			SafetyStockLevel: 10, ForecastedDemand: 20,
			AnnualDemand: 180, OrderCostFixed: 80, HoldingCostPerUnit: 3,
		},
		{
			// CRITICAL_LOW at half safety: HIGH (boundary inclusive).
			ProductID: 3, ProductName: "Paracetamol", CurrentStock: 5,
			SafetyStockLevel: 10, ForecastedDemand: 20,
			AnnualDemand: 240, OrderCostFixed: 50, HoldingCostPerUnit: 2,
		},
		{
			// OPTIMAL: excluded entirely.
			ProductID: 4, ProductName: "Sanitizer", CurrentStock: 120,
			SafetyStockLevel: 20, ForecastedDemand: 35,
			AnnualDemand: 500, OrderCostFixed: 25, HoldingCostPerUnit: 1,
		},
	}
}

func TestBuildPurchaseOrderInclusionExclusion(t *testing.T) {
	lines, err := BuildPurchaseOrder(orderInventory())
	require.NoError(t, err)

	require.Len(t, lines, 3)
	seen := make(map[int64]int)
	for _, line := range lines {
		seen[line.ProductID]++
		assert.NotEqual(t, int64(4), line.ProductID, "optimal items must be excluded")
	}
	for _, id := range []int64{1, 2, 3} {
		assert.Equal(t, 1, seen[id], "non-optimal item %d must appear exactly once", id)
	}
}

func TestBuildPurchaseOrderQuantities(t *testing.T) {
	lines, err := BuildPurchaseOrder(orderInventory())
	require.NoError(t, err)

	byID := make(map[int64]domain.OrderLine)
	for _, line := range lines {
		byID[line.ProductID] = line
	}

	// WARNING: forecast - stock.
	assert.Equal(t, 7.0, byID[1].ReorderQuantity)
	assert.Equal(t, domain.PriorityLow, byID[1].Priority)

	// CRITICAL_LOW: max(20-8, 10-8+10) = max(12, 12) = 12, MEDIUM.
	assert.Equal(t, 12.0, byID[2].ReorderQuantity)
	assert.Equal(t, domain.PriorityMedium, byID[2].Priority)

	// CRITICAL_LOW: max(20-5, 10-5+10) = 15, HIGH at half safety.
	assert.Equal(t, 15.0, byID[3].ReorderQuantity)
	assert.Equal(t, domain.PriorityHigh, byID[3].Priority)
}

func TestBuildPurchaseOrderBufferDominates(t *testing.T) {
	items := []domain.InventoryItem{{
		ProductID: 7, CurrentStock: 9, SafetyStockLevel: 10, ForecastedDemand: 12,
		AnnualDemand: 100, OrderCostFixed: 10, HoldingCostPerUnit: 1,
	}}

	lines, err := BuildPurchaseOrder(items)
	require.NoError(t, err)
	require.Len(t, lines, 1)
	// max(12-9, 10-9+10) = max(3, 11) = 11: the buffered safety
	// shortfall wins over the demand gap.
	assert.Equal(t, 11.0, lines[0].ReorderQuantity)
}

func TestBuildPurchaseOrderSortedByPriority(t *testing.T) {
	lines, err := BuildPurchaseOrder(orderInventory())
	require.NoError(t, err)

	require.Len(t, lines, 3)
	assert.Equal(t, domain.PriorityHigh, lines[0].Priority)
	assert.Equal(t, domain.PriorityMedium, lines[1].Priority)
	assert.Equal(t, domain.PriorityLow, lines[2].Priority)
}

func TestBuildPurchaseOrderPropagatesDomainError(t *testing.T) {
	items := orderInventory()
	items[1].HoldingCostPerUnit = -3

	_, err := BuildPurchaseOrder(items)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrDomain)
}

func TestBuildPurchaseOrderEmptyInventory(t *testing.T) {
	lines, err := BuildPurchaseOrder(nil)
	require.NoError(t, err)
	assert.Empty(t, lines)
}
