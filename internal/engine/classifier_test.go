package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stockwise/backend-go/internal/domain"
)

func baseItem() domain.InventoryItem {
	return domain.InventoryItem{
		ProductID:          1,
		ProductName:        "Paracetamol 500mg",
		CurrentStock:       5,
		SafetyStockLevel:   10,
		ForecastedDemand:   20,
		AnnualDemand:       240,
		OrderCostFixed:     50,
		HoldingCostPerUnit: 2,
	}
}

func TestClassifyCriticalLow(t *testing.T) {
	decision, err := Classify(baseItem())
	require.NoError(t, err)

	assert.Equal(t, domain.StatusCriticalLow, decision.Status)
	assert.Equal(t, 15.0, decision.ReorderQuantity)
	assert.Equal(t, 5.0, decision.MinimumRequired)
	assert.Equal(t, 110, decision.EOQ)
	assert.NotEmpty(t, decision.Action)
}

func TestClassifySafetyBoundaryInclusive(t *testing.T) {
	item := baseItem()
	item.CurrentStock = item.SafetyStockLevel

	decision, err := Classify(item)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCriticalLow, decision.Status)
}

func TestClassifyWarning(t *testing.T) {
	item := baseItem()
	item.CurrentStock = 15 // above safety, below forecast

	decision, err := Classify(item)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusWarning, decision.Status)
	assert.Equal(t, 5.0, decision.ReorderQuantity)
	assert.NotEmpty(t, decision.Action)
}

func TestClassifyOptimal(t *testing.T) {
	item := baseItem()
	item.CurrentStock = 25 // at or above forecast

	decision, err := Classify(item)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusOptimal, decision.Status)
	assert.Equal(t, 0.0, decision.ReorderQuantity)
	assert.Empty(t, decision.Action)
	// EOQ is still attached for display.
	assert.Equal(t, 110, decision.EOQ)
}

func TestClassifyNegativeReorderPassesThrough(t *testing.T) {
	item := baseItem()
	item.CurrentStock = 8
	item.ForecastedDemand = 3 // forecast below stock but stock below safety

	decision, err := Classify(item)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCriticalLow, decision.Status)
	assert.Equal(t, -5.0, decision.ReorderQuantity)
}

func TestClassifyExactlyOneStatus(t *testing.T) {
	stocks := []float64{0, 5, 10, 10.5, 15, 20, 100}
	for _, stock := range stocks {
		item := baseItem()
		item.CurrentStock = stock

		decision, err := Classify(item)
		require.NoError(t, err)
		assert.Contains(t, []domain.StockStatus{
			domain.StatusCriticalLow, domain.StatusWarning, domain.StatusOptimal,
		}, decision.Status)
	}
}

func TestClassifyPropagatesDomainError(t *testing.T) {
	item := baseItem()
	item.HoldingCostPerUnit = -2

	_, err := Classify(item)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrDomain)
}

func TestClassifyAll(t *testing.T) {
	critical := baseItem()
	optimal := baseItem()
	optimal.ProductID = 2
	optimal.CurrentStock = 50

	decisions, err := ClassifyAll([]domain.InventoryItem{critical, optimal})
	require.NoError(t, err)
	require.Len(t, decisions, 2)
	assert.Equal(t, domain.StatusCriticalLow, decisions[0].Status)
	assert.Equal(t, domain.StatusOptimal, decisions[1].Status)
}
