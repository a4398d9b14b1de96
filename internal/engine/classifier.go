// internal/engine/classifier.go
package engine

import (
	"fmt"

	"github.com/stockwise/backend-go/internal/domain"
)

// classificationRule pairs a predicate with the decision it produces.
// Rules are evaluated in order and the first match wins, so the
// tie-break between CRITICAL_LOW and WARNING stays visible here
// instead of being buried in nested conditionals.
type classificationRule struct {
	status  domain.StockStatus
	matches func(domain.InventoryItem) bool
	apply   func(domain.InventoryItem, *domain.ReplenishmentDecision)
}

var replenishmentRules = []classificationRule{
	{
		// Boundary inclusive: stock equal to the safety level is
		// already critical.
		status:  domain.StatusCriticalLow,
		matches: func(it domain.InventoryItem) bool { return it.CurrentStock <= it.SafetyStockLevel },
		apply: func(it domain.InventoryItem, d *domain.ReplenishmentDecision) {
			d.ReorderQuantity = it.ForecastedDemand - it.CurrentStock
			d.MinimumRequired = it.SafetyStockLevel - it.CurrentStock
			d.Action = fmt.Sprintf("ORDER %g units IMMEDIATELY. MINIMUM ORDER: %g",
				d.ReorderQuantity, d.MinimumRequired)
		},
	},
	{
		status:  domain.StatusWarning,
		matches: func(it domain.InventoryItem) bool { return it.CurrentStock < it.ForecastedDemand },
		apply: func(it domain.InventoryItem, d *domain.ReplenishmentDecision) {
			d.ReorderQuantity = it.ForecastedDemand - it.CurrentStock
			d.Action = fmt.Sprintf("ORDER %g units to prepare a purchase order for next week.",
				d.ReorderQuantity)
		},
	},
	{
		status:  domain.StatusOptimal,
		matches: func(domain.InventoryItem) bool { return true },
		apply:   func(domain.InventoryItem, *domain.ReplenishmentDecision) {},
	},
}

// Classify maps one inventory item to its replenishment decision.
// Reorder quantities are passed through as computed, never clamped.
// The EOQ is computed unconditionally so OPTIMAL items still carry it
// for display.
func Classify(item domain.InventoryItem) (domain.ReplenishmentDecision, error) {
	eoq, err := ItemEOQ(item)
	if err != nil {
		return domain.ReplenishmentDecision{}, fmt.Errorf("classify product %d: %w", item.ProductID, err)
	}

	decision := domain.ReplenishmentDecision{
		ProductID:    item.ProductID,
		ProductName:  item.ProductName,
		CurrentStock: item.CurrentStock,
		EOQ:          eoq,
	}

	for _, rule := range replenishmentRules {
		if rule.matches(item) {
			decision.Status = rule.status
			rule.apply(item, &decision)
			break
		}
	}

	return decision, nil
}

// ClassifyAll runs the classifier across a full inventory snapshot.
func ClassifyAll(items []domain.InventoryItem) ([]domain.ReplenishmentDecision, error) {
	decisions := make([]domain.ReplenishmentDecision, 0, len(items))
	for _, item := range items {
		decision, err := Classify(item)
		if err != nil {
			return nil, err
		}
		decisions = append(decisions, decision)
	}

	return decisions, nil
}
