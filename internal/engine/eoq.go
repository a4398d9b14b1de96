// internal/engine/eoq.go
package engine

import (
	"fmt"
	"math"

	"github.com/stockwise/backend-go/internal/domain"
)

// EOQ computes the Economic Order Quantity for the standard formula
// round(sqrt(2 * annualDemand * orderCost / holdingCost)).
//
// A zero holding cost returns 0 rather than an error: callers must
// treat 0 as "EOQ not applicable", not as a recommendation of zero
// units. A negative radicand has no real square root and yields a
// domain error.
func EOQ(annualDemand, orderCost, holdingCost float64) (int, error) {
	if holdingCost == 0 {
		return 0, nil
	}

	radicand := (2 * annualDemand * orderCost) / holdingCost
	if radicand < 0 {
		return 0, fmt.Errorf("%w: eoq radicand %f is negative", domain.ErrDomain, radicand)
	}

	return int(math.Round(math.Sqrt(radicand))), nil
}

// ItemEOQ computes the EOQ from an item's demand and cost fields.
func ItemEOQ(item domain.InventoryItem) (int, error) {
	return EOQ(item.AnnualDemand, item.OrderCostFixed, item.HoldingCostPerUnit)
}
