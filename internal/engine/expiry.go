// internal/engine/expiry.go
package engine

import (
	"sort"
	"time"

	"github.com/stockwise/backend-go/internal/domain"
)

// DefaultExpiryWindowDays is the default look-ahead horizon.
const DefaultExpiryWindowDays = 30

// ScanExpiry returns items whose expiry date falls at or before
// now + windowDays, annotated with whole days to expiry. Negative
// values flag already-expired stock and are surfaced, never filtered,
// so operators can see overdue items. The result is sorted ascending
// by days-to-expiry (most urgent first), then by product id.
func ScanExpiry(items []domain.InventoryItem, now time.Time, windowDays int) []domain.ExpiryAlert {
	if windowDays <= 0 {
		windowDays = DefaultExpiryWindowDays
	}

	today := truncateToDay(now)
	horizon := today.AddDate(0, 0, windowDays)

	alerts := make([]domain.ExpiryAlert, 0)
	for _, item := range items {
		expiry := truncateToDay(item.ExpiryDate)
		if expiry.After(horizon) {
			continue
		}

		alerts = append(alerts, domain.ExpiryAlert{
			ProductID:    item.ProductID,
			ProductName:  item.ProductName,
			CurrentStock: item.CurrentStock,
			ExpiryDate:   item.ExpiryDate,
			DaysToExpiry: int(expiry.Sub(today).Hours() / 24),
		})
	}

	sort.Slice(alerts, func(i, j int) bool {
		if alerts[i].DaysToExpiry != alerts[j].DaysToExpiry {
			return alerts[i].DaysToExpiry < alerts[j].DaysToExpiry
		}
		return alerts[i].ProductID < alerts[j].ProductID
	})

	return alerts
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
