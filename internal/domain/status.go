package domain

import "strings"

// StockStatus is the replenishment state of an inventory item.
// Exactly one applies per item; the classifier's rule order decides
// ties.
type StockStatus string

const (
	StatusOptimal     StockStatus = "OPTIMAL"
	StatusWarning     StockStatus = "WARNING"
	StatusCriticalLow StockStatus = "CRITICAL_LOW"
)

// TransactionType distinguishes sales from purchases in history rows.
type TransactionType string

const (
	TransactionSale     TransactionType = "sale"
	TransactionPurchase TransactionType = "purchase"
)

// OrderPriority ranks purchase-order lines. HIGH sorts first.
type OrderPriority string

const (
	PriorityHigh   OrderPriority = "HIGH"
	PriorityMedium OrderPriority = "MEDIUM"
	PriorityLow    OrderPriority = "LOW"
)

var priorityRanks = map[OrderPriority]int{
	PriorityHigh:   0,
	PriorityMedium: 1,
	PriorityLow:    2,
}

// Rank returns the sort rank of a priority; unknown values sort last.
func (p OrderPriority) Rank() int {
	if rank, ok := priorityRanks[p]; ok {
		return rank
	}

	return len(priorityRanks)
}

var priorityLabels = map[string]OrderPriority{
	"high":   PriorityHigh,
	"medium": PriorityMedium,
	"low":    PriorityLow,
}

// ParseOrderPriority returns the priority for a label (case-insensitive).
func ParseOrderPriority(label string) (OrderPriority, bool) {
	p, ok := priorityLabels[strings.ToLower(label)]

	return p, ok
}
