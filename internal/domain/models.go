// internal/domain/models.go
package domain

import "time"

// InventoryItem represents one stock-keeping unit scoped to a tenant.
// MRP is derived at fetch time as order_cost_fixed * 1.5 (missing cost
// treated as 0); order_cost_fixed doubles as the per-unit cost.
type InventoryItem struct {
	ProductID          int64     `json:"product_id" db:"product_id"`
	UserID             int64     `json:"user_id" db:"user_id"`
	ProductName        string    `json:"product_name" db:"product_name"`
	CurrentStock       float64   `json:"current_stock" db:"current_stock"`
	SafetyStockLevel   float64   `json:"safety_stock_level" db:"safety_stock_level"`
	ForecastedDemand   float64   `json:"forecasted_demand" db:"forecasted_demand"`
	LeadTimeDays       int       `json:"lead_time_days" db:"lead_time_days"`
	AnnualDemand       float64   `json:"annual_demand" db:"annual_demand"`
	OrderCostFixed     float64   `json:"order_cost_fixed" db:"order_cost_fixed"`
	HoldingCostPerUnit float64   `json:"holding_cost_per_unit" db:"holding_cost_per_unit"`
	ExpiryDate         time.Time `json:"expiry_date" db:"expiry_date"`
	MRP                float64   `json:"mrp" db:"mrp"`
}

// TransactionRecord is one immutable sale or purchase entry. Revenue
// is signed: positive for sales, negative for purchases. Profit is 0
// for purchases.
type TransactionRecord struct {
	ID           int64           `json:"id" db:"id"`
	ProductID    int64           `json:"product_id" db:"product_id"`
	UserID       int64           `json:"user_id" db:"user_id"`
	SaleDate     time.Time       `json:"sale_date" db:"sale_date"`
	QuantitySold float64         `json:"quantity_sold" db:"quantity_sold"`
	Revenue      float64         `json:"revenue" db:"revenue"`
	Profit       float64         `json:"profit" db:"profit"`
	Type         TransactionType `json:"type" db:"type"`
}

// SalesHistoryEntry is a transaction joined to its product name for
// display, newest first.
type SalesHistoryEntry struct {
	TransactionRecord
	ProductName string `json:"product_name" db:"product_name"`
}

// ReplenishmentDecision is the per-item output of the classifier.
// ReorderQuantity and MinimumRequired are passed through as computed
// and may be negative. EOQ is attached for all states, including
// OPTIMAL; a value of 0 means the EOQ is undefined for the item, not
// a recommendation of zero units.
type ReplenishmentDecision struct {
	ProductID       int64       `json:"product_id"`
	ProductName     string      `json:"product_name"`
	CurrentStock    float64     `json:"current_stock"`
	Status          StockStatus `json:"status"`
	ReorderQuantity float64     `json:"reorder_quantity"`
	MinimumRequired float64     `json:"minimum_required"`
	EOQ             int         `json:"eoq"`
	Action          string      `json:"action,omitempty"`
}

// OrderLine is one line of a draft purchase order. Its quantity, not
// the classifier's advisory one, is the authoritative purchasable
// amount.
type OrderLine struct {
	ProductID       int64         `json:"product_id"`
	ProductName     string        `json:"product_name"`
	CurrentStock    float64       `json:"current_stock"`
	ReorderQuantity float64       `json:"reorder_quantity"`
	EOQ             int           `json:"eoq"`
	Priority        OrderPriority `json:"priority"`
}

// SalesSummary holds five parallel period-label -> value mappings.
// An empty history yields five empty maps, distinguishing "no data"
// from an all-zero period.
type SalesSummary struct {
	GrossRevenue    map[string]float64 `json:"gross_revenue"`
	OrderCost       map[string]float64 `json:"order_cost"`
	TotalProfit     map[string]float64 `json:"total_profit"`
	MarginOfRevenue map[string]float64 `json:"margin_of_revenue"`
	NetProfit       map[string]float64 `json:"net_profit"`
}

// NewSalesSummary returns a summary with all five maps allocated.
func NewSalesSummary() SalesSummary {
	return SalesSummary{
		GrossRevenue:    make(map[string]float64),
		OrderCost:       make(map[string]float64),
		TotalProfit:     make(map[string]float64),
		MarginOfRevenue: make(map[string]float64),
		NetProfit:       make(map[string]float64),
	}
}

// ProductMovement is a per-product quantity total used by the fast
// and slow mover rankings.
type ProductMovement struct {
	ProductID    int64   `json:"product_id"`
	ProductName  string  `json:"product_name"`
	QuantitySold float64 `json:"quantity_sold"`
}

// ExpiryAlert flags an item whose expiry date falls within the scan
// window. DaysToExpiry is negative for already-expired stock.
type ExpiryAlert struct {
	ProductID    int64     `json:"product_id"`
	ProductName  string    `json:"product_name"`
	CurrentStock float64   `json:"current_stock"`
	ExpiryDate   time.Time `json:"expiry_date"`
	DaysToExpiry int       `json:"days_to_expiry"`
}

// SaleReceipt reports the monetary outcome of a recorded sale,
// rounded to 2 decimals.
type SaleReceipt struct {
	ProductID int64   `json:"product_id"`
	Quantity  float64 `json:"quantity"`
	Revenue   float64 `json:"revenue"`
	Profit    float64 `json:"profit"`
}
