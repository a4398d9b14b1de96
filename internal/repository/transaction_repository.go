// internal/repository/transaction_repository.go
package repository

import (
	"context"

	"github.com/stockwise/backend-go/internal/domain"
)

// TransactionRepository is the data-access boundary for the
// sales/purchase history. Records are immutable once written.
type TransactionRepository interface {
	FetchTransactions(ctx context.Context, userID int64) ([]domain.TransactionRecord, error)
	// FetchSalesHistory joins product names onto the history, newest
	// first.
	FetchSalesHistory(ctx context.Context, userID int64) ([]domain.SalesHistoryEntry, error)
	// RecordSale inserts the sale row and decrements the product's
	// current_stock in one transaction.
	RecordSale(ctx context.Context, record *domain.TransactionRecord) error
}
