// internal/repository/postgres/transaction_repository.go
package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/stockwise/backend-go/internal/domain"
)

type transactionRepository struct {
	db *DB
}

func NewTransactionRepository(db *DB) *transactionRepository {
	return &transactionRepository{db: db}
}

func (r *transactionRepository) FetchTransactions(ctx context.Context, userID int64) ([]domain.TransactionRecord, error) {
	query := `
		SELECT id, product_id, user_id, sale_date, quantity_sold, revenue, profit, type
		FROM sales_history
		WHERE user_id = $1
		ORDER BY sale_date, id
	`

	records := make([]domain.TransactionRecord, 0)
	if err := r.db.SelectContext(ctx, &records, query, userID); err != nil {
		return nil, fmt.Errorf("failed to fetch transactions: %w", err)
	}

	return records, nil
}

func (r *transactionRepository) FetchSalesHistory(ctx context.Context, userID int64) ([]domain.SalesHistoryEntry, error) {
	query := `
		SELECT
			h.id, h.product_id, h.user_id, h.sale_date, h.quantity_sold,
			h.revenue, h.profit, h.type,
			COALESCE(i.product_name, '') AS product_name
		FROM sales_history h
		LEFT JOIN inventory i ON i.product_id = h.product_id AND i.user_id = h.user_id
		WHERE h.user_id = $1
		ORDER BY h.sale_date DESC, h.id DESC
	`

	entries := make([]domain.SalesHistoryEntry, 0)
	if err := r.db.SelectContext(ctx, &entries, query, userID); err != nil {
		return nil, fmt.Errorf("failed to fetch sales history: %w", err)
	}

	return entries, nil
}

// RecordSale writes the sale row and the matching stock decrement as
// one transaction: they commit together or not at all.
func (r *transactionRepository) RecordSale(ctx context.Context, record *domain.TransactionRecord) error {
	return r.db.WithTx(ctx, func(tx *sql.Tx) error {
		if err := insertTransaction(ctx, tx, record); err != nil {
			return err
		}

		res, err := tx.ExecContext(ctx,
			`UPDATE inventory SET current_stock = current_stock - $1 WHERE user_id = $2 AND product_id = $3`,
			record.QuantitySold, record.UserID, record.ProductID)
		if err != nil {
			return fmt.Errorf("%w: decrement stock for product %d: %v", domain.ErrWrite, record.ProductID, err)
		}

		affected, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("%w: decrement stock for product %d: %v", domain.ErrWrite, record.ProductID, err)
		}
		if affected == 0 {
			return fmt.Errorf("%w: product %d", domain.ErrNotFound, record.ProductID)
		}

		return nil
	})
}

// insertTransaction appends one immutable history row inside an open
// transaction. Shared by sale recording and purchase stock updates.
func insertTransaction(ctx context.Context, tx *sql.Tx, record *domain.TransactionRecord) error {
	query := `
		INSERT INTO sales_history (product_id, user_id, sale_date, quantity_sold, revenue, profit, type)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`

	err := tx.QueryRowContext(ctx, query,
		record.ProductID,
		record.UserID,
		record.SaleDate,
		record.QuantitySold,
		record.Revenue,
		record.Profit,
		record.Type,
	).Scan(&record.ID)
	if err != nil {
		return fmt.Errorf("%w: insert %s record for product %d: %v", domain.ErrWrite, record.Type, record.ProductID, err)
	}

	return nil
}
