// internal/repository/postgres/transaction_pg.go
package postgres

import (
	"context"
	"fmt"
	"time"

	"walletledger/internal/domain"
	"walletledger/internal/repository"

	"github.com/google/uuid"
)

// TransactionRepository implements repository.TransactionRepository for PostgreSQL.
type TransactionRepository struct{}

// NewTransactionRepository creates a new TransactionRepository.
func NewTransactionRepository() repository.TransactionRepository {
	return &TransactionRepository{}
}

// CreateTransaction inserts a new transaction record using the provided DBExecutor.
func (r *TransactionRepository) CreateTransaction(ctx context.Context, q repository.DBExecutor, transaction *domain.Transaction) error {
	query := `INSERT INTO transactions (id, wallet_id, amount, type, occurred_at, description, created_at)
              VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := q.ExecContext(ctx, query,
		transaction.ID,
		transaction.WalletID,
		transaction.Amount,
		transaction.Type,
		transaction.OccurredAt,
		transaction.Description,
		transaction.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create transaction: %w", err)
	}
	return nil
}

// GetTransactionsByWalletID retrieves every transaction for a wallet in
// insertion order. The seq sequence column makes that order deterministic
// even when created_at timestamps collide.
func (r *TransactionRepository) GetTransactionsByWalletID(ctx context.Context, q repository.DBExecutor, walletID uuid.UUID) ([]domain.Transaction, error) {
	transactions := []domain.Transaction{}
	query := `
		SELECT id, wallet_id, amount, type, occurred_at, description, created_at
		FROM transactions
		WHERE wallet_id = $1
		ORDER BY seq`
	if err := q.SelectContext(ctx, &transactions, query, walletID); err != nil {
		return nil, fmt.Errorf("failed to fetch transactions for wallet %s: %w", walletID, err)
	}
	return transactions, nil
}

// GetTransactionsInWindow retrieves every transaction with occurred_at in
// [start, end), in insertion order.
func (r *TransactionRepository) GetTransactionsInWindow(ctx context.Context, q repository.DBExecutor, start, end time.Time) ([]domain.Transaction, error) {
	transactions := []domain.Transaction{}
	query := `
		SELECT id, wallet_id, amount, type, occurred_at, description, created_at
		FROM transactions
		WHERE occurred_at >= $1 AND occurred_at < $2
		ORDER BY seq`
	if err := q.SelectContext(ctx, &transactions, query, start, end); err != nil {
		return nil, fmt.Errorf("failed to fetch transactions in window [%s, %s): %w", start, end, err)
	}
	return transactions, nil
}
