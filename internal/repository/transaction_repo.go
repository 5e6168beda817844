// internal/repository/transaction_repo.go
package repository

import (
	"context"
	"time"

	"walletledger/internal/domain"

	"github.com/google/uuid"
)

// TransactionRepository defines the interface for transaction data operations.
// The log is append-only: there are no update or delete operations.
type TransactionRepository interface {
	// CreateTransaction appends a new transaction record using the provided DBExecutor.
	CreateTransaction(ctx context.Context, q DBExecutor, transaction *domain.Transaction) error
	// GetTransactionsByWalletID retrieves every transaction referencing the
	// wallet, ordered by creation (insertion order).
	GetTransactionsByWalletID(ctx context.Context, q DBExecutor, walletID uuid.UUID) ([]domain.Transaction, error)
	// GetTransactionsInWindow retrieves every transaction whose business
	// timestamp falls in the half-open window [start, end), in insertion order.
	GetTransactionsInWindow(ctx context.Context, q DBExecutor, start, end time.Time) ([]domain.Transaction, error)
}
