// internal/repository/wallet_repo.go
package repository

import (
	"context"

	"walletledger/internal/domain"

	"github.com/google/uuid"
)

// WalletRepository defines the interface for wallet data operations.
type WalletRepository interface {
	// CreateWallet adds a new wallet using the provided DBExecutor.
	CreateWallet(ctx context.Context, q DBExecutor, wallet *domain.Wallet) error
	// GetWalletByID retrieves a wallet by its ID using the provided DBExecutor.
	// Returns util.ErrNotFound when no such wallet exists.
	GetWalletByID(ctx context.Context, q DBExecutor, id uuid.UUID) (*domain.Wallet, error)
}
