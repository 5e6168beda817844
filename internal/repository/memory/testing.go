// internal/repository/memory/testing.go
package memory

import (
	"time"

	"walletledger/internal/domain"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SeedWallet inserts a wallet directly into the store, bypassing validation.
// Test helper.
func SeedWallet(s *Store, name, currency string, initialBalance decimal.Decimal) *domain.Wallet {
	wallet := domain.NewWallet(name, currency, initialBalance)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.wallets[wallet.ID] = *wallet
	return wallet
}

// SeedTransaction appends a transaction directly into the store, bypassing
// the balance check. Test helper.
func SeedTransaction(s *Store, walletID uuid.UUID, occurredAt time.Time, amount decimal.Decimal, txType domain.TransactionType) *domain.Transaction {
	tx := domain.NewTransaction(walletID, occurredAt, amount, txType, nil)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.transactions = append(s.transactions, *tx)
	return tx
}
