// internal/domain/wallet.go
package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Wallet is an account denominated in a single currency. It is created once
// and never mutated afterwards; its balance is always derived from the
// transaction log, never stored.
type Wallet struct {
	ID             uuid.UUID       `db:"id" json:"id"`
	Name           string          `db:"name" json:"name"`                       // Display name, trimmed, non-empty
	Currency       string          `db:"currency" json:"currency"`               // 3-letter uppercase ISO-4217 code
	InitialBalance decimal.Decimal `db:"initial_balance" json:"initial_balance"` // Non-negative, 2 decimal places, NUMERIC(20, 2) in DB
	Version        int64           `db:"version" json:"version"`                 // Concurrency token owned by the storage layer
	CreatedAt      time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt      time.Time       `db:"updated_at" json:"updated_at"`
}

// NewWallet creates a new Wallet instance with a fresh id. Inputs are assumed
// already validated and normalized by the ledger service.
func NewWallet(name, currency string, initialBalance decimal.Decimal) *Wallet {
	now := time.Now().UTC()
	return &Wallet{
		ID:             uuid.New(),
		Name:           name,
		Currency:       currency,
		InitialBalance: initialBalance,
		Version:        1,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}
