// internal/domain/transaction.go
package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionType defines the direction of a ledger entry. Direction is
// always expressed by this tag; stored amounts are positive magnitudes.
type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "INCOME"
	TransactionTypeExpense TransactionType = "EXPENSE"
)

// TransactionTypes lists the closed set of types in enumeration order.
// Aggregations that need a stable type order iterate this slice.
var TransactionTypes = []TransactionType{TransactionTypeIncome, TransactionTypeExpense}

// MaxDescriptionLen bounds the optional free-text description.
const MaxDescriptionLen = 255

// Transaction is an immutable, append-only ledger record. It is never
// updated or deleted after creation.
type Transaction struct {
	ID          uuid.UUID       `db:"id" json:"id"`
	WalletID    uuid.UUID       `db:"wallet_id" json:"wallet_id"`     // Owning wallet, must pre-exist
	Amount      decimal.Decimal `db:"amount" json:"amount"`           // Strictly positive, 2 decimal places, NUMERIC(20, 2) in DB
	Type        TransactionType `db:"type" json:"type"`               // INCOME or EXPENSE
	OccurredAt  time.Time       `db:"occurred_at" json:"occurred_at"` // Business timestamp, stored as given
	Description *string         `db:"description" json:"description"` // Optional free text
	CreatedAt   time.Time       `db:"created_at" json:"created_at"`
}

// NewTransaction creates a new Transaction instance with a fresh id. Inputs
// are assumed already validated by the ledger service.
func NewTransaction(walletID uuid.UUID, occurredAt time.Time, amount decimal.Decimal, txType TransactionType, description *string) *Transaction {
	return &Transaction{
		ID:          uuid.New(),
		WalletID:    walletID,
		Amount:      amount,
		Type:        txType,
		OccurredAt:  occurredAt,
		Description: description,
		CreatedAt:   time.Now().UTC(),
	}
}
