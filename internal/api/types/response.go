// internal/api/types/response.go
package types

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ErrorResponse is the JSON body returned for any failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}

// BalanceResponse carries a wallet's computed balance.
type BalanceResponse struct {
	WalletID uuid.UUID       `json:"wallet_id"`
	Balance  decimal.Decimal `json:"balance"`
}
