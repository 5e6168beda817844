// internal/util/errors.go
package util

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Common application-specific errors. Callers match on these with errors.Is.
var (
	ErrValidation        = errors.New("validation failed")
	ErrInvalidAmount     = errors.New("invalid amount")
	ErrWalletNotFound    = errors.New("wallet not found")
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrDataAccess        = errors.New("data access failure")
	ErrNotFound          = errors.New("resource not found")
)

// IsError reports whether err matches the target error in its chain.
func IsError(err, target error) bool {
	return errors.Is(err, target)
}

// ValidationError describes a rejected input field. It matches ErrValidation
// under errors.Is.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// WalletNotFoundError identifies which wallet was missing. It matches
// ErrWalletNotFound under errors.Is.
type WalletNotFoundError struct {
	WalletID uuid.UUID
}

func (e *WalletNotFoundError) Error() string {
	return fmt.Sprintf("wallet %s not found", e.WalletID)
}

func (e *WalletNotFoundError) Is(target error) bool {
	return target == ErrWalletNotFound
}

// InsufficientFundsError carries the attempted amount and the available
// balance so callers can render both. It matches ErrInsufficientFunds
// under errors.Is.
type InsufficientFundsError struct {
	WalletID  uuid.UUID
	Attempted decimal.Decimal
	Available decimal.Decimal
}

func (e *InsufficientFundsError) Error() string {
	return fmt.Sprintf("insufficient funds in wallet %s: attempted %s, available %s",
		e.WalletID, e.Attempted.StringFixed(2), e.Available.StringFixed(2))
}

func (e *InsufficientFundsError) Is(target error) bool {
	return target == ErrInsufficientFunds
}

// DataAccessError wraps a storage failure with the operation that hit it.
// It matches ErrDataAccess under errors.Is and unwraps to the cause.
type DataAccessError struct {
	Op  string
	Err error
}

func (e *DataAccessError) Error() string {
	return fmt.Sprintf("data access failure in %s: %v", e.Op, e.Err)
}

func (e *DataAccessError) Unwrap() error {
	return e.Err
}

func (e *DataAccessError) Is(target error) bool {
	return target == ErrDataAccess
}
