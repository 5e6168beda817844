// internal/domain/report.go
package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionGroup is one type bucket of a monthly report: its total over
// the window and the matching transactions ordered by ascending timestamp.
type TransactionGroup struct {
	Type         TransactionType `json:"type"`
	Total        decimal.Decimal `json:"total"`
	Transactions []Transaction   `json:"transactions"`
}

// MonthlyReport groups one calendar month's transactions by type. Groups are
// ordered by descending total; ties keep type enumeration order.
type MonthlyReport struct {
	Year   int                `json:"year"`
	Month  time.Month         `json:"month"`
	Groups []TransactionGroup `json:"groups"`
}

// MonthWindow returns the half-open UTC window [start, end) covering the
// given calendar month. time.Date normalizes month overflow, so December
// rolls into January of the next year.
func MonthWindow(year int, month time.Month) (start, end time.Time) {
	start = time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	end = time.Date(year, month+1, 1, 0, 0, 0, 0, time.UTC)
	return start, end
}
