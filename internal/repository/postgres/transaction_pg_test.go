// internal/repository/postgres/transaction_pg_test.go
package postgres

import (
	"context"
	"os"
	"testing"
	"time"

	"walletledger/internal/domain"
	"walletledger/pkg/db"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// connectTestDB connects to the database named by TEST_DATABASE_URL and
// applies migrations. Tests are skipped when the variable is unset.
func connectTestDB(t *testing.T) *sqlx.DB {
	t.Helper()
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set; skipping Postgres integration test")
	}
	conn, err := sqlx.Connect("postgres", dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	require.NoError(t, db.RunMigrations(conn))
	return conn
}

func TestTransactionOrderSurvivesEqualTimestamps(t *testing.T) {
	conn := connectTestDB(t)
	ctx := context.Background()
	walletRepo := NewWalletRepository()
	transactionRepo := NewTransactionRepository()

	wallet := domain.NewWallet("Ordering", "USD", decimal.NewFromInt(100))
	require.NoError(t, walletRepo.CreateWallet(ctx, conn, wallet))

	// Identical created_at and occurred_at on every row; only the sequence
	// column can tell insertion order apart.
	when := time.Date(2025, time.January, 10, 12, 0, 0, 0, time.UTC)
	ids := make([]uuid.UUID, 0, 5)
	for i := 0; i < 5; i++ {
		tx := domain.NewTransaction(wallet.ID, when, decimal.NewFromInt(10), domain.TransactionTypeIncome, nil)
		tx.CreatedAt = when
		require.NoError(t, transactionRepo.CreateTransaction(ctx, conn, tx))
		ids = append(ids, tx.ID)
	}

	byWallet, err := transactionRepo.GetTransactionsByWalletID(ctx, conn, wallet.ID)
	require.NoError(t, err)
	require.Len(t, byWallet, len(ids))
	for i, tx := range byWallet {
		assert.Equal(t, ids[i], tx.ID, "position %d out of insertion order", i)
	}

	start, end := domain.MonthWindow(2025, time.January)
	inWindow, err := transactionRepo.GetTransactionsInWindow(ctx, conn, start, end)
	require.NoError(t, err)
	got := make([]uuid.UUID, 0, len(ids))
	for _, tx := range inWindow {
		if tx.WalletID == wallet.ID {
			got = append(got, tx.ID)
		}
	}
	assert.Equal(t, ids, got)
}
