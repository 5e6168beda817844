// internal/repository/memory/memory_test.go
package memory

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"walletledger/internal/domain"
	"walletledger/internal/util"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func TestStore_WalletRoundTrip(t *testing.T) {
	s := NewStore()
	ctx := context.Background()

	wallet := domain.NewWallet("Groceries", "EUR", decimal.NewFromInt(100))
	if err := s.WalletRepository().CreateWallet(ctx, nil, wallet); err != nil {
		t.Fatalf("create wallet: %v", err)
	}

	got, err := s.WalletRepository().GetWalletByID(ctx, nil, wallet.ID)
	if err != nil {
		t.Fatalf("get wallet: %v", err)
	}
	if got.Name != "Groceries" || got.Currency != "EUR" {
		t.Fatalf("unexpected wallet %+v", got)
	}
}

func TestStore_MissingWallet(t *testing.T) {
	s := NewStore()
	if _, err := s.WalletRepository().GetWalletByID(context.Background(), nil, uuid.New()); err != util.ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestStore_TransactionsKeepInsertionOrder(t *testing.T) {
	s := NewStore()
	ctx := context.Background()
	wallet := SeedWallet(s, "Main", "USD", decimal.NewFromInt(500))

	when := time.Date(2025, time.January, 10, 12, 0, 0, 0, time.UTC)
	first := SeedTransaction(s, wallet.ID, when, decimal.NewFromInt(50), domain.TransactionTypeExpense)
	second := SeedTransaction(s, wallet.ID, when, decimal.NewFromInt(50), domain.TransactionTypeExpense)

	txs, err := s.TransactionRepository().GetTransactionsByWalletID(ctx, nil, wallet.ID)
	if err != nil {
		t.Fatalf("list transactions: %v", err)
	}
	if len(txs) != 2 {
		t.Fatalf("expected 2 transactions, got %d", len(txs))
	}
	if txs[0].ID != first.ID || txs[1].ID != second.ID {
		t.Fatal("transactions not in insertion order")
	}
}

func TestStore_WindowIsHalfOpen(t *testing.T) {
	s := NewStore()
	ctx := context.Background()
	wallet := SeedWallet(s, "Main", "USD", decimal.NewFromInt(500))

	start := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, time.February, 1, 0, 0, 0, 0, time.UTC)

	inside := SeedTransaction(s, wallet.ID, start, decimal.NewFromInt(10), domain.TransactionTypeIncome)
	SeedTransaction(s, wallet.ID, end, decimal.NewFromInt(20), domain.TransactionTypeIncome)
	SeedTransaction(s, wallet.ID, start.Add(-time.Nanosecond), decimal.NewFromInt(30), domain.TransactionTypeIncome)

	txs, err := s.TransactionRepository().GetTransactionsInWindow(ctx, nil, start, end)
	if err != nil {
		t.Fatalf("list window: %v", err)
	}
	if len(txs) != 1 || txs[0].ID != inside.ID {
		t.Fatalf("expected only the boundary-start transaction, got %d entries", len(txs))
	}
}

func TestStore_ConcurrentAppends(t *testing.T) {
	s := NewStore()
	ctx := context.Background()
	wallet := SeedWallet(s, "Main", "USD", decimal.NewFromInt(0))

	const workers = 20
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			desc := fmt.Sprintf("tx-%d", i)
			tx := domain.NewTransaction(wallet.ID, time.Now().UTC(), decimal.NewFromInt(1), domain.TransactionTypeIncome, &desc)
			if err := s.TransactionRepository().CreateTransaction(ctx, nil, tx); err != nil {
				t.Errorf("append %d failed: %v", i, err)
			}
		}(i)
	}
	wg.Wait()

	txs, err := s.TransactionRepository().GetTransactionsByWalletID(ctx, nil, wallet.ID)
	if err != nil {
		t.Fatalf("list transactions: %v", err)
	}
	if len(txs) != workers {
		t.Fatalf("expected %d transactions, got %d", workers, len(txs))
	}
}
