// internal/repository/memory/memory.go
package memory

import (
	"context"
	"sync"
	"time"

	"walletledger/internal/domain"
	"walletledger/internal/repository"
	"walletledger/internal/util"

	"github.com/google/uuid"
)

// Store is a concurrency-safe in-memory implementation of the wallet and
// transaction repositories, useful for unit tests and local runs. The
// DBExecutor argument of the repository interfaces is ignored. mu guards
// individual repository calls; txMu is the store-level transaction lock
// handed out by TxFuncs, held across a whole read-then-append sequence.
type Store struct {
	mu           sync.RWMutex
	txMu         sync.Mutex
	wallets      map[uuid.UUID]domain.Wallet
	transactions []domain.Transaction // append-only, insertion order
}

// NewStore creates an empty in-memory store.
func NewStore() *Store {
	return &Store{
		wallets: make(map[uuid.UUID]domain.Wallet),
	}
}

// WalletRepository returns the store as a repository.WalletRepository.
func (s *Store) WalletRepository() repository.WalletRepository {
	return (*walletRepo)(s)
}

// TransactionRepository returns the store as a repository.TransactionRepository.
func (s *Store) TransactionRepository() repository.TransactionRepository {
	return (*transactionRepo)(s)
}

type walletRepo Store

func (r *walletRepo) CreateWallet(_ context.Context, _ repository.DBExecutor, wallet *domain.Wallet) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.wallets[wallet.ID] = *wallet
	return nil
}

func (r *walletRepo) GetWalletByID(_ context.Context, _ repository.DBExecutor, id uuid.UUID) (*domain.Wallet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	wallet, ok := r.wallets[id]
	if !ok {
		return nil, util.ErrNotFound
	}
	return &wallet, nil
}

type transactionRepo Store

func (r *transactionRepo) CreateTransaction(_ context.Context, _ repository.DBExecutor, transaction *domain.Transaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.transactions = append(r.transactions, *transaction)
	return nil
}

func (r *transactionRepo) GetTransactionsByWalletID(_ context.Context, _ repository.DBExecutor, walletID uuid.UUID) ([]domain.Transaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	result := []domain.Transaction{}
	for _, tx := range r.transactions {
		if tx.WalletID == walletID {
			result = append(result, tx)
		}
	}
	return result, nil
}

func (r *transactionRepo) GetTransactionsInWindow(_ context.Context, _ repository.DBExecutor, start, end time.Time) ([]domain.Transaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	result := []domain.Transaction{}
	for _, tx := range r.transactions {
		if !tx.OccurredAt.Before(start) && tx.OccurredAt.Before(end) {
			result = append(result, tx)
		}
	}
	return result, nil
}
