// internal/service/ledger_service.go
package service

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strings"
	"time"

	"walletledger/internal/currency"
	"walletledger/internal/domain"
	"walletledger/internal/repository"
	"walletledger/internal/util"
	"walletledger/pkg/db"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// currencyCodePattern matches exactly three ASCII letters after upper-casing.
var currencyCodePattern = regexp.MustCompile(`^[A-Z]{3}$`)

// LedgerService defines the interface for ledger business logic: wallet
// creation, transaction posting and the reporting queries.
//
// Monetary amounts are rounded to 2 decimal places at every boundary using
// shopspring's Round, which rounds half away from zero.
type LedgerService interface {
	CreateWallet(ctx context.Context, name, currencyCode string, initialBalance decimal.Decimal) (*domain.Wallet, error)
	PostTransaction(ctx context.Context, walletID uuid.UUID, occurredAt time.Time, amount decimal.Decimal, txType domain.TransactionType, description *string) (*domain.Transaction, error)
	GetCurrentBalance(ctx context.Context, walletID uuid.UUID) (decimal.Decimal, error)
	GetMonthlyReport(ctx context.Context, year int, month time.Month) (*domain.MonthlyReport, error)
	GetTopExpensesPerWallet(ctx context.Context, year int, month time.Month, topN int) (map[uuid.UUID][]domain.Transaction, error)
}

// ledgerService implements the LedgerService interface.
type ledgerService struct {
	dbBeginner      db.DBTxBeginner       // For starting transactions (e.g., *sqlx.DB)
	dbExecutor      repository.DBExecutor // For non-transactional reads (e.g., *sqlx.DB)
	walletRepo      repository.WalletRepository
	transactionRepo repository.TransactionRepository
	beginTx         db.BeginTxFunc
	commitTx        db.CommitTxFunc
	rollbackTx      db.RollbackTxFunc
}

// NewLedgerService creates a new instance of LedgerService.
func NewLedgerService(
	dbBeginner db.DBTxBeginner,
	dbExecutor repository.DBExecutor,
	walletRepo repository.WalletRepository,
	transactionRepo repository.TransactionRepository,
	beginTx db.BeginTxFunc,
	commitTx db.CommitTxFunc,
	rollbackTx db.RollbackTxFunc,
) LedgerService {
	return &ledgerService{
		dbBeginner:      dbBeginner,
		dbExecutor:      dbExecutor,
		walletRepo:      walletRepo,
		transactionRepo: transactionRepo,
		beginTx:         beginTx,
		commitTx:        commitTx,
		rollbackTx:      rollbackTx,
	}
}

// CreateWallet validates and persists a new wallet. The name is trimmed,
// the currency code upper-cased and checked against the allow-list, and the
// initial balance rounded to 2 decimal places.
func (s *ledgerService) CreateWallet(ctx context.Context, name, currencyCode string, initialBalance decimal.Decimal) (*domain.Wallet, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, &util.ValidationError{Field: "name", Reason: "must not be empty"}
	}

	code := strings.ToUpper(strings.TrimSpace(currencyCode))
	if !currencyCodePattern.MatchString(code) {
		return nil, &util.ValidationError{Field: "currency", Reason: "must be exactly 3 letters"}
	}
	if !currency.IsValid(code) {
		return nil, &util.ValidationError{Field: "currency", Reason: fmt.Sprintf("unsupported currency code %q", code)}
	}

	if initialBalance.IsNegative() {
		return nil, fmt.Errorf("initial balance must not be negative: %w", util.ErrInvalidAmount)
	}

	wallet := domain.NewWallet(name, code, initialBalance.Round(2))
	if err := s.walletRepo.CreateWallet(ctx, s.dbExecutor, wallet); err != nil {
		return nil, &util.DataAccessError{Op: "create wallet", Err: err}
	}
	return wallet, nil
}

// PostTransaction validates and appends a new transaction. The balance check
// and the insert run inside one storage transaction so two concurrent
// expense postings cannot jointly overdraw a wallet.
func (s *ledgerService) PostTransaction(ctx context.Context, walletID uuid.UUID, occurredAt time.Time, amount decimal.Decimal, txType domain.TransactionType, description *string) (*domain.Transaction, error) {
	// Round before the positivity check so a sub-cent amount cannot pass
	// validation and land in the log as 0.00.
	amount = amount.Round(2)
	if amount.Sign() <= 0 {
		return nil, fmt.Errorf("transaction amount must be positive: %w", util.ErrInvalidAmount)
	}
	if txType != domain.TransactionTypeIncome && txType != domain.TransactionTypeExpense {
		return nil, &util.ValidationError{Field: "type", Reason: fmt.Sprintf("unknown transaction type %q", txType)}
	}
	if description != nil && len(*description) > domain.MaxDescriptionLen {
		return nil, &util.ValidationError{Field: "description", Reason: fmt.Sprintf("must not exceed %d characters", domain.MaxDescriptionLen)}
	}

	txController, err := s.beginTx(ctx, s.dbBeginner)
	if err != nil {
		return nil, &util.DataAccessError{Op: "post transaction: begin", Err: err}
	}
	defer s.rollbackTx(txController)

	txExecutor, ok := txController.(repository.DBExecutor)
	if !ok {
		return nil, fmt.Errorf("post transaction: transaction controller does not implement DBExecutor")
	}

	wallet, err := s.walletRepo.GetWalletByID(ctx, txExecutor, walletID)
	if err != nil {
		if errors.Is(err, util.ErrNotFound) {
			return nil, &util.WalletNotFoundError{WalletID: walletID}
		}
		return nil, &util.DataAccessError{Op: "post transaction: get wallet", Err: err}
	}

	if txType == domain.TransactionTypeExpense {
		balance, err := s.computeBalance(ctx, txExecutor, wallet)
		if err != nil {
			return nil, err
		}
		if amount.GreaterThan(balance) {
			return nil, &util.InsufficientFundsError{WalletID: walletID, Attempted: amount, Available: balance}
		}
	}

	transaction := domain.NewTransaction(walletID, occurredAt, amount, txType, description)
	if err := s.transactionRepo.CreateTransaction(ctx, txExecutor, transaction); err != nil {
		return nil, &util.DataAccessError{Op: "post transaction: insert", Err: err}
	}

	if err := s.commitTx(txController); err != nil {
		return nil, &util.DataAccessError{Op: "post transaction: commit", Err: err}
	}
	return transaction, nil
}

// GetCurrentBalance computes the wallet's balance from its transaction log.
func (s *ledgerService) GetCurrentBalance(ctx context.Context, walletID uuid.UUID) (decimal.Decimal, error) {
	wallet, err := s.walletRepo.GetWalletByID(ctx, s.dbExecutor, walletID)
	if err != nil {
		if errors.Is(err, util.ErrNotFound) {
			return decimal.Zero, &util.WalletNotFoundError{WalletID: walletID}
		}
		return decimal.Zero, &util.DataAccessError{Op: "get balance: get wallet", Err: err}
	}
	return s.computeBalance(ctx, s.dbExecutor, wallet)
}

// computeBalance sums the wallet's transactions by type and returns
// initial balance + income sum - expense sum, rounded to 2 decimal places.
// Amounts are stored as positive magnitudes, so each partition is summed
// independently rather than keeping one signed running total.
func (s *ledgerService) computeBalance(ctx context.Context, q repository.DBExecutor, wallet *domain.Wallet) (decimal.Decimal, error) {
	transactions, err := s.transactionRepo.GetTransactionsByWalletID(ctx, q, wallet.ID)
	if err != nil {
		return decimal.Zero, &util.DataAccessError{Op: "compute balance: list transactions", Err: err}
	}

	income, expense := decimal.Zero, decimal.Zero
	for _, tx := range transactions {
		switch tx.Type {
		case domain.TransactionTypeIncome:
			income = income.Add(tx.Amount)
		case domain.TransactionTypeExpense:
			expense = expense.Add(tx.Amount)
		}
	}
	return wallet.InitialBalance.Add(income).Sub(expense).Round(2), nil
}

// GetMonthlyReport groups one calendar month's transactions by type. The
// window is the half-open UTC range [start of month, start of next month).
func (s *ledgerService) GetMonthlyReport(ctx context.Context, year int, month time.Month) (*domain.MonthlyReport, error) {
	start, end := domain.MonthWindow(year, month)
	transactions, err := s.transactionRepo.GetTransactionsInWindow(ctx, s.dbExecutor, start, end)
	if err != nil {
		return nil, &util.DataAccessError{Op: "monthly report: list transactions", Err: err}
	}

	groups := []domain.TransactionGroup{}
	for _, txType := range domain.TransactionTypes {
		total := decimal.Zero
		var bucket []domain.Transaction
		for _, tx := range transactions {
			if tx.Type != txType {
				continue
			}
			bucket = append(bucket, tx)
			total = total.Add(tx.Amount)
		}
		if len(bucket) == 0 {
			continue
		}
		sort.SliceStable(bucket, func(i, j int) bool {
			return bucket[i].OccurredAt.Before(bucket[j].OccurredAt)
		})
		groups = append(groups, domain.TransactionGroup{
			Type:         txType,
			Total:        total.Round(2),
			Transactions: bucket,
		})
	}

	// Largest total first; the stable sort keeps type enumeration order on ties.
	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].Total.GreaterThan(groups[j].Total)
	})

	return &domain.MonthlyReport{Year: year, Month: month, Groups: groups}, nil
}

// GetTopExpensesPerWallet returns, per wallet, the topN largest expense
// transactions of the given calendar month, sorted by descending amount.
// Ties keep fetch order. Wallets without expenses in the window are absent
// from the result; topN <= 0 leaves appearing wallets with empty lists.
func (s *ledgerService) GetTopExpensesPerWallet(ctx context.Context, year int, month time.Month, topN int) (map[uuid.UUID][]domain.Transaction, error) {
	start, end := domain.MonthWindow(year, month)
	transactions, err := s.transactionRepo.GetTransactionsInWindow(ctx, s.dbExecutor, start, end)
	if err != nil {
		return nil, &util.DataAccessError{Op: "top expenses: list transactions", Err: err}
	}

	byWallet := make(map[uuid.UUID][]domain.Transaction)
	for _, tx := range transactions {
		if tx.Type != domain.TransactionTypeExpense {
			continue
		}
		byWallet[tx.WalletID] = append(byWallet[tx.WalletID], tx)
	}

	if topN < 0 {
		topN = 0
	}
	for walletID, expenses := range byWallet {
		sort.SliceStable(expenses, func(i, j int) bool {
			return expenses[i].Amount.GreaterThan(expenses[j].Amount)
		})
		if len(expenses) > topN {
			expenses = expenses[:topN]
		}
		byWallet[walletID] = expenses
	}
	return byWallet, nil
}
