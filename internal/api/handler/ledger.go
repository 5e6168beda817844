// internal/api/handler/ledger.go
package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"walletledger/internal/api/types"
	"walletledger/internal/domain"
	"walletledger/internal/service"
	"walletledger/internal/util"
)

// DefaultTimeout bounds request handling end to end.
const DefaultTimeout = 30 * time.Second

// LedgerHandler handles HTTP requests for the ledger service.
type LedgerHandler struct {
	service service.LedgerService
	logger  *slog.Logger
}

// NewLedgerHandler creates a new LedgerHandler.
func NewLedgerHandler(svc service.LedgerService, logger *slog.Logger) *LedgerHandler {
	return &LedgerHandler{
		service: svc,
		logger:  logger,
	}
}

func (h *LedgerHandler) respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		h.logger.Error("Failed to marshal JSON response", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_, _ = w.Write(response)
}

func (h *LedgerHandler) respondWithError(w http.ResponseWriter, err error) {
	statusCode := http.StatusInternalServerError
	message := "Internal server error"

	switch {
	case util.IsError(err, util.ErrValidation), util.IsError(err, util.ErrInvalidAmount):
		statusCode = http.StatusBadRequest
		message = err.Error()
	case util.IsError(err, util.ErrWalletNotFound), util.IsError(err, util.ErrNotFound):
		statusCode = http.StatusNotFound
		message = "Resource not found"
	case util.IsError(err, util.ErrInsufficientFunds):
		statusCode = http.StatusPaymentRequired // 402 Payment Required
		message = err.Error()
	default:
		h.logger.Error("Unhandled service error", "error", err)
	}

	h.respondWithJSON(w, statusCode, types.ErrorResponse{Error: message})
}

// CreateWalletRequest represents the request body for wallet creation.
type CreateWalletRequest struct {
	Name           string          `json:"name"`
	Currency       string          `json:"currency"`
	InitialBalance decimal.Decimal `json:"initial_balance"`
}

// CreateWallet handles the wallet creation request.
// POST /wallets
func (h *LedgerHandler) CreateWallet(w http.ResponseWriter, r *http.Request) {
	var req CreateWalletRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondWithError(w, &util.ValidationError{Field: "body", Reason: "malformed JSON"})
		return
	}

	wallet, err := h.service.CreateWallet(r.Context(), req.Name, req.Currency, req.InitialBalance)
	if err != nil {
		h.respondWithError(w, err)
		return
	}

	h.respondWithJSON(w, http.StatusCreated, wallet)
}

// PostTransactionRequest represents the request body for posting a transaction.
type PostTransactionRequest struct {
	Amount      decimal.Decimal        `json:"amount"`
	Type        domain.TransactionType `json:"type"`
	OccurredAt  time.Time              `json:"occurred_at"`
	Description *string                `json:"description"`
}

// PostTransaction handles the transaction posting request.
// POST /wallets/{walletID}/transactions
func (h *LedgerHandler) PostTransaction(w http.ResponseWriter, r *http.Request) {
	walletID, err := uuid.Parse(chi.URLParam(r, "walletID"))
	if err != nil {
		h.respondWithError(w, &util.ValidationError{Field: "walletID", Reason: "must be a valid UUID"})
		return
	}

	var req PostTransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondWithError(w, &util.ValidationError{Field: "body", Reason: "malformed JSON"})
		return
	}
	if req.OccurredAt.IsZero() {
		req.OccurredAt = time.Now().UTC()
	}

	transaction, err := h.service.PostTransaction(r.Context(), walletID, req.OccurredAt, req.Amount, req.Type, req.Description)
	if err != nil {
		h.respondWithError(w, err)
		return
	}

	h.respondWithJSON(w, http.StatusCreated, transaction)
}

// GetBalance handles the balance request.
// GET /wallets/{walletID}/balance
func (h *LedgerHandler) GetBalance(w http.ResponseWriter, r *http.Request) {
	walletID, err := uuid.Parse(chi.URLParam(r, "walletID"))
	if err != nil {
		h.respondWithError(w, &util.ValidationError{Field: "walletID", Reason: "must be a valid UUID"})
		return
	}

	balance, err := h.service.GetCurrentBalance(r.Context(), walletID)
	if err != nil {
		h.respondWithError(w, err)
		return
	}

	h.respondWithJSON(w, http.StatusOK, types.BalanceResponse{WalletID: walletID, Balance: balance})
}

// GetMonthlyReport handles the monthly report request.
// GET /reports/monthly?year=2025&month=1
func (h *LedgerHandler) GetMonthlyReport(w http.ResponseWriter, r *http.Request) {
	year, month, ok := h.parseYearMonth(w, r)
	if !ok {
		return
	}

	report, err := h.service.GetMonthlyReport(r.Context(), year, month)
	if err != nil {
		h.respondWithError(w, err)
		return
	}

	h.respondWithJSON(w, http.StatusOK, report)
}

// GetTopExpenses handles the top-expenses-per-wallet request.
// GET /reports/top-expenses?year=2025&month=1&top=3
func (h *LedgerHandler) GetTopExpenses(w http.ResponseWriter, r *http.Request) {
	year, month, ok := h.parseYearMonth(w, r)
	if !ok {
		return
	}

	topN := 3
	if raw := r.URL.Query().Get("top"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			h.respondWithError(w, &util.ValidationError{Field: "top", Reason: "must be an integer"})
			return
		}
		topN = parsed
	}

	expenses, err := h.service.GetTopExpensesPerWallet(r.Context(), year, month, topN)
	if err != nil {
		h.respondWithError(w, err)
		return
	}

	h.respondWithJSON(w, http.StatusOK, expenses)
}

func (h *LedgerHandler) parseYearMonth(w http.ResponseWriter, r *http.Request) (int, time.Month, bool) {
	year, err := strconv.Atoi(r.URL.Query().Get("year"))
	if err != nil {
		h.respondWithError(w, &util.ValidationError{Field: "year", Reason: "must be an integer"})
		return 0, 0, false
	}
	month, err := strconv.Atoi(r.URL.Query().Get("month"))
	if err != nil || month < 1 || month > 12 {
		h.respondWithError(w, &util.ValidationError{Field: "month", Reason: "must be an integer between 1 and 12"})
		return 0, 0, false
	}
	return year, time.Month(month), true
}
