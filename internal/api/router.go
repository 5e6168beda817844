// internal/api/router.go
package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"walletledger/internal/api/handler"
)

// NewRouter sets up and returns a new HTTP router.
func NewRouter(ledgerHandler *handler.LedgerHandler, logger *slog.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(handler.DefaultTimeout))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	r.Route("/wallets", func(r chi.Router) {
		r.Post("/", ledgerHandler.CreateWallet)
		r.Post("/{walletID}/transactions", ledgerHandler.PostTransaction)
		r.Get("/{walletID}/balance", ledgerHandler.GetBalance)
	})

	r.Route("/reports", func(r chi.Router) {
		r.Get("/monthly", ledgerHandler.GetMonthlyReport)
		r.Get("/top-expenses", ledgerHandler.GetTopExpenses)
	})

	return r
}
