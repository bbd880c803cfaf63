package main

import (
	"net/http"

	httphandlers "fintrack/internal/interfaces/http"
	"fintrack/internal/shared/config"
	"fintrack/internal/shared/middleware"
)

// SetupRoutes configures all HTTP routes and returns the final handler with middleware.
func SetupRoutes(deps *Dependencies, cfg *config.Config) http.Handler {
	mux := http.NewServeMux()

	// Health check
	mux.HandleFunc("/health", httphandlers.HandleHealth)

	// Public auth routes
	mux.HandleFunc("/api/auth/register", deps.AuthHandler.HandleRegister)
	mux.HandleFunc("/api/auth/login", deps.AuthHandler.HandleLogin)

	// Protected routes
	authMiddleware := middleware.Auth(deps.JWT)
	protect := func(h http.HandlerFunc) http.Handler {
		return authMiddleware(h)
	}

	mux.Handle("/api/categories", protect(deps.CategoryHandler.HandleCategories))
	mux.Handle("/api/categories/{id}", protect(deps.CategoryHandler.HandleCategoryByID))

	mux.Handle("/api/transactions", protect(deps.TransactionHandler.HandleTransactions))
	mux.Handle("/api/transactions/{id}", protect(deps.TransactionHandler.HandleTransactionByID))

	mux.Handle("/api/exchange-rates/latest", protect(deps.ExchangeRateHandler.HandleLatest))
	mux.Handle("/api/exchange-rates/convert", protect(deps.ExchangeRateHandler.HandleConvert))
	mux.Handle("/api/exchange-rates/pair", protect(deps.ExchangeRateHandler.HandlePair))
	mux.Handle("/api/exchange-rates/codes", protect(deps.ExchangeRateHandler.HandleCodes))

	mux.Handle("/api/stocks/quote", protect(deps.StockHandler.HandleQuote))
	mux.Handle("/api/stocks/search", protect(deps.StockHandler.HandleSearch))
	mux.Handle("/api/stocks/quotes", protect(deps.StockHandler.HandleQuotes))

	// Apply global middleware
	handler := middleware.Logging(middleware.CORS(mux))
	if cfg.Telemetry.Enabled {
		handler = middleware.Telemetry(handler)
	}

	return handler
}
