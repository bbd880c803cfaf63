package main

import (
	"log"

	"fintrack/internal/domain/category"
	"fintrack/internal/domain/exchange"
	"fintrack/internal/domain/stock"
	"fintrack/internal/domain/transaction"
	"fintrack/internal/infrastructure/alphavantage"
	"fintrack/internal/infrastructure/exchangerate"
	"fintrack/internal/infrastructure/postgres"
	httphandlers "fintrack/internal/interfaces/http"
	"fintrack/internal/shared/auth"
	"fintrack/internal/shared/config"
)

// Dependencies holds all initialized application components.
type Dependencies struct {
	DB *postgres.DB

	// Handlers
	AuthHandler         *httphandlers.AuthHandler
	CategoryHandler     *httphandlers.CategoryHandler
	TransactionHandler  *httphandlers.TransactionHandler
	ExchangeRateHandler *httphandlers.ExchangeRateHandler
	StockHandler        *httphandlers.StockHandler

	// Auth
	JWT *auth.JWT
}

// NewDependencies initializes all application dependencies.
func NewDependencies(cfg *config.Config) (*Dependencies, error) {
	// Connect to database
	db, err := postgres.New(cfg.Database.ConnectionString())
	if err != nil {
		return nil, err
	}
	log.Println("Connected to database")

	// Initialize repositories
	userRepo := postgres.NewUserRepository(db)
	categoryRepo := postgres.NewCategoryRepository(db)
	transactionRepo := postgres.NewTransactionRepository(db)

	// Initialize domain services
	categoryService := category.NewService(categoryRepo)
	transactionService := transaction.NewService(transactionRepo)

	// Initialize upstream provider clients
	exchangeClient := exchangerate.NewClient(cfg.ExchangeRate.BaseURL, cfg.ExchangeRate.APIKey)
	stockClient := alphavantage.NewClient(cfg.AlphaVantage.BaseURL, cfg.AlphaVantage.APIKey)

	exchangeService := exchange.NewService(exchangeClient)
	stockService := stock.NewService(stockClient, cfg.Stocks.BatchDelay)

	// Initialize auth components
	jwt := auth.NewJWT(cfg.JWT.Secret)

	// Initialize handlers
	authHandler := httphandlers.NewAuthHandler(userRepo, jwt)
	categoryHandler := httphandlers.NewCategoryHandler(categoryService)
	transactionHandler := httphandlers.NewTransactionHandler(transactionService)
	exchangeRateHandler := httphandlers.NewExchangeRateHandler(exchangeService)
	stockHandler := httphandlers.NewStockHandler(stockService)

	return &Dependencies{
		DB:                  db,
		AuthHandler:         authHandler,
		CategoryHandler:     categoryHandler,
		TransactionHandler:  transactionHandler,
		ExchangeRateHandler: exchangeRateHandler,
		StockHandler:        stockHandler,
		JWT:                 jwt,
	}, nil
}

// Close releases all resources held by dependencies.
func (d *Dependencies) Close() {
	if d.DB != nil {
		d.DB.Close()
	}
}
