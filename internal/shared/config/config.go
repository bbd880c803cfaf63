package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Server       ServerConfig
	Database     DatabaseConfig
	JWT          JWTConfig
	ExchangeRate ProviderConfig
	AlphaVantage ProviderConfig
	Stocks       StocksConfig
	Telemetry    TelemetryConfig
}

type ServerConfig struct {
	Port string
	Host string
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
}

type JWTConfig struct {
	Secret string
}

// ProviderConfig selects the upstream endpoint for a third-party data
// feed. It is injected into provider clients at construction time so
// tests can point them at fixed endpoints.
type ProviderConfig struct {
	BaseURL string
	APIKey  string
}

type StocksConfig struct {
	// BatchDelay is the pacing delay between successive upstream calls
	// in a multi-quote batch.
	BatchDelay time.Duration
}

type TelemetryConfig struct {
	Enabled      bool
	ServiceName  string
	OTLPEndpoint string
	MetricsPort  string
}

func Load() (*Config, error) {
	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	batchDelay, err := time.ParseDuration(getEnv("STOCK_BATCH_DELAY", "500ms"))
	if err != nil {
		return nil, fmt.Errorf("invalid STOCK_BATCH_DELAY: %w", err)
	}

	cfg := &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "8080"),
			Host: getEnv("HOST", "0.0.0.0"),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     dbPort,
			User:     getEnv("DB_USER", "fintrack"),
			Password: getEnv("DB_PASSWORD", ""),
			DBName:   getEnv("DB_NAME", "fintrack"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		JWT: JWTConfig{
			Secret: getEnv("JWT_SECRET", ""),
		},
		ExchangeRate: ProviderConfig{
			BaseURL: getEnv("EXCHANGE_RATE_API_URL", "https://v6.exchangerate-api.com/v6"),
			APIKey:  getEnv("EXCHANGE_RATE_API_KEY", ""),
		},
		AlphaVantage: ProviderConfig{
			BaseURL: getEnv("ALPHA_VANTAGE_API_URL", "https://www.alphavantage.co/query"),
			APIKey:  getEnv("ALPHA_VANTAGE_API_KEY", ""),
		},
		Stocks: StocksConfig{
			BatchDelay: batchDelay,
		},
		Telemetry: TelemetryConfig{
			Enabled:      getBoolEnv("OTEL_ENABLED", false),
			ServiceName:  getEnv("OTEL_SERVICE_NAME", "fintrack-api"),
			OTLPEndpoint: getEnv("OTEL_EXPORTER_ENDPOINT", "localhost:4317"),
			MetricsPort:  getEnv("METRICS_PORT", "9090"),
		},
	}

	// Validate required fields
	if cfg.JWT.Secret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}
	if cfg.ExchangeRate.APIKey == "" {
		return nil, fmt.Errorf("EXCHANGE_RATE_API_KEY is required")
	}
	if cfg.AlphaVantage.APIKey == "" {
		return nil, fmt.Errorf("ALPHA_VANTAGE_API_KEY is required")
	}

	return cfg, nil
}

func (c *DatabaseConfig) ConnectionString() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode,
	)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	switch strings.ToLower(value) {
	case "true", "1", "yes":
		return true
	case "false", "0", "no":
		return false
	default:
		return defaultValue
	}
}
