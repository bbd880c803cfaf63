package stock

import "errors"

// Limits imposed on quote operations.
const (
	MaxBatchSize     = 10
	MaxSearchResults = 10
)

// Domain errors. The upstream provider signals these through payload
// fields rather than HTTP status codes.
var (
	ErrInvalidSymbol = errors.New("invalid stock symbol")
	ErrRateLimited   = errors.New("api call frequency limit reached")
	ErrNoData        = errors.New("stock data not available")
	ErrUnavailable   = errors.New("stock quote provider unavailable")
)

// Quote is a point-in-time stock quote. It is never persisted.
type Quote struct {
	Symbol           string  `json:"symbol"`
	Price            float64 `json:"price"`
	Change           float64 `json:"change"`
	ChangePercent    string  `json:"changePercent"`
	Volume           int64   `json:"volume"`
	LatestTradingDay string  `json:"latestTradingDay"`
	PreviousClose    float64 `json:"previousClose"`
	Open             float64 `json:"open"`
	High             float64 `json:"high"`
	Low              float64 `json:"low"`
}

// SearchResult is one symbol match from the provider's search endpoint.
type SearchResult struct {
	Symbol   string `json:"symbol"`
	Name     string `json:"name"`
	Type     string `json:"type"`
	Region   string `json:"region"`
	Currency string `json:"currency"`
}
