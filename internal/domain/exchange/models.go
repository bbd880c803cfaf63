package exchange

import (
	"errors"
	"fmt"
	"time"
)

// DefaultBase is the base currency used when the caller does not supply one.
const DefaultBase = "USD"

// ErrUnavailable is returned when the upstream provider cannot be reached
// or answers with a non-2xx status.
var ErrUnavailable = errors.New("exchange rate provider unavailable")

// UpstreamError is returned when the provider responded but its payload
// reports an error. Code carries the upstream-supplied reason when present.
type UpstreamError struct {
	Code string
}

func (e *UpstreamError) Error() string {
	if e.Code == "" {
		return "unknown error from exchange rate provider"
	}
	return fmt.Sprintf("exchange rate provider rejected the request: %s", e.Code)
}

// Snapshot holds all rates relative to a base currency at a point in
// time. It is never persisted.
type Snapshot struct {
	BaseCode   string             `json:"baseCode"`
	Rates      map[string]float64 `json:"rates"`
	LastUpdate time.Time          `json:"lastUpdate"`
	NextUpdate time.Time          `json:"nextUpdate"`
}

// Conversion is the result of a pairwise currency conversion.
type Conversion struct {
	From       string    `json:"from"`
	To         string    `json:"to"`
	Amount     float64   `json:"amount"`
	Rate       float64   `json:"rate"`
	Result     float64   `json:"convertedAmount"`
	LastUpdate time.Time `json:"lastUpdate"`
}

// PairRate is a single conversion rate without an amount applied.
type PairRate struct {
	From       string    `json:"from"`
	To         string    `json:"to"`
	Rate       float64   `json:"rate"`
	LastUpdate time.Time `json:"lastUpdate"`
}

// SupportedCode is one entry of the provider's currency catalogue.
type SupportedCode struct {
	Code string `json:"code"`
	Name string `json:"name"`
}
