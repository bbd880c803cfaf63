package exchange

import (
	"context"
	"strings"

	"fintrack/internal/shared/validate"
)

// Service normalizes caller input before dispatching to the upstream
// client. Currency codes are upper-cased regardless of caller casing so
// that "usd" and "USD" produce identical upstream requests.
type Service struct {
	client Client
}

// NewService creates a new exchange rate service.
func NewService(client Client) *Service {
	return &Service{client: client}
}

// LatestRates fetches all rates relative to the base currency,
// defaulting to USD.
func (s *Service) LatestRates(ctx context.Context, base string) (*Snapshot, error) {
	base = normalizeCode(base)
	if base == "" {
		base = DefaultBase
	}
	return s.client.LatestRates(ctx, base)
}

// Convert performs a single pairwise conversion.
func (s *Service) Convert(ctx context.Context, from, to string, amount float64) (*Conversion, error) {
	from, to = normalizeCode(from), normalizeCode(to)
	if from == "" {
		return nil, &validate.Error{Field: "from", Reason: "field is required"}
	}
	if to == "" {
		return nil, &validate.Error{Field: "to", Reason: "field is required"}
	}
	if amount <= 0 {
		return nil, &validate.Error{Field: "amount", Reason: "must be a positive number"}
	}
	return s.client.Convert(ctx, from, to, amount)
}

// PairRate fetches the conversion rate between two currencies.
func (s *Service) PairRate(ctx context.Context, from, to string) (*PairRate, error) {
	from, to = normalizeCode(from), normalizeCode(to)
	if from == "" {
		return nil, &validate.Error{Field: "from", Reason: "field is required"}
	}
	if to == "" {
		return nil, &validate.Error{Field: "to", Reason: "field is required"}
	}
	return s.client.PairRate(ctx, from, to)
}

// SupportedCodes returns the provider's full currency catalogue.
func (s *Service) SupportedCodes(ctx context.Context) ([]SupportedCode, error) {
	return s.client.SupportedCodes(ctx)
}

func normalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
