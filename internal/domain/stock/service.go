package stock

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"

	"fintrack/internal/shared/validate"
)

var (
	stockMeter      = otel.Meter("fintrack/stock")
	batchOmitted, _ = stockMeter.Int64Counter("stock.batch.symbols_omitted",
		metric.WithDescription("Symbols omitted from batch quote results due to upstream failures"))
)

// Service normalizes caller input and enforces the batch pacing policy.
// Symbols are trimmed and upper-cased before dispatch.
type Service struct {
	client Client
	pace   time.Duration
}

// NewService creates a new stock quote service. pace is the delay inserted
// between successive upstream calls in a batch; tests inject zero.
func NewService(client Client, pace time.Duration) *Service {
	return &Service{client: client, pace: pace}
}

// Quote fetches a real-time quote for a single symbol.
func (s *Service) Quote(ctx context.Context, symbol string) (*Quote, error) {
	symbol = normalizeSymbol(symbol)
	if symbol == "" {
		return nil, &validate.Error{Field: "symbol", Reason: "field is required"}
	}
	return s.client.GlobalQuote(ctx, symbol)
}

// Search looks up symbols matching the keywords. At most MaxSearchResults
// matches are returned in upstream order; the list is truncated, never
// re-sorted. No matches is an empty result, not an error.
func (s *Service) Search(ctx context.Context, keywords string) ([]SearchResult, error) {
	keywords = strings.TrimSpace(keywords)
	if keywords == "" {
		return nil, &validate.Error{Field: "keywords", Reason: "field is required"}
	}

	results, err := s.client.SearchSymbols(ctx, keywords)
	if err != nil {
		return nil, err
	}
	if len(results) > MaxSearchResults {
		results = results[:MaxSearchResults]
	}
	return results, nil
}

// MultipleQuotes fetches quotes for up to MaxBatchSize symbols, one
// upstream call at a time with the configured pacing delay between calls.
// A symbol whose fetch fails is logged, counted, and omitted from the
// result; the batch itself never fails on a per-symbol error. Result
// order follows input order, skipping omissions.
func (s *Service) MultipleQuotes(ctx context.Context, symbols []string) ([]*Quote, error) {
	if len(symbols) == 0 {
		return nil, &validate.Error{Field: "symbols", Reason: "must not be empty"}
	}
	if len(symbols) > MaxBatchSize {
		return nil, &validate.Error{Field: "symbols", Reason: fmt.Sprintf("must contain at most %d items", MaxBatchSize)}
	}

	quotes := make([]*Quote, 0, len(symbols))
	for i, symbol := range symbols {
		if i > 0 && s.pace > 0 {
			select {
			case <-time.After(s.pace):
			case <-ctx.Done():
				return nil, fmt.Errorf("%w: %v", ErrUnavailable, ctx.Err())
			}
		}

		quote, err := s.Quote(ctx, symbol)
		if err != nil {
			log.Printf("Failed to fetch quote for %s: %v", symbol, err)
			batchOmitted.Add(ctx, 1)
			continue
		}
		quotes = append(quotes, quote)
	}

	return quotes, nil
}

func normalizeSymbol(symbol string) string {
	return strings.ToUpper(strings.TrimSpace(symbol))
}
