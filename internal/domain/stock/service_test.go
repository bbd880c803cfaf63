package stock

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"fintrack/internal/shared/validate"
)

type mockClient struct {
	GlobalQuoteFunc   func(ctx context.Context, symbol string) (*Quote, error)
	SearchSymbolsFunc func(ctx context.Context, keywords string) ([]SearchResult, error)
}

func (m *mockClient) GlobalQuote(ctx context.Context, symbol string) (*Quote, error) {
	return m.GlobalQuoteFunc(ctx, symbol)
}

func (m *mockClient) SearchSymbols(ctx context.Context, keywords string) ([]SearchResult, error) {
	return m.SearchSymbolsFunc(ctx, keywords)
}

func TestQuoteNormalizesSymbol(t *testing.T) {
	var gotSymbol string
	client := &mockClient{
		GlobalQuoteFunc: func(ctx context.Context, symbol string) (*Quote, error) {
			gotSymbol = symbol
			return &Quote{Symbol: symbol, Price: 150.25}, nil
		},
	}
	service := NewService(client, 0)

	quote, err := service.Quote(context.Background(), " aapl ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotSymbol != "AAPL" {
		t.Errorf("expected normalized symbol AAPL, got %q", gotSymbol)
	}
	if quote.Price != 150.25 {
		t.Errorf("unexpected price %v", quote.Price)
	}

	var vErr *validate.Error
	if _, err := service.Quote(context.Background(), "   "); !errors.As(err, &vErr) {
		t.Fatalf("expected validate.Error for blank symbol, got %v", err)
	}
}

func TestQuoteErrorsPassThrough(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		wantErr error
	}{
		{name: "invalid symbol", err: ErrInvalidSymbol, wantErr: ErrInvalidSymbol},
		{name: "rate limited", err: ErrRateLimited, wantErr: ErrRateLimited},
		{name: "no data", err: ErrNoData, wantErr: ErrNoData},
		{name: "unavailable", err: fmt.Errorf("%w: connection refused", ErrUnavailable), wantErr: ErrUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := &mockClient{
				GlobalQuoteFunc: func(ctx context.Context, symbol string) (*Quote, error) {
					return nil, tt.err
				},
			}
			service := NewService(client, 0)

			_, err := service.Quote(context.Background(), "AAPL")
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestSearchTruncatesResults(t *testing.T) {
	results := make([]SearchResult, 15)
	for i := range results {
		results[i] = SearchResult{Symbol: fmt.Sprintf("SYM%d", i)}
	}
	client := &mockClient{
		SearchSymbolsFunc: func(ctx context.Context, keywords string) ([]SearchResult, error) {
			return results, nil
		},
	}
	service := NewService(client, 0)

	got, err := service.Search(context.Background(), "sym")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != MaxSearchResults {
		t.Fatalf("expected %d results, got %d", MaxSearchResults, len(got))
	}
	// Upstream order is preserved, never re-sorted
	for i, r := range got {
		if r.Symbol != fmt.Sprintf("SYM%d", i) {
			t.Errorf("expected SYM%d at position %d, got %s", i, i, r.Symbol)
		}
	}
}

func TestSearchEmptyIsNotAnError(t *testing.T) {
	client := &mockClient{
		SearchSymbolsFunc: func(ctx context.Context, keywords string) ([]SearchResult, error) {
			return []SearchResult{}, nil
		},
	}
	service := NewService(client, 0)

	got, err := service.Search(context.Background(), "zzzz")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("expected empty results, got %d", len(got))
	}

	var vErr *validate.Error
	if _, err := service.Search(context.Background(), "  "); !errors.As(err, &vErr) {
		t.Fatalf("expected validate.Error for blank keywords, got %v", err)
	}
}

func TestMultipleQuotesBatchLimits(t *testing.T) {
	client := &mockClient{
		GlobalQuoteFunc: func(ctx context.Context, symbol string) (*Quote, error) {
			return &Quote{Symbol: symbol}, nil
		},
	}
	service := NewService(client, 0)

	var vErr *validate.Error
	if _, err := service.MultipleQuotes(context.Background(), nil); !errors.As(err, &vErr) {
		t.Fatalf("expected validate.Error for empty batch, got %v", err)
	}

	tooMany := make([]string, MaxBatchSize+1)
	for i := range tooMany {
		tooMany[i] = fmt.Sprintf("S%d", i)
	}
	if _, err := service.MultipleQuotes(context.Background(), tooMany); !errors.As(err, &vErr) {
		t.Fatalf("expected validate.Error for oversized batch, got %v", err)
	}

	quotes, err := service.MultipleQuotes(context.Background(), []string{"aapl", "MSFT"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(quotes) != 2 || quotes[0].Symbol != "AAPL" || quotes[1].Symbol != "MSFT" {
		t.Fatalf("unexpected quotes %+v", quotes)
	}
}

func TestMultipleQuotesOmitsFailedSymbols(t *testing.T) {
	client := &mockClient{
		GlobalQuoteFunc: func(ctx context.Context, symbol string) (*Quote, error) {
			if symbol == "BAD" {
				return nil, ErrInvalidSymbol
			}
			return &Quote{Symbol: symbol}, nil
		},
	}
	service := NewService(client, 0)

	quotes, err := service.MultipleQuotes(context.Background(), []string{"AAPL", "BAD", "MSFT"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(quotes) != 2 {
		t.Fatalf("expected 2 quotes, got %d", len(quotes))
	}
	// Input order is preserved, skipping the omission
	if quotes[0].Symbol != "AAPL" || quotes[1].Symbol != "MSFT" {
		t.Errorf("unexpected order: %s, %s", quotes[0].Symbol, quotes[1].Symbol)
	}
}

func TestMultipleQuotesAllFailed(t *testing.T) {
	client := &mockClient{
		GlobalQuoteFunc: func(ctx context.Context, symbol string) (*Quote, error) {
			return nil, ErrNoData
		},
	}
	service := NewService(client, 0)

	quotes, err := service.MultipleQuotes(context.Background(), []string{"A", "B"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(quotes) != 0 {
		t.Fatalf("expected empty result, got %d quotes", len(quotes))
	}
}

func TestMultipleQuotesCancelledContext(t *testing.T) {
	calls := 0
	client := &mockClient{
		GlobalQuoteFunc: func(ctx context.Context, symbol string) (*Quote, error) {
			calls++
			return &Quote{Symbol: symbol}, nil
		},
	}
	// A long pace guarantees the second iteration observes the cancelled
	// context before the pacing timer fires.
	service := NewService(client, time.Minute)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := service.MultipleQuotes(ctx, []string{"A", "B"})
	if !errors.Is(err, ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
	if calls != 1 {
		t.Errorf("expected 1 upstream call before cancellation, got %d", calls)
	}
}
