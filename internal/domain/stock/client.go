package stock

import "context"

// Client defines the upstream stock-quote API operations. Implementations
// receive already-normalized upper-case symbols and perform exactly one
// upstream call per operation.
type Client interface {
	GlobalQuote(ctx context.Context, symbol string) (*Quote, error)
	SearchSymbols(ctx context.Context, keywords string) ([]SearchResult, error)
}
