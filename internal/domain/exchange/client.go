package exchange

import "context"

// Client defines the upstream exchange-rate API operations. Implementations
// receive already-normalized upper-case currency codes and perform exactly
// one upstream call per operation; there is no caching or retrying.
type Client interface {
	LatestRates(ctx context.Context, base string) (*Snapshot, error)
	Convert(ctx context.Context, from, to string, amount float64) (*Conversion, error)
	PairRate(ctx context.Context, from, to string) (*PairRate, error)
	SupportedCodes(ctx context.Context) ([]SupportedCode, error)
}
