package alphavantage

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"fintrack/internal/domain/stock"
)

const defaultTimeout = 30 * time.Second

// Client handles communication with the Alpha Vantage API. All operations
// go through a single query endpoint selected by the function parameter.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
}

// Ensure Client implements the domain client interface
var _ stock.Client = (*Client)(nil)

// NewClient creates a new Alpha Vantage client.
func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
		baseURL: baseURL,
		apiKey:  apiKey,
	}
}

// globalQuoteResponse represents the GLOBAL_QUOTE response. The provider
// signals errors through payload fields: "Error Message" for an invalid
// symbol and "Note" for rate limiting. Numeric values arrive as strings.
type globalQuoteResponse struct {
	GlobalQuote  rawQuote `json:"Global Quote"`
	Note         string   `json:"Note"`
	ErrorMessage string   `json:"Error Message"`
}

type rawQuote struct {
	Symbol           string `json:"01. symbol"`
	Open             string `json:"02. open"`
	High             string `json:"03. high"`
	Low              string `json:"04. low"`
	Price            string `json:"05. price"`
	Volume           string `json:"06. volume"`
	LatestTradingDay string `json:"07. latest trading day"`
	PreviousClose    string `json:"08. previous close"`
	Change           string `json:"09. change"`
	ChangePercent    string `json:"10. change percent"`
}

// searchResponse represents the SYMBOL_SEARCH response.
type searchResponse struct {
	BestMatches []rawMatch `json:"bestMatches"`
	Note        string     `json:"Note"`
}

type rawMatch struct {
	Symbol   string `json:"1. symbol"`
	Name     string `json:"2. name"`
	Type     string `json:"3. type"`
	Region   string `json:"4. region"`
	Currency string `json:"8. currency"`
}

// GlobalQuote fetches a real-time quote for a single symbol.
func (c *Client) GlobalQuote(ctx context.Context, symbol string) (*stock.Quote, error) {
	var resp globalQuoteResponse
	if err := c.get(ctx, "GLOBAL_QUOTE", url.Values{"symbol": {symbol}}, &resp); err != nil {
		return nil, err
	}

	if resp.ErrorMessage != "" {
		return nil, stock.ErrInvalidSymbol
	}
	if resp.Note != "" {
		return nil, stock.ErrRateLimited
	}
	if resp.GlobalQuote.Symbol == "" {
		return nil, stock.ErrNoData
	}

	return normalizeQuote(resp.GlobalQuote)
}

// SearchSymbols looks up symbols matching the keywords. No matches is an
// empty result, not an error.
func (c *Client) SearchSymbols(ctx context.Context, keywords string) ([]stock.SearchResult, error) {
	var resp searchResponse
	if err := c.get(ctx, "SYMBOL_SEARCH", url.Values{"keywords": {keywords}}, &resp); err != nil {
		return nil, err
	}

	if resp.Note != "" {
		return nil, stock.ErrRateLimited
	}

	results := make([]stock.SearchResult, 0, len(resp.BestMatches))
	for _, m := range resp.BestMatches {
		results = append(results, stock.SearchResult{
			Symbol:   m.Symbol,
			Name:     m.Name,
			Type:     m.Type,
			Region:   m.Region,
			Currency: m.Currency,
		})
	}
	return results, nil
}

// normalizeQuote maps the provider's string-typed fields to the internal
// quote shape. Any parse failure surfaces as ErrNoData.
func normalizeQuote(raw rawQuote) (*stock.Quote, error) {
	price, err := strconv.ParseFloat(raw.Price, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: bad price %q", stock.ErrNoData, raw.Price)
	}
	change, err := strconv.ParseFloat(raw.Change, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: bad change %q", stock.ErrNoData, raw.Change)
	}
	volume, err := strconv.ParseInt(raw.Volume, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: bad volume %q", stock.ErrNoData, raw.Volume)
	}
	previousClose, err := strconv.ParseFloat(raw.PreviousClose, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: bad previous close %q", stock.ErrNoData, raw.PreviousClose)
	}
	open, err := strconv.ParseFloat(raw.Open, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: bad open %q", stock.ErrNoData, raw.Open)
	}
	high, err := strconv.ParseFloat(raw.High, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: bad high %q", stock.ErrNoData, raw.High)
	}
	low, err := strconv.ParseFloat(raw.Low, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: bad low %q", stock.ErrNoData, raw.Low)
	}

	return &stock.Quote{
		Symbol:           raw.Symbol,
		Price:            price,
		Change:           change,
		ChangePercent:    strings.TrimSpace(raw.ChangePercent),
		Volume:           volume,
		LatestTradingDay: raw.LatestTradingDay,
		PreviousClose:    previousClose,
		Open:             open,
		High:             high,
		Low:              low,
	}, nil
}

// get performs a single upstream call for the given API function.
// Transport failures and non-2xx statuses map to stock.ErrUnavailable.
func (c *Client) get(ctx context.Context, function string, params url.Values, out any) error {
	params.Set("function", function)
	params.Set("apikey", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", stock.ErrUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: failed to read response body: %v", stock.ErrUnavailable, err)
	}

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: status %d", stock.ErrUnavailable, resp.StatusCode)
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("%w: failed to unmarshal response: %v", stock.ErrUnavailable, err)
	}

	return nil
}
