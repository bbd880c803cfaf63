package exchangerate

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"fintrack/internal/domain/exchange"
)

const defaultTimeout = 30 * time.Second

// Client handles communication with the ExchangeRate API. Endpoints embed
// the API key in the path: {base}/{key}/latest/{CODE}.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
}

// Ensure Client implements the domain client interface
var _ exchange.Client = (*Client)(nil)

// NewClient creates a new ExchangeRate API client.
func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
		baseURL: baseURL,
		apiKey:  apiKey,
	}
}

// latestResponse represents the API response for the /latest endpoint
type latestResponse struct {
	Result             string             `json:"result"`
	ErrorType          string             `json:"error-type"`
	BaseCode           string             `json:"base_code"`
	ConversionRates    map[string]float64 `json:"conversion_rates"`
	TimeLastUpdateUnix int64              `json:"time_last_update_unix"`
	TimeNextUpdateUnix int64              `json:"time_next_update_unix"`
}

// pairResponse represents the API response for the /pair endpoint,
// with and without an amount segment
type pairResponse struct {
	Result             string  `json:"result"`
	ErrorType          string  `json:"error-type"`
	BaseCode           string  `json:"base_code"`
	TargetCode         string  `json:"target_code"`
	ConversionRate     float64 `json:"conversion_rate"`
	ConversionResult   float64 `json:"conversion_result"`
	TimeLastUpdateUnix int64   `json:"time_last_update_unix"`
}

// codesResponse represents the API response for the /codes endpoint.
// Each supported code is a [code, display name] pair.
type codesResponse struct {
	Result         string     `json:"result"`
	ErrorType      string     `json:"error-type"`
	SupportedCodes [][]string `json:"supported_codes"`
}

// LatestRates fetches all rates relative to the base currency.
func (c *Client) LatestRates(ctx context.Context, base string) (*exchange.Snapshot, error) {
	var resp latestResponse
	if err := c.get(ctx, fmt.Sprintf("%s/%s/latest/%s", c.baseURL, c.apiKey, base), &resp); err != nil {
		return nil, err
	}
	if resp.Result == "error" {
		return nil, &exchange.UpstreamError{Code: resp.ErrorType}
	}

	return &exchange.Snapshot{
		BaseCode:   resp.BaseCode,
		Rates:      resp.ConversionRates,
		LastUpdate: time.Unix(resp.TimeLastUpdateUnix, 0).UTC(),
		NextUpdate: time.Unix(resp.TimeNextUpdateUnix, 0).UTC(),
	}, nil
}

// Convert performs a pairwise conversion with an amount applied upstream.
func (c *Client) Convert(ctx context.Context, from, to string, amount float64) (*exchange.Conversion, error) {
	amountStr := strconv.FormatFloat(amount, 'f', -1, 64)
	var resp pairResponse
	if err := c.get(ctx, fmt.Sprintf("%s/%s/pair/%s/%s/%s", c.baseURL, c.apiKey, from, to, amountStr), &resp); err != nil {
		return nil, err
	}
	if resp.Result == "error" {
		return nil, &exchange.UpstreamError{Code: resp.ErrorType}
	}

	return &exchange.Conversion{
		From:       resp.BaseCode,
		To:         resp.TargetCode,
		Amount:     amount,
		Rate:       resp.ConversionRate,
		Result:     resp.ConversionResult,
		LastUpdate: time.Unix(resp.TimeLastUpdateUnix, 0).UTC(),
	}, nil
}

// PairRate fetches the conversion rate between two currencies.
func (c *Client) PairRate(ctx context.Context, from, to string) (*exchange.PairRate, error) {
	var resp pairResponse
	if err := c.get(ctx, fmt.Sprintf("%s/%s/pair/%s/%s", c.baseURL, c.apiKey, from, to), &resp); err != nil {
		return nil, err
	}
	if resp.Result == "error" {
		return nil, &exchange.UpstreamError{Code: resp.ErrorType}
	}

	return &exchange.PairRate{
		From:       resp.BaseCode,
		To:         resp.TargetCode,
		Rate:       resp.ConversionRate,
		LastUpdate: time.Unix(resp.TimeLastUpdateUnix, 0).UTC(),
	}, nil
}

// SupportedCodes fetches the provider's currency catalogue.
func (c *Client) SupportedCodes(ctx context.Context) ([]exchange.SupportedCode, error) {
	var resp codesResponse
	if err := c.get(ctx, fmt.Sprintf("%s/%s/codes", c.baseURL, c.apiKey), &resp); err != nil {
		return nil, err
	}
	if resp.Result == "error" {
		return nil, &exchange.UpstreamError{Code: resp.ErrorType}
	}

	codes := make([]exchange.SupportedCode, 0, len(resp.SupportedCodes))
	for _, pair := range resp.SupportedCodes {
		if len(pair) < 2 {
			continue
		}
		codes = append(codes, exchange.SupportedCode{Code: pair[0], Name: pair[1]})
	}
	return codes, nil
}

// get performs a single upstream call and unmarshals the body into out.
// Transport failures and non-2xx statuses map to exchange.ErrUnavailable.
func (c *Client) get(ctx context.Context, url string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", exchange.ErrUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: failed to read response body: %v", exchange.ErrUnavailable, err)
	}

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: status %d", exchange.ErrUnavailable, resp.StatusCode)
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("%w: failed to unmarshal response: %v", exchange.ErrUnavailable, err)
	}

	return nil
}
