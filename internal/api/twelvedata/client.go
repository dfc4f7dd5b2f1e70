package twelvedata

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	httpclient "github.com/jwei/macrowatch/internal/platform/http"
	"github.com/jwei/macrowatch/models"
)

// Client is the TwelveData API client
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *httpclient.Client
	logger     zerolog.Logger
}

// ClientOptions holds options for creating a new TwelveData client
type ClientOptions struct {
	APIKey          string
	BaseURL         string
	RequestTimeout  time.Duration
	RequestsPerSec  int
	MaxRetryTimeout time.Duration
}

// NewClient creates a new TwelveData API client
func NewClient(options ClientOptions) *Client {
	if options.BaseURL == "" {
		options.BaseURL = "https://api.twelvedata.com"
	}
	if options.RequestTimeout == 0 {
		options.RequestTimeout = 15 * time.Second
	}
	if options.RequestsPerSec == 0 {
		options.RequestsPerSec = 5
	}

	return &Client{
		apiKey:  options.APIKey,
		baseURL: options.BaseURL,
		httpClient: httpclient.NewClient(httpclient.ClientOptions{
			Timeout:         options.RequestTimeout,
			RequestsPerSec:  options.RequestsPerSec,
			MaxRetryTimeout: options.MaxRetryTimeout,
		}),
		logger: log.With().Str("component", "twelvedata_client").Logger(),
	}
}

// GetQuote fetches the latest quote for a symbol from Twelve Data
func (c *Client) GetQuote(ctx context.Context, symbol string) (*models.Quote, error) {
	u := fmt.Sprintf(
		"%s/quote?symbol=%s&apikey=%s",
		c.baseURL,
		url.QueryEscape(symbol),
		c.apiKey,
	)

	c.logger.Debug().Str("symbol", symbol).Msg("Fetching quote")

	resp, err := c.httpClient.Get(ctx, u)
	if err != nil {
		return nil, fmt.Errorf("HTTP request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	if strings.Contains(string(body), `"status":"error"`) {
		c.logger.Error().Str("response", string(body)).Msg("Twelve Data API error")
		return nil, fmt.Errorf("Twelve Data API error: %s", string(body))
	}

	var data models.QuoteResponse
	if err := json.Unmarshal(body, &data); err != nil {
		c.logger.Error().Err(err).Str("response", string(body)).Msg("Error parsing JSON")
		return nil, fmt.Errorf("parsing JSON: %w", err)
	}

	quote := &models.Quote{
		Symbol:    symbol,
		Name:      data.Name,
		Price:     data.Close,
		Change:    data.Change,
		ChangePct: data.PercentChange,
	}

	c.logger.Debug().Str("symbol", symbol).Float64("price", quote.Price).Msg("Fetched quote")
	return quote, nil
}
