package fred

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	httpclient "github.com/jwei/macrowatch/internal/platform/http"
	"github.com/jwei/macrowatch/models"
)

// ErrMissingAPIKey is returned before any network call when the client was
// built without a FRED API key. Callers advance straight to their fallbacks.
var ErrMissingAPIKey = errors.New("FRED API key is not configured")

// Client is the FRED observations API client
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *httpclient.Client
	logger     zerolog.Logger
}

// ClientOptions holds options for creating a new FRED client
type ClientOptions struct {
	APIKey          string
	BaseURL         string
	RequestTimeout  time.Duration
	RequestsPerSec  int
	MaxRetryTimeout time.Duration
}

// NewClient creates a new FRED API client
func NewClient(options ClientOptions) *Client {
	if options.BaseURL == "" {
		options.BaseURL = "https://api.stlouisfed.org"
	}
	if options.RequestTimeout == 0 {
		options.RequestTimeout = 10 * time.Second
	}

	return &Client{
		apiKey:  options.APIKey,
		baseURL: options.BaseURL,
		httpClient: httpclient.NewClient(httpclient.ClientOptions{
			Timeout:         options.RequestTimeout,
			RequestsPerSec:  options.RequestsPerSec,
			MaxRetryTimeout: options.MaxRetryTimeout,
		}),
		logger: log.With().Str("component", "fred_client").Logger(),
	}
}

// GetObservations fetches the latest observations of a series, newest first.
// Observations are returned raw: the "." missing-value sentinel is passed
// through for the caller to filter.
func (c *Client) GetObservations(ctx context.Context, seriesID string, limit int) ([]models.Observation, error) {
	if c.apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	url := fmt.Sprintf(
		"%s/fred/series/observations?series_id=%s&api_key=%s&file_type=json&limit=%d&sort_order=desc",
		c.baseURL,
		seriesID,
		c.apiKey,
		limit,
	)

	c.logger.Debug().Str("series_id", seriesID).Int("limit", limit).Msg("Fetching observations")

	resp, err := c.httpClient.Get(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("HTTP request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	var data models.FredResponse
	if err := json.Unmarshal(body, &data); err != nil {
		c.logger.Error().Err(err).Str("response", string(body)).Msg("Error parsing JSON")
		return nil, fmt.Errorf("parsing JSON: %w", err)
	}

	if len(data.Observations) == 0 {
		c.logger.Warn().Str("series_id", seriesID).Msg("No observations in response")
		return nil, fmt.Errorf("empty data returned")
	}

	c.logger.Debug().Str("series_id", seriesID).Int("count", len(data.Observations)).Msg("Fetched observations")
	return data.Observations, nil
}
