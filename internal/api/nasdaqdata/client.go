package nasdaqdata

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	httpclient "github.com/jwei/macrowatch/internal/platform/http"
)

// Client is a minimal Nasdaq Data Link (ex-Quandl) dataset client
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *httpclient.Client
	logger     zerolog.Logger
}

// ClientOptions holds options for creating a new Nasdaq Data Link client
type ClientOptions struct {
	APIKey         string
	BaseURL        string
	RequestTimeout time.Duration
}

// NewClient creates a new Nasdaq Data Link client
func NewClient(options ClientOptions) *Client {
	if options.BaseURL == "" {
		options.BaseURL = "https://data.nasdaq.com"
	}
	if options.RequestTimeout == 0 {
		options.RequestTimeout = 10 * time.Second
	}

	return &Client{
		apiKey:  options.APIKey,
		baseURL: options.BaseURL,
		httpClient: httpclient.NewClient(httpclient.ClientOptions{
			Timeout: options.RequestTimeout,
		}),
		logger: log.With().Str("component", "nasdaqdata_client").Logger(),
	}
}

type datasetResponse struct {
	Dataset struct {
		Data [][]json.RawMessage `json:"data"`
	} `json:"dataset"`
}

// Latest fetches the newest value of a dataset, e.g.
// "MULTPL/SHILLER_PE_RATIO_MONTH".
func (c *Client) Latest(ctx context.Context, code string) (float64, error) {
	url := fmt.Sprintf("%s/api/v3/datasets/%s.json?rows=1", c.baseURL, code)
	if c.apiKey != "" {
		url += "&api_key=" + c.apiKey
	}

	c.logger.Debug().Str("code", code).Msg("Fetching dataset")

	resp, err := c.httpClient.Get(ctx, url)
	if err != nil {
		return 0, fmt.Errorf("HTTP request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, fmt.Errorf("reading response body: %w", err)
	}

	var data datasetResponse
	if err := json.Unmarshal(body, &data); err != nil {
		c.logger.Error().Err(err).Str("response", string(body)).Msg("Error parsing JSON")
		return 0, fmt.Errorf("parsing JSON: %w", err)
	}

	if len(data.Dataset.Data) == 0 || len(data.Dataset.Data[0]) < 2 {
		return 0, fmt.Errorf("empty data returned")
	}

	var val float64
	if err := json.Unmarshal(data.Dataset.Data[0][1], &val); err != nil {
		return 0, fmt.Errorf("parsing dataset value: %w", err)
	}

	c.logger.Debug().Str("code", code).Float64("value", val).Msg("Fetched dataset value")
	return val, nil
}
