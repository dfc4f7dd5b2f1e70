package multpl

import (
	"context"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	httpclient "github.com/jwei/macrowatch/internal/platform/http"
)

// currentValueRe is a fallback for when the page markup drifts and the
// #current-value selector no longer matches.
var currentValueRe = regexp.MustCompile(`id="current-value"[^>]*>\s*([\d.]+)`)

// Client scrapes the Shiller CAPE ratio from multpl.com
type Client struct {
	baseURL    string
	httpClient *httpclient.Client
	logger     zerolog.Logger
}

// ClientOptions holds options for creating a new multpl client
type ClientOptions struct {
	BaseURL        string
	RequestTimeout time.Duration
	UserAgent      string
}

// NewClient creates a new multpl.com scraper
func NewClient(options ClientOptions) *Client {
	if options.BaseURL == "" {
		options.BaseURL = "https://www.multpl.com"
	}
	if options.RequestTimeout == 0 {
		options.RequestTimeout = 15 * time.Second
	}
	if options.UserAgent == "" {
		options.UserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64)"
	}

	return &Client{
		baseURL: options.BaseURL,
		httpClient: httpclient.NewClient(httpclient.ClientOptions{
			Timeout:   options.RequestTimeout,
			UserAgent: options.UserAgent,
		}),
		logger: log.With().Str("component", "multpl_client").Logger(),
	}
}

// Current scrapes the current CAPE value from the shiller-pe page.
func (c *Client) Current(ctx context.Context) (float64, error) {
	resp, err := c.httpClient.Get(ctx, c.baseURL+"/shiller-pe")
	if err != nil {
		return 0, fmt.Errorf("HTTP request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, fmt.Errorf("reading response body: %w", err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(string(body)))
	if err == nil {
		text := strings.TrimSpace(doc.Find("#current-value").First().Text())
		if text != "" {
			if val, perr := strconv.ParseFloat(strings.Fields(text)[0], 64); perr == nil {
				c.logger.Debug().Float64("value", val).Msg("Scraped current CAPE")
				return val, nil
			}
		}
	}

	if m := currentValueRe.FindStringSubmatch(string(body)); m != nil {
		if val, perr := strconv.ParseFloat(m[1], 64); perr == nil {
			c.logger.Debug().Float64("value", val).Msg("Scraped current CAPE via regex fallback")
			return val, nil
		}
	}

	c.logger.Warn().Msg("Current value not found on page")
	return 0, fmt.Errorf("current value not found on page")
}

// Export reads the newest CAPE value from the by-month table export.
func (c *Client) Export(ctx context.Context) (float64, error) {
	resp, err := c.httpClient.Get(ctx, c.baseURL+"/shiller-pe/table/by-month")
	if err != nil {
		return 0, fmt.Errorf("HTTP request failed: %w", err)
	}
	defer resp.Body.Close()

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return 0, fmt.Errorf("parsing HTML: %w", err)
	}

	// First data row of the table is the newest month.
	cell := doc.Find("#datatable tr").Eq(1).Find("td").Eq(1)
	text := strings.TrimSpace(cell.Text())
	if text == "" {
		return 0, fmt.Errorf("table value not found on page")
	}

	val, err := strconv.ParseFloat(strings.Fields(text)[0], 64)
	if err != nil {
		return 0, fmt.Errorf("parsing table value %q: %w", text, err)
	}

	c.logger.Debug().Float64("value", val).Msg("Read CAPE from table export")
	return val, nil
}
