package market

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/jwei/macrowatch/models"
)

// Symbol is one instrument tracked by the daily brief.
type Symbol struct {
	Ticker string
	Name   string
}

// DefaultSymbols are the indices and ETFs in the daily digest.
var DefaultSymbols = []Symbol{
	{Ticker: "DJI", Name: "Dow Jones"},
	{Ticker: "SPX", Name: "S&P 500"},
	{Ticker: "IXIC", Name: "Nasdaq"},
	{Ticker: "SOX", Name: "PHLX Semiconductor"},
	{Ticker: "GDAXI", Name: "DAX"},
	{Ticker: "FCHI", Name: "CAC 40"},
	{Ticker: "FTSE", Name: "FTSE 100"},
	{Ticker: "VT", Name: "Vanguard Total World"},
	{Ticker: "QQQ", Name: "Invesco QQQ"},
}

// Digest collects quotes for a fixed symbol set
type Digest struct {
	quotes  models.QuoteClient
	symbols []Symbol
	logger  zerolog.Logger
}

// NewDigest creates a quote digest over the given client and symbols
func NewDigest(quotes models.QuoteClient, symbols []Symbol) *Digest {
	if len(symbols) == 0 {
		symbols = DefaultSymbols
	}
	return &Digest{
		quotes:  quotes,
		symbols: symbols,
		logger:  log.With().Str("component", "market_digest").Logger(),
	}
}

// Collect fetches quotes sequentially. A failed symbol is skipped with a
// warning; a partial digest is still a digest.
func (d *Digest) Collect(ctx context.Context) []models.Quote {
	var quotes []models.Quote

	for _, sym := range d.symbols {
		q, err := d.quotes.GetQuote(ctx, sym.Ticker)
		if err != nil {
			d.logger.Warn().Err(err).Str("symbol", sym.Ticker).Msg("Quote fetch failed, skipping")
			continue
		}
		if q.Name == "" {
			q.Name = sym.Name
		}
		quotes = append(quotes, *q)
	}

	d.logger.Debug().Int("count", len(quotes)).Msg("Collected quotes")
	return quotes
}
