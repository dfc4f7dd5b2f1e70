package news

import (
	"context"

	"github.com/mmcdole/gofeed"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/jwei/macrowatch/models"
)

const (
	itemsPerFeed = 3
	maxItems     = 5
)

// Feed is one RSS source tried in order.
type Feed struct {
	Name string
	URL  string
}

// DefaultFeeds are tried in order; the first feed that yields headlines
// wins, the rest are skipped.
var DefaultFeeds = []Feed{
	{Name: "Yahoo Finance", URL: "https://finance.yahoo.com/news/rssindex"},
	{Name: "MarketWatch", URL: "https://feeds.content.dowjones.io/public/rss/mw_realtimeheadlines"},
	{Name: "Seeking Alpha", URL: "https://seekingalpha.com/feed.xml"},
}

// Fetcher fetches financial news headlines from RSS feeds
type Fetcher struct {
	feeds  []Feed
	parser *gofeed.Parser
	logger zerolog.Logger
}

// NewFetcher creates a headline fetcher over the given feeds, or the
// default list when none are given
func NewFetcher(feeds ...Feed) *Fetcher {
	if len(feeds) == 0 {
		feeds = DefaultFeeds
	}

	parser := gofeed.NewParser()
	parser.UserAgent = "Mozilla/5.0"

	return &Fetcher{
		feeds:  feeds,
		parser: parser,
		logger: log.With().Str("component", "news_fetcher").Logger(),
	}
}

// TopHeadlines returns up to five headlines from the first feed that
// responds. A feed failure is logged and the next feed is tried; fetching
// no headlines at all is not an error.
func (f *Fetcher) TopHeadlines(ctx context.Context) []models.NewsItem {
	var items []models.NewsItem

	for _, feed := range f.feeds {
		parsed, err := f.parser.ParseURLWithContext(feed.URL, ctx)
		if err != nil {
			f.logger.Warn().Err(err).Str("feed", feed.Name).Msg("Feed fetch failed, trying next")
			continue
		}

		for i, entry := range parsed.Items {
			if i >= itemsPerFeed || entry.Title == "" {
				break
			}
			items = append(items, models.NewsItem{Source: feed.Name, Title: entry.Title})
		}

		if len(items) > 0 {
			break
		}
	}

	if len(items) > maxItems {
		items = items[:maxItems]
	}

	f.logger.Debug().Int("count", len(items)).Msg("Fetched headlines")
	return items
}
