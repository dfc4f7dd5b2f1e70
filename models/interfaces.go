package models

import "context"

// SeriesClient fetches the most recent observations of a named time series,
// newest first. Observations may contain the missing-value sentinel.
type SeriesClient interface {
	GetObservations(ctx context.Context, seriesID string, limit int) ([]Observation, error)
}

// ValuationPage extracts the current valuation ratio from a public webpage.
// Current scrapes the page's numeric field; Export reads the tabular export.
type ValuationPage interface {
	Current(ctx context.Context) (float64, error)
	Export(ctx context.Context) (float64, error)
}

// DatasetClient fetches the latest value of a hosted dataset.
type DatasetClient interface {
	Latest(ctx context.Context, code string) (float64, error)
}

// QuoteClient fetches market quotes.
type QuoteClient interface {
	GetQuote(ctx context.Context, symbol string) (*Quote, error)
}
