package indicator

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/jwei/macrowatch/models"
)

// FRED series codes per indicator.
const (
	seriesPolicyRate = "FEDFUNDS"
	seriesLongYield  = "DGS10"
	seriesShortYield = "DGS2"
	seriesRecession  = "SAHMREALTIME"
)

// pmiSeries are tried in order; the first that yields at least two
// non-missing points wins. NAPM is the classic ISM PMI code, NAPMPI the
// production sub-index that keeps publishing when the headline lags.
var pmiSeries = []string{"NAPM", "NAPMPI"}

// capeDataset is the Nasdaq Data Link code for the monthly Shiller PE.
const capeDataset = "MULTPL/SHILLER_PE_RATIO_MONTH"

// Last-known values used when every live source fails. Confirm these
// against the published numbers once a quarter.
const (
	pmiFallback  = 49.0
	capeFallback = 37.0
)

// Automated CAPE sources outside (capeMin, capeMax) are discarded as
// scrape noise.
const (
	capeMin = 5.0
	capeMax = 100.0
)

var (
	// ErrSourceUnavailable means one candidate source failed; the chain
	// advances to the next candidate.
	ErrSourceUnavailable = errors.New("source unavailable")

	// ErrIndicatorUnavailable means every candidate failed for an indicator
	// that has no static fallback.
	ErrIndicatorUnavailable = errors.New("indicator unavailable")
)

// Overrides are operator-supplied values that take precedence over any
// external source.
type Overrides struct {
	PMI     *float64
	PMIPrev *float64
	CAPE    *float64
}

// Options wires the external sources into a Resolver.
type Options struct {
	Series    models.SeriesClient
	Page      models.ValuationPage
	Dataset   models.DatasetClient
	Overrides Overrides
}

// Resolver resolves each indicator through its ordered fallback chain.
// A resolver never fails a run: indicators either resolve, fall back to a
// constant, or are reported unavailable.
type Resolver struct {
	series    models.SeriesClient
	page      models.ValuationPage
	dataset   models.DatasetClient
	overrides Overrides
	logger    zerolog.Logger
}

// NewResolver creates a resolver over the given sources
func NewResolver(opts Options) *Resolver {
	return &Resolver{
		series:    opts.Series,
		page:      opts.Page,
		dataset:   opts.Dataset,
		overrides: opts.Overrides,
		logger:    log.With().Str("component", "indicator_resolver").Logger(),
	}
}

// source is one candidate in a fallback chain.
type source struct {
	name string
	fn   func(context.Context) (*models.ResolvedIndicator, error)
}

// firstAvailable evaluates candidates in order and returns the first that
// succeeds. Order within a chain is the contract; candidates are never
// retried, only superseded.
func (r *Resolver) firstAvailable(ctx context.Context, kind models.Kind, sources []source) (*models.ResolvedIndicator, error) {
	for _, s := range sources {
		ind, err := s.fn(ctx)
		if err != nil {
			r.logger.Warn().Err(err).
				Str("indicator", string(kind)).
				Str("source", s.name).
				Msg("Source failed, trying next candidate")
			continue
		}
		ind.Kind = kind
		if ind.Source == "" {
			ind.Source = s.name
		}
		return ind, nil
	}
	return nil, ErrIndicatorUnavailable
}

// latestValues fetches a series and returns its numeric values newest
// first, with missing-value sentinels filtered out. An unparsable
// non-sentinel value fails the whole source.
func (r *Resolver) latestValues(ctx context.Context, seriesID string, limit int) ([]float64, error) {
	obs, err := r.series.GetObservations(ctx, seriesID, limit)
	if err != nil {
		return nil, err
	}

	var vals []float64
	for _, o := range obs {
		raw := strings.TrimSpace(o.Value)
		if raw == models.MissingSentinel || raw == "" {
			continue
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, fmt.Errorf("%s: parsing %q: %w", seriesID, o.Value, ErrSourceUnavailable)
		}
		vals = append(vals, v)
	}

	if len(vals) == 0 {
		return nil, fmt.Errorf("%s: all observations missing: %w", seriesID, ErrSourceUnavailable)
	}
	return vals, nil
}

// fromSeries builds an indicator from the newest two values of a series.
func (r *Resolver) fromSeries(ctx context.Context, seriesID string, limit int) (*models.ResolvedIndicator, error) {
	vals, err := r.latestValues(ctx, seriesID, limit)
	if err != nil {
		return nil, err
	}

	ind := &models.ResolvedIndicator{Current: vals[0], Previous: vals[0]}
	if len(vals) > 1 {
		ind.Previous = vals[1]
	}
	return ind, nil
}

// ResolveRate resolves the policy rate. No static fallback: when FRED
// fails the indicator is reported unavailable.
func (r *Resolver) ResolveRate(ctx context.Context) (*models.ResolvedIndicator, error) {
	return r.firstAvailable(ctx, models.KindRate, []source{
		{name: seriesPolicyRate, fn: func(ctx context.Context) (*models.ResolvedIndicator, error) {
			return r.fromSeries(ctx, seriesPolicyRate, 3)
		}},
	})
}

// ResolveYieldCurve resolves the 10Y-2Y spread. Both legs must be present;
// the previous spread falls back to the current one when either leg has a
// single observation.
func (r *Resolver) ResolveYieldCurve(ctx context.Context) (*models.ResolvedIndicator, error) {
	return r.firstAvailable(ctx, models.KindYieldCurve, []source{
		{name: seriesLongYield + "-" + seriesShortYield, fn: func(ctx context.Context) (*models.ResolvedIndicator, error) {
			long, err := r.latestValues(ctx, seriesLongYield, 3)
			if err != nil {
				return nil, err
			}
			short, err := r.latestValues(ctx, seriesShortYield, 3)
			if err != nil {
				return nil, err
			}

			spread := long[0] - short[0]
			prev := spread
			if len(long) > 1 && len(short) > 1 {
				prev = long[1] - short[1]
			}
			return &models.ResolvedIndicator{Current: spread, Previous: prev}, nil
		}},
	})
}

// ResolveRecession resolves the Sahm-rule recession probability.
func (r *Resolver) ResolveRecession(ctx context.Context) (*models.ResolvedIndicator, error) {
	return r.firstAvailable(ctx, models.KindRecession, []source{
		{name: seriesRecession, fn: func(ctx context.Context) (*models.ResolvedIndicator, error) {
			return r.fromSeries(ctx, seriesRecession, 2)
		}},
	})
}

// ResolvePMI resolves the manufacturing PMI: manual override, then the
// FRED candidates, then the stale constant. Never unavailable.
func (r *Resolver) ResolvePMI(ctx context.Context) (*models.ResolvedIndicator, error) {
	sources := []source{
		{name: "manual", fn: r.pmiManual},
	}
	for _, code := range pmiSeries {
		code := code
		sources = append(sources, source{name: code, fn: func(ctx context.Context) (*models.ResolvedIndicator, error) {
			return r.pmiFromSeries(ctx, code)
		}})
	}
	sources = append(sources, source{name: models.SourceFallback, fn: r.pmiConstant})

	return r.firstAvailable(ctx, models.KindPMI, sources)
}

func (r *Resolver) pmiManual(ctx context.Context) (*models.ResolvedIndicator, error) {
	if r.overrides.PMI == nil {
		return nil, fmt.Errorf("no manual PMI value: %w", ErrSourceUnavailable)
	}

	cur := *r.overrides.PMI
	prev := cur
	if r.overrides.PMIPrev != nil {
		prev = *r.overrides.PMIPrev
	} else if p, ok := r.pmiPreviousFromSeries(ctx); ok {
		prev = p
	}

	return &models.ResolvedIndicator{Current: cur, Previous: prev}, nil
}

// pmiPreviousFromSeries looks up the second-newest PMI print for trend when
// the operator supplied only the current value.
func (r *Resolver) pmiPreviousFromSeries(ctx context.Context) (float64, bool) {
	for _, code := range pmiSeries {
		vals, err := r.latestValues(ctx, code, 3)
		if err != nil || len(vals) < 2 {
			continue
		}
		return vals[1], true
	}
	return 0, false
}

func (r *Resolver) pmiFromSeries(ctx context.Context, code string) (*models.ResolvedIndicator, error) {
	vals, err := r.latestValues(ctx, code, 3)
	if err != nil {
		return nil, err
	}
	if len(vals) < 2 {
		return nil, fmt.Errorf("%s: need two observations for trend: %w", code, ErrSourceUnavailable)
	}
	return &models.ResolvedIndicator{Current: vals[0], Previous: vals[1]}, nil
}

func (r *Resolver) pmiConstant(ctx context.Context) (*models.ResolvedIndicator, error) {
	return &models.ResolvedIndicator{
		Current:  pmiFallback,
		Previous: pmiFallback,
		Stale:    true,
	}, nil
}

// ResolveCAPE resolves the Shiller valuation ratio: manual override, page
// scrape, hosted dataset, table export, then the stale constant. Never
// unavailable.
func (r *Resolver) ResolveCAPE(ctx context.Context) (*models.ResolvedIndicator, error) {
	return r.firstAvailable(ctx, models.KindValuation, []source{
		{name: "manual", fn: r.capeManual},
		{name: "multpl", fn: r.capeFromPage},
		{name: "nasdaq_data_link", fn: r.capeFromDataset},
		{name: "multpl_table", fn: r.capeFromExport},
		{name: models.SourceFallback, fn: r.capeConstant},
	})
}

func (r *Resolver) capeManual(ctx context.Context) (*models.ResolvedIndicator, error) {
	if r.overrides.CAPE == nil {
		return nil, fmt.Errorf("no manual CAPE value: %w", ErrSourceUnavailable)
	}
	v := *r.overrides.CAPE
	return &models.ResolvedIndicator{Current: v, Previous: v}, nil
}

func (r *Resolver) capeFromPage(ctx context.Context) (*models.ResolvedIndicator, error) {
	if r.page == nil {
		return nil, fmt.Errorf("no valuation page configured: %w", ErrSourceUnavailable)
	}
	v, err := r.page.Current(ctx)
	if err != nil {
		return nil, err
	}
	return r.capeChecked(v)
}

func (r *Resolver) capeFromDataset(ctx context.Context) (*models.ResolvedIndicator, error) {
	if r.dataset == nil {
		return nil, fmt.Errorf("no dataset client configured: %w", ErrSourceUnavailable)
	}
	v, err := r.dataset.Latest(ctx, capeDataset)
	if err != nil {
		return nil, err
	}
	return r.capeChecked(v)
}

func (r *Resolver) capeFromExport(ctx context.Context) (*models.ResolvedIndicator, error) {
	if r.page == nil {
		return nil, fmt.Errorf("no valuation page configured: %w", ErrSourceUnavailable)
	}
	v, err := r.page.Export(ctx)
	if err != nil {
		return nil, err
	}
	return r.capeChecked(v)
}

func (r *Resolver) capeChecked(v float64) (*models.ResolvedIndicator, error) {
	if v <= capeMin || v >= capeMax {
		return nil, fmt.Errorf("CAPE %.2f outside (%.0f, %.0f): %w", v, capeMin, capeMax, ErrSourceUnavailable)
	}
	return &models.ResolvedIndicator{Current: v, Previous: v}, nil
}

func (r *Resolver) capeConstant(ctx context.Context) (*models.ResolvedIndicator, error) {
	return &models.ResolvedIndicator{
		Current:  capeFallback,
		Previous: capeFallback,
		Stale:    true,
	}, nil
}

// ResolveAll resolves every indicator. Unavailable indicators are omitted
// from the result, never reported as an error.
func (r *Resolver) ResolveAll(ctx context.Context) map[models.Kind]*models.ResolvedIndicator {
	out := make(map[models.Kind]*models.ResolvedIndicator, 5)

	for _, res := range []struct {
		kind models.Kind
		fn   func(context.Context) (*models.ResolvedIndicator, error)
	}{
		{models.KindRate, r.ResolveRate},
		{models.KindYieldCurve, r.ResolveYieldCurve},
		{models.KindRecession, r.ResolveRecession},
		{models.KindPMI, r.ResolvePMI},
		{models.KindValuation, r.ResolveCAPE},
	} {
		ind, err := res.fn(ctx)
		if err != nil {
			r.logger.Warn().Err(err).Str("indicator", string(res.kind)).Msg("Indicator unavailable")
			continue
		}
		r.logger.Info().
			Str("indicator", string(res.kind)).
			Float64("current", ind.Current).
			Str("source", ind.Source).
			Bool("stale", ind.Stale).
			Msg("Indicator resolved")
		out[res.kind] = ind
	}

	return out
}
