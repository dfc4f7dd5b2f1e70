package models

// Kind identifies one of the five tracked macro indicators.
type Kind string

const (
	KindRate       Kind = "rate"
	KindYieldCurve Kind = "yield_curve"
	KindRecession  Kind = "recession"
	KindPMI        Kind = "pmi"
	KindValuation  Kind = "valuation"
)

// Color is a single traffic-light verdict.
type Color string

const (
	ColorGreen  Color = "green"
	ColorYellow Color = "yellow"
	ColorRed    Color = "red"
)

// Emoji returns the traffic-light glyph used in chat messages.
func (c Color) Emoji() string {
	switch c {
	case ColorGreen:
		return "🟢"
	case ColorRed:
		return "🔴"
	default:
		return "🟡"
	}
}

// SourceFallback marks an indicator that was filled from a hardcoded
// last-known constant because every live source failed.
const SourceFallback = "fallback"

// MissingSentinel is the value FRED uses for an observation with no data.
const MissingSentinel = "."

// Observation is a single (date, value) point from a time-series source.
// Value is kept as the raw string: FRED reports missing observations as "."
// and those must be filtered out before any numeric use.
type Observation struct {
	Date  string `json:"date"`
	Value string `json:"value"`
}

// FredResponse is the observations payload from the FRED API.
type FredResponse struct {
	Observations []Observation `json:"observations"`
}

// ResolvedIndicator is the outcome of one indicator's fallback chain.
// Current is always set once resolution succeeds; Previous equals Current
// when no prior observation exists.
type ResolvedIndicator struct {
	Kind     Kind    `json:"kind"`
	Current  float64 `json:"current"`
	Previous float64 `json:"previous"`
	Source   string  `json:"source"`
	Stale    bool    `json:"stale,omitempty"`
}

// ClassifiedSignal is the discrete label derived from a ResolvedIndicator.
// Pure function of the indicator values, recomputed every run.
type ClassifiedSignal struct {
	Kind      Kind    `json:"kind"`
	Label     string  `json:"label"`
	Trend     string  `json:"trend,omitempty"`
	Color     Color   `json:"color"`
	Value     float64 `json:"value"`
	Reverting bool    `json:"reverting,omitempty"`
}

// CompositeRegime aggregates the available traffic lights into one verdict.
type CompositeRegime struct {
	Red       int   `json:"red"`
	Yellow    int   `json:"yellow"`
	Green     int   `json:"green"`
	Overall   Color `json:"overall"`
	Reverting bool  `json:"reverting"`
}

// Quote is a single market quote used by the daily brief.
type Quote struct {
	Symbol    string  `json:"symbol"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Change    float64 `json:"change"`
	ChangePct float64 `json:"change_pct"`
}

// QuoteResponse is the quote payload from the Twelve Data API.
type QuoteResponse struct {
	Symbol        string  `json:"symbol"`
	Name          string  `json:"name"`
	Close         float64 `json:"close,string"`
	PreviousClose float64 `json:"previous_close,string"`
	Change        float64 `json:"change,string"`
	PercentChange float64 `json:"percent_change,string"`
	Status        string  `json:"status"`
}

// NewsItem is one headline from a financial news feed.
type NewsItem struct {
	Source string `json:"source"`
	Title  string `json:"title"`
}
