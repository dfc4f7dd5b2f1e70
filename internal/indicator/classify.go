package indicator

import "github.com/jwei/macrowatch/models"

// Trend vocabulary shared by the classifier and renderers.
const (
	TrendRising  = "rising"
	TrendFalling = "falling"
	TrendFlat    = "flat"
)

// Label vocabulary per indicator.
const (
	LabelNormal    = "normal"
	LabelInverted  = "inverted"
	LabelReverting = "reverting"

	LabelSafe      = "safe"
	LabelWatch     = "watch"
	LabelConfirmed = "confirmed"

	LabelExpansion   = "expansion"
	LabelContraction = "contraction"

	LabelCheap     = "cheap/opportunity"
	LabelFair      = "fair range"
	LabelExpensive = "expensive/caution"
)

// Classify maps a resolved indicator to its discrete signal. Pure and
// stateless: identical inputs always yield identical labels and colors.
func Classify(ind *models.ResolvedIndicator) models.ClassifiedSignal {
	sig := models.ClassifiedSignal{Kind: ind.Kind, Value: ind.Current}

	switch ind.Kind {
	case models.KindRate:
		switch {
		case ind.Current > ind.Previous:
			sig.Trend, sig.Color = TrendRising, models.ColorRed
		case ind.Current < ind.Previous:
			sig.Trend, sig.Color = TrendFalling, models.ColorGreen
		default:
			sig.Trend, sig.Color = TrendFlat, models.ColorYellow
		}
		sig.Label = sig.Trend

	case models.KindYieldCurve:
		// An inversion resolving back to positive has historically sat
		// closer to recession onset than the inversion itself.
		sig.Reverting = ind.Previous < 0 && ind.Current > 0
		switch {
		case sig.Reverting:
			sig.Label, sig.Color = LabelReverting, models.ColorRed
		case ind.Current < 0:
			sig.Label, sig.Color = LabelInverted, models.ColorYellow
		default:
			sig.Label, sig.Color = LabelNormal, models.ColorGreen
		}

	case models.KindRecession:
		switch {
		case ind.Current >= 0.5:
			sig.Label, sig.Color = LabelConfirmed, models.ColorRed
		case ind.Current >= 0.3:
			sig.Label, sig.Color = LabelWatch, models.ColorYellow
		default:
			sig.Label, sig.Color = LabelSafe, models.ColorGreen
		}

	case models.KindPMI:
		if ind.Current > 50 {
			sig.Label = LabelExpansion
		} else {
			sig.Label = LabelContraction
		}
		switch {
		case ind.Current > ind.Previous:
			sig.Trend = TrendRising
		case ind.Current < ind.Previous:
			sig.Trend = TrendFalling
		default:
			sig.Trend = TrendFlat
		}
		// Color bands are deliberately looser than the 50 boundary: a print
		// inside 48..52 is treated as noise around the threshold.
		switch {
		case ind.Current > 52:
			sig.Color = models.ColorGreen
		case ind.Current < 48:
			sig.Color = models.ColorRed
		default:
			sig.Color = models.ColorYellow
		}

	case models.KindValuation:
		// Narrative bands (20/30) and color bands (22/33) are offset in the
		// source methodology; keep both, do not unify.
		switch {
		case ind.Current > 30:
			sig.Label = LabelExpensive
		case ind.Current > 20:
			sig.Label = LabelFair
		default:
			sig.Label = LabelCheap
		}
		switch {
		case ind.Current > 33:
			sig.Color = models.ColorRed
		case ind.Current > 22:
			sig.Color = models.ColorYellow
		default:
			sig.Color = models.ColorGreen
		}
	}

	return sig
}

// ClassifyAll classifies every resolved indicator, in a fixed display order.
func ClassifyAll(resolved map[models.Kind]*models.ResolvedIndicator) []models.ClassifiedSignal {
	signals := make([]models.ClassifiedSignal, 0, len(resolved))
	for _, kind := range []models.Kind{
		models.KindRate,
		models.KindYieldCurve,
		models.KindRecession,
		models.KindPMI,
		models.KindValuation,
	} {
		if ind, ok := resolved[kind]; ok {
			signals = append(signals, Classify(ind))
		}
	}
	return signals
}
