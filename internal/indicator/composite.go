package indicator

import "github.com/jwei/macrowatch/models"

// EvaluateComposite aggregates the available signals into one overall
// verdict. The vote is asymmetric: two reds dominate regardless of how many
// greens there are, while green needs both zero reds and a three-green
// quorum. Unavailable indicators simply do not vote; with no signals at all
// the verdict is yellow.
func EvaluateComposite(signals []models.ClassifiedSignal) models.CompositeRegime {
	var regime models.CompositeRegime

	for _, s := range signals {
		switch s.Color {
		case models.ColorRed:
			regime.Red++
		case models.ColorGreen:
			regime.Green++
		default:
			regime.Yellow++
		}
		if s.Reverting {
			regime.Reverting = true
		}
	}

	switch {
	case regime.Red >= 2:
		regime.Overall = models.ColorRed
	case regime.Red == 0 && regime.Green >= 3:
		regime.Overall = models.ColorGreen
	default:
		regime.Overall = models.ColorYellow
	}

	return regime
}
