package indicator

import (
	"testing"

	"github.com/jwei/macrowatch/models"
)

func signalsWithColors(colors ...models.Color) []models.ClassifiedSignal {
	signals := make([]models.ClassifiedSignal, len(colors))
	for i, c := range colors {
		signals[i] = models.ClassifiedSignal{Color: c}
	}
	return signals
}

func TestEvaluateComposite(t *testing.T) {
	tests := []struct {
		name    string
		colors  []models.Color
		overall models.Color
	}{
		{
			// Two reds dominate even against three greens.
			name:    "two reds beat three greens",
			colors:  []models.Color{models.ColorRed, models.ColorRed, models.ColorGreen, models.ColorGreen, models.ColorGreen},
			overall: models.ColorRed,
		},
		{
			name:    "zero reds and green quorum",
			colors:  []models.Color{models.ColorGreen, models.ColorGreen, models.ColorGreen, models.ColorYellow, models.ColorYellow},
			overall: models.ColorGreen,
		},
		{
			name:    "all yellow",
			colors:  []models.Color{models.ColorYellow, models.ColorYellow, models.ColorYellow, models.ColorYellow, models.ColorYellow},
			overall: models.ColorYellow,
		},
		{
			// One red blocks green even with four greens.
			name:    "single red blocks green",
			colors:  []models.Color{models.ColorRed, models.ColorGreen, models.ColorGreen, models.ColorGreen, models.ColorGreen},
			overall: models.ColorYellow,
		},
		{
			name:    "two greens miss the quorum",
			colors:  []models.Color{models.ColorGreen, models.ColorGreen, models.ColorYellow, models.ColorYellow, models.ColorYellow},
			overall: models.ColorYellow,
		},
		{
			name:    "three greens from a partial vote",
			colors:  []models.Color{models.ColorGreen, models.ColorGreen, models.ColorGreen},
			overall: models.ColorGreen,
		},
		{
			name:    "no signals at all",
			colors:  nil,
			overall: models.ColorYellow,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			regime := EvaluateComposite(signalsWithColors(tt.colors...))
			if regime.Overall != tt.overall {
				t.Errorf("EvaluateComposite() overall = %v, want %v", regime.Overall, tt.overall)
			}
		})
	}
}

func TestEvaluateCompositeCounts(t *testing.T) {
	regime := EvaluateComposite(signalsWithColors(
		models.ColorRed, models.ColorYellow, models.ColorYellow, models.ColorGreen, models.ColorGreen,
	))
	if regime.Red != 1 || regime.Yellow != 2 || regime.Green != 2 {
		t.Errorf("EvaluateComposite() counts = %d/%d/%d, want 1/2/2", regime.Red, regime.Yellow, regime.Green)
	}
}

func TestEvaluateCompositeCarriesReverting(t *testing.T) {
	signals := []models.ClassifiedSignal{
		{Kind: models.KindYieldCurve, Color: models.ColorRed, Reverting: true},
		{Kind: models.KindRate, Color: models.ColorGreen},
	}
	regime := EvaluateComposite(signals)
	if !regime.Reverting {
		t.Error("EvaluateComposite() reverting = false, want true")
	}

	regime = EvaluateComposite(signalsWithColors(models.ColorYellow, models.ColorYellow))
	if regime.Reverting {
		t.Error("EvaluateComposite() reverting = true, want false")
	}
}
