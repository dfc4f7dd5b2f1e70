package indicator

import (
	"testing"

	"github.com/jwei/macrowatch/models"
)

func TestClassifyRate(t *testing.T) {
	tests := []struct {
		name     string
		current  float64
		previous float64
		trend    string
		color    models.Color
	}{
		{"cutting cycle", 4.33, 4.58, TrendFalling, models.ColorGreen},
		{"hiking cycle", 4.58, 4.33, TrendRising, models.ColorRed},
		{"on hold", 4.33, 4.33, TrendFlat, models.ColorYellow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sig := Classify(&models.ResolvedIndicator{
				Kind:     models.KindRate,
				Current:  tt.current,
				Previous: tt.previous,
			})
			if sig.Trend != tt.trend {
				t.Errorf("Classify() trend = %v, want %v", sig.Trend, tt.trend)
			}
			if sig.Color != tt.color {
				t.Errorf("Classify() color = %v, want %v", sig.Color, tt.color)
			}
		})
	}
}

func TestClassifyYieldCurve(t *testing.T) {
	tests := []struct {
		name      string
		current   float64
		previous  float64
		label     string
		color     models.Color
		reverting bool
	}{
		{"inversion resolving to positive", 0.2, -0.1, LabelReverting, models.ColorRed, true},
		{"steady positive slope", 0.2, 0.1, LabelNormal, models.ColorGreen, false},
		{"still inverted", -0.05, -0.1, LabelInverted, models.ColorYellow, false},
		{"fresh inversion", -0.1, 0.1, LabelInverted, models.ColorYellow, false},
		{"recovered exactly to zero", 0, -0.1, LabelNormal, models.ColorGreen, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sig := Classify(&models.ResolvedIndicator{
				Kind:     models.KindYieldCurve,
				Current:  tt.current,
				Previous: tt.previous,
			})
			if sig.Reverting != tt.reverting {
				t.Errorf("Classify() reverting = %v, want %v", sig.Reverting, tt.reverting)
			}
			if sig.Label != tt.label {
				t.Errorf("Classify() label = %v, want %v", sig.Label, tt.label)
			}
			if sig.Color != tt.color {
				t.Errorf("Classify() color = %v, want %v", sig.Color, tt.color)
			}
		})
	}
}

func TestClassifyRecession(t *testing.T) {
	tests := []struct {
		name  string
		value float64
		label string
		color models.Color
	}{
		{"recession confirmed", 0.53, LabelConfirmed, models.ColorRed},
		{"exactly at confirm threshold", 0.5, LabelConfirmed, models.ColorRed},
		{"watch zone", 0.33, LabelWatch, models.ColorYellow},
		{"exactly at watch threshold", 0.3, LabelWatch, models.ColorYellow},
		{"safe", 0.1, LabelSafe, models.ColorGreen},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sig := Classify(&models.ResolvedIndicator{
				Kind:     models.KindRecession,
				Current:  tt.value,
				Previous: tt.value,
			})
			if sig.Label != tt.label {
				t.Errorf("Classify() label = %v, want %v", sig.Label, tt.label)
			}
			if sig.Color != tt.color {
				t.Errorf("Classify() color = %v, want %v", sig.Color, tt.color)
			}
		})
	}
}

func TestClassifyPMI(t *testing.T) {
	// The 50 boundary drives the label while the color has its own wider
	// 48..52 neutral band, so label and color can disagree.
	tests := []struct {
		name     string
		current  float64
		previous float64
		label    string
		trend    string
		color    models.Color
	}{
		{"strong expansion", 53.2, 52.1, LabelExpansion, TrendRising, models.ColorGreen},
		{"weak expansion", 50.8, 51.2, LabelExpansion, TrendFalling, models.ColorYellow},
		{"mild contraction", 49.1, 49.1, LabelContraction, TrendFlat, models.ColorYellow},
		{"deep contraction", 46.9, 48.2, LabelContraction, TrendFalling, models.ColorRed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sig := Classify(&models.ResolvedIndicator{
				Kind:     models.KindPMI,
				Current:  tt.current,
				Previous: tt.previous,
			})
			if sig.Label != tt.label {
				t.Errorf("Classify() label = %v, want %v", sig.Label, tt.label)
			}
			if sig.Trend != tt.trend {
				t.Errorf("Classify() trend = %v, want %v", sig.Trend, tt.trend)
			}
			if sig.Color != tt.color {
				t.Errorf("Classify() color = %v, want %v", sig.Color, tt.color)
			}
		})
	}
}

func TestClassifyValuation(t *testing.T) {
	// Narrative bands break at 20/30, color bands at 22/33. The offset is
	// intentional; both must hold at once.
	tests := []struct {
		name  string
		value float64
		label string
		color models.Color
	}{
		{"very expensive", 36.5, LabelExpensive, models.ColorRed},
		{"expensive but not yet red", 31.0, LabelExpensive, models.ColorYellow},
		{"fair and yellow", 25.0, LabelFair, models.ColorYellow},
		{"fair but already green", 21.0, LabelFair, models.ColorGreen},
		{"cheap", 15.0, LabelCheap, models.ColorGreen},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sig := Classify(&models.ResolvedIndicator{
				Kind:     models.KindValuation,
				Current:  tt.value,
				Previous: tt.value,
			})
			if sig.Label != tt.label {
				t.Errorf("Classify() label = %v, want %v", sig.Label, tt.label)
			}
			if sig.Color != tt.color {
				t.Errorf("Classify() color = %v, want %v", sig.Color, tt.color)
			}
		})
	}
}

func TestClassifyIsPure(t *testing.T) {
	ind := &models.ResolvedIndicator{Kind: models.KindPMI, Current: 49.1, Previous: 50.3}
	first := Classify(ind)
	for i := 0; i < 10; i++ {
		if got := Classify(ind); got != first {
			t.Fatalf("Classify() not deterministic: %+v != %+v", got, first)
		}
	}
}
